package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg closes the top view. The root form is never popped; views
// below are refreshed afterwards.
type popViewMsg struct{}

// statusMsg sets the transient status line under the active view.
type statusMsg struct {
	text  string
	isErr bool
}

// refreshViewMsg is broadcast to every view on the stack after pick-list
// changes so forms can reload their suggestions.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func statusCmd(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return func() tea.Msg { return statusMsg{text: text} }
}

func errorStatusCmd(err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
}

// wizardCompleteStatus returns a wizardCompleteMsg that shows text in the status line.
func wizardCompleteStatus(text string) tea.Msg {
	return wizardCompleteMsg{nextCmd: statusCmd(text)}
}
