package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/castqc/internal/cli/formatter"
	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// pickListView lets the operator browse and edit the three pick lists.
type pickListView struct {
	state  *SharedState
	list   int // index into domain.ListNames
	cursor int
	values []string
	err    error
}

func newPickListView(state *SharedState) *pickListView {
	v := &pickListView{state: state}
	v.reload()
	return v
}

func (v *pickListView) current() domain.ListName {
	return domain.ListNames[v.list]
}

func (v *pickListView) reload() {
	l, err := v.state.App.PickLists.List(v.current())
	v.err = err
	v.values = l.Values()
	if v.cursor >= len(v.values) {
		v.cursor = max(len(v.values)-1, 0)
	}
}

func (v *pickListView) Init() tea.Cmd { return nil }

func (v *pickListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		n := len(domain.ListNames)
		switch msg.String() {
		case "left", "h":
			v.list = (v.list + n - 1) % n
			v.cursor = 0
			v.reload()
		case "right", "l":
			v.list = (v.list + 1) % n
			v.cursor = 0
			v.reload()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.values)-1 {
				v.cursor++
			}
		case "q":
			return v, popView()
		case "a":
			return v, v.addCmd()
		case "d", "delete":
			return v, v.removeCmd()
		}
	}
	return v, nil
}

func (v *pickListView) addCmd() tea.Cmd {
	name := v.current()
	var value string
	return startWizardCmd("Добавить", wizardAddListValue(name, &value), func() tea.Cmd {
		return v.applyAdd(name, value)
	})
}

func (v *pickListView) removeCmd() tea.Cmd {
	if len(v.values) == 0 {
		return statusCmd("Список пуст")
	}
	name := v.current()
	value := v.values[v.cursor]

	var confirmed bool
	title := fmt.Sprintf("Удалить «%s»?", value)
	return startWizardCmd("Удалить", wizardConfirm(title, &confirmed), func() tea.Cmd {
		if !confirmed {
			return statusCmd("Отменено.")
		}
		return v.applyRemove(name, value)
	})
}

// applyAdd and applyRemove run inside the wizard's done callback, so the
// store has changed before the refresh that follows the wizard is delivered.
func (v *pickListView) applyAdd(name domain.ListName, value string) tea.Cmd {
	normalized := domain.NormalizeValue(value)
	added, err := v.state.App.PickLists.Add(v.state.context(), name, value)
	switch {
	case err != nil:
		return errorStatusCmd(fmt.Errorf("Не удалось сохранить списки: %w", err))
	case !added:
		return statusCmd(fmt.Sprintf("«%s» уже есть в списке", normalized))
	}
	return statusCmd("Добавлено: " + normalized)
}

func (v *pickListView) applyRemove(name domain.ListName, value string) tea.Cmd {
	removed, err := v.state.App.PickLists.Remove(v.state.context(), name, value)
	switch {
	case err != nil:
		return errorStatusCmd(fmt.Errorf("Не удалось сохранить списки: %w", err))
	case !removed:
		return statusCmd(fmt.Sprintf("«%s» нет в списке", value))
	}
	return statusCmd("Удалено: " + value)
}

func (v *pickListView) View() string {
	var tabs []string
	for i, n := range domain.ListNames {
		if i == v.list {
			tabs = append(tabs, formatter.StyleHeader.Render("["+n.Label()+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(" "+n.Label()+" "))
		}
	}

	lines := []string{strings.Join(tabs, "  "), ""}
	if v.err != nil {
		lines = append(lines, formatter.StyleRed.Render(v.err.Error()))
	}
	if len(v.values) == 0 {
		lines = append(lines, formatter.Dim("  (пусто)"))
	}
	from, to := v.window(v.state.ContentHeight() - len(lines))
	if from > 0 {
		lines = append(lines, formatter.Dim(fmt.Sprintf("  ↑ ещё %d", from)))
	}
	for i := from; i < to; i++ {
		val := v.values[i]
		if i == v.cursor {
			lines = append(lines, formatter.StyleHeader.Render("› ")+formatter.Bold(val))
		} else {
			lines = append(lines, "  "+val)
		}
	}
	if rest := len(v.values) - to; rest > 0 {
		lines = append(lines, formatter.Dim(fmt.Sprintf("  ↓ ещё %d", rest)))
	}
	return strings.Join(lines, "\n")
}

// window returns the range of values to draw in rows lines, keeping the
// cursor visible. Two lines are held back for the scroll markers. A
// non-positive rows means no height limit.
func (v *pickListView) window(rows int) (from, to int) {
	n := len(v.values)
	if rows <= 0 || n <= rows {
		return 0, n
	}
	rows = max(rows-2, 1)
	from = max(v.cursor-rows+1, 0)
	return from, min(from+rows, n)
}

func (v *pickListView) ID() ViewID    { return ViewPickLists }
func (v *pickListView) Title() string { return "Списки" }
func (v *pickListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "список")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "добавить")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "удалить")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "закрыть")),
	}
}
