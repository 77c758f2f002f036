package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/castqc/internal/cli/formatter"
	"github.com/alexanderramin/castqc/internal/domain"
	"github.com/alexanderramin/castqc/internal/form"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	basicLabelWidth   = 22
	defectLabelWidth  = 29
	quantityInputSize = 7
	chartWidth        = 36
)

// submitDoneMsg carries the result of a save started with ctrl+s.
type submitDoneMsg struct {
	outcome form.Outcome
}

// inspectionFormView is the data-entry form. Every keystroke is pushed into
// the form session so the accepted count and chart stay current.
type inspectionFormView struct {
	state   *SharedState
	session *form.Session
	inputs  []textinput.Model // parallel to form.Fields
	focus   int

	// While a save is in flight the session belongs to the save command;
	// the view renders from these cached values and ignores keys.
	saving    bool
	accepted  int
	breakdown domain.Breakdown
}

func newInspectionFormView(state *SharedState) *inspectionFormView {
	app := state.App
	opts := []form.Option{form.WithClearOnSuccess(app.Config.ClearOnSuccess)}
	if app.Now != nil {
		opts = append(opts, form.WithClock(app.Now))
	}

	v := &inspectionFormView{
		state:   state,
		session: form.NewSession(app.Inspections, opts...),
		inputs:  make([]textinput.Model, len(form.Fields)),
	}
	for i, f := range form.Fields {
		v.inputs[i] = newFieldInput(f)
	}
	v.loadSuggestions()
	v.syncFromSession()
	v.inputs[0].Focus()
	return v
}

func newFieldInput(f form.Field) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	switch {
	case f.Quantity:
		ti.CharLimit = domain.MaxQuantityDigits
		ti.Width = quantityInputSize
		ti.Placeholder = "0"
	case f.ID == form.FieldAcceptanceDate:
		ti.CharLimit = len("02.01.2006")
		ti.Width = 11
		ti.Placeholder = "ДД.ММ.ГГГГ"
	case f.ID == form.FieldNote:
		ti.Width = 60
	default:
		ti.Width = 28
	}
	if f.List != "" {
		ti.ShowSuggestions = true
		// tab moves focus, so enter takes the suggestion.
		ti.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("enter"))
	}
	return ti
}

func (v *inspectionFormView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *inspectionFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		v.saving = false
		v.syncFromSession()
		return v, outcomeStatus(msg.outcome)

	case refreshViewMsg:
		v.loadSuggestions()
		return v, nil

	case tea.KeyMsg:
		if v.saving {
			return v, nil
		}
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

func (v *inspectionFormView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return v, v.moveFocus(1)
	case "shift+tab", "up":
		return v, v.moveFocus(-1)
	case "ctrl+s":
		return v, v.submit()
	case "ctrl+r":
		v.session.Reset()
		v.syncFromSession()
		return v, statusCmd("Форма очищена")
	case "ctrl+l":
		return v, pushView(newPickListView(v.state))
	case "enter":
		var cmd tea.Cmd
		v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
		v.store(v.focus)
		return v, tea.Batch(cmd, v.moveFocus(1))
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	v.store(v.focus)
	return v, cmd
}

func (v *inspectionFormView) moveFocus(delta int) tea.Cmd {
	v.inputs[v.focus].Blur()
	n := len(v.inputs)
	v.focus = (v.focus + delta + n) % n
	return v.inputs[v.focus].Focus()
}

// store pushes input i into the session and writes back the sanitized value.
func (v *inspectionFormView) store(i int) {
	raw := v.inputs[i].Value()
	if kept := v.session.Set(form.Fields[i].ID, raw); kept != raw {
		v.inputs[i].SetValue(kept)
	}
	v.accepted = v.session.Accepted()
	v.breakdown = v.session.Breakdown()
}

func (v *inspectionFormView) syncFromSession() {
	for i, f := range form.Fields {
		v.inputs[i].SetValue(v.session.Value(f.ID))
	}
	v.accepted = v.session.Accepted()
	v.breakdown = v.session.Breakdown()
}

func (v *inspectionFormView) loadSuggestions() {
	lists := v.state.App.PickLists
	if lists == nil {
		return
	}
	for i, f := range form.Fields {
		if f.List == "" {
			continue
		}
		l, err := lists.List(f.List)
		if err != nil {
			continue
		}
		v.inputs[i].SetSuggestions(l.Values())
	}
}

func (v *inspectionFormView) submit() tea.Cmd {
	v.saving = true
	session := v.session
	ctx := v.state.context()
	return func() tea.Msg {
		return submitDoneMsg{outcome: session.Submit(ctx)}
	}
}

func outcomeStatus(out form.Outcome) tea.Cmd {
	switch out.State {
	case form.StateSuccess:
		return statusCmd(fmt.Sprintf("%s (№%d)", out.Message(), out.RecordID))
	default:
		text := strings.ReplaceAll(out.Message(), "\n", "; ")
		return func() tea.Msg { return statusMsg{text: text, isErr: true} }
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *inspectionFormView) View() string {
	var basic, second, rework, final []int
	note := -1
	for i, f := range form.Fields {
		switch f.Group {
		case form.GroupBasic:
			basic = append(basic, i)
		case form.GroupSecondGrade:
			second = append(second, i)
		case form.GroupRework:
			rework = append(rework, i)
		case form.GroupFinalDefect:
			final = append(final, i)
		case form.GroupNote:
			note = i
		}
	}

	var left []string
	left = append(left, formatter.Header("Основные данные"))
	for _, i := range basic {
		left = append(left, v.cell(i, basicLabelWidth))
	}
	accepted := lipgloss.NewStyle().Width(basicLabelWidth).Render("Контроль принято")
	left = append(left, accepted+" "+formatter.StyleGreen.Bold(true).Render(fmt.Sprint(v.accepted)))

	yield := lipgloss.NewStyle().Width(basicLabelWidth).Render("Выход годного")
	left = append(left, yield+" "+formatter.RenderProgress(formatter.Share(v.accepted, v.breakdown.Total()), 16))

	chart := formatter.RenderBreakdown(v.breakdown, chartWidth)
	if chart == "" {
		chart = formatter.Dim("нет данных")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingRight(4).Render(strings.Join(left, "\n")),
		formatter.RenderBox("Сводка", chart))

	sections := []string{
		top,
		"",
		formatter.Header("Второй сорт"),
		v.row(second, defectLabelWidth),
		"",
		formatter.Header("Доработка"),
		v.row(rework, defectLabelWidth),
		"",
		formatter.Header("Окончательный брак"),
		v.grid(final, 3, defectLabelWidth),
	}
	if note >= 0 {
		sections = append(sections, "", v.cell(note, basicLabelWidth))
	}
	if v.saving {
		sections = append(sections, formatter.Dim("Сохранение..."))
	}
	return strings.Join(sections, "\n")
}

func (v *inspectionFormView) cell(i, labelWidth int) string {
	style := formatter.StyleFg
	if i == v.focus {
		style = formatter.StyleHeader
	}
	label := style.Width(labelWidth).Render(form.Fields[i].Label)
	input := v.inputs[i].View()
	if form.Fields[i].Quantity {
		input = lipgloss.NewStyle().Width(quantityInputSize + 1).Render(input)
	}
	return label + " " + input
}

func (v *inspectionFormView) row(idx []int, labelWidth int) string {
	cells := make([]string, len(idx))
	for n, i := range idx {
		cells[n] = v.cell(i, labelWidth)
	}
	return strings.Join(cells, "  ")
}

// grid lays idx out in cols columns, filling column by column.
func (v *inspectionFormView) grid(idx []int, cols, labelWidth int) string {
	rows := (len(idx) + cols - 1) / cols
	columns := make([]string, 0, cols)
	for c := 0; c < cols; c++ {
		var lines []string
		for r := 0; r < rows; r++ {
			n := c*rows + r
			if n >= len(idx) {
				break
			}
			lines = append(lines, v.cell(idx[n], labelWidth))
		}
		columns = append(columns, lipgloss.NewStyle().PaddingRight(2).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (v *inspectionFormView) ID() ViewID    { return ViewInspectionForm }
func (v *inspectionFormView) Title() string { return "Новая запись" }
func (v *inspectionFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "поле")),
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "сохранить")),
		key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "очистить")),
		key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "списки")),
	}
}
