// Package tui renders the user form as an interactive terminal modal.
//
// The closed screen shows an "Open Form" button. The open modal holds four
// inputs, a submit button, inline errors, and a popup for the last error.
// Esc, or a mouse click outside the modal box, is an overlay click. Alerts
// from the immediate mode block input until acknowledged.
package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-userform/pkg/userform"
)

// focusSubmit is the focus index of the submit button; lower indices are
// inputs in userform.Fields order.
const focusSubmit = 4

// SubmittedMsg is emitted as a command whenever a submission is accepted.
type SubmittedMsg struct {
	Data userform.FormData
}

// Option configures a Model.
type Option func(*Model)

// WithStyles overrides the palette.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// Model is the bubbletea model for the modal. It holds the current form
// snapshot and replaces it on every event.
type Model struct {
	reducer     *userform.Reducer
	state       userform.State
	fields      []userform.FieldID
	inputs      []textinput.Model
	focus       int
	alerts      []string
	submissions []userform.FormData

	width  int
	height int
	styles Styles
}

// New builds a closed modal. A nil reducer uses the userform defaults.
func New(reducer *userform.Reducer, options ...Option) Model {
	if reducer == nil {
		reducer = userform.NewReducer()
	}
	fields := userform.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, id := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Width = 32
		switch id {
		case userform.FieldDOB:
			in.Placeholder = "YYYY-MM-DD"
			in.CharLimit = len(userform.DateLayout)
		case userform.FieldEmail:
			in.Placeholder = "name@example.com"
		case userform.FieldPhone:
			in.Placeholder = "10 characters"
		}
		inputs[i] = in
	}

	m := Model{
		reducer: reducer,
		state:   userform.NewState(),
		fields:  fields,
		inputs:  inputs,
		styles:  DefaultStyles(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&m)
	}
	return m
}

// State returns the current form snapshot.
func (m Model) State() userform.State {
	return m.state.Clone()
}

// Submissions returns every accepted submission in order.
func (m Model) Submissions() []userform.FormData {
	return append([]userform.FormData(nil), m.submissions...)
}

// PendingAlerts returns the alerts not yet acknowledged.
func (m Model) PendingAlerts() []string {
	return append([]string(nil), m.alerts...)
}

// Focus reports the focused input index, or focusSubmit for the button.
func (m Model) Focus() int {
	return m.focus
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if len(m.alerts) > 0 {
			return m.handleAlertKey(msg)
		}
		if !m.state.Open {
			return m.handleClosedKey(msg)
		}
		return m.handleOpenKey(msg)
	}

	if m.state.Open && m.focus < focusSubmit {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.alerts = append([]string(nil), m.alerts[1:]...)
	}
	return m, nil
}

func (m Model) handleClosedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "o":
		return m.dispatch(userform.OpenEvent{})
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.dispatch(userform.CloseEvent{Target: userform.TargetOverlay})
	case "tab", "down":
		return m.setFocus((m.focus + 1) % (focusSubmit + 1))
	case "shift+tab", "up":
		return m.setFocus((m.focus + focusSubmit) % (focusSubmit + 1))
	case "ctrl+s":
		return m.dispatch(userform.SubmitEvent{})
	case "ctrl+x":
		return m.dispatch(userform.DismissErrorEvent{})
	case "enter":
		if m.focus == focusSubmit {
			return m.dispatch(userform.SubmitEvent{})
		}
		return m.setFocus(m.focus + 1)
	}

	if m.focus == focusSubmit {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	after := m.inputs[m.focus].Value()
	if after == before {
		return m, cmd
	}
	next, dispatchCmd := m.dispatch(userform.ChangeEvent{Field: m.fields[m.focus], Value: after})
	return next, tea.Batch(cmd, dispatchCmd)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.state.Open || len(m.alerts) > 0 {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	target := userform.TargetContent
	if !m.insideModal(msg.X, msg.Y) {
		target = userform.TargetOverlay
	}
	return m.dispatch(userform.CloseEvent{Target: target})
}

// insideModal reports whether a cell falls on the modal box. Without a known
// window size every cell counts as inside.
func (m Model) insideModal(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return true
	}
	box := m.modalView()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left := centerOffset(m.width, w)
	top := centerOffset(m.height, h)
	return x >= left && x < left+w && y >= top && y < top+h
}

func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return int(math.Round(float64(gap) * 0.5))
}

func (m Model) setFocus(idx int) (tea.Model, tea.Cmd) {
	m.inputs = append([]textinput.Model(nil), m.inputs...)
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == idx {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	m.focus = idx
	return m, cmd
}

func (m Model) blurAll() Model {
	m.inputs = append([]textinput.Model(nil), m.inputs...)
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = 0
	return m
}

// dispatch reduces ev, syncs the inputs with the new snapshot, and performs
// the effects.
func (m Model) dispatch(ev userform.Event) (tea.Model, tea.Cmd) {
	next, effects := m.reducer.Reduce(m.state, ev)
	m.state = next

	m.inputs = append([]textinput.Model(nil), m.inputs...)
	for i, id := range m.fields {
		if v := next.Data.Get(id); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}

	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case userform.AlertEffect:
			m.alerts = append(append([]string(nil), m.alerts...), e.Message)
		case userform.SubmittedEffect:
			data := e.Data
			m.submissions = append(append([]userform.FormData(nil), m.submissions...), data)
			cmds = append(cmds, func() tea.Msg { return SubmittedMsg{Data: data} })
		}
	}

	if _, ok := ev.(userform.OpenEvent); ok && next.Open {
		model, cmd := m.setFocus(0)
		return model, tea.Batch(append(cmds, cmd)...)
	}
	if !next.Open {
		m = m.blurAll()
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch {
	case len(m.alerts) > 0:
		body = m.alertView()
	case m.state.Open:
		body = m.modalView()
	default:
		body = m.closedView()
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) closedView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("User Details Modal"))
	b.WriteString("\n")
	b.WriteString(m.styles.ButtonActive.Render("Open Form"))
	if n := len(m.submissions); n > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render(pluralize(n, "submission")))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("enter: open • q: quit"))
	return b.String()
}

func (m Model) modalView() string {
	rows := []string{m.styles.Title.Render("Fill Details")}
	for i, id := range m.fields {
		rows = append(rows, m.styles.Label.Render(id.Label()+":"), m.inputs[i].View())
		if msg := m.state.ErrorFor(id); msg != "" {
			rows = append(rows, m.styles.Error.Render(msg))
		}
	}

	button := m.styles.Button
	if m.focus == focusSubmit {
		button = m.styles.ButtonActive
	}
	rows = append(rows, button.Render("Submit"))

	if m.state.LastError != "" {
		rows = append(rows, m.styles.Popup.Render(m.state.LastError+"\n[ctrl+x] Close"))
	}
	rows = append(rows, m.styles.Hint.Render("tab: next • enter: submit • esc: close"))
	return m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) alertView() string {
	return m.styles.Alert.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.alerts[0],
		m.styles.Hint.Render("[enter] OK"),
	))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
