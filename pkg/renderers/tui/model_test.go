package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-userform/pkg/userform"
)

func newModel(options ...userform.Option) Model {
	clock := func() time.Time { return time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC) }
	base := []userform.Option{userform.WithValidator(userform.NewValidator(userform.WithClock(clock)))}
	return New(userform.NewReducer(append(base, options...)...))
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func text(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func fillValid(m Model) Model {
	m, _ = send(m,
		text("ada"), key(tea.KeyTab),
		text("ada@example.com"), key(tea.KeyTab),
		text("1990-02-28"), key(tea.KeyTab),
		text("5551234567"), key(tea.KeyTab),
	)
	return m
}

func TestClosedView(t *testing.T) {
	m := newModel()
	require.False(t, m.State().Open)
	require.Contains(t, m.View(), "Open Form")
}

func TestOpenAndType(t *testing.T) {
	m, _ := send(newModel(), key(tea.KeyEnter))
	require.True(t, m.State().Open)
	require.Equal(t, 0, m.Focus())

	m, _ = send(m, text("ada"))
	require.Equal(t, "ada", m.State().Data.Username)
	require.Contains(t, m.View(), "Fill Details")
}

func TestFocusCycling(t *testing.T) {
	m, _ := send(newModel(), key(tea.KeyEnter))

	for want := 1; want <= focusSubmit; want++ {
		m, _ = send(m, key(tea.KeyTab))
		require.Equal(t, want, m.Focus())
	}

	m, _ = send(m, key(tea.KeyTab))
	require.Equal(t, 0, m.Focus(), "expected wrap to first field")

	m, _ = send(m, key(tea.KeyShiftTab))
	require.Equal(t, focusSubmit, m.Focus(), "expected reverse wrap to submit")
}

func TestEnterAdvancesField(t *testing.T) {
	m, _ := send(newModel(), key(tea.KeyEnter), key(tea.KeyEnter))
	require.Equal(t, 1, m.Focus())
	require.True(t, m.State().Open)
}

func TestSubmitValid(t *testing.T) {
	m, _ := send(newModel(), key(tea.KeyEnter))
	m = fillValid(m)
	require.Equal(t, focusSubmit, m.Focus())

	m, cmd := send(m, key(tea.KeyEnter))
	require.NotNil(t, cmd, "expected submitted command")
	msg, ok := cmd().(SubmittedMsg)
	require.True(t, ok, "expected SubmittedMsg")
	require.Equal(t, "ada@example.com", msg.Data.Email)

	state := m.State()
	require.False(t, state.Open)
	require.True(t, state.Data.IsZero())
	require.Len(t, m.Submissions(), 1)
	for i := range m.inputs {
		require.Empty(t, m.inputs[i].Value(), "input %d not cleared", i)
	}
	require.Contains(t, m.View(), "1 submission")
}

func TestSubmitInvalidQueuesAlerts(t *testing.T) {
	m, _ := send(newModel(), key(tea.KeyEnter), key(tea.KeyCtrlS))

	msgs := userform.DefaultMessages()
	require.Equal(t, []string{msgs.Username, msgs.Email, msgs.Phone}, m.PendingAlerts())
	require.True(t, m.State().Rejected())
	require.Contains(t, m.View(), msgs.Username)

	// Input is blocked while an alert is showing.
	m, _ = send(m, text("x"))
	require.Empty(t, m.State().Data.Username)

	m, _ = send(m, key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter))
	require.Empty(t, m.PendingAlerts())
	require.Contains(t, m.View(), msgs.Phone, "inline error and popup remain")
}

func TestLiveValidationAfterSubmit(t *testing.T) {
	m, _ := send(newModel(userform.WithAlertMode(userform.AlertDeferred)), key(tea.KeyEnter), key(tea.KeyCtrlS))
	require.Equal(t, "Username is required.", m.State().ErrorFor(userform.FieldUsername))

	m, _ = send(m, text("a"))
	require.Empty(t, m.State().ErrorFor(userform.FieldUsername))
	require.Empty(t, m.PendingAlerts())
}

func TestEscClosesAndClearsErrors(t *testing.T) {
	m, _ := send(newModel(userform.WithAlertMode(userform.AlertDeferred)),
		key(tea.KeyEnter), text("ada"), key(tea.KeyCtrlS), key(tea.KeyEsc))

	state := m.State()
	require.False(t, state.Open)
	require.False(t, state.Submitted)
	require.Empty(t, state.LastError)
	require.False(t, state.Errors.Any())
	require.Equal(t, "ada", state.Data.Username, "values survive an overlay close")
}

func TestCtrlXDismissesPopup(t *testing.T) {
	m, _ := send(newModel(userform.WithAlertMode(userform.AlertDeferred)), key(tea.KeyEnter), key(tea.KeyCtrlS))
	require.True(t, strings.Contains(m.View(), "[ctrl+x] Close"))

	m, _ = send(m, key(tea.KeyCtrlX))
	require.Empty(t, m.State().LastError)
	require.NotContains(t, m.View(), "[ctrl+x] Close")
}

func TestMouseOverlayClick(t *testing.T) {
	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m, _ := send(newModel(), tea.WindowSizeMsg{Width: 120, Height: 40}, key(tea.KeyEnter))

	m, _ = send(m, press(60, 20))
	require.True(t, m.State().Open, "click inside the modal keeps it open")

	m, _ = send(m, press(0, 0))
	require.False(t, m.State().Open, "click on the overlay closes")
}

func TestQuitFromClosedScreen(t *testing.T) {
	_, cmd := send(newModel(), text("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok, "expected QuitMsg")
}
