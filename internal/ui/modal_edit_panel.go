package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dashgrid/internal/jsonutil"
)

// EditPanelModal is a modal for entering a panel's payload as a one-line
// JSON object. The payload stays opaque to the engine; parsing happens here
// on the caller's side of the boundary.
type EditPanelModal struct {
	X, Y    int
	input   textinput.Model
	lastErr error
}

// Ensure EditPanelModal implements View.
var _ View = (*EditPanelModal)(nil)

// NewEditPanelModal creates an edit modal for the panel at (x, y),
// pre-filled with the panel's current payload rendered as JSON.
func NewEditPanelModal(x, y int, current string) *EditPanelModal {
	ti := textinput.New()
	ti.Placeholder = `{"title":"cpu"}`
	ti.Width = 48
	ti.SetValue(current)
	ti.Focus()
	return &EditPanelModal{X: x, Y: y, input: ti}
}

// Init implements View.
func (m *EditPanelModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *EditPanelModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			data, err := jsonutil.ParseObject(m.input.Value())
			if err != nil {
				m.lastErr = err
				return m, nil
			}
			x, y := m.X, m.Y
			return m, func() tea.Msg {
				return SubmitPanelDataMsg{X: x, Y: y, Data: data}
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *EditPanelModal) View() string {
	content := Styles.ModalTitle.Render(fmt.Sprintf("Edit panel (%d,%d)", m.X, m.Y)) + "\n\n"
	content += m.input.View() + "\n"
	if m.lastErr != nil {
		content += Styles.ModalError.Render(m.lastErr.Error()) + "\n"
	}
	content += "\n" + Styles.ModalHelp.Render("Enter: apply  Esc: cancel")
	return Styles.ModalBox.Render(content)
}
