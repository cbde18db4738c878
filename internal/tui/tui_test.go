package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/session"
)

func newTestModel() (Model, *session.Machine) {
	m := session.NewMachine(model.NewCatalog(model.DefaultBooks()...), model.NewLibrarian("Mr. John", "LIB001"), nil)
	return NewModel(m, "classic", true), m
}

func typeLine(t *testing.T, md Model, line string) (Model, tea.Cmd) {
	t.Helper()
	var next tea.Model = md
	if line != "" {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel_ShowsWelcomeAndMainMenu(t *testing.T) {
	md, _ := newTestModel()

	out := md.Transcript()
	assert.Contains(t, out, "LIBRARY MANAGEMENT SYSTEM")
	assert.Contains(t, out, "=== MAIN MENU ===")
	assert.Equal(t, "Choose an option: ", md.input.Prompt)
}

func TestModel_DrivesMachine(t *testing.T) {
	md, m := newTestModel()

	md, cmd := typeLine(t, md, "1")
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "Enter Student Name: ", md.input.Prompt)
	assert.Contains(t, md.Transcript(), "Choose an option: 1\n")

	md, _ = typeLine(t, md, "Ada")
	md, _ = typeLine(t, md, "S-1")
	md, _ = typeLine(t, md, "R-1")
	md, _ = typeLine(t, md, "1")
	md, _ = typeLine(t, md, "Algorithms")

	assert.Contains(t, md.Transcript(), "Book issued successfully!")
	assert.Equal(t, []string{"Algorithms"}, m.Student().Borrowed)
	assert.Empty(t, md.input.Value())
	assert.Equal(t, session.StateStudentMenu, m.State())
}

func TestModel_ExitQuitsProgram(t *testing.T) {
	md, m := newTestModel()

	md, cmd := typeLine(t, md, "4")

	assert.True(t, m.Done())
	assert.True(t, isQuit(cmd))
	require.Len(t, md.final, 1)
	assert.Contains(t, md.Transcript(), "Thank you for using Library Management System!")
}

func TestModel_EscQuitsFromAnyState(t *testing.T) {
	md, m := newTestModel()
	md, _ = typeLine(t, md, "2")
	md, _ = typeLine(t, md, "1")

	next, cmd := md.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, isQuit(cmd))
	assert.True(t, m.Done())
	assert.Len(t, next.(Model).final, 1)
	assert.Equal(t, 4, m.Catalog().Len())
}

func TestModel_WindowResize(t *testing.T) {
	md, _ := newTestModel()

	next, _ := md.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := next.(Model)
	assert.Equal(t, 100, out.view.Width)
	assert.Equal(t, 27, out.view.Height)
	assert.Contains(t, out.View(), "Choose an option: ")
}
