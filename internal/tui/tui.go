// Package tui is the full-screen front end of the library console.
// It drives the same session.Machine as the line-oriented session,
// with a scrolling transcript above a single input line.
package tui

import (
	"bytes"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/library/internal/session"
	"github.com/idilsaglam/library/internal/ui"
)

type keyMap struct {
	Submit   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.PageUp, k.PageDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// Model is the Bubble Tea model wrapping a session.Machine.
type Model struct {
	machine *session.Machine
	prompt  session.Prompt

	transcript *bytes.Buffer
	printer    *ui.Printer

	input textinput.Model
	view  viewport.Model
	help  help.Model

	// final holds the events of the last transition, printed again after
	// the alternate screen is gone.
	final []session.Event
}

// NewModel renders the welcome text and the first menu into the transcript.
// With noColor the transcript is plain text.
func NewModel(m *session.Machine, theme string, noColor bool) Model {
	buf := &bytes.Buffer{}
	r := lipgloss.DefaultRenderer()
	if noColor {
		r = lipgloss.NewRenderer(buf)
		theme = "mono"
	}

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	md := Model{
		machine:    m,
		transcript: buf,
		printer:    ui.NewPrinterFor(buf, r, theme),
		input:      ti,
		view:       viewport.New(80, 20),
		help:       help.New(),
	}
	session.RenderWelcome(md.printer)
	md.showPrompt()
	md.refresh()
	return md
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update and View implement Bubble Tea's Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-3, 3)
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-2, 10)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.final = m.machine.Quit()
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			return m.submit()
		case key.Matches(msg, keys.PageUp, keys.PageDown):
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.printer.Line(m.prompt.Text + line)

	m.final = m.machine.Feed(line)
	session.Render(m.printer, m.final)
	if m.machine.Done() {
		m.refresh()
		return m, tea.Quit
	}
	m.showPrompt()
	m.refresh()
	return m, nil
}

func (m *Model) showPrompt() {
	m.prompt = m.machine.Prompt()
	if m.prompt.Menu != nil {
		session.RenderMenu(m.printer, m.prompt.Menu)
	}
	m.input.Prompt = m.prompt.Text
}

func (m *Model) refresh() {
	m.view.SetContent(m.transcript.String())
	m.view.GotoBottom()
}

func (m Model) View() string {
	return m.view.View() + "\n" + m.input.View() + "\n" + m.help.View(keys)
}

// Transcript is everything shown so far, without the input line.
func (m Model) Transcript() string { return m.transcript.String() }

// Run shows the full-screen UI until the machine exits, then prints the
// final messages to out so they survive the alternate screen.
func Run(m *session.Machine, theme string, noColor bool, out io.Writer) error {
	p := tea.NewProgram(NewModel(m, theme, noColor), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		session.Render(ui.NewPrinter(out, theme, noColor), fm.final)
	}
	return nil
}
