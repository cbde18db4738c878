package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to one output. Color is decided by the
// lipgloss renderer of that output, so pipes and buffers get plain text.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
	t Theme
}

// NewPrinter binds a theme to w. noColor forces the mono theme.
func NewPrinter(w io.Writer, theme string, noColor bool) *Printer {
	if noColor {
		theme = "mono"
	}
	return NewPrinterFor(w, lipgloss.NewRenderer(w), theme)
}

// NewPrinterFor writes to w but styles for r. Use it when w is a buffer
// that ends up on a terminal, as in the full-screen UI.
func NewPrinterFor(w io.Writer, r *lipgloss.Renderer, theme string) *Printer {
	return &Printer{w: w, r: r, t: NewTheme(theme, r)}
}

// Theme exposes what renderers need.
func (p *Printer) Theme() Theme { return p.t }

func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) Line(s string) { fmt.Fprintln(p.w, s) }

func (p *Printer) Blank() { fmt.Fprintln(p.w) }

// Styled prints s with st.
func (p *Printer) Styled(st lipgloss.Style, s string) { fmt.Fprintln(p.w, st.Render(s)) }

func (p *Printer) OK(msg string)   { p.Styled(p.t.Success, p.t.SymOK+" "+msg) }
func (p *Printer) Fail(msg string) { p.Styled(p.t.Error, p.t.SymFail+" "+msg) }
func (p *Printer) Warn(msg string) { p.Styled(p.t.Warn, p.t.SymWarn+" "+msg) }

// Header prints a section title like "=== MAIN MENU ===".
func (p *Printer) Header(title string) {
	p.Blank()
	p.Styled(p.t.Header, "=== "+title+" ===")
}

// Banner draws the startup title box.
func (p *Printer) Banner(title string, sub ...string) {
	lines := append([]string{p.t.Title.Render(title)}, sub...)
	box := p.r.NewStyle().
		Border(p.t.Border).
		BorderForeground(p.t.BorderColor).
		Padding(0, 6).
		Align(lipgloss.Center)
	p.Line(box.Render(strings.Join(lines, "\n")))
	p.Blank()
}
