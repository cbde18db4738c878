package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/idilsaglam/library/internal/ui"
)

// Session is the line-oriented console front end of a Machine.
type Session struct {
	m   *Machine
	in  Prompter
	out *ui.Printer
	log *slog.Logger
}

func New(m *Machine, in Prompter, out *ui.Printer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{m: m, in: in, out: out, log: log}
}

// Run drives the machine until Exit. The prompter is closed exactly once
// when Run returns. End of input and Ctrl-C are handled like choosing Exit.
func (s *Session) Run() (err error) {
	defer func() {
		if cerr := s.in.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close input: %w", cerr)
		}
	}()

	RenderWelcome(s.out)
	for !s.m.Done() {
		p := s.m.Prompt()
		if p.Menu != nil {
			RenderMenu(s.out, p.Menu)
		}
		line, err := s.in.Prompt(p.Text)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				s.log.Debug("Input ended", "state", s.m.State(), "reason", err)
				s.out.Blank()
				Render(s.out, s.m.Quit())
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			s.in.AppendHistory(line)
		}
		Render(s.out, s.m.Feed(line))
	}
	return nil
}
