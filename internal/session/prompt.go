package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// Prompter reads one line of user input after showing a prompt.
// *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// NewPrompter returns liner on an interactive terminal and a dumb line
// reader on stdin otherwise (pipes, redirected files, TERM=dumb).
func NewPrompter() Prompter {
	if !liner.TerminalSupported() || !isatty.IsTerminal(os.Stdin.Fd()) {
		return NewDumbPrompter(os.Stdin, os.Stdout)
	}
	lr := liner.NewLiner()
	lr.SetCtrlCAborts(true)
	return lr
}

// dumbterm echoes the prompt and reads up to the next newline.
type dumbterm struct {
	r   *bufio.Reader
	w   io.Writer
	src io.Reader
}

// NewDumbPrompter reads lines from r and writes prompts to w. Close closes
// r if it is an io.Closer.
func NewDumbPrompter(r io.Reader, w io.Writer) Prompter {
	return &dumbterm{r: bufio.NewReader(r), w: w, src: r}
}

func (d *dumbterm) Prompt(p string) (string, error) {
	fmt.Fprint(d.w, p)
	line, err := d.r.ReadString('\n')
	if err == io.EOF && line != "" {
		// Last line without a trailing newline still counts.
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *dumbterm) AppendHistory(string) {}

func (d *dumbterm) Close() error {
	if c, ok := d.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
