package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Session runs the interactive command loop until the user leaves.
type Session interface {
	Run() error
}

// Options configures session creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if Out is a TTY.
	Banner     string    // Welcome line shown at session start.
	Prompt     string    // Input prompt text.
	Executor   Executor  // Command executor.
}

// NewSession returns a Bubble Tea session when output is a TTY, or a plain
// line-oriented session otherwise. ForcePlain overrides TTY detection.
func NewSession(opts Options) Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Out) {
		return &PlainSession{opts: opts}
	}
	return &TUISession{opts: opts}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainSession reads commands line by line and prints replies as plain text.
type PlainSession struct {
	opts Options
}

// Run loops over input lines until a quit command or EOF.
func (s *PlainSession) Run() error {
	_, _ = fmt.Fprintln(s.opts.Out, s.opts.Banner)

	scanner := bufio.NewScanner(s.opts.In)
	for {
		_, _ = fmt.Fprint(s.opts.Out, s.opts.Prompt)
		if !scanner.Scan() {
			// EOF ends the session without a farewell line.
			_, _ = fmt.Fprintln(s.opts.Out)
			return scanner.Err()
		}

		reply, quit := s.opts.Executor.Execute(scanner.Text())
		if reply != "" {
			_, _ = fmt.Fprintln(s.opts.Out, reply)
		}
		if quit {
			return nil
		}
	}
}

// TUISession runs the session as a Bubble Tea program.
// Falls back to a plain session if the program fails to start.
type TUISession struct {
	opts Options
}

// Run starts the Bubble Tea program.
func (s *TUISession) Run() error {
	model := NewModel(s.opts.Executor, s.opts.Banner, s.opts.Prompt)
	p := tea.NewProgram(model, tea.WithInput(s.opts.In), tea.WithOutput(s.opts.Out))

	if _, err := p.Run(); err != nil {
		plain := &PlainSession{opts: s.opts}
		return plain.Run()
	}
	return nil
}
