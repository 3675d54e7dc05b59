package sessions

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmoneill/bfi/procs"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

// RunREPL reads source lines interactively and feeds each one to the
// machine. Appended lines extend the running program, so cells and the
// tape pointer carry over between turns. A line that fails bracket
// matching is discarded and the session continues.
func (s *Session) RunREPL(ctx context.Context) error {
	m := s.Machine
	if m.Output == nil {
		m.Output = os.Stdout
	}

	prompt := s.Prompt
	if prompt == nil {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			state := liner.NewLiner()
			defer state.Close()
			state.SetCtrlCAborts(true)
			if s.HistoryPath != "" {
				if f, err := os.Open(s.HistoryPath); err == nil {
					state.ReadHistory(f)
					f.Close()
				}
				defer func() {
					f, err := os.Create(s.HistoryPath)
					if err != nil {
						return
					}
					defer f.Close()
					state.WriteHistory(f)
				}()
			}
			prompt = func() (string, error) {
				line, err := state.Prompt("> ")
				if err != nil {
					return "", err
				}
				if line != "" {
					state.AppendHistory(line)
				}
				return line, nil
			}
		} else {
			// one buffer for both the line prompt and the read
			// instruction, so bytes after a program line still reach ','
			in := bufio.NewReader(os.Stdin)
			if m.Input == nil {
				m.Input = in
			}
			prompt = func() (string, error) {
				fmt.Print("> ")
				line, err := in.ReadString('\n')
				if err != nil {
					if err == io.EOF && line != "" {
						return strings.TrimSuffix(line, "\n"), nil
					}
					return "", err
				}
				return strings.TrimSuffix(line, "\n"), nil
			}
		}
	}
	if m.Input == nil {
		m.Input = byteReader{os.Stdin}
	}

	var proc procs.Proc[*Session] = procs.Procs[*Session]{
		&turn{
			ctx:    ctx,
			prompt: prompt,
		},
	}
	for proc != nil {
		next, err := proc.Run(s)
		if err != nil {
			return err
		}
		proc = next
	}
	return nil
}

// turn is one read-run cycle. It re-enqueues itself until the prompt
// reports end of input.
type turn struct {
	ctx    context.Context
	prompt func() (string, error)
}

var _ procs.Proc[*Session] = new(turn)

func (t *turn) Run(s *Session) (procs.Proc[*Session], error) {
	line, err := t.prompt()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil, nil
		}
		return nil, err
	}

	m := s.Machine
	mark := len(m.Prog)
	m.Append(append([]byte(line), '\n'))
	if err := m.RebuildLoops(); err != nil {
		s.Logger.ErrorContext(t.ctx, "parse error",
			"error", err,
		)
		m.Truncate(mark)
		return t, nil
	}

	if err := s.drive(t.ctx); err != nil {
		return nil, err
	}
	return t, nil
}
