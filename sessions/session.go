package sessions

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/debugs"
	"github.com/bmoneill/bfi/logs"
)

// Separator splits a source file into program text and inline input
// data; everything after the first occurrence feeds the read
// instruction.
const Separator = '!'

// Session owns one machine and drives it to completion, reporting
// yielded events on the diagnostic sink.
type Session struct {
	Machine     *bfvm.Machine
	Logger      logs.Logger
	Tap         debugs.Tap
	HistoryPath string

	// Prompt overrides the interactive prompt, for tests.
	Prompt func() (string, error)
}

// RunFile loads a program from path and runs it to completion. When
// the source contains the separator marker, the bytes after it become
// the input stream; otherwise the read instruction consumes stdin.
func (s *Session) RunFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}

	prog := content
	if i := bytes.IndexByte(content, Separator); i >= 0 {
		prog = content[:i]
		s.Machine.Input = bytes.NewReader(content[i+1:])
	}

	return s.RunProgram(ctx, prog)
}

// RunProgram executes a complete program in one shot.
func (s *Session) RunProgram(ctx context.Context, prog []byte) error {
	m := s.Machine
	if m.Input == nil {
		m.Input = byteReader{os.Stdin}
	}
	if m.Output == nil {
		m.Output = os.Stdout
	}

	m.SetProg(prog)
	if err := m.RebuildLoops(); err != nil {
		return err
	}
	return s.drive(ctx)
}

func (s *Session) drive(ctx context.Context) error {
	for ev, err := range s.Machine.Run {
		if err != nil {
			return err
		}
		s.report(ctx, ev)
	}
	return nil
}

func (s *Session) report(ctx context.Context, ev *bfvm.Event) {
	switch ev.Kind {

	case bfvm.EventOverflow:
		s.Logger.WarnContext(ctx, "tape pointer overflow, pointer set to zero",
			"pos", ev.Pos.String(),
		)

	case bfvm.EventUnderflow:
		s.Logger.WarnContext(ctx, "tape pointer underflow, pointer set to zero",
			"pos", ev.Pos.String(),
		)

	case bfvm.EventDump:
		s.dump(ctx, ev)

	}
}

func (s *Session) dump(ctx context.Context, ev *bfvm.Event) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Line: %s\nTape pointer: %d\nInstruction pointer: %d\nMemory map:\n",
		ev.Pos, ev.TP, ev.IP)
	for i, c := range ev.Tape {
		fmt.Fprintf(&sb, "%d: %d\n", i, c)
	}
	s.Logger.InfoContext(ctx, "diagnostic dump",
		"state", sb.String(),
	)

	s.Tap(ctx, "diagnostic dump", map[string]any{
		"tape": ev.Tape,
		"tp":   ev.TP,
		"ip":   ev.IP,
		"line": ev.Pos.Line,
		"col":  ev.Pos.Col,
	})
}

// byteReader reads single bytes without buffering ahead, so program
// input and prompt input can share one stream.
type byteReader struct {
	r io.Reader
}

func (b byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := b.r.Read(buf[:])
		if n > 0 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
