package sessions

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmoneill/bfi/bfvm"
	"github.com/bmoneill/bfi/modes"
	"github.com/reusee/dscope"
)

func newTestSession(params bfvm.Params) (*Session, *bytes.Buffer) {
	out := new(bytes.Buffer)
	m := bfvm.NewMachine(params)
	m.Output = out
	return &Session{
		Machine: m,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tap:     func(context.Context, string, map[string]any) {},
	}, out
}

func TestRunProgramHello(t *testing.T) {
	s, out := newTestSession(bfvm.Params{})
	prog := `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.`
	if err := s.RunProgram(t.Context(), []byte(prog)); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRunProgramUnmatched(t *testing.T) {
	s, _ := newTestSession(bfvm.Params{})
	err := s.RunProgram(t.Context(), []byte("+["))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestDumpFormat(t *testing.T) {
	s, _ := newTestSession(bfvm.Params{Debug: true})
	var logBuf bytes.Buffer
	s.Logger = slog.New(slog.NewTextHandler(&logBuf, nil))
	if err := s.RunProgram(t.Context(), []byte("+>++#")); err != nil {
		t.Fatal(err)
	}
	logged := logBuf.String()
	for _, want := range []string{
		"Line: 1,5",
		"Tape pointer: 1",
		"Instruction pointer: 4",
		"Memory map:",
	} {
		if !strings.Contains(logged, want) {
			t.Fatalf("missing %q in %q", want, logged)
		}
	}
}

func TestRunFileSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.bf")
	if err := os.WriteFile(path, []byte(",.,.!AB"), 0644); err != nil {
		t.Fatal(err)
	}
	s, out := newTestSession(bfvm.Params{})
	if err := s.RunFile(t.Context(), path); err != nil {
		t.Fatal(err)
	}
	if out.String() != "AB" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRunFileMissing(t *testing.T) {
	s, _ := newTestSession(bfvm.Params{})
	err := s.RunFile(t.Context(), filepath.Join(t.TempDir(), "nope.bf"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNewSessionWired(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		newSession NewSession,
	) {
		s := newSession(bfvm.Params{})
		out := new(bytes.Buffer)
		s.Machine.Output = out
		if err := s.RunProgram(t.Context(), []byte("+++.")); err != nil {
			t.Fatal(err)
		}
		if out.String() != "\x03" {
			t.Fatalf("got %q", out.String())
		}
	})
}
