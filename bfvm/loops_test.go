package bfvm

import (
	"errors"
	"testing"
)

func TestBuildLoops(t *testing.T) {
	table, err := BuildLoops([]byte("+[>[-]<]"))
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Loops) != 2 {
		t.Fatalf("got %d loops", len(table.Loops))
	}

	end, ok := table.Close(1)
	if !ok {
		t.Fatal("outer open not found")
	}
	if end.Offset != 7 {
		t.Fatalf("got %d", end.Offset)
	}

	start, ok := table.Open(6)
	if !ok {
		t.Fatal("inner close not found")
	}
	if start.Offset != 3 {
		t.Fatalf("got %d", start.Offset)
	}

	// inner pair closes before the outer
	inner := table.Loops[0]
	outer := table.Loops[1]
	if inner.Open.Offset != 3 || inner.Close.Offset != 6 {
		t.Fatalf("got %+v", inner)
	}
	if outer.Open.Offset != 1 || outer.Close.Offset != 7 {
		t.Fatalf("got %+v", outer)
	}
}

func TestBuildLoopsNesting(t *testing.T) {
	prog := []byte("[[[[[[[[[[]]]]]]]]]]")
	table, err := BuildLoops(prog)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Loops) != 10 {
		t.Fatalf("got %d loops", len(table.Loops))
	}
	for _, loop := range table.Loops {
		// no pair crosses another's boundary
		for _, other := range table.Loops {
			if other.Open.Offset > loop.Open.Offset &&
				other.Open.Offset < loop.Close.Offset &&
				other.Close.Offset > loop.Close.Offset {
				t.Fatalf("crossing pairs: %+v %+v", loop, other)
			}
		}
	}
}

func TestUnmatchedClose(t *testing.T) {
	_, err := BuildLoops([]byte("+\n-]"))
	var unmatched *UnmatchedBracketError
	if !errors.As(err, &unmatched) {
		t.Fatalf("got %v", err)
	}
	if unmatched.Bracket != ']' {
		t.Fatalf("got %q", unmatched.Bracket)
	}
	if unmatched.Pos.Line != 2 || unmatched.Pos.Col != 2 {
		t.Fatalf("got %s", unmatched.Pos)
	}
}

func TestUnmatchedOpen(t *testing.T) {
	_, err := BuildLoops([]byte("[\n++"))
	var unmatched *UnmatchedBracketError
	if !errors.As(err, &unmatched) {
		t.Fatalf("got %v", err)
	}
	if unmatched.Bracket != '[' {
		t.Fatalf("got %q", unmatched.Bracket)
	}
	// the scan's end position
	if unmatched.Pos.Line != 2 || unmatched.Pos.Col != 2 {
		t.Fatalf("got %s", unmatched.Pos)
	}
}

func TestRebuildKeepsOldTableOnFailure(t *testing.T) {
	m := NewMachine(Params{TapeSize: 10})
	m.Append([]byte("[-]"))
	if err := m.RebuildLoops(); err != nil {
		t.Fatal(err)
	}
	old := m.Loops

	m.Append([]byte("]"))
	err := m.RebuildLoops()
	if err == nil {
		t.Fatal("expected error")
	}
	if m.Loops != old {
		t.Fatal("loop table replaced on failure")
	}
}
