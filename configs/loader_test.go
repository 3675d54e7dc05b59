package configs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var testSchema = `
tapeSize?: int & >0
eofPolicy?: "zero" | "decrement" | "unchanged"
flags?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var n int
	err := loader.AssignFirst("tapeSize", &n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4096 {
		t.Fatalf("got %v", n)
	}

	var flags []string
	err = loader.AssignFirst("flags", &flags)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", flags); str != "[-O2 -s]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &n)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	policy := First[string](loader, "eofPolicy")
	if policy != "decrement" {
		t.Fatalf("got %v", policy)
	}

	missing := First[string](loader, "compiler")
	if missing != "" {
		t.Fatalf("got %v", missing)
	}
}

func TestSchemaViolation(t *testing.T) {
	loader := NewLoader([]string{"test_bad.cue"}, testSchema)

	var n int
	err := loader.AssignFirst("tapeSize", &n)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "eofPolicy") {
		t.Fatalf("got %v", err)
	}
}
