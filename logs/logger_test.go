package logs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("tape.pointer"); key != "TAPE_POINTER" {
		t.Fatalf("got %q", key)
	}
}
