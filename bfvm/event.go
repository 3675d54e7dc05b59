package bfvm

type EventKind uint8

const (
	// EventOverflow reports the data pointer moving past the tape end;
	// the pointer has been clamped to zero.
	EventOverflow EventKind = iota + 1
	// EventUnderflow reports the data pointer moving below zero; the
	// pointer has been clamped to zero.
	EventUnderflow
	// EventDump reports a diagnostic dump instruction.
	EventDump
)

type Event struct {
	Kind EventKind
	Pos  Pos
	IP   int
	TP   int
	// Tape holds cells 0 through the high-water mark, for EventDump.
	Tape []byte
}
