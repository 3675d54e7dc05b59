package bfvm

import "io"

// EOFPolicy selects what a read instruction stores once the input
// source is exhausted.
type EOFPolicy uint8

const (
	EOFZero EOFPolicy = iota
	EOFDecrement
	EOFUnchanged
)

const (
	DefaultTapeSize = 30000
	DefaultInputMax = 1024
)

type Params struct {
	TapeSize        int
	EOFPolicy       EOFPolicy
	Debug           bool
	REPL            bool
	DisableExtended bool
}

// Machine interprets a program over a fixed-length byte tape.
type Machine struct {
	Params

	Prog  []byte
	Tape  []byte
	Loops *LoopTable

	IP    int
	TP    int
	TPMax int
	Pos   Pos

	// Receiving is cleared for the rest of the run when the input
	// source reaches end of input.
	Receiving bool

	Input  io.ByteReader
	Output io.Writer
}

func NewMachine(params Params) *Machine {
	if params.TapeSize <= 0 {
		params.TapeSize = DefaultTapeSize
	}
	return &Machine{
		Params:    params,
		Tape:      make([]byte, params.TapeSize),
		Pos:       Pos{Line: 1},
		Receiving: true,
	}
}

// SetProg replaces the whole program buffer, as in one-shot runs.
func (m *Machine) SetProg(prog []byte) {
	m.Prog = prog
}

// Append adds source to the end of the program buffer, doubling
// capacity as needed.
func (m *Machine) Append(src []byte) {
	need := len(m.Prog) + len(src)
	if need > cap(m.Prog) {
		newCap := cap(m.Prog) * 2
		if newCap == 0 {
			newCap = DefaultInputMax
		}
		for newCap < need {
			newCap *= 2
		}
		buf := make([]byte, len(m.Prog), newCap)
		copy(buf, m.Prog)
		m.Prog = buf
	}
	m.Prog = append(m.Prog, src...)
}

// Truncate drops program bytes appended after n, keeping capacity.
func (m *Machine) Truncate(n int) {
	if n < len(m.Prog) {
		m.Prog = m.Prog[:n]
	}
}

// RebuildLoops rescans the whole program buffer. On failure the
// previous loop table is kept.
func (m *Machine) RebuildLoops() error {
	table, err := BuildLoops(m.Prog)
	if err != nil {
		return err
	}
	m.Loops = table
	return nil
}

// Reset clears all program and tape state for a fresh session.
func (m *Machine) Reset() {
	m.Prog = m.Prog[:0]
	clear(m.Tape)
	m.Loops = nil
	m.IP = 0
	m.TP = 0
	m.TPMax = 0
	m.Pos = Pos{Line: 1}
	m.Receiving = true
}
