package bfvm

import (
	"fmt"
	"io"
)

// Run executes instructions until the instruction pointer reaches the
// end of the program buffer. Recoverable conditions are yielded as
// events with a nil error; faults are yielded as errors and end the
// run.
func (m *Machine) Run(yield func(*Event, error) bool) {
	for {
		if m.IP < 0 || m.IP >= len(m.Prog) {
			return
		}

		at := m.IP
		c := m.Prog[at]
		m.IP++
		m.Pos.Offset = at
		m.Pos.Col++

		switch c {

		case '+':
			m.Tape[m.TP]++

		case '-':
			m.Tape[m.TP]--

		case '>':
			m.TP++
			if m.TP >= len(m.Tape) {
				m.TP = 0
				if !yield(&Event{
					Kind: EventOverflow,
					Pos:  m.Pos,
					IP:   at,
				}, nil) {
					return
				}
			} else if m.TP > m.TPMax {
				m.TPMax = m.TP
			}

		case '<':
			m.TP--
			if m.TP < 0 {
				m.TP = 0
				if !yield(&Event{
					Kind: EventUnderflow,
					Pos:  m.Pos,
					IP:   at,
				}, nil) {
					return
				}
			}

		case ',':
			if m.Receiving {
				b, err := m.Input.ReadByte()
				if err == nil {
					m.Tape[m.TP] = b
					break
				}
				if err != io.EOF {
					yield(nil, fmt.Errorf("read input: %w", err))
					return
				}
				m.Receiving = false
			}
			switch m.EOFPolicy {
			case EOFZero:
				m.Tape[m.TP] = 0
			case EOFDecrement:
				m.Tape[m.TP]--
			case EOFUnchanged:
			}

		case '.':
			if _, err := m.Output.Write([]byte{m.Tape[m.TP]}); err != nil {
				yield(nil, fmt.Errorf("write output: %w", err))
				return
			}

		case '[':
			if m.Tape[m.TP] == 0 {
				end, ok := m.Loops.Close(at)
				if !ok {
					yield(nil, fmt.Errorf("loop table has no close for offset %d", at))
					return
				}
				m.IP = end.Offset + 1
				m.Pos = end
			}

		case ']':
			if m.Tape[m.TP] != 0 {
				start, ok := m.Loops.Open(at)
				if !ok {
					yield(nil, fmt.Errorf("loop table has no open for offset %d", at))
					return
				}
				m.IP = start.Offset + 1
				m.Pos = start
			}

		case '#':
			if m.Debug && !m.DisableExtended {
				if !yield(&Event{
					Kind: EventDump,
					Pos:  m.Pos,
					IP:   at,
					TP:   m.TP,
					Tape: m.Tape[:m.TPMax+1],
				}, nil) {
					return
				}
			}

		case '@':
			if m.REPL && !m.DisableExtended {
				m.Reset()
			}

		case '\n':
			m.Pos.Line++
			m.Pos.Col = 0

		}
	}
}
