package bfvm

import "fmt"

// Loop is a matched pair of brackets.
type Loop struct {
	Open  Pos
	Close Pos
}

// LoopTable maps matched brackets both ways, keyed by source offset.
type LoopTable struct {
	Loops       []Loop
	openToClose map[int]Pos
	closeToOpen map[int]Pos
}

// Close returns the position of the closing bracket matching the
// opening bracket at openOffset.
func (t *LoopTable) Close(openOffset int) (Pos, bool) {
	pos, ok := t.openToClose[openOffset]
	return pos, ok
}

// Open returns the position of the opening bracket matching the
// closing bracket at closeOffset.
func (t *LoopTable) Open(closeOffset int) (Pos, bool) {
	pos, ok := t.closeToOpen[closeOffset]
	return pos, ok
}

type UnmatchedBracketError struct {
	Bracket byte
	Pos     Pos
}

func (e *UnmatchedBracketError) Error() string {
	if e.Bracket == '[' {
		return fmt.Sprintf("unmatched opening bracket '[' at %s", e.Pos)
	}
	return fmt.Sprintf("unmatched closing bracket ']' at %s", e.Pos)
}

// BuildLoops pairs every opening bracket with its closing bracket in a
// single scan, tracking line and column for diagnostics.
func BuildLoops(prog []byte) (*LoopTable, error) {
	table := &LoopTable{
		openToClose: make(map[int]Pos),
		closeToOpen: make(map[int]Pos),
	}

	var stack []Pos
	pos := Pos{Line: 1}

	for i, c := range prog {
		pos.Offset = i
		pos.Col++

		switch c {

		case '[':
			stack = append(stack, pos)

		case ']':
			if len(stack) == 0 {
				return nil, &UnmatchedBracketError{
					Bracket: ']',
					Pos:     pos,
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			table.Loops = append(table.Loops, Loop{
				Open:  open,
				Close: pos,
			})
			table.openToClose[open.Offset] = pos
			table.closeToOpen[pos.Offset] = open

		case '\n':
			pos.Line++
			pos.Col = 0

		}
	}

	if len(stack) != 0 {
		// reports where the scan ended, not each unmatched opener
		return nil, &UnmatchedBracketError{
			Bracket: '[',
			Pos:     pos,
		}
	}

	return table, nil
}
