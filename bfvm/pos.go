package bfvm

import "fmt"

// Pos locates a byte in the program source. Line is 1-based, Col is
// the 1-based column of the byte on its line.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.Line, p.Col)
}
