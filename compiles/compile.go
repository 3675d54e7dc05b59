package compiles

import (
	"bufio"
	"fmt"
	"io"
)

// snippets maps each instruction to its C rendering. Loop brackets
// rely on the depth check below to produce balanced braces.
var snippets = map[byte]string{
	'>': "p++;",
	'<': "p--;",
	'+': "t[p]++;",
	'-': "t[p]--;",
	'.': "putchar(t[p]);",
	',': "t[p]=getchar();",
	'[': "while(t[p]){",
	']': "}",
}

// Compile translates a program into a standalone C source file. Bytes
// with no instruction meaning pass through as comments and emit
// nothing. Unbalanced brackets fail the translation, since the C
// output could not brace-match either.
func Compile(src io.Reader, w io.Writer, tapeSize int) error {
	in := bufio.NewReader(src)
	out := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(out,
		"#include <stdio.h>\nint main(void) {unsigned char t[%d];int p=0;",
		tapeSize,
	); err != nil {
		return err
	}

	depth := 0
	for {
		c, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch c {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return fmt.Errorf("unmatched closing bracket ']'")
			}
			depth--
		}
		snippet, ok := snippets[c]
		if !ok {
			continue
		}
		if _, err := out.WriteString(snippet); err != nil {
			return err
		}
	}
	if depth != 0 {
		return fmt.Errorf("unmatched opening bracket '['")
	}

	if _, err := out.WriteString("return 0;}"); err != nil {
		return err
	}
	return out.Flush()
}
