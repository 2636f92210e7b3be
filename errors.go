// errors.go: caret-snippet rendering for scanner and parser failures.
//
// WrapErrorWithSource recognizes *LexError and *ParseError, both of which
// carry a byte position into the source line, and returns an error whose
// message includes the offending line with a caret under the column:
//
//	parse error: expected ')', got end of input
//
//	  1 | (1 + 2
//	    |       ^
//
// Evaluation errors carry a name, not a position, so they pass through
// unchanged, as does any other error.
package aether

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments lex/parse errors with a caret-annotated
// snippet of src. Other errors are returned as-is.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet(src, "lex error", e.Error(), e.Pos))
	case *ParseError:
		pos := e.Tok.Pos
		if e.Tok.Kind == EOF {
			pos = len(src)
		}
		return fmt.Errorf("%s", caretSnippet(src, "parse error", e.Error(), pos))
	default:
		return err
	}
}

// caretSnippet renders the single source line with a caret under the 0-based
// byte offset pos. Out-of-range offsets are clamped so rendering never fails.
func caretSnippet(src, header, msg string, pos int) string {
	line := src
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		if pos > i {
			// Error past the first physical line; fall back to the raw text.
			line = strings.ReplaceAll(src, "\n", " ")
		} else {
			line = line[:i]
		}
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(line) {
		pos = len(line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n\n", header, msg)
	fmt.Fprintf(&b, "  1 | %s\n", line)
	fmt.Fprintf(&b, "    | %s^", strings.Repeat(" ", pos))
	return b.String()
}
