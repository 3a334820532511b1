// core/dna/errors.go
package dna

import "fmt"

// FormatError reports malformed sequence/table/design input. Line is 1-based
// when known (0 = unknown); Offset is a 0-based byte offset when known.
type FormatError struct {
	Msg    string
	Detail string
	Line   int
	Offset int
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Detail != "":
		return fmt.Sprintf("line %d: %s %q", e.Line, e.Msg, e.Detail)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	case e.Detail != "":
		return fmt.Sprintf("%s %q at offset %d", e.Msg, e.Detail, e.Offset)
	default:
		return e.Msg
	}
}

// RangeError reports an out-of-bounds subsequence request. It indicates a
// programming defect in the caller and is always fatal.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("subsequence [%d,%d) out of range for length %d", e.Start, e.End, e.Len)
}
