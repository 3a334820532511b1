// core/dna/seq.go
package dna

import (
	"strings"
)

// Sequence is an immutable DNA string over {A,C,G,T}, uppercase.
// Build one with Parse; the zero value is the empty sequence.
type Sequence string

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// Parse normalizes raw text (case folding, whitespace stripped) into a
// Sequence. Any character outside A/C/G/T fails with *FormatError; the empty
// input fails too.
func Parse(raw string) (Sequence, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		if complement[c] == 0 {
			return "", &FormatError{Msg: "invalid base", Detail: string(raw[i]), Offset: i}
		}
		b.WriteByte(c)
	}
	if b.Len() == 0 {
		return "", &FormatError{Msg: "empty sequence"}
	}
	return Sequence(b.String()), nil
}

// Sub returns the bounds-checked half-open slice [start,end).
func (s Sequence) Sub(start, end int) (Sequence, error) {
	if start < 0 || end > len(s) || start > end {
		return "", &RangeError{Start: start, End: end, Len: len(s)}
	}
	return s[start:end], nil
}

// RevComp returns the reverse complement. s must be a valid Sequence.
func (s Sequence) RevComp() Sequence {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return Sequence(out)
}

// Count returns occurrences of base b (one of A/C/G/T) in s.
func (s Sequence) Count(b byte) int {
	return strings.Count(string(s), string(b))
}

// GC returns the fraction of G+C bases, 0 for the empty sequence.
func (s Sequence) GC() float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(s.Count('G')+s.Count('C')) / float64(len(s))
}

// AT returns the fraction of A+T bases, 0 for the empty sequence.
func (s Sequence) AT() float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(s.Count('A')+s.Count('T')) / float64(len(s))
}
