// core/fasta/writer.go
package fasta

import (
	"fmt"
	"io"

	"plasmid-core/dna"
)

// DefaultLineWidth is the sequence line width used when a caller passes a
// non-positive width to Write.
const DefaultLineWidth = 60

// Write emits one FASTA record, wrapping the sequence at width columns.
func Write(w io.Writer, id string, seq dna.Sequence, width int) error {
	if width <= 0 {
		width = DefaultLineWidth
	}
	if _, err := fmt.Fprintf(w, ">%s\n", id); err != nil {
		return err
	}
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", string(seq[i:end])); err != nil {
			return err
		}
	}
	return nil
}
