// core/fasta/reader.go
package fasta

import (
	"bufio"
	"io"
	"strings"

	"plasmid-core/dna"
)

// Record is a parsed single-record FASTA sequence.
type Record struct {
	ID  string
	Seq dna.Sequence
}

// Read parses a single-record FASTA stream: one '>' header line followed by
// one or more sequence lines, concatenated with whitespace stripped and
// normalized to uppercase. Malformed input fails with *dna.FormatError.
func Read(r io.Reader) (Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var rec Record
	var raw strings.Builder
	ln := 0
	sawHeader := false
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if sawHeader {
				return Record{}, &dna.FormatError{Msg: "expected a single FASTA record, found second header", Line: ln}
			}
			sawHeader = true
			rec.ID = strings.TrimSpace(line[1:])
			continue
		}
		if !sawHeader {
			return Record{}, &dna.FormatError{Msg: "sequence data before FASTA header", Line: ln}
		}
		raw.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return Record{}, err
	}
	if !sawHeader {
		return Record{}, &dna.FormatError{Msg: "missing FASTA header"}
	}
	seq, err := dna.Parse(raw.String())
	if err != nil {
		return Record{}, err
	}
	rec.Seq = seq
	return rec, nil
}

// ReadFile opens path (plain, gzip, or "-" for stdin) and reads one record.
func ReadFile(path string) (Record, error) {
	rc, err := Open(path)
	if err != nil {
		return Record{}, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc)
}
