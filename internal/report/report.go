// Package report analyzes an assembled plasmid: base composition,
// restriction-site survey against a catalog, and a simple ORF scan.
package report

import (
	"fmt"
	"io"
	"sort"

	"plasmid-core/dna"
	"plasmid-core/marker"
	"plasmid-core/resite"
)

// Composition is the per-base count of the sequence.
type Composition struct {
	A int `json:"a"`
	C int `json:"c"`
	G int `json:"g"`
	T int `json:"t"`
}

// SiteSummary is the occurrence list for one enzyme.
type SiteSummary struct {
	Enzyme      string `json:"enzyme"`
	Recognition string `json:"recognition"`
	Positions   []int  `json:"positions"`
}

// ORF is an open reading frame on the forward strand.
type ORF struct {
	Start    int `json:"start"`
	End      int `json:"end"`
	Length   int `json:"length"`
	Frame    int `json:"frame"`
	AALength int `json:"aaLength"`
}

// MinORFLength is the reporting cutoff in bases (100 amino acids).
const MinORFLength = 300

// Report is the full analysis of one sequence.
type Report struct {
	Header      string        `json:"header"`
	Length      int           `json:"length"`
	Composition Composition   `json:"composition"`
	GCContent   float64       `json:"gcContent"`
	ATContent   float64       `json:"atContent"`
	Sites       []SiteSummary `json:"sites"`
	ORFs        []ORF         `json:"orfs"`
}

// Analyze surveys seq against the catalog's restriction enzymes.
func Analyze(header string, seq dna.Sequence, cat *marker.Catalog) (Report, error) {
	r := Report{
		Header: header,
		Length: len(seq),
		Composition: Composition{
			A: seq.Count('A'),
			C: seq.Count('C'),
			G: seq.Count('G'),
			T: seq.Count('T'),
		},
		GCContent: seq.GC(),
		ATContent: seq.AT(),
		ORFs:      FindORFs(seq, MinORFLength),
	}

	idx := resite.NewIndex(cat)
	var names []string
	for _, rec := range cat.Enzymes() {
		names = append(names, rec.Name)
	}
	byEnzyme, err := idx.AllSites(seq, names)
	if err != nil {
		return Report{}, err
	}
	for _, name := range names {
		sites, ok := byEnzyme[name]
		if !ok {
			continue
		}
		sum := SiteSummary{Enzyme: name, Recognition: string(sites[0].Recognition)}
		for _, s := range sites {
			sum.Positions = append(sum.Positions, s.Pos)
		}
		r.Sites = append(r.Sites, sum)
	}
	return r, nil
}

var stopCodons = map[dna.Sequence]bool{"TAA": true, "TAG": true, "TGA": true}

// FindORFs scans the three forward reading frames for ATG..stop spans of at
// least minLen bases. Results are ordered by length descending then start
// ascending.
func FindORFs(seq dna.Sequence, minLen int) []ORF {
	var out []ORF
	for frame := 0; frame < 3; frame++ {
		for pos := frame; pos+3 <= len(seq); pos += 3 {
			if seq[pos:pos+3] != "ATG" {
				continue
			}
			for end := pos + 3; end+3 <= len(seq); end += 3 {
				if !stopCodons[seq[end:end+3]] {
					continue
				}
				if n := end + 3 - pos; n >= minLen {
					out = append(out, ORF{
						Start:    pos,
						End:      end + 3,
						Length:   n,
						Frame:    frame,
						AALength: n / 3,
					})
				}
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].Start < out[j].Start
	})
	return out
}

// WriteText renders the report as the human-readable analysis table.
func WriteText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "Plasmid: %s\nLength: %d bp\n", r.Header, r.Length); err != nil {
		return err
	}
	c := r.Composition
	if _, err := fmt.Fprintf(w, "Bases: A=%d C=%d G=%d T=%d\nGC content: %.2f%%\nAT content: %.2f%%\n",
		c.A, c.C, c.G, c.T, 100*r.GCContent, 100*r.ATContent); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nRestriction sites (%d enzymes):\n", len(r.Sites)); err != nil {
		return err
	}
	for _, s := range r.Sites {
		if _, err := fmt.Fprintf(w, "  %-12s %-10s x%d %v\n", s.Enzyme, s.Recognition, len(s.Positions), s.Positions); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nORFs >= %d bp: %d\n", MinORFLength, len(r.ORFs)); err != nil {
		return err
	}
	for _, o := range r.ORFs {
		if _, err := fmt.Fprintf(w, "  %d..%d len=%d frame=%d aa=%d\n", o.Start, o.End, o.Length, o.Frame, o.AALength); err != nil {
			return err
		}
	}
	return nil
}
