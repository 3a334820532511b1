// internal/output/manifest.go
package output

import (
	"fmt"
	"io"

	"plasmid-core/assembly"
)

// Placement is one manifest row: a design entry and its [Start,End) offsets
// in the assembled sequence.
type Placement struct {
	Component string `json:"component"`
	MarkerRef string `json:"marker"`
	Kind      string `json:"type"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// Manifest is the placement side channel consumed by the analyzer.
type Manifest struct {
	RunID      string      `json:"runId"`
	Source     string      `json:"source"`
	Length     int         `json:"length"`
	Placements []Placement `json:"placements"`
}

// NewManifest flattens an assembled plasmid into a Manifest.
func NewManifest(runID, source string, p assembly.Plasmid) Manifest {
	m := Manifest{RunID: runID, Source: source, Length: len(p.Seq)}
	for _, seg := range p.Segments {
		m.Placements = append(m.Placements, Placement{
			Component: seg.Entry.Component,
			MarkerRef: seg.Entry.MarkerRef,
			Kind:      seg.Kind.String(),
			Start:     seg.Start,
			End:       seg.End,
		})
	}
	return m
}

// TSVHeader is the manifest column header line.
const TSVHeader = "component\tmarker\ttype\tstart\tend"

// WriteTSV writes the manifest as a tab-delimited table with a comment line
// carrying the run metadata.
func WriteTSV(w io.Writer, m Manifest) error {
	if _, err := fmt.Fprintf(w, "# run=%s source=%s length=%d\n", m.RunID, m.Source, m.Length); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, p := range m.Placements {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			p.Component, p.MarkerRef, p.Kind, p.Start, p.End,
		); err != nil {
			return err
		}
	}
	return nil
}
