// core/assembly/assembler.go
package assembly

import (
	"github.com/go-faster/errors"

	"plasmid-core/design"
	"plasmid-core/dna"
	"plasmid-core/marker"
	"plasmid-core/ori"
	"plasmid-core/resite"
)

// DefaultStripPasses bounds the re-scan loop when removing unwanted sites.
const DefaultStripPasses = 3

// Segment is one placed design entry with its [Start,End) offsets in the
// assembled sequence. Segments are contiguous, non-overlapping, and cover the
// whole output in design order.
type Segment struct {
	Entry design.Entry
	Kind  marker.Type
	Start int
	End   int
}

// Plasmid is an assembled sequence plus its placement manifest. Values are
// immutable: stripping produces a new Plasmid rather than editing in place.
type Plasmid struct {
	Seq      dna.Sequence
	Segments []Segment
}

// Assembler builds plasmids from a design against a catalog, an ORI detector
// and a restriction-site index.
type Assembler struct {
	cat    *marker.Catalog
	det    *ori.Detector
	idx    *resite.Index
	passes int
}

// New returns an Assembler. passes <= 0 selects DefaultStripPasses.
func New(cat *marker.Catalog, det *ori.Detector, idx *resite.Index, passes int) *Assembler {
	if passes <= 0 {
		passes = DefaultStripPasses
	}
	return &Assembler{cat: cat, det: det, idx: idx, passes: passes}
}

// Assemble builds the provisional plasmid in design order, then strips every
// restriction site of catalog enzymes the design does not reference. Failures
// abort the whole assembly; no partial result is returned.
func (a *Assembler) Assemble(genome dna.Sequence, entries []design.Entry) (Plasmid, error) {
	p, err := a.Build(genome, entries)
	if err != nil {
		return Plasmid{}, err
	}
	return a.Strip(p, entries)
}

// Build resolves each entry and concatenates segments in design order,
// without site stripping.
func (a *Assembler) Build(genome dna.Sequence, entries []design.Entry) (Plasmid, error) {
	var (
		segs   []Segment
		parts  []byte
		oriSeg dna.Sequence
		oriRan bool
	)
	for _, e := range entries {
		rec, err := a.cat.Resolve(e.MarkerRef)
		if err != nil {
			return Plasmid{}, errors.Wrap(err, "resolve "+e.Component)
		}

		var seg dna.Sequence
		switch rec.Type {
		case marker.RestrictionEnzyme:
			if len(rec.Seq) == 0 {
				return Plasmid{}, errors.Errorf("entry %q: enzyme %q has no recognition sequence", e.Component, rec.Name)
			}
			seg = rec.Seq
		case marker.ReplicationOrigin:
			// The detector runs once per assembly; later origin entries
			// reuse the pick.
			if !oriRan {
				cands, err := a.det.Detect(genome)
				if err != nil {
					return Plasmid{}, errors.Wrap(err, "entry "+e.Component)
				}
				top := cands[0]
				oriSeg, err = genome.Sub(top.Pos, top.Pos+top.Length)
				if err != nil {
					return Plasmid{}, err
				}
				oriRan = true
			}
			seg = oriSeg
		case marker.AntibioticResistance, marker.Other:
			seg = rec.Seq
		default:
			return Plasmid{}, errors.Errorf("entry %q: unhandled marker type %s", e.Component, rec.Type)
		}

		start := len(parts)
		parts = append(parts, seg...)
		segs = append(segs, Segment{Entry: e, Kind: rec.Type, Start: start, End: len(parts)})
	}
	return Plasmid{Seq: dna.Sequence(parts), Segments: segs}, nil
}
