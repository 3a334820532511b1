// core/assembly/strip.go
package assembly

import (
	"fmt"
	"sort"
	"strings"

	"plasmid-core/design"
	"plasmid-core/dna"
	"plasmid-core/resite"
)

// UnresolvableSiteConflictError means no single point substitution could
// destroy a site occurrence.
type UnresolvableSiteConflictError struct {
	Site resite.Site
}

func (e *UnresolvableSiteConflictError) Error() string {
	return fmt.Sprintf("no single substitution removes %s site at %d (%s strand)",
		e.Site.Enzyme, e.Site.Pos, e.Site.Strand)
}

// SiteRemovalExhaustedError means unwanted sites survived the full pass
// budget.
type SiteRemovalExhaustedError struct {
	Passes    int
	Remaining []resite.Site
}

func (e *SiteRemovalExhaustedError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unwanted restriction sites remain after %d stripping passes:", e.Passes)
	for _, s := range e.Remaining {
		fmt.Fprintf(&sb, " %s@%d(%s)", s.Enzyme, s.Pos, s.Strand)
	}
	return sb.String()
}

// Strip removes every site of a catalog restriction enzyme the design does
// not reference, by silent length-preserving point substitutions, re-scanning
// up to the pass budget. The input Plasmid is never modified.
func (a *Assembler) Strip(p Plasmid, entries []design.Entry) (Plasmid, error) {
	var unwanted []string
	for _, rec := range a.cat.Enzymes() {
		if !design.References(entries, rec.Name) {
			unwanted = append(unwanted, rec.Name)
		}
	}
	if len(unwanted) == 0 {
		return p, nil
	}

	seq := p.Seq
	for pass := 0; pass < a.passes; pass++ {
		sites, err := a.scanUnwanted(seq, unwanted)
		if err != nil {
			return Plasmid{}, err
		}
		if len(sites) == 0 {
			return Plasmid{Seq: seq, Segments: p.Segments}, nil
		}
		seq, err = substituteAll(seq, sites)
		if err != nil {
			return Plasmid{}, err
		}
	}

	sites, err := a.scanUnwanted(seq, unwanted)
	if err != nil {
		return Plasmid{}, err
	}
	if len(sites) > 0 {
		return Plasmid{}, &SiteRemovalExhaustedError{Passes: a.passes, Remaining: sites}
	}
	return Plasmid{Seq: seq, Segments: p.Segments}, nil
}

// scanUnwanted flattens AllSites into a deterministic order: enzyme name
// ascending, then position ascending.
func (a *Assembler) scanUnwanted(seq dna.Sequence, unwanted []string) ([]resite.Site, error) {
	byEnzyme, err := a.idx.AllSites(seq, unwanted)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(byEnzyme))
	for name := range byEnzyme {
		names = append(names, name)
	}
	sort.Strings(names)
	var out []resite.Site
	for _, name := range names {
		out = append(out, byEnzyme[name]...)
	}
	return out, nil
}

// substituteAll applies one breaking substitution per site and returns the
// new sequence value. Sites already destroyed by an earlier overlapping edit
// are skipped; the next re-scan settles anything an edit introduced.
func substituteAll(seq dna.Sequence, sites []resite.Site) (dna.Sequence, error) {
	buf := []byte(seq)
	for _, site := range sites {
		motif := site.Recognition
		rcm := motif.RevComp()
		win := dna.Sequence(buf[site.Pos : site.Pos+len(motif)])
		if win != motif && win != rcm {
			continue
		}
		i, b, ok := breakingEdit(win, motif, rcm)
		if !ok {
			return "", &UnresolvableSiteConflictError{Site: site}
		}
		buf[site.Pos+i] = b
	}
	return dna.Sequence(buf), nil
}

// breakingEdit picks the lowest site position and the first base in A<C<G<T
// order whose substitution leaves the window matching neither the motif nor
// its reverse complement.
func breakingEdit(win, motif, rcm dna.Sequence) (int, byte, bool) {
	for i := 0; i < len(win); i++ {
		for _, b := range []byte("ACGT") {
			if b == win[i] {
				continue
			}
			edited := dna.Sequence(string(win[:i]) + string(b) + string(win[i+1:]))
			if edited != motif && edited != rcm {
				return i, b, true
			}
		}
	}
	return 0, 0, false
}
