// core/resite/index.go
package resite

import (
	"sort"

	"github.com/go-faster/errors"

	"plasmid-core/dna"
	"plasmid-core/marker"
)

// Strand marks which strand a recognition sequence matched on.
type Strand string

const (
	Forward Strand = "+"
	Reverse Strand = "-" // reverse-complement match, forward-strand coordinates
)

// Site is one occurrence of an enzyme's recognition sequence.
type Site struct {
	Enzyme      string
	Recognition dna.Sequence
	Pos         int
	Strand      Strand
}

type cacheKey struct {
	enzyme string
	seq    dna.Sequence
}

// Index locates restriction sites using a marker catalog for recognition
// patterns. Results are cached per (enzyme, query sequence) for the index's
// lifetime; discard the Index at the end of a run.
type Index struct {
	cat   *marker.Catalog
	cache map[cacheKey][]Site
}

// NewIndex returns an Index over cat.
func NewIndex(cat *marker.Catalog) *Index {
	return &Index{cat: cat, cache: make(map[cacheKey][]Site)}
}

// SitesOf returns every occurrence of the named enzyme's recognition sequence
// in seq, both strands, positions ascending. A palindromic recognition
// sequence is reported once per position, on the forward strand. Overlapping
// sites of different enzymes are independent; no cross-enzyme deduplication.
func (x *Index) SitesOf(seq dna.Sequence, enzymeName string) ([]Site, error) {
	key := cacheKey{enzyme: enzymeName, seq: seq}
	if sites, ok := x.cache[key]; ok {
		return sites, nil
	}

	rec, err := x.cat.Resolve(enzymeName)
	if err != nil {
		return nil, err
	}
	if rec.Type != marker.RestrictionEnzyme {
		return nil, errors.Errorf("marker %q is %s, not a restriction enzyme", enzymeName, rec.Type)
	}
	if len(rec.Seq) == 0 {
		return nil, errors.Errorf("restriction enzyme %q has no recognition sequence", enzymeName)
	}

	pat := rec.Seq
	rc := pat.RevComp()
	var sites []Site
	for _, pos := range dna.Find(seq, pat, false) {
		sites = append(sites, Site{Enzyme: enzymeName, Recognition: pat, Pos: pos, Strand: Forward})
	}
	if rc != pat {
		for _, pos := range dna.Find(seq, rc, false) {
			sites = append(sites, Site{Enzyme: enzymeName, Recognition: pat, Pos: pos, Strand: Reverse})
		}
	}
	sortSites(sites)
	x.cache[key] = sites
	return sites, nil
}

// AllSites maps each named enzyme to its sites in seq, for conflict
// detection. Enzymes with no occurrence map to an absent key.
func (x *Index) AllSites(seq dna.Sequence, enzymes []string) (map[string][]Site, error) {
	out := make(map[string][]Site)
	for _, name := range enzymes {
		sites, err := x.SitesOf(seq, name)
		if err != nil {
			return nil, err
		}
		if len(sites) > 0 {
			out[name] = sites
		}
	}
	return out, nil
}

func sortSites(sites []Site) {
	sort.Slice(sites, func(i, j int) bool { return sites[i].Pos < sites[j].Pos })
}
