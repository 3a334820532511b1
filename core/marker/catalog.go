// core/marker/catalog.go
package marker

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"plasmid-core/dna"
	"plasmid-core/fasta"
)

// Catalog holds the marker table, read-only after parse. Lookups are exact
// and case-sensitive.
type Catalog struct {
	records  map[string]Record
	warnings []string
}

// ParseCatalog reads tab-separated rows with header
// "Name\tType\tSequence\tDescription". Rows are order-independent; a
// duplicate name overwrites the earlier entry and is recorded as a warning.
// Comment lines start with '#'.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	cat := &Catalog{records: make(map[string]Record)}

	sc := bufio.NewScanner(r)
	ln := 0
	sawHeader := false
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if !sawHeader {
			if len(f) < 4 || f[0] != "Name" || f[1] != "Type" || f[2] != "Sequence" || f[3] != "Description" {
				return nil, &dna.FormatError{Msg: "bad marker table header", Detail: line, Line: ln}
			}
			sawHeader = true
			continue
		}
		if len(f) < 3 {
			return nil, &dna.FormatError{Msg: "bad field count in marker row", Detail: line, Line: ln}
		}
		name := strings.TrimSpace(f[0])
		if name == "" {
			return nil, &dna.FormatError{Msg: "empty marker name", Line: ln}
		}
		typ, ok := ParseType(strings.TrimSpace(f[1]))
		if !ok {
			return nil, &dna.FormatError{Msg: "unknown marker type", Detail: f[1], Line: ln}
		}
		var seq dna.Sequence
		if raw := strings.TrimSpace(f[2]); raw != "" {
			var err error
			seq, err = dna.Parse(raw)
			if err != nil {
				return nil, &dna.FormatError{Msg: "bad marker sequence", Detail: name, Line: ln}
			}
		}
		desc := ""
		if len(f) > 3 {
			desc = strings.TrimSpace(f[3])
		}
		if _, dup := cat.records[name]; dup {
			cat.warnings = append(cat.warnings, fmt.Sprintf("duplicate marker %q at line %d overwrites earlier entry", name, ln))
		}
		cat.records[name] = Record{Name: name, Type: typ, Seq: seq, Desc: desc}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, &dna.FormatError{Msg: "marker table missing header row"}
	}
	return cat, nil
}

// ParseCatalogFile is the path convenience around ParseCatalog.
func ParseCatalogFile(path string) (*Catalog, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	cat, err := ParseCatalog(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Resolve returns the record for name, failing with *UnknownMarkerError.
func (c *Catalog) Resolve(name string) (Record, error) {
	rec, ok := c.records[name]
	if !ok {
		return Record{}, &UnknownMarkerError{Name: name}
	}
	return rec, nil
}

// Has reports whether name is present.
func (c *Catalog) Has(name string) bool {
	_, ok := c.records[name]
	return ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.records) }

// Warnings returns parse-time warnings (duplicate overwrites), in input order.
func (c *Catalog) Warnings() []string { return c.warnings }

// Enzymes returns the RestrictionEnzyme records, sorted by name for
// deterministic iteration.
func (c *Catalog) Enzymes() []Record {
	var out []Record
	for _, rec := range c.records {
		if rec.Type == RestrictionEnzyme {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DefaultCatalog returns the built-in catalog of ten standard restriction
// enzymes, used when no marker table is supplied.
func DefaultCatalog() *Catalog {
	sites := []struct {
		name string
		seq  dna.Sequence
	}{
		{"EcoRI", "GAATTC"},
		{"BamHI", "GGATCC"},
		{"HindIII", "AAGCTT"},
		{"PstI", "CTGCAG"},
		{"SalI", "GTCGAC"},
		{"XbaI", "TCTAGA"},
		{"KpnI", "GGTACC"},
		{"SacI", "GAGCTC"},
		{"SmaI", "CCCGGG"},
		{"SphI", "GCATGC"},
	}
	cat := &Catalog{records: make(map[string]Record, len(sites))}
	for _, s := range sites {
		cat.records[s.name] = Record{
			Name: s.name,
			Type: RestrictionEnzyme,
			Seq:  s.seq,
			Desc: s.name + " restriction site",
		}
	}
	return cat
}
