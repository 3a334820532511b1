package marker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plasmid-core/dna"
)

const table = "Name\tType\tSequence\tDescription\n" +
	"BamHI\tRestrictionEnzyme\tGGATCC\tBamHI site\n" +
	"EcoRI\tRestrictionEnzyme\tGAATTC\tEcoRI site\n" +
	"AmpR\tAntibioticResistance\tATGAGTATTCAACATTTCCGT\tampicillin resistance\n" +
	"ori_pMB1\tReplicationOrigin\t\tpMB1 origin region\n" +
	"note\tOther\t\tdescriptive only\n"

func TestParseCatalog(t *testing.T) {
	cat, err := ParseCatalog(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, 5, cat.Len())
	assert.Empty(t, cat.Warnings())

	rec, err := cat.Resolve("BamHI")
	require.NoError(t, err)
	assert.Equal(t, RestrictionEnzyme, rec.Type)
	assert.Equal(t, dna.Sequence("GGATCC"), rec.Seq)
	assert.Equal(t, "BamHI site", rec.Desc)

	rec, err = cat.Resolve("ori_pMB1")
	require.NoError(t, err)
	assert.Equal(t, ReplicationOrigin, rec.Type)
	assert.Empty(t, rec.Seq)
}

func TestParseCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"missing header", "BamHI\tRestrictionEnzyme\tGGATCC\tx\n", "header"},
		{"empty input", "", "missing header"},
		{"bad type case", "Name\tType\tSequence\tDescription\nBamHI\trestrictionenzyme\tGGATCC\tx\n", "unknown marker type"},
		{"bad sequence", "Name\tType\tSequence\tDescription\nBamHI\tRestrictionEnzyme\tGGAUCC\tx\n", "bad marker sequence"},
		{"too few fields", "Name\tType\tSequence\tDescription\nBamHI\tRestrictionEnzyme\n", "field count"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			var fe *dna.FormatError
			assert.ErrorAs(t, err, &fe)
		})
	}
}

func TestDuplicateOverwritesWithWarning(t *testing.T) {
	in := "Name\tType\tSequence\tDescription\n" +
		"BamHI\tRestrictionEnzyme\tGGATCC\tfirst\n" +
		"BamHI\tRestrictionEnzyme\tGAATTC\tsecond\n"
	cat, err := ParseCatalog(strings.NewReader(in))
	require.NoError(t, err)

	rec, err := cat.Resolve("BamHI")
	require.NoError(t, err)
	assert.Equal(t, dna.Sequence("GAATTC"), rec.Seq)
	require.Len(t, cat.Warnings(), 1)
	assert.Contains(t, cat.Warnings()[0], "duplicate marker")
}

func TestResolveUnknown(t *testing.T) {
	cat, err := ParseCatalog(strings.NewReader(table))
	require.NoError(t, err)

	_, err = cat.Resolve("bamhi") // lookups are case-sensitive
	var ume *UnknownMarkerError
	require.ErrorAs(t, err, &ume)
	assert.Equal(t, "bamhi", ume.Name)
}

func TestEnzymesSorted(t *testing.T) {
	cat, err := ParseCatalog(strings.NewReader(table))
	require.NoError(t, err)

	enz := cat.Enzymes()
	require.Len(t, enz, 2)
	assert.Equal(t, "BamHI", enz[0].Name)
	assert.Equal(t, "EcoRI", enz[1].Name)
}

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	assert.Equal(t, 10, cat.Len())
	rec, err := cat.Resolve("SmaI")
	require.NoError(t, err)
	assert.Equal(t, dna.Sequence("CCCGGG"), rec.Seq)
	assert.Len(t, cat.Enzymes(), 10)
}
