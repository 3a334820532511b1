package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"plasmid-core/dna"
	"plasmid-core/fasta"
	"plasmid-core/marker"
)

const appTable = "Name\tType\tSequence\tDescription\n" +
	"BamHI\tRestrictionEnzyme\tGGATCC\tBamHI site\n" +
	"EcoRI\tRestrictionEnzyme\tGAATTC\tEcoRI site\n" +
	"AmpR\tAntibioticResistance\tATGAGTATTCAACATTTCCGTGTCGAATTCAAA\tcarries a stray EcoRI site\n" +
	"ori_pMB1\tReplicationOrigin\t\tpMB1 origin\n"

func writeInputs(t *testing.T) (dir, genomePath, designPath, markersPath string) {
	t.Helper()
	dir = t.TempDir()

	genomePath = filepath.Join(dir, "genome.fa")
	genome := ">pUC19 demo\n" + strings.Repeat("ACGTTTAAGG", 50) + "\n"
	require.NoError(t, os.WriteFile(genomePath, []byte(genome), 0o644))

	designPath = filepath.Join(dir, "design.txt")
	designText := "# demo design\nBamHI_site, BamHI\nresistance, AmpR\norigin, ori_pMB1\n"
	require.NoError(t, os.WriteFile(designPath, []byte(designText), 0o644))

	markersPath = filepath.Join(dir, "markers.tab")
	require.NoError(t, os.WriteFile(markersPath, []byte(appTable), 0o644))
	return dir, genomePath, designPath, markersPath
}

func TestRunDesign(t *testing.T) {
	dir, genomePath, designPath, markersPath := writeInputs(t)
	outPath := filepath.Join(dir, "out.fa")
	manifestPath := filepath.Join(dir, "manifest.tsv")

	err := RunDesign(DesignOptions{
		In:       genomePath,
		Design:   designPath,
		Markers:  markersPath,
		Out:      outPath,
		Manifest: manifestPath,
	}, zap.NewNop())
	require.NoError(t, err)

	rec, err := fasta.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Designed_Plasmid_from_pUC19 demo", rec.ID)
	// BamHI site placed first; AmpR's stray EcoRI site stripped.
	assert.Equal(t, dna.Sequence("GGATCC"), rec.Seq[:6])
	assert.Empty(t, dna.Find(rec.Seq, "GAATTC", true))

	manifest, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(manifest), "\n"), "\n")
	require.Len(t, lines, 5) // comment + header + 3 placements
	assert.Contains(t, lines[2], "BamHI_site\tBamHI\tRestrictionEnzyme\t0\t6")
}

func TestRunDesignUnknownMarkerWritesNothing(t *testing.T) {
	dir, genomePath, designPath, markersPath := writeInputs(t)
	require.NoError(t, os.WriteFile(designPath, []byte("mystery, Missing\n"), 0o644))
	outPath := filepath.Join(dir, "out.fa")

	err := RunDesign(DesignOptions{
		In:      genomePath,
		Design:  designPath,
		Markers: markersPath,
		Out:     outPath,
	}, zap.NewNop())

	var ume *marker.UnknownMarkerError
	require.ErrorAs(t, err, &ume)
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output file on failure")
}

func TestRunAnalyze(t *testing.T) {
	dir, genomePath, _, markersPath := writeInputs(t)
	_ = dir

	var sb strings.Builder
	err := RunAnalyze(AnalyzeOptions{In: genomePath, Markers: markersPath}, &sb, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "Plasmid: pUC19 demo")
	assert.Contains(t, sb.String(), "Length: 500 bp")
}

func TestRunAnalyzeJSON(t *testing.T) {
	_, genomePath, _, markersPath := writeInputs(t)

	var sb strings.Builder
	err := RunAnalyze(AnalyzeOptions{In: genomePath, Markers: markersPath, JSON: true}, &sb, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, sb.String(), `"length": 500`)
}

func TestRunEnzymes(t *testing.T) {
	var sb strings.Builder
	err := RunEnzymes("", &sb, zap.NewNop())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "BamHI: GGATCC", lines[0])
}
