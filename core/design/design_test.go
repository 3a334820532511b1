package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := `# pUC19-style design
BamHI_site, BamHI

EcoRI_site,EcoRI
AmpR_marker ,  AmpR
origin, ori_pMB1
`
	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Component: "BamHI_site", MarkerRef: "BamHI"},
		{Component: "EcoRI_site", MarkerRef: "EcoRI"},
		{Component: "AmpR_marker", MarkerRef: "AmpR"},
		{Component: "origin", MarkerRef: "ori_pMB1"},
	}, got)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"one field", "BamHI_site\n", "want 2 comma-separated fields, got 1"},
		{"three fields", "a, b, c\n", "got 3"},
		{"empty name", " , BamHI\n", "empty field"},
		{"empty ref", "site,\n", "empty field"},
		{"duplicate component", "site, BamHI\nsite, EcoRI\n", `duplicate component "site"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			var fe *FormatError
			assert.ErrorAs(t, err, &fe)
		})
	}
}

func TestParseEmptyDesign(t *testing.T) {
	got, err := Parse(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReferences(t *testing.T) {
	entries := []Entry{{Component: "a", MarkerRef: "BamHI"}}
	assert.True(t, References(entries, "BamHI"))
	assert.False(t, References(entries, "EcoRI"))
}
