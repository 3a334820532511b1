// internal/cmd/cmd_test.go
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEnzymesDefaultCatalog(t *testing.T) {
	out, err := execute(t, "enzymes")
	require.NoError(t, err)
	require.Contains(t, out, "EcoRI: GAATTC")
	require.Contains(t, out, "BamHI: GGATCC")
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)
}

func TestDesignMissingInput(t *testing.T) {
	_, err := execute(t, "design", "--in", "no-such.fa", "--design", "no-such.txt", "--out", "out.fa")
	require.Error(t, err)
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := execute(t, "enzymes", "--no-such-flag")
	require.Error(t, err)
	var ue *usageError
	require.ErrorAs(t, err, &ue)
}
