package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOpenClosed(t *testing.T) {
	out, err := run(t, "open-closed")
	require.NoError(t, err)
	assert.Equal(t, `Green products:
 - Apple is green
 - Tree is green
Large products:
 - Tree is large
 - House is large
Large blue items:
 - House is large and blue
Green products (legacy filter):
 - Apple product
 - Tree product
`, out)
}

func TestOpenClosedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(`products:
  - name: Boat
    color: BLUE
    size: LARGE
  - name: Leaf
    color: GREEN
    size: SMALL
`), 0o644))

	out, err := run(t, "open-closed", "--catalog", path, "--debug")
	require.NoError(t, err)
	assert.Contains(t, out, " - Boat is large and blue\n")
	assert.Contains(t, out, " - Leaf is green\n")
	assert.NotContains(t, out, "Apple")
}

func TestOpenClosedCatalogFromEnv(t *testing.T) {
	t.Setenv("SOLID_CATALOG", filepath.Join(t.TempDir(), "catalog.csv"))
	_, err := run(t, "open-closed")
	assert.Error(t, err)
}

func TestLiskov(t *testing.T) {
	out, err := run(t, "liskov")
	require.NoError(t, err)
	assert.Equal(t, `Width: 2, height: 3
Expected an area of 20, got 20
Side: 5 cannot be stretched, area 25
`, out)
}

func TestSegregation(t *testing.T) {
	out, err := run(t, "segregation")
	require.NoError(t, err)
	assert.Equal(t, `printer can [print]
photocopier can [print scan]
fax can [fax]
multi-function machine can [print scan fax]
Printed memo
Printed memo
faxed memo (scan) to 555-0100
`, out)
}

func TestSingleResponsibility(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	t.Setenv("SOLID_JOURNAL", path)

	out, err := run(t, "single-responsibility")
	require.NoError(t, err)
	assert.Equal(t, "Journal entries:\n0: I rode a bike.\n1: I ate a bug.\n\n"+
		"Read back from "+path+":\n0: I rode a bike.\n1: I ate a bug.\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0: I rode a bike.\n1: I ate a bug.", string(data))
}

func TestJournalFlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SOLID_JOURNAL", filepath.Join(dir, "env.txt"))
	flag := filepath.Join(dir, "flag.txt")

	_, err := run(t, "single-responsibility", "--journal", flag)
	require.NoError(t, err)
	assert.FileExists(t, flag)
	assert.NoFileExists(t, filepath.Join(dir, "env.txt"))
}

func TestAll(t *testing.T) {
	out, err := run(t, "all", "--journal", filepath.Join(t.TempDir(), "journal.txt"))
	require.NoError(t, err)
	for _, want := range []string{
		"Large blue items:",
		"Expected an area of 20, got 20",
		"multi-function machine can [print scan fax]",
		"Journal entries:",
	} {
		assert.Contains(t, out, want)
	}
}
