package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with flag state reset between calls.
func run(t *testing.T, args ...string) {
	t.Helper()
	newTitle, newID, searchRisk = "", "", ""
	outputJSON, outputYAML, verbose = false, false, false

	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func TestInitNewCheck(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, ".ai-ledger")

	run(t, "init", "--root", root)
	assert.FileExists(t, filepath.Join(base, "config.json"))
	assert.FileExists(t, filepath.Join(base, "templates", "contract.yaml"))
	assert.FileExists(t, filepath.Join(base, "templates", "entry.md"))

	run(t, "new", "--root", root, "--title", "Fix Auth Bug", "--id", "AILE-7")

	contracts, err := filepath.Glob(filepath.Join(base, "contracts", "*-fix-auth-bug.contract.yaml"))
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	entries, err := filepath.Glob(filepath.Join(base, "entries", "*-fix-auth-bug.md"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(contracts[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `id: "AILE-7"`)

	run(t, "check", "--root", root)
}

func TestNewShortFlags(t *testing.T) {
	root := t.TempDir()

	run(t, "init", "--root", root)
	run(t, "new", "--root", root, "-t", "Short flags", "-i", "AILE-1")

	matches, err := filepath.Glob(filepath.Join(root, ".ai-ledger", "entries", "*-short-flags.md"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestIndexAndSearch(t *testing.T) {
	root := t.TempDir()

	run(t, "init", "--root", root)
	run(t, "new", "--root", root, "-t", "Fix Auth Bug")
	run(t, "index", "--root", root)
	assert.FileExists(t, filepath.Join(root, ".ai-ledger", "index.db"))

	run(t, "search", "--root", root, "auth")
	run(t, "search", "--root", root, "--risk", "low", "--json")
}

func TestListAndShow(t *testing.T) {
	root := t.TempDir()

	run(t, "init", "--root", root)
	run(t, "ls", "--root", root)
	run(t, "new", "--root", root, "-t", "Fix Auth Bug")
	run(t, "ls", "--root", root, "--yaml")

	matches, err := filepath.Glob(filepath.Join(root, ".ai-ledger", "entries", "*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	stem := filepath.Base(matches[0])
	run(t, "show", "--root", root, stem[:len(stem)-len(".md")])
}

func TestConfigShow(t *testing.T) {
	root := t.TempDir()

	run(t, "init", "--root", root)
	run(t, "config", "show", "--root", root)
	run(t, "config", "path", "--root", root)
}
