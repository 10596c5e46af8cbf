package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperEnv = "AI_LEDGER_CLI_HELPER"

// TestHelperProcess is not a real test. It runs the command tree the way
// cmd/ai-ledger does when re-executed by runBinary.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	rootCmd.SetArgs(strings.Split(os.Getenv(helperEnv+"_ARGS"), "\n"))
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// runBinary runs the CLI in a child process and returns its stdout, stderr
// and exit code.
func runBinary(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
	cmd.Env = append(os.Environ(),
		helperEnv+"=1",
		helperEnv+"_ARGS="+strings.Join(args, "\n"),
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return stdout.String(), stderr.String(), code
}

func TestNewWithoutInitExits(t *testing.T) {
	root := t.TempDir()

	stdout, stderr, code := runBinary(t, "new", "--root", root, "-t", "x")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Missing .ai-ledger. Run: ai-ledger init\n", stderr)
	assert.Empty(t, stdout)
	assert.NoDirExists(t, filepath.Join(root, ".ai-ledger"))
}

func TestCheckExitCodes(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, ".ai-ledger")

	_, _, code := runBinary(t, "init", "--root", root)
	require.Equal(t, 0, code)

	_, stderr, code := runBinary(t, "check", "--root", root)
	assert.Equal(t, 1, code)
	assert.Equal(t, "AI Ledger check failed: contracts/entries are empty.\n", stderr)

	_, _, code = runBinary(t, "new", "--root", root, "-t", "Fix Auth Bug")
	require.Equal(t, 0, code)

	stdout, stderr, code := runBinary(t, "check", "--root", root)
	assert.Equal(t, 0, code)
	assert.Equal(t, "AI Ledger check passed.\n", stdout)
	assert.Empty(t, stderr)

	require.NoError(t, os.RemoveAll(filepath.Join(base, "contracts")))
	_, stderr, code = runBinary(t, "check", "--root", root)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Missing .ai-ledger folders. Run: ai-ledger init\n", stderr)
}

func TestSearchOutput(t *testing.T) {
	root := t.TempDir()

	for _, args := range [][]string{
		{"init", "--root", root},
		{"new", "--root", root, "-t", "Fix Auth Bug", "-i", "AILE-7"},
		{"new", "--root", root, "-t", "Tidy docs", "-i", "AILE-8"},
		{"index", "--root", root},
	} {
		_, stderr, code := runBinary(t, args...)
		require.Equal(t, 0, code, "%v: %s", args, stderr)
	}

	stdout, _, code := runBinary(t, "search", "--root", root, "auth")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "-fix-auth-bug")
	assert.Contains(t, stdout, "AILE-7")
	assert.Contains(t, stdout, "Fix Auth Bug")
	assert.NotContains(t, stdout, "AILE-8")

	stdout, _, code = runBinary(t, "search", "--root", root, "_")
	require.Equal(t, 0, code)
	assert.Equal(t, "No matching records.\n", stdout)
}

func TestSearchWithoutIndexExits(t *testing.T) {
	root := t.TempDir()

	_, _, code := runBinary(t, "init", "--root", root)
	require.Equal(t, 0, code)

	_, stderr, code := runBinary(t, "search", "--root", root, "auth")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Run: ai-ledger index")
}

func TestConfigShowJSONIncludesIndex(t *testing.T) {
	root := t.TempDir()

	_, _, code := runBinary(t, "init", "--root", root)
	require.Equal(t, 0, code)

	stdout, _, code := runBinary(t, "config", "show", "--root", root, "--json")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `"index"`)
	assert.Contains(t, stdout, filepath.Join(root, ".ai-ledger", "index.db"))
}
