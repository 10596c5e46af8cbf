// Package cli provides the command-line interface for ai-ledger.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ailedger/ai-ledger/internal/ledger"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	rootDir string
	verbose bool

	// logger carries diagnostics to stderr when --verbose is set.
	logger = log.New(io.Discard, "ai-ledger: ", 0)
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:     "ai-ledger",
	Short:   "AI Ledger reference CLI",
	Version: version,
	Long: `ai-ledger keeps a file-based audit trail of AI-assisted code changes.

A contract (YAML) declares the intended scope and risk of a change before work
begins; an entry (Markdown) records what actually changed. Both live under
.ai-ledger/ in the current directory and share a <date>-<slug> file stem.

Examples:
  ai-ledger init                          # create .ai-ledger and its templates
  ai-ledger new -t "Fix auth bug"         # create a contract and entry pair
  ai-ledger check                         # fail unless contracts/entries are non-empty
  ai-ledger ls                            # list recorded changes
  ai-ledger index && ai-ledger search auth`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetOutput(os.Stderr)
		} else {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "directory containing .ai-ledger")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&outputYAML, "yaml", false, "print results as YAML")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ai-ledger version " + version)
	},
}

// openLedger returns the ledger under --root, resolved to an absolute path.
func openLedger() *ledger.Ledger {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		exitError("failed to resolve %s: %v", rootDir, err)
	}
	l := ledger.Open(root)
	l.Logger = logger
	return l
}

// exitPrecondition prints a precondition failure verbatim and exits.
func exitPrecondition(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// exitError prints an error message and exits.
func exitError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
