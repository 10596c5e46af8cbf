package cli

import (
	"errors"
	"fmt"

	"github.com/ailedger/ai-ledger/internal/ledger"
	"github.com/spf13/cobra"
)

var (
	newTitle string
	newID    string
)

// initCmd creates the ledger structure.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .ai-ledger structure and templates",
	Long: `Create .ai-ledger/{contracts,entries,templates}, the contract and entry
templates, and config.json. Files that already exist are left untouched.`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

// newCmd creates a contract and entry pair.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new contract and entry from templates",
	Long: `Create contracts/<date>-<slug>.contract.yaml and entries/<date>-<slug>.md
from the templates in .ai-ledger/templates. The date is today's UTC date and
the slug is derived from the title. Existing files with the same name are
overwritten.`,
	Example: `  ai-ledger new --title "Fix auth bug"
  ai-ledger new -t "Bump deps" -i AILE-0042`,
	Args: cobra.NoArgs,
	Run:  runNew,
}

// checkCmd verifies the ledger holds at least one contract and entry.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Basic checks: append-only directories exist and are non-empty",
	Long: `Exit 0 when .ai-ledger/contracts and .ai-ledger/entries both exist and each
contains at least one entry not starting with ".". Exit 1 otherwise.`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func init() {
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Title")
	newCmd.Flags().StringVarP(&newID, "id", "i", "", "ID (defaults to timestamp-based)")
	newCmd.MarkFlagRequired("title")
}

func runInit(cmd *cobra.Command, args []string) {
	l := openLedger()

	result, err := l.Init()
	if err != nil {
		exitError("failed to initialize ledger: %v", err)
	}

	if printFormatted(result) {
		return
	}
	fmt.Println("Initialized .ai-ledger")
}

func runNew(cmd *cobra.Command, args []string) {
	l := openLedger()

	created, err := l.New(newTitle, newID)
	if errors.Is(err, ledger.ErrNotInitialized) {
		exitPrecondition(err)
	}
	if err != nil {
		exitError("failed to create contract and entry: %v", err)
	}

	if printFormatted(created) {
		return
	}
	fmt.Println("Created:")
	fmt.Printf("- %s\n", created.ContractPath)
	fmt.Printf("- %s\n", created.EntryPath)
}

func runCheck(cmd *cobra.Command, args []string) {
	l := openLedger()

	result, err := l.Check()
	if errors.Is(err, ledger.ErrMissingFolders) || errors.Is(err, ledger.ErrEmptyLedger) {
		exitPrecondition(err)
	}
	if err != nil {
		exitError("check failed: %v", err)
	}

	logger.Printf("%d contracts, %d entries", result.Contracts, result.Entries)
	if printFormatted(result) {
		return
	}
	fmt.Println("AI Ledger check passed.")
}
