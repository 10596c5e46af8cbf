package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ailedger/ai-ledger/internal/ledger"
	"github.com/ailedger/ai-ledger/pkg/types"
	"github.com/spf13/cobra"
)

// lsCmd lists recorded changes.
var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List contracts and entries",
	Long:    `List every contract/entry pair found under .ai-ledger, one row per file stem.`,
	Args:    cobra.NoArgs,
	Run:     runList,
}

// showCmd shows one record.
var showCmd = &cobra.Command{
	Use:   "show <stem>",
	Short: "Show a contract and its entry",
	Long: `Show the contract and entry sharing a file stem. A unique stem prefix
is accepted.`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runList(cmd *cobra.Command, args []string) {
	l := openLedger()

	records, err := l.List()
	if errors.Is(err, ledger.ErrNotInitialized) {
		exitPrecondition(err)
	}
	if err != nil {
		exitError("failed to list records: %v", err)
	}

	if len(records) == 0 {
		printEmptyList("No contracts or entries found.")
		return
	}
	if printFormatted(records) {
		return
	}
	printRecordTable(records)
}

func printRecordTable(records []*types.Record) {
	table := newTable("Stem", "ID", "Title", "Risk", "Contract", "Entry")
	for _, r := range records {
		table.Append([]string{
			truncate(r.Stem, 40),
			orDash(r.ID),
			truncate(orDash(r.Title), 30),
			orDash(string(r.RiskLevel)),
			presence(r.ContractPath),
			presence(r.EntryPath),
		})
	}
	table.Render()
}

func presence(path string) string {
	if path == "" {
		return "missing"
	}
	return "yes"
}

func runShow(cmd *cobra.Command, args []string) {
	l := openLedger()

	r, err := l.Show(args[0])
	if err != nil {
		exitError("%v", err)
	}

	if printFormatted(r) {
		return
	}

	fmt.Printf("Stem: %s\n", r.Stem)
	if r.ID != "" {
		fmt.Printf("ID: %s\n", r.ID)
	}
	if r.Title != "" {
		fmt.Printf("Title: %s\n", r.Title)
	}
	if r.Date != "" {
		fmt.Printf("Date: %s\n", r.Date)
	}
	if r.Author != "" {
		fmt.Printf("Author: %s\n", r.Author)
	}
	if r.RiskLevel != "" {
		fmt.Printf("Risk: %s\n", r.RiskLevel)
	}
	if !r.Decoded && r.ContractPath != "" {
		fmt.Println("Warning: contract is not valid YAML")
	}

	for _, f := range []struct{ label, path string }{
		{"Contract", r.ContractPath},
		{"Entry", r.EntryPath},
	} {
		fmt.Println()
		if f.path == "" {
			fmt.Printf("%s: (missing)\n", f.label)
			continue
		}
		fmt.Printf("%s: %s\n", f.label, f.path)
		data, err := os.ReadFile(f.path)
		if err != nil {
			exitError("failed to read %s: %v", f.path, err)
		}
		fmt.Println()
		fmt.Print(string(data))
	}
}
