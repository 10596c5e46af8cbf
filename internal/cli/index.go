package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ailedger/ai-ledger/internal/config"
	"github.com/ailedger/ai-ledger/internal/ledger"
	"github.com/ailedger/ai-ledger/internal/storage/sqlite"
	"github.com/ailedger/ai-ledger/pkg/types"
	"github.com/spf13/cobra"
)

var searchRisk string

// indexCmd rebuilds the search index.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the search index",
	Long: `Rebuild .ai-ledger/index.db from the contracts and entries on disk.
The files remain the source of truth; the index only serves "search".`,
	Args: cobra.NoArgs,
	Run:  runIndex,
}

// searchCmd queries the search index.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed contracts",
	Long: `Search the index built by "ai-ledger index" for records whose id, title
or stem contains the query. Without a query every record matches.`,
	Example: `  ai-ledger search auth
  ai-ledger search --risk high`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchRisk, "risk", "", "only show contracts with this risk level (low, medium, high)")
}

// openIndex opens the SQLite index at cfg.Index.Path and runs migrations.
func openIndex(ctx context.Context, cfg *config.Config) (*sqlite.SQLiteStorage, error) {
	store, err := sqlite.New(cfg.Index.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize index: %w", err)
	}

	return store, nil
}

func loadConfig(l *ledger.Ledger) *config.Config {
	cfg, err := config.Load(l.Layout.Base())
	if err != nil {
		exitError("failed to load config: %v", err)
	}
	return cfg
}

func runIndex(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	l := openLedger()

	records, err := l.List()
	if errors.Is(err, ledger.ErrNotInitialized) {
		exitPrecondition(err)
	}
	if err != nil {
		exitError("failed to list records: %v", err)
	}

	cfg := loadConfig(l)
	store, err := openIndex(ctx, cfg)
	if err != nil {
		exitError("%v", err)
	}
	defer store.Close()

	if err := store.Reset(ctx); err != nil {
		exitError("%v", err)
	}
	for _, r := range records {
		if err := store.Upsert(ctx, r); err != nil {
			exitError("%v", err)
		}
		logger.Printf("indexed %s", r.Stem)
	}

	fmt.Printf("Indexed %d records into %s\n", len(records), store.Path())
}

func runSearch(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	l := openLedger()
	cfg := loadConfig(l)

	risk := types.RiskLevel(searchRisk)
	switch risk {
	case "", types.RiskLow, types.RiskMedium, types.RiskHigh:
	default:
		exitError("invalid risk level %q (want low, medium or high)", searchRisk)
	}

	if _, err := os.Stat(cfg.Index.Path); os.IsNotExist(err) {
		exitError("index not found at %s. Run: ai-ledger index", cfg.Index.Path)
	}

	store, err := openIndex(ctx, cfg)
	if err != nil {
		exitError("%v", err)
	}
	defer store.Close()

	var query string
	if len(args) == 1 {
		query = args[0]
	}

	records, err := store.Search(ctx, query, risk)
	if err != nil {
		exitError("%v", err)
	}

	if len(records) == 0 {
		printEmptyList("No matching records.")
		return
	}
	if printFormatted(records) {
		return
	}
	printRecordTable(records)
}
