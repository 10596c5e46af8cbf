// Package storage defines the search index interface for ai-ledger.
package storage

import (
	"context"

	"github.com/ailedger/ai-ledger/pkg/types"
)

// Storage persists ledger records for querying. The files under .ai-ledger
// remain the source of truth; a Storage can always be rebuilt from them.
type Storage interface {
	// Initialize the storage (run migrations, etc.)
	Init(ctx context.Context) error

	// Close the storage connection
	Close() error

	// Reset removes every record.
	Reset(ctx context.Context) error

	Upsert(ctx context.Context, record *types.Record) error
	Get(ctx context.Context, stem string) (*types.Record, error)
	List(ctx context.Context) ([]*types.Record, error)

	// Search matches query against id, title and stem. An empty risk
	// matches every risk level.
	Search(ctx context.Context, query string, risk types.RiskLevel) ([]*types.Record, error)
}
