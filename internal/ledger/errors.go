package ledger

import "errors"

// The precondition errors carry the exact text the CLI prints to stderr.
var (
	// ErrNotInitialized is returned when the .ai-ledger directory is absent.
	ErrNotInitialized = errors.New("Missing .ai-ledger. Run: ai-ledger init")

	// ErrMissingFolders is returned by Check when contracts/ or entries/ is absent.
	ErrMissingFolders = errors.New("Missing .ai-ledger folders. Run: ai-ledger init")

	// ErrEmptyLedger is returned by Check when contracts/ or entries/ holds no visible entries.
	ErrEmptyLedger = errors.New("AI Ledger check failed: contracts/entries are empty.")

	// ErrNotFound is returned by Show when no record matches.
	ErrNotFound = errors.New("record not found")

	// ErrAmbiguous is returned by Show when a prefix matches several records.
	ErrAmbiguous = errors.New("ambiguous record prefix")
)
