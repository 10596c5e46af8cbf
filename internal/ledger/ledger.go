// Package ledger implements the .ai-ledger directory: scaffolding, creation
// of contract/entry pairs from templates, and presence checks.
package ledger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ailedger/ai-ledger/internal/config"
)

const dirPerm = 0755

// Ledger operates on the .ai-ledger directory under Layout.Root.
type Ledger struct {
	Layout Layout

	// Now is the clock used for dates and default IDs.
	Now func() time.Time

	// Logger receives diagnostic output. It never carries user-facing results.
	Logger *log.Logger
}

// Open returns a Ledger rooted at root. It does not touch the filesystem.
func Open(root string) *Ledger {
	return &Ledger{
		Layout: Layout{Root: root},
		Now:    time.Now,
		Logger: log.New(io.Discard, "", 0),
	}
}

// InitResult lists the files Init wrote and the ones it left untouched.
type InitResult struct {
	Created []string `json:"created" yaml:"created"`
	Skipped []string `json:"skipped" yaml:"skipped"`
}

// Init creates the ledger directories and writes the templates and config
// file. Files that already exist are never modified.
func (l *Ledger) Init() (*InitResult, error) {
	if err := l.ensureDirs(); err != nil {
		return nil, err
	}

	cfgData, err := config.Default().Marshal()
	if err != nil {
		return nil, err
	}

	files := []struct {
		path string
		data []byte
	}{
		{l.Layout.ContractTemplate(), []byte(ContractTemplate)},
		{l.Layout.EntryTemplate(), []byte(EntryTemplate)},
		{l.Layout.ConfigPath(), cfgData},
	}

	result := &InitResult{}
	for _, f := range files {
		written, err := writeIfAbsent(f.path, f.data)
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		if written {
			l.Logger.Printf("wrote %s", f.path)
			result.Created = append(result.Created, f.path)
		} else {
			l.Logger.Printf("kept existing %s", f.path)
			result.Skipped = append(result.Skipped, f.path)
		}
	}
	return result, nil
}

// Created describes the contract/entry pair written by New.
type Created struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Date         string `json:"date" yaml:"date"`
	Slug         string `json:"slug" yaml:"slug"`
	ContractPath string `json:"contract_path" yaml:"contract_path"`
	EntryPath    string `json:"entry_path" yaml:"entry_path"`

	// Overwrote is true when either file already existed and was replaced.
	Overwrote bool `json:"overwrote" yaml:"overwrote"`
}

// New instantiates the contract and entry templates for title and writes
// them as contracts/<date>-<slug>.contract.yaml and entries/<date>-<slug>.md.
// Existing files at those paths are overwritten. An empty id defaults to
// AILE-<unix milliseconds>.
func (l *Ledger) New(title, id string) (*Created, error) {
	ok, err := exists(l.Layout.Base())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotInitialized
	}
	if err := l.ensureDirs(); err != nil {
		return nil, err
	}

	now := l.Now()
	if id == "" {
		id = fmt.Sprintf("AILE-%d", now.UnixMilli())
	}
	date := now.UTC().Format("2006-01-02")
	slug := Slugify(title)
	stem := Stem(date, slug)

	contractTpl, err := os.ReadFile(l.Layout.ContractTemplate())
	if err != nil {
		return nil, fmt.Errorf("failed to read contract template: %w", err)
	}
	entryTpl, err := os.ReadFile(l.Layout.EntryTemplate())
	if err != nil {
		return nil, fmt.Errorf("failed to read entry template: %w", err)
	}

	vars := Vars{ID: id, Date: date, Title: title, Stem: stem}
	created := &Created{
		ID:           id,
		Title:        title,
		Date:         date,
		Slug:         slug,
		ContractPath: l.Layout.ContractPath(stem),
		EntryPath:    l.Layout.EntryPath(stem),
	}

	for _, p := range []string{created.ContractPath, created.EntryPath} {
		found, err := exists(p)
		if err != nil {
			return nil, err
		}
		if found {
			l.Logger.Printf("overwriting %s", p)
			created.Overwrote = true
		}
	}

	if err := writeFileAtomic(created.ContractPath, []byte(RenderContract(string(contractTpl), vars))); err != nil {
		return nil, fmt.Errorf("failed to write contract: %w", err)
	}
	if err := writeFileAtomic(created.EntryPath, []byte(RenderEntry(string(entryTpl), vars))); err != nil {
		return nil, fmt.Errorf("failed to write entry: %w", err)
	}
	return created, nil
}

// CheckResult holds the visible entry counts found by Check.
type CheckResult struct {
	Contracts int `json:"contracts" yaml:"contracts"`
	Entries   int `json:"entries" yaml:"entries"`
}

// Check verifies that contracts/ and entries/ exist and each holds at least
// one entry whose name does not start with ".". Directories count as entries.
// The counts are returned alongside ErrEmptyLedger.
func (l *Ledger) Check() (*CheckResult, error) {
	for _, dir := range []string{l.Layout.Contracts(), l.Layout.Entries()} {
		ok, err := exists(dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			l.Logger.Printf("missing %s", dir)
			return nil, ErrMissingFolders
		}
	}

	contracts, err := visibleEntries(l.Layout.Contracts())
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	entries, err := visibleEntries(l.Layout.Entries())
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	result := &CheckResult{Contracts: len(contracts), Entries: len(entries)}
	if result.Contracts == 0 || result.Entries == 0 {
		return result, ErrEmptyLedger
	}
	return result, nil
}

func (l *Ledger) ensureDirs() error {
	for _, dir := range l.Layout.dirs() {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
