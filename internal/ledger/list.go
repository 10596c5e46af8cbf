package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ailedger/ai-ledger/pkg/types"
	"gopkg.in/yaml.v3"
)

// List returns one record per stem found in contracts/ or entries/, sorted by
// stem. Hidden files and subdirectories are ignored.
func (l *Ledger) List() ([]*types.Record, error) {
	ok, err := exists(l.Layout.Base())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotInitialized
	}

	byStem := make(map[string]*types.Record)
	get := func(stem string) *types.Record {
		r, ok := byStem[stem]
		if !ok {
			r = &types.Record{Stem: stem}
			byStem[stem] = r
		}
		return r
	}

	contracts, err := l.stems(l.Layout.Contracts(), ContractSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	for _, stem := range contracts {
		get(stem).ContractPath = l.Layout.ContractPath(stem)
	}

	entries, err := l.stems(l.Layout.Entries(), EntrySuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	for _, stem := range entries {
		get(stem).EntryPath = l.Layout.EntryPath(stem)
	}

	records := make([]*types.Record, 0, len(byStem))
	for _, r := range byStem {
		l.describe(r)
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Stem < records[j].Stem })
	return records, nil
}

// Show returns the record whose stem equals ref, or the single record whose
// stem starts with ref.
func (l *Ledger) Show(ref string) (*types.Record, error) {
	records, err := l.List()
	if err != nil {
		return nil, err
	}

	var matches []*types.Record
	for _, r := range records {
		if r.Stem == ref {
			return r, nil
		}
		if strings.HasPrefix(r.Stem, ref) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s matches %d records", ErrAmbiguous, ref, len(matches))
	}
}

// ReadContract decodes a contract file.
func ReadContract(path string) (*types.Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c types.Contract
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &c, nil
}

// stems returns the stems of the regular, non-hidden files in dir that carry
// suffix. A missing dir yields no stems.
func (l *Ledger) stems(dir, suffix string) ([]string, error) {
	entries, err := visibleEntries(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stems []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		stems = append(stems, strings.TrimSuffix(e.Name(), suffix))
	}
	return stems, nil
}

// describe fills the descriptive fields of r from its contract, falling back
// to the stem when the contract is missing or does not decode.
func (l *Ledger) describe(r *types.Record) {
	if r.ContractPath != "" {
		c, err := ReadContract(r.ContractPath)
		if err == nil {
			r.ID = c.ID
			r.Title = c.Title
			r.Date = c.Date
			r.Author = c.Author
			r.RiskLevel = c.Intent.RiskLevel
			r.Decoded = true
			return
		}
		l.Logger.Printf("%v", err)
	}

	if len(r.Stem) >= 10 {
		if _, err := time.Parse("2006-01-02", r.Stem[:10]); err == nil {
			r.Date = r.Stem[:10]
			r.Title = strings.TrimPrefix(r.Stem[10:], "-")
			return
		}
	}
	r.Title = r.Stem
}
