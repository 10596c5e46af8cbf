package ledger

import "path/filepath"

// Directory and file names under the ledger root.
const (
	BaseDir      = ".ai-ledger"
	ContractsDir = "contracts"
	EntriesDir   = "entries"
	TemplatesDir = "templates"

	ConfigFile           = "config.json"
	ContractTemplateFile = "contract.yaml"
	EntryTemplateFile    = "entry.md"

	ContractSuffix = ".contract.yaml"
	EntrySuffix    = ".md"
)

// Layout resolves the on-disk paths of a ledger rooted at Root.
type Layout struct {
	Root string
}

// Base returns the .ai-ledger directory.
func (l Layout) Base() string { return filepath.Join(l.Root, BaseDir) }

// Contracts returns the contracts directory.
func (l Layout) Contracts() string { return filepath.Join(l.Base(), ContractsDir) }

// Entries returns the entries directory.
func (l Layout) Entries() string { return filepath.Join(l.Base(), EntriesDir) }

// Templates returns the templates directory.
func (l Layout) Templates() string { return filepath.Join(l.Base(), TemplatesDir) }

// ConfigPath returns .ai-ledger/config.json.
func (l Layout) ConfigPath() string {
	return filepath.Join(l.Base(), ConfigFile)
}

// ContractTemplate returns templates/contract.yaml.
func (l Layout) ContractTemplate() string {
	return filepath.Join(l.Templates(), ContractTemplateFile)
}

// EntryTemplate returns templates/entry.md.
func (l Layout) EntryTemplate() string {
	return filepath.Join(l.Templates(), EntryTemplateFile)
}

// ContractPath returns contracts/<stem>.contract.yaml.
func (l Layout) ContractPath(stem string) string {
	return filepath.Join(l.Contracts(), stem+ContractSuffix)
}

// EntryPath returns entries/<stem>.md.
func (l Layout) EntryPath(stem string) string {
	return filepath.Join(l.Entries(), stem+EntrySuffix)
}

// dirs lists the subdirectories created by Init and New.
func (l Layout) dirs() []string {
	return []string{l.Contracts(), l.Entries(), l.Templates()}
}

// ContractRef is the root-relative, slash-separated path written into an
// entry to point at its contract.
func ContractRef(stem string) string {
	return BaseDir + "/" + ContractsDir + "/" + stem + ContractSuffix
}

// EntryRef is the root-relative, slash-separated path written into a
// contract to point at its entry.
func EntryRef(stem string) string {
	return BaseDir + "/" + EntriesDir + "/" + stem + EntrySuffix
}
