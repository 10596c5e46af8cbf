// Package types defines shared types used across the ai-ledger codebase.
package types

// RiskLevel is the declared risk of a contract.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Intent describes what a contract intends to change.
type Intent struct {
	Summary   string    `yaml:"summary" json:"summary"`
	Reason    string    `yaml:"reason" json:"reason"`
	RiskLevel RiskLevel `yaml:"risk_level" json:"risk_level"`
}

// Scope lists path globs a change is expected to touch and must not touch.
type Scope struct {
	Expected  []string `yaml:"expected" json:"expected"`
	Forbidden []string `yaml:"forbidden" json:"forbidden"`
}

// Verification lists the checks a contract expects to be run.
type Verification struct {
	ExpectedTests []string `yaml:"expected_tests" json:"expected_tests"`
	ManualChecks  []string `yaml:"manual_checks" json:"manual_checks"`
}

// Review holds approval requirements.
type Review struct {
	RequiresHumanApproval bool `yaml:"requires_human_approval" json:"requires_human_approval"`
}

// Links cross-references the entry written alongside a contract.
type Links struct {
	Entry string `yaml:"entry" json:"entry"`
}

// Contract is the decoded form of a contracts/*.contract.yaml file.
type Contract struct {
	ID           string       `yaml:"id" json:"id"`
	Title        string       `yaml:"title" json:"title"`
	Date         string       `yaml:"date" json:"date"`
	Author       string       `yaml:"author" json:"author"`
	Intent       Intent       `yaml:"intent" json:"intent"`
	Scope        Scope        `yaml:"scope" json:"scope"`
	Verification Verification `yaml:"verification" json:"verification"`
	Review       Review       `yaml:"review" json:"review"`
	Links        Links        `yaml:"links" json:"links"`
}

// Record is one creation event: a contract and the entry sharing its
// <date>-<slug> stem. Either path may be empty when the counterpart file is
// missing from disk.
type Record struct {
	Stem         string    `yaml:"stem" json:"stem"`
	ID           string    `yaml:"id,omitempty" json:"id,omitempty"`
	Title        string    `yaml:"title,omitempty" json:"title,omitempty"`
	Date         string    `yaml:"date,omitempty" json:"date,omitempty"`
	Author       string    `yaml:"author,omitempty" json:"author,omitempty"`
	RiskLevel    RiskLevel `yaml:"risk_level,omitempty" json:"risk_level,omitempty"`
	ContractPath string    `yaml:"contract_path,omitempty" json:"contract_path,omitempty"`
	EntryPath    string    `yaml:"entry_path,omitempty" json:"entry_path,omitempty"`

	// Decoded is false when the contract file was absent or not valid YAML;
	// the descriptive fields are then derived from the stem.
	Decoded bool `yaml:"decoded" json:"decoded"`
}
