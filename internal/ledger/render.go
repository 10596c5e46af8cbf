package ledger

import "strings"

// Vars are the values substituted into a template.
type Vars struct {
	ID    string
	Date  string
	Title string
	Stem  string
}

// RenderContract fills a contract template. All occurrences of each token are
// replaced in a single pass: replacement text is never re-scanned, and the
// entry path placeholder wins over the date token it contains.
func RenderContract(tpl string, v Vars) string {
	return strings.NewReplacer(
		EntryRefToken, EntryRef(v.Stem),
		IDToken, v.ID,
		DateToken, v.Date,
		TitleToken, v.Title,
	).Replace(tpl)
}

// RenderEntry fills an entry template, resolving the contract path
// placeholder instead of the entry one.
func RenderEntry(tpl string, v Vars) string {
	return strings.NewReplacer(
		ContractRefToken, ContractRef(v.Stem),
		IDToken, v.ID,
		DateToken, v.Date,
		TitleToken, v.Title,
	).Replace(tpl)
}
