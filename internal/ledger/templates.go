package ledger

// Placeholder tokens recognised in templates.
const (
	IDToken    = "AILE-0001"
	DateToken  = "YYYY-MM-DD"
	TitleToken = "Short descriptive title"

	EntryRefToken    = ".ai-ledger/entries/YYYY-MM-DD-slug.md"
	ContractRefToken = ".ai-ledger/contracts/YYYY-MM-DD-slug.contract.yaml"
)

// ContractTemplate is written to templates/contract.yaml by Init.
const ContractTemplate = `id: "AILE-0001"
title: "Short descriptive title"
date: "YYYY-MM-DD"
author: "your name or handle"

intent:
  summary: "One sentence: what is supposed to change."
  reason: "Why this change is happening."
  risk_level: "low" # low | medium | high

scope:
  expected:
    - "src/**"
  forbidden:
    - "infra/**"
    - "auth/**"

verification:
  expected_tests:
    - "pnpm test"
    - "pnpm lint"
  manual_checks:
    - "Describe any manual checks expected"

review:
  requires_human_approval: true

links:
  entry: ".ai-ledger/entries/YYYY-MM-DD-slug.md"
`

// EntryTemplate is written to templates/entry.md by Init.
const EntryTemplate = `# AI Ledger Entry

- id: AILE-0001
- title: Short descriptive title
- date: YYYY-MM-DD
- contract: .ai-ledger/contracts/YYYY-MM-DD-slug.contract.yaml

## Intent summary
One sentence.

## Actual changes
What changed in reality.

## Files changed
- path/to/file

## Scope drift
- drift: no
- notes: ""

## Verification performed
- tests run:
  - ""
- manual checks:
  - ""

## Approval
- required: true
- approved_by: ""
- approved_at: ""
`
