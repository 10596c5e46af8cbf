package sqlite

// migrations contains the SQL migrations for the SQLite database.
var migrations = []string{
	// Migration 1: Create records table
	`
	CREATE TABLE IF NOT EXISTS records (
		stem TEXT PRIMARY KEY,
		id TEXT,
		title TEXT,
		date TEXT,
		author TEXT,
		risk_level TEXT,
		contract_path TEXT,
		entry_path TEXT,
		decoded INTEGER NOT NULL DEFAULT 0,
		indexed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_records_id ON records(id);
	CREATE INDEX IF NOT EXISTS idx_records_risk ON records(risk_level);

	-- Schema version tracking
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT OR IGNORE INTO schema_version (version) VALUES (1);
	`,
}
