package sqlite

// Schema DDL. Contacts carry an explicit position so the address book's
// insertion order survives a round trip; meta keeps one row per saved
// snapshot for diagnostics.
const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    phones TEXT NOT NULL,
    birthday TEXT
);`

	createMeta = `CREATE TABLE IF NOT EXISTS meta (
    snapshot_id TEXT PRIMARY KEY,
    saved_at TEXT NOT NULL,
    contact_count INTEGER NOT NULL
);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createContacts,
	createMeta,
}
