package book

import "errors"

// Store persists whole address-book snapshots. Backends load once at
// startup and save once at clean shutdown; the on-disk byte layout is
// an implementation detail of the backend, not a compatibility
// contract.
type Store interface {
	// Load reads the persisted snapshot and restores the address book.
	// A backend with nothing persisted yet returns an empty book.
	Load() (*AddressBook, error)

	// Save replaces the persisted snapshot with the book's current
	// contents.
	Save(b *AddressBook) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Config selects and parameterizes a storage backend.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendJSONL  = "jsonl"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
	BackendJSONL:  true,
}

// Validate checks that the Config is well-formed. It returns a
// sentinel error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
