package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultLedgerFile is the name of the ledger file when none is configured.
const DefaultLedgerFile = "budget_data.json"

// Load reads the ledger file at path.
//
// A missing file is not an error: it returns an empty ledger. Any other
// failure, including malformed content, is returned wrapped in ErrPersistence.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("ledger-not-found name=%q, starting with an empty ledger", path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open ledger file %q: %w", ErrPersistence, path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode ledger file %q: %w", ErrPersistence, path, err)
	}
	log.Printf("load-ledger name=%q income=%d expenses=%d", path, len(ledger.income), len(ledger.expenses))
	return ledger, nil
}

// Save writes the whole ledger into the file at path, replacing it.
//
// The ledger is first written to a temporary file in the same folder, then
// renamed over path, so a crash never leaves a truncated ledger behind.
// An existing file keeps its permissions, a new one is created with 0644.
func Save(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: cannot create temporary file in %q: %w", ErrPersistence, dir, err)
	}
	// Removing after a successful rename is a no-op.
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: cannot flush %q: %w", ErrPersistence, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: cannot close %q: %w", ErrPersistence, tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), fileMode(path)); err != nil {
		return fmt.Errorf("%w: cannot set permissions on %q: %w", ErrPersistence, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: cannot replace ledger file %q: %w", ErrPersistence, path, err)
	}
	log.Printf("save-ledger name=%q income=%d expenses=%d", path, len(l.income), len(l.expenses))
	return nil
}

// fileMode returns the permissions of the file at path, or 0644 if it does not exist.
func fileMode(path string) os.FileMode {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return 0644
}
