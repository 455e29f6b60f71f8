// Package export copies a budget ledger into other storage formats.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/budget"

	_ "modernc.org/sqlite"
)

// SQLite writes the ledger into the SQLite database at dbPath, creating it if needed.
//
// The "income" and "expenses" tables are replaced as a whole, in a single
// transaction, so the database is always a snapshot of one ledger. Each row
// keeps its entry position in the ledger.
func SQLite(ctx context.Context, dbPath string, l *budget.Ledger) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if err := replaceEntries(ctx, tx, l); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	log.Printf("export-sqlite name=%q income=%d expenses=%d", dbPath, len(l.Income()), len(l.Expenses()))
	return nil
}

func replaceEntries(ctx context.Context, tx *sql.Tx, l *budget.Ledger) error {
	for _, table := range []string{"income", "expenses"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, e := range l.AllIncome() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO income (position, amount, description, date) VALUES (?, ?, ?, ?)",
			i, e.Amount.Decimal().String(), e.Description, e.Date)
		if err != nil {
			return fmt.Errorf("insert income #%d: %w", i, err)
		}
	}
	for i, e := range l.AllExpenses() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expenses (position, amount, category, date) VALUES (?, ?, ?, ?)",
			i, e.Amount.Decimal().String(), e.Category, e.Date)
		if err != nil {
			return fmt.Errorf("insert expense #%d: %w", i, err)
		}
	}
	return nil
}
