// Package budget provides the types and functions behind a small, local-first
// personal finance journal.
//
// The core functionalities include:
//   - Ledger Management: recording income and expense entries in insertion
//     order, in a single JSON document that stays human-readable.
//   - Reports: a stateless reduction of the ledger into totals (Summary) and
//     chart-ready datasets (IncomeVsExpenses, ExpenseCategories).
//   - Data Persistence: loading and saving the ledger file, replacing it
//     atomically on every change.
//
// This package serves as the foundational logic for the `bdg` command-line
// tool, every operation there being a thin layer on top of a Tracker.
package budget
