package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fintrack/internal/core"
)

// SQLiteRepository is the sqlite-backed transaction store. With the default
// in-memory DSN the database lives and dies with the session, same as the
// memory backend; a file DSN keeps it on disk for local use.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dsn string) (*SQLiteRepository, error) {
	if isFileDSN(dsn) {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if !isFileDSN(dsn) {
		// Every pooled connection to :memory: gets its own database;
		// a single connection keeps one consistent store.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func isFileDSN(dsn string) bool {
	return dsn != "" && !strings.Contains(dsn, ":memory:")
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Append implements ledger.TransactionWriter.
func (r *SQLiteRepository) Append(ctx context.Context, draft core.Transaction) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, err
	}
	draft.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, tx_date, category, tx_type, amount_cents, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		draft.ID, draft.Date.String(), draft.Category, string(draft.Type), draft.Amount.Cents, draft.Description)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", draft.ID,
		"date", draft.Date.String(),
		"type", string(draft.Type),
		"amount_cents", draft.Amount.Cents,
		"category", draft.Category)

	return draft, nil
}

// List implements ledger.TransactionLister. Insertion order is the rowid
// order of the append-only table.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tx_date, category, tx_type, amount_cents, description
		 FROM transactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListMonth implements ledger.MonthLister.
func (r *SQLiteRepository) ListMonth(ctx context.Context, year, month int) ([]core.Transaction, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tx_date, category, tx_type, amount_cents, description
		 FROM transactions WHERE substr(tx_date, 1, 7) = ? ORDER BY rowid`,
		prefix)
	if err != nil {
		return nil, fmt.Errorf("list transactions for %s: %w", prefix, err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]core.Transaction, error) {
	var out []core.Transaction
	for rows.Next() {
		var (
			t       core.Transaction
			dateStr string
			typeStr string
		)
		if err := rows.Scan(&t.ID, &dateStr, &t.Category, &typeStr, &t.Amount.Cents, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		t.Date = date
		t.Type = core.Type(typeStr)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}
