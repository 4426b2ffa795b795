package postgres

import (
	"context"
	"database/sql"

	interfaces "github.com/sheikh-saqib/budget-ledger/internal/interfaces"
	"github.com/sheikh-saqib/budget-ledger/internal/models"
)

// Schema creates the journal table if it does not exist.
const Schema = `CREATE TABLE IF NOT EXISTS ledger_entries (
	id          TEXT PRIMARY KEY,
	category_id TEXT NOT NULL,
	category    TEXT NOT NULL,
	amount      NUMERIC(20, 2) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
)`

// PostgresLedgerStore journals ledger entries to a Postgres table.
type PostgresLedgerStore struct {
	db *sql.DB
}

func NewPostgresLedgerStore(db *sql.DB) *PostgresLedgerStore {
	return &PostgresLedgerStore{
		db: db,
	}
}

// Migrate applies Schema.
func (p *PostgresLedgerStore) Migrate(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, Schema)
	return err
}

func (p *PostgresLedgerStore) SaveEntry(ctx context.Context, entry models.LedgerEntry) error {
	const query = `INSERT INTO ledger_entries (id, category_id, category, amount, description, created_at)
	VALUES ($1,$2,$3,$4,$5,$6)`

	_, err := p.db.ExecContext(ctx, query, entry.ID, entry.CategoryID, entry.Category, entry.Amount, entry.Description, entry.CreatedAt)
	return err
}

func (p *PostgresLedgerStore) GetLedgerEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	const query = `SELECT id, category_id, category, amount, description, created_at
	FROM ledger_entries ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (p *PostgresLedgerStore) GetEntriesByCategory(ctx context.Context, categoryID string) ([]models.LedgerEntry, error) {
	const query = `SELECT id, category_id, category, amount, description, created_at
	FROM ledger_entries WHERE category_id = $1 ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.CategoryID,
			&entry.Category,
			&entry.Amount,
			&entry.Description,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ interfaces.LedgerStore = (*PostgresLedgerStore)(nil)
