package store

import (
	"context"
	"database/sql"
	"errors"

	"sasku-server/pkg/db"
)

// Postgres keeps state in the `sessions` table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a store backed by the database
// The sessions migration must have run
func NewPostgres(dbh *sql.DB) *Postgres {
	return &Postgres{db: dbh}
}

// Save implements Store
func (p *Postgres) Save(ctx context.Context, id string, data []byte) error {
	const query = `
INSERT INTO sessions (id, data)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET data = EXCLUDED.data, updated = NOW() AT TIME ZONE 'UTC'`

	_, err := p.db.ExecContext(ctx, query, id, data)
	return err
}

// Load implements Store
func (p *Postgres) Load(ctx context.Context, id string) ([]byte, error) {
	const query = `
SELECT data
FROM sessions
WHERE id = $1`

	data, err := scanData(p.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	return data, err
}

func scanData(row db.Scanner) ([]byte, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		return nil, err
	}

	return data, nil
}

// Delete implements Store
func (p *Postgres) Delete(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}
