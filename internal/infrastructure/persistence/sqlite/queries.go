package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// dbtx is satisfied by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries {
	return &queries{db: db}
}

func (q *queries) withTx(tx *sql.Tx) *queries {
	return &queries{db: tx}
}

const upsertLocalStorage = `
INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

func (q *queries) upsertLocalStorage(ctx context.Context, key, value string, updatedAt time.Time) error {
	_, err := q.db.ExecContext(ctx, upsertLocalStorage, key, value, updatedAt.UTC())
	return err
}

const getLocalStorage = `SELECT value FROM local_storage WHERE key = ?`

// getLocalStorage returns the value under key, or ok=false when absent.
func (q *queries) getLocalStorage(ctx context.Context, key string) (value string, ok bool, err error) {
	err = q.db.QueryRowContext(ctx, getLocalStorage, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

const deleteLocalStorage = `DELETE FROM local_storage WHERE key = ?`

func (q *queries) deleteLocalStorage(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, deleteLocalStorage, key)
	return err
}

type consentRow struct {
	ToolID      string
	Fingerprint string
	GrantedAt   int64
}

const upsertConsent = `
INSERT INTO csp_consents (tool_id, fingerprint, granted_at) VALUES (?, ?, ?)
ON CONFLICT(tool_id) DO UPDATE SET fingerprint = excluded.fingerprint, granted_at = excluded.granted_at`

func (q *queries) upsertConsent(ctx context.Context, row consentRow) error {
	_, err := q.db.ExecContext(ctx, upsertConsent, row.ToolID, row.Fingerprint, row.GrantedAt)
	return err
}

const getConsent = `SELECT tool_id, fingerprint, granted_at FROM csp_consents WHERE tool_id = ?`

func (q *queries) getConsent(ctx context.Context, toolID string) (consentRow, error) {
	var row consentRow
	err := q.db.QueryRowContext(ctx, getConsent, toolID).Scan(&row.ToolID, &row.Fingerprint, &row.GrantedAt)
	return row, err
}

const deleteConsent = `DELETE FROM csp_consents WHERE tool_id = ?`

func (q *queries) deleteConsent(ctx context.Context, toolID string) error {
	_, err := q.db.ExecContext(ctx, deleteConsent, toolID)
	return err
}

const listConsents = `SELECT tool_id, fingerprint, granted_at FROM csp_consents ORDER BY tool_id`

func (q *queries) listConsents(ctx context.Context) ([]consentRow, error) {
	rows, err := q.db.QueryContext(ctx, listConsents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []consentRow
	for rows.Next() {
		var row consentRow
		if err := rows.Scan(&row.ToolID, &row.Fingerprint, &row.GrantedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
