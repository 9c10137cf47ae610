package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "library-lending/internal/audit/repository"
	"library-lending/internal/model"
)

const entryColumns = `id, timestamp, actor, action, request_token, note,
	item_title_snapshot, member_name_snapshot, requested_at`

func scanEntry(row interface{ Scan(...any) error }) (model.AuditEntry, error) {
	var (
		e           model.AuditEntry
		requestedAt sql.NullTime
	)
	err := row.Scan(
		&e.ID, &e.Timestamp, &e.Actor, &e.Action, &e.RequestToken, &e.Note,
		&e.ItemTitleSnapshot, &e.MemberNameSnapshot, &requestedAt,
	)
	if err != nil {
		return model.AuditEntry{}, err
	}
	if requestedAt.Valid {
		e.RequestedAt = &requestedAt.Time
	}
	return e, nil
}

// AppendEntry inserts one immutable audit row.
func (r *implRepository) AppendEntry(ctx context.Context, opt repo.AppendEntryOptions) (model.AuditEntry, error) {
	const query = `
		INSERT INTO audit_entries
			(timestamp, actor, action, request_token, note,
			 item_title_snapshot, member_name_snapshot, requested_at)
		VALUES (NOW(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + entryColumns

	e, err := scanEntry(r.db.QueryRowContext(ctx, query,
		opt.Actor, opt.Action, opt.RequestToken, opt.Note,
		opt.ItemTitleSnapshot, opt.MemberNameSnapshot, opt.RequestedAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendEntry"), err)
		return model.AuditEntry{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// ListEntries returns audit rows newest first, honoring the optional
// action and since filters.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.AuditEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM audit_entries WHERE 1=1`
	args := []any{}

	if opt.Action != "" {
		args = append(args, opt.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}
	if !opt.Since.IsZero() {
		args = append(args, opt.Since)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}
	query += " ORDER BY timestamp DESC"
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEntries"), err)
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
