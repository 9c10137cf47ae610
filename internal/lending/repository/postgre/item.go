package postgre

import (
	"context"
	"database/sql"

	repo "library-lending/internal/lending/repository"
	"library-lending/internal/model"
)

// GetItem retrieves a single item by id.
// Returns zero-value item (ID == 0) when not found.
func (r *implRepository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	const query = `
		SELECT id, title, author, owner, location, kind, loan_duration_days,
		       availability, keywords, cover_url, created_at, updated_at
		FROM items WHERE id = $1`

	var item model.Item
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Author, &item.Owner, &item.Location,
		&item.Kind, &item.LoanDurationDays, &item.Availability,
		&item.Keywords, &item.CoverURL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// HoldItem is the availability race arbiter: the WHERE guard and the
// update are one statement, so of two concurrent calls exactly one
// observes a matched row.
func (r *implRepository) HoldItem(ctx context.Context, id int64) (bool, error) {
	const query = `
		UPDATE items
		SET availability = 'on_hold', updated_at = NOW()
		WHERE id = $1 AND availability = 'available'`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HoldItem"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("HoldItem"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}

// SetItemAvailability sets availability unconditionally.
func (r *implRepository) SetItemAvailability(ctx context.Context, id int64, to model.Availability) error {
	const query = `UPDATE items SET availability = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, to); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetItemAvailability"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
