package postgre

import (
	"context"
	"database/sql"

	repo "library-lending/internal/catalog/repository"
	"library-lending/internal/model"
)

const itemColumns = `id, title, author, owner, location, kind, loan_duration_days,
	availability, keywords, cover_url, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (model.Item, error) {
	var item model.Item
	err := row.Scan(
		&item.ID, &item.Title, &item.Author, &item.Owner, &item.Location,
		&item.Kind, &item.LoanDurationDays, &item.Availability,
		&item.Keywords, &item.CoverURL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *implRepository) collectItems(ctx context.Context, method string, rows *sql.Rows) ([]model.Item, error) {
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO items (title, author, owner, location, kind, loan_duration_days,
			availability, keywords, cover_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Author, opt.Owner, opt.Location, opt.Kind,
		opt.LoanDurationDays, opt.Availability, opt.Keywords, opt.CoverURL,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetItem returns a zero-value item (ID == 0) when not found.
func (r *implRepository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

func (r *implRepository) ListRecentItems(ctx context.Context, limit int) ([]model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentItems"), err)
		return nil, repo.ErrFailedToList
	}
	return r.collectItems(ctx, "ListRecentItems", rows)
}

func (r *implRepository) SearchItems(ctx context.Context, opt repo.SearchItemsOptions) ([]model.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE title ILIKE $1 OR author ILIKE $1 OR keywords ILIKE $1
		ORDER BY title ASC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, "%"+opt.Query+"%", opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchItems"), err)
		return nil, repo.ErrFailedToList
	}
	return r.collectItems(ctx, "SearchItems", rows)
}

// UpdateItem rewrites descriptive fields only. Availability belongs to
// the lending engine and is deliberately absent from the SET list.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, bool, error) {
	const query = `
		UPDATE items
		SET title = $2, author = $3, owner = $4, location = $5,
			loan_duration_days = $6, keywords = $7, cover_url = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Title, opt.Author, opt.Owner, opt.Location,
		opt.LoanDurationDays, opt.Keywords, opt.CoverURL,
	))
	if err == sql.ErrNoRows {
		return model.Item{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, false, repo.ErrFailedToUpdate
	}
	return item, true, nil
}
