package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	repo "library-lending/internal/lending/repository"
	"library-lending/internal/model"
)

const requestColumns = `token, member_id, item_id, full_name, email,
	request_status, approval_status, return_status,
	created_at, approved_at, delivered_at, due_at`

// scanRequest maps one row onto a LoanRequest, unpacking the nullable
// references and timestamps.
func scanRequest(row interface{ Scan(...any) error }) (model.LoanRequest, error) {
	var (
		req         model.LoanRequest
		memberID    sql.NullInt64
		itemID      sql.NullInt64
		approvedAt  sql.NullTime
		deliveredAt sql.NullTime
		dueAt       sql.NullTime
	)
	err := row.Scan(
		&req.Token, &memberID, &itemID, &req.FullName, &req.Email,
		&req.RequestStatus, &req.ApprovalStatus, &req.ReturnStatus,
		&req.CreatedAt, &approvedAt, &deliveredAt, &dueAt,
	)
	if err != nil {
		return model.LoanRequest{}, err
	}
	if memberID.Valid {
		req.MemberID = &memberID.Int64
	}
	if itemID.Valid {
		req.ItemID = &itemID.Int64
	}
	if approvedAt.Valid {
		req.ApprovedAt = &approvedAt.Time
	}
	if deliveredAt.Valid {
		req.DeliveredAt = &deliveredAt.Time
	}
	if dueAt.Valid {
		req.DueAt = &dueAt.Time
	}
	return req, nil
}

// CreateRequest inserts a new loan request row and returns the created entity.
func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.LoanRequest, error) {
	const query = `
		INSERT INTO loan_requests
			(token, member_id, item_id, full_name, email,
			 request_status, approval_status, return_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING ` + requestColumns

	req, err := scanRequest(r.db.QueryRowContext(ctx, query,
		opt.Token, opt.MemberID, opt.ItemID, opt.FullName, opt.Email,
		opt.RequestStatus, opt.ApprovalStatus, opt.ReturnStatus,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.LoanRequest{}, repo.ErrFailedToInsert
	}
	return req, nil
}

// GetRequestByToken retrieves a single request by token.
// Returns zero-value request (Token == "") when not found.
func (r *implRepository) GetRequestByToken(ctx context.Context, token string) (model.LoanRequest, error) {
	const query = `SELECT ` + requestColumns + ` FROM loan_requests WHERE token = $1`

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, token))
	if err == sql.ErrNoRows {
		return model.LoanRequest{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRequestByToken"), err)
		return model.LoanRequest{}, repo.ErrFailedToGet
	}
	return req, nil
}

// DeleteRequest removes a request row by token.
func (r *implRepository) DeleteRequest(ctx context.Context, token string) error {
	const query = `DELETE FROM loan_requests WHERE token = $1`

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRequest"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ApprovePendingRequest moves a Pending request to Approved in one
// statement. COALESCE keeps already-set timestamps untouched so the due
// date is never recomputed.
func (r *implRepository) ApprovePendingRequest(ctx context.Context, opt repo.ApproveRequestOptions) (model.LoanRequest, bool, error) {
	const query = `
		UPDATE loan_requests
		SET approval_status = 'approved',
		    return_status   = 'pending_return',
		    approved_at     = COALESCE(approved_at, $2),
		    delivered_at    = COALESCE(delivered_at, $3),
		    due_at          = COALESCE(due_at, $4)
		WHERE token = $1 AND approval_status = 'pending'
		RETURNING ` + requestColumns

	req, err := scanRequest(r.db.QueryRowContext(ctx, query,
		opt.Token, opt.ApprovedAt, opt.DeliveredAt, opt.DueAt,
	))
	if err == sql.ErrNoRows {
		return model.LoanRequest{}, false, nil // guard did not match
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ApprovePendingRequest"), err)
		return model.LoanRequest{}, false, repo.ErrFailedToUpdate
	}
	return req, true, nil
}

// ApproveDigitalRequest auto-approves a digital request.
func (r *implRepository) ApproveDigitalRequest(ctx context.Context, token string, approvedAt time.Time) (model.LoanRequest, bool, error) {
	const query = `
		UPDATE loan_requests
		SET approval_status = 'approved',
		    return_status   = 'not_applicable',
		    approved_at     = COALESCE(approved_at, $2)
		WHERE token = $1 AND approval_status = 'pending'
		RETURNING ` + requestColumns

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, token, approvedAt))
	if err == sql.ErrNoRows {
		return model.LoanRequest{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ApproveDigitalRequest"), err)
		return model.LoanRequest{}, false, repo.ErrFailedToUpdate
	}
	return req, true, nil
}

// UpdateApprovalStatus moves a request to opt.To when its current
// status is one of opt.From. A returned loan never transitions: its
// Approved status is a closed historical record.
func (r *implRepository) UpdateApprovalStatus(ctx context.Context, opt repo.UpdateApprovalStatusOptions) (bool, error) {
	const query = `
		UPDATE loan_requests
		SET approval_status = $2
		WHERE token = $1
		  AND approval_status = ANY($3)
		  AND return_status <> 'returned'`

	from := make([]string, 0, len(opt.From))
	for _, s := range opt.From {
		from = append(from, string(s))
	}

	res, err := r.db.ExecContext(ctx, query, opt.Token, opt.To, pq.Array(from))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateApprovalStatus"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("UpdateApprovalStatus"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}

// MarkRequestReturned closes an actively held loan in one statement.
func (r *implRepository) MarkRequestReturned(ctx context.Context, token string) (model.LoanRequest, bool, error) {
	const query = `
		UPDATE loan_requests
		SET return_status = 'returned'
		WHERE token = $1
		  AND approval_status = 'approved'
		  AND return_status = 'pending_return'
		RETURNING ` + requestColumns

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, token))
	if err == sql.ErrNoRows {
		return model.LoanRequest{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkRequestReturned"), err)
		return model.LoanRequest{}, false, repo.ErrFailedToUpdate
	}
	return req, true, nil
}

// CountMemberRequests counts requests of one kind in a trailing window.
func (r *implRepository) CountMemberRequests(ctx context.Context, opt repo.CountMemberRequestsOptions) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM loan_requests lr
		JOIN items i ON i.id = lr.item_id
		WHERE lr.member_id = $1 AND i.kind = $2 AND lr.created_at >= $3`

	var count int
	if err := r.db.QueryRowContext(ctx, query, opt.MemberID, opt.Kind, opt.Since).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountMemberRequests"), err)
		return 0, repo.ErrFailedToGet
	}
	return count, nil
}

// HasUnreturnedPhysical reports whether the member holds, or is waiting
// on, any physical item.
func (r *implRepository) HasUnreturnedPhysical(ctx context.Context, memberID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM loan_requests lr
			JOIN items i ON i.id = lr.item_id
			WHERE lr.member_id = $1
			  AND i.kind = 'physical'
			  AND lr.return_status <> 'returned'
			  AND lr.approval_status IN ('pending', 'approved')
		)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, memberID).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasUnreturnedPhysical"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}

// ListStalePending returns physical Pending requests created at or
// before cutoff, oldest first.
func (r *implRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]model.LoanRequest, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM loan_requests lr
		WHERE lr.approval_status = 'pending'
		  AND lr.created_at <= $1
		  AND EXISTS (SELECT 1 FROM items i WHERE i.id = lr.item_id AND i.kind = 'physical')
		ORDER BY lr.created_at`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStalePending"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var reqs []model.LoanRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListStalePending"), err)
			return nil, repo.ErrFailedToList
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
