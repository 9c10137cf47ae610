package postgre

import (
	"context"
	"database/sql"

	repo "library-lending/internal/member/repository"
	"library-lending/internal/model"
)

const memberColumns = `id, first_name, surname, other_names, date_of_birth,
	email, phone, residence, landmark`

func scanMember(row interface{ Scan(...any) error }) (model.Member, error) {
	var (
		m   model.Member
		dob sql.NullTime
	)
	err := row.Scan(
		&m.ID, &m.FirstName, &m.Surname, &m.OtherNames, &dob,
		&m.Email, &m.Phone, &m.Residence, &m.Landmark,
	)
	if err != nil {
		return model.Member{}, err
	}
	if dob.Valid {
		m.DateOfBirth = &dob.Time
	}
	return m, nil
}

// GetMemberByID retrieves a member by id.
// Returns zero-value member (ID == 0) when not found.
func (r *implRepository) GetMemberByID(ctx context.Context, id int64) (model.Member, error) {
	const query = `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Member{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMemberByID"), err)
		return model.Member{}, repo.ErrFailedToGet
	}
	return m, nil
}

// GetMemberByContact looks a member up by exact email (case-insensitive)
// or exact phone number.
func (r *implRepository) GetMemberByContact(ctx context.Context, contact string) (model.Member, error) {
	const query = `
		SELECT ` + memberColumns + `
		FROM members
		WHERE LOWER(email) = LOWER($1) OR phone = $1
		LIMIT 1`

	m, err := scanMember(r.db.QueryRowContext(ctx, query, contact))
	if err == sql.ErrNoRows {
		return model.Member{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMemberByContact"), err)
		return model.Member{}, repo.ErrFailedToGet
	}
	return m, nil
}

// GetMemberByEmail retrieves a member by email, case-insensitively.
func (r *implRepository) GetMemberByEmail(ctx context.Context, email string) (model.Member, error) {
	const query = `SELECT ` + memberColumns + ` FROM members WHERE LOWER(email) = LOWER($1)`

	m, err := scanMember(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return model.Member{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMemberByEmail"), err)
		return model.Member{}, repo.ErrFailedToGet
	}
	return m, nil
}

// CreateMember inserts a new member row and returns the created entity.
func (r *implRepository) CreateMember(ctx context.Context, opt repo.CreateMemberOptions) (model.Member, error) {
	const query = `
		INSERT INTO members
			(first_name, surname, other_names, date_of_birth,
			 email, phone, residence, landmark)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + memberColumns

	m, err := scanMember(r.db.QueryRowContext(ctx, query,
		opt.FirstName, opt.Surname, opt.OtherNames, opt.DateOfBirth,
		opt.Email, opt.Phone, opt.Residence, opt.Landmark,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMember"), err)
		return model.Member{}, repo.ErrFailedToInsert
	}
	return m, nil
}
