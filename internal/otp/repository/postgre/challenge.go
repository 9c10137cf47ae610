package postgre

import (
	"context"
	"database/sql"

	"library-lending/internal/model"
	repo "library-lending/internal/otp/repository"
)

const challengeColumns = `id, phone, code, created_at, expires_at, verified`

func scanChallenge(row interface{ Scan(...any) error }) (model.OTPChallenge, error) {
	var c model.OTPChallenge
	err := row.Scan(&c.ID, &c.Phone, &c.Code, &c.CreatedAt, &c.ExpiresAt, &c.Verified)
	if err != nil {
		return model.OTPChallenge{}, err
	}
	return c, nil
}

// DeleteUnverifiedChallenges removes prior unverified challenges for a phone.
func (r *implRepository) DeleteUnverifiedChallenges(ctx context.Context, phone string) error {
	const query = `DELETE FROM otp_challenges WHERE phone = $1 AND NOT verified`

	if _, err := r.db.ExecContext(ctx, query, phone); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUnverifiedChallenges"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CreateChallenge inserts a new challenge row.
func (r *implRepository) CreateChallenge(ctx context.Context, opt repo.CreateChallengeOptions) (model.OTPChallenge, error) {
	const query = `
		INSERT INTO otp_challenges (phone, code, created_at, expires_at, verified)
		VALUES ($1, $2, NOW(), $3, FALSE)
		RETURNING ` + challengeColumns

	c, err := scanChallenge(r.db.QueryRowContext(ctx, query, opt.Phone, opt.Code, opt.ExpiresAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateChallenge"), err)
		return model.OTPChallenge{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// ClaimChallenge is the verify-once guard: the match conditions and the
// verified flip are one statement, so concurrent claims of the same
// code cannot both succeed.
func (r *implRepository) ClaimChallenge(ctx context.Context, opt repo.ClaimChallengeOptions) (model.OTPChallenge, bool, error) {
	const query = `
		UPDATE otp_challenges
		SET verified = TRUE
		WHERE phone = $1 AND code = $2 AND NOT verified AND expires_at > $3
		RETURNING ` + challengeColumns

	c, err := scanChallenge(r.db.QueryRowContext(ctx, query, opt.Phone, opt.Code, opt.Now))
	if err == sql.ErrNoRows {
		return model.OTPChallenge{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClaimChallenge"), err)
		return model.OTPChallenge{}, false, repo.ErrFailedToUpdate
	}
	return c, true, nil
}
