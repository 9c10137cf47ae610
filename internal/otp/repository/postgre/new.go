package postgre

import (
	"database/sql"
	"fmt"

	"library-lending/internal/otp/repository"
	"library-lending/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for OTP challenges.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("otp/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("otp/repository/postgre.%s", method)
}
