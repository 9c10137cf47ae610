package postgre

import (
	"database/sql"
	"fmt"

	"library-lending/internal/catalog/repository"
	"library-lending/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the catalog.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}
