package postgre

import (
	"database/sql"
	"fmt"

	"shareit/internal/booking/repository"
	"shareit/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for bookings.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("booking/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/postgre.%s", method)
}
