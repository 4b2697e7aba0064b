package postgre

import (
	"database/sql"
	"fmt"

	"shareit/internal/user/repository"
	"shareit/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for the user domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/postgre.%s", method)
}
