package postgres_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"shareit/pkg/postgres"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("Wrapped Unique Violation", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"})
		if !postgres.IsUniqueViolation(err) {
			t.Errorf("expected unique violation to be detected")
		}
	})

	t.Run("Other Postgres Error", func(t *testing.T) {
		if postgres.IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
			t.Errorf("foreign key violation is not a unique violation")
		}
	})

	t.Run("Plain Error", func(t *testing.T) {
		if postgres.IsUniqueViolation(errors.New("boom")) {
			t.Errorf("plain error is not a unique violation")
		}
		if postgres.IsUniqueViolation(nil) {
			t.Errorf("nil is not a unique violation")
		}
	})
}
