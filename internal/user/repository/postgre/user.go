package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
	"shareit/pkg/postgres"
)

const userColumns = `id, name, email`

func scanUser(row interface{ Scan(dest ...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email)
	return u, err
}

// CreateUser inserts a user. A taken email yields repo.ErrUniqueViolation.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Name, opt.Email))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return model.User{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser returns the zero User when nothing matches.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users %s", userColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListUsers"), err)
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

// UpdateUser returns the zero User when the id does not exist.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	const query = `UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return model.User{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
