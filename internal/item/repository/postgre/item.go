package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

const itemColumns = `id, name, description, available, owner_id, request_id`

func scanItem(row interface{ Scan(dest ...any) error }) (model.Item, error) {
	var (
		it        model.Item
		requestID sql.NullInt64
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &requestID); err != nil {
		return model.Item{}, err
	}
	if requestID.Valid {
		id := requestID.Int64
		it.RequestID = &id
	}
	return it, nil
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns

	var requestID sql.NullInt64
	if opt.RequestID != nil {
		requestID = sql.NullInt64{Int64: *opt.RequestID, Valid: true}
	}

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, opt.Available, opt.OwnerID, requestID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem returns the zero Item when nothing matches.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE id = $1", itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM items %s", itemColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem returns the zero Item when the id does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE items SET name = $1, description = $2, available = $3
		WHERE id = $4
		RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, opt.Available, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}
