package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/model"
	repo "shareit/internal/request/repository"
)

const requestColumns = `id, description, requestor_id, created`

func scanRequest(row interface{ Scan(dest ...any) error }) (model.Request, error) {
	var rq model.Request
	err := row.Scan(&rq.ID, &rq.Description, &rq.RequestorID, &rq.Created)
	return rq, err
}

func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.Request, error) {
	const query = `
		INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING ` + requestColumns

	rq, err := scanRequest(r.db.QueryRowContext(ctx, query, opt.Description, opt.RequestorID, opt.Created))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.Request{}, repo.ErrFailedToInsert
	}
	return rq, nil
}

// GetOneRequest returns the zero Request when nothing matches.
func (r *implRepository) GetOneRequest(ctx context.Context, opt repo.GetOneRequestOptions) (model.Request, error) {
	query := fmt.Sprintf("SELECT %s FROM requests WHERE id = $1", requestColumns)

	rq, err := scanRequest(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Request{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.Request{}, repo.ErrFailedToGet
	}
	return rq, nil
}

func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.Request, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM requests %s", requestColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	requests := []model.Request{}
	for rows.Next() {
		rq, err := scanRequest(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRequests"), err)
			return nil, repo.ErrFailedToList
		}
		requests = append(requests, rq)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	return requests, nil
}
