package postgre

import (
	"context"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// CreateComment inserts the comment and returns it with the author's name.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	const query = `
		WITH ins AS (
			INSERT INTO comments (text, item_id, author_id, created)
			VALUES ($1, $2, $3, $4)
			RETURNING id, text, item_id, author_id, created
		)
		SELECT ins.id, ins.text, ins.item_id, ins.author_id, u.name, ins.created
		FROM ins JOIN users u ON u.id = ins.author_id`

	var cm model.Comment
	err := r.db.QueryRowContext(ctx, query, opt.Text, opt.ItemID, opt.AuthorID, opt.Created).Scan(
		&cm.ID, &cm.Text, &cm.ItemID, &cm.AuthorID, &cm.AuthorName, &cm.Created,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}
	return cm, nil
}

func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	comments := []model.Comment{}
	if len(opt.ItemIDs) == 0 {
		return comments, nil
	}

	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created DESC, c.id DESC`

	rows, err := r.db.QueryContext(ctx, query, opt.ItemIDs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.Text, &cm.ItemID, &cm.AuthorID, &cm.AuthorName, &cm.Created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListComments"), err)
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	return comments, nil
}
