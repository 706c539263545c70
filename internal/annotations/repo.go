package annotations

import (
	"context"
	"database/sql"
	"fmt"

	"krisenkanon/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, a models.Annotation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO annotations (id, slug, editor_id, quote, body)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Slug, a.EditorID, a.Quote, a.Body)
	if err != nil {
		return fmt.Errorf("create annotation: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (*models.Annotation, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT a.id, a.slug, a.editor_id, e.handle, a.quote, a.body, a.created_at
		FROM annotations a
		JOIN editors e ON e.id = a.editor_id
		WHERE a.id = ?
	`, id)

	var (
		a     models.Annotation
		quote sql.NullString
	)
	if err := row.Scan(&a.ID, &a.Slug, &a.EditorID, &a.Editor, &quote, &a.Body, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get annotation: %w", err)
	}
	a.Quote = quote.String
	return &a, nil
}

// ListBySlug returns every annotation for one entry, newest first.
func (r *Repo) ListBySlug(ctx context.Context, slug string) ([]models.Annotation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT a.id, a.slug, a.editor_id, e.handle, a.quote, a.body, a.created_at
		FROM annotations a
		JOIN editors e ON e.id = a.editor_id
		WHERE a.slug = ?
		ORDER BY a.created_at DESC, a.id
	`, slug)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	defer rows.Close()

	out := make([]models.Annotation, 0, 8)
	for rows.Next() {
		var (
			a     models.Annotation
			quote sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Slug, &a.EditorID, &a.Editor, &quote, &a.Body, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan annotation: %w", err)
		}
		a.Quote = quote.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// Delete removes an annotation owned by the given editor. Returns false
// when nothing matched (unknown id or foreign annotation).
func (r *Repo) Delete(ctx context.Context, id, editorID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM annotations
		WHERE id = ? AND editor_id = ?
	`, id, editorID)
	if err != nil {
		return false, fmt.Errorf("delete annotation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete annotation rows: %w", err)
	}
	return affected > 0, nil
}
