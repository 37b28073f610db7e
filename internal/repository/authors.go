package repository

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
)

// AuthorRepository stores authors. Deleting an author cascades to its
// songs through the songs.author_id foreign key.
type AuthorRepository struct {
	t namedTable
}

func NewAuthorRepository(db DBTX) *AuthorRepository {
	return &AuthorRepository{t: namedTable{db: db, table: "authors", entity: "author"}}
}

func (r *AuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	rows, err := r.t.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Author, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Author(row))
	}
	return out, nil
}

func (r *AuthorRepository) Get(ctx context.Context, id int) (model.Author, error) {
	row, err := r.t.get(ctx, id)
	return model.Author(row), err
}

func (r *AuthorRepository) Create(ctx context.Context, name string) (model.Author, error) {
	row, err := r.t.create(ctx, name)
	return model.Author(row), err
}

func (r *AuthorRepository) Update(ctx context.Context, id int, name *string) (model.Author, error) {
	row, err := r.t.update(ctx, id, name)
	return model.Author(row), err
}

func (r *AuthorRepository) Delete(ctx context.Context, id int) error {
	return r.t.delete(ctx, id)
}

func (r *AuthorRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.t.exists(ctx, id)
}
