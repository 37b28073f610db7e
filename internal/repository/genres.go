package repository

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
)

// GenreRepository stores genres. Deleting a genre cascades to its
// songs through the songs.genre_id foreign key.
type GenreRepository struct {
	t namedTable
}

func NewGenreRepository(db DBTX) *GenreRepository {
	return &GenreRepository{t: namedTable{db: db, table: "genres", entity: "genre"}}
}

func (r *GenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.t.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Genre, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Genre(row))
	}
	return out, nil
}

func (r *GenreRepository) Get(ctx context.Context, id int) (model.Genre, error) {
	row, err := r.t.get(ctx, id)
	return model.Genre(row), err
}

func (r *GenreRepository) Create(ctx context.Context, name string) (model.Genre, error) {
	row, err := r.t.create(ctx, name)
	return model.Genre(row), err
}

func (r *GenreRepository) Update(ctx context.Context, id int, name *string) (model.Genre, error) {
	row, err := r.t.update(ctx, id, name)
	return model.Genre(row), err
}

func (r *GenreRepository) Delete(ctx context.Context, id int) error {
	return r.t.delete(ctx, id)
}

func (r *GenreRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.t.exists(ctx, id)
}
