package service

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
)

type GenreService struct {
	genres genreStore
}

func NewGenreService(genres genreStore) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.genres.List(ctx)
}

func (s *GenreService) Get(ctx context.Context, id int) (model.Genre, error) {
	return s.genres.Get(ctx, id)
}

func (s *GenreService) Create(ctx context.Context, name string) (model.Genre, error) {
	return s.genres.Create(ctx, name)
}

func (s *GenreService) Update(ctx context.Context, id int, name *string) (model.Genre, error) {
	return s.genres.Update(ctx, id, name)
}

// Delete removes the genre together with all of its songs.
func (s *GenreService) Delete(ctx context.Context, id int) error {
	return s.genres.Delete(ctx, id)
}
