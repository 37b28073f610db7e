package service

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
)

type AuthorService struct {
	authors authorStore
}

func NewAuthorService(authors authorStore) *AuthorService {
	return &AuthorService{authors: authors}
}

func (s *AuthorService) List(ctx context.Context) ([]model.Author, error) {
	return s.authors.List(ctx)
}

func (s *AuthorService) Get(ctx context.Context, id int) (model.Author, error) {
	return s.authors.Get(ctx, id)
}

func (s *AuthorService) Create(ctx context.Context, name string) (model.Author, error) {
	return s.authors.Create(ctx, name)
}

func (s *AuthorService) Update(ctx context.Context, id int, name *string) (model.Author, error) {
	return s.authors.Update(ctx, id, name)
}

// Delete removes the author together with all of its songs.
func (s *AuthorService) Delete(ctx context.Context, id int) error {
	return s.authors.Delete(ctx, id)
}
