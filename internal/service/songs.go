package service

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/errs"
	"github.com/deppfellow/music-catalog/internal/model"
)

const (
	msgNoAlbum         = "There is no album with this id"
	msgNoGenreOrAuthor = "There is no genre or author with this id"
)

type SongService struct {
	songs   songStore
	albums  existenceChecker
	authors existenceChecker
	genres  existenceChecker
}

func NewSongService(songs songStore, albums, authors, genres existenceChecker) *SongService {
	return &SongService{songs: songs, albums: albums, authors: authors, genres: genres}
}

func (s *SongService) List(ctx context.Context) ([]model.Song, error) {
	return s.songs.List(ctx)
}

func (s *SongService) Get(ctx context.Context, id int) (model.Song, error) {
	return s.songs.Get(ctx, id)
}

func (s *SongService) Create(ctx context.Context, in model.NewSong) (model.Song, error) {
	if err := s.checkRefs(ctx, in.AlbumID, &in.AuthorID, &in.GenreID); err != nil {
		return model.Song{}, err
	}
	return s.songs.Create(ctx, in)
}

// Update only checks the references present in patch.
func (s *SongService) Update(ctx context.Context, id int, patch model.SongPatch) (model.Song, error) {
	if err := s.checkRefs(ctx, patch.AlbumID, patch.AuthorID, patch.GenreID); err != nil {
		return model.Song{}, err
	}
	return s.songs.Update(ctx, id, patch)
}

func (s *SongService) Delete(ctx context.Context, id int) error {
	return s.songs.Delete(ctx, id)
}

func (s *SongService) Search(ctx context.Context, filter model.SongFilter) ([]model.Song, error) {
	return s.songs.Search(ctx, filter)
}

// checkRefs verifies referenced rows before writing so clients get a
// message naming the missing entity instead of a foreign key error.
func (s *SongService) checkRefs(ctx context.Context, albumID, authorID, genreID *int) error {
	if albumID != nil {
		found, err := s.albums.Exists(ctx, *albumID)
		if err != nil {
			return err
		}
		if !found {
			return errs.NewBadRequestError(msgNoAlbum)
		}
	}

	for _, ref := range []struct {
		id    *int
		store existenceChecker
	}{
		{genreID, s.genres},
		{authorID, s.authors},
	} {
		if ref.id == nil {
			continue
		}
		found, err := ref.store.Exists(ctx, *ref.id)
		if err != nil {
			return err
		}
		if !found {
			return errs.NewBadRequestError(msgNoGenreOrAuthor)
		}
	}

	return nil
}
