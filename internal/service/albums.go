package service

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/sqlerr"
)

type AlbumService struct {
	albums albumStore
	songs  songStore
}

func NewAlbumService(albums albumStore, songs songStore) *AlbumService {
	return &AlbumService{albums: albums, songs: songs}
}

func (s *AlbumService) List(ctx context.Context) ([]model.Album, error) {
	return s.albums.List(ctx)
}

func (s *AlbumService) Get(ctx context.Context, id int) (model.Album, error) {
	return s.albums.Get(ctx, id)
}

// Create makes the album and claims every listed song that has no album.
// Songs that already belong to an album are skipped without error.
func (s *AlbumService) Create(ctx context.Context, in model.NewAlbum, songIDs []int) (model.Album, error) {
	return s.albums.Create(ctx, in, songIDs)
}

func (s *AlbumService) Update(ctx context.Context, id int, patch model.AlbumPatch) (model.Album, error) {
	return s.albums.Update(ctx, id, patch)
}

func (s *AlbumService) Delete(ctx context.Context, id int) error {
	return s.albums.Delete(ctx, id)
}

// AttachSong assigns songID to albumID if the song has no album yet and
// returns the song as stored afterwards.
func (s *AlbumService) AttachSong(ctx context.Context, albumID, songID int) (model.Song, error) {
	found, err := s.albums.Exists(ctx, albumID)
	if err != nil {
		return model.Song{}, err
	}
	if !found {
		return model.Song{}, sqlerr.NewNotFound("album")
	}

	return s.songs.AttachToAlbum(ctx, albumID, songID)
}

func (s *AlbumService) DetachSong(ctx context.Context, songID int) error {
	return s.songs.DetachFromAlbum(ctx, songID)
}
