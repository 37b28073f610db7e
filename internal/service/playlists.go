package service

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/sqlerr"
)

type PlaylistService struct {
	playlists playlistStore
	songs     songStore
}

func NewPlaylistService(playlists playlistStore, songs songStore) *PlaylistService {
	return &PlaylistService{playlists: playlists, songs: songs}
}

func (s *PlaylistService) List(ctx context.Context) ([]model.Playlist, error) {
	return s.playlists.List(ctx)
}

func (s *PlaylistService) ListByUser(ctx context.Context, userID int) ([]model.Playlist, error) {
	return s.playlists.ListByUser(ctx, userID)
}

func (s *PlaylistService) Get(ctx context.Context, id int) (model.Playlist, error) {
	return s.playlists.Get(ctx, id)
}

// Create checks every song id first, so a missing song reports the same
// 404 as AddSong.
func (s *PlaylistService) Create(ctx context.Context, in model.NewPlaylist, songIDs []int) (model.Playlist, error) {
	for _, id := range songIDs {
		found, err := s.songs.Exists(ctx, id)
		if err != nil {
			return model.Playlist{}, err
		}
		if !found {
			return model.Playlist{}, sqlerr.NewNotFound("song")
		}
	}
	return s.playlists.Create(ctx, in, songIDs)
}

func (s *PlaylistService) Update(ctx context.Context, id int, patch model.PlaylistPatch) (model.Playlist, error) {
	return s.playlists.Update(ctx, id, patch)
}

func (s *PlaylistService) Delete(ctx context.Context, id int) error {
	return s.playlists.Delete(ctx, id)
}

// AddSong appends songID to the playlist, even if it is already there,
// and returns the song.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, songID int) (model.Song, error) {
	found, err := s.playlists.Exists(ctx, playlistID)
	if err != nil {
		return model.Song{}, err
	}
	if !found {
		return model.Song{}, sqlerr.NewNotFound("playlist")
	}

	song, err := s.songs.Get(ctx, songID)
	if err != nil {
		return model.Song{}, err
	}

	if _, err := s.playlists.AddSong(ctx, playlistID, songID); err != nil {
		return model.Song{}, err
	}
	return song, nil
}

// RemoveSong deletes a single membership by its own id.
func (s *PlaylistService) RemoveSong(ctx context.Context, playlistSongID int) error {
	return s.playlists.RemoveSong(ctx, playlistSongID)
}
