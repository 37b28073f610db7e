package service

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
)

// The interfaces below are what each service needs from storage. The
// repository package satisfies them against PostgreSQL.

type existenceChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type albumStore interface {
	existenceChecker
	List(ctx context.Context) ([]model.Album, error)
	Get(ctx context.Context, id int) (model.Album, error)
	Create(ctx context.Context, in model.NewAlbum, songIDs []int) (model.Album, error)
	Update(ctx context.Context, id int, patch model.AlbumPatch) (model.Album, error)
	Delete(ctx context.Context, id int) error
}

type songStore interface {
	existenceChecker
	List(ctx context.Context) ([]model.Song, error)
	Get(ctx context.Context, id int) (model.Song, error)
	Create(ctx context.Context, in model.NewSong) (model.Song, error)
	Update(ctx context.Context, id int, patch model.SongPatch) (model.Song, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, filter model.SongFilter) ([]model.Song, error)
	AttachToAlbum(ctx context.Context, albumID, songID int) (model.Song, error)
	DetachFromAlbum(ctx context.Context, songID int) error
}

type authorStore interface {
	existenceChecker
	List(ctx context.Context) ([]model.Author, error)
	Get(ctx context.Context, id int) (model.Author, error)
	Create(ctx context.Context, name string) (model.Author, error)
	Update(ctx context.Context, id int, name *string) (model.Author, error)
	Delete(ctx context.Context, id int) error
}

type genreStore interface {
	existenceChecker
	List(ctx context.Context) ([]model.Genre, error)
	Get(ctx context.Context, id int) (model.Genre, error)
	Create(ctx context.Context, name string) (model.Genre, error)
	Update(ctx context.Context, id int, name *string) (model.Genre, error)
	Delete(ctx context.Context, id int) error
}

type playlistStore interface {
	existenceChecker
	List(ctx context.Context) ([]model.Playlist, error)
	ListByUser(ctx context.Context, userID int) ([]model.Playlist, error)
	Get(ctx context.Context, id int) (model.Playlist, error)
	Create(ctx context.Context, in model.NewPlaylist, songIDs []int) (model.Playlist, error)
	Update(ctx context.Context, id int, patch model.PlaylistPatch) (model.Playlist, error)
	Delete(ctx context.Context, id int) error
	AddSong(ctx context.Context, playlistID, songID int) (int, error)
	RemoveSong(ctx context.Context, playlistSongID int) error
}
