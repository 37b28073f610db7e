// Package handler holds the HTTP handlers of the catalog API.
//
// Every endpoint goes through the same pipeline: the request body is
// checked against the request type's allow-list, decoded, validated,
// handed to a service, and the result is wrapped in {"data": ...}.
// Errors are classified by sqlerr and fall back to a 500 naming the
// failed operation.
package handler

import (
	"context"

	"github.com/deppfellow/music-catalog/internal/model"
)

// The service contracts the handlers depend on. The service package
// implements them.

type albumService interface {
	List(ctx context.Context) ([]model.Album, error)
	Get(ctx context.Context, id int) (model.Album, error)
	Create(ctx context.Context, in model.NewAlbum, songIDs []int) (model.Album, error)
	Update(ctx context.Context, id int, patch model.AlbumPatch) (model.Album, error)
	Delete(ctx context.Context, id int) error
	AttachSong(ctx context.Context, albumID, songID int) (model.Song, error)
	DetachSong(ctx context.Context, songID int) error
}

type songService interface {
	List(ctx context.Context) ([]model.Song, error)
	Get(ctx context.Context, id int) (model.Song, error)
	Create(ctx context.Context, in model.NewSong) (model.Song, error)
	Update(ctx context.Context, id int, patch model.SongPatch) (model.Song, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, filter model.SongFilter) ([]model.Song, error)
}

type authorService interface {
	List(ctx context.Context) ([]model.Author, error)
	Get(ctx context.Context, id int) (model.Author, error)
	Create(ctx context.Context, name string) (model.Author, error)
	Update(ctx context.Context, id int, name *string) (model.Author, error)
	Delete(ctx context.Context, id int) error
}

type genreService interface {
	List(ctx context.Context) ([]model.Genre, error)
	Get(ctx context.Context, id int) (model.Genre, error)
	Create(ctx context.Context, name string) (model.Genre, error)
	Update(ctx context.Context, id int, name *string) (model.Genre, error)
	Delete(ctx context.Context, id int) error
}

type playlistService interface {
	List(ctx context.Context) ([]model.Playlist, error)
	ListByUser(ctx context.Context, userID int) ([]model.Playlist, error)
	Get(ctx context.Context, id int) (model.Playlist, error)
	Create(ctx context.Context, in model.NewPlaylist, songIDs []int) (model.Playlist, error)
	Update(ctx context.Context, id int, patch model.PlaylistPatch) (model.Playlist, error)
	Delete(ctx context.Context, id int) error
	AddSong(ctx context.Context, playlistID, songID int) (model.Song, error)
	RemoveSong(ctx context.Context, playlistSongID int) error
}
