// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, checks the
// referential rules the schema alone cannot phrase for clients,
// and calls repository methods to interact with the data
package service

import (
	"github.com/deppfellow/music-catalog/internal/repository"
)

type Services struct {
	Albums    *AlbumService
	Songs     *SongService
	Authors   *AuthorService
	Genres    *GenreService
	Playlists *PlaylistService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Albums:    NewAlbumService(repos.Albums, repos.Songs),
		Songs:     NewSongService(repos.Songs, repos.Albums, repos.Authors, repos.Genres),
		Authors:   NewAuthorService(repos.Authors),
		Genres:    NewGenreService(repos.Genres),
		Playlists: NewPlaylistService(repos.Playlists, repos.Songs),
	}
}
