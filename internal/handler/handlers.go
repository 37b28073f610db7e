package handler

import (
	"github.com/deppfellow/music-catalog/internal/server"
	"github.com/deppfellow/music-catalog/internal/service"
)

// Handlers groups every HTTP handler so the router is wired in one place.
type Handlers struct {
	Health    *HealthHandler
	Albums    *AlbumHandler
	Songs     *SongHandler
	Authors   *AuthorHandler
	Genres    *GenreHandler
	Playlists *PlaylistHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Albums:    NewAlbumHandler(s, services.Albums),
		Songs:     NewSongHandler(s, services.Songs),
		Authors:   NewAuthorHandler(s, services.Authors),
		Genres:    NewGenreHandler(s, services.Genres),
		Playlists: NewPlaylistHandler(s, services.Playlists),
	}
}
