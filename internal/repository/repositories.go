package repository

import (
	"github.com/deppfellow/music-catalog/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Albums    *AlbumRepository
	Songs     *SongRepository
	Authors   *AuthorRepository
	Genres    *GenreRepository
	Playlists *PlaylistRepository
}

// NewRepositories builds every repository on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on top of db.
func New(db DBTX) *Repositories {
	return &Repositories{
		Albums:    NewAlbumRepository(db),
		Songs:     NewSongRepository(db),
		Authors:   NewAuthorRepository(db),
		Genres:    NewGenreRepository(db),
		Playlists: NewPlaylistRepository(db),
	}
}
