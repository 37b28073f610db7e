// Package model holds the catalog entities as they are stored and served.
package model

// Ref is the {id, name} projection of an author or genre nested in a song.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Song is always served with its genre and author nested.
type Song struct {
	ID      int     `json:"id"`
	AlbumID *int    `json:"album_id"`
	Name    string  `json:"name"`
	Audio   string  `json:"audio"`
	Img     *string `json:"img"`
	Genre   Ref     `json:"genre"`
	Author  Ref     `json:"author"`
}

type Album struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Img   *string `json:"img"`
	Songs []Song  `json:"songs"`
}

// PlaylistSong is a song as seen through one playlist membership.
// PlaylistSongID is the handle used to remove that membership.
type PlaylistSong struct {
	Song
	PlaylistSongID int `json:"playlist_song_id"`
}

type Playlist struct {
	ID     int            `json:"id"`
	UserID int            `json:"user_id"`
	Name   string         `json:"name"`
	Img    *string        `json:"img"`
	Songs  []PlaylistSong `json:"songs"`
}

// NewAlbum is the input for creating an album.
type NewAlbum struct {
	Name string
	Img  *string
}

// AlbumPatch holds the album fields to change; nil means unchanged.
type AlbumPatch struct {
	Name *string
	Img  *string
}

type NewSong struct {
	AlbumID  *int
	AuthorID int
	GenreID  int
	Name     string
	Audio    string
	Img      *string
}

type SongPatch struct {
	AlbumID  *int
	AuthorID *int
	GenreID  *int
	Name     *string
	Audio    *string
	Img      *string
}

// SongFilter narrows a song search; nil fields match everything.
type SongFilter struct {
	AuthorID *int
	GenreID  *int
}

type NewPlaylist struct {
	UserID int
	Name   string
	Img    *string
}

type PlaylistPatch struct {
	Name *string
	Img  *string
}
