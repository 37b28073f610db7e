package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/music-catalog/internal/errs"
	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/sqlerr"
)

type stubExists map[int]bool

func (s stubExists) Exists(_ context.Context, id int) (bool, error) {
	return s[id], nil
}

type stubSongs struct {
	stubExists
	songs      map[int]model.Song
	created    *model.NewSong
	updated    *model.SongPatch
	attachedTo int
}

func (s *stubSongs) List(context.Context) ([]model.Song, error) { return nil, nil }

func (s *stubSongs) Get(_ context.Context, id int) (model.Song, error) {
	song, ok := s.songs[id]
	if !ok {
		return model.Song{}, sqlerr.NewNotFound("song")
	}
	return song, nil
}

func (s *stubSongs) Create(_ context.Context, in model.NewSong) (model.Song, error) {
	s.created = &in
	return model.Song{ID: 1, Name: in.Name}, nil
}

func (s *stubSongs) Update(_ context.Context, id int, patch model.SongPatch) (model.Song, error) {
	s.updated = &patch
	return model.Song{ID: id}, nil
}

func (s *stubSongs) Delete(context.Context, int) error { return nil }

func (s *stubSongs) Search(context.Context, model.SongFilter) ([]model.Song, error) { return nil, nil }

func (s *stubSongs) AttachToAlbum(ctx context.Context, albumID, songID int) (model.Song, error) {
	s.attachedTo = albumID
	return s.Get(ctx, songID)
}

func (s *stubSongs) DetachFromAlbum(context.Context, int) error { return nil }

type stubAlbums struct {
	stubExists
}

func (stubAlbums) List(context.Context) ([]model.Album, error) { return nil, nil }

func (stubAlbums) Get(context.Context, int) (model.Album, error) { return model.Album{}, nil }

func (stubAlbums) Update(context.Context, int, model.AlbumPatch) (model.Album, error) {
	return model.Album{}, nil
}
func (stubAlbums) Delete(context.Context, int) error { return nil }
func (stubAlbums) Create(context.Context, model.NewAlbum, []int) (model.Album, error) {
	return model.Album{}, nil
}

type stubPlaylists struct {
	stubExists
	added   [][2]int
	created int
}

func (s *stubPlaylists) List(context.Context) ([]model.Playlist, error) { return nil, nil }

func (s *stubPlaylists) ListByUser(context.Context, int) ([]model.Playlist, error) { return nil, nil }

func (s *stubPlaylists) Get(context.Context, int) (model.Playlist, error) { return model.Playlist{}, nil }

func (s *stubPlaylists) Create(context.Context, model.NewPlaylist, []int) (model.Playlist, error) {
	s.created++
	return model.Playlist{}, nil
}
func (s *stubPlaylists) Update(context.Context, int, model.PlaylistPatch) (model.Playlist, error) {
	return model.Playlist{}, nil
}
func (s *stubPlaylists) Delete(context.Context, int) error     { return nil }
func (s *stubPlaylists) RemoveSong(context.Context, int) error { return nil }

func (s *stubPlaylists) AddSong(_ context.Context, playlistID, songID int) (int, error) {
	s.added = append(s.added, [2]int{playlistID, songID})
	return len(s.added), nil
}

func intPtr(v int) *int { return &v }

func statusOf(t *testing.T, err error) (int, string) {
	t.Helper()
	httpErr := sqlerr.HandleError(err, "fallback")
	return httpErr.Status, httpErr.Message
}

func TestSongServiceCreateChecksReferences(t *testing.T) {
	tests := []struct {
		name    string
		in      model.NewSong
		status  int
		message string
	}{
		{"missing album", model.NewSong{AlbumID: intPtr(9), AuthorID: 1, GenreID: 1}, http.StatusBadRequest, "There is no album with this id"},
		{"missing author", model.NewSong{AuthorID: 9, GenreID: 1}, http.StatusBadRequest, "There is no genre or author with this id"},
		{"missing genre", model.NewSong{AuthorID: 1, GenreID: 9}, http.StatusBadRequest, "There is no genre or author with this id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs := &stubSongs{}
			svc := NewSongService(songs, stubExists{1: true}, stubExists{1: true}, stubExists{1: true})

			_, err := svc.Create(context.Background(), tt.in)
			status, msg := statusOf(t, err)
			if status != tt.status || msg != tt.message {
				t.Fatalf("got %d %q, want %d %q", status, msg, tt.status, tt.message)
			}
			if songs.created != nil {
				t.Fatal("song was written despite missing reference")
			}
		})
	}
}

func TestSongServiceCreate(t *testing.T) {
	songs := &stubSongs{}
	svc := NewSongService(songs, stubExists{}, stubExists{1: true}, stubExists{2: true})

	got, err := svc.Create(context.Background(), model.NewSong{AuthorID: 1, GenreID: 2, Name: "Song"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Name != "Song" || songs.created == nil {
		t.Fatalf("Create = %+v", got)
	}
}

func TestSongServiceUpdateChecksOnlyGivenReferences(t *testing.T) {
	songs := &stubSongs{}
	// Every lookup would fail, so any check on an absent reference breaks the test.
	svc := NewSongService(songs, stubExists{}, stubExists{}, stubExists{})

	name := "Renamed"
	if _, err := svc.Update(context.Background(), 4, model.SongPatch{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if songs.updated == nil || *songs.updated.Name != name {
		t.Fatalf("patch not forwarded: %+v", songs.updated)
	}

	_, err := svc.Update(context.Background(), 4, model.SongPatch{GenreID: intPtr(3)})
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Message != msgNoGenreOrAuthor {
		t.Fatalf("Update with missing genre err = %v", err)
	}
}

func TestAlbumServiceAttachSong(t *testing.T) {
	songs := &stubSongs{songs: map[int]model.Song{7: {ID: 7}}}
	svc := NewAlbumService(stubAlbums{stubExists{5: true}}, songs)

	if _, err := svc.AttachSong(context.Background(), 5, 7); err != nil {
		t.Fatalf("AttachSong: %v", err)
	}
	if songs.attachedTo != 5 {
		t.Fatalf("attachedTo = %d, want 5", songs.attachedTo)
	}

	_, err := svc.AttachSong(context.Background(), 6, 7)
	if status, msg := statusOf(t, err); status != http.StatusNotFound || msg != "There is no album with this id" {
		t.Fatalf("missing album: %d %q", status, msg)
	}

	_, err = svc.AttachSong(context.Background(), 5, 8)
	if status, msg := statusOf(t, err); status != http.StatusNotFound || msg != "There is no song with this id" {
		t.Fatalf("missing song: %d %q", status, msg)
	}
}

func TestPlaylistServiceAddSong(t *testing.T) {
	playlists := &stubPlaylists{stubExists: stubExists{3: true}}
	songs := &stubSongs{songs: map[int]model.Song{5: {ID: 5, Name: "S"}}}
	svc := NewPlaylistService(playlists, songs)

	for i := 0; i < 2; i++ {
		got, err := svc.AddSong(context.Background(), 3, 5)
		if err != nil {
			t.Fatalf("AddSong: %v", err)
		}
		if got.ID != 5 {
			t.Fatalf("AddSong = %+v", got)
		}
	}
	if len(playlists.added) != 2 {
		t.Fatalf("added = %v, want two memberships", playlists.added)
	}

	_, err := svc.AddSong(context.Background(), 4, 5)
	if status, msg := statusOf(t, err); status != http.StatusNotFound || msg != "There is no playlist with this id" {
		t.Fatalf("missing playlist: %d %q", status, msg)
	}
	if len(playlists.added) != 2 {
		t.Fatal("membership written for missing playlist")
	}
}

func TestPlaylistServiceCreateMissingSong(t *testing.T) {
	playlists := &stubPlaylists{}
	songs := &stubSongs{stubExists: stubExists{5: true}}
	svc := NewPlaylistService(playlists, songs)

	_, err := svc.Create(context.Background(), model.NewPlaylist{UserID: 1, Name: "Mix"}, []int{5, 9})
	if status, msg := statusOf(t, err); status != http.StatusNotFound || msg != "There is no song with this id" {
		t.Fatalf("missing song: %d %q", status, msg)
	}
	if playlists.created != 0 {
		t.Fatal("playlist written with a missing song")
	}

	if _, err := svc.Create(context.Background(), model.NewPlaylist{UserID: 1, Name: "Mix"}, []int{5, 5}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if playlists.created != 1 {
		t.Fatalf("created = %d, want 1", playlists.created)
	}
}
