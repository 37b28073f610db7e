package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
)

var songCols = []string{"id", "album_id", "name", "audio", "img", "genre_id", "genre_name", "author_id", "author_name"}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func q(sql string) string { return regexp.QuoteMeta(sql) }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func verify(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuthorRepositoryCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewAuthorRepository(mock)

	mock.ExpectQuery(q(`INSERT INTO authors (name) VALUES ($1) RETURNING id, name`)).
		WithArgs("Test").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(1, "Test"))

	got, err := repo.Create(context.Background(), "Test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got != (model.Author{ID: 1, Name: "Test"}) {
		t.Fatalf("Create = %+v", got)
	}
	verify(t, mock)
}

func TestAuthorRepositoryCreateDuplicateKeepsDriverError(t *testing.T) {
	mock := newMock(t)
	repo := NewAuthorRepository(mock)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "authors_name_key", Message: "duplicate key value violates unique constraint"}
	mock.ExpectQuery(q(`INSERT INTO authors`)).WithArgs("Test").WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "Test")
	if sqlerr.ErrCode(err) != sqlerr.UniqueViolation {
		t.Fatalf("ErrCode = %v, want unique violation (err %v)", sqlerr.ErrCode(err), err)
	}
	verify(t, mock)
}

func TestGenreRepositoryGetNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewGenreRepository(mock)

	mock.ExpectQuery(q(`SELECT id, name FROM genres WHERE id = $1`)).
		WithArgs(42).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	_, err := repo.Get(context.Background(), 42)

	var nf *sqlerr.NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "There is no genre with this id" {
		t.Fatalf("Get err = %v, want genre NotFoundError", err)
	}
	verify(t, mock)
}

func TestGenreRepositoryDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantNF   bool
	}{
		{"deleted", 1, false},
		{"missing", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewGenreRepository(mock)

			mock.ExpectExec(q(`DELETE FROM genres WHERE id = $1`)).
				WithArgs(3).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := repo.Delete(context.Background(), 3)

			var nf *sqlerr.NotFoundError
			if got := errors.As(err, &nf); got != tt.wantNF {
				t.Fatalf("Delete err = %v, wantNotFound %v", err, tt.wantNF)
			}
			verify(t, mock)
		})
	}
}

func TestAuthorRepositoryList(t *testing.T) {
	mock := newMock(t)
	repo := NewAuthorRepository(mock)

	mock.ExpectQuery(q(`SELECT id, name FROM authors ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(1, "A").AddRow(2, "B"))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[1].Name != "B" {
		t.Fatalf("List = %+v", got)
	}
	verify(t, mock)
}

func TestSongRepositorySearch(t *testing.T) {
	tests := []struct {
		name   string
		filter model.SongFilter
		where  string
		args   []any
	}{
		{"genre only", model.SongFilter{GenreID: intPtr(3)}, `WHERE s.genre_id = $1 ORDER BY s.id`, []any{3}},
		{"author only", model.SongFilter{AuthorID: intPtr(2)}, `WHERE s.author_id = $1 ORDER BY s.id`, []any{2}},
		{"both", model.SongFilter{AuthorID: intPtr(2), GenreID: intPtr(3)}, `WHERE s.author_id = $1 AND s.genre_id = $2 ORDER BY s.id`, []any{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewSongRepository(mock)

			mock.ExpectQuery(q(tt.where)).
				WithArgs(tt.args...).
				WillReturnRows(pgxmock.NewRows(songCols).
					AddRow(7, nil, "Song", "https://cdn/a.mp3", nil, 3, "Rock", 2, "Band"))

			got, err := repo.Search(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != 1 || got[0].Genre != (model.Ref{ID: 3, Name: "Rock"}) || got[0].Author.Name != "Band" {
				t.Fatalf("Search = %+v", got)
			}
			verify(t, mock)
		})
	}
}

func TestSongRepositorySearchEmptyIsNotNil(t *testing.T) {
	mock := newMock(t)
	repo := NewSongRepository(mock)

	mock.ExpectQuery(q(`FROM songs s`)).WillReturnRows(pgxmock.NewRows(songCols))

	got, err := repo.Search(context.Background(), model.SongFilter{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got == nil {
		t.Fatal("Search returned nil slice, want empty")
	}
	verify(t, mock)
}

func TestSongRepositoryAttachToAlbumOnlyUnassigned(t *testing.T) {
	mock := newMock(t)
	repo := NewSongRepository(mock)

	mock.ExpectExec(q(`UPDATE songs SET album_id = $1, updated_at = now() WHERE id = $2 AND album_id IS NULL`)).
		WithArgs(5, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(q(`WHERE s.id = $1`)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(songCols).
			AddRow(7, intPtr(9), "Song", "https://cdn/a.mp3", strPtr("https://cdn/a.png"), 3, "Rock", 2, "Band"))

	got, err := repo.AttachToAlbum(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("AttachToAlbum: %v", err)
	}
	if got.AlbumID == nil || *got.AlbumID != 9 {
		t.Fatalf("AlbumID = %v, want unchanged 9", got.AlbumID)
	}
	verify(t, mock)
}

func TestSongRepositoryUpdateNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewSongRepository(mock)

	mock.ExpectQuery(q(`UPDATE songs SET`)).
		WithArgs(11, (*int)(nil), (*int)(nil), (*int)(nil), strPtr("New"), (*string)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows(songCols))

	_, err := repo.Update(context.Background(), 11, model.SongPatch{Name: strPtr("New")})

	var nf *sqlerr.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "song" {
		t.Fatalf("Update err = %v, want song NotFoundError", err)
	}
	verify(t, mock)
}

func TestAlbumRepositoryCreateReassignsInTransaction(t *testing.T) {
	mock := newMock(t)
	repo := NewAlbumRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`INSERT INTO albums (name, img) VALUES ($1, $2) RETURNING id, name, img`)).
		WithArgs("Abbey Road", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "img"}).AddRow(4, "Abbey Road", nil))
	mock.ExpectExec(q(`UPDATE songs SET album_id = $1, updated_at = now() WHERE id = ANY($2) AND album_id IS NULL`)).
		WithArgs(4, []int{1, 2}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(q(`WHERE s.album_id = ANY($1) ORDER BY s.id`)).
		WithArgs([]int{4}).
		WillReturnRows(pgxmock.NewRows(songCols).
			AddRow(1, intPtr(4), "Come Together", "https://cdn/1.mp3", nil, 1, "Rock", 1, "The Beatles"))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), model.NewAlbum{Name: "Abbey Road"}, []int{1, 2})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != 4 || len(got.Songs) != 1 || got.Songs[0].ID != 1 {
		t.Fatalf("Create = %+v", got)
	}
	verify(t, mock)
}

func TestAlbumRepositoryCreateRollsBack(t *testing.T) {
	mock := newMock(t)
	repo := NewAlbumRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`INSERT INTO albums`)).
		WithArgs("Abbey Road", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "img"}).AddRow(4, "Abbey Road", nil))
	mock.ExpectExec(q(`UPDATE songs SET album_id`)).
		WithArgs(4, []int{1}).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if _, err := repo.Create(context.Background(), model.NewAlbum{Name: "Abbey Road"}, []int{1}); err == nil {
		t.Fatal("Create succeeded, want error")
	}
	verify(t, mock)
}

func TestAlbumRepositoryDelete(t *testing.T) {
	t.Run("detaches then deletes", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAlbumRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(q(`UPDATE songs SET album_id = NULL, updated_at = now() WHERE album_id = $1`)).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		mock.ExpectExec(q(`DELETE FROM albums WHERE id = $1`)).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		if err := repo.Delete(context.Background(), 4); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		verify(t, mock)
	})

	t.Run("missing album rolls back", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAlbumRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(q(`UPDATE songs SET album_id = NULL`)).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectExec(q(`DELETE FROM albums WHERE id = $1`)).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), 4)
		var nf *sqlerr.NotFoundError
		if !errors.As(err, &nf) || nf.Error() != "There is no album with this id" {
			t.Fatalf("Delete err = %v", err)
		}
		verify(t, mock)
	})
}

func TestAlbumRepositoryListNestsSongs(t *testing.T) {
	mock := newMock(t)
	repo := NewAlbumRepository(mock)

	mock.ExpectQuery(q(`SELECT id, name, img FROM albums ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "img"}).
			AddRow(1, "One", nil).
			AddRow(2, "Two", strPtr("https://img/2.png")))
	mock.ExpectQuery(q(`WHERE s.album_id = ANY($1)`)).
		WithArgs([]int{1, 2}).
		WillReturnRows(pgxmock.NewRows(songCols).
			AddRow(10, intPtr(2), "S", "https://cdn/10.mp3", nil, 1, "Rock", 1, "A"))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || len(got[0].Songs) != 0 || got[0].Songs == nil || len(got[1].Songs) != 1 {
		t.Fatalf("List = %+v", got)
	}
	verify(t, mock)
}

func TestPlaylistRepositoryCreateKeepsDuplicates(t *testing.T) {
	mock := newMock(t)
	repo := NewPlaylistRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`INSERT INTO playlists (user_id, name, img) VALUES ($1, $2, $3) RETURNING id, user_id, name, img`)).
		WithArgs(8, "Mix", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "img"}).AddRow(3, 8, "Mix", nil))
	mock.ExpectExec(q(`INSERT INTO playlist_songs (playlist_id, song_id) SELECT $1, song_id FROM unnest($2::int[])`)).
		WithArgs(3, []int{5, 5}).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectQuery(q(`FROM playlist_songs ps`)).
		WithArgs([]int{3}).
		WillReturnRows(pgxmock.NewRows(append([]string{"playlist_id", "playlist_song_id"}, songCols...)).
			AddRow(3, 100, 5, nil, "S", "https://cdn/5.mp3", nil, 1, "Rock", 1, "A").
			AddRow(3, 101, 5, nil, "S", "https://cdn/5.mp3", nil, 1, "Rock", 1, "A"))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), model.NewPlaylist{UserID: 8, Name: "Mix"}, []int{5, 5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(got.Songs) != 2 || got.Songs[0].PlaylistSongID != 100 || got.Songs[1].PlaylistSongID != 101 {
		t.Fatalf("Create songs = %+v", got.Songs)
	}
	verify(t, mock)
}

func TestPlaylistRepositoryListByUser(t *testing.T) {
	mock := newMock(t)
	repo := NewPlaylistRepository(mock)

	mock.ExpectQuery(q(`SELECT id, user_id, name, img FROM playlists WHERE user_id = $1 ORDER BY id`)).
		WithArgs(8).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "img"}).AddRow(3, 8, "Mix", nil))
	mock.ExpectQuery(q(`FROM playlist_songs ps`)).
		WithArgs([]int{3}).
		WillReturnRows(pgxmock.NewRows(append([]string{"playlist_id", "playlist_song_id"}, songCols...)))

	got, err := repo.ListByUser(context.Background(), 8)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 || got[0].UserID != 8 || got[0].Songs == nil {
		t.Fatalf("ListByUser = %+v", got)
	}
	verify(t, mock)
}

func TestPlaylistRepositoryMembership(t *testing.T) {
	mock := newMock(t)
	repo := NewPlaylistRepository(mock)

	mock.ExpectQuery(q(`INSERT INTO playlist_songs (playlist_id, song_id) VALUES ($1, $2) RETURNING id`)).
		WithArgs(3, 5).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(102))
	mock.ExpectExec(q(`DELETE FROM playlist_songs WHERE id = $1`)).
		WithArgs(102).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	id, err := repo.AddSong(context.Background(), 3, 5)
	if err != nil || id != 102 {
		t.Fatalf("AddSong = %d, %v", id, err)
	}
	if err := repo.RemoveSong(context.Background(), id); err != nil {
		t.Fatalf("RemoveSong: %v", err)
	}
	verify(t, mock)
}

func TestExists(t *testing.T) {
	mock := newMock(t)
	repo := NewPlaylistRepository(mock)

	mock.ExpectQuery(q(`SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1)`)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := repo.Exists(context.Background(), 3)
	if err != nil || found {
		t.Fatalf("Exists = %v, %v", found, err)
	}
	verify(t, mock)
}
