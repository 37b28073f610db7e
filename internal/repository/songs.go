package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

type SongRepository struct {
	db DBTX
}

func NewSongRepository(db DBTX) *SongRepository {
	return &SongRepository{db: db}
}

func (r *SongRepository) List(ctx context.Context) ([]model.Song, error) {
	return querySongs(ctx, r.db, selectSongs+` ORDER BY s.id`)
}

func (r *SongRepository) Get(ctx context.Context, id int) (model.Song, error) {
	var song model.Song
	if err := scanSong(r.db.QueryRow(ctx, selectSongs+` WHERE s.id = $1`, id), &song); err != nil {
		return model.Song{}, notFound(err, "song")
	}
	return song, nil
}

// Create inserts the song and returns it with genre and author resolved.
func (r *SongRepository) Create(ctx context.Context, in model.NewSong) (model.Song, error) {
	const query = `
WITH s AS (
	INSERT INTO songs (album_id, author_id, genre_id, name, audio, img)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING *
)
SELECT ` + songColumns + ` FROM s` + songJoins

	var song model.Song
	err := scanSong(r.db.QueryRow(ctx, query, in.AlbumID, in.AuthorID, in.GenreID, in.Name, in.Audio, in.Img), &song)
	if err != nil {
		return model.Song{}, fmt.Errorf("creating song: %w", err)
	}
	return song, nil
}

// Update applies the non-nil fields of patch.
func (r *SongRepository) Update(ctx context.Context, id int, patch model.SongPatch) (model.Song, error) {
	const query = `
WITH s AS (
	UPDATE songs SET
		album_id = COALESCE($2, album_id),
		author_id = COALESCE($3, author_id),
		genre_id = COALESCE($4, genre_id),
		name = COALESCE($5, name),
		audio = COALESCE($6, audio),
		img = COALESCE($7, img),
		updated_at = now()
	WHERE id = $1
	RETURNING *
)
SELECT ` + songColumns + ` FROM s` + songJoins

	var song model.Song
	err := scanSong(r.db.QueryRow(ctx, query,
		id, patch.AlbumID, patch.AuthorID, patch.GenreID, patch.Name, patch.Audio, patch.Img,
	), &song)
	if err != nil {
		return model.Song{}, notFound(err, "song")
	}
	return song, nil
}

// Delete removes the song. Its playlist memberships go with it.
func (r *SongRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting song: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "song")
	}
	return nil
}

// Search returns the songs matching every non-nil filter field.
func (r *SongRepository) Search(ctx context.Context, filter model.SongFilter) ([]model.Song, error) {
	var (
		conds []string
		args  []any
	)
	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		conds = append(conds, fmt.Sprintf("s.author_id = $%d", len(args)))
	}
	if filter.GenreID != nil {
		args = append(args, *filter.GenreID)
		conds = append(conds, fmt.Sprintf("s.genre_id = $%d", len(args)))
	}

	query := selectSongs
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY s.id`

	return querySongs(ctx, r.db, query, args...)
}

func (r *SongRepository) Exists(ctx context.Context, id int) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM songs WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("checking song: %w", err)
	}
	return found, nil
}

// AttachToAlbum assigns the song to albumID unless it already belongs to
// an album, then returns the song as it is now.
func (r *SongRepository) AttachToAlbum(ctx context.Context, albumID, songID int) (model.Song, error) {
	_, err := r.db.Exec(ctx, `UPDATE songs SET album_id = $1, updated_at = now() WHERE id = $2 AND album_id IS NULL`, albumID, songID)
	if err != nil {
		return model.Song{}, fmt.Errorf("attaching song to album: %w", err)
	}
	return r.Get(ctx, songID)
}

// DetachFromAlbum clears the song's album. Unknown ids are a no-op.
func (r *SongRepository) DetachFromAlbum(ctx context.Context, songID int) error {
	_, err := r.db.Exec(ctx, `UPDATE songs SET album_id = NULL, updated_at = now() WHERE id = $1`, songID)
	if err != nil {
		return fmt.Errorf("detaching song from album: %w", err)
	}
	return nil
}

func querySongs(ctx context.Context, db DBTX, query string, args ...any) ([]model.Song, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying songs: %w", err)
	}

	songs, err := pgx.CollectRows(rows, collectSong)
	if err != nil {
		return nil, fmt.Errorf("scanning songs: %w", err)
	}
	if songs == nil {
		songs = []model.Song{}
	}
	return songs, nil
}

// songsByAlbum groups the songs of the given albums by album id.
func songsByAlbum(ctx context.Context, db DBTX, albumIDs []int) (map[int][]model.Song, error) {
	out := make(map[int][]model.Song, len(albumIDs))
	if len(albumIDs) == 0 {
		return out, nil
	}

	songs, err := querySongs(ctx, db, selectSongs+` WHERE s.album_id = ANY($1) ORDER BY s.id`, albumIDs)
	if err != nil {
		return nil, err
	}
	for _, song := range songs {
		if song.AlbumID != nil {
			out[*song.AlbumID] = append(out[*song.AlbumID], song)
		}
	}
	return out, nil
}
