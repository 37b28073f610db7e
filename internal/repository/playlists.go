package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

// PlaylistRepository stores playlists and their memberships. A membership
// is a playlist_songs row with its own id, so a song may appear more than
// once in the same playlist.
type PlaylistRepository struct {
	db DBTX
}

func NewPlaylistRepository(db DBTX) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

const selectPlaylistSongs = `SELECT ps.playlist_id, ps.id, ` + songColumns + `
FROM playlist_songs ps
JOIN songs s ON s.id = ps.song_id` + songJoins + `
WHERE ps.playlist_id = ANY($1)
ORDER BY ps.id`

func (r *PlaylistRepository) List(ctx context.Context) ([]model.Playlist, error) {
	return r.list(ctx, `SELECT id, user_id, name, img FROM playlists ORDER BY id`)
}

func (r *PlaylistRepository) ListByUser(ctx context.Context, userID int) ([]model.Playlist, error) {
	return r.list(ctx, `SELECT id, user_id, name, img FROM playlists WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *PlaylistRepository) Get(ctx context.Context, id int) (model.Playlist, error) {
	return getPlaylist(ctx, r.db, id)
}

// Create inserts the playlist and one membership per entry of songIDs,
// duplicates included, in a single transaction.
func (r *PlaylistRepository) Create(ctx context.Context, in model.NewPlaylist, songIDs []int) (model.Playlist, error) {
	var playlist model.Playlist

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO playlists (user_id, name, img) VALUES ($1, $2, $3) RETURNING id, user_id, name, img`,
			in.UserID, in.Name, in.Img,
		).Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &playlist.Img)
		if err != nil {
			return fmt.Errorf("creating playlist: %w", err)
		}

		if len(songIDs) > 0 {
			_, err = tx.Exec(ctx,
				`INSERT INTO playlist_songs (playlist_id, song_id) SELECT $1, song_id FROM unnest($2::int[]) WITH ORDINALITY AS t(song_id, ord) ORDER BY ord`,
				playlist.ID, songIDs,
			)
			if err != nil {
				return fmt.Errorf("adding playlist songs: %w", err)
			}
		}

		songs, err := playlistSongs(ctx, tx, []int{playlist.ID})
		if err != nil {
			return err
		}
		playlist.Songs = nonNilPlaylistSongs(songs[playlist.ID])
		return nil
	})
	if err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id int, patch model.PlaylistPatch) (model.Playlist, error) {
	_, err := r.db.Exec(ctx,
		`UPDATE playlists SET name = COALESCE($2, name), img = COALESCE($3, img), updated_at = now() WHERE id = $1`,
		id, patch.Name, patch.Img,
	)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("updating playlist: %w", err)
	}
	return getPlaylist(ctx, r.db, id)
}

// Delete removes the playlist and its memberships. Songs are untouched.
func (r *PlaylistRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting playlist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "playlist")
	}
	return nil
}

func (r *PlaylistRepository) Exists(ctx context.Context, id int) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("checking playlist: %w", err)
	}
	return found, nil
}

// AddSong appends a membership and returns its id.
func (r *PlaylistRepository) AddSong(ctx context.Context, playlistID, songID int) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO playlist_songs (playlist_id, song_id) VALUES ($1, $2) RETURNING id`,
		playlistID, songID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("adding song to playlist: %w", err)
	}
	return id, nil
}

// RemoveSong deletes one membership by its own id. Unknown ids are a no-op.
func (r *PlaylistRepository) RemoveSong(ctx context.Context, playlistSongID int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM playlist_songs WHERE id = $1`, playlistSongID); err != nil {
		return fmt.Errorf("removing song from playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) list(ctx context.Context, query string, args ...any) ([]model.Playlist, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing playlists: %w", err)
	}

	playlists, err := pgx.CollectRows(rows, collectPlaylist)
	if err != nil {
		return nil, fmt.Errorf("scanning playlists: %w", err)
	}

	ids := make([]int, 0, len(playlists))
	for _, p := range playlists {
		ids = append(ids, p.ID)
	}

	songs, err := playlistSongs(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.Playlist, 0, len(playlists))
	for _, p := range playlists {
		p.Songs = nonNilPlaylistSongs(songs[p.ID])
		out = append(out, p)
	}
	return out, nil
}

func getPlaylist(ctx context.Context, db DBTX, id int) (model.Playlist, error) {
	var playlist model.Playlist
	err := db.QueryRow(ctx, `SELECT id, user_id, name, img FROM playlists WHERE id = $1`, id).
		Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &playlist.Img)
	if err != nil {
		return model.Playlist{}, notFound(err, "playlist")
	}

	songs, err := playlistSongs(ctx, db, []int{id})
	if err != nil {
		return model.Playlist{}, err
	}
	playlist.Songs = nonNilPlaylistSongs(songs[id])
	return playlist, nil
}

func playlistSongs(ctx context.Context, db DBTX, playlistIDs []int) (map[int][]model.PlaylistSong, error) {
	out := make(map[int][]model.PlaylistSong, len(playlistIDs))
	if len(playlistIDs) == 0 {
		return out, nil
	}

	rows, err := db.Query(ctx, selectPlaylistSongs, playlistIDs)
	if err != nil {
		return nil, fmt.Errorf("querying playlist songs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			playlistID int
			ps         model.PlaylistSong
		)
		err := rows.Scan(
			&playlistID, &ps.PlaylistSongID,
			&ps.ID, &ps.AlbumID, &ps.Name, &ps.Audio, &ps.Img,
			&ps.Genre.ID, &ps.Genre.Name,
			&ps.Author.ID, &ps.Author.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning playlist songs: %w", err)
		}
		out[playlistID] = append(out[playlistID], ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating playlist songs: %w", err)
	}
	return out, nil
}

func collectPlaylist(row pgx.CollectableRow) (model.Playlist, error) {
	var p model.Playlist
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Img)
	return p, err
}

func nonNilPlaylistSongs(songs []model.PlaylistSong) []model.PlaylistSong {
	if songs == nil {
		return []model.PlaylistSong{}
	}
	return songs
}
