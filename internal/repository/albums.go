package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/jackc/pgx/v5"
)

type AlbumRepository struct {
	db DBTX
}

func NewAlbumRepository(db DBTX) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) List(ctx context.Context) ([]model.Album, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, img FROM albums ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing albums: %w", err)
	}

	albums, err := pgx.CollectRows(rows, collectAlbum)
	if err != nil {
		return nil, fmt.Errorf("scanning albums: %w", err)
	}

	ids := make([]int, 0, len(albums))
	for _, album := range albums {
		ids = append(ids, album.ID)
	}

	songs, err := songsByAlbum(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.Album, 0, len(albums))
	for _, album := range albums {
		album.Songs = nonNilSongs(songs[album.ID])
		out = append(out, album)
	}
	return out, nil
}

func (r *AlbumRepository) Get(ctx context.Context, id int) (model.Album, error) {
	return getAlbum(ctx, r.db, id)
}

// Create inserts the album and moves every listed song that has no album
// yet into it. Songs already on another album are left alone. Both steps
// share one transaction.
func (r *AlbumRepository) Create(ctx context.Context, in model.NewAlbum, songIDs []int) (model.Album, error) {
	var album model.Album

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `INSERT INTO albums (name, img) VALUES ($1, $2) RETURNING id, name, img`, in.Name, in.Img).
			Scan(&album.ID, &album.Name, &album.Img)
		if err != nil {
			return fmt.Errorf("creating album: %w", err)
		}

		if len(songIDs) > 0 {
			_, err = tx.Exec(ctx,
				`UPDATE songs SET album_id = $1, updated_at = now() WHERE id = ANY($2) AND album_id IS NULL`,
				album.ID, songIDs,
			)
			if err != nil {
				return fmt.Errorf("assigning songs to album: %w", err)
			}
		}

		songs, err := songsByAlbum(ctx, tx, []int{album.ID})
		if err != nil {
			return err
		}
		album.Songs = nonNilSongs(songs[album.ID])
		return nil
	})
	if err != nil {
		return model.Album{}, err
	}
	return album, nil
}

func (r *AlbumRepository) Update(ctx context.Context, id int, patch model.AlbumPatch) (model.Album, error) {
	_, err := r.db.Exec(ctx,
		`UPDATE albums SET name = COALESCE($2, name), img = COALESCE($3, img), updated_at = now() WHERE id = $1`,
		id, patch.Name, patch.Img,
	)
	if err != nil {
		return model.Album{}, fmt.Errorf("updating album: %w", err)
	}
	return getAlbum(ctx, r.db, id)
}

// Delete detaches the album's songs and removes the album in one
// transaction.
func (r *AlbumRepository) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE songs SET album_id = NULL, updated_at = now() WHERE album_id = $1`, id); err != nil {
			return fmt.Errorf("detaching album songs: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("deleting album: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return notFound(pgx.ErrNoRows, "album")
		}
		return nil
	})
}

func (r *AlbumRepository) Exists(ctx context.Context, id int) (bool, error) {
	found, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM albums WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("checking album: %w", err)
	}
	return found, nil
}

func getAlbum(ctx context.Context, db DBTX, id int) (model.Album, error) {
	var album model.Album
	err := db.QueryRow(ctx, `SELECT id, name, img FROM albums WHERE id = $1`, id).
		Scan(&album.ID, &album.Name, &album.Img)
	if err != nil {
		return model.Album{}, notFound(err, "album")
	}

	songs, err := songsByAlbum(ctx, db, []int{id})
	if err != nil {
		return model.Album{}, err
	}
	album.Songs = nonNilSongs(songs[id])
	return album, nil
}

func collectAlbum(row pgx.CollectableRow) (model.Album, error) {
	var album model.Album
	err := row.Scan(&album.ID, &album.Name, &album.Img)
	return album, err
}

func nonNilSongs(songs []model.Song) []model.Song {
	if songs == nil {
		return []model.Song{}
	}
	return songs
}
