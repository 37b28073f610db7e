// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Lookups by id that match nothing return *sqlerr.NotFoundError; every
// other failure is the driver error wrapped with the failed step.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/music-catalog/internal/model"
	"github.com/deppfellow/music-catalog/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
// pgx.Tx and pgxmock pools satisfy it as well.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

const songColumns = `s.id, s.album_id, s.name, s.audio, s.img, g.id, g.name, a.id, a.name`

const songJoins = `
JOIN genres g ON g.id = s.genre_id
JOIN authors a ON a.id = s.author_id`

const selectSongs = `SELECT ` + songColumns + ` FROM songs s` + songJoins

func scanSong(row pgx.Row, dest *model.Song) error {
	return row.Scan(
		&dest.ID, &dest.AlbumID, &dest.Name, &dest.Audio, &dest.Img,
		&dest.Genre.ID, &dest.Genre.Name,
		&dest.Author.ID, &dest.Author.Name,
	)
}

func collectSong(row pgx.CollectableRow) (model.Song, error) {
	var song model.Song
	err := scanSong(row, &song)
	return song, err
}

// notFound converts pgx.ErrNoRows into the entity's NotFoundError.
func notFound(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlerr.NewNotFound(entity)
	}
	return err
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func withTx(ctx context.Context, db DBTX, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func exists(ctx context.Context, db DBTX, query string, id int) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, id).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
