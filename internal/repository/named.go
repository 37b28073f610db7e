package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// namedTable implements CRUD for the {id, name} tables (authors, genres).
// table and entity are package constants, never request input.
type namedTable struct {
	db     DBTX
	table  string
	entity string
}

type namedRow struct {
	ID   int
	Name string
}

func (n namedTable) list(ctx context.Context) ([]namedRow, error) {
	rows, err := n.db.Query(ctx, fmt.Sprintf(`SELECT id, name FROM %s ORDER BY id`, n.table))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", n.table, err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (namedRow, error) {
		var r namedRow
		err := row.Scan(&r.ID, &r.Name)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", n.table, err)
	}
	return out, nil
}

func (n namedTable) get(ctx context.Context, id int) (namedRow, error) {
	var row namedRow
	err := n.db.QueryRow(ctx, fmt.Sprintf(`SELECT id, name FROM %s WHERE id = $1`, n.table), id).
		Scan(&row.ID, &row.Name)
	if err != nil {
		return namedRow{}, notFound(err, n.entity)
	}
	return row, nil
}

func (n namedTable) create(ctx context.Context, name string) (namedRow, error) {
	var row namedRow
	err := n.db.QueryRow(ctx, fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id, name`, n.table), name).
		Scan(&row.ID, &row.Name)
	if err != nil {
		return namedRow{}, fmt.Errorf("creating %s: %w", n.entity, err)
	}
	return row, nil
}

func (n namedTable) update(ctx context.Context, id int, name *string) (namedRow, error) {
	var row namedRow
	err := n.db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE %s SET name = COALESCE($2, name), updated_at = now() WHERE id = $1 RETURNING id, name`, n.table),
		id, name,
	).Scan(&row.ID, &row.Name)
	if err != nil {
		return namedRow{}, notFound(err, n.entity)
	}
	return row, nil
}

func (n namedTable) delete(ctx context.Context, id int) error {
	tag, err := n.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, n.table), id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", n.entity, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, n.entity)
	}
	return nil
}

func (n namedTable) exists(ctx context.Context, id int) (bool, error) {
	found, err := exists(ctx, n.db, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, n.table), id)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", n.entity, err)
	}
	return found, nil
}
