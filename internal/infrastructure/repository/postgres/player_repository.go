package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/localxi/local-xi-backend/internal/domain/player"
)

type playerTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Positions pq.StringArray `db:"positions"`
	Number    int            `db:"number"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	const query = `
SELECT id, name, positions, number
FROM players
ORDER BY number`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) ExistsByNumber(ctx context.Context, number int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM players WHERE number = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, number); err != nil {
		return false, fmt.Errorf("check player number: %w", err)
	}

	return exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	const query = `
INSERT INTO players (name, positions, number)
VALUES ($1, $2, $3)
RETURNING id`

	if err := r.db.GetContext(ctx, &item.ID, query, item.Name, pq.StringArray(item.Positions), item.Number); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	return item, nil
}

func (r *PlayerRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	const query = `DELETE FROM players WHERE id = ANY($1)`

	if _, err := r.db.ExecContext(ctx, query, pq.Int64Array(ids)); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}

	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		Name:      row.Name,
		Positions: append([]string(nil), row.Positions...),
		Number:    row.Number,
	}
}
