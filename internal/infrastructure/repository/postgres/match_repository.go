package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/localxi/local-xi-backend/internal/domain/match"
)

type matchTableModel struct {
	ID           int64         `db:"id"`
	Date         time.Time     `db:"match_date"`
	Opponent     string        `db:"opponent"`
	Home         bool          `db:"is_home"`
	GoalsFor     sql.NullInt64 `db:"goals_for"`
	GoalsAgainst sql.NullInt64 `db:"goals_against"`
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	const query = `
SELECT id, match_date, opponent, is_home, goals_for, goals_against
FROM matches
ORDER BY match_date, id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	const query = `
SELECT id, match_date, opponent, is_home, goals_for, goals_against
FROM matches
WHERE id = $1`

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	const query = `
INSERT INTO matches (match_date, opponent, is_home, goals_for, goals_against)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	if err := r.db.GetContext(ctx, &item.ID, query,
		item.Date, item.Opponent, item.Home, nullInt(item.GoalsFor), nullInt(item.GoalsAgainst)); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	return item, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (match.Match, error) {
	const query = `
UPDATE matches
SET match_date = $2, opponent = $3, is_home = $4, goals_for = $5, goals_against = $6
WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Date, item.Opponent, item.Home, nullInt(item.GoalsFor), nullInt(item.GoalsAgainst)); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return item, nil
}

func (r *MatchRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	const query = `DELETE FROM matches WHERE id = ANY($1)`

	if _, err := r.db.ExecContext(ctx, query, pq.Int64Array(ids)); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}

	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.ID,
		Date:         row.Date,
		Opponent:     row.Opponent,
		Home:         row.Home,
		GoalsFor:     intPtr(row.GoalsFor),
		GoalsAgainst: intPtr(row.GoalsAgainst),
	}
}
