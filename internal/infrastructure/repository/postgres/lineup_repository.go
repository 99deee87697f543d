package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/localxi/local-xi-backend/internal/domain/lineup"
)

type lineupTableModel struct {
	ID              int64         `db:"id"`
	MatchID         int64         `db:"match_id"`
	FormationID     int64         `db:"formation_id"`
	CaptainPlayerID sql.NullInt64 `db:"captain_player_id"`
}

type lineupSlotTableModel struct {
	LineupID    int64         `db:"lineup_id"`
	SlotID      string        `db:"slot_id"`
	Pos         string        `db:"pos"`
	PlayerID    sql.NullInt64 `db:"player_id"`
	Captain     bool          `db:"is_captain"`
	Rating      sql.NullInt64 `db:"rating"`
	Goals       sql.NullInt64 `db:"goals"`
	Assists     sql.NullInt64 `db:"assists"`
	YellowCards sql.NullInt64 `db:"yellow_cards"`
	RedCards    sql.NullInt64 `db:"red_cards"`
}

type lineupStatTableModel struct {
	LineupID    int64 `db:"lineup_id"`
	PlayerID    int64 `db:"player_id"`
	Goals       int   `db:"goals"`
	Assists     int   `db:"assists"`
	YellowCards int   `db:"yellow_cards"`
	RedCards    int   `db:"red_cards"`
}

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetByMatchID(ctx context.Context, matchID int64) (lineup.Lineup, bool, error) {
	const query = `
SELECT id, match_id, formation_id, captain_player_id
FROM lineups
WHERE match_id = $1`

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, false, nil
		}
		return lineup.Lineup{}, false, fmt.Errorf("get lineup: %w", err)
	}

	item, err := r.loadChildren(ctx, lineupFromRow(row))
	if err != nil {
		return lineup.Lineup{}, false, err
	}

	return item, true, nil
}

func (r *LineupRepository) ListByMatchIDs(ctx context.Context, matchIDs []int64) ([]lineup.Lineup, error) {
	const query = `
SELECT id, match_id, formation_id, captain_player_id
FROM lineups
WHERE match_id = ANY($1)
ORDER BY match_id`

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Int64Array(matchIDs)); err != nil {
		return nil, fmt.Errorf("list lineups by match ids: %w", err)
	}

	out := make([]lineup.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}
	return out, nil
}

// Upsert writes the whole aggregate in one transaction: the lineup row
// is upserted on its match_id uniqueness constraint, then both child
// collections are dropped and reinserted from the new state.
func (r *LineupRepository) Upsert(ctx context.Context, item lineup.Lineup) (lineup.Lineup, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return lineup.Lineup{}, fmt.Errorf("begin tx for lineup upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertQuery = `
INSERT INTO lineups (match_id, formation_id, captain_player_id)
VALUES ($1, $2, $3)
ON CONFLICT (match_id) DO UPDATE SET
    formation_id = EXCLUDED.formation_id,
    captain_player_id = EXCLUDED.captain_player_id
RETURNING id`

	if err := tx.GetContext(ctx, &item.ID, upsertQuery,
		item.MatchID, item.FormationID, nullInt64(item.CaptainPlayerID)); err != nil {
		return lineup.Lineup{}, fmt.Errorf("upsert lineup: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM lineup_slots WHERE lineup_id = $1`, item.ID); err != nil {
		return lineup.Lineup{}, fmt.Errorf("clear lineup slots: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lineup_player_stats WHERE lineup_id = $1`, item.ID); err != nil {
		return lineup.Lineup{}, fmt.Errorf("clear lineup stats: %w", err)
	}

	const insertSlotQuery = `
INSERT INTO lineup_slots (lineup_id, slot_id, pos, player_id, is_captain, rating, goals, assists, yellow_cards, red_cards)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for _, s := range item.Slots {
		if _, err := tx.ExecContext(ctx, insertSlotQuery,
			item.ID, s.SlotID, s.Pos, nullInt64(s.PlayerID), s.Captain, nullInt(s.Rating),
			nullInt(s.Goals), nullInt(s.Assists), nullInt(s.YellowCards), nullInt(s.RedCards)); err != nil {
			return lineup.Lineup{}, fmt.Errorf("insert lineup slot: %w", err)
		}
	}

	const insertStatQuery = `
INSERT INTO lineup_player_stats (lineup_id, player_id, goals, assists, yellow_cards, red_cards)
VALUES ($1, $2, $3, $4, $5, $6)`

	for _, stat := range item.PlayerStats {
		if _, err := tx.ExecContext(ctx, insertStatQuery,
			item.ID, stat.PlayerID, stat.Goals, stat.Assists, stat.YellowCards, stat.RedCards); err != nil {
			return lineup.Lineup{}, fmt.Errorf("insert lineup stat: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return lineup.Lineup{}, fmt.Errorf("commit lineup upsert: %w", err)
	}

	return item, nil
}

func (r *LineupRepository) TotalsForPlayer(ctx context.Context, playerID int64) (lineup.PlayerTotals, error) {
	const query = `
SELECT
    COALESCE(SUM(goals), 0)        AS goals,
    COALESCE(SUM(assists), 0)      AS assists,
    COALESCE(SUM(yellow_cards), 0) AS yellow_cards,
    COALESCE(SUM(red_cards), 0)    AS red_cards
FROM lineup_player_stats
WHERE player_id = $1`

	var row struct {
		Goals       int `db:"goals"`
		Assists     int `db:"assists"`
		YellowCards int `db:"yellow_cards"`
		RedCards    int `db:"red_cards"`
	}
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		return lineup.PlayerTotals{}, fmt.Errorf("total stats for player: %w", err)
	}

	return lineup.PlayerTotals{
		PlayerID:    playerID,
		Goals:       row.Goals,
		Assists:     row.Assists,
		YellowCards: row.YellowCards,
		RedCards:    row.RedCards,
	}, nil
}

func (r *LineupRepository) loadChildren(ctx context.Context, item lineup.Lineup) (lineup.Lineup, error) {
	const slotsQuery = `
SELECT lineup_id, slot_id, pos, player_id, is_captain, rating, goals, assists, yellow_cards, red_cards
FROM lineup_slots
WHERE lineup_id = $1
ORDER BY id`

	var slotRows []lineupSlotTableModel
	if err := r.db.SelectContext(ctx, &slotRows, slotsQuery, item.ID); err != nil {
		return lineup.Lineup{}, fmt.Errorf("list lineup slots: %w", err)
	}

	item.Slots = make([]lineup.Slot, 0, len(slotRows))
	for _, row := range slotRows {
		item.Slots = append(item.Slots, lineup.Slot{
			SlotID:      row.SlotID,
			Pos:         row.Pos,
			PlayerID:    int64Ptr(row.PlayerID),
			Captain:     row.Captain,
			Rating:      intPtr(row.Rating),
			Goals:       intPtr(row.Goals),
			Assists:     intPtr(row.Assists),
			YellowCards: intPtr(row.YellowCards),
			RedCards:    intPtr(row.RedCards),
		})
	}

	const statsQuery = `
SELECT lineup_id, player_id, goals, assists, yellow_cards, red_cards
FROM lineup_player_stats
WHERE lineup_id = $1
ORDER BY id`

	var statRows []lineupStatTableModel
	if err := r.db.SelectContext(ctx, &statRows, statsQuery, item.ID); err != nil {
		return lineup.Lineup{}, fmt.Errorf("list lineup stats: %w", err)
	}

	item.PlayerStats = make([]lineup.PlayerStat, 0, len(statRows))
	for _, row := range statRows {
		item.PlayerStats = append(item.PlayerStats, lineup.PlayerStat{
			PlayerID:    row.PlayerID,
			Goals:       row.Goals,
			Assists:     row.Assists,
			YellowCards: row.YellowCards,
			RedCards:    row.RedCards,
		})
	}

	return item, nil
}

func lineupFromRow(row lineupTableModel) lineup.Lineup {
	return lineup.Lineup{
		ID:              row.ID,
		MatchID:         row.MatchID,
		FormationID:     row.FormationID,
		CaptainPlayerID: int64Ptr(row.CaptainPlayerID),
	}
}
