package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/localxi/local-xi-backend/internal/domain/formation"
)

type formationTableModel struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Shape string `db:"shape"`
}

type formationSlotTableModel struct {
	FormationID int64         `db:"formation_id"`
	SlotID      string        `db:"slot_id"`
	Position    string        `db:"position"`
	PlayerID    sql.NullInt64 `db:"player_id"`
}

type FormationRepository struct {
	db *sqlx.DB
}

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	const query = `SELECT id, name, shape FROM formations ORDER BY id`

	var rows []formationTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	const slotsQuery = `
SELECT formation_id, slot_id, position, player_id
FROM formation_slots
ORDER BY formation_id, id`

	var slotRows []formationSlotTableModel
	if err := r.db.SelectContext(ctx, &slotRows, slotsQuery); err != nil {
		return nil, fmt.Errorf("list formation slots: %w", err)
	}

	slotsByFormation := make(map[int64][]formation.Slot, len(rows))
	for _, s := range slotRows {
		slotsByFormation[s.FormationID] = append(slotsByFormation[s.FormationID], formation.Slot{
			SlotID:   s.SlotID,
			Position: s.Position,
			PlayerID: int64Ptr(s.PlayerID),
		})
	}

	out := make([]formation.Formation, 0, len(rows))
	for _, row := range rows {
		out = append(out, formation.Formation{
			ID:    row.ID,
			Name:  row.Name,
			Shape: row.Shape,
			Slots: slotsByFormation[row.ID],
		})
	}
	return out, nil
}

func (r *FormationRepository) GetByID(ctx context.Context, id int64) (formation.Formation, bool, error) {
	const query = `SELECT id, name, shape FROM formations WHERE id = $1`

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, fmt.Errorf("get formation: %w", err)
	}

	slots, err := r.slotsForFormation(ctx, id)
	if err != nil {
		return formation.Formation{}, false, err
	}

	return formation.Formation{ID: row.ID, Name: row.Name, Shape: row.Shape, Slots: slots}, true, nil
}

func (r *FormationRepository) Create(ctx context.Context, item formation.Formation) (formation.Formation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("begin tx for formation insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertQuery = `
INSERT INTO formations (name, shape)
VALUES ($1, $2)
RETURNING id`

	if err := tx.GetContext(ctx, &item.ID, insertQuery, item.Name, item.Shape); err != nil {
		return formation.Formation{}, fmt.Errorf("insert formation: %w", err)
	}

	if err := insertFormationSlots(ctx, tx, item.ID, item.Slots); err != nil {
		return formation.Formation{}, err
	}

	if err := tx.Commit(); err != nil {
		return formation.Formation{}, fmt.Errorf("commit formation insert: %w", err)
	}

	return item, nil
}

func (r *FormationRepository) Update(ctx context.Context, item formation.Formation) (formation.Formation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("begin tx for formation update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updateQuery = `UPDATE formations SET name = $2, shape = $3 WHERE id = $1`

	if _, err := tx.ExecContext(ctx, updateQuery, item.ID, item.Name, item.Shape); err != nil {
		return formation.Formation{}, fmt.Errorf("update formation: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM formation_slots WHERE formation_id = $1`, item.ID); err != nil {
		return formation.Formation{}, fmt.Errorf("clear formation slots: %w", err)
	}

	if err := insertFormationSlots(ctx, tx, item.ID, item.Slots); err != nil {
		return formation.Formation{}, err
	}

	if err := tx.Commit(); err != nil {
		return formation.Formation{}, fmt.Errorf("commit formation update: %w", err)
	}

	return item, nil
}

func (r *FormationRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	const query = `DELETE FROM formations WHERE id = ANY($1)`

	if _, err := r.db.ExecContext(ctx, query, pq.Int64Array(ids)); err != nil {
		return fmt.Errorf("delete formations: %w", err)
	}

	return nil
}

func (r *FormationRepository) slotsForFormation(ctx context.Context, formationID int64) ([]formation.Slot, error) {
	const query = `
SELECT formation_id, slot_id, position, player_id
FROM formation_slots
WHERE formation_id = $1
ORDER BY id`

	var rows []formationSlotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, formationID); err != nil {
		return nil, fmt.Errorf("list formation slots: %w", err)
	}

	out := make([]formation.Slot, 0, len(rows))
	for _, row := range rows {
		out = append(out, formation.Slot{
			SlotID:   row.SlotID,
			Position: row.Position,
			PlayerID: int64Ptr(row.PlayerID),
		})
	}
	return out, nil
}

func insertFormationSlots(ctx context.Context, tx *sqlx.Tx, formationID int64, slots []formation.Slot) error {
	const query = `
INSERT INTO formation_slots (formation_id, slot_id, position, player_id)
VALUES ($1, $2, $3, $4)`

	for _, s := range slots {
		if _, err := tx.ExecContext(ctx, query, formationID, s.SlotID, s.Position, nullInt64(s.PlayerID)); err != nil {
			return fmt.Errorf("insert formation slot: %w", err)
		}
	}

	return nil
}
