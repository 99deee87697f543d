package lineup

// Slot assigns one formation position to at most one player within a
// lineup. A nil PlayerID is an unfilled slot.
type Slot struct {
	SlotID   string
	Pos      string
	PlayerID *int64
	Captain  bool
	Rating   *int

	// Legacy per-slot event counters. Older clients still send these;
	// they stop being the source of truth once a payload carries an
	// explicit PlayerStats list.
	Goals       *int
	Assists     *int
	YellowCards *int
	RedCards    *int
}

// PlayerStat is one player's event totals within a single lineup.
// At most one row exists per (lineup, player).
type PlayerStat struct {
	PlayerID    int64
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

// Lineup is the aggregate root for one match. It exclusively owns its
// slot and stat collections: both are replaced as a unit on every save
// and no child row outlives its parent.
type Lineup struct {
	ID              int64
	MatchID         int64
	FormationID     int64
	CaptainPlayerID *int64
	Slots           []Slot
	PlayerStats     []PlayerStat
}

// Summary is the condensed per-match view used by bulk queries.
type Summary struct {
	MatchID     int64
	FormationID int64
}

// PlayerTotals aggregates one player's stats across every stored
// lineup. A player with no stat rows totals to all zeroes.
type PlayerTotals struct {
	PlayerID    int64
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}
