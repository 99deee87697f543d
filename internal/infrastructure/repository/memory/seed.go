package memory

import (
	"time"

	"github.com/localxi/local-xi-backend/internal/domain/formation"
	"github.com/localxi/local-xi-backend/internal/domain/match"
	"github.com/localxi/local-xi-backend/internal/domain/player"
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Sam Okafor", Positions: []string{"GK"}, Number: 1},
		{ID: 2, Name: "Danny Hurst", Positions: []string{"RB", "CB"}, Number: 2},
		{ID: 3, Name: "Luca Moretti", Positions: []string{"CB"}, Number: 5},
		{ID: 4, Name: "Aaron Whitfield", Positions: []string{"LB"}, Number: 3},
		{ID: 5, Name: "Jordi Puig", Positions: []string{"CM", "CDM"}, Number: 6},
		{ID: 6, Name: "Tom Barlow", Positions: []string{"CM"}, Number: 8},
		{ID: 7, Name: "Kofi Mensah", Positions: []string{"RW", "ST"}, Number: 7},
		{ID: 8, Name: "Pete Lindqvist", Positions: []string{"LW"}, Number: 11},
		{ID: 9, Name: "Marco Silva", Positions: []string{"ST"}, Number: 9},
	}
}

func SeedMatches() []match.Match {
	goalsFor := 3
	goalsAgainst := 1
	return []match.Match{
		{
			ID:           1,
			Date:         time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
			Opponent:     "Red Lion FC",
			Home:         true,
			GoalsFor:     &goalsFor,
			GoalsAgainst: &goalsAgainst,
		},
		{
			ID:       2,
			Date:     time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			Opponent: "Harbour Rovers",
			Home:     false,
		},
	}
}

func SeedFormations() []formation.Formation {
	return []formation.Formation{
		{
			ID:    1,
			Name:  "Classic 4-4-2",
			Shape: "4-4-2",
			Slots: []formation.Slot{
				{SlotID: "GK-1", Position: "GK"},
				{SlotID: "DEF-1", Position: "RB"},
				{SlotID: "DEF-2", Position: "CB"},
				{SlotID: "DEF-3", Position: "CB"},
				{SlotID: "DEF-4", Position: "LB"},
				{SlotID: "MID-1", Position: "RM"},
				{SlotID: "MID-2", Position: "CM"},
				{SlotID: "MID-3", Position: "CM"},
				{SlotID: "MID-4", Position: "LM"},
				{SlotID: "FWD-1", Position: "ST"},
				{SlotID: "FWD-2", Position: "ST"},
			},
		},
		{
			ID:    2,
			Name:  "Pressing 4-3-3",
			Shape: "4-3-3",
			Slots: []formation.Slot{
				{SlotID: "GK-1", Position: "GK"},
				{SlotID: "DEF-1", Position: "RB"},
				{SlotID: "DEF-2", Position: "CB"},
				{SlotID: "DEF-3", Position: "CB"},
				{SlotID: "DEF-4", Position: "LB"},
				{SlotID: "MID-1", Position: "CDM"},
				{SlotID: "MID-2", Position: "CM"},
				{SlotID: "MID-3", Position: "CM"},
				{SlotID: "FWD-1", Position: "RW"},
				{SlotID: "FWD-2", Position: "ST"},
				{SlotID: "FWD-3", Position: "LW"},
			},
		},
	}
}
