package usecase

import (
	"context"
	"testing"

	"github.com/localxi/local-xi-backend/internal/infrastructure/repository/memory"
)

func TestPlayerStatsService_Totals_AcrossLineups(t *testing.T) {
	lineupRepo := memory.NewLineupRepository()
	lineupSvc := NewLineupService(lineupRepo)
	service := NewPlayerStatsService(lineupRepo)
	ctx := context.Background()

	first := UpsertLineupInput{
		FormationID: int64Ptr(1),
		Slots:       []UpsertLineupSlot{{SlotID: "FWD-1", Pos: "FWD", PlayerID: int64Ptr(9)}},
		PlayerStats: []UpsertLineupStat{
			{PlayerID: int64Ptr(9), Goals: intPtr(2), YellowCards: intPtr(1)},
		},
	}
	if _, _, err := lineupSvc.UpsertForMatch(ctx, 10, first); err != nil {
		t.Fatalf("seed match 10: %v", err)
	}

	second := UpsertLineupInput{
		FormationID: int64Ptr(1),
		Slots: []UpsertLineupSlot{
			{SlotID: "FWD-1", Pos: "FWD", PlayerID: int64Ptr(9), Goals: intPtr(1), Assists: intPtr(1)},
		},
	}
	if _, _, err := lineupSvc.UpsertForMatch(ctx, 11, second); err != nil {
		t.Fatalf("seed match 11: %v", err)
	}

	totals, err := service.Totals(ctx, 9)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.PlayerID != 9 {
		t.Fatalf("unexpected player id: %d", totals.PlayerID)
	}
	if totals.Goals != 3 || totals.Assists != 1 || totals.YellowCards != 1 || totals.RedCards != 0 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestPlayerStatsService_Totals_UnknownPlayerIsZero(t *testing.T) {
	service := NewPlayerStatsService(memory.NewLineupRepository())

	totals, err := service.Totals(context.Background(), 77)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.PlayerID != 77 {
		t.Fatalf("unexpected player id: %d", totals.PlayerID)
	}
	if totals.Goals != 0 || totals.Assists != 0 || totals.YellowCards != 0 || totals.RedCards != 0 {
		t.Fatalf("expected all-zero totals, got %+v", totals)
	}
}
