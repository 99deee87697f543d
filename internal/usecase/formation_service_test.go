package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/localxi/local-xi-backend/internal/domain/formation"
	"github.com/localxi/local-xi-backend/internal/infrastructure/repository/memory"
)

func validFormationInput() CreateFormationInput {
	return CreateFormationInput{
		Name:  "Counter 4-5-1",
		Shape: "4-5-1",
		Slots: []formation.Slot{
			{SlotID: "GK-1", Position: "GK"},
			{SlotID: "DEF-1", Position: "DEF"},
			{SlotID: "FWD-1", Position: "FWD"},
		},
	}
}

func TestFormationService_CreateAndList(t *testing.T) {
	service := NewFormationService(memory.NewFormationRepository(nil))
	ctx := context.Background()

	created, err := service.Create(ctx, validFormationInput())
	if err != nil {
		t.Fatalf("create formation: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	listed, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list formations: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Counter 4-5-1" {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestFormationService_Create_ValidationOrder(t *testing.T) {
	service := NewFormationService(memory.NewFormationRepository(nil))
	ctx := context.Background()

	t.Run("name reported before shape", func(t *testing.T) {
		input := validFormationInput()
		input.Name = " "
		input.Shape = ""

		_, err := service.Create(ctx, input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if !strings.Contains(err.Error(), "name") {
			t.Fatalf("expected the name failure first, got %q", err.Error())
		}
	})

	t.Run("duplicate slot ids rejected", func(t *testing.T) {
		input := validFormationInput()
		input.Slots[2].SlotID = "GK-1"

		if _, err := service.Create(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty slots rejected", func(t *testing.T) {
		input := validFormationInput()
		input.Slots = nil

		if _, err := service.Create(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestFormationService_Update(t *testing.T) {
	service := NewFormationService(memory.NewFormationRepository(memory.SeedFormations()))
	ctx := context.Background()

	formations, _ := service.List(ctx)
	target := formations[0]

	t.Run("nil slots keep stored template", func(t *testing.T) {
		updated, err := service.Update(ctx, target.ID, FormationPatch{Name: strPtr("Renamed")})
		if err != nil {
			t.Fatalf("update formation: %v", err)
		}
		if updated.Name != "Renamed" {
			t.Fatalf("unexpected name: %q", updated.Name)
		}
		if len(updated.Slots) != len(target.Slots) {
			t.Fatalf("expected slots untouched, got %d", len(updated.Slots))
		}
	})

	t.Run("non-nil slots replace template", func(t *testing.T) {
		slots := []formation.Slot{{SlotID: "GK-1", Position: "GK"}}
		updated, err := service.Update(ctx, target.ID, FormationPatch{Slots: slots})
		if err != nil {
			t.Fatalf("update formation: %v", err)
		}
		if len(updated.Slots) != 1 {
			t.Fatalf("expected replaced slots, got %d", len(updated.Slots))
		}
	})

	t.Run("missing formation", func(t *testing.T) {
		if _, err := service.Update(ctx, 404, FormationPatch{Name: strPtr("X")}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFormationService_DeleteMany(t *testing.T) {
	service := NewFormationService(memory.NewFormationRepository(memory.SeedFormations()))
	ctx := context.Background()

	if err := service.DeleteMany(ctx, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty ids, got %v", err)
	}

	before, _ := service.List(ctx)
	if err := service.DeleteMany(ctx, []int64{before[0].ID}); err != nil {
		t.Fatalf("delete formation: %v", err)
	}
	after, _ := service.List(ctx)
	if len(after) != len(before)-1 {
		t.Fatalf("expected %d formations, got %d", len(before)-1, len(after))
	}

	if err := service.DeleteMany(ctx, []int64{999}); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
	unchanged, _ := service.List(ctx)
	if len(unchanged) != len(after) {
		t.Fatalf("expected %d formations after unknown-id delete, got %d", len(after), len(unchanged))
	}
}
