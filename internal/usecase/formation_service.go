package usecase

import (
	"context"
	"fmt"

	"github.com/localxi/local-xi-backend/internal/domain/formation"
)

type CreateFormationInput struct {
	Name  string
	Shape string
	Slots []formation.Slot
}

// FormationPatch carries only the fields the client supplied. A nil
// Slots keeps the stored slot template; a non-nil one replaces it.
type FormationPatch struct {
	Name  *string
	Shape *string
	Slots []formation.Slot
}

type FormationService struct {
	formationRepo formation.Repository
}

func NewFormationService(formationRepo formation.Repository) *FormationService {
	return &FormationService{formationRepo: formationRepo}
}

func (s *FormationService) List(ctx context.Context) ([]formation.Formation, error) {
	formations, err := s.formationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	return formations, nil
}

func (s *FormationService) Create(ctx context.Context, input CreateFormationInput) (formation.Formation, error) {
	item := formation.Formation{
		Name:  input.Name,
		Shape: input.Shape,
		Slots: input.Slots,
	}
	if err := item.Validate(); err != nil {
		return formation.Formation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.formationRepo.Create(ctx, item)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("create formation: %w", err)
	}

	return created, nil
}

func (s *FormationService) Update(ctx context.Context, id int64, patch FormationPatch) (formation.Formation, error) {
	existing, ok, err := s.formationRepo.GetByID(ctx, id)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("get formation by id: %w", err)
	}
	if !ok {
		return formation.Formation{}, fmt.Errorf("%w: formation=%d", ErrNotFound, id)
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Shape != nil {
		existing.Shape = *patch.Shape
	}
	if patch.Slots != nil {
		existing.Slots = patch.Slots
	}

	if err := existing.Validate(); err != nil {
		return formation.Formation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.formationRepo.Update(ctx, existing)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("update formation: %w", err)
	}

	return saved, nil
}

func (s *FormationService) DeleteMany(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}

	if err := s.formationRepo.DeleteByIDs(ctx, ids); err != nil {
		return fmt.Errorf("delete formations: %w", err)
	}

	return nil
}
