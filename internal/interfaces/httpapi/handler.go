package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/localxi/local-xi-backend/internal/domain/formation"
	"github.com/localxi/local-xi-backend/internal/domain/lineup"
	"github.com/localxi/local-xi-backend/internal/domain/match"
	"github.com/localxi/local-xi-backend/internal/domain/player"
	"github.com/localxi/local-xi-backend/internal/platform/logging"
	"github.com/localxi/local-xi-backend/internal/usecase"
)

const dateLayout = "2006-01-02"

type Handler struct {
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	formationService   *usecase.FormationService
	lineupService      *usecase.LineupService
	playerStatsService *usecase.PlayerStatsService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	formationService *usecase.FormationService,
	lineupService *usecase.LineupService,
	playerStatsService *usecase.PlayerStatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:      playerService,
		matchService:       matchService,
		formationService:   formationService,
		lineupService:      lineupService,
		playerStatsService: playerStatsService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}

	return id, nil
}

type bulkDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

type createPlayerRequest struct {
	Name      string   `json:"name" validate:"required"`
	Positions []string `json:"positions" validate:"required,min=1,dive,required"`
	Number    int      `json:"number" validate:"required,min=1,max=99"`
}

type playerDTO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Positions []string `json:"positions"`
	Number    int      `json:"number"`
}

type createMatchRequest struct {
	Date         string `json:"date" validate:"required"`
	Opponent     string `json:"opponent" validate:"required"`
	Home         bool   `json:"home"`
	GoalsFor     *int   `json:"goalsFor" validate:"omitempty,min=0"`
	GoalsAgainst *int   `json:"goalsAgainst" validate:"omitempty,min=0"`
}

type matchPatchRequest struct {
	Date         *string `json:"date"`
	Opponent     *string `json:"opponent"`
	Home         *bool   `json:"home"`
	GoalsFor     *int    `json:"goalsFor"`
	GoalsAgainst *int    `json:"goalsAgainst"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	Opponent     string `json:"opponent"`
	Home         bool   `json:"home"`
	GoalsFor     *int   `json:"goalsFor"`
	GoalsAgainst *int   `json:"goalsAgainst"`
}

type formationSlotPayload struct {
	SlotID   string `json:"slotId"`
	Position string `json:"position"`
	PlayerID *int64 `json:"playerId"`
}

type formationUpsertRequest struct {
	Name  string                 `json:"name"`
	Shape string                 `json:"shape"`
	Slots []formationSlotPayload `json:"slots"`
}

type formationPatchRequest struct {
	Name  *string                `json:"name"`
	Shape *string                `json:"shape"`
	Slots []formationSlotPayload `json:"slots"`
}

type formationDTO struct {
	ID    int64              `json:"id"`
	Name  string             `json:"name"`
	Shape string             `json:"shape"`
	Slots []formationSlotDTO `json:"slots"`
}

type formationSlotDTO struct {
	SlotID   string `json:"slotId"`
	Position string `json:"position"`
	PlayerID *int64 `json:"playerId"`
}

type lineupSlotPayload struct {
	SlotID      string `json:"slotId"`
	Pos         string `json:"pos"`
	PlayerID    *int64 `json:"playerId"`
	Captain     bool   `json:"captain"`
	Rating      *int   `json:"rating"`
	Goals       *int   `json:"goals"`
	Assists     *int   `json:"assists"`
	YellowCards *int   `json:"yellowCards"`
	RedCards    *int   `json:"redCards"`
}

type lineupStatPayload struct {
	PlayerID    *int64 `json:"playerId"`
	Goals       *int   `json:"goals"`
	Assists     *int   `json:"assists"`
	YellowCards *int   `json:"yellowCards"`
	RedCards    *int   `json:"redCards"`
}

type lineupUpsertRequest struct {
	FormationID     *int64              `json:"formationId"`
	CaptainPlayerID *int64              `json:"captainPlayerId"`
	Slots           []lineupSlotPayload `json:"slots"`
	PlayerStats     []lineupStatPayload `json:"playerStats"`
}

type lineupSummariesRequest struct {
	IDs []int64 `json:"ids"`
}

type lineupDTO struct {
	ID              int64           `json:"id"`
	MatchID         int64           `json:"matchId"`
	FormationID     int64           `json:"formationId"`
	CaptainPlayerID *int64          `json:"captainPlayerId"`
	Slots           []lineupSlotDTO `json:"slots"`
	PlayerStats     []lineupStatDTO `json:"playerStats"`
	StatSource      string          `json:"statSource,omitempty"`
}

type lineupSlotDTO struct {
	SlotID      string `json:"slotId"`
	Pos         string `json:"pos"`
	PlayerID    *int64 `json:"playerId"`
	Captain     bool   `json:"captain"`
	Rating      *int   `json:"rating"`
	Goals       *int   `json:"goals"`
	Assists     *int   `json:"assists"`
	YellowCards *int   `json:"yellowCards"`
	RedCards    *int   `json:"redCards"`
}

type lineupStatDTO struct {
	PlayerID    int64 `json:"playerId"`
	Goals       int   `json:"goals"`
	Assists     int   `json:"assists"`
	YellowCards int   `json:"yellowCards"`
	RedCards    int   `json:"redCards"`
}

type lineupSummaryDTO struct {
	MatchID     int64 `json:"matchId"`
	FormationID int64 `json:"formationId"`
}

type playerTotalsDTO struct {
	PlayerID    int64 `json:"playerId"`
	Goals       int   `json:"goals"`
	Assists     int   `json:"assists"`
	YellowCards int   `json:"yellowCards"`
	RedCards    int   `json:"redCards"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Positions: p.Positions,
		Number:    p.Number,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		Date:         m.Date.Format(dateLayout),
		Opponent:     m.Opponent,
		Home:         m.Home,
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
	}
}

func formationToDTO(f formation.Formation) formationDTO {
	slots := make([]formationSlotDTO, 0, len(f.Slots))
	for _, s := range f.Slots {
		slots = append(slots, formationSlotDTO{
			SlotID:   s.SlotID,
			Position: s.Position,
			PlayerID: s.PlayerID,
		})
	}

	return formationDTO{ID: f.ID, Name: f.Name, Shape: f.Shape, Slots: slots}
}

func formationSlotsFromPayload(payload []formationSlotPayload) []formation.Slot {
	if payload == nil {
		return nil
	}
	slots := make([]formation.Slot, 0, len(payload))
	for _, s := range payload {
		slots = append(slots, formation.Slot{
			SlotID:   s.SlotID,
			Position: s.Position,
			PlayerID: s.PlayerID,
		})
	}
	return slots
}

func lineupToDTO(l lineup.Lineup) lineupDTO {
	slots := make([]lineupSlotDTO, 0, len(l.Slots))
	for _, s := range l.Slots {
		slots = append(slots, lineupSlotDTO{
			SlotID:      s.SlotID,
			Pos:         s.Pos,
			PlayerID:    s.PlayerID,
			Captain:     s.Captain,
			Rating:      s.Rating,
			Goals:       s.Goals,
			Assists:     s.Assists,
			YellowCards: s.YellowCards,
			RedCards:    s.RedCards,
		})
	}

	stats := make([]lineupStatDTO, 0, len(l.PlayerStats))
	for _, stat := range l.PlayerStats {
		stats = append(stats, lineupStatDTO{
			PlayerID:    stat.PlayerID,
			Goals:       stat.Goals,
			Assists:     stat.Assists,
			YellowCards: stat.YellowCards,
			RedCards:    stat.RedCards,
		})
	}

	return lineupDTO{
		ID:              l.ID,
		MatchID:         l.MatchID,
		FormationID:     l.FormationID,
		CaptainPlayerID: l.CaptainPlayerID,
		Slots:           slots,
		PlayerStats:     stats,
	}
}

func parseMatchDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be formatted as %s", usecase.ErrInvalidInput, dateLayout)
	}

	return parsed, nil
}
