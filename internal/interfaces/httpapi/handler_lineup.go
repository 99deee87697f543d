package httpapi

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/localxi/local-xi-backend/internal/usecase"
)

func (h *Handler) GetLineupForMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupForMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.lineupService.GetByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(found))
}

func (h *Handler) UpsertLineupForMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertLineupForMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req lineupUpsertRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	input := usecase.UpsertLineupInput{
		FormationID:     req.FormationID,
		CaptainPlayerID: req.CaptainPlayerID,
	}
	if req.Slots != nil {
		input.Slots = make([]usecase.UpsertLineupSlot, 0, len(req.Slots))
		for _, s := range req.Slots {
			input.Slots = append(input.Slots, usecase.UpsertLineupSlot{
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
	}
	if req.PlayerStats != nil {
		input.PlayerStats = make([]usecase.UpsertLineupStat, 0, len(req.PlayerStats))
		for _, stat := range req.PlayerStats {
			input.PlayerStats = append(input.PlayerStats, usecase.UpsertLineupStat{
				PlayerID:    stat.PlayerID,
				Goals:       stat.Goals,
				Assists:     stat.Assists,
				YellowCards: stat.YellowCards,
				RedCards:    stat.RedCards,
			})
		}
	}

	saved, source, err := h.lineupService.UpsertForMatch(ctx, matchID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "upsert lineup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	result := lineupToDTO(saved)
	result.StatSource = string(source)

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetLineupSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupSummaries")
	defer span.End()

	var req lineupSummariesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	summaries, err := h.lineupService.Summaries(ctx, req.IDs)
	if err != nil {
		h.logger.WarnContext(ctx, "lineup summaries failed", "count", len(req.IDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, lineupSummaryDTO{MatchID: s.MatchID, FormationID: s.FormationID})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
