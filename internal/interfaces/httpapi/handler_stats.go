package httpapi

import (
	"net/http"
)

func (h *Handler) GetPlayerStatTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStatTotals")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	totals, err := h.playerStatsService.Totals(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player stat totals failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerTotalsDTO{
		PlayerID:    totals.PlayerID,
		Goals:       totals.Goals,
		Assists:     totals.Assists,
		YellowCards: totals.YellowCards,
		RedCards:    totals.RedCards,
	})
}
