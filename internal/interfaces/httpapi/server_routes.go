package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("POST /v1/players/bulk-delete", handler.BulkDeletePlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/stats/totals", handler.GetPlayerStatTotals)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("POST /v1/matches/bulk-delete", handler.BulkDeleteMatches)

	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("POST /v1/formations", handler.CreateFormation)
	mux.HandleFunc("PUT /v1/formations/{formationID}", handler.UpdateFormation)
	mux.HandleFunc("POST /v1/formations/bulk-delete", handler.BulkDeleteFormations)

	mux.HandleFunc("GET /v1/matches/{matchID}/lineup", handler.GetLineupForMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}/lineup", handler.UpsertLineupForMatch)
	mux.HandleFunc("POST /v1/lineups/summaries", handler.GetLineupSummaries)
}
