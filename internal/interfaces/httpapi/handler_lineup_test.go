package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/localxi/local-xi-backend/internal/infrastructure/repository/memory"
	"github.com/localxi/local-xi-backend/internal/platform/logging"
	"github.com/localxi/local-xi-backend/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	lineupRepo := memory.NewLineupRepository()

	handler := NewHandler(
		usecase.NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers())),
		usecase.NewMatchService(memory.NewMatchRepository(memory.SeedMatches())),
		usecase.NewFormationService(memory.NewFormationRepository(memory.SeedFormations())),
		usecase.NewLineupService(lineupRepo),
		usecase.NewPlayerStatsService(lineupRepo),
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type lineupEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       *lineupDTO `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func decodeLineup(t *testing.T, rec *httptest.ResponseRecorder) lineupEnvelope {
	t.Helper()

	var envelope lineupEnvelope
	require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestLineupRoutes_PutThenGet(t *testing.T) {
	router := newTestRouter(t)

	const payload = `{
		"formationId": 1,
		"captainPlayerId": 4,
		"slots": [
			{"slotId": "GK-1", "pos": "GK", "playerId": 1},
			{"slotId": "FWD-1", "pos": "ST", "playerId": 9, "goals": 2},
			{"slotId": "FWD-2", "pos": "ST", "playerId": 9, "goals": 1, "assists": -3}
		]
	}`

	rec := doJSON(t, router, http.MethodPut, "/v1/matches/1/lineup", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	saved := decodeLineup(t, rec)
	require.NotNil(t, saved.Data)
	require.Equal(t, int64(1), saved.Data.MatchID)
	require.Equal(t, "slots", saved.Data.StatSource)
	require.Len(t, saved.Data.Slots, 3)
	require.NotNil(t, saved.Data.CaptainPlayerID)
	require.Equal(t, int64(4), *saved.Data.CaptainPlayerID)

	// counters fold per player with negatives clamped
	require.Len(t, saved.Data.PlayerStats, 2)
	require.Equal(t, int64(1), saved.Data.PlayerStats[0].PlayerID)
	require.Equal(t, int64(9), saved.Data.PlayerStats[1].PlayerID)
	require.Equal(t, 3, saved.Data.PlayerStats[1].Goals)
	require.Equal(t, 0, saved.Data.PlayerStats[1].Assists)

	got := decodeLineup(t, doJSON(t, router, http.MethodGet, "/v1/matches/1/lineup", ""))
	require.NotNil(t, got.Data)
	require.Equal(t, saved.Data.ID, got.Data.ID)
	// statSource only rides on the write response
	require.Empty(t, got.Data.StatSource)
}

func TestLineupRoutes_ExplicitStatsTakePriority(t *testing.T) {
	router := newTestRouter(t)

	const payload = `{
		"formationId": 1,
		"slots": [{"slotId": "FWD-1", "pos": "ST", "playerId": 9, "goals": 5}],
		"playerStats": [{"playerId": 9, "goals": 1}]
	}`

	rec := doJSON(t, router, http.MethodPut, "/v1/matches/1/lineup", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	saved := decodeLineup(t, rec)
	require.Equal(t, "payload", saved.Data.StatSource)
	require.Len(t, saved.Data.PlayerStats, 1)
	require.Equal(t, 1, saved.Data.PlayerStats[0].Goals)
}

func TestLineupRoutes_ValidationFailures(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]struct {
		path string
		body string
	}{
		"missing formation": {
			path: "/v1/matches/1/lineup",
			body: `{"slots": []}`,
		},
		"missing slots": {
			path: "/v1/matches/1/lineup",
			body: `{"formationId": 1}`,
		},
		"blank slot id": {
			path: "/v1/matches/1/lineup",
			body: `{"formationId": 1, "slots": [{"slotId": " ", "pos": "GK"}]}`,
		},
		"unknown field": {
			path: "/v1/matches/1/lineup",
			body: `{"formationId": 1, "slots": [], "bogus": true}`,
		},
		"bad match id": {
			path: "/v1/matches/zero/lineup",
			body: `{"formationId": 1, "slots": []}`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPut, tc.path, tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestLineupRoutes_GetMissingLineup(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/matches/1/lineup", "")
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	envelope := decodeLineup(t, rec)
	require.NotNil(t, envelope.Error)
	require.Equal(t, "NOT_FOUND", envelope.Error.Status)
}

func TestLineupRoutes_Summaries(t *testing.T) {
	router := newTestRouter(t)

	seed := `{"formationId": 2, "slots": []}`
	rec := doJSON(t, router, http.MethodPut, "/v1/matches/1/lineup", seed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	type summariesEnvelope struct {
		Data  []lineupSummaryDTO `json:"data"`
		Error *struct {
			Code int `json:"code"`
		} `json:"error"`
	}

	t.Run("only stored lineups are reported", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/lineups/summaries", `{"ids": [1, 2]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var envelope summariesEnvelope
		require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&envelope))
		require.Len(t, envelope.Data, 1)
		require.Equal(t, int64(1), envelope.Data[0].MatchID)
		require.Equal(t, int64(2), envelope.Data[0].FormationID)
	})

	t.Run("missing ids rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/lineups/summaries", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	t.Run("empty ids yield empty list", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/lineups/summaries", `{"ids": []}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var envelope summariesEnvelope
		require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&envelope))
		require.Empty(t, envelope.Data)
	})
}

func TestPlayerStatsRoute_Totals(t *testing.T) {
	router := newTestRouter(t)

	seed := `{
		"formationId": 1,
		"slots": [{"slotId": "FWD-1", "pos": "ST", "playerId": 9}],
		"playerStats": [{"playerId": 9, "goals": 2, "assists": 1}]
	}`
	rec := doJSON(t, router, http.MethodPut, "/v1/matches/1/lineup", seed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/v1/players/9/stats/totals", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data playerTotalsDTO `json:"data"`
	}
	require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&envelope))
	require.Equal(t, int64(9), envelope.Data.PlayerID)
	require.Equal(t, 2, envelope.Data.Goals)
	require.Equal(t, 1, envelope.Data.Assists)
}
