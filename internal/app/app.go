package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/localxi/local-xi-backend/internal/config"
	"github.com/localxi/local-xi-backend/internal/domain/formation"
	"github.com/localxi/local-xi-backend/internal/domain/lineup"
	"github.com/localxi/local-xi-backend/internal/domain/match"
	"github.com/localxi/local-xi-backend/internal/domain/player"
	"github.com/localxi/local-xi-backend/internal/infrastructure/repository/memory"
	"github.com/localxi/local-xi-backend/internal/infrastructure/repository/postgres"
	"github.com/localxi/local-xi-backend/internal/interfaces/httpapi"
	"github.com/localxi/local-xi-backend/internal/platform/logging"
	"github.com/localxi/local-xi-backend/internal/usecase"
)

type repositories struct {
	players    player.Repository
	matches    match.Repository
	formations formation.Repository
	lineups    lineup.Repository
}

// NewHTTPServer wires repositories, services and the router into one
// ready-to-run server. An empty DB_URL selects the seeded in-memory
// backend; anything else is treated as a postgres URL.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	playerSvc := usecase.NewPlayerService(repos.players)
	matchSvc := usecase.NewMatchService(repos.matches)
	formationSvc := usecase.NewFormationService(repos.formations)
	lineupSvc := usecase.NewLineupService(repos.lineups)
	playerStatsSvc := usecase.NewPlayerStatsService(repos.lineups)

	handler := httpapi.NewHandler(playerSvc, matchSvc, formationSvc, lineupSvc, playerStatsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories")
		return repositories{
			players:    memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:    memory.NewMatchRepository(memory.SeedMatches()),
			formations: memory.NewFormationRepository(memory.SeedFormations()),
			lineups:    memory.NewLineupRepository(),
		}, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}

	logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL))

	return repositories{
		players:    postgres.NewPlayerRepository(db),
		matches:    postgres.NewMatchRepository(db),
		formations: postgres.NewFormationRepository(db),
		lineups:    postgres.NewLineupRepository(db),
	}, nil
}
