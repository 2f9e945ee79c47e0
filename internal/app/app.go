package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/cricket-league/internal/config"
	"github.com/riskibarqy/cricket-league/internal/domain/match"
	"github.com/riskibarqy/cricket-league/internal/domain/standings"
	"github.com/riskibarqy/cricket-league/internal/domain/team"
	"github.com/riskibarqy/cricket-league/internal/domain/tournament"
	cacherepo "github.com/riskibarqy/cricket-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricket-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricket-league/internal/platform/cache"
	idgen "github.com/riskibarqy/cricket-league/internal/platform/id"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
	"github.com/riskibarqy/cricket-league/internal/platform/metrics"
	"github.com/riskibarqy/cricket-league/internal/platform/resilience"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

const dependencyPingTimeout = 5 * time.Second

type repositories struct {
	tournaments tournament.Repository
	teams       team.Repository
	matches     match.Repository
}

// NewHTTPServer wires storage, caches and services behind the router. The returned
// cleanup releases database and redis connections and must run after Shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var registry *metrics.Metrics
	if cfg.MetricsEnabled {
		registry = metrics.New(prometheus.NewRegistry())
	}

	repos, closeRepos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepos)

	tables, closeTables, err := newTableCache(ctx, cfg, registry, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, closeTables)

	ids := idgen.NewUUIDGenerator()
	standingsSvc := usecase.NewStandingsService(repos.tournaments, repos.teams, repos.matches, tables, registry, logger)
	handler := httpapi.NewHandler(
		usecase.NewTournamentService(repos.tournaments, ids, standingsSvc, logger),
		usecase.NewTeamService(repos.tournaments, repos.teams, repos.matches, ids, standingsSvc, logger),
		usecase.NewMatchService(repos.tournaments, repos.teams, repos.matches, standingsSvc, registry, logger),
		standingsSvc,
		usecase.NewOverviewService(repos.tournaments, standingsSvc, cfg.OverviewWorkers, logger),
		usecase.NewExportService(standingsSvc, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, registry, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		target := resolvePostgresTarget(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := openPostgres(ctx, target)
		if err != nil {
			return repositories{}, nil, err
		}
		logger.InfoContext(ctx, "storage ready", "driver", cfg.StorageDriver, "db_name", target.dbName, "db_url", target.redacted)

		var tournaments tournament.Repository = postgres.NewTournamentRepository(db)
		var teams team.Repository = postgres.NewTeamRepository(db)
		if cfg.CacheEnabled && cfg.CacheDriver == config.CacheMemory {
			// Single instance only: replicas would not see each other's invalidations.
			store := cache.NewStore[any](cfg.CacheTTL)
			tournaments = cacherepo.NewTournamentRepository(tournaments, store)
			teams = cacherepo.NewTeamRepository(teams, store)
		}

		return repositories{
			tournaments: tournaments,
			teams:       teams,
			matches:     postgres.NewMatchRepository(db),
		}, func() { _ = db.Close() }, nil
	default:
		db := memory.NewDatabase()
		if cfg.SeedDemoData {
			if err := memory.SeedDemo(ctx, db); err != nil {
				return repositories{}, nil, fmt.Errorf("seed demo data: %w", err)
			}
			logger.InfoContext(ctx, "demo data seeded", "tournament_id", memory.DemoTournamentID)
		}
		logger.InfoContext(ctx, "storage ready", "driver", config.StorageMemory)

		return repositories{
			tournaments: memory.NewTournamentRepository(db),
			teams:       memory.NewTeamRepository(db),
			matches:     memory.NewMatchRepository(db),
		}, func() {}, nil
	}
}

func newTableCache(ctx context.Context, cfg config.Config, registry *metrics.Metrics, logger *logging.Logger) (cache.Loader[standings.Table], func(), error) {
	if !cfg.CacheEnabled {
		logger.InfoContext(ctx, "standings cache disabled")
		return nil, func() {}, nil
	}

	if cfg.CacheDriver != config.CacheRedis {
		return cache.NewStore[standings.Table](cfg.CacheTTL), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// Not fatal: the store falls back to recomputing while redis is down.
		logger.WarnContext(ctx, "redis ping failed", "addr", opts.Addr, "error", err)
	}

	breaker := resilience.NewFromConfig(cfg.RedisCircuit)
	if breaker != nil {
		breaker.OnTransition(func(from, to resilience.CircuitState) {
			registry.BreakerTransition(string(to))
			logger.Warn("redis circuit breaker transition", "from", from, "to", to)
		})
	}

	logger.InfoContext(ctx, "standings cache ready", "driver", cfg.CacheDriver, "addr", opts.Addr)
	return cache.NewRedisStore[standings.Table](client, cfg.CacheTTL, breaker, logger), func() { _ = client.Close() }, nil
}
