package console

import (
	"fmt"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/library-console/cache"
	"github.com/marcelsud/library-console/cache/memory"
	"github.com/marcelsud/library-console/cache/redis"
	"github.com/marcelsud/library-console/catalog"
	"github.com/marcelsud/library-console/catalog/fallback"
	"github.com/marcelsud/library-console/catalog/remote"
	"github.com/marcelsud/library-console/config"
	"github.com/marcelsud/library-console/metrics"
	"github.com/rs/zerolog"
)

/*
* Pacote dentro de `internal`: só os executáveis deste módulo montam a aplicação.
* App liga configuração, cliente remoto, fallback, cache e serviço na ordem em que dependem um do outro.
 */

type backend interface {
	cache.Backend
	metrics.EntryCounter
}

type App struct {
	Service   *catalog.Service
	Store     *cache.Store
	Fallback  *fallback.Repository
	Collector *metrics.ConsoleCollector
	Logger    zerolog.Logger
}

// New builds the console from cfg. name tags every log line.
func New(cfg *config.Config, name string) (*App, error) {
	logger := httplog.NewLogger(name, httplog.Options{
		JSON: true,
	})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	b, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	data, err := fallback.Load()
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("loading fallback dataset: %w", err)
	}

	client := remote.NewClient(cfg.APIBaseURL,
		remote.WithRateLimit(cfg.APIRequestRate),
		remote.WithLogger(logger),
	)
	repo := fallback.NewRepository(client, data, fallback.NewPolicy(cfg.FallbackMode), logger)
	store := cache.New(b,
		cache.WithStaleTime(cfg.StaleTime),
		cache.WithLogger(logger),
	)
	svc := catalog.NewService(repo, store, logger)

	return &App{
		Service:   svc,
		Store:     store,
		Fallback:  repo,
		Collector: metrics.NewConsoleCollector(store, b, repo, svc),
		Logger:    logger,
	}, nil
}

// Close waits for background refreshes and releases the cache backend
func (a *App) Close() error {
	return a.Store.Close()
}

func newBackend(cfg *config.Config) (backend, error) {
	switch cfg.CacheBackend {
	case "redis":
		b, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.GCTime)
		if err != nil {
			return nil, fmt.Errorf("creating redis cache: %w", err)
		}
		return b, nil
	default:
		return memory.New(cfg.GCTime), nil
	}
}
