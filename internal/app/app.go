package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"material-advisor/internal/ai"
	"material-advisor/internal/cache"
	"material-advisor/internal/catalog"
	"material-advisor/internal/config"
	"material-advisor/internal/knowledge"
	"material-advisor/internal/logger"
	"material-advisor/internal/telemetry"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// App holds the long-lived dependencies shared by the server and the CLI.
// Optional backends are nil when disabled or unreachable.
type App struct {
	Config    *config.Config
	Metrics   *telemetry.Metrics
	Engine    *knowledge.Engine
	Catalog   *catalog.MongoCatalog
	Cache     *cache.EmbeddingCache
	Redis     *redis.Client
	Generator *ai.GeminiClient

	embedder *ai.ResilientEmbedder
	closers  []func() error
}

// New wires the embedding chain (provider, breaker, cache), the optional
// catalog and the retrieval engine. Only the embedding provider is required.
func New(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics) (*App, error) {
	a := &App{Config: cfg, Metrics: metrics}

	provider, err := ai.NewEmbedder(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	a.closers = append(a.closers, provider.Close)

	a.embedder = ai.NewResilientEmbedder(provider, "gemini-embeddings",
		cfg.Retrieval.EmbeddingRPS, cfg.Retrieval.EmbeddingTimeout, metrics)
	var embedder ai.Embedder = a.embedder

	if rdb, err := config.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, embedding cache and rate limiting disabled", "error", err)
	} else {
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
	}

	if cfg.EmbeddingCacheEnabled && a.Redis != nil {
		c, err := cache.NewEmbeddingCache(a.embedder, a.Redis, provider.Model(), cfg.EmbeddingCacheTTL, metrics)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create embedding cache: %w", err)
		}
		a.Cache = c
		embedder = c
	}

	var source catalog.ProductCatalog
	if cfg.CatalogEnabled {
		if client, err := config.ConnectMongoDB(cfg); err != nil {
			logger.Warn("Catalog unavailable, serving curated corpus only", "error", err)
		} else {
			a.closers = append(a.closers, disconnect(client))
			a.Catalog = catalog.NewMongoCatalog(client.Database(cfg.DBName), cfg.CatalogCollection, metrics)
			source = a.Catalog
		}
	}

	store := knowledge.NewStore(knowledge.CuratedCorpus(), source)
	a.Engine, err = knowledge.NewEngine(cfg.Retrieval, embedder, store, knowledge.WithMetrics(metrics))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create knowledge engine: %w", err)
	}

	if gen, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiTier, cfg.GenerationModel, metrics); err != nil {
		logger.Warn("Reply generation disabled", "error", err)
	} else {
		a.Generator = gen
		a.closers = append(a.closers, gen.Close)
	}

	logger.Info("Application wired",
		"catalog", a.Catalog != nil,
		"embedding_cache", a.Cache != nil,
		"generation", a.Generator != nil,
		"embedding_model", provider.Model(),
	)
	return a, nil
}

// EmbedderState reports the embedding circuit breaker state
func (a *App) EmbedderState() string {
	return a.embedder.State()
}

// Close releases every backend in reverse order of acquisition
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func disconnect(client *mongo.Client) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return client.Disconnect(ctx)
	}
}
