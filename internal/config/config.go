package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	CORSOrigins     []string
	RateLimitReqs   int
	RateLimitWindow int
	MaxRequestBytes int64

	// MongoDB product catalog
	MongoURI          string
	DBName            string
	CatalogCollection string
	CatalogEnabled    bool

	// Redis Configuration
	RedisURL              string
	RedisPassword         string
	RedisDB               int
	EmbeddingCacheEnabled bool
	EmbeddingCacheTTL     time.Duration

	// Gemini
	GeminiAPIKey    string
	GeminiTier      string
	GenerationModel string

	// Embeddings configuration
	EmbeddingsProvider    string // "google" (default)
	GoogleEmbeddingsModel string // e.g., "text-embedding-004"

	// OpenTelemetry
	OTelEnabled  bool
	OTelEndpoint string

	Retrieval RetrievalConfig
}

// RetrievalConfig holds every tunable of the knowledge engine. The scoring
// constants are empirical; tests override them to assert ranking behavior.
type RetrievalConfig struct {
	RefreshTTL time.Duration

	VectorWeight   float64
	KeywordWeight  float64
	ScoreThreshold float64
	NameBonus      float64
	PhraseBonus    float64
	TokenWeight    float64 // weight of the token-overlap ratio inside the keyword score

	SearchTopK     int
	RecommendLimit int

	EmbeddingTimeout   time.Duration
	EmbeddingRPS       float64
	RebuildConcurrency int
	RebuildTimeout     time.Duration
	QueryTimeout       time.Duration
}

// DefaultRetrievalConfig returns the production defaults.
func DefaultRetrievalConfig() RetrievalConfig {
	return RetrievalConfig{
		RefreshTTL:         time.Hour,
		VectorWeight:       0.7,
		KeywordWeight:      0.3,
		ScoreThreshold:     0.35,
		NameBonus:          0.15,
		PhraseBonus:        0.3,
		TokenWeight:        0.7,
		SearchTopK:         4,
		RecommendLimit:     5,
		EmbeddingTimeout:   10 * time.Second,
		EmbeddingRPS:       20,
		RebuildConcurrency: 4,
		RebuildTimeout:     5 * time.Minute,
		QueryTimeout:       20 * time.Second,
	}
}

// Validate rejects configurations the engine cannot run with
func (r RetrievalConfig) Validate() error {
	var errs []error
	if r.RefreshTTL <= 0 {
		errs = append(errs, errors.New("refresh TTL must be positive"))
	}
	if r.VectorWeight < 0 || r.KeywordWeight < 0 || r.NameBonus < 0 || r.PhraseBonus < 0 || r.TokenWeight < 0 {
		errs = append(errs, errors.New("score weights must not be negative"))
	}
	if r.SearchTopK <= 0 || r.RecommendLimit <= 0 {
		errs = append(errs, errors.New("top-K defaults must be positive"))
	}
	if r.RebuildConcurrency <= 0 {
		errs = append(errs, errors.New("rebuild concurrency must be positive"))
	}
	if r.EmbeddingTimeout <= 0 {
		errs = append(errs, errors.New("embedding timeout must be positive"))
	}
	return errors.Join(errs...)
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	defaults := DefaultRetrievalConfig()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		LogLevel:        getEnv("LOG_LEVEL", ""),
		CORSOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),
		RateLimitReqs:   getEnvInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 60),
		MaxRequestBytes: getEnvInt64("MAX_REQUEST_BYTES", 64*1024),

		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017/material_store"),
		DBName:            getEnv("DB_NAME", "material_store"),
		CatalogCollection: getEnv("CATALOG_COLLECTION", "products"),
		CatalogEnabled:    getEnvBool("CATALOG_ENABLED", true),

		RedisURL:              getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisDB:               getEnvInt("REDIS_DB", 0),
		EmbeddingCacheEnabled: getEnvBool("EMBEDDING_CACHE_ENABLED", true),
		EmbeddingCacheTTL:     getEnvSeconds("EMBEDDING_CACHE_TTL", 7*24*time.Hour),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiTier:      getEnv("GEMINI_TIER", "free"),
		GenerationModel: getEnv("GENERATION_MODEL", "gemini-2.0-flash"),

		EmbeddingsProvider:    getEnv("EMBEDDINGS_PROVIDER", "google"),
		GoogleEmbeddingsModel: getEnv("GOOGLE_EMBEDDINGS_MODEL", "text-embedding-004"),

		OTelEnabled:  getEnvBool("OTEL_ENABLED", false),
		OTelEndpoint: getEnv("OTEL_ENDPOINT", "localhost:4317"),

		Retrieval: RetrievalConfig{
			RefreshTTL:         getEnvSeconds("KNOWLEDGE_REFRESH_TTL", defaults.RefreshTTL),
			VectorWeight:       getEnvFloat64("KNOWLEDGE_VECTOR_WEIGHT", defaults.VectorWeight),
			KeywordWeight:      getEnvFloat64("KNOWLEDGE_KEYWORD_WEIGHT", defaults.KeywordWeight),
			ScoreThreshold:     getEnvFloat64("KNOWLEDGE_SCORE_THRESHOLD", defaults.ScoreThreshold),
			NameBonus:          getEnvFloat64("KNOWLEDGE_NAME_BONUS", defaults.NameBonus),
			PhraseBonus:        getEnvFloat64("KNOWLEDGE_PHRASE_BONUS", defaults.PhraseBonus),
			TokenWeight:        getEnvFloat64("KNOWLEDGE_TOKEN_WEIGHT", defaults.TokenWeight),
			SearchTopK:         getEnvInt("KNOWLEDGE_SEARCH_TOP_K", defaults.SearchTopK),
			RecommendLimit:     getEnvInt("KNOWLEDGE_RECOMMEND_LIMIT", defaults.RecommendLimit),
			EmbeddingTimeout:   getEnvSeconds("KNOWLEDGE_EMBED_TIMEOUT", defaults.EmbeddingTimeout),
			EmbeddingRPS:       getEnvFloat64("KNOWLEDGE_EMBED_RPS", defaults.EmbeddingRPS),
			RebuildConcurrency: getEnvInt("KNOWLEDGE_REBUILD_CONCURRENCY", defaults.RebuildConcurrency),
			RebuildTimeout:     getEnvSeconds("KNOWLEDGE_REBUILD_TIMEOUT", defaults.RebuildTimeout),
			QueryTimeout:       getEnvSeconds("KNOWLEDGE_QUERY_TIMEOUT", defaults.QueryTimeout),
		},
	}

	// Validate required fields
	if cfg.EmbeddingsProvider == "google" && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for google embeddings - set it in .env file")
	}

	if err := cfg.Retrieval.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retrieval configuration: %w", err)
	}

	return cfg, nil
}

// Debug reports whether verbose logging was requested
func (c *Config) Debug() bool {
	return c.GinMode == "debug" || strings.EqualFold(c.LogLevel, "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvSeconds reads a duration expressed in seconds ("3600") or as a Go
// duration string ("1h").
func getEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
