package knowledge

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"material-advisor/internal/ai"
	"material-advisor/internal/config"
	"material-advisor/internal/logger"
	"material-advisor/internal/telemetry"
	"material-advisor/models"
	"material-advisor/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var errEmptyRebuild = errors.New("no document could be embedded")

// Engine owns the vector index and answers retrieval calls against it. The
// index is rebuilt lazily once it is older than the refresh TTL and swapped in
// whole, so readers always see a single refresh cycle.
type Engine struct {
	cfg      config.RetrievalConfig
	embedder ai.Embedder
	store    *Store
	metrics  *telemetry.Metrics
	now      func() time.Time

	current     atomic.Pointer[snapshot]
	initialized atomic.Bool
	lastRefresh atomic.Int64 // unix nanos
	rebuilds    singleflight.Group
}

type Option func(*Engine)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func NewEngine(cfg config.RetrievalConfig, embedder ai.Embedder, store *Store, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retrieval configuration: %w", err)
	}
	if embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if store == nil {
		return nil, errors.New("document store is required")
	}

	e := &Engine{
		cfg:      cfg,
		embedder: embedder,
		store:    store,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Status describes the active index
type Status struct {
	Initialized   bool      `json:"initialized"`
	LastRefreshAt time.Time `json:"last_refresh_at"`
	DocumentCount int       `json:"document_count"`
	IndexedCount  int       `json:"indexed_count"`
}

func (e *Engine) Status() Status {
	st := Status{Initialized: e.initialized.Load()}
	if ts := e.lastRefresh.Load(); ts != 0 {
		st.LastRefreshAt = time.Unix(0, ts)
	}
	if snap := e.current.Load(); snap != nil {
		st.DocumentCount = len(snap.docs)
		st.IndexedCount = len(snap.entries)
	}
	return st
}

func (e *Engine) needsRefresh() bool {
	if !e.initialized.Load() {
		return true
	}
	last := time.Unix(0, e.lastRefresh.Load())
	return e.now().Sub(last) > e.cfg.RefreshTTL
}

// Refresh rebuilds the index now, joining a rebuild already in flight
func (e *Engine) Refresh(ctx context.Context) error {
	return e.refresh(ctx, true)
}

// ensureFresh rebuilds when the index is missing or stale. Rebuild failures are
// logged; the previous index keeps serving.
func (e *Engine) ensureFresh(ctx context.Context) {
	if !e.needsRefresh() {
		return
	}
	if err := e.refresh(ctx, false); err != nil {
		logger.Warn("Knowledge index refresh failed", "error", err)
	}
}

func (e *Engine) refresh(ctx context.Context, force bool) error {
	ch := e.rebuilds.DoChan("rebuild", func() (interface{}, error) {
		if !force && !e.needsRefresh() {
			return nil, nil
		}
		// The rebuild outlives an impatient caller; the next one reuses it.
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.cfg.RebuildTimeout)
		defer cancel()
		return nil, e.rebuild(rctx)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) rebuild(ctx context.Context) error {
	tracer := otel.Tracer("knowledge")
	ctx, span := tracer.Start(ctx, "knowledge.rebuild")
	defer span.End()

	start := time.Now()
	logger.Info("Rebuilding knowledge index")

	docs := e.store.LoadAll(ctx)
	entries := e.embedAll(ctx, docs)
	duration := time.Since(start).Seconds()

	span.SetAttributes(
		attribute.Int("knowledge.documents", len(docs)),
		attribute.Int("knowledge.indexed", len(entries)),
	)

	if len(entries) == 0 && len(docs) > 0 {
		span.SetStatus(codes.Error, errEmptyRebuild.Error())
		e.metrics.RecordIndexRebuild("failed", 0, duration)
		if e.initialized.Load() {
			// Keep serving the previous index and wait a full TTL before retrying.
			e.lastRefresh.Store(e.now().UnixNano())
		}
		return fmt.Errorf("rebuild of %d documents failed: %w", len(docs), errEmptyRebuild)
	}

	now := e.now()
	e.current.Store(newSnapshot(docs, entries, now))
	e.lastRefresh.Store(now.UnixNano())
	e.initialized.Store(true)

	e.metrics.RecordIndexRebuild("swapped", len(entries), duration)
	logger.Info("Knowledge index rebuilt",
		"documents", len(docs),
		"indexed", len(entries),
		"dropped", len(docs)-len(entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// embedAll embeds every document with bounded concurrency. Documents whose
// embedding fails or times out are dropped; the rest keep their load order.
func (e *Engine) embedAll(ctx context.Context, docs []models.KnowledgeDocument) []vectorEntry {
	results := make([]*vectorEntry, len(docs))

	var g errgroup.Group
	g.SetLimit(e.cfg.RebuildConcurrency)
	for i, doc := range docs {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			text := searchableText(doc)

			ectx, cancel := context.WithTimeout(ctx, e.cfg.EmbeddingTimeout)
			defer cancel()
			vec, err := e.embedder.Embed(ectx, text)
			if err == nil && len(vec) == 0 {
				err = ai.ErrEmbeddingFailed
			}
			if err != nil {
				logger.Warn("Dropping document from index", "document_id", doc.ID, "error", err)
				return nil
			}

			results[i] = &vectorEntry{
				id:        doc.ID,
				text:      text,
				name:      utils.CollapseSpaces(doc.Name),
				embedding: vec,
				doc:       doc,
			}
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]vectorEntry, 0, len(docs))
	dim := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		if dim == 0 {
			dim = len(r.embedding)
		}
		if len(r.embedding) != dim {
			logger.Warn("Dropping document with mismatched embedding dimension",
				"document_id", r.id, "dimension", len(r.embedding), "expected", dim)
			continue
		}
		entries = append(entries, *r)
	}
	return entries
}

// load refreshes if needed and returns the snapshot to answer from
func (e *Engine) load(ctx context.Context) *snapshot {
	e.ensureFresh(ctx)
	return e.current.Load()
}

// Search returns up to topK documents ranked by hybrid score. topK <= 0 uses
// the configured default. An empty index yields an empty result without
// consulting the embedding provider; an index that was never built yields
// ErrRetrievalUnavailable.
func (e *Engine) Search(ctx context.Context, query string, topK int) ([]models.KnowledgeDocument, error) {
	scored, err := e.SearchScored(ctx, query, topK)
	if err != nil {
		return nil, err
	}
	return documentsOf(scored), nil
}

// SearchScored is Search with the score breakdown of every result
func (e *Engine) SearchScored(ctx context.Context, query string, topK int) ([]ScoredCandidate, error) {
	ctx, cancel := utils.WithCustomTimeout(ctx, e.cfg.QueryTimeout)
	defer cancel()

	start := time.Now()
	out, err := e.searchSnapshot(ctx, e.load(ctx), query, topK)
	e.metrics.RecordRetrieval("search", len(out), time.Since(start).Seconds())
	return out, err
}

func (e *Engine) searchSnapshot(ctx context.Context, snap *snapshot, query string, topK int) ([]ScoredCandidate, error) {
	if topK <= 0 {
		topK = e.cfg.SearchTopK
	}
	if snap == nil {
		// No build has succeeded yet: a broken index, not an empty one
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: index not built: %w", ErrRetrievalUnavailable, err)
		}
		return nil, fmt.Errorf("%w: index not built", ErrRetrievalUnavailable)
	}
	if len(snap.entries) == 0 {
		return []ScoredCandidate{}, nil
	}

	tracer := otel.Tracer("knowledge")
	ctx, span := tracer.Start(ctx, "knowledge.search")
	defer span.End()
	span.SetAttributes(attribute.Int("knowledge.top_k", topK))

	queryVec, err := e.embedder.Embed(ctx, utils.Normalize(query))
	if err == nil && len(queryVec) == 0 {
		err = ai.ErrEmbeddingFailed
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query embedding failed")
		logger.Error("Query embedding failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRetrievalUnavailable, err)
	}

	out := rank(e.cfg, snap.entries, query, queryVec, topK)
	span.SetAttributes(attribute.Int("knowledge.results", len(out)))
	return out, nil
}

func documentsOf(scored []ScoredCandidate) []models.KnowledgeDocument {
	docs := make([]models.KnowledgeDocument, 0, len(scored))
	for _, c := range scored {
		docs = append(docs, c.Document)
	}
	return docs
}
