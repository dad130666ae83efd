package knowledge

import (
	"context"
	"time"

	"material-advisor/internal/logger"
	"material-advisor/models"
	"material-advisor/utils"
)

// Recommend returns the primary matches for query followed by documents for
// the top match's common combinations, without duplicates, up to limit.
// limit <= 0 uses the configured default.
func (e *Engine) Recommend(ctx context.Context, query string, limit int) ([]models.KnowledgeDocument, error) {
	ctx, cancel := utils.WithCustomTimeout(ctx, e.cfg.QueryTimeout)
	defer cancel()

	start := time.Now()
	out, err := e.recommendSnapshot(ctx, e.load(ctx), query, limit)
	e.metrics.RecordRetrieval("recommend", len(out), time.Since(start).Seconds())
	return out, err
}

func (e *Engine) recommendSnapshot(ctx context.Context, snap *snapshot, query string, limit int) ([]models.KnowledgeDocument, error) {
	if limit <= 0 {
		limit = e.cfg.RecommendLimit
	}

	primary, err := e.searchSnapshot(ctx, snap, query, e.cfg.SearchTopK)
	if err != nil {
		return nil, err
	}
	if len(primary) == 0 {
		return []models.KnowledgeDocument{}, nil
	}

	result := documentsOf(primary)
	seen := make(map[string]struct{}, limit)
	for _, d := range result {
		seen[d.ID] = struct{}{}
	}

	top := result[0]
	for _, phrase := range top.CommonCombinations {
		if len(result) >= limit {
			break
		}
		related, err := e.searchSnapshot(ctx, snap, phrase, 1)
		if err != nil {
			logger.Warn("Related search failed", "phrase", phrase, "document_id", top.ID, "error", err)
			continue
		}
		for _, c := range related {
			if _, dup := seen[c.Document.ID]; dup {
				continue
			}
			seen[c.Document.ID] = struct{}{}
			result = append(result, c.Document)
		}
	}

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// RetrieveContext routes the query, rewrites bare use-case phrases, then
// searches. It is the retrieval step behind AugmentPrompt without the
// recommendation expansion.
func (e *Engine) RetrieveContext(ctx context.Context, query string, topK int) ([]models.KnowledgeDocument, error) {
	ctx, cancel := utils.WithCustomTimeout(ctx, e.cfg.QueryTimeout)
	defer cancel()

	snap := e.load(ctx)
	if routed := e.routeSnapshot(ctx, snap, query); routed != nil {
		return routed, nil
	}
	scored, err := e.searchSnapshot(ctx, snap, RewriteUseCase(query), topK)
	if err != nil {
		return nil, err
	}
	return documentsOf(scored), nil
}

// BuildContext returns the prompt for the downstream model and the documents
// behind it. Retrieval failures degrade to the raw query with no documents.
func (e *Engine) BuildContext(ctx context.Context, query string) (string, []models.KnowledgeDocument) {
	ctx, cancel := utils.WithCustomTimeout(ctx, e.cfg.QueryTimeout)
	defer cancel()

	snap := e.load(ctx)
	if routed := e.routeSnapshot(ctx, snap, query); routed != nil {
		return Assemble(query, routed), routed
	}

	docs, err := e.recommendSnapshot(ctx, snap, RewriteUseCase(query), e.cfg.RecommendLimit)
	if err != nil {
		logger.Warn("Answering without retrieved context", "error", err)
		return query, []models.KnowledgeDocument{}
	}
	return Assemble(query, docs), docs
}

// AugmentPrompt never fails: the worst case is the query itself
func (e *Engine) AugmentPrompt(ctx context.Context, query string) string {
	prompt, _ := e.BuildContext(ctx, query)
	return prompt
}
