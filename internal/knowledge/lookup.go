package knowledge

import (
	"context"
	"strings"

	"material-advisor/models"
	"material-advisor/utils"
)

const defaultCrossSellLimit = 5

func (e *Engine) documents(ctx context.Context) []models.KnowledgeDocument {
	if snap := e.load(ctx); snap != nil {
		return snap.docs
	}
	return nil
}

// Document looks a document up by id in the current snapshot
func (e *Engine) Document(ctx context.Context, id string) (models.KnowledgeDocument, error) {
	snap := e.load(ctx)
	if snap != nil {
		if doc, ok := snap.document(id); ok {
			return doc, nil
		}
	}
	return models.KnowledgeDocument{}, ErrDocumentNotFound
}

// DocumentsByCategory matches categories after normalization, so "xi mang"
// finds "Xi măng".
func (e *Engine) DocumentsByCategory(ctx context.Context, category string) []models.KnowledgeDocument {
	want := utils.CollapseSpaces(category)
	out := []models.KnowledgeDocument{}
	for _, d := range e.documents(ctx) {
		if utils.CollapseSpaces(d.Category) == want {
			out = append(out, d)
		}
	}
	return out
}

func (e *Engine) DocumentsByBrand(ctx context.Context, brand string) []models.KnowledgeDocument {
	want := utils.CollapseSpaces(brand)
	out := []models.KnowledgeDocument{}
	if want == "" {
		return out
	}
	for _, d := range e.documents(ctx) {
		if d.Brand != "" && strings.Contains(utils.CollapseSpaces(d.Brand), want) {
			out = append(out, d)
		}
	}
	return out
}

// Categories lists distinct categories in first-seen order
func (e *Engine) Categories(ctx context.Context) []string {
	return distinct(e.documents(ctx), func(d models.KnowledgeDocument) string { return d.Category })
}

func (e *Engine) Brands(ctx context.Context) []string {
	return distinct(e.documents(ctx), func(d models.KnowledgeDocument) string { return d.Brand })
}

func distinct(docs []models.KnowledgeDocument, field func(models.KnowledgeDocument) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, d := range docs {
		v := field(d)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// CrossSell finds documents named or described by the source document's
// common combinations. It works on text alone and never calls the embedder.
func (e *Engine) CrossSell(ctx context.Context, id string, limit int) ([]models.KnowledgeDocument, error) {
	if limit <= 0 {
		limit = defaultCrossSellLimit
	}

	snap := e.load(ctx)
	if snap == nil {
		return nil, ErrDocumentNotFound
	}
	source, ok := snap.document(id)
	if !ok {
		return nil, ErrDocumentNotFound
	}

	seen := map[string]struct{}{source.ID: {}}
	out := []models.KnowledgeDocument{}
	for _, phrase := range source.CommonCombinations {
		p := utils.CollapseSpaces(phrase)
		if p == "" {
			continue
		}
		for _, d := range snap.docs {
			if _, dup := seen[d.ID]; dup {
				continue
			}
			if strings.Contains(utils.CollapseSpaces(d.Name), p) || strings.Contains(utils.CollapseSpaces(d.Description), p) {
				seen[d.ID] = struct{}{}
				out = append(out, d)
				if len(out) == limit {
					return out, nil
				}
			}
		}
	}
	return out, nil
}
