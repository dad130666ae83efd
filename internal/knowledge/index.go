package knowledge

import (
	"math"
	"sort"
	"strings"
	"time"

	"material-advisor/internal/config"
	"material-advisor/models"
	"material-advisor/utils"
)

// ScoredCandidate is one document with the components of its hybrid score
type ScoredCandidate struct {
	Document     models.KnowledgeDocument `json:"document"`
	VectorScore  float64                  `json:"vector_score"`
	KeywordScore float64                  `json:"keyword_score"`
	NameBonus    float64                  `json:"name_bonus"`
	HybridScore  float64                  `json:"hybrid_score"`
}

type vectorEntry struct {
	id        string
	text      string // searchable text
	name      string // normalized document name
	embedding []float32
	doc       models.KnowledgeDocument
}

// snapshot is one refresh cycle: every loaded document plus the entries that
// were embedded successfully. It is never mutated after construction.
type snapshot struct {
	docs    []models.KnowledgeDocument
	byID    map[string]int
	entries []vectorEntry
	builtAt time.Time
}

func newSnapshot(docs []models.KnowledgeDocument, entries []vectorEntry, builtAt time.Time) *snapshot {
	byID := make(map[string]int, len(docs))
	for i, d := range docs {
		if _, dup := byID[d.ID]; !dup {
			byID[d.ID] = i
		}
	}
	return &snapshot{docs: docs, byID: byID, entries: entries, builtAt: builtAt}
}

func (s *snapshot) document(id string) (models.KnowledgeDocument, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.KnowledgeDocument{}, false
	}
	return s.docs[i], true
}

// searchableText concatenates name, brand, category, description, usage, tips,
// specification values and quality, in that order, then normalizes.
func searchableText(doc models.KnowledgeDocument) string {
	parts := []string{doc.Name, doc.Brand, doc.Category, doc.Description}
	parts = append(parts, doc.Usage...)
	parts = append(parts, doc.Tips...)
	for _, s := range doc.Specifications {
		parts = append(parts, s.Value)
	}
	parts = append(parts, doc.Quality)
	return utils.CollapseSpaces(strings.Join(parts, " "))
}

// cosine returns 0 when either vector has zero magnitude or the dimensions differ
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		magA += x * x
		magB += y * y
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	return math.Max(-1, math.Min(1, sim))
}

// wordOverlapScore rewards q's tokens (longer than one rune) found in t, plus a
// bonus when all of q appears in t as a phrase.
func wordOverlapScore(cfg config.RetrievalConfig, q, t string) float64 {
	phrase := utils.CollapseSpaces(q)
	text := utils.CollapseSpaces(t)

	var total, matched int
	for _, tok := range strings.Fields(phrase) {
		if len([]rune(tok)) <= 1 {
			continue
		}
		total++
		if strings.Contains(text, tok) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}

	score := float64(matched) / float64(total) * cfg.TokenWeight
	if strings.Contains(text, phrase) {
		score += cfg.PhraseBonus
	}
	return math.Min(1, score)
}

func keywordScore(cfg config.RetrievalConfig, expansions []string, text string) float64 {
	var best float64
	for _, e := range expansions {
		if s := wordOverlapScore(cfg, e, text); s > best {
			best = s
		}
	}
	return best
}

func hybridScore(cfg config.RetrievalConfig, vector, keyword, nameBonus float64) float64 {
	return vector*cfg.VectorWeight + keyword*cfg.KeywordWeight + nameBonus
}

// rank scores every entry against the query and returns the candidates above
// the threshold, best first. Ties keep index-build order.
func rank(cfg config.RetrievalConfig, entries []vectorEntry, query string, queryVec []float32, topK int) []ScoredCandidate {
	expansions := Expand(query)
	normQuery := utils.CollapseSpaces(query)

	scored := make([]ScoredCandidate, 0, len(entries))
	for _, e := range entries {
		c := ScoredCandidate{
			Document:     e.doc,
			VectorScore:  cosine(queryVec, e.embedding),
			KeywordScore: keywordScore(cfg, expansions, e.text),
		}
		if normQuery != "" && strings.Contains(e.name, normQuery) {
			c.NameBonus = cfg.NameBonus
		}
		c.HybridScore = hybridScore(cfg, c.VectorScore, c.KeywordScore, c.NameBonus)
		scored = append(scored, c)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].HybridScore > scored[j].HybridScore
	})

	out := make([]ScoredCandidate, 0, topK)
	for _, c := range scored {
		if len(out) == topK {
			break
		}
		if c.HybridScore > cfg.ScoreThreshold {
			out = append(out, c)
		}
	}
	return out
}
