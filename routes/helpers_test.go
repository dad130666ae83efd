package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"material-advisor/internal/config"
	"material-advisor/internal/knowledge"
	"material-advisor/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type topicEmbedder struct {
	topics []string
	fail   atomic.Bool
}

func (f *topicEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.fail.Load() {
		return nil, errors.New("provider down")
	}
	n := utils.Normalize(text)
	vec := make([]float32, len(f.topics))
	for i, t := range f.topics {
		if strings.Contains(n, t) {
			vec[i] = 1
		}
	}
	return vec, nil
}

// newTestEngine builds an engine over the curated corpus and forces the first
// index build so handlers never wait on it.
func newTestEngine(t *testing.T) (*knowledge.Engine, *topicEmbedder) {
	t.Helper()
	emb := &topicEmbedder{topics: []string{"xi mang", "giao hang"}}
	engine, err := knowledge.NewEngine(config.DefaultRetrievalConfig(), emb, knowledge.NewStore(knowledge.CuratedCorpus(), nil))
	require.NoError(t, err)
	require.NoError(t, engine.Refresh(context.Background()))
	return engine, emb
}

func perform(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
