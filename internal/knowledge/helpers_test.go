package knowledge

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"material-advisor/internal/config"
	"material-advisor/models"
	"material-advisor/utils"

	"github.com/stretchr/testify/require"
)

// topicEmbedder maps text to a presence vector over fixed normalized topics,
// so ranking in tests is fully determined by the text.
type topicEmbedder struct {
	topics []string

	calls        atomic.Int32
	inFlight     atomic.Int32
	maxInFlight  atomic.Int32
	failContains atomic.Value // string
	failAll      atomic.Bool
	delay        time.Duration

	mu      sync.Mutex
	gateKey string
	entered chan struct{}
	release chan struct{}
}

func newTopicEmbedder(topics ...string) *topicEmbedder {
	return &topicEmbedder{topics: topics}
}

func (f *topicEmbedder) failOn(substr string) {
	f.failContains.Store(substr)
}

// block makes every text containing key wait until the returned func is called
func (f *topicEmbedder) block(key string) (entered <-chan struct{}, release func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gateKey = key
	f.entered = make(chan struct{}, 1)
	f.release = make(chan struct{})
	rel := f.release
	return f.entered, func() { close(rel) }
}

func (f *topicEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls.Add(1)
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxInFlight.Load()
		if cur <= seen || f.maxInFlight.CompareAndSwap(seen, cur) {
			break
		}
	}
	n := utils.Normalize(text)

	f.mu.Lock()
	gateKey, entered, release := f.gateKey, f.entered, f.release
	f.mu.Unlock()
	if gateKey != "" && strings.Contains(n, gateKey) {
		select {
		case entered <- struct{}{}:
		default:
		}
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.failAll.Load() {
		return nil, errors.New("provider down")
	}
	if s, _ := f.failContains.Load().(string); s != "" && strings.Contains(n, s) {
		return nil, errors.New("provider rejected input")
	}

	vec := make([]float32, len(f.topics))
	for i, t := range f.topics {
		if strings.Contains(n, t) {
			vec[i] = 1
		}
	}
	return vec, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeCatalog struct {
	mu       sync.Mutex
	products []models.CatalogProduct
	err      error
	calls    atomic.Int32
}

func (c *fakeCatalog) set(products ...models.CatalogProduct) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
}

func (c *fakeCatalog) ListActiveProducts(ctx context.Context) ([]models.CatalogProduct, error) {
	c.calls.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]models.CatalogProduct(nil), c.products...), nil
}

func testConfig() config.RetrievalConfig {
	cfg := config.DefaultRetrievalConfig()
	cfg.EmbeddingTimeout = 2 * time.Second
	cfg.QueryTimeout = 5 * time.Second
	cfg.RebuildTimeout = 10 * time.Second
	return cfg
}

var curatedTopics = []string{
	"xi mang", "gach", "cat", "da 1x2", "thep", "be tong", "mong", "tuong",
	"giao hang", "doi tra", "bao hanh", "thanh toan", "khuyen mai", "tu van",
}

func newTestEngine(t *testing.T, emb *topicEmbedder, store *Store, opts ...Option) *Engine {
	t.Helper()
	return newTestEngineWith(t, testConfig(), emb, store, opts...)
}

func newTestEngineWith(t *testing.T, cfg config.RetrievalConfig, emb *topicEmbedder, store *Store, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, emb, store, opts...)
	require.NoError(t, err)
	return e
}

func doc(id, category, name, description string, combinations ...string) models.KnowledgeDocument {
	return models.KnowledgeDocument{
		ID:                 id,
		Category:           category,
		Name:               name,
		Description:        description,
		Specifications:     []models.Specification{},
		Pricing:            models.Pricing{BasePrice: 100000, Unit: "bao"},
		Usage:              []string{},
		CommonCombinations: combinations,
		Tips:               []string{},
	}
}

func ids(docs []models.KnowledgeDocument) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

// cementCorpus holds four cement grades plus their usual companions
func cementCorpus() []models.KnowledgeDocument {
	combos := []string{"Cát xây dựng", "Đá 1x2"}
	return []models.KnowledgeDocument{
		doc("kb:c1", "Xi măng", "Xi măng INSEE PC40", "Xi măng mác 400 bền tốt", combos...),
		doc("kb:c2", "Xi măng", "Xi măng INSEE PC30", "Xi măng mác 300 bền tốt", combos...),
		doc("kb:c3", "Xi măng", "Xi măng Hà Tiên PCB40", "Xi măng hỗn hợp bền tốt", combos...),
		doc("kb:c4", "Xi măng", "Xi măng Nghi Sơn PCB30", "Xi măng giá rẻ bền tốt", combos...),
		doc("kb:sand", "Cát", "Cát xây dựng", "Cát sạch hạt to"),
		doc("kb:stone", "Đá", "Đá 1x2", "Đá dăm trộn bê tông"),
		doc("kb:ship", "Chính sách", "Chính sách giao hàng", "Phí giao hàng nội thành"),
	}
}
