package knowledge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"material-advisor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var cementTopics = []string{"xi mang", "cat", "da 1x2", "giao hang"}

func TestNewEngineValidates(t *testing.T) {
	cfg := testConfig()
	cfg.RebuildConcurrency = 0
	_, err := NewEngine(cfg, newTopicEmbedder(), NewStore(nil, nil))
	assert.Error(t, err)

	_, err = NewEngine(testConfig(), nil, NewStore(nil, nil))
	assert.Error(t, err)
}

func TestEmptyCorpus(t *testing.T) {
	emb := newTopicEmbedder(cementTopics...)
	e := newTestEngine(t, emb, NewStore(nil, nil))
	ctx := context.Background()

	docs, err := e.Search(ctx, "xi măng", 4)
	require.NoError(t, err)
	assert.Empty(t, docs)

	recs, err := e.Recommend(ctx, "xi măng", 5)
	require.NoError(t, err)
	assert.Empty(t, recs)

	assert.Equal(t, "bất kỳ câu hỏi", Assemble("bất kỳ câu hỏi", nil))
	assert.Equal(t, "Shop có freeship không?", e.AugmentPrompt(ctx, "Shop có freeship không?"))
	assert.Equal(t, int32(0), emb.calls.Load(), "empty index must not call the embedder")

	st := e.Status()
	assert.True(t, st.Initialized)
	assert.Zero(t, st.DocumentCount)
}

func TestSearchRespectsTopK(t *testing.T) {
	e := newTestEngine(t, newTopicEmbedder(curatedTopics...), NewStore(CuratedCorpus(), nil))
	ctx := context.Background()

	for _, k := range []int{1, 2, 3} {
		docs, err := e.Search(ctx, "xi măng", k)
		require.NoError(t, err)
		assert.Len(t, docs, k)
		assert.Equal(t, "Xi măng", docs[0].Category)
	}

	for _, q := range []string{"gạch", "thép", "cát vàng", "zzz", ""} {
		docs, err := e.Search(ctx, q, 2)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(docs), 2, q)
	}
}

func TestRecommendFindsAllCementGrades(t *testing.T) {
	e := newTestEngine(t, newTopicEmbedder(cementTopics...), NewStore(cementCorpus(), nil))

	recs, err := e.Recommend(context.Background(), "xi măng tốt", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"kb:c1", "kb:c2", "kb:c3", "kb:c4", "kb:sand"}, ids(recs))
}

// Production ranks the shipped corpus with real embeddings. Under the topic
// embedder INSEE PC30 never says "tốt" and loses its primary slot to the
// consulting service, which does; this pins that ranking.
func TestRecommendCementOnShippedCorpus(t *testing.T) {
	e := newTestEngine(t, newTopicEmbedder(curatedTopics...), NewStore(CuratedCorpus(), nil))

	recs, err := e.Recommend(context.Background(), "xi măng tốt", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"kb:cement_hatien_pc30",
		"kb:cement_hatien_pcb40",
		IDServiceConsulting,
		"kb:cement_insee_pc40",
		"kb:sand_yellow",
	}, ids(recs))
}

func TestRecommendPrimaryFirstNoDuplicates(t *testing.T) {
	corpus := cementCorpus()
	// A combination that resolves to a primary hit must not be repeated
	corpus[0].CommonCombinations = []string{"Xi măng INSEE PC30", "Cát xây dựng", "Đá 1x2"}
	e := newTestEngine(t, newTopicEmbedder(cementTopics...), NewStore(corpus, nil))
	ctx := context.Background()

	recs, err := e.Recommend(ctx, "xi măng tốt", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"kb:c1", "kb:c2", "kb:c3", "kb:c4", "kb:sand", "kb:stone"}, ids(recs))

	seen := map[string]bool{}
	for _, id := range ids(recs) {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}

	recs, err = e.Recommend(ctx, "xi măng tốt", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"kb:c1", "kb:c2", "kb:c3"}, ids(recs))

	recs, err = e.Recommend(ctx, "Cát xây dựng", 0)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "kb:sand", recs[0].ID)
}

func TestRouteShippingReturnsOnlyPolicy(t *testing.T) {
	e := newTestEngine(t, newTopicEmbedder(curatedTopics...), NewStore(CuratedCorpus(), nil))
	ctx := context.Background()

	// Generic search alone would rank cement documents for this text
	generic, err := e.Search(ctx, "phí ship xi măng", 4)
	require.NoError(t, err)
	require.NotEmpty(t, generic)
	assert.NotEqual(t, IDPolicyShipping, generic[0].ID)

	routed := e.Route(ctx, "phí ship xi măng")
	assert.Equal(t, []string{IDPolicyShipping}, ids(routed))

	docs, err := e.RetrieveContext(ctx, "Giao hàng mất mấy ngày?", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{IDPolicyShipping}, ids(docs))

	assert.Nil(t, e.Route(ctx, "xi măng nào tốt"))
}

func TestAugmentPromptFreeship(t *testing.T) {
	e := newTestEngine(t, newTopicEmbedder(curatedTopics...), NewStore(CuratedCorpus(), nil))

	prompt, docs := e.BuildContext(context.Background(), "Shop có freeship không?")
	assert.Equal(t, []string{IDPolicyShipping}, ids(docs))
	assert.Contains(t, prompt, "Chính sách giao hàng")
	assert.Contains(t, prompt, "Đơn hàng > 5 triệu hoặc < 5km")
	assert.Contains(t, prompt, "Câu hỏi của khách hàng: Shop có freeship không?")
}

func TestAugmentPromptUsesRecommendations(t *testing.T) {
	e := newTestEngine(t, newTopicEmbedder(cementTopics...), NewStore(cementCorpus(), nil))

	prompt := e.AugmentPrompt(context.Background(), "xi măng tốt")
	for _, name := range []string{"Xi măng INSEE PC40", "Xi măng INSEE PC30", "Xi măng Hà Tiên PCB40", "Xi măng Nghi Sơn PCB30", "Cát xây dựng"} {
		assert.Contains(t, prompt, name)
	}
}

func TestQueryEmbeddingFailure(t *testing.T) {
	emb := newTopicEmbedder(cementTopics...)
	e := newTestEngine(t, emb, NewStore(cementCorpus(), nil))
	ctx := context.Background()
	require.NoError(t, e.Refresh(ctx))

	emb.failOn("zzfail")
	_, err := e.Search(ctx, "zzfail xi măng", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)

	_, err = e.Recommend(ctx, "zzfail xi măng", 5)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)

	assert.Equal(t, "zzfail xi măng", e.AugmentPrompt(ctx, "zzfail xi măng"))
}

func TestDocumentEmbeddingFailureDropsDocument(t *testing.T) {
	emb := newTopicEmbedder(curatedTopics...)
	emb.failOn("8x8x18cm")
	e := newTestEngine(t, emb, NewStore(CuratedCorpus(), nil))
	ctx := context.Background()

	docs, err := e.Search(ctx, "gạch đinh", 4)
	require.NoError(t, err)
	assert.NotContains(t, ids(docs), "kb:brick_dinh_standard")

	st := e.Status()
	assert.Equal(t, len(CuratedCorpus()), st.DocumentCount)
	assert.Equal(t, st.DocumentCount-1, st.IndexedCount)

	// Lookups by id still see every loaded document
	d, err := e.Document(ctx, "kb:brick_dinh_standard")
	require.NoError(t, err)
	assert.Equal(t, "Gạch Đinh 8x8x18cm", d.Name)
}

func TestCatalogFailureFallsBackToCorpus(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("connection refused")}
	e := newTestEngine(t, newTopicEmbedder(curatedTopics...), NewStore(CuratedCorpus(), cat))

	docs, err := e.Search(context.Background(), "xi măng", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, docs)
	assert.Equal(t, len(CuratedCorpus()), e.Status().DocumentCount)
	assert.Equal(t, int32(1), cat.calls.Load())
}

func TestCatalogProductsAreSearchable(t *testing.T) {
	id := primitive.NewObjectID()
	weight := 7.22
	cat := &fakeCatalog{}
	cat.set(models.CatalogProduct{
		ID:           id,
		Name:         "Thép Hòa Phát D10",
		Description:  "Thép thanh vằn cho móng và cột",
		Price:        185000,
		Unit:         "cây",
		CategoryName: "Thép",
		Weight:       &weight,
		IsActive:     true,
	})
	e := newTestEngine(t, newTopicEmbedder(curatedTopics...), NewStore(CuratedCorpus(), cat))
	ctx := context.Background()

	docs, err := e.Search(ctx, "thép hòa phát", 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id.Hex(), docs[0].ID)
	assert.Equal(t, []string{"Xi măng PCB40", "Đá 1x2", "Dây kẽm buộc"}, docs[0].CommonCombinations)
	assert.Equal(t, len(CuratedCorpus())+1, e.Status().DocumentCount)
}

func TestLazyRefreshHonorsTTL(t *testing.T) {
	clock := newFakeClock()
	cat := &fakeCatalog{}
	e := newTestEngine(t, newTopicEmbedder(cementTopics...), NewStore(cementCorpus(), cat), WithClock(clock.Now))
	ctx := context.Background()

	assert.False(t, e.Status().Initialized)

	_, err := e.Search(ctx, "xi măng", 4)
	require.NoError(t, err)
	assert.Equal(t, int32(1), cat.calls.Load())
	assert.Equal(t, clock.Now(), e.Status().LastRefreshAt.UTC())

	clock.Advance(30 * time.Minute)
	_, err = e.Search(ctx, "xi măng", 4)
	require.NoError(t, err)
	assert.Equal(t, int32(1), cat.calls.Load())

	clock.Advance(31 * time.Minute)
	_, err = e.Recommend(ctx, "xi măng", 5)
	require.NoError(t, err)
	assert.Equal(t, int32(2), cat.calls.Load())
	assert.Equal(t, clock.Now(), e.Status().LastRefreshAt.UTC())
}

func TestRefreshIsAtomic(t *testing.T) {
	topics := []string{"dulux", "hoa sen"}
	emb := newTopicEmbedder(topics...)
	cat := &fakeCatalog{}
	cat.set(models.CatalogProduct{ID: primitive.NewObjectID(), Name: "Sơn Dulux A", CategoryName: "Sơn", Price: 1, Unit: "thùng"})
	e := newTestEngine(t, emb, NewStore(nil, cat))
	ctx := context.Background()
	require.NoError(t, e.Refresh(ctx))

	names := func(q string) []string {
		docs, err := e.Search(ctx, q, 4)
		require.NoError(t, err)
		out := []string{}
		for _, d := range docs {
			out = append(out, d.Name)
		}
		return out
	}
	before := e.Status()

	cat.set(
		models.CatalogProduct{ID: primitive.NewObjectID(), Name: "Sơn Dulux C", CategoryName: "Sơn", Price: 1, Unit: "thùng"},
		models.CatalogProduct{ID: primitive.NewObjectID(), Name: "Tôn Hoa Sen B", CategoryName: "Tôn", Price: 1, Unit: "tấm"},
	)
	entered, release := emb.block("hoa sen b")

	done := make(chan error, 1)
	go func() { done <- e.Refresh(ctx) }()
	<-entered

	// The new cycle is half embedded; readers must still see only the old one
	assert.Equal(t, []string{"Sơn Dulux A"}, names("sơn dulux"))
	assert.Empty(t, names("tôn hoa sen"))
	assert.Equal(t, before, e.Status())

	release()
	require.NoError(t, <-done)

	assert.Equal(t, []string{"Sơn Dulux C"}, names("sơn dulux"))
	assert.Equal(t, []string{"Tôn Hoa Sen B"}, names("tôn hoa sen"))
}

func TestConcurrentCallersShareOneRebuild(t *testing.T) {
	emb := newTopicEmbedder(cementTopics...)
	emb.delay = 5 * time.Millisecond
	cat := &fakeCatalog{}
	e := newTestEngine(t, emb, NewStore(cementCorpus(), cat))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Search(context.Background(), "xi măng", 4)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), cat.calls.Load())
}

func TestFailedRebuildKeepsPreviousIndex(t *testing.T) {
	clock := newFakeClock()
	emb := newTopicEmbedder(cementTopics...)
	cat := &fakeCatalog{}
	e := newTestEngine(t, emb, NewStore(cementCorpus(), cat), WithClock(clock.Now))
	ctx := context.Background()
	require.NoError(t, e.Refresh(ctx))
	before := e.Status()

	clock.Advance(2 * time.Hour)
	emb.failAll.Store(true)
	require.Error(t, e.Refresh(ctx))

	after := e.Status()
	assert.Equal(t, before.IndexedCount, after.IndexedCount)
	assert.Equal(t, clock.Now(), after.LastRefreshAt.UTC(), "failed rebuild still waits a full TTL")

	emb.failAll.Store(false)
	docs, err := e.Search(ctx, "xi măng", 4)
	require.NoError(t, err)
	assert.Len(t, docs, 4)
	assert.Equal(t, int32(2), cat.calls.Load())
}

func TestFailedFirstBuildRetriesOnNextQuery(t *testing.T) {
	emb := newTopicEmbedder(cementTopics...)
	emb.failAll.Store(true)
	cat := &fakeCatalog{}
	e := newTestEngine(t, emb, NewStore(cementCorpus(), cat))
	ctx := context.Background()

	require.Error(t, e.Refresh(ctx))
	assert.False(t, e.Status().Initialized)

	emb.failAll.Store(false)
	docs, err := e.Search(ctx, "xi măng", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, docs)
	assert.Equal(t, int32(2), cat.calls.Load())
}

func TestUnbuiltIndexIsUnavailable(t *testing.T) {
	emb := newTopicEmbedder(cementTopics...)
	emb.failAll.Store(true)
	e := newTestEngine(t, emb, NewStore(cementCorpus(), nil))
	ctx := context.Background()

	docs, err := e.Search(ctx, "xi măng", 4)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)
	assert.Empty(t, docs)

	_, err = e.Recommend(ctx, "xi măng", 5)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)

	_, err = e.RetrieveContext(ctx, "xi măng", 4)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)

	assert.Equal(t, "xi măng", e.AugmentPrompt(ctx, "xi măng"))
	assert.False(t, e.Status().Initialized)
}

func TestQueryTimeoutDuringFirstBuild(t *testing.T) {
	cfg := testConfig()
	cfg.QueryTimeout = 80 * time.Millisecond
	emb := newTopicEmbedder(cementTopics...)
	entered, release := emb.block("nghi son")
	e := newTestEngineWith(t, cfg, emb, NewStore(cementCorpus(), nil))
	ctx := context.Background()

	_, err := e.Search(ctx, "xi măng", 4)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, e.Status().Initialized)

	<-entered
	release()

	// The rebuild kept running after the caller gave up
	require.NoError(t, e.Refresh(ctx))
	docs, err := e.Search(ctx, "xi măng", 4)
	require.NoError(t, err)
	assert.Len(t, docs, 4)
}

func TestQueryTimeoutBoundsRetrieval(t *testing.T) {
	cfg := testConfig()
	cfg.QueryTimeout = 80 * time.Millisecond
	emb := newTopicEmbedder(cementTopics...)
	e := newTestEngineWith(t, cfg, emb, NewStore(cementCorpus(), nil))
	ctx := context.Background()
	require.NoError(t, e.Refresh(ctx))

	_, release := emb.block("zzslow")
	defer release()

	start := time.Now()
	_, err := e.Search(ctx, "zzslow xi măng", 4)
	assert.ErrorIs(t, err, ErrRetrievalUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, time.Since(start) < time.Second, "search waited %s", time.Since(start))

	assert.Equal(t, "zzslow xi măng", e.AugmentPrompt(ctx, "zzslow xi măng"))
}

func TestSlowDocumentEmbeddingIsDropped(t *testing.T) {
	cfg := testConfig()
	cfg.EmbeddingTimeout = 50 * time.Millisecond
	emb := newTopicEmbedder(cementTopics...)
	_, release := emb.block("nghi son")
	defer release()
	e := newTestEngineWith(t, cfg, emb, NewStore(cementCorpus(), nil))
	ctx := context.Background()

	require.NoError(t, e.Refresh(ctx))
	st := e.Status()
	assert.Equal(t, 7, st.DocumentCount)
	assert.Equal(t, 6, st.IndexedCount)

	docs, err := e.Search(ctx, "xi măng", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"kb:c1", "kb:c2", "kb:c3"}, ids(docs))
}

func TestRebuildRespectsConcurrencyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RebuildConcurrency = 2
	emb := newTopicEmbedder(curatedTopics...)
	emb.delay = 10 * time.Millisecond
	e := newTestEngineWith(t, cfg, emb, NewStore(CuratedCorpus(), nil))

	require.NoError(t, e.Refresh(context.Background()))
	assert.Equal(t, len(CuratedCorpus()), e.Status().IndexedCount)
	assert.LessOrEqual(t, emb.maxInFlight.Load(), int32(2))
	assert.Greater(t, emb.maxInFlight.Load(), int32(1), "embeddings ran one at a time")
}
