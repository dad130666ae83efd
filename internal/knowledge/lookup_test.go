package knowledge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookups(t *testing.T) {
	emb := newTopicEmbedder(curatedTopics...)
	e := newTestEngine(t, emb, NewStore(CuratedCorpus(), nil))
	ctx := context.Background()

	assert.Equal(t, []string{"Xi măng", "Gạch", "Đá", "Cát", "Tư vấn", "Chính sách", "Dịch vụ"}, e.Categories(ctx))
	assert.Equal(t, []string{"INSEE", "Hà Tiên", "Store Policy", "Store Service"}, e.Brands(ctx))

	assert.Len(t, e.DocumentsByCategory(ctx, "xi mang"), 4)
	assert.Len(t, e.DocumentsByCategory(ctx, "CÁT"), 2)
	assert.Empty(t, e.DocumentsByCategory(ctx, "sơn"))

	assert.Equal(t, []string{"kb:cement_hatien_pcb40", "kb:cement_hatien_pc30"}, ids(e.DocumentsByBrand(ctx, "ha tien")))
	assert.Empty(t, e.DocumentsByBrand(ctx, ""))

	d, err := e.Document(ctx, IDPolicyReturn)
	require.NoError(t, err)
	assert.Equal(t, "Chính sách đổi trả", d.Name)

	_, err = e.Document(ctx, "kb:missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestCrossSell(t *testing.T) {
	emb := newTopicEmbedder(curatedTopics...)
	e := newTestEngine(t, emb, NewStore(CuratedCorpus(), nil))
	ctx := context.Background()
	require.NoError(t, e.Refresh(ctx))
	before := emb.calls.Load()

	docs, err := e.CrossSell(ctx, "kb:cement_insee_pc40", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"kb:sand_construction", "kb:stone_1x2"}, ids(docs))
	assert.Equal(t, before, emb.calls.Load(), "cross-sell must not embed")

	docs, err = e.CrossSell(ctx, "kb:guide_home_building", 3)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.NotContains(t, ids(docs), "kb:guide_home_building")

	_, err = e.CrossSell(ctx, "kb:missing", 5)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
