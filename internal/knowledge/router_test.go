package knowledge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchIntent(t *testing.T) {
	tests := []struct {
		query  string
		intent string
	}{
		{"Shop có freeship không?", "shipping"},
		{"Phí vận chuyển về Thủ Đức?", "shipping"},
		{"Tôi muốn đổi trả hàng", "return"},
		{"Hàng giao bị lỗi thì hoàn tiền không?", "return"},
		{"Bảo hành thép thế nào", "warranty"},
		{"Chuyển khoản qua ngân hàng nào?", "payment"},
		{"Đang có khuyến mãi gì không", "promotion"},
		{"Có voucher không shop", "promotion"},
		{"Dịch vụ tư vấn có mất phí không", "consulting"},
		{"Quy trình xây nhà gồm những gì", "home_building"},
		// Earlier matchers win
		{"thanh toán khi giao hàng được không", "shipping"},
		{"trả hàng có được hoàn tiền và bảo hành không", "return"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r, ok := matchIntent(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.intent, r.intent)
		})
	}

	for _, q := range []string{"xi măng nào tốt", "giá gạch đinh", "cần tư vấn xi măng đổ móng", ""} {
		_, ok := matchIntent(q)
		assert.False(t, ok, q)
	}
}

func TestRewriteUseCase(t *testing.T) {
	assert.Equal(t, "xi măng cho xây nhà ở", RewriteUseCase("Xây nhà"))
	assert.Equal(t, "xi măng cho xây nhà ở", RewriteUseCase("  xây   nhà? "))
	assert.Equal(t, "gạch xây tường và xi măng PC30", RewriteUseCase("xây tường"))

	// Exact phrase only, longer sentences pass through untouched
	long := "xây nhà 3 tầng cần bao nhiêu xi măng"
	assert.Equal(t, long, RewriteUseCase(long))
}

func TestRouteEveryPolicyTargetsCuratedDocument(t *testing.T) {
	e := newTestEngine(t, newTopicEmbedder(curatedTopics...), NewStore(CuratedCorpus(), nil))
	ctx := context.Background()

	for _, r := range intentRoutes {
		docs := e.Route(ctx, r.triggers[0])
		require.Len(t, docs, 1, r.intent)
		assert.Equal(t, r.documentID, docs[0].ID)
	}
}

func TestRouteFallsBackToSubQuery(t *testing.T) {
	corpus := cementCorpus() // its shipping document has no fixed id
	e := newTestEngine(t, newTopicEmbedder(cementTopics...), NewStore(corpus, nil))

	docs := e.Route(context.Background(), "có freeship không")
	assert.Equal(t, []string{"kb:ship"}, ids(docs))
}
