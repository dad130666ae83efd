package knowledge

import (
	"context"
	"strings"

	"material-advisor/internal/logger"
	"material-advisor/models"
	"material-advisor/utils"
)

type intentRoute struct {
	intent        string
	triggers      []string // normalized phrases, matched as substrings
	documentID    string
	fallbackQuery string
}

// intentRoutes are evaluated in order; the first match wins
var intentRoutes = []intentRoute{
	{
		intent:        "return",
		triggers:      []string{"doi tra", "tra hang", "hoan tien", "doi hang"},
		documentID:    IDPolicyReturn,
		fallbackQuery: "Chính sách đổi trả",
	},
	{
		intent:        "shipping",
		triggers:      []string{"giao hang", "van chuyen", "freeship", "phi ship"},
		documentID:    IDPolicyShipping,
		fallbackQuery: "Chính sách giao hàng",
	},
	{
		intent:        "warranty",
		triggers:      []string{"bao hanh", "hang loi"},
		documentID:    IDPolicyWarranty,
		fallbackQuery: "Chính sách bảo hành",
	},
	{
		intent:        "payment",
		triggers:      []string{"thanh toan", "chuyen khoan", "tra tien"},
		documentID:    IDPolicyPayment,
		fallbackQuery: "Chính sách thanh toán",
	},
	{
		intent:        "promotion",
		triggers:      []string{"khuyen mai", "giam gia", "uu dai", "voucher"},
		documentID:    IDPolicyPromotion,
		fallbackQuery: "Chương trình khuyến mãi",
	},
	{
		intent:        "consulting",
		triggers:      []string{"dich vu tu van", "tu van mien phi", "ho tro tu van"},
		documentID:    IDServiceConsulting,
		fallbackQuery: "Dịch vụ tư vấn xây dựng",
	},
	{
		intent:        "home_building",
		triggers:      []string{"quy trinh xay nha", "cac buoc xay nha", "xay nha can gi"},
		documentID:    IDGuideHomeBuilding,
		fallbackQuery: "Quy trình xây nhà cơ bản",
	},
}

// useCaseRewrites expand bare use-case phrases. Keys must equal the whole
// normalized query.
var useCaseRewrites = map[string]string{
	"xay nha":    "xi măng cho xây nhà ở",
	"do mong":    "xi măng đá 1x2 cát xây dựng đổ móng",
	"xay tuong":  "gạch xây tường và xi măng PC30",
	"trat tuong": "cát vàng và xi măng trát tường",
	"do be tong": "xi măng PC40 đá 1x2 trộn bê tông",
	"lat nen":    "vữa lát nền cát vàng xi măng",
}

// matchIntent returns the first route whose trigger occurs in the query
func matchIntent(rawQuery string) (intentRoute, bool) {
	q := utils.CollapseSpaces(rawQuery)
	for _, r := range intentRoutes {
		for _, trigger := range r.triggers {
			if strings.Contains(q, trigger) {
				return r, true
			}
		}
	}
	return intentRoute{}, false
}

// RewriteUseCase returns the expanded query for a bare use-case phrase, or the
// query unchanged.
func RewriteUseCase(rawQuery string) string {
	if rewritten, ok := useCaseRewrites[utils.CollapseSpaces(rawQuery)]; ok {
		return rewritten
	}
	return rawQuery
}

// Route answers fixed-purpose queries with their target document. A nil result
// means no intent matched and generic retrieval should run.
func (e *Engine) Route(ctx context.Context, rawQuery string) []models.KnowledgeDocument {
	return e.routeSnapshot(ctx, e.load(ctx), rawQuery)
}

func (e *Engine) routeSnapshot(ctx context.Context, snap *snapshot, rawQuery string) []models.KnowledgeDocument {
	r, ok := matchIntent(rawQuery)
	if !ok {
		return nil
	}

	if snap != nil {
		if doc, found := snap.document(r.documentID); found {
			e.metrics.RecordIntentRoute(r.intent)
			return []models.KnowledgeDocument{doc}
		}
	}

	// Target missing from this cycle, e.g. a trimmed corpus: look it up by name
	hits, err := e.searchSnapshot(ctx, snap, r.fallbackQuery, 1)
	if err != nil {
		logger.Warn("Intent fallback search failed", "intent", r.intent, "error", err)
		return nil
	}
	if len(hits) == 0 {
		return nil
	}
	e.metrics.RecordIntentRoute(r.intent)
	return documentsOf(hits)
}
