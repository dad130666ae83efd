package knowledge

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"material-advisor/internal/catalog"
	"material-advisor/internal/logger"
	"material-advisor/models"
	"material-advisor/utils"
)

// categoryCombinations infers commonCombinations for catalog rows, which carry
// none of their own. Keys are normalized category names, matched in order.
var categoryCombinations = []struct {
	category string
	keywords []string
}{
	{"xi mang", []string{"Cát xây dựng", "Đá 1x2", "Thép xây dựng"}},
	{"gach", []string{"Xi măng PC30", "Cát vàng", "Vữa trát"}},
	{"cat", []string{"Xi măng", "Đá 1x2", "Gạch"}},
	{"da", []string{"Xi măng PCB40", "Cát xây dựng", "Thép xây dựng"}},
	{"thep", []string{"Xi măng PCB40", "Đá 1x2", "Dây kẽm buộc"}},
	{"son", []string{"Bột trét", "Sơn lót chống kiềm"}},
	{"chong tham", []string{"Xi măng", "Sơn nước"}},
	{"ton", []string{"Xà gồ thép", "Vít bắn tôn"}},
}

func combinationsFor(category string) []string {
	c := utils.CollapseSpaces(category)
	for _, entry := range categoryCombinations {
		if c == entry.category || strings.HasPrefix(c, entry.category+" ") {
			return append([]string{}, entry.keywords...)
		}
	}
	return []string{}
}

// fromCatalogRow maps a live catalog product into the shared document shape
func fromCatalogRow(p models.CatalogProduct) models.KnowledgeDocument {
	var specs []models.Specification
	if p.Weight != nil && *p.Weight > 0 {
		specs = append(specs, models.Specification{
			Name:  "Trọng lượng",
			Value: strconv.FormatFloat(*p.Weight, 'f', -1, 64) + "kg",
		})
	}
	if p.Dimensions != "" {
		specs = append(specs, models.Specification{Name: "Kích thước", Value: p.Dimensions})
	}
	if specs == nil {
		specs = []models.Specification{}
	}

	return models.KnowledgeDocument{
		ID:                 p.ID.Hex(),
		Category:           p.CategoryName,
		Name:               p.Name,
		Description:        p.Description,
		Specifications:     specs,
		Pricing:            models.Pricing{BasePrice: p.Price, Unit: p.Unit},
		Usage:              append([]string{}, p.Tags...),
		Quality:            "Hàng chính hãng đang kinh doanh tại cửa hàng",
		CommonCombinations: combinationsFor(p.CategoryName),
		Tips:               []string{},
	}
}

// Store merges the curated corpus with a snapshot of the live catalog
type Store struct {
	corpus  []models.KnowledgeDocument
	catalog catalog.ProductCatalog
}

// NewStore builds a document store. catalog may be nil when the live catalog
// is disabled.
func NewStore(corpus []models.KnowledgeDocument, source catalog.ProductCatalog) *Store {
	return &Store{corpus: corpus, catalog: source}
}

// LoadAll returns the curated corpus followed by the catalog snapshot. A
// catalog failure is logged and the curated corpus is returned alone.
func (s *Store) LoadAll(ctx context.Context) []models.KnowledgeDocument {
	docs := make([]models.KnowledgeDocument, 0, len(s.corpus))
	docs = append(docs, s.corpus...)

	if s.catalog == nil {
		return docs
	}

	products, err := s.catalog.ListActiveProducts(ctx)
	if err != nil {
		logger.Warn("Falling back to curated corpus",
			"error", fmt.Errorf("%w: %w", ErrCatalogUnavailable, err),
			"curated_documents", len(docs),
		)
		return docs
	}

	for _, p := range products {
		docs = append(docs, fromCatalogRow(p))
	}
	logger.Debug("Catalog snapshot loaded", "products", len(products), "documents", len(docs))
	return docs
}
