package models

// KnowledgeDocument is the unit of retrieval. Curated entries and live catalog
// rows are both mapped into this shape.
type KnowledgeDocument struct {
	ID                 string          `json:"id"`
	Category           string          `json:"category"`
	Name               string          `json:"name"`
	Brand              string          `json:"brand,omitempty"`
	Supplier           string          `json:"supplier,omitempty"`
	Description        string          `json:"description"`
	Specifications     []Specification `json:"specifications"`
	Pricing            Pricing         `json:"pricing"`
	Usage              []string        `json:"usage"`
	Quality            string          `json:"quality"`
	CommonCombinations []string        `json:"common_combinations"`
	Tips               []string        `json:"tips"`
	Warnings           []string        `json:"warnings,omitempty"`
	Alternatives       []string        `json:"alternatives,omitempty"`
}

// Specification is one attribute of an ordered specification list.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Pricing holds the base price and optional bulk discount tiers.
// Tiers are declared by ascending MinQuantity but nothing enforces it.
type Pricing struct {
	BasePrice    float64        `json:"base_price"`
	Unit         string         `json:"unit"`
	BulkDiscount []BulkDiscount `json:"bulk_discount,omitempty"`
}

// BulkDiscount is a quantity threshold and the discount it unlocks.
type BulkDiscount struct {
	MinQuantity     int     `json:"min_quantity"`
	DiscountPercent float64 `json:"discount_percent"`
}

// DisplayBrand returns the brand, falling back to the supplier.
func (d KnowledgeDocument) DisplayBrand() string {
	if d.Brand != "" {
		return d.Brand
	}
	return d.Supplier
}
