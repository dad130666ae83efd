package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"material-advisor/models"
	"material-advisor/utils"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMissingColumn is returned when a price sheet lacks a required column
var ErrMissingColumn = errors.New("missing required column")

// UpsertResult summarises an import run
type UpsertResult struct {
	Inserted int64
	Updated  int64
	Skipped  int
}

// Upsert writes products keyed by SKU. Products without a SKU are skipped.
func (mc *MongoCatalog) Upsert(ctx context.Context, products []models.CatalogProduct) (UpsertResult, error) {
	var res UpsertResult

	writes := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		if p.SKU == "" {
			res.Skipped++
			continue
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"sku": p.SKU}).
			SetUpdate(bson.M{"$set": bson.M{
				"name":          p.Name,
				"description":   p.Description,
				"price":         p.Price,
				"unit":          p.Unit,
				"category_name": p.CategoryName,
				"weight":        p.Weight,
				"dimensions":    p.Dimensions,
				"tags":          p.Tags,
				"is_active":     p.IsActive,
			}}).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return res, nil
	}

	ctx, cancel := utils.WithLongTimeout(ctx)
	defer cancel()

	out, err := mc.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		mc.metrics.RecordDatabaseOperation("bulk_upsert", mc.col.Name(), false)
		return res, fmt.Errorf("failed to upsert products: %w", err)
	}
	mc.metrics.RecordDatabaseOperation("bulk_upsert", mc.col.Name(), true)

	res.Inserted = out.UpsertedCount
	res.Updated = out.ModifiedCount
	return res, nil
}

// sheetColumns maps normalized header names to product fields
var sheetColumns = map[string]string{
	"sku":          "sku",
	"ma":           "sku",
	"ma hang":      "sku",
	"name":         "name",
	"ten":          "name",
	"ten san pham": "name",
	"description":  "description",
	"mo ta":        "description",
	"category":     "category",
	"danh muc":     "category",
	"price":        "price",
	"gia":          "price",
	"unit":         "unit",
	"don vi":       "unit",
	"weight":       "weight",
	"trong luong":  "weight",
	"dimensions":   "dimensions",
	"kich thuoc":   "dimensions",
	"tags":         "tags",
	"active":       "active",
	"dang ban":     "active",
}

// ReadSpreadsheet parses the first sheet of an .xlsx price list. The first
// row holds headers in English or Vietnamese; sku, name, category and price
// are required. Rows without a name are ignored.
func ReadSpreadsheet(r io.Reader) ([]models.CatalogProduct, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []models.CatalogProduct{}, nil
	}

	index := map[string]int{}
	for i, header := range rows[0] {
		if field, ok := sheetColumns[utils.CollapseSpaces(header)]; ok {
			if _, dup := index[field]; !dup {
				index[field] = i
			}
		}
	}
	for _, required := range []string{"sku", "name", "category", "price"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	cell := func(row []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	products := make([]models.CatalogProduct, 0, len(rows)-1)
	for n, row := range rows[1:] {
		name := cell(row, "name")
		if name == "" {
			continue
		}
		line := n + 2

		price, err := parseNumber(cell(row, "price"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price: %w", line, err)
		}

		p := models.CatalogProduct{
			SKU:          cell(row, "sku"),
			Name:         name,
			Description:  cell(row, "description"),
			Price:        price,
			Unit:         cell(row, "unit"),
			CategoryName: cell(row, "category"),
			Dimensions:   cell(row, "dimensions"),
			Tags:         splitTags(cell(row, "tags")),
			IsActive:     parseActive(cell(row, "active")),
		}
		if w := cell(row, "weight"); w != "" {
			weight, err := parseNumber(w)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid weight: %w", line, err)
			}
			p.Weight = &weight
		}
		products = append(products, p)
	}
	return products, nil
}

// parseNumber accepts plain numbers and grouped prices ("135.000", "135,000")
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "đ"))
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !groupedThousands(s) {
		return v, nil
	}
	return strconv.ParseFloat(strings.NewReplacer(".", "", ",", "").Replace(s), 64)
}

// groupedThousands reports a value like "135.000" whose separators group thousands
func groupedThousands(s string) bool {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == ',' })
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseActive treats an empty cell as active
func parseActive(s string) bool {
	switch utils.CollapseSpaces(s) {
	case "", "1", "true", "yes", "x", "co":
		return true
	}
	return false
}
