package knowledge

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"material-advisor/models"
)

const assistantInstructions = `HƯỚNG DẪN TRẢ LỜI:
1. Chỉ trả lời dựa trên thông tin sản phẩm ở trên, giá cả phải CHÍNH XÁC, tuyệt đối không bịa giá.
2. Nếu có nhiều sản phẩm cùng danh mục, hãy liệt kê TẤT CẢ kèm so sánh giá và đặc điểm, không tự chọn giúp khách một sản phẩm duy nhất.
3. Với câu hỏi về mục đích sử dụng (xây nhà, đổ móng, xây tường...), hãy đưa ra lựa chọn phù hợp ngay, không hỏi lại khách trước.
4. Chỉ gợi ý sản phẩm mua kèm SAU KHI đã trả lời xong câu hỏi chính.
5. Nếu khách hỏi sản phẩm không có trong danh sách, hãy gợi ý sản phẩm tương tự hoặc mời khách liên hệ nhân viên.`

const fewShotExamples = `VÍ DỤ:
Khách: "Xi măng nào tốt?"
Trả lời tốt: "Dạ, cửa hàng có các loại xi măng sau:
- Xi măng INSEE PC40: 135.000đ/bao 50kg, mác 400, phù hợp đổ móng, cột, dầm.
- Xi măng Hà Tiên PCB40: 125.000đ/bao 50kg, chất lượng tương đương INSEE, giá tốt hơn.
Anh/chị dùng cho hạng mục nào để em tư vấn số lượng ạ? Đổ bê tông móng thường dùng kèm cát xây dựng và đá 1x2."
Trả lời chưa tốt: "Anh/chị cần xi măng để làm gì ạ?" (hỏi lại khi đã có sẵn thông tin để trả lời)`

// Assemble renders the documents, the customer's question and the answering
// instructions into one context block. With no documents the query is
// returned unchanged.
func Assemble(query string, docs []models.KnowledgeDocument) string {
	if len(docs) == 0 {
		return query
	}

	var sb strings.Builder
	sb.WriteString("Dựa trên thông tin sản phẩm CỤ THỂ của cửa hàng dưới đây để trả lời khách hàng:\n\n")

	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}
		writeDocument(&sb, i+1, doc)
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString("Câu hỏi của khách hàng: ")
	sb.WriteString(query)
	sb.WriteString("\n\n")
	sb.WriteString(assistantInstructions)
	sb.WriteString("\n\n")
	sb.WriteString(fewShotExamples)
	sb.WriteString("\n")
	return sb.String()
}

func writeDocument(sb *strings.Builder, n int, doc models.KnowledgeDocument) {
	fmt.Fprintf(sb, "[%d] **%s**", n, doc.Name)
	if b := doc.DisplayBrand(); b != "" {
		fmt.Fprintf(sb, " (%s)", b)
	}
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Danh mục: %s\n", doc.Category)

	if doc.Pricing.BasePrice > 0 {
		fmt.Fprintf(sb, "Giá: %s/%s\n", formatVND(doc.Pricing.BasePrice), doc.Pricing.Unit)
	}
	if len(doc.Pricing.BulkDiscount) > 0 {
		tiers := make([]string, 0, len(doc.Pricing.BulkDiscount))
		for _, d := range doc.Pricing.BulkDiscount {
			tiers = append(tiers, fmt.Sprintf("%d+ = -%s%%", d.MinQuantity, formatPercent(d.DiscountPercent)))
		}
		fmt.Fprintf(sb, "Giảm giá số lượng lớn: %s\n", strings.Join(tiers, ", "))
	}

	fmt.Fprintf(sb, "Mô tả: %s\n", doc.Description)
	if doc.Quality != "" {
		fmt.Fprintf(sb, "Chất lượng: %s\n", doc.Quality)
	}

	if len(doc.Specifications) > 0 {
		sb.WriteString("Thông số:\n")
		for _, s := range doc.Specifications {
			fmt.Fprintf(sb, "- %s: %s\n", s.Name, s.Value)
		}
	}
	writeList(sb, "Công dụng:", doc.Usage)
	writeList(sb, "Mẹo hay:", doc.Tips)

	if len(doc.Warnings) > 0 {
		fmt.Fprintf(sb, "Lưu ý: %s\n", strings.Join(doc.Warnings, ", "))
	}
	if len(doc.CommonCombinations) > 0 {
		fmt.Fprintf(sb, "Thường mua kèm: %s\n", strings.Join(doc.CommonCombinations, ", "))
	}
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title)
	sb.WriteString("\n")
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}

// FormatProduct renders a short product card for a chat reply
func FormatProduct(doc models.KnowledgeDocument) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n", doc.Name)
	if doc.Brand != "" {
		fmt.Fprintf(&sb, "Thương hiệu: %s\n", doc.Brand)
	}
	fmt.Fprintf(&sb, "Giá: %s/%s\n\n", formatVND(doc.Pricing.BasePrice), doc.Pricing.Unit)
	fmt.Fprintf(&sb, "%s\n\n", doc.Description)

	if len(doc.Pricing.BulkDiscount) > 0 {
		sb.WriteString("💰 Giảm giá số lượng lớn:\n")
		for _, d := range doc.Pricing.BulkDiscount {
			fmt.Fprintf(&sb, "- Từ %d %s: Giảm %s%%\n", d.MinQuantity, doc.Pricing.Unit, formatPercent(d.DiscountPercent))
		}
		sb.WriteString("\n")
	}

	if len(doc.Usage) > 0 {
		sb.WriteString("📋 Công dụng:\n")
		for _, u := range firstN(doc.Usage, 3) {
			fmt.Fprintf(&sb, "- %s\n", u)
		}
		sb.WriteString("\n")
	}

	if len(doc.Tips) > 0 {
		sb.WriteString("💡 Mẹo hay:\n")
		for _, t := range firstN(doc.Tips, 2) {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
	}
	return sb.String()
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// formatVND renders a price the vi-VN way: 135000 -> "135.000đ"
func formatVND(amount float64) string {
	v := int64(math.Round(amount))
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	digits := strconv.FormatInt(v, 10)
	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	return sign + sb.String() + "đ"
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
