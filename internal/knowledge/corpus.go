package knowledge

import "material-advisor/models"

// CuratedIDPrefix namespaces curated ids away from catalog ObjectIDs
const CuratedIDPrefix = "kb:"

// Fixed ids targeted by the intent router
const (
	IDPolicyShipping    = CuratedIDPrefix + "policy_shipping"
	IDPolicyReturn      = CuratedIDPrefix + "policy_return"
	IDPolicyWarranty    = CuratedIDPrefix + "policy_warranty"
	IDPolicyPayment     = CuratedIDPrefix + "policy_payment"
	IDPolicyPromotion   = CuratedIDPrefix + "policy_promotion"
	IDServiceConsulting = CuratedIDPrefix + "service_consulting"
	IDGuideHomeBuilding = CuratedIDPrefix + "guide_home_building"
)

type curatedEntry struct {
	key          string
	category     string
	name         string
	brand        string
	supplier     string
	description  string
	specs        []models.Specification
	price        float64
	unit         string
	tiers        []models.BulkDiscount
	usage        []string
	quality      string
	combinations []string
	tips         []string
	warnings     []string
	alternatives []string
}

// fromCuratedEntry maps a corpus entry into the shared document shape. Slices
// are copied so callers cannot mutate the corpus.
func fromCuratedEntry(e curatedEntry) models.KnowledgeDocument {
	return models.KnowledgeDocument{
		ID:             CuratedIDPrefix + e.key,
		Category:       e.category,
		Name:           e.name,
		Brand:          e.brand,
		Supplier:       e.supplier,
		Description:    e.description,
		Specifications: append([]models.Specification{}, e.specs...),
		Pricing: models.Pricing{
			BasePrice:    e.price,
			Unit:         e.unit,
			BulkDiscount: append([]models.BulkDiscount(nil), e.tiers...),
		},
		Usage:              append([]string{}, e.usage...),
		Quality:            e.quality,
		CommonCombinations: append([]string{}, e.combinations...),
		Tips:               append([]string{}, e.tips...),
		Warnings:           append([]string(nil), e.warnings...),
		Alternatives:       append([]string(nil), e.alternatives...),
	}
}

// CuratedCorpus returns a fresh copy of the hand-authored documents
func CuratedCorpus() []models.KnowledgeDocument {
	docs := make([]models.KnowledgeDocument, 0, len(curatedEntries))
	for _, e := range curatedEntries {
		docs = append(docs, fromCuratedEntry(e))
	}
	return docs
}

func spec(name, value string) models.Specification {
	return models.Specification{Name: name, Value: value}
}

func tier(minQuantity int, percent float64) models.BulkDiscount {
	return models.BulkDiscount{MinQuantity: minQuantity, DiscountPercent: percent}
}

var curatedEntries = []curatedEntry{
	// Xi măng
	{
		key:         "cement_insee_pc40",
		category:    "Xi măng",
		name:        "Xi măng INSEE PC40",
		brand:       "INSEE",
		supplier:    "INSEE Việt Nam",
		description: "Xi măng Portland hỗn hợp PCB40 của INSEE, chất lượng cao, độ bền tốt, phù hợp cho các công trình dân dụng và công nghiệp.",
		specs: []models.Specification{
			spec("Mác", "PC40 (Mác 400)"),
			spec("Trọng lượng", "50kg"),
			spec("Tiêu chuẩn", "TCVN 2682:2009"),
			spec("Thời gian ninh kết", "45-60 phút"),
			spec("Màu sắc", "Xám"),
		},
		price: 135000,
		unit:  "bao 50kg",
		tiers: []models.BulkDiscount{tier(50, 3), tier(100, 5), tier(300, 8)},
		usage: []string{
			"Xây móng (bê tông mác 200-250)",
			"Đổ cột, dầm, sàn chịu lực",
			"Xây tường chịu lực",
			"Công trình cần độ bền cao",
		},
		quality:      "Cao cấp - Thương hiệu uy tín số 1 Thái Lan tại Việt Nam",
		combinations: []string{"Cát xây dựng loại I", "Đá 1x2", "Thép D10-D16", "Phụ gia giảm nước"},
		tips: []string{
			"Tỷ lệ trộn bê tông M200: 1 Xi măng : 2.19 Cát : 3.76 Đá : 0.62 Nước",
			"1 bao xi măng 50kg trộn được khoảng 0.18m³ bê tông M200",
			"Bảo quản nơi khô ráo, tránh ẩm",
			"Sử dụng trong vòng 30 ngày sau khi mua",
		},
		warnings: []string{
			"Không pha loãng quá nhiều nước",
			"Đảm bảo tỷ lệ cát/đá chính xác",
			"Rung đầm kỹ khi đổ bê tông",
		},
		alternatives: []string{"Xi măng INSEE PC30", "Xi măng Hà Tiên PCB40"},
	},
	{
		key:         "cement_insee_pc30",
		category:    "Xi măng",
		name:        "Xi măng INSEE PC30",
		brand:       "INSEE",
		supplier:    "INSEE Việt Nam",
		description: "Xi măng Portland PC30 của INSEE, phù hợp cho xây tô, vữa trát, các công trình dân dụng thông thường.",
		specs: []models.Specification{
			spec("Mác", "PC30 (Mác 300)"),
			spec("Trọng lượng", "50kg"),
			spec("Tiêu chuẩn", "TCVN 2682:2009"),
			spec("Thời gian ninh kết", "45-60 phút"),
			spec("Màu sắc", "Xám"),
		},
		price: 120000,
		unit:  "bao 50kg",
		tiers: []models.BulkDiscount{tier(50, 3), tier(100, 5), tier(300, 8)},
		usage: []string{
			"Xây tường gạch",
			"Trát tường, trát trần",
			"Đổ mái lợp",
			"Vữa lát nền",
		},
		quality:      "Tiêu chuẩn - Phù hợp công trình dân dụng",
		combinations: []string{"Cát vàng", "Gạch 4 lỗ", "Gạch ống", "Gạch đinh"},
		tips: []string{
			"Tỷ lệ vữa xây: 1 Xi măng : 4-5 Cát",
			"Tỷ lệ vữa trát: 1 Xi măng : 3 Cát",
			"1 bao xi măng xây được khoảng 60-70 viên gạch",
			"Ngâm nước gạch trước khi xây",
		},
		alternatives: []string{"Xi măng Hà Tiên PC30"},
	},
	{
		key:         "cement_hatien_pcb40",
		category:    "Xi măng",
		name:        "Xi măng Hà Tiên PCB40",
		brand:       "Hà Tiên",
		supplier:    "Xi măng Hà Tiên",
		description: "Xi măng Portland hỗn hợp PCB40 của Hà Tiên, thương hiệu Việt Nam uy tín, giá cạnh tranh.",
		specs: []models.Specification{
			spec("Mác", "PCB40 (Mác 400)"),
			spec("Trọng lượng", "50kg"),
			spec("Tiêu chuẩn", "TCVN 2682:2009"),
			spec("Thời gian ninh kết", "45-60 phút"),
			spec("Màu sắc", "Xám nhạt"),
		},
		price: 125000,
		unit:  "bao 50kg",
		tiers: []models.BulkDiscount{tier(50, 3), tier(100, 5), tier(300, 7)},
		usage: []string{
			"Xây móng (bê tông mác 200-250)",
			"Đổ cột, dầm, sàn",
			"Công trình dân dụng và công nghiệp",
			"Xây tường chịu lực",
		},
		quality:      "Cao - Thương hiệu Việt Nam uy tín, giá tốt hơn INSEE",
		combinations: []string{"Cát xây dựng", "Đá 1x2", "Thép xây dựng", "Phụ gia"},
		tips: []string{
			"Chất lượng tương đương INSEE, giá rẻ hơn 5-10%",
			"Phù hợp cho khách hàng cần tối ưu chi phí",
			"Tỷ lệ trộn tương tự INSEE PC40",
		},
		alternatives: []string{"Xi măng INSEE PC40"},
	},
	{
		key:         "cement_hatien_pc30",
		category:    "Xi măng",
		name:        "Xi măng Hà Tiên PC30",
		brand:       "Hà Tiên",
		supplier:    "Xi măng Hà Tiên",
		description: "Xi măng Portland PC30 của Hà Tiên, dùng cho xây tô, giá thành hợp lý.",
		specs: []models.Specification{
			spec("Mác", "PC30 (Mác 300)"),
			spec("Trọng lượng", "50kg"),
			spec("Tiêu chuẩn", "TCVN 2682:2009"),
			spec("Thời gian ninh kết", "45-60 phút"),
			spec("Màu sắc", "Xám nhạt"),
		},
		price: 110000,
		unit:  "bao 50kg",
		tiers: []models.BulkDiscount{tier(50, 3), tier(100, 5), tier(300, 7)},
		usage: []string{
			"Xây tường gạch",
			"Trát tường",
			"Vữa lát",
			"Công trình dân dụng thông thường",
		},
		quality:      "Tiêu chuẩn - Giá rẻ nhất trong các loại xi măng",
		combinations: []string{"Cát vàng", "Gạch các loại"},
		tips: []string{
			"Lựa chọn tốt nhất cho tối ưu chi phí",
			"Chất lượng ổn định, đủ tiêu chuẩn",
		},
		alternatives: []string{"Xi măng INSEE PC30"},
	},

	// Gạch
	{
		key:         "brick_dinh_standard",
		category:    "Gạch",
		name:        "Gạch Đinh 8x8x18cm",
		supplier:    "Tùy nhà cung cấp",
		description: "Gạch đinh (gạch 4 lỗ) kích thước 8x8x18cm, dùng phổ biến cho xây tường ngăn, tường bao, không chịu lực.",
		specs: []models.Specification{
			spec("Kích thước", "8cm x 8cm x 18cm"),
			spec("Số lỗ", "4"),
			spec("Trọng lượng", "1.3kg/viên"),
			spec("Mác", "Mác 50"),
			spec("Độ hút nước", "<15%"),
		},
		price: 2200,
		unit:  "viên",
		tiers: []models.BulkDiscount{tier(1000, 3), tier(5000, 5), tier(10000, 8)},
		usage: []string{
			"Xây tường ngăn phòng",
			"Xây tường bao",
			"Xây tường không chịu lực",
			"Công trình dân dụng",
		},
		quality:      "Phụ thuộc nhà cung cấp - Có 3 cấp: Loại 1 (tốt nhất), Loại 2 (trung bình), Loại 3 (giá rẻ)",
		combinations: []string{"Xi măng PC30", "Cát vàng", "Vữa trát"},
		tips: []string{
			"Tính toán: 65 viên/m² tường dày 100mm",
			"Cộng thêm 3-5% hao hụt",
			"Ngâm nước 30 phút trước khi xây",
			"Kiểm tra độ cong vênh, rạn nứt trước khi mua",
			"Xếp không quá 10 viên để tránh vỡ",
		},
		warnings: []string{
			"Gạch loại 3 dễ vỡ, không nên dùng cho công trình quan trọng",
			"Kiểm tra kích thước trước khi xây (sai số ±2mm)",
		},
		alternatives: []string{"Gạch ống", "Gạch block nhẹ"},
	},
	{
		key:         "brick_ong_standard",
		category:    "Gạch",
		name:        "Gạch Ống đỏ 6x10x20cm",
		supplier:    "Tùy nhà cung cấp",
		description: "Gạch ống đỏ truyền thống, có lỗ rỗng bên trong, thông thoáng, cách nhiệt tốt.",
		specs: []models.Specification{
			spec("Kích thước", "6cm x 10cm x 20cm"),
			spec("Loại", "Ống rỗng"),
			spec("Trọng lượng", "1.5kg/viên"),
			spec("Mác", "Mác 50-75"),
			spec("Màu sắc", "Đỏ gạch"),
		},
		price: 2800,
		unit:  "viên",
		tiers: []models.BulkDiscount{tier(1000, 3), tier(5000, 5)},
		usage: []string{
			"Xây tường bao kiên cố",
			"Xây tường nhà",
			"Xây cột",
			"Công trình cần cách nhiệt",
		},
		quality:      "Phụ thuộc nhà cung cấp - Gạch càng đỏ, nung kỹ càng bền",
		combinations: []string{"Xi măng PC30", "Cát xây dựng", "Vữa trát"},
		tips: []string{
			"Tính toán: 55-60 viên/m² tường dày 100mm",
			"Ngâm nước 1-2 giờ trước khi xây",
			"Gạch nung kỹ có tiếng kêu leng keng khi gõ",
			"Màu đỏ đều, không có vết đen là gạch tốt",
		},
		warnings: []string{
			"Gạch nung non (màu vàng) dễ hút nước, không bền",
			"Gạch sứt mẻ cạnh nhiều không nên dùng",
		},
		alternatives: []string{"Gạch đinh", "Gạch block"},
	},

	// Đá
	{
		key:         "stone_1x2",
		category:    "Đá",
		name:        "Đá 1x2 (Đá xây dựng)",
		supplier:    "Tùy nhà cung cấp",
		description: "Đá dăm cỡ 1x2 (10-20mm), dùng để trộn bê tông cho móng, cột, dầm, sàn.",
		specs: []models.Specification{
			spec("Kích thước", "10-20mm"),
			spec("Loại", "Đá dăm"),
			spec("Khối lượng riêng", "1.4-1.5 tấn/m³"),
			spec("Cường độ", "Cao"),
		},
		price: 420000,
		unit:  "m³",
		tiers: []models.BulkDiscount{tier(10, 3), tier(30, 5)},
		usage: []string{
			"Trộn bê tông móng (M150-M250)",
			"Trộn bê tông cột, dầm, sàn",
			"Đổ nền nhà xưởng",
			"Làm đường",
		},
		quality:      "Phụ thuộc nguồn gốc - Đá núi tốt hơn đá sông",
		combinations: []string{"Xi măng PCB40", "Cát xây dựng loại I", "Nước sạch"},
		tips: []string{
			"Tỷ lệ bê tông M200: 1 Xi măng : 2.19 Cát : 3.76 Đá 1x2",
			"1m³ bê tông cần khoảng 0.8m³ đá 1x2 (sau đầm)",
			"Đá phải sạch, không lẫn đất, bụi",
			"Phun nước trước khi trộn để giảm hút nước",
		},
		warnings: []string{
			"Đá quá nhiều đất sẽ giảm độ bền bê tông",
			"Đá không đều, quá to/nhỏ ảnh hưởng chất lượng",
		},
		alternatives: []string{"Đá 4x6 (công trình lớn hơn)"},
	},
	{
		key:         "stone_mi",
		category:    "Đá",
		name:        "Đá mi (Đá 5-7mm)",
		supplier:    "Tùy nhà cung cấp",
		description: "Đá dăm cỡ nhỏ 5-7mm, dùng trộn bê tông mác thấp, vữa lót nền, lót đường.",
		specs: []models.Specification{
			spec("Kích thước", "5-7mm"),
			spec("Loại", "Đá dăm nhỏ"),
			spec("Khối lượng riêng", "1.4-1.5 tấn/m³"),
			spec("Cường độ", "Trung bình"),
		},
		price: 380000,
		unit:  "m³",
		tiers: []models.BulkDiscount{tier(10, 3), tier(30, 5)},
		usage: []string{
			"Trộn bê tông mác thấp (M100-M150)",
			"Vữa lót nền",
			"Lót đường giao thông",
			"San lấp mặt bằng",
		},
		quality:      "Phụ thuộc nhà cung cấp - Cần sạch, không lẫn cát",
		combinations: []string{"Xi măng PC30", "Cát", "Nước"},
		tips: []string{
			"Rẻ hơn đá 1x2 khoảng 10%",
			"Phù hợp cho lót nền, vỉa hè",
			"Không nên dùng cho kết cấu chịu lực cao",
		},
		alternatives: []string{"Đá 1x2 (cho công trình chịu lực cao hơn)"},
	},

	// Cát
	{
		key:         "sand_construction",
		category:    "Cát",
		name:        "Cát xây dựng loại I",
		supplier:    "Tùy nhà cung cấp",
		description: "Cát xây dựng sạch, hạt to đều, dùng để trộn bê tông móng, cột, dầm, sàn.",
		specs: []models.Specification{
			spec("Loại", "Cát hạt to"),
			spec("Cỡ hạt", "0.5-5mm"),
			spec("Độ sạch", "Cao (ít bùn đất)"),
			spec("Độ ẩm", "3-5%"),
		},
		price: 380000,
		unit:  "m³",
		tiers: []models.BulkDiscount{tier(10, 3), tier(30, 5)},
		usage: []string{
			"Trộn bê tông móng, cột, dầm, sàn",
			"Vữa xây gạch",
			"Vữa trát",
		},
		quality:      "Phụ thuộc nguồn gốc - Cát sông sạch hơn cát biển (không mặn)",
		combinations: []string{"Xi măng các loại", "Đá 1x2", "Nước sạch"},
		tips: []string{
			"Kiểm tra độ sạch: Bỏ 1 nắm cát vào chai nước, lắc mạnh, nếu nước vẫn trong là cát tốt",
			"Cát hạt to, sạch, không mùi là cát tốt",
			"Tránh cát biển (mặn) làm gỉ thép",
		},
		warnings: []string{
			"Cát nhiều bùn làm giảm độ bền bê tông",
			"Cát biển cần rửa mặn mới dùng được",
		},
		alternatives: []string{"Cát vàng (cho vữa xây, trát)"},
	},
	{
		key:         "sand_yellow",
		category:    "Cát",
		name:        "Cát vàng",
		supplier:    "Tùy nhà cung cấp",
		description: "Cát vàng hạt mịn, dùng để xây gạch, trát tường, hoàn thiện.",
		specs: []models.Specification{
			spec("Loại", "Cát hạt mịn"),
			spec("Cỡ hạt", "0.2-2mm"),
			spec("Màu sắc", "Vàng nhạt"),
			spec("Độ sạch", "Trung bình"),
		},
		price: 320000,
		unit:  "m³",
		tiers: []models.BulkDiscount{tier(10, 3), tier(30, 5)},
		usage: []string{
			"Vữa xây gạch",
			"Vữa trát tường",
			"Vữa lát nền",
			"Hoàn thiện",
		},
		quality:      "Phụ thuộc nhà cung cấp - Cát càng mịn, màu vàng đều càng tốt",
		combinations: []string{"Xi măng PC30", "Gạch các loại", "Bột trét"},
		tips: []string{
			"Rẻ hơn cát xây dựng 15-20%",
			"Không dùng để trộn bê tông kết cấu",
			"Phù hợp cho xây tô hoàn thiện",
		},
		alternatives: []string{"Cát xây dựng (cho bê tông)"},
	},

	// Tư vấn xây dựng
	{
		key:         "guide_home_building",
		category:    "Tư vấn",
		name:        "Quy trình xây nhà cơ bản",
		supplier:    "Kiến thức xây dựng",
		description: "Hướng dẫn quy trình xây nhà từ móng đến hoàn thiện và lựa chọn vật liệu phù hợp.",
		specs: []models.Specification{
			spec("Loại", "Hướng dẫn"),
			spec("Phạm vi", "Nhà phố, Biệt thự"),
			spec("Các bước", "Móng -> Khung -> Xây tô -> Hoàn thiện"),
		},
		price: 0,
		unit:  "lượt tư vấn",
		usage: []string{
			"Tư vấn xây nhà mới",
			"Lập kế hoạch mua vật liệu",
			"Dự toán chi phí",
		},
		quality:      "Chuẩn xây dựng Việt Nam",
		combinations: []string{"Xi măng", "Thép", "Gạch", "Cát", "Đá"},
		tips: []string{
			"Móng: Dùng Xi măng PC40/PCB40, Thép D10-D20, Đá 1x2, Cát vàng",
			"Xây tường: Dùng Gạch ống/Gạch đinh, Xi măng PC30, Cát mịn",
			"Hoàn thiện: Dùng Bột trét, Sơn nước, Gạch ốp lát",
			"Nên mua vật liệu theo từng giai đoạn để tránh hao hụt và bảo quản tốt hơn",
		},
		warnings: []string{
			"Không dùng cát nhiễm mặn cho bê tông",
			"Bảo dưỡng bê tông (tưới nước) ít nhất 7 ngày sau khi đổ",
			"Chọn xi măng đúng mục đích (PC40 cho móng, PC30 cho xây tô)",
		},
	},

	// Chính sách và dịch vụ
	{
		key:         "policy_payment",
		category:    "Chính sách",
		name:        "Chính sách thanh toán",
		brand:       "Store Policy",
		description: "Các phương thức thanh toán được chấp nhận tại cửa hàng.",
		specs: []models.Specification{
			spec("Phương thức", "Tiền mặt, Chuyển khoản, COD"),
			spec("Ngân hàng", "Vietcombank - 1234567890 - NGUYEN VAN A"),
			spec("Đặt cọc", "Cọc 30% cho đơn hàng lớn"),
		},
		unit: "lần",
		usage: []string{
			"Thanh toán khi nhận hàng (COD)",
			"Chuyển khoản ngân hàng",
			"Thanh toán trực tiếp tại cửa hàng",
		},
		quality: "An toàn - Nhanh chóng",
		tips: []string{
			"Nội dung chuyển khoản: [Mã đơn hàng] - [Số điện thoại]",
			"Giữ lại biên lai chuyển khoản để đối chiếu",
		},
	},
	{
		key:         "service_consulting",
		category:    "Dịch vụ",
		name:        "Dịch vụ tư vấn xây dựng",
		brand:       "Store Service",
		description: "Dịch vụ tư vấn kỹ thuật và lựa chọn vật liệu xây dựng miễn phí.",
		specs: []models.Specification{
			spec("Phạm vi", "Tư vấn vật liệu, Dự toán chi phí, Hướng dẫn thi công"),
			spec("Chi phí", "Miễn phí"),
			spec("Hỗ trợ", "24/7 qua Chatbot"),
		},
		unit: "lần",
		usage: []string{
			"Tư vấn chọn xi măng, sắt thép phù hợp",
			"Tính toán khối lượng vật tư",
			"Giải đáp thắc mắc kỹ thuật",
		},
		quality:      "Chuyên nghiệp - Tận tâm",
		combinations: []string{"Quy trình xây nhà cơ bản"},
		tips: []string{
			"Cung cấp diện tích và quy mô công trình để được tư vấn chính xác nhất",
			"Liên hệ hotline nếu cần tư vấn trực tiếp tại công trình",
		},
	},
	{
		key:         "policy_shipping",
		category:    "Chính sách",
		name:        "Chính sách giao hàng",
		brand:       "Store Policy",
		description: "Thông tin về phí vận chuyển và thời gian giao hàng.",
		specs: []models.Specification{
			spec("Miễn phí giao hàng", "Đơn hàng > 5 triệu hoặc < 5km"),
			spec("Phí giao hàng", "30k-50k nội thành, tính theo km ngoại thành"),
			spec("Thời gian", "Trong ngày (nội thành), 1-2 ngày (ngoại thành)"),
		},
		unit:    "lần",
		usage:   []string{"Giao hàng tận nơi", "Giao hàng hỏa tốc"},
		quality: "Nhanh chóng - Đảm bảo",
		tips: []string{
			"Đặt hàng trước 10h sáng để được giao trong ngày",
			"Kiểm tra hàng kỹ trước khi nhận",
		},
	},
	{
		key:         "policy_return",
		category:    "Chính sách",
		name:        "Chính sách đổi trả",
		brand:       "Store Policy",
		description: "Quy định về việc đổi trả hàng hóa.",
		specs: []models.Specification{
			spec("Thời hạn", "3 ngày kể từ khi nhận hàng"),
			spec("Điều kiện", "Hàng còn nguyên vẹn, chưa sử dụng, bao bì không rách"),
			spec("Hoàn tiền", "Hoàn tiền 100% hoặc đổi sản phẩm tương đương"),
		},
		unit:    "lần",
		usage:   []string{"Đổi hàng lỗi", "Trả hàng dư"},
		quality: "Linh hoạt",
		tips: []string{
			"Giữ lại hóa đơn để được hỗ trợ đổi trả nhanh nhất",
			"Hàng đặt riêng không được đổi trả",
		},
	},
	{
		key:         "policy_warranty",
		category:    "Chính sách",
		name:        "Chính sách bảo hành",
		brand:       "Store Policy",
		description: "Thông tin bảo hành cho các sản phẩm.",
		specs: []models.Specification{
			spec("Thép", "Bảo hành rỉ sét theo tiêu chuẩn nhà sản xuất"),
			spec("Thiết bị", "Bảo hành 6-12 tháng tùy loại"),
			spec("Xi măng", "Bảo hành chất lượng (đông kết) trong hạn sử dụng"),
		},
		unit:    "lần",
		usage:   []string{"Bảo hành sản phẩm lỗi", "Hỗ trợ kỹ thuật"},
		quality: "Uy tín",
		tips: []string{
			"Liên hệ hotline ngay khi phát hiện sản phẩm lỗi",
			"Không bảo hành lỗi do bảo quản sai cách",
		},
	},
	{
		key:         "policy_promotion",
		category:    "Chính sách",
		name:        "Chương trình khuyến mãi",
		brand:       "Store Policy",
		description: "Các ưu đãi và chiết khấu đang áp dụng tại cửa hàng.",
		specs: []models.Specification{
			spec("Chiết khấu số lượng", "Giảm 3-8% theo bậc số lượng của từng sản phẩm"),
			spec("Khách hàng thân thiết", "Giảm thêm 2% cho đơn thứ 3 trở đi"),
			spec("Công trình lớn", "Báo giá riêng cho đơn hàng trên 50 triệu"),
		},
		unit:    "lần",
		usage:   []string{"Mua số lượng lớn", "Khách hàng thân thiết", "Nhà thầu công trình"},
		quality: "Minh bạch - Áp dụng tự động khi đặt hàng",
		tips: []string{
			"Gộp đơn nhiều loại vật liệu để đạt bậc chiết khấu cao hơn",
			"Liên hệ hotline để nhận báo giá công trình",
		},
	},
}
