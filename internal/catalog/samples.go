package catalog

import "material-advisor/models"

func kg(v float64) *float64 { return &v }

// SampleProducts is a small starter catalog for local development
func SampleProducts() []models.CatalogProduct {
	return []models.CatalogProduct{
		{
			SKU:          "XM-INSEE-PCB40",
			Name:         "Xi măng Insee PCB40",
			Description:  "Xi măng Insee Portland PC40, thương hiệu uy tín, chất lượng cao, phù hợp cho mọi công trình xây dựng.",
			Price:        90000,
			Unit:         "bao",
			CategoryName: "Xi măng",
			Weight:       kg(50),
			Dimensions:   "40x20x10",
			Tags:         []string{"Xi măng", "Insee", "PC40", "Xám"},
			IsActive:     true,
		},
		{
			SKU:          "XM-HATIEN-PCB40",
			Name:         "Xi măng Hà Tiên PCB40",
			Description:  "Xi măng Hà Tiên Portland PC40, sản xuất tại Việt Nam, chất lượng tốt, giá cả phải chăng.",
			Price:        100000,
			Unit:         "bao",
			CategoryName: "Xi măng",
			Weight:       kg(50),
			Dimensions:   "40x20x10",
			Tags:         []string{"Xi măng", "Hà Tiên", "PC40", "Xám"},
			IsActive:     true,
		},
		{
			SKU:          "THEP-CB240-D10",
			Name:         "Thép cây CB240-T D10",
			Description:  "Thép cây xây dựng CB240-T đường kính 10mm, độ bền cao.",
			Price:        18500,
			Unit:         "cây",
			CategoryName: "Thép xây dựng",
			Weight:       kg(6.17),
			Dimensions:   "12000x10",
			Tags:         []string{"Thép carbon", "Đen"},
			IsActive:     true,
		},
		{
			SKU:          "GACH-OP-30X60",
			Name:         "Gạch ốp tường 30x60",
			Description:  "Gạch ốp tường cao cấp kích thước 30x60cm, bề mặt nhẵn bóng.",
			Price:        85000,
			Unit:         "m2",
			CategoryName: "Gạch & Ốp lát",
			Weight:       kg(2.5),
			Dimensions:   "30x60x0.8",
			Tags:         []string{"Ceramic", "Trắng"},
			IsActive:     true,
		},
		{
			SKU:          "GACH-LAT-60X60",
			Name:         "Gạch lát nền 60x60",
			Description:  "Gạch lát nền granite 60x60cm chống trơn trượt.",
			Price:        120000,
			Unit:         "m2",
			CategoryName: "Gạch & Ốp lát",
			Weight:       kg(3.2),
			Dimensions:   "60x60x1.0",
			Tags:         []string{"Granite", "Kem"},
			IsActive:     true,
		},
		{
			SKU:          "SON-DULUX-18L",
			Name:         "Sơn nước Dulux Inspire",
			Description:  "Sơn nước nội thất cao cấp Dulux Inspire, bảo vệ tối ưu.",
			Price:        890000,
			Unit:         "thùng",
			CategoryName: "Sơn & Hóa chất",
			Weight:       kg(18),
			Dimensions:   "25x25x35",
			Tags:         []string{"Sơn nước", "Trắng"},
			IsActive:     true,
		},
		{
			SKU:          "ONG-PPR-D25",
			Name:         "Ống nước PPR PN16 D25",
			Description:  "Ống nước PPR áp lực cao PN16, đường kính 25mm.",
			Price:        45000,
			Unit:         "cây",
			CategoryName: "Điện & Nước",
			Weight:       kg(1.2),
			Dimensions:   "4000x25",
			Tags:         []string{"PPR", "Trắng"},
			IsActive:     true,
		},
	}
}
