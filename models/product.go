package models

import (
	"github.com/google/uuid"
)

// 商品类型：simple-单品, variable-多规格
const (
	TypeSimple   = "simple"
	TypeVariable = "variable"
)

// Product 商品模型：只保留价格展示和 COD 判定需要的字段
type Product struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	ProductType string `gorm:"type:varchar(20);default:'simple'" json:"product_type"` // simple / variable

	RegularPrice float64 `gorm:"type:decimal(12,2);default:0" json:"regular_price"` // 原价
	SalePrice    float64 `gorm:"type:decimal(12,2);default:0" json:"sale_price"`    // 促销价
	OnSale       bool    `gorm:"default:false" json:"on_sale"`                      // 是否促销中

	// 运输类目标签，COD 判定用；可以为空
	ShippingClass string `gorm:"type:varchar(100);default:''" json:"shipping_class"`

	// 多规格商品的各个规格报价
	Variations []Variation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations,omitempty"`
}

// Variation 规格模型：一个可购买的商品配置（尺寸/颜色组合）
type Variation struct {
	Base
	ProductID    uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Label        string    `gorm:"type:varchar(100)" json:"label"`
	DisplayPrice float64   `gorm:"type:decimal(12,2);default:0" json:"display_price"`
	Position     int       `gorm:"default:0" json:"position"` // 扫描顺序要稳定，按这个排序
}

// ProductDTO 批量同步用的数据结构，店面侧全量推过来
type ProductDTO struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	ProductType   string         `json:"product_type"`
	RegularPrice  float64        `json:"regular_price"`
	SalePrice     float64        `json:"sale_price"`
	OnSale        bool           `json:"on_sale"`
	ShippingClass string         `json:"shipping_class"`
	Variations    []VariationDTO `json:"variations"`
}

type VariationDTO struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	DisplayPrice float64   `json:"display_price"`
	Position     int       `json:"position"`
}

// VariationView 规格展示视图：is_selected 由最低价扫描逻辑填充
type VariationView struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	DisplayPrice float64   `json:"display_price"`
	IsSelected   bool      `json:"is_selected"`
}
