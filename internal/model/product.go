package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uuid.UUID        `gorm:"type:uuid;primaryKey" json:"product_id"`
	Name        string           `gorm:"not null;type:varchar(200)" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Price       decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"price"`
	SalePrice   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sale_price,omitempty"`
	Category    string           `gorm:"not null;type:varchar(50);index" json:"category"`
	ImageURL    string           `gorm:"type:text" json:"image_url"`
	Featured    bool             `gorm:"not null;default:false" json:"featured"`
	// 神秘盒商品 內容物出貨時隨機
	IsMysteryBox bool           `gorm:"not null;default:false" json:"is_mystery_box"`
	Colors       []ProductColor `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"colors"`
	BaseModel
}

// ProductColor 商品顏色與該顏色目前是否可下單
type ProductColor struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	Color     string    `gorm:"primaryKey;type:varchar(50)" json:"color"`
	Available bool      `gorm:"not null;default:true" json:"available"`
}

// EffectivePrice 結帳用單價  有特價且低於原價時採用特價
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil && p.SalePrice.LessThan(p.Price) {
		return *p.SalePrice
	}
	return p.Price
}

// HasAvailableColor 檢查指定顏色是否存在且可下單
func (p *Product) HasAvailableColor(color string) bool {
	for _, c := range p.Colors {
		if c.Color == color {
			return c.Available
		}
	}
	return false
}
