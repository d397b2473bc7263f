package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine 購物車內一筆商品
// 同一商品同顏色同客製名稱視為同一筆  重複加入只累加數量
type CartLine struct {
	ProductID     uuid.UUID        `json:"product_id"`
	ProductName   string           `json:"product_name"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	SelectedColor string           `json:"selected_color"`
	CustomName    string           `json:"custom_name,omitempty"`
	Quantity      int              `json:"quantity"`
	ImageURL      string           `json:"image_url"`
}

// SameKey 判斷兩筆是否為同一 identity key (商品, 顏色, 客製名稱)
func (l CartLine) SameKey(other CartLine) bool {
	return l.ProductID == other.ProductID &&
		l.SelectedColor == other.SelectedColor &&
		l.CustomName == other.CustomName
}

// EffectiveUnitPrice 有特價且低於原價時採用特價  此價格會進入結帳金額
func (l CartLine) EffectiveUnitPrice() decimal.Decimal {
	if l.SalePrice != nil && l.SalePrice.LessThan(l.UnitPrice) {
		return *l.SalePrice
	}
	return l.UnitPrice
}

// LineTotal 單筆小計
func (l CartLine) LineTotal() decimal.Decimal {
	return l.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSubtotal 購物車小計
func CartSubtotal(lines []CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}
