package dto

import (
	"github.com/shopspring/decimal"
)

type ProductColorDTO struct {
	Color     string `json:"color"`
	Available bool   `json:"available"`
}

type ProductDTO struct {
	ProductID    string            `json:"product_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Price        decimal.Decimal   `json:"price"`
	SalePrice    *decimal.Decimal  `json:"sale_price,omitempty"`
	Category     string            `json:"category"`
	ImageURL     string            `json:"image_url"`
	Featured     bool              `json:"featured"`
	IsMysteryBox bool              `json:"is_mystery_box"`
	Colors       []ProductColorDTO `json:"colors"`
}

type UpsertProductDTO struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Price        decimal.Decimal   `json:"price"`
	SalePrice    *decimal.Decimal  `json:"sale_price,omitempty"`
	Category     string            `json:"category"`
	ImageURL     string            `json:"image_url"`
	Featured     bool              `json:"featured"`
	IsMysteryBox bool              `json:"is_mystery_box"`
	Colors       []ProductColorDTO `json:"colors"`
}

type SetColorAvailabilityDTO struct {
	Color     string `json:"color"`
	Available bool   `json:"available"`
}
