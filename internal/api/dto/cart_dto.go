package dto

import (
	"github.com/shopspring/decimal"
)

type CartLineDTO struct {
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	SelectedColor string           `json:"selected_color"`
	CustomName    string           `json:"custom_name,omitempty"`
	Quantity      int              `json:"quantity"`
	ImageURL      string           `json:"image_url"`
	LineTotal     decimal.Decimal  `json:"line_total"`
}

type CartDTO struct {
	Lines      []CartLineDTO   `json:"lines"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type AddCartItemDTO struct {
	ProductID     string `json:"product_id"`
	SelectedColor string `json:"selected_color"`
	CustomName    string `json:"custom_name,omitempty"`
}

type UpdateCartItemDTO struct {
	ProductID     string `json:"product_id"`
	SelectedColor string `json:"selected_color"`
	CustomName    string `json:"custom_name,omitempty"`
	Quantity      int    `json:"quantity"`
}

type RemoveCartItemDTO struct {
	ProductID     string `json:"product_id"`
	SelectedColor string `json:"selected_color"`
	CustomName    string `json:"custom_name,omitempty"`
}
