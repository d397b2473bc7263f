package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdminLoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminSessionDTO struct {
	Token string `json:"token"`
}

type CouponDTO struct {
	CouponID       string     `json:"coupon_id"`
	Code           string     `json:"code"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount,omitempty"`
	MaxUses        *int       `json:"max_uses,omitempty"`
	CurrentUses    int        `json:"current_uses"`
	Active         bool       `json:"active"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

type UpsertCouponDTO struct {
	Code           string     `json:"code"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount,omitempty"`
	MaxUses        *int       `json:"max_uses,omitempty"`
	Active         bool       `json:"active"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

type SubmitReviewDTO struct {
	ProductID  string `json:"product_id"`
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type ReviewDTO struct {
	ReviewID   string    `json:"review_id"`
	ProductID  string    `json:"product_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type BannerDTO struct {
	BannerID  string `json:"banner_id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order"`
}

type UpsertBannerDTO struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order"`
}
