package handler

// Server 聚合所有handler  給router註冊路由用
type Server struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	CouponHandler   *CouponHandler
	OrderHandler    *OrderHandler
	ReviewHandler   *ReviewHandler
	BannerHandler   *BannerHandler
	AuthHandler     *AuthHandler
}

func NewServer(
	productHandler *ProductHandler,
	cartHandler *CartHandler,
	checkoutHandler *CheckoutHandler,
	couponHandler *CouponHandler,
	orderHandler *OrderHandler,
	reviewHandler *ReviewHandler,
	bannerHandler *BannerHandler,
	authHandler *AuthHandler,
) *Server {
	return &Server{
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		CheckoutHandler: checkoutHandler,
		CouponHandler:   couponHandler,
		OrderHandler:    orderHandler,
		ReviewHandler:   reviewHandler,
		BannerHandler:   bannerHandler,
		AuthHandler:     authHandler,
	}
}
