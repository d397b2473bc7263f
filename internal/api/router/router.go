package router

import (
	"fmt"
	"net/http"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/handler"
	m "github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/middleware"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *handler.Server, sessionService service.ISessionService, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.SessionMiddleware)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 店面公開路由
		r.Group(func(r chi.Router) {
			r.Route("/products", func(r chi.Router) {
				r.Get("/", server.ProductHandler.ListProducts)
				r.Get("/{id}", server.ProductHandler.GetProduct)
				r.Get("/{id}/reviews", server.ReviewHandler.ListProductReviews)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Delete("/", server.CartHandler.ClearCart)
				r.Post("/items", server.CartHandler.AddItem)
				r.Put("/items", server.CartHandler.UpdateItem)
				r.Delete("/items", server.CartHandler.RemoveItem)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", server.CheckoutHandler.Checkout)
				r.Post("/coupon", server.CheckoutHandler.ApplyCoupon)
			})

			r.Get("/orders/{id}/track", server.OrderHandler.TrackOrder)
			r.Post("/reviews", server.ReviewHandler.SubmitReview)
			r.Get("/banners", server.BannerHandler.ListActiveBanners)
		})

		// 後台路由  login/logout以外都要過session驗證
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
			r.Post("/logout", server.AuthHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(m.AdminAuthMiddleware(sessionService))

				r.Route("/products", func(r chi.Router) {
					r.Post("/", server.ProductHandler.CreateProduct)
					r.Put("/{id}", server.ProductHandler.UpdateProduct)
					r.Delete("/{id}", server.ProductHandler.DeleteProduct)
					r.Patch("/{id}/colors", server.ProductHandler.SetColorAvailability)
				})

				r.Route("/coupons", func(r chi.Router) {
					r.Get("/", server.CouponHandler.ListCoupons)
					r.Post("/", server.CouponHandler.CreateCoupon)
					r.Put("/{id}", server.CouponHandler.UpdateCoupon)
					r.Delete("/{id}", server.CouponHandler.DeleteCoupon)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", server.OrderHandler.ListOrders)
					r.Get("/{id}", server.OrderHandler.GetOrder)
					r.Patch("/{id}/status", server.OrderHandler.UpdateOrderStatus)
					r.Patch("/{id}/payment", server.OrderHandler.UpdatePaymentStatus)
				})

				r.Route("/reviews", func(r chi.Router) {
					r.Get("/", server.ReviewHandler.ListAllReviews)
					r.Patch("/{id}/approve", server.ReviewHandler.ApproveReview)
					r.Delete("/{id}", server.ReviewHandler.DeleteReview)
				})

				r.Route("/banners", func(r chi.Router) {
					r.Get("/", server.BannerHandler.ListAllBanners)
					r.Post("/", server.BannerHandler.CreateBanner)
					r.Put("/{id}", server.BannerHandler.UpdateBanner)
					r.Delete("/{id}", server.BannerHandler.DeleteBanner)
				})
			})
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
