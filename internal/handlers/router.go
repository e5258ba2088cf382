package handlers

import (
	"github.com/gin-gonic/gin"

	"pubhouse-be/internal/logger"
	"pubhouse-be/internal/middleware"
)

type RouterConfig struct {
	JWTSecret  string
	SessionTTL int
}

// SetupRouter wires middleware and routes for the public API and the admin
// panel.
func SetupRouter(cfg RouterConfig, public *PublicHandler, carts *CartHandler, admin *AdminHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.SessionMiddleware(cfg.SessionTTL))

	r.GET("/healthz", public.Health)

	api := r.Group("/api", middleware.RateLimit("general"))
	{
		api.GET("/menu", public.GetMenu)
		api.GET("/site", public.GetSite)

		api.GET("/cart", carts.GetCart)
		api.GET("/cart/count", carts.GetCount)
		api.POST("/cart/add", carts.AddItem)
		api.POST("/cart/update", carts.UpdateItem)
		api.POST("/cart/remove", carts.RemoveItem)
		api.POST("/cart/clear", carts.ClearCart)
		api.POST("/cart/promo", carts.ApplyPromo)
		api.DELETE("/cart/promo", carts.ClearPromo)

		api.POST("/order", middleware.RateLimit("strict"), carts.SubmitOrder)
		api.POST("/booking", middleware.RateLimit("strict"), public.CreateBooking)
	}

	adm := r.Group("/admin")
	{
		adm.POST("/login", middleware.RateLimit("strict"), admin.Login)

		authed := adm.Group("", middleware.AdminGuard(cfg.JWTSecret))
		{
			authed.POST("/logout", admin.Logout)
			authed.POST("/password", admin.ChangePassword)

			authed.GET("/settings", admin.GetSettings)
			authed.PUT("/settings", admin.UpdateSettings)

			authed.GET("/menu", admin.GetMenu)
			authed.PUT("/menu", admin.ReplaceMenu)

			authed.GET("/promos", admin.ListPromos)
			authed.POST("/promos", admin.UpsertPromo)
			authed.DELETE("/promos/:code", admin.DeletePromo)
			authed.POST("/promos/:code/reset", admin.ResetPromoUsage)
		}
	}

	return r
}
