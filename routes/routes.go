package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quickbite/configs"
	"quickbite/controllers"
	"quickbite/middlewares"
	"quickbite/repository"
	"quickbite/services"
)

// Deps is everything the HTTP layer needs, constructed in main and passed
// down — no package-level singletons.
type Deps struct {
	DB       *gorm.DB
	Catalog  repository.CatalogStore
	Notifier *services.Notifier
	Cfg      *configs.Config
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware(d.Cfg.CORSOrigins))
	r.Use(middlewares.RequestLogger())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	restRepo := repository.NewRestaurantRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)

	// Services
	cartStore := services.NewCartStore()
	authSvc := services.NewAuthService(userRepo, d.Cfg.JWTSecret, d.Cfg.JWTTTL)
	cartSvc := services.NewCartService(cartStore)
	catalogSvc := services.NewCatalogService(restRepo, d.Catalog)
	orderSvc := services.NewOrderService(d.DB, orderRepo, restRepo, userRepo, cartStore, d.Notifier)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	reviewCtrl := controllers.NewReviewController(catalogSvc, authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc)

	auth := middlewares.AuthMiddleware(d.Cfg.JWTSecret)
	// The limiter keys by user id when one is in the context, so it has to
	// run after auth on protected groups. Public traffic keys by client IP.
	limit := middlewares.RateLimit()

	// Auth (public)
	a := r.Group("/auth", limit)
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := r.Group("/auth", auth, limit)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public
	pub := r.Group("", limit)
	{
		pub.GET("/restaurants", restCtrl.List)
		pub.GET("/restaurants/:id", restCtrl.Detail)
		pub.GET("/reviews/restaurants/:id", reviewCtrl.List)
	}

	// User (protected)
	u := r.Group("/", auth, limit)
	{
		u.GET("/menu/restaurants/:id/items", menuCtrl.Items)
		u.POST("/reviews/restaurants/:id", reviewCtrl.Create)

		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/add", cartCtrl.Add)
		u.POST("/cart/remove", cartCtrl.Remove)
		u.POST("/cart/update", cartCtrl.Update)
		u.POST("/cart/clear", cartCtrl.Clear)

		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/create", orderCtrl.ReviewCheckout)
		u.POST("/orders/create", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Admin (admin only)
	admin := r.Group("/admin", auth, limit, middlewares.RequireAdmin())
	{
		admin.GET("/orders", adminCtrl.Orders)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
		admin.GET("/stats", adminCtrl.Stats)
		admin.POST("/orders/:id/status", adminCtrl.UpdateStatus)
	}
}
