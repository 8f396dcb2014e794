package routes

import (
	"food-ordering-api/auth"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every route once at startup. The auth gate is a plain
// middleware value constructed here; there is no runtime lookup.
func SetupRoutes(r *gin.Engine, tokens *auth.TokenService, hasher *auth.Hasher) {
	authHandler := handlers.NewAuthHandler(hasher, tokens)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/health", handlers.Health)

		public.POST("/auth/signup", authHandler.Signup)
		public.POST("/auth/login", authHandler.Login)

		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
	}

	// ── Authenticated routes ───────────────────────────────────────
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired(tokens))
	{
		protected.POST("/restaurants",
			middleware.RoleRequired(string(models.RoleAdmin), string(models.RoleRestaurant)),
			handlers.CreateRestaurant)

		protected.POST("/orders", handlers.PlaceOrder)
		protected.GET("/orders", handlers.ListMyOrders)
		protected.GET("/orders/:id", handlers.GetOrder)
	}
}
