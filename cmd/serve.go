package cmd

import (
	"log"
	"net/http"
	"os"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.InitDB(cfg.DBPath); err != nil {
			return err
		}

		tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
		if err != nil {
			return err
		}
		hasher := auth.NewHasher(cfg.BcryptCost)

		mode := os.Getenv("GIN_MODE")
		if mode == "" {
			gin.SetMode(gin.DebugMode)
		}
		r := gin.Default()

		// CORS middleware for frontend integration
		r.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
		})

		routes.SetupRoutes(r, tokens, hasher)

		log.Printf("server running on http://localhost:%s", cfg.Port)
		return r.Run(":" + cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
