package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Config holds the environment-level settings: signing secret, hash cost,
// token lifetimes, listen port and database path.
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       []byte
	BcryptCost      int
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Load reads configuration from the environment. In dev a .env file is
// consulted first. An unset JWT_SECRET is a startup error outside dev:
// there is no request-time fallback for a misconfigured gate.
func Load() (Config, error) {
	dev := os.Getenv("ENV") == "dev"
	if dev {
		godotenv.Load()
	}

	cfg := Config{
		Port:            getEnv("PORT", "3000"),
		DBPath:          getEnv("DB_PATH", "food_ordering.db"),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
	}

	if len(cfg.JWTSecret) == 0 {
		if !dev {
			return Config{}, errors.New("JWT_SECRET must be set")
		}
		cfg.JWTSecret = []byte("dev_secret")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// InitDB opens the SQLite database at path and migrates all models.
func InitDB(path string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		return err
	}

	log.Println("database connected and migrated")
	return nil
}
