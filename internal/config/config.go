package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	RedisAddr      string
	Port           string
	ClientURL      string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:  getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnvOrDefault("DB_NAME", "neighbour-alert"),
		JWTSecret: getEnvOrDefault("JWT_SECRET", ""),
		// One TTL for both register and login tokens.
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 7, 24*time.Hour),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", ""),
		Port:           getEnvOrDefault("PORT", "5000"),
		ClientURL:      getEnvOrDefault("CLIENT_URL", "http://localhost:3000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
