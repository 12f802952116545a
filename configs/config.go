package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	MongoURI string
	MongoDB  string

	CORSOrigins []string

	NotifyLog string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env เป็น optional — prod ใช้ env จริง
	_ = godotenv.Load()

	ttlHours := 24
	if v, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24")); err == nil && v > 0 {
		ttlHours = v
	}

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "quickbite.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(ttlHours) * time.Hour,
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getEnv("MONGO_DB", "quickbite"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "*")),
		NotifyLog:     getEnv("NOTIFY_LOG", "logs/notifications.log"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@quickbite.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin1234"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
