package config

import (
	"os"
)

type Config struct {
	MongoURI   string
	DBName     string
	APIKey     string
	Port       string
	UploadsDir string
	ReportsDir string
}

func Load() Config {
	return Config{
		MongoURI:   getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getenv("DB_NAME", "jadwalku"),
		APIKey:     getenv("API_KEY", "SECRET123"),
		Port:       getenv("PORT", "8080"),
		UploadsDir: getenv("UPLOADS_DIR", "uploads"),
		ReportsDir: getenv("REPORTS_DIR", "reports"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
