package config

import "os"

type Config struct {
	Port        string
	DBDriver    string
	DatabaseDSN string
	CORSOrigin  string
	LogLevel    string
}

// Load reads the service configuration from the environment. The defaults
// run the service standalone against an embedded SQLite file.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3333"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseDSN: getEnv("DATABASE_DSN", "habits.db"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:3333"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
