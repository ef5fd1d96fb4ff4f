package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AssetsConfig holds the two public addressing schemes for stored assets.
// ProxyHost is the host the edge proxy answers on; PublicHost is the bucket's
// own public endpoint, preferred for rendering.
type AssetsConfig struct {
	ProxyHost  string
	PublicHost string
}

// AdminConfig holds back-office gate settings. An empty APIToken disables the
// gate (local development).
type AdminConfig struct {
	APIToken string
}

// ContactConfig holds outbound chat deep-link settings.
type ContactConfig struct {
	WhatsAppPhone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	ProxyPort string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Assets    AssetsConfig
	Admin     AdminConfig
	Contact   ContactConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:   getEnv("APP_HOST", "localhost:8080"),
		Port:      getEnv("PORT", "8080"), // default only for non-sensitive value
		ProxyPort: getEnv("PROXY_PORT", "8090"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Assets: AssetsConfig{
			ProxyHost:  getEnv("ASSET_PROXY_HOST", "localhost:8090"),
			PublicHost: getEnv("ASSET_PUBLIC_HOST", ""),
		},
		Admin: AdminConfig{
			APIToken: getEnv("ADMIN_API_TOKEN", ""),
		},
		Contact: ContactConfig{
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
