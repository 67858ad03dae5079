package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	Cloudinary CloudinaryConfig
	Email      EmailConfig
	JWT        JWTConfig
	Local      LocalConfig
	Instagram  InstagramConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	Environment        string // development | production
	CORSAllowedOrigins string // comma-separated, or "*" for all
}

// MongoConfig holds the remote document store settings. An empty URI means
// no remote backend is configured and the local fallback store is used.
type MongoConfig struct {
	URI    string
	DBName string
}

// Configured reports whether a remote document store was set up at all.
func (c MongoConfig) Configured() bool {
	return c.URI != ""
}

// CloudinaryConfig holds the binary object store credentials.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func (c CloudinaryConfig) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// EmailConfig holds the ZeptoMail-style outbound notification transport
// settings. Contact-form messages are relayed to AdminAddress.
type EmailConfig struct {
	APIURL       string
	APIKey       string
	FromAddress  string
	AdminAddress string
}

// JWTConfig holds token signing settings for the local auth provider.
type JWTConfig struct {
	Secret      string
	ExpireHours int
}

// LocalConfig holds the fallback key-value store location.
type LocalConfig struct {
	DataFile string
}

// InstagramConfig holds the media feed endpoint for gallery sync.
type InstagramConfig struct {
	FeedURL string
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			Environment:        getEnv("APP_ENV", "development"),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Mongo: MongoConfig{
			URI:    getEnv("MONGO_URI", ""),
			DBName: getEnv("MONGO_DB_NAME", "community_site"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Email: EmailConfig{
			APIURL:       getEnv("ZEPTO_API_URL", ""),
			APIKey:       getEnv("ZEPTO_API_KEY", ""),
			FromAddress:  getEnv("EMAIL_FROM", ""),
			AdminAddress: getEnv("EMAIL_ADMIN", ""),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "change-me-in-production"),
			ExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		},
		Local: LocalConfig{
			DataFile: getEnv("LOCAL_DATA_FILE", "community_site_data.json"),
		},
		Instagram: InstagramConfig{
			FeedURL: getEnv("INSTAGRAM_FEED_URL", ""),
		},
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
