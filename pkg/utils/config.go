package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotenv pulls in a local .env file if one exists. Real env vars
// still win; a missing file is not an error.
func LoadDotenv() {
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env")
	}
}

type ServerConfig struct {
	HTTPAddr string
	TCPAddr  string

	// CatalogSource selects where the catalog comes from:
	// "file" (CatalogPath), "url" (CatalogURL) or "db".
	CatalogSource string
	CatalogPath   string
	CatalogURL    string
}

func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		HTTPAddr:      getenv("FIXHUB_HTTP_ADDR", ":8080"),
		TCPAddr:       getenv("FIXHUB_TCP_ADDR", ":7071"),
		CatalogSource: getenv("FIXHUB_CATALOG_SOURCE", "file"),
		CatalogPath:   getenv("FIXHUB_CATALOG_PATH", "data/catalog.json"),
		CatalogURL:    getenv("FIXHUB_CATALOG_URL", "http://localhost:9000/catalog.json"),
	}

	switch cfg.CatalogSource {
	case "file", "url", "db":
	default:
		log.Printf("[config] unknown FIXHUB_CATALOG_SOURCE %q, using file", cfg.CatalogSource)
		cfg.CatalogSource = "file"
	}
	return cfg
}

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration

	// SignupCode gates admin registration; empty disables registration.
	SignupCode string
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("FIXHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := getenv("FIXHUB_JWT_ISSUER", "fixhub")

	dur := 24 * time.Hour
	if raw := os.Getenv("FIXHUB_JWT_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			dur = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: dur,
		SignupCode:  os.Getenv("FIXHUB_ADMIN_SIGNUP_CODE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
