package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	CORSAllowedOrigins []string

	// Staff account ensured at startup when both are set.
	AdminUsername string
	AdminPassword string
}

// LoadEnv reads configuration from the process environment, after merging
// a .env file from the working directory when one exists.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: gagal membaca .env: %v", err)
	}

	env := Env{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		GinMode:       getenv("GIN_MODE", ""),
		DBHost:        getenv("DB_HOST", "127.0.0.1:3306"),
		DBUser:        getenv("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "travelbook"),
		SessionTTL:    24 * time.Hour,
		AdminUsername: strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	secret, err := sessionSecret(os.Getenv("SESSION_SECRET"), env.GinMode)
	if err != nil {
		log.Fatalf("Konfigurasi tidak valid: %v", err)
	}
	env.SessionSecret = secret

	if raw := getenv("SESSION_TTL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			env.SessionTTL = d
		} else {
			log.Printf("warning: SESSION_TTL tidak valid (%q), pakai default %s", raw, env.SessionTTL)
		}
	}
	if raw := getenv("COOKIE_SECURE", ""); raw != "" {
		env.CookieSecure, _ = strconv.ParseBool(raw)
	}

	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
		}
	}

	return env
}

// sessionSecret returns the configured signing key. Release mode refuses to
// start without one; other modes fall back to a random key that lives only
// as long as the process, so sessions do not survive a restart.
func sessionSecret(raw, ginMode string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		return raw, nil
	}
	if ginMode == gin.ReleaseMode {
		return "", errors.New("SESSION_SECRET wajib diisi pada mode release")
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gagal membuat session secret: %w", err)
	}
	log.Printf("warning: SESSION_SECRET kosong, memakai secret acak sementara")
	return hex.EncodeToString(buf), nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
