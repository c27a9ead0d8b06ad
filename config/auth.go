package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"registration/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultJWTTTL         = 5 * time.Hour
	defaultRequestTimeout = 10 * time.Second
	defaultAdminName      = "Administrator"
)

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetJWTKey returns the signing key. The service refuses to start without one.
func GetJWTKey() (string, error) {
	key := os.Getenv("JWT_KEY")
	if key == "" {
		return "", errors.New("JWT_KEY is not set")
	}
	return key, nil
}

func GetJWTIssuer() string {
	return getEnv("JWT_ISSUER", GetAppName())
}

func GetJWTAudience() string {
	return getEnv("JWT_AUDIENCE", "")
}

func GetJWTTTL() time.Duration {
	return getDuration("JWT_TTL", defaultJWTTTL)
}

func GetRequestTimeout() time.Duration {
	return getDuration("REQUEST_TIMEOUT", defaultRequestTimeout)
}

func GetBcryptCost() int {
	cost, err := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// GetBootstrapPrincipal reads the administrative login. It stays disabled
// unless both ADMIN_EMAIL and ADMIN_PASSWORD are set; ADMIN_ID defaults to the
// all-zero identifier.
func GetBootstrapPrincipal() (domain.BootstrapPrincipal, error) {
	principal := domain.BootstrapPrincipal{
		Email:       strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		Password:    os.Getenv("ADMIN_PASSWORD"),
		DisplayName: getEnv("ADMIN_NAME", defaultAdminName),
	}

	if raw := strings.TrimSpace(os.Getenv("ADMIN_ID")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.BootstrapPrincipal{}, errors.New("ADMIN_ID is not a valid uuid")
		}
		principal.ID = id
	}
	return principal, nil
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
