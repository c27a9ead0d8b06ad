package config

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFiberDefaults(t *testing.T) {
	t.Setenv("HTTP_HOST", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("APP_NAME", "")

	assert.Equal(t, "0.0.0.0:8000", GetFiberListenAddress())
	assert.Equal(t, "REGISTRATION", GetAppName())
	assert.Equal(t, "*", GetCorsAllowOrigins())
}

func TestFiberOverrides(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("APP_NAME", "people")

	assert.Equal(t, "127.0.0.1:9090", GetFiberListenAddress())
	assert.Equal(t, "people", GetFiberConfig().AppName)
}

func TestDatabaseURL(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_DATABASE", "people")
	t.Setenv("DB_SSLMODE", "")

	assert.Equal(t, "host=db port=5433 user=app password=pw dbname=people sslmode=disable", GetDatabaseURL())

	t.Setenv("DB_SSLMODE", "require")
	assert.Contains(t, GetDatabaseURL(), "sslmode=require")
}

func TestJWTKeyIsMandatory(t *testing.T) {
	t.Setenv("JWT_KEY", "")
	_, err := GetJWTKey()
	assert.Error(t, err)

	t.Setenv("JWT_KEY", "secret")
	key, err := GetJWTKey()
	require.NoError(t, err)
	assert.Equal(t, "secret", key)
}

func TestDurations(t *testing.T) {
	t.Setenv("JWT_TTL", "")
	t.Setenv("REQUEST_TIMEOUT", "garbage")
	assert.Equal(t, 5*time.Hour, GetJWTTTL())
	assert.Equal(t, 10*time.Second, GetRequestTimeout())

	t.Setenv("JWT_TTL", "30m")
	t.Setenv("REQUEST_TIMEOUT", "-1s")
	assert.Equal(t, 30*time.Minute, GetJWTTTL())
	assert.Equal(t, 10*time.Second, GetRequestTimeout())
}

func TestBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	assert.Equal(t, bcrypt.DefaultCost, GetBcryptCost())

	t.Setenv("BCRYPT_COST", "12")
	assert.Equal(t, 12, GetBcryptCost())

	t.Setenv("BCRYPT_COST", "64")
	assert.Equal(t, bcrypt.DefaultCost, GetBcryptCost())
}

func TestBootstrapPrincipal(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", " Admin@Admin.com ")
	t.Setenv("ADMIN_PASSWORD", "admin")
	t.Setenv("ADMIN_ID", "")
	t.Setenv("ADMIN_NAME", "")

	principal, err := GetBootstrapPrincipal()
	require.NoError(t, err)
	assert.True(t, principal.Enabled())
	assert.Equal(t, "admin@admin.com", principal.Email)
	assert.Equal(t, uuid.Nil, principal.ID)
	assert.Equal(t, "Administrator", principal.DisplayName)

	id := uuid.New()
	t.Setenv("ADMIN_ID", id.String())
	principal, err = GetBootstrapPrincipal()
	require.NoError(t, err)
	assert.Equal(t, id, principal.ID)

	t.Setenv("ADMIN_ID", "not-a-uuid")
	_, err = GetBootstrapPrincipal()
	assert.Error(t, err)
}

func TestBootstrapDisabledWithoutPassword(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@admin.com")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_ID", "")

	principal, err := GetBootstrapPrincipal()
	require.NoError(t, err)
	assert.False(t, principal.Enabled())
}

func TestLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, logrus.DebugLevel, GetLogLevel())

	t.Setenv("LOG_LEVEL", "loud")
	assert.Equal(t, logrus.InfoLevel, GetLogLevel())
}
