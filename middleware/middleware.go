package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"registration/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const DefaultTokenTTL = 5 * time.Hour

// JWT signs and verifies HS256 bearer tokens.
type JWT struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewJWT(key, issuer, audience string, ttl time.Duration) (*JWT, error) {
	if key == "" {
		return nil, errors.New("jwt signing key is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWT{
		key:      []byte(key),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

func (j *JWT) IssueToken(subject uuid.UUID, displayName string) (string, time.Time, error) {
	now := j.now()
	expirationTime := now.Add(j.ttl)

	claims := &domain.Claims{
		Name: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			ID:        uuid.NewString(),
		},
	}
	if j.audience != "" {
		claims.Audience = jwt.ClaimStrings{j.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %v", err)
	}
	return signed, expirationTime, nil
}

func (j *JWT) Verify(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("token has no expiry")
	}
	if j.issuer != "" && !claims.VerifyIssuer(j.issuer, true) {
		return nil, errors.New("unexpected token issuer")
	}
	if j.audience != "" && !claims.VerifyAudience(j.audience, true) {
		return nil, errors.New("unexpected token audience")
	}
	return claims, nil
}

// IsExpired reads the exp claim without checking the signature. Only a token
// that decodes and carries a past exp is expired; anything else is just invalid.
func IsExpired(tokenString string, now time.Time) bool {
	claims := &domain.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// AuthRequired rejects requests without a valid token and stores the claims
// under the "user" local.
func AuthRequired(verifier domain.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(domain.APIResponse{
				Success: false,
				Message: "No token provided",
				Errors:  []string{"missing bearer token"},
			})
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			if IsExpired(token, time.Now()) {
				return c.Status(fiber.StatusUnauthorized).JSON(domain.APIResponse{
					Success: false,
					Message: "Token expired",
					Errors:  []string{"token expired, log in again"},
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(domain.APIResponse{
				Success: false,
				Message: "Invalid token",
				Errors:  []string{err.Error()},
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// CurrentUser returns the claims stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals("user").(*domain.Claims)
	return claims
}
