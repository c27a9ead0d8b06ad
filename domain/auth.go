package domain

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" valid:"required~email is required"`
	Password string `json:"password" valid:"required~password is required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// BootstrapPrincipal is the configured administrative login that never touches
// the people table.
type BootstrapPrincipal struct {
	ID          uuid.UUID
	Email       string
	Password    string
	DisplayName string
}

func (b BootstrapPrincipal) Enabled() bool {
	return b.Email != "" && b.Password != ""
}

type CredentialHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type TokenIssuer interface {
	IssueToken(subject uuid.UUID, displayName string) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req *CreatePersonRequest) (*Person, error)
}
