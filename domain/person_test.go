package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCpf(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123.456.789-01", "12345678901"},
		{"12345678901", "12345678901"},
		{" 123 456 789 01 ", "12345678901"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCpf(tt.input), tt.input)
	}
}

func TestCreateRequestNormalize(t *testing.T) {
	email := "  Ana@X.COM "
	req := CreatePersonRequest{Cpf: "123.456.789-01", Email: &email}
	req.Normalize()

	assert.Equal(t, "12345678901", req.Cpf)
	assert.Equal(t, "Ana@X.COM", *req.Email, "case is kept as sent")

	blank := "   "
	req = CreatePersonRequest{Email: &blank}
	req.Normalize()
	assert.Nil(t, req.Email)
}

func TestUpdateRequestNormalize(t *testing.T) {
	req := UpdatePersonRequest{
		Cpf:   Some("123.456.789-01"),
		Email: Some(" Ana@X.com"),
		Name:  Null[string](),
	}
	req.Normalize()

	assert.Equal(t, "12345678901", req.Cpf.Value)
	assert.Equal(t, "Ana@X.com", req.Email.Value)
	assert.True(t, req.Name.Cleared())
}

func TestPersonProjections(t *testing.T) {
	hash := "digest"
	p := Person{Name: "Ana", Cpf: "12345678901", PasswordHash: &hash}

	summary := p.ToSummary()
	assert.Equal(t, "Ana", summary.Name)

	details := p.ToDetails()
	assert.Equal(t, p.Cpf, details.Cpf)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, IsValidationError(ErrAddressRequired))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", NewValidationError("cpf", "bad"))))
	assert.False(t, IsValidationError(ErrDuplicateCpf))

	cause := errors.New("connection reset")
	pe := NewPersistenceError("insert person", cause)
	assert.True(t, IsPersistenceError(pe))
	assert.ErrorIs(t, pe, cause)
	assert.Equal(t, "could not insert person: connection reset", pe.Error())
	assert.Equal(t, "cpf: bad", NewValidationError("cpf", "bad").Error())
}
