package domain

//go:generate mockgen -source=person.go -destination=mocks/person_mock.go -package=mocks PersonRepo,PersonUseCase
//go:generate mockgen -source=auth.go -destination=mocks/auth_mock.go -package=mocks CredentialHasher,TokenIssuer,AuthUseCase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type APIVersion int

const (
	V1 APIVersion = 1
	V2 APIVersion = 2
)

type Person struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Gender       *string   `gorm:"type:varchar(20)" json:"gender"`
	Email        *string   `gorm:"type:varchar(255)" json:"email"`
	BirthDate    time.Time `gorm:"type:date;not null" json:"birth_date"`
	Birthplace   *string   `gorm:"type:varchar(100)" json:"birthplace"`
	Nationality  *string   `gorm:"type:varchar(100)" json:"nationality"`
	Address      *string   `gorm:"type:varchar(300)" json:"address"`
	Cpf          string    `gorm:"type:varchar(11);not null;uniqueIndex:idx_people_cpf" json:"cpf"`
	PasswordHash *string   `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (Person) TableName() string {
	return "people"
}

// PersonSummary is the list projection.
type PersonSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   *string   `json:"email"`
	Cpf     string    `json:"cpf"`
	Address *string   `json:"address"`
}

// PersonDetails carries every field of a Person except the credential hash.
type PersonDetails struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Gender      *string   `json:"gender"`
	Email       *string   `json:"email"`
	BirthDate   time.Time `json:"birth_date"`
	Birthplace  *string   `json:"birthplace"`
	Nationality *string   `json:"nationality"`
	Address     *string   `json:"address"`
	Cpf         string    `json:"cpf"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Person) ToSummary() PersonSummary {
	return PersonSummary{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Cpf:     p.Cpf,
		Address: p.Address,
	}
}

func (p *Person) ToDetails() *PersonDetails {
	return &PersonDetails{
		ID:          p.ID,
		Name:        p.Name,
		Gender:      p.Gender,
		Email:       p.Email,
		BirthDate:   p.BirthDate,
		Birthplace:  p.Birthplace,
		Nationality: p.Nationality,
		Address:     p.Address,
		Cpf:         p.Cpf,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreatePersonRequest is the create body for both API versions. Password is
// required by v1 only, Address by v2 only; those rules live in the merge engine.
type CreatePersonRequest struct {
	Name        string    `json:"name" valid:"required~name is required"`
	Gender      *string   `json:"gender"`
	Email       *string   `json:"email" valid:"email~invalid email format,optional"`
	BirthDate   DateInput `json:"birth_date" valid:"-"`
	Birthplace  *string   `json:"birthplace"`
	Nationality *string   `json:"nationality"`
	Cpf         string    `json:"cpf" valid:"required~cpf is required,matches(^[0-9]{11}$)~cpf must contain exactly 11 digits"`
	Password    string    `json:"password" valid:"-"`
	Address     *string   `json:"address"`
}

// UpdatePersonRequest is a sparse patch. A field left out of the body stays
// absent; an explicit null asks for the field to be cleared.
type UpdatePersonRequest struct {
	Name        Optional[string]    `json:"name" valid:"-"`
	Gender      Optional[string]    `json:"gender" valid:"-"`
	Email       Optional[string]    `json:"email" valid:"-"`
	BirthDate   Optional[DateInput] `json:"birth_date" valid:"-"`
	Birthplace  Optional[string]    `json:"birthplace" valid:"-"`
	Nationality Optional[string]    `json:"nationality" valid:"-"`
	Cpf         Optional[string]    `json:"cpf" valid:"-"`
	Password    Optional[string]    `json:"password" valid:"-"`
	Address     Optional[string]    `json:"address" valid:"-"`
}

var nonDigit = regexp.MustCompile(`\D`)

// NormalizeCpf strips the usual 000.000.000-00 mask.
func NormalizeCpf(cpf string) string {
	return nonDigit.ReplaceAllString(cpf, "")
}

// normalizeEmail trims the address and keeps its case; lookups and the unique
// index compare lower-cased.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Normalize prepares the request for structural validation.
func (r *CreatePersonRequest) Normalize() {
	r.Cpf = NormalizeCpf(r.Cpf)
	if r.Email != nil {
		e := normalizeEmail(*r.Email)
		if e == "" {
			r.Email = nil
		} else {
			r.Email = &e
		}
	}
}

func (r *UpdatePersonRequest) Normalize() {
	if r.Cpf.Present() && strings.TrimSpace(r.Cpf.Value) != "" {
		r.Cpf.Value = NormalizeCpf(r.Cpf.Value)
	}
	if r.Email.Present() {
		r.Email.Value = normalizeEmail(r.Email.Value)
	}
}

type PersonRepo interface {
	Insert(ctx context.Context, person *Person) (*Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Person, error)
	GetAll(ctx context.Context) ([]Person, error)
	Update(ctx context.Context, person *Person) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsCpf(ctx context.Context, cpf string, excludeID *uuid.UUID) (bool, error)
	ExistsEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	GetByEmail(ctx context.Context, email string) (*Person, error)
}

type PersonUseCase interface {
	CreateV1(ctx context.Context, req *CreatePersonRequest) (*Person, error)
	CreateV2(ctx context.Context, req *CreatePersonRequest) (*Person, error)
	UpdateV1(ctx context.Context, id uuid.UUID, req *UpdatePersonRequest) (*Person, error)
	UpdateV2(ctx context.Context, id uuid.UUID, req *UpdatePersonRequest) (*Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]PersonSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PersonDetails, error)
}
