package usecase

import (
	"regexp"
	"strings"
	"time"

	"registration/domain"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

const (
	maxAgeYears       = 120
	minPasswordLength = 6
	maxPasswordBytes  = 72
)

var cpfPattern = regexp.MustCompile(`^[0-9]{11}$`)

// PersonMerger builds and patches Person records and enforces the field rules
// shared by both API versions. It never touches storage.
type PersonMerger struct {
	hasher   domain.CredentialHasher
	reserved uuid.UUID
	now      func() time.Time
}

func NewPersonMerger(hasher domain.CredentialHasher, reserved uuid.UUID) *PersonMerger {
	return &PersonMerger{
		hasher:   hasher,
		reserved: reserved,
		now:      time.Now,
	}
}

func (m *PersonMerger) clock() time.Time {
	return m.now().UTC().Truncate(time.Microsecond)
}

func (m *PersonMerger) newID() uuid.UUID {
	id := uuid.New()
	for id == m.reserved || id == uuid.Nil {
		id = uuid.New()
	}
	return id
}

func (m *PersonMerger) BuildNew(req *domain.CreatePersonRequest, version domain.APIVersion) (*domain.Person, error) {
	now := m.clock()
	person := &domain.Person{
		ID:          m.newID(),
		Name:        req.Name,
		Gender:      blankToNil(req.Gender),
		Email:       blankToNil(req.Email),
		BirthDate:   domain.DateOnly(req.BirthDate.Time),
		Birthplace:  blankToNil(req.Birthplace),
		Nationality: blankToNil(req.Nationality),
		Address:     blankToNil(req.Address),
		Cpf:         req.Cpf,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch version {
	case domain.V1:
		hash, err := m.hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		person.PasswordHash = &hash
	case domain.V2:
		if person.Address == nil {
			return nil, domain.ErrAddressRequired
		}
	}

	if err := m.Validate(person, version); err != nil {
		return nil, err
	}
	return person, nil
}

// MergePatch applies patch on a copy of existing. On error existing is left as
// it was and no merged record is returned.
func (m *PersonMerger) MergePatch(existing *domain.Person, patch *domain.UpdatePersonRequest, version domain.APIVersion) (*domain.Person, error) {
	merged := *existing

	if err := mergeRequired(&merged.Name, patch.Name, "name"); err != nil {
		return nil, err
	}
	if err := mergeRequired(&merged.Cpf, patch.Cpf, "cpf"); err != nil {
		return nil, err
	}
	if patch.BirthDate.Cleared() {
		return nil, domain.NewValidationError("birth_date", "birth date cannot be cleared")
	}
	if patch.BirthDate.Present() {
		merged.BirthDate = domain.DateOnly(patch.BirthDate.Value.Time)
	}

	mergeOptional(&merged.Gender, patch.Gender)
	mergeOptional(&merged.Email, patch.Email)
	mergeOptional(&merged.Birthplace, patch.Birthplace)
	mergeOptional(&merged.Nationality, patch.Nationality)
	mergeOptional(&merged.Address, patch.Address)

	if version == domain.V1 && patch.Password.Present() && strings.TrimSpace(patch.Password.Value) != "" {
		hash, err := m.hashPassword(patch.Password.Value)
		if err != nil {
			return nil, err
		}
		merged.PasswordHash = &hash
	}

	if err := m.Validate(&merged, version); err != nil {
		return nil, err
	}

	now := m.clock()
	if !now.After(existing.UpdatedAt) {
		now = existing.UpdatedAt.Add(time.Microsecond)
	}
	merged.UpdatedAt = now

	return &merged, nil
}

func (m *PersonMerger) Validate(p *domain.Person, version domain.APIVersion) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "name is required")
	}

	if p.Email != nil && *p.Email != "" && !govalidator.IsEmail(*p.Email) {
		return domain.NewValidationError("email", "invalid email format")
	}

	if !m.validBirthDate(p.BirthDate) {
		return domain.NewValidationError("birth_date", "birth date must be in the past and at most 120 years ago")
	}

	if !cpfPattern.MatchString(p.Cpf) {
		return domain.NewValidationError("cpf", "cpf must contain exactly 11 digits")
	}

	if version == domain.V2 && (p.Address == nil || strings.TrimSpace(*p.Address) == "") {
		return domain.ErrAddressRequired
	}

	return nil
}

// validBirthDate compares calendar days: today itself and exactly 120 years
// ago are both outside the window.
func (m *PersonMerger) validBirthDate(birth time.Time) bool {
	if birth.IsZero() {
		return false
	}
	today := domain.DateOnly(m.now())
	day := domain.DateOnly(birth)
	oldest := today.AddDate(-maxAgeYears, 0, 0)
	return day.Before(today) && day.After(oldest)
}

func (m *PersonMerger) hashPassword(plain string) (string, error) {
	if strings.TrimSpace(plain) == "" {
		return "", domain.NewValidationError("password", "password is required")
	}
	if len(plain) < minPasswordLength {
		return "", domain.NewValidationError("password", "password must have at least 6 characters")
	}
	if len(plain) > maxPasswordBytes {
		return "", domain.NewValidationError("password", "password must have at most 72 bytes")
	}
	hash, err := m.hasher.Hash(plain)
	if err != nil {
		return "", err
	}
	return hash, nil
}

func mergeRequired(dst *string, field domain.Optional[string], name string) error {
	if field.Cleared() {
		return domain.NewValidationError(name, name+" cannot be cleared")
	}
	if field.Present() && strings.TrimSpace(field.Value) != "" {
		*dst = field.Value
	}
	return nil
}

// mergeOptional points dst at a fresh copy so the source record keeps its own
// value.
func mergeOptional(dst **string, field domain.Optional[string]) {
	switch {
	case field.Cleared():
		*dst = nil
	case field.Present() && strings.TrimSpace(field.Value) != "":
		v := field.Value
		*dst = &v
	}
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
