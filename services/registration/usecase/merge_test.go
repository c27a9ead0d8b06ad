package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"registration/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

type prefixHasher struct{}

func (prefixHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (prefixHasher) Verify(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("boom") }
func (failingHasher) Verify(string, string) bool { return false }

func newTestMerger() *PersonMerger {
	m := NewPersonMerger(prefixHasher{}, uuid.Nil)
	m.now = func() time.Time { return fixedNow }
	return m
}

func strPtr(s string) *string {
	return &s
}

func validCreate() *domain.CreatePersonRequest {
	return &domain.CreatePersonRequest{
		Name:      "Ana",
		Email:     strPtr("ana@x.com"),
		BirthDate: domain.NewDateInput(time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)),
		Cpf:       "12345678901",
		Password:  "secret123",
		Address:   strPtr("Rua A, 1"),
	}
}

func existingPerson() *domain.Person {
	created := fixedNow.Add(-time.Hour)
	return &domain.Person{
		ID:          uuid.New(),
		Name:        "Ana",
		Gender:      strPtr("F"),
		Email:       strPtr("ana@x.com"),
		BirthDate:   time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC),
		Nationality: strPtr("BR"),
		Address:     strPtr("Rua A, 1"),
		Cpf:         "12345678901",
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestBuildNew(t *testing.T) {
	m := newTestMerger()

	person, err := m.BuildNew(validCreate(), domain.V1)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, person.ID)
	assert.Equal(t, "Ana", person.Name)
	assert.Equal(t, "12345678901", person.Cpf)
	assert.Equal(t, "ana@x.com", *person.Email)
	assert.Equal(t, fixedNow, person.CreatedAt)
	assert.Equal(t, person.CreatedAt, person.UpdatedAt)
	require.NotNil(t, person.PasswordHash)
	assert.Equal(t, "hashed:secret123", *person.PasswordHash)
}

func TestBuildNewNeverUsesReservedID(t *testing.T) {
	m := newTestMerger()
	for i := 0; i < 50; i++ {
		person, err := m.BuildNew(validCreate(), domain.V1)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, person.ID)
	}
}

func TestBuildNewBlankOptionalsBecomeNil(t *testing.T) {
	m := newTestMerger()
	req := validCreate()
	req.Gender = strPtr("   ")
	req.Birthplace = strPtr("")

	person, err := m.BuildNew(req, domain.V1)
	require.NoError(t, err)
	assert.Nil(t, person.Gender)
	assert.Nil(t, person.Birthplace)
}

func TestBuildNewVersionRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.CreatePersonRequest)
		version domain.APIVersion
		field   string
	}{
		{"v1 without password", func(r *domain.CreatePersonRequest) { r.Password = "" }, domain.V1, "password"},
		{"v1 short password", func(r *domain.CreatePersonRequest) { r.Password = "abc" }, domain.V1, "password"},
		{"v1 oversized password", func(r *domain.CreatePersonRequest) { r.Password = strings.Repeat("a", 73) }, domain.V1, "password"},
		{"v2 without address", func(r *domain.CreatePersonRequest) { r.Address = nil }, domain.V2, "address"},
		{"v2 blank address", func(r *domain.CreatePersonRequest) { r.Address = strPtr("  ") }, domain.V2, "address"},
		{"blank name", func(r *domain.CreatePersonRequest) { r.Name = " " }, domain.V1, "name"},
		{"bad email", func(r *domain.CreatePersonRequest) { r.Email = strPtr("not-an-email") }, domain.V1, "email"},
		{"short cpf", func(r *domain.CreatePersonRequest) { r.Cpf = "123" }, domain.V1, "cpf"},
		{"missing birth date", func(r *domain.CreatePersonRequest) { r.BirthDate = domain.DateInput{} }, domain.V1, "birth_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(req)

			person, err := newTestMerger().BuildNew(req, tt.version)
			require.Error(t, err)
			assert.Nil(t, person)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestBuildNewV2IgnoresPassword(t *testing.T) {
	req := validCreate()
	req.Password = ""

	person, err := newTestMerger().BuildNew(req, domain.V2)
	require.NoError(t, err)
	assert.Nil(t, person.PasswordHash)
}

func TestBuildNewHasherFailure(t *testing.T) {
	m := NewPersonMerger(failingHasher{}, uuid.Nil)
	m.now = func() time.Time { return fixedNow }

	_, err := m.BuildNew(validCreate(), domain.V1)
	require.Error(t, err)
	assert.False(t, domain.IsValidationError(err))
}

func TestBirthDateWindow(t *testing.T) {
	today := domain.DateOnly(fixedNow)

	tests := []struct {
		name  string
		birth time.Time
		valid bool
	}{
		{"today", today, false},
		{"later today", fixedNow.Add(time.Hour), false},
		{"tomorrow", today.AddDate(0, 0, 1), false},
		{"yesterday", today.AddDate(0, 0, -1), true},
		{"119 years ago", today.AddDate(-119, 0, 0), true},
		{"one day inside 120 years", today.AddDate(-120, 0, 1), true},
		{"exactly 120 years ago", today.AddDate(-120, 0, 0), false},
		{"120 years and a day ago", today.AddDate(-120, 0, -1), false},
		{"zero", time.Time{}, false},
	}

	m := newTestMerger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, m.validBirthDate(tt.birth))
		})
	}
}

func TestMergePatchSparse(t *testing.T) {
	m := newTestMerger()
	existing := existingPerson()

	merged, err := m.MergePatch(existing, &domain.UpdatePersonRequest{
		Email: domain.Some("ana.new@x.com"),
		Name:  domain.Some("   "),
	}, domain.V1)
	require.NoError(t, err)

	assert.Equal(t, "ana.new@x.com", *merged.Email)
	assert.Equal(t, "Ana", merged.Name)
	assert.Equal(t, existing.Cpf, merged.Cpf)
	assert.Equal(t, existing.Gender, merged.Gender)
	assert.Equal(t, existing.BirthDate, merged.BirthDate)
	assert.Equal(t, existing.CreatedAt, merged.CreatedAt)
	assert.True(t, merged.UpdatedAt.After(existing.UpdatedAt))

	assert.Equal(t, "ana@x.com", *existing.Email, "source record must stay untouched")
}

func TestMergePatchUpdatedAtStrictlyAdvances(t *testing.T) {
	m := newTestMerger()
	existing := existingPerson()
	existing.UpdatedAt = fixedNow.Add(time.Minute)

	merged, err := m.MergePatch(existing, &domain.UpdatePersonRequest{}, domain.V1)
	require.NoError(t, err)
	assert.True(t, merged.UpdatedAt.After(existing.UpdatedAt))
}

func TestMergePatchClearsOptionalFields(t *testing.T) {
	m := newTestMerger()
	existing := existingPerson()

	merged, err := m.MergePatch(existing, &domain.UpdatePersonRequest{
		Gender:      domain.Null[string](),
		Nationality: domain.Null[string](),
	}, domain.V1)
	require.NoError(t, err)
	assert.Nil(t, merged.Gender)
	assert.Nil(t, merged.Nationality)
	assert.NotNil(t, existing.Gender)
}

func TestMergePatchRejects(t *testing.T) {
	tests := []struct {
		name    string
		patch   *domain.UpdatePersonRequest
		version domain.APIVersion
		field   string
	}{
		{"short cpf", &domain.UpdatePersonRequest{Cpf: domain.Some("123")}, domain.V1, "cpf"},
		{"cleared name", &domain.UpdatePersonRequest{Name: domain.Null[string]()}, domain.V1, "name"},
		{"cleared cpf", &domain.UpdatePersonRequest{Cpf: domain.Null[string]()}, domain.V2, "cpf"},
		{"cleared birth date", &domain.UpdatePersonRequest{BirthDate: domain.Null[domain.DateInput]()}, domain.V1, "birth_date"},
		{"future birth date", &domain.UpdatePersonRequest{BirthDate: domain.Some(domain.NewDateInput(fixedNow.AddDate(0, 0, 2)))}, domain.V1, "birth_date"},
		{"bad email", &domain.UpdatePersonRequest{Email: domain.Some("nope")}, domain.V1, "email"},
		{"v2 clears address", &domain.UpdatePersonRequest{Address: domain.Null[string]()}, domain.V2, "address"},
		{"v1 short password", &domain.UpdatePersonRequest{Password: domain.Some("abc")}, domain.V1, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := existingPerson()
			snapshot := *existing

			merged, err := newTestMerger().MergePatch(existing, tt.patch, tt.version)
			require.Error(t, err)
			assert.Nil(t, merged)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, snapshot, *existing)
		})
	}
}

func TestMergePatchV1AllowsClearingAddress(t *testing.T) {
	merged, err := newTestMerger().MergePatch(existingPerson(), &domain.UpdatePersonRequest{
		Address: domain.Null[string](),
	}, domain.V1)
	require.NoError(t, err)
	assert.Nil(t, merged.Address)
}

func TestMergePatchPassword(t *testing.T) {
	m := newTestMerger()
	patch := &domain.UpdatePersonRequest{Password: domain.Some("newsecret")}

	merged, err := m.MergePatch(existingPerson(), patch, domain.V1)
	require.NoError(t, err)
	require.NotNil(t, merged.PasswordHash)
	assert.Equal(t, "hashed:newsecret", *merged.PasswordHash)

	merged, err = m.MergePatch(existingPerson(), patch, domain.V2)
	require.NoError(t, err)
	assert.Nil(t, merged.PasswordHash)
}

func TestMergePatchBirthDateOverwrite(t *testing.T) {
	birth := time.Date(1985, time.January, 2, 22, 0, 0, 0, time.UTC)
	merged, err := newTestMerger().MergePatch(existingPerson(), &domain.UpdatePersonRequest{
		BirthDate: domain.Some(domain.NewDateInput(birth)),
	}, domain.V1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1985, time.January, 2, 0, 0, 0, 0, time.UTC), merged.BirthDate)
}
