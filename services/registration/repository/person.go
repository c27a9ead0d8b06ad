package repository

import (
	"context"
	"errors"

	"registration/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation = "23505"
	cpfIndex        = "idx_people_cpf"
	emailIndex      = "idx_people_email_lower"
)

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(database *gorm.DB) domain.PersonRepo {
	return &personRepository{
		db: database,
	}
}

func (pr *personRepository) Insert(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if err := pr.db.WithContext(ctx).Create(person).Error; err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, domain.NewPersistenceError("insert person", err)
	}
	return person, nil
}

func (pr *personRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	var person domain.Person
	err := pr.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewPersistenceError("get person", err)
	}
	return &person, nil
}

func (pr *personRepository) GetAll(ctx context.Context) ([]domain.Person, error) {
	var people []domain.Person
	if err := pr.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&people).Error; err != nil {
		return nil, domain.NewPersistenceError("list people", err)
	}
	return people, nil
}

// Update overwrites every column but id and created_at. A missing row is
// reported as ErrNotFound.
func (pr *personRepository) Update(ctx context.Context, person *domain.Person) error {
	result := pr.db.WithContext(ctx).
		Model(&domain.Person{}).
		Where("id = ?", person.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(person)
	if result.Error != nil {
		if conflict := uniqueConflict(result.Error); conflict != nil {
			return conflict
		}
		return domain.NewPersistenceError("update person", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete is idempotent, removing an unknown id is not an error.
func (pr *personRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := pr.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Person{}).Error; err != nil {
		return domain.NewPersistenceError("delete person", err)
	}
	return nil
}

func (pr *personRepository) ExistsCpf(ctx context.Context, cpf string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := pr.db.WithContext(ctx).Model(&domain.Person{}).Where("cpf = ?", cpf)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, domain.NewPersistenceError("check cpf", err)
	}
	return count > 0, nil
}

// ExistsEmail compares case-insensitively, like the idx_people_email_lower index.
func (pr *personRepository) ExistsEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := pr.db.WithContext(ctx).Model(&domain.Person{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, domain.NewPersistenceError("check email", err)
	}
	return count > 0, nil
}

func (pr *personRepository) GetByEmail(ctx context.Context, email string) (*domain.Person, error) {
	var person domain.Person
	err := pr.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewPersistenceError("get person by email", err)
	}
	return &person, nil
}

// uniqueConflict maps a unique violation on the cpf or email index to its
// domain error, nil for anything else.
func uniqueConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case cpfIndex:
		return domain.ErrDuplicateCpf
	case emailIndex:
		return domain.ErrDuplicateEmail
	default:
		return nil
	}
}
