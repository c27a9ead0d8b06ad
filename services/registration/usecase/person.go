package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"registration/domain"
	"registration/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type personUseCase struct {
	repo    domain.PersonRepo
	merger  *PersonMerger
	metrics *metrics.Metrics
	log     *logrus.Logger
	TimeOut time.Duration
}

func NewPersonUseCase(repo domain.PersonRepo, merger *PersonMerger, m *metrics.Metrics, log *logrus.Logger, to time.Duration) domain.PersonUseCase {
	return &personUseCase{
		repo:    repo,
		merger:  merger,
		metrics: m,
		log:     log,
		TimeOut: to,
	}
}

// writeContext keeps a write running when the caller goes away; the storage
// statement either lands or fails on its own.
func (pu *personUseCase) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if pu.TimeOut <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, pu.TimeOut)
}

func (pu *personUseCase) CreateV1(ctx context.Context, req *domain.CreatePersonRequest) (*domain.Person, error) {
	person, err := pu.create(ctx, req, domain.V1)
	pu.observe("create_v1", nil, err)
	return person, err
}

func (pu *personUseCase) CreateV2(ctx context.Context, req *domain.CreatePersonRequest) (*domain.Person, error) {
	if req.Address == nil || strings.TrimSpace(*req.Address) == "" {
		pu.observe("create_v2", nil, domain.ErrAddressRequired)
		return nil, domain.ErrAddressRequired
	}

	person, err := pu.create(ctx, req, domain.V2)
	pu.observe("create_v2", nil, err)
	return person, err
}

func (pu *personUseCase) create(ctx context.Context, req *domain.CreatePersonRequest, version domain.APIVersion) (*domain.Person, error) {
	person, err := pu.merger.BuildNew(req, version)
	if err != nil {
		return nil, err
	}

	ctx, cancel := pu.writeContext(ctx)
	defer cancel()

	if err := pu.checkUnique(ctx, person, nil); err != nil {
		return nil, err
	}

	return pu.repo.Insert(ctx, person)
}

func (pu *personUseCase) UpdateV1(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonRequest) (*domain.Person, error) {
	person, err := pu.update(ctx, id, req, domain.V1)
	pu.observe("update_v1", &id, err)
	return person, err
}

func (pu *personUseCase) UpdateV2(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonRequest) (*domain.Person, error) {
	person, err := pu.update(ctx, id, req, domain.V2)
	pu.observe("update_v2", &id, err)
	return person, err
}

// update runs the same pipeline for both versions, uniqueness checks included.
func (pu *personUseCase) update(ctx context.Context, id uuid.UUID, req *domain.UpdatePersonRequest, version domain.APIVersion) (*domain.Person, error) {
	ctx, cancel := pu.writeContext(ctx)
	defer cancel()

	existing, err := pu.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	merged, err := pu.merger.MergePatch(existing, req, version)
	if err != nil {
		return nil, err
	}

	if err := pu.checkUnique(ctx, merged, &id); err != nil {
		return nil, err
	}

	if err := pu.repo.Update(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// checkUnique rejects a CPF or login email already held by another record.
// The unique indexes still catch writes racing past these checks.
func (pu *personUseCase) checkUnique(ctx context.Context, person *domain.Person, excludeID *uuid.UUID) error {
	exists, err := pu.repo.ExistsCpf(ctx, person.Cpf, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateCpf
	}

	if person.Email == nil {
		return nil
	}
	exists, err = pu.repo.ExistsEmail(ctx, *person.Email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateEmail
	}
	return nil
}

func (pu *personUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := pu.writeContext(ctx)
	defer cancel()

	err := pu.repo.Delete(ctx, id)
	pu.observe("delete", &id, err)
	return err
}

func (pu *personUseCase) GetAll(ctx context.Context) ([]domain.PersonSummary, error) {
	people, err := pu.repo.GetAll(ctx)
	if err != nil {
		pu.observe("get_all", nil, err)
		return nil, err
	}

	summaries := make([]domain.PersonSummary, 0, len(people))
	for i := range people {
		summaries = append(summaries, people[i].ToSummary())
	}
	pu.observe("get_all", nil, nil)
	return summaries, nil
}

func (pu *personUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.PersonDetails, error) {
	person, err := pu.repo.GetByID(ctx, id)
	if err == nil && person == nil {
		err = domain.ErrNotFound
	}
	pu.observe("get_by_id", &id, err)
	if err != nil {
		return nil, err
	}
	return person.ToDetails(), nil
}

func (pu *personUseCase) observe(operation string, id *uuid.UUID, err error) {
	outcome := outcomeOf(err)
	pu.metrics.ObservePerson(operation, outcome)

	if err == nil || pu.log == nil {
		return
	}

	fields := logrus.Fields{
		"operation": operation,
		"outcome":   outcome,
	}
	if id != nil {
		fields["person_id"] = id.String()
	}

	entry := pu.log.WithFields(fields).WithError(err)
	if outcome == metrics.OutcomeError {
		entry.Error("person operation failed")
		return
	}
	entry.Info("person operation rejected")
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case domain.IsValidationError(err):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrDuplicateCpf), errors.Is(err, domain.ErrDuplicateEmail):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}
