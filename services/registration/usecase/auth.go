package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"registration/domain"
	"registration/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type authUC struct {
	repo      domain.PersonRepo
	people    domain.PersonUseCase
	hasher    domain.CredentialHasher
	tokens    domain.TokenIssuer
	bootstrap domain.BootstrapPrincipal
	metrics   *metrics.Metrics
	log       *logrus.Logger
}

func NewAuthUseCase(repo domain.PersonRepo, people domain.PersonUseCase, hasher domain.CredentialHasher, tokens domain.TokenIssuer,
	bootstrap domain.BootstrapPrincipal, m *metrics.Metrics, log *logrus.Logger) domain.AuthUseCase {
	return &authUC{
		repo:      repo,
		people:    people,
		hasher:    hasher,
		tokens:    tokens,
		bootstrap: bootstrap,
		metrics:   m,
		log:       log,
	}
}

func (auc *authUC) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	if auc.isBootstrap(email, data.Password) {
		return auc.issue(auc.bootstrap.ID, auc.bootstrap.DisplayName)
	}

	person, err := auc.repo.GetByEmail(ctx, email)
	if err != nil {
		auc.metrics.ObserveLogin(metrics.OutcomeError)
		return nil, err
	}

	// unknown account, account without credential and wrong password look the same
	if person == nil || person.PasswordHash == nil || !auc.hasher.Verify(data.Password, *person.PasswordHash) {
		auc.metrics.ObserveLogin(metrics.OutcomeUnauthorized)
		return nil, domain.ErrInvalidCredentials
	}

	return auc.issue(person.ID, person.Name)
}

func (auc *authUC) issue(subject uuid.UUID, displayName string) (*domain.LoginResponse, error) {
	token, expiresAt, err := auc.tokens.IssueToken(subject, displayName)
	if err != nil {
		auc.metrics.ObserveLogin(metrics.OutcomeError)
		if auc.log != nil {
			auc.log.WithField("subject", subject.String()).WithError(err).Error("could not issue token")
		}
		return nil, err
	}

	auc.metrics.ObserveLogin(metrics.OutcomeSuccess)
	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (auc *authUC) isBootstrap(email, password string) bool {
	if !auc.bootstrap.Enabled() {
		return false
	}
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(auc.bootstrap.Email))) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(auc.bootstrap.Password)) == 1
	return emailMatch && passwordMatch
}

// Register is the self-service signup: a v1 create keyed by a unique email.
func (auc *authUC) Register(ctx context.Context, req *domain.CreatePersonRequest) (*domain.Person, error) {
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}

	if auc.bootstrap.Enabled() && strings.EqualFold(strings.TrimSpace(*req.Email), auc.bootstrap.Email) {
		return nil, domain.ErrDuplicateEmail
	}

	existing, err := auc.repo.GetByEmail(ctx, *req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	person, err := auc.people.CreateV1(ctx, req)
	if err != nil {
		if auc.log != nil && !errors.Is(err, domain.ErrDuplicateCpf) && !domain.IsValidationError(err) {
			auc.log.WithError(err).Error("could not register person")
		}
		return nil, err
	}
	return person, nil
}
