package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"schedule-service/internal/apperr"
	"schedule-service/internal/events"
	"schedule-service/internal/metrics"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is the only login failure callers ever see, so an
	// unknown ci cannot be told apart from a wrong password.
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "invalid identity or password")
	ErrCredentialExists   = apperr.New(apperr.ErrConflict, "duplicate entry")

	errCredentialNotFound = apperr.New(apperr.ErrNotFound, "credential not found")
)

type CredentialStore interface {
	Create(ctx context.Context, credential *Credential) error
	GetByCI(ctx context.Context, ci string) (*Credential, error)
}

// IdentityChecker reports whether a person with the given ci exists.
// Both student.Repository and instructor.Repository satisfy it.
type IdentityChecker interface {
	Exists(ctx context.Context, ci string) (bool, error)
}

type Service struct {
	credentials CredentialStore
	students    IdentityChecker
	instructors IdentityChecker
	events      *events.Emitter
	metrics     *metrics.Metrics
}

func NewService(credentials CredentialStore, students, instructors IdentityChecker, emitter *events.Emitter, m *metrics.Metrics) *Service {
	return &Service{
		credentials: credentials,
		students:    students,
		instructors: instructors,
		events:      emitter,
		metrics:     m,
	}
}

// Login checks a password against the stored credential of identity.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	credential, err := s.credentials.GetByCI(ctx, req.Identity)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			s.metrics.Schedule.RecordLogin(ctx, false)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !passwordMatches(credential.Password, req.Password) {
		s.metrics.Schedule.RecordLogin(ctx, false)
		return nil, ErrInvalidCredentials
	}

	s.metrics.Schedule.RecordLogin(ctx, true)
	return &LoginResponse{
		Status: "success",
		Email:  credential.Email,
	}, nil
}

// Register stores a bcrypt hashed credential for an existing student or instructor.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	known, err := s.isKnownIdentity(ctx, req.Identity)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.Validation("no student or instructor with ci %s", req.Identity)
	}

	existing, err := s.credentials.GetByCI(ctx, req.Identity)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCredentialExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if err := s.credentials.Create(ctx, &Credential{
		CI:       req.Identity,
		Password: string(hashedPassword),
		Email:    req.Email,
	}); err != nil {
		return nil, err
	}

	resp := &RegisterResponse{
		Identity: req.Identity,
		Email:    req.Email,
	}
	s.events.Emit(ctx, "credential.registered", req.Identity, resp)
	return resp, nil
}

func (s *Service) isKnownIdentity(ctx context.Context, ci string) (bool, error) {
	exists, err := s.students.Exists(ctx, ci)
	if err != nil || exists {
		return exists, err
	}
	return s.instructors.Exists(ctx, ci)
}

const bcryptHashLen = 60

// passwordMatches accepts bcrypt hashes written by Register as well as
// legacy plaintext rows.
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// isBcryptHash reports whether s is a well-formed bcrypt hash. A plaintext
// password that merely starts with a bcrypt prefix is not one.
func isBcryptHash(s string) bool {
	if len(s) != bcryptHashLen {
		return false
	}
	if !strings.HasPrefix(s, "$2a$") && !strings.HasPrefix(s, "$2b$") && !strings.HasPrefix(s, "$2y$") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
