package domain

import (
	"context"
	"errors"
	"strings"

	"example.com/signup/internal/observability"
)

// ErrEmailRequired is returned when a mutation is attempted without an email.
var ErrEmailRequired = errors.New("email is required")

// CatalogRepository captures catalog storage operations. Implementations must
// apply each mutation atomically so the capacity invariant holds.
type CatalogRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, activityName, email string) error
	RemoveParticipant(ctx context.Context, activityName, email string) error
	Reset(ctx context.Context) error
}

// Service orchestrates signup workflows over the catalog.
type Service struct {
	catalog CatalogRepository
}

// NewService constructs a Service.
func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

// ListActivities returns the full catalog keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.catalog.List(ctx)
}

// Signup registers email for the named activity. It fails with
// ErrActivityNotFound, ErrAlreadyRegistered, or ErrActivityFull; the roster is
// unchanged on any failure.
func (s *Service) Signup(ctx context.Context, activityName, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	if err := s.catalog.AddParticipant(ctx, activityName, email); err != nil {
		observability.RecordSignupRejected(rejectionReason(err))
		return err
	}

	observability.RecordSignup(activityName)
	return nil
}

// Unregister removes email from the named activity's roster. It fails with
// ErrActivityNotFound or ErrParticipantNotFound.
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	if err := s.catalog.RemoveParticipant(ctx, activityName, email); err != nil {
		return err
	}

	observability.RecordUnregistration(activityName)
	return nil
}

// ResetCatalog reinstalls the seed catalog, discarding all signups.
func (s *Service) ResetCatalog(ctx context.Context) error {
	return s.catalog.Reset(ctx)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrActivityFull):
		return "activity_full"
	default:
		return "error"
	}
}
