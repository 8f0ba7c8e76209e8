package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	addCalls    []string
	removeCalls []string
	resetCalls  int
	addErr      error
	removeErr   error
}

func (s *stubCatalog) List(ctx context.Context) (map[string]Activity, error) {
	return map[string]Activity{"Chess Club": {MaxParticipants: 12}}, nil
}

func (s *stubCatalog) AddParticipant(ctx context.Context, activityName, email string) error {
	s.addCalls = append(s.addCalls, activityName+"/"+email)
	return s.addErr
}

func (s *stubCatalog) RemoveParticipant(ctx context.Context, activityName, email string) error {
	s.removeCalls = append(s.removeCalls, activityName+"/"+email)
	return s.removeErr
}

func (s *stubCatalog) Reset(ctx context.Context) error {
	s.resetCalls++
	return nil
}

func TestSignupRequiresEmail(t *testing.T) {
	store := &stubCatalog{}
	service := NewService(store)

	err := service.Signup(context.Background(), "Chess Club", "   ")
	require.ErrorIs(t, err, ErrEmailRequired)
	require.Empty(t, store.addCalls)
}

func TestSignupTrimsEmail(t *testing.T) {
	store := &stubCatalog{}
	service := NewService(store)

	err := service.Signup(context.Background(), "Chess Club", " student@mergington.edu ")
	require.NoError(t, err)
	require.Equal(t, []string{"Chess Club/student@mergington.edu"}, store.addCalls)
}

func TestSignupPropagatesCatalogError(t *testing.T) {
	store := &stubCatalog{addErr: ErrActivityFull}
	service := NewService(store)

	err := service.Signup(context.Background(), "Chess Club", "student@mergington.edu")
	require.ErrorIs(t, err, ErrActivityFull)
}

func TestUnregisterRequiresEmail(t *testing.T) {
	store := &stubCatalog{}
	service := NewService(store)

	err := service.Unregister(context.Background(), "Chess Club", "")
	require.ErrorIs(t, err, ErrEmailRequired)
	require.Empty(t, store.removeCalls)
}

func TestUnregisterPropagatesCatalogError(t *testing.T) {
	store := &stubCatalog{removeErr: ErrParticipantNotFound}
	service := NewService(store)

	err := service.Unregister(context.Background(), "Chess Club", "student@mergington.edu")
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestResetCatalog(t *testing.T) {
	store := &stubCatalog{}
	service := NewService(store)

	require.NoError(t, service.ResetCatalog(context.Background()))
	require.Equal(t, 1, store.resetCalls)
}

func TestRejectionReason(t *testing.T) {
	require.Equal(t, "activity_not_found", rejectionReason(ErrActivityNotFound))
	require.Equal(t, "already_registered", rejectionReason(ErrAlreadyRegistered))
	require.Equal(t, "activity_full", rejectionReason(ErrActivityFull))
	require.Equal(t, "error", rejectionReason(errors.New("boom")))
}

func TestActivityHelpers(t *testing.T) {
	activity := Activity{
		MaxParticipants: 2,
		Participants:    []string{"a@mergington.edu", "b@mergington.edu"},
	}
	require.True(t, activity.IsFull())
	require.True(t, activity.HasParticipant("a@mergington.edu"))
	require.False(t, activity.HasParticipant("c@mergington.edu"))

	empty := Activity{MaxParticipants: 2}
	require.False(t, empty.IsFull())
}
