// Package domain defines the business logic for the signup service.
package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the participant list.
	ErrAlreadyRegistered = errors.New("student already signed up for this activity")
	// ErrActivityFull indicates the participant list is at capacity.
	ErrActivityFull = errors.New("activity is full")
	// ErrParticipantNotFound is returned when the email is not on the participant list.
	ErrParticipantNotFound = errors.New("participant not found in this activity")
)

// Activity is a named extracurricular offering with a capacity-bounded
// participant roster. Participants holds unique student emails in signup order.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// IsFull reports whether the roster is at capacity.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}
