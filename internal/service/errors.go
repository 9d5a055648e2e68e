package service

import (
	"errors"

	"github.com/vietanh2810/events-api/internal/repository"
)

var (
	ErrPersonExists         = repository.ErrPersonExists
	ErrPersonNotFound       = repository.ErrPersonNotFound
	ErrEventNotFound        = repository.ErrEventNotFound
	ErrEventDateNotLate     = repository.ErrEventDateNotLate
	ErrOrganizerNotFound    = repository.ErrOrganizerNotFound
	ErrAlreadyParticipating = repository.ErrAlreadyParticipating
	ErrNotParticipating     = repository.ErrNotParticipating
	ErrEventNotActive       = repository.ErrEventNotActive

	ErrWrongPassword  = errors.New("wrong password")
	ErrInactivePerson = errors.New("person is inactive")
	ErrNotOrganizer   = errors.New("only the organizer or a staff member may change this event")
	ErrTooManyInline  = errors.New("too many participants in one submission")
)

// ValidationError carries a rejected field-level check back to the caller.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error) error {
	if err == nil {
		return nil
	}

	return &ValidationError{Err: err}
}
