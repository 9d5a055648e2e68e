package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	CINLength      = 8
	EmailDomain    = "@esprit.tn"
	UsernameMaxLen = 20
	EmailMaxLen    = 30
	TitleMaxLen    = 30
)

var (
	ErrInvalidCIN       = fmt.Errorf("cin must have %d characters", CINLength)
	ErrInvalidEmail     = fmt.Errorf("email must end with %s", EmailDomain)
	ErrEventDateNotLate = errors.New("please check the event date")
)

// ValidateCIN fails unless value is exactly CINLength characters long.
func ValidateCIN(value string) error {
	if len(value) != CINLength {
		return ErrInvalidCIN
	}

	return nil
}

// ValidateEmail fails unless value ends with the organisation domain.
func ValidateEmail(value string) error {
	if !strings.HasSuffix(value, EmailDomain) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateEventDate fails unless evtDate is strictly after reference.
func ValidateEventDate(evtDate, reference time.Time) error {
	if !evtDate.After(reference) {
		return ErrEventDateNotLate
	}

	return nil
}

var (
	CINRule   = validation.By(stringRule(ValidateCIN))
	EmailRule = validation.By(stringRule(ValidateEmail))
)

func stringRule(fn func(string) error) validation.RuleFunc {
	return func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return fmt.Errorf("expected a string, got %T", value)
		}
		if s == "" {
			return nil // left to validation.Required
		}

		return fn(s)
	}
}
