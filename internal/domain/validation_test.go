package domain

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCIN(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"eight characters", "12345678", false},
		{"too short", "1234567", true},
		{"too long", "123456789", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCIN(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCIN)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@esprit.tn"))
	assert.ErrorIs(t, ValidateEmail("a@gmail.com"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail("a@esprit.tn.fake"), ErrInvalidEmail)
}

func TestValidateEventDate(t *testing.T) {
	now := time.Now()

	assert.NoError(t, ValidateEventDate(now.Add(time.Hour), now))
	assert.ErrorIs(t, ValidateEventDate(now, now), ErrEventDateNotLate)
	assert.ErrorIs(t, ValidateEventDate(now.Add(-time.Hour), now), ErrEventDateNotLate)
}

func TestPerson_Validate(t *testing.T) {
	valid := Person{CIN: "12345678", Username: "alice", Email: "a@esprit.tn"}
	require.NoError(t, valid.Validate())

	badCIN := valid
	badCIN.CIN = "42"
	assert.Error(t, badCIN.Validate())

	longUsername := valid
	longUsername.Username = "a_username_longer_than_twenty"
	assert.Error(t, longUsername.Validate())

	longEmail := valid
	longEmail.Email = "a_very_long_local_part@esprit.tn"
	assert.Error(t, longEmail.Validate())
}

func TestEvent(t *testing.T) {
	e := Event{Title: "concert", Category: CategoryCinema, EvtDate: time.Now()}
	require.NoError(t, e.Validate())
	assert.Equal(t, "concert", e.String())
	assert.Equal(t, 0, e.Participants())

	e.Category = "theatre"
	assert.Error(t, e.Validate())

	cin := "12345678"
	e.OrganisateurCIN = &cin
	assert.True(t, e.IsOrganizedBy("12345678"))
	assert.False(t, e.IsOrganizedBy("87654321"))
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 0, Size: 2}.Offset())
	assert.Equal(t, 0, Page{Number: 1, Size: 2}.Offset())
	assert.Equal(t, 4, Page{Number: 3, Size: 2}.Offset())
}

func TestRules_AcceptPointers(t *testing.T) {
	good, bad := "12345678", "123"
	var missing *string

	assert.NoError(t, validation.Validate(&good, CINRule))
	assert.ErrorIs(t, validation.Validate(&bad, CINRule), ErrInvalidCIN)
	assert.NoError(t, validation.Validate(missing, CINRule))

	email := "someone@gmail.com"
	assert.ErrorIs(t, validation.Validate(&email, EmailRule), ErrInvalidEmail)
}
