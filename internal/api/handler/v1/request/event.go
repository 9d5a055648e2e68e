package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/service"
)

// Layouts accepted for evt_date, tried in order.
var evtDateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04",
	time.RFC3339,
}

var errInvalidEvtDate = errors.New("evt_date must be YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC3339")

// EventForm binds the editable event fields from JSON or form data. The
// counter, the state flag and the participant set are not part of the form.
// The image is read from the multipart file of the same name.
type EventForm struct {
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	Category     string `form:"category" json:"category"`
	EvtDate      string `form:"evt_date" json:"evt_date" example:"2030-01-31"`
	Organisateur string `form:"organisateur" json:"organisateur"`
}

func (f *EventForm) Validate() error {
	categories := make([]interface{}, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, string(c))
	}

	return validation.ValidateStruct(
		f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, domain.TitleMaxLen)),
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.Category, validation.Required, validation.In(categories...)),
		validation.Field(&f.EvtDate, validation.Required, validation.By(func(value interface{}) error {
			_, err := ParseEvtDate(value.(string))
			return err
		})),
		validation.Field(&f.Organisateur, domain.CINRule),
	)
}

// ToInput must be called after Validate.
func (f *EventForm) ToInput(image string) (service.EventInput, error) {
	evtDate, err := ParseEvtDate(f.EvtDate)
	if err != nil {
		return service.EventInput{}, err
	}

	input := service.EventInput{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Category:    domain.Category(f.Category),
		Image:       image,
		EvtDate:     evtDate,
	}
	if org := strings.TrimSpace(f.Organisateur); org != "" {
		input.OrganisateurCIN = &org
	}

	return input, nil
}

// ParseEvtDate reads a date-only value as midnight UTC.
func ParseEvtDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range evtDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errInvalidEvtDate, value)
}
