package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Category string

const (
	CategorySport   Category = "sport"
	CategoryMusique Category = "musique"
	CategoryCinema  Category = "Cinema"
)

var Categories = []Category{CategorySport, CategoryMusique, CategoryCinema}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

type Event struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        Category  `json:"category"`
	Image           string    `json:"image,omitempty"`
	State           bool      `json:"state"`
	NbrParticipants *int      `json:"nbr_participants"`
	EvtDate         time.Time `json:"evt_date"`
	CreationDate    time.Time `json:"creation_date"`
	UpdatedDate     time.Time `json:"updated_date"`
	OrganisateurCIN *string   `json:"organisateur"`
}

// Validate checks field-level constraints. The event date is checked
// separately at write time, see ValidateEventDate.
func (e Event) Validate() error {
	categories := make([]interface{}, 0, len(Categories))
	for _, c := range Categories {
		categories = append(categories, c)
	}

	return validation.ValidateStruct(
		&e,
		validation.Field(&e.Title, validation.Required, validation.Length(1, TitleMaxLen)),
		validation.Field(&e.Category, validation.Required, validation.In(categories...)),
		validation.Field(&e.EvtDate, validation.Required),
	)
}

// Participants returns the participant counter, treating an unset counter as zero.
func (e Event) Participants() int {
	if e.NbrParticipants == nil {
		return 0
	}

	return *e.NbrParticipants
}

// IsOrganizedBy reports whether cin owns the event.
func (e Event) IsOrganizedBy(cin string) bool {
	return e.OrganisateurCIN != nil && *e.OrganisateurCIN == cin
}

func (e Event) String() string {
	return e.Title
}
