package domain

import "time"

type Participant struct {
	ID                uint      `json:"id"`
	EventID           uint      `json:"event_id"`
	PersonCIN         string    `json:"person"`
	ParticipationDate time.Time `json:"participation_date"`
}

// ParticipantsFilter partitions events on their participant counter.
type ParticipantsFilter string

const (
	ParticipantsAny  ParticipantsFilter = ""
	ParticipantsNone ParticipantsFilter = "No"
	ParticipantsSome ParticipantsFilter = "Yes"
)

// EventFilter narrows an event listing. Nil fields are not applied.
type EventFilter struct {
	Search       string
	Category     *Category
	State        *bool
	Participants ParticipantsFilter
}

type Page struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

type EventPage struct {
	Events []Event `json:"events"`
	Total  int64   `json:"total"`
	Page
}
