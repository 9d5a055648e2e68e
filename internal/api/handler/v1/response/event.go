package response

import (
	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/service"
)

const ListRedirect = "/api/v1/list/"

type LoginResponse struct {
	Token  string        `json:"token"`
	Person domain.Person `json:"person"`
}

type Greeting struct {
	Abc string `json:"abc"`
}

type EventsResponse struct {
	Events []domain.Event `json:"events"`
}

type EventResponse struct {
	Event domain.Event `json:"event"`
}

// EventDetailsResponse mirrors the details page: Btn reports whether the
// caller already joined.
type EventDetailsResponse struct {
	Event domain.Event `json:"event"`
	Btn   bool         `json:"btn"`
}

type RedirectResponse struct {
	Redirect string        `json:"redirect"`
	Event    *domain.Event `json:"event,omitempty"`
}

type DeleteConfirmation struct {
	Event    domain.Event `json:"event"`
	Question string       `json:"question"`
	Action   string       `json:"action"`
}

type BulkActionResponse struct {
	Affected int64  `json:"affected"`
	Message  string `json:"message"`
}

type ParticipantsResponse struct {
	Participants []domain.Participant `json:"participants"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page,omitempty"`
}

type PersonsResponse struct {
	Persons []domain.Person `json:"persons"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
}

type InlineParticipantsResponse struct {
	Results []service.InlineResult `json:"results"`
}
