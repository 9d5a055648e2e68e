package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/events-api/internal/domain"
	"github.com/vietanh2810/events-api/internal/service"
)

type BulkIDsRequest struct {
	IDs []uint `json:"ids"`
}

func (req *BulkIDsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IDs, validation.Required),
	)
}

type InlineParticipantsRequest struct {
	Persons []string `json:"persons"`
}

func (req *InlineParticipantsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Persons,
			validation.Required,
			validation.Length(1, service.MaxInlineParticipants),
			validation.By(eachCIN),
		),
	)
}

func eachCIN(value interface{}) error {
	cins, _ := value.([]string)
	for i, cin := range cins {
		if err := domain.ValidateCIN(cin); err != nil {
			return fmt.Errorf("persons[%d]: %w", i, err)
		}
	}

	return nil
}

var errInvalidParticipantsFilter = errors.New("nbr must be No or Yes")

// EventFilterQuery holds the admin changelist filters.
type EventFilterQuery struct {
	Category string `form:"category"`
	State    *bool  `form:"state"`
	Nbr      string `form:"nbr"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
}

func (q *EventFilterQuery) ToFilter() (domain.EventFilter, error) {
	filter := domain.EventFilter{
		Search: q.Search,
		State:  q.State,
	}

	if q.Category != "" {
		c := domain.Category(q.Category)
		if !c.Valid() {
			return filter, fmt.Errorf("unknown category %q", q.Category)
		}
		filter.Category = &c
	}

	switch p := domain.ParticipantsFilter(q.Nbr); p {
	case domain.ParticipantsAny, domain.ParticipantsNone, domain.ParticipantsSome:
		filter.Participants = p
	default:
		return filter, errInvalidParticipantsFilter
	}

	return filter, nil
}

type SearchQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
}
