package response

import (
	"time"

	"github.com/vietanh2810/events-api/internal/domain"
)

type FieldChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormField struct {
	Name      string        `json:"name"`
	Label     string        `json:"label"`
	Widget    string        `json:"widget"`
	Required  bool          `json:"required"`
	MaxLength int           `json:"max_length,omitempty"`
	Choices   []FieldChoice `json:"choices,omitempty"`
	Value     any           `json:"value,omitempty"`
}

// FormDescriptor describes how a client should render the event form.
type FormDescriptor struct {
	Method  string      `json:"method"`
	Action  string      `json:"action"`
	Enctype string      `json:"enctype"`
	Fields  []FormField `json:"fields"`
}

func NewEventForm(action string, current *domain.Event) FormDescriptor {
	choices := make([]FieldChoice, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		choices = append(choices, FieldChoice{Value: string(c), Label: string(c)})
	}

	fields := []FormField{
		{Name: "title", Label: "Title", Widget: "text", Required: true, MaxLength: domain.TitleMaxLen},
		{Name: "description", Label: "Description", Widget: "textarea", Required: true},
		{Name: "category", Label: "Category", Widget: "select", Required: true, Choices: choices},
		{Name: "image", Label: "Image", Widget: "file"},
		{Name: "evt_date", Label: "Event date", Widget: "date", Required: true},
		{Name: "organisateur", Label: "Organisateur", Widget: "autocomplete"},
	}

	if current != nil {
		values := map[string]any{
			"title":       current.Title,
			"description": current.Description,
			"category":    string(current.Category),
			"image":       current.Image,
			"evt_date":    current.EvtDate.Format(time.DateOnly),
		}
		if current.OrganisateurCIN != nil {
			values["organisateur"] = *current.OrganisateurCIN
		}
		for i := range fields {
			if v, ok := values[fields[i].Name]; ok && v != "" {
				fields[i].Value = v
			}
		}
	}

	return FormDescriptor{
		Method:  "POST",
		Action:  action,
		Enctype: "multipart/form-data",
		Fields:  fields,
	}
}
