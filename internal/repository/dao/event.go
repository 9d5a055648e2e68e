package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/events-api/internal/domain"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventDateNotLate  = domain.ErrEventDateNotLate
	ErrOrganizerNotFound = errors.New("organizer not found")
)

// UpdatableEventColumns are the columns an event form may change. The state
// flag and the participant counter are managed elsewhere.
var UpdatableEventColumns = []string{"title", "description", "category", "image", "evt_date", "organisateur_cin", "updated_date"}

type Event struct {
	ID              uint      `gorm:"primaryKey"`
	Title           string    `gorm:"size:30;not null"`
	Description     string    `gorm:"type:text"`
	Category        string    `gorm:"size:20;not null"`
	Image           *string   `gorm:"size:100"`
	State           bool      `gorm:"not null;default:true"`
	NbrParticipants *int      `gorm:"default:0"`
	EvtDate         time.Time `gorm:"not null;check:chk_events_evt_date,evt_date > creation_date"`
	CreationDate    time.Time `gorm:"autoCreateTime"`
	UpdatedDate     time.Time `gorm:"autoUpdateTime"`
	OrganisateurCIN *string   `gorm:"size:8;index"`
	Organisateur    *Person   `gorm:"foreignKey:OrganisateurCIN;references:CIN;constraint:OnDelete:SET NULL"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	return domain.ValidateEventDate(e.EvtDate, time.Now())
}

func (e *Event) BeforeUpdate(tx *gorm.DB) error {
	return domain.ValidateEventDate(e.EvtDate, e.CreationDate)
}

// EventQuery narrows FindAll. Nil fields are not applied.
type EventQuery struct {
	Search          string
	Category        *string
	State           *bool
	HasParticipants *bool
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Omit("Organisateur").Create(&event)
	if result.Error != nil {
		return Event{}, translateEventErr(result.Error)
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Model(&event).Select(UpdatableEventColumns).Updates(&event)
	if result.Error != nil {
		return Event{}, translateEventErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindAll returns the events matching q in id order. A non-positive limit
// returns every match.
func (d *EventDAO) FindAll(ctx context.Context, q EventQuery, limit, offset int) ([]Event, int64, error) {
	query := d.db.WithContext(ctx).Model(&Event{})
	if q.Search != "" {
		query = query.Where("title ILIKE ?", "%"+q.Search+"%")
	}
	if q.Category != nil {
		query = query.Where("category = ?", *q.Category)
	}
	if q.State != nil {
		query = query.Where("state = ?", *q.State)
	}
	if q.HasParticipants != nil {
		if *q.HasParticipants {
			query = query.Where("nbr_participants > 0")
		} else {
			query = query.Where("nbr_participants = 0")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("id")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var events []Event
	if err := query.Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Delete removes the event. Participant rows go with it through the
// ON DELETE CASCADE foreign key.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// SetState flips the state flag of every listed event and returns how many
// rows changed.
func (d *EventDAO) SetState(ctx context.Context, ids []uint, state bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := d.db.WithContext(ctx).Model(&Event{}).
		Where("id IN ?", ids).
		UpdateColumns(map[string]interface{}{
			"state":        state,
			"updated_date": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func translateEventErr(err error) error {
	switch {
	case isCheckViolation(err):
		return ErrEventDateNotLate
	case isForeignKeyViolation(err):
		return ErrOrganizerNotFound
	default:
		return err
	}
}
