package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAlreadyParticipating = errors.New("person already joined this event")
	ErrNotParticipating     = errors.New("person has not joined this event")
	ErrEventNotActive       = errors.New("event is not active")
)

type Participant struct {
	ID                uint      `gorm:"primaryKey"`
	EventID           uint      `gorm:"not null;uniqueIndex:uq_participants_event_person"`
	Event             *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	PersonCIN         string    `gorm:"size:8;not null;uniqueIndex:uq_participants_event_person"`
	Person            *Person   `gorm:"foreignKey:PersonCIN;references:CIN;constraint:OnDelete:CASCADE"`
	ParticipationDate time.Time `gorm:"type:date;autoCreateTime"`
}

func (Participant) TableName() string {
	return "participants"
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

// Join records cin as a participant of the event and bumps its counter in a
// single transaction. The event row stays locked until commit so concurrent
// joins and cancels on the same event serialize.
func (d *ParticipantDAO) Join(ctx context.Context, eventID uint, cin string) (Participant, Event, error) {
	var participant Participant
	var event Event

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEvent(tx, eventID, &event); err != nil {
			return err
		}
		if !event.State {
			return ErrEventNotActive
		}

		participant = Participant{EventID: eventID, PersonCIN: cin}
		if err := tx.Omit(clause.Associations).Create(&participant).Error; err != nil {
			switch {
			case isUniqueViolation(err):
				return ErrAlreadyParticipating
			case isForeignKeyViolation(err):
				return ErrPersonNotFound
			default:
				return err
			}
		}

		return bumpCounter(tx, &event, "COALESCE(nbr_participants, 0) + 1")
	})
	if err != nil {
		return Participant{}, Event{}, err
	}

	return participant, event, nil
}

// Cancel removes the participation of cin and decrements the counter, never
// below zero, in a single transaction.
func (d *ParticipantDAO) Cancel(ctx context.Context, eventID uint, cin string) (Event, error) {
	var event Event

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEvent(tx, eventID, &event); err != nil {
			return err
		}

		result := tx.Where("event_id = ? AND person_cin = ?", eventID, cin).Delete(&Participant{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotParticipating
		}

		return bumpCounter(tx, &event, "GREATEST(COALESCE(nbr_participants, 0) - 1, 0)")
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *ParticipantDAO) Exists(ctx context.Context, eventID uint, cin string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Participant{}).
		Where("event_id = ? AND person_cin = ?", eventID, cin).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *ParticipantDAO) FindByEventID(ctx context.Context, eventID uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) FindAll(ctx context.Context, limit, offset int) ([]Participant, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Participant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var participants []Participant
	result := d.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&participants)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return participants, total, nil
}

func lockEvent(tx *gorm.DB, eventID uint, event *Event) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(event, eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEventNotFound
	}

	return err
}

func bumpCounter(tx *gorm.DB, event *Event, expr string) error {
	result := tx.Model(event).UpdateColumn("nbr_participants", gorm.Expr(expr))
	if result.Error != nil {
		return result.Error
	}

	return tx.First(event, event.ID).Error
}
