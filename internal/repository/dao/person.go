package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/events-api/internal/domain"
)

var (
	ErrPersonExists   = errors.New("person already exists")
	ErrPersonNotFound = errors.New("person not found")
)

type Person struct {
	CIN         string `gorm:"primaryKey;size:8"`
	Username    string `gorm:"size:20;uniqueIndex;not null"`
	Email       string `gorm:"size:30;not null"`
	Password    string `gorm:"not null"`
	FirstName   string `gorm:"size:150"`
	LastName    string `gorm:"size:150"`
	IsActive    bool   `gorm:"not null;default:true"`
	IsStaff     bool   `gorm:"not null;default:false"`
	IsSuperuser bool   `gorm:"not null;default:false"`
	LastLogin   *time.Time
	DateJoined  time.Time `gorm:"autoCreateTime"`
}

func (Person) TableName() string {
	return "persons"
}

// BeforeSave runs the person validators on every insert and full save.
func (p *Person) BeforeSave(tx *gorm.DB) error {
	if err := domain.ValidateCIN(p.CIN); err != nil {
		return err
	}

	return domain.ValidateEmail(p.Email)
}

type PersonDAO struct {
	db *gorm.DB
}

func NewPersonDAO(db *gorm.DB) *PersonDAO {
	return &PersonDAO{
		db: db,
	}
}

func (d *PersonDAO) Insert(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).Create(&person)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Person{}, ErrPersonExists
		}

		return Person{}, result.Error
	}

	return person, nil
}

func (d *PersonDAO) Update(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).Save(&person)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Person{}, ErrPersonExists
		}

		return Person{}, result.Error
	}

	return person, nil
}

func (d *PersonDAO) TouchLastLogin(ctx context.Context, cin string, at time.Time) error {
	result := d.db.WithContext(ctx).Model(&Person{CIN: cin}).UpdateColumn("last_login", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func (d *PersonDAO) Delete(ctx context.Context, cin string) error {
	result := d.db.WithContext(ctx).Delete(&Person{}, "cin = ?", cin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func (d *PersonDAO) FindByCIN(ctx context.Context, cin string) (Person, error) {
	var person Person

	result := d.db.WithContext(ctx).First(&person, "cin = ?", cin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}

		return Person{}, result.Error
	}

	return person, nil
}

func (d *PersonDAO) FindByUsername(ctx context.Context, username string) (Person, error) {
	var person Person

	result := d.db.WithContext(ctx).First(&person, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}

		return Person{}, result.Error
	}

	return person, nil
}

// SearchByUsername matches term anywhere in the username, case-insensitively.
func (d *PersonDAO) SearchByUsername(ctx context.Context, term string, limit, offset int) ([]Person, int64, error) {
	query := d.db.WithContext(ctx).Model(&Person{})
	if term != "" {
		query = query.Where("username ILIKE ?", "%"+term+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var persons []Person
	result := query.Order("username").Limit(limit).Offset(offset).Find(&persons)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return persons, total, nil
}
