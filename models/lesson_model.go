package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"size:128;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	Duration    int       `gorm:"not null" json:"duration"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	TrainerID   uuid.UUID `gorm:"type:uuid;not null" json:"trainer_id"`

	Trainer  User      `gorm:"foreignkey:TrainerID" json:"-"`
	Bookings []Booking `gorm:"foreignkey:LessonID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
