package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LessonID  uuid.UUID `gorm:"type:uuid;not null" json:"lesson_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	Lesson  Lesson `gorm:"foreignkey:LessonID" json:"-"`
	Student User   `gorm:"foreignkey:StudentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
