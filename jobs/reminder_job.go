package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/AviAkaMe/Studio-App-Code/models"
	"github.com/AviAkaMe/Studio-App-Code/notifications"
	"gorm.io/gorm"
)

// ReminderJob emails students whose booked lesson starts in about an
// hour. Scheduled every five minutes, so the lookup window matches the
// cron interval to avoid duplicate reminders.
type ReminderJob struct {
	DB     *gorm.DB
	Mailer *notifications.EmailService
}

func NewReminderJob(db *gorm.DB, mailer *notifications.EmailService) *ReminderJob {
	return &ReminderJob{DB: db, Mailer: mailer}
}

func (j *ReminderJob) Run() {
	log.Println("Running job: SendLessonReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking
	err := j.DB.
		Preload("Student").
		Preload("Lesson").
		Joins("JOIN lessons ON bookings.lesson_id = lessons.id").
		Where("bookings.status <> ? AND lessons.start_time BETWEEN ? AND ?",
			models.BookingStatusCancelled, lowerBound, upperBound).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming lessons: %v", err)
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		subject := "Reminder: Your Lesson Starts in 1 Hour!"
		body := fmt.Sprintf(
			"<h1>Lesson Reminder</h1><p>Hi %s,</p><p>Your lesson <b>%s</b> starts at %s.</p>",
			booking.Student.Name,
			booking.Lesson.Title,
			booking.Lesson.StartTime.Format(time.Kitchen),
		)
		go j.Mailer.SendEmail(booking.Student.Name, booking.Student.Email, subject, body)
	}
}
