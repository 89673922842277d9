package handlers

import (
	"errors"
	"time"

	"github.com/AviAkaMe/Studio-App-Code/middleware"
	"github.com/AviAkaMe/Studio-App-Code/models"
	"github.com/AviAkaMe/Studio-App-Code/policy"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingHandler struct {
	DB *gorm.DB
}

func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{DB: db}
}

type CreateBookingRequest struct {
	LessonID string `json:"lesson_id" validate:"required,uuid"`
}

type BookingResponse struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Lesson    BookingLesson `json:"lesson"`
}

type BookingLesson struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func bookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID.String(),
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		Lesson: BookingLesson{
			ID:    b.Lesson.ID.String(),
			Title: b.Lesson.Title,
		},
	}
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	callerID, role, err := middleware.Identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired JWT"})
	}
	if err := policy.Authorize(role, policy.ActionCreateBooking, false); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only students can book"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	lessonID, _ := uuid.Parse(req.LessonID)

	// Seats past capacity are not rejected here; the capacity field is
	// informational until overbooking rules land.
	var booking models.Booking
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var lesson models.Lesson
		if err := tx.First(&lesson, "id = ?", lessonID).Error; err != nil {
			return err
		}
		booking = models.Booking{
			LessonID:  lesson.ID,
			StudentID: callerID,
			Status:    models.BookingStatusPending,
			Lesson:    lesson,
		}
		return tx.Omit("Lesson").Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(bookingResponse(booking))
}

// ListBookings is role scoped: students see only their own bookings,
// admins see every booking.
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	callerID, role, err := middleware.Identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired JWT"})
	}
	if err := policy.Authorize(role, policy.ActionListBookings, false); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	query := h.DB.Preload("Lesson")
	if role == policy.RoleStudent {
		query = query.Where("student_id = ?", callerID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list bookings"})
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, bookingResponse(b))
	}
	return c.JSON(responses)
}

// CancelBooking sets the booking to cancelled. Cancelling an already
// cancelled booking succeeds again with no change.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	callerID, role, err := middleware.Identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired JWT"})
	}

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if err := policy.Authorize(role, policy.ActionCancelBooking, booking.StudentID == callerID); err != nil {
			return err
		}
		return tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		if errors.Is(err, policy.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}

	return c.JSON(fiber.Map{"message": "Cancelled"})
}
