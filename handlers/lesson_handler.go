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

type LessonHandler struct {
	DB *gorm.DB
}

func NewLessonHandler(db *gorm.DB) *LessonHandler {
	return &LessonHandler{DB: db}
}

type CreateLessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
}

func (h *LessonHandler) CreateLesson(c *fiber.Ctx) error {
	callerID, role, err := middleware.Identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired JWT"})
	}
	if err := policy.Authorize(role, policy.ActionCreateLesson, false); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	var req CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time must be a valid RFC 3339 timestamp"})
	}

	// The trainer is always the authenticated caller; a client-supplied
	// trainer_id is ignored so ownership cannot be spoofed.
	lesson := models.Lesson{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		Duration:    req.Duration,
		Capacity:    req.Capacity,
		TrainerID:   callerID,
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&lesson).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

func (h *LessonHandler) ListLessons(c *fiber.Ctx) error {
	_, role, err := middleware.Identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired JWT"})
	}
	if err := policy.Authorize(role, policy.ActionListLessons, false); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	var lessons []models.Lesson
	if err := h.DB.Find(&lessons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list lessons"})
	}
	return c.JSON(lessons)
}

// DeleteLesson removes a lesson and every booking that references it in
// one transaction. The bookings are deleted explicitly rather than
// relying on a storage-level cascade, so deletion works the same on any
// engine.
func (h *LessonHandler) DeleteLesson(c *fiber.Ctx) error {
	_, role, err := middleware.Identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired JWT"})
	}
	if err := policy.Authorize(role, policy.ActionDeleteLesson, false); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var lesson models.Lesson
		if err := tx.First(&lesson, "id = ?", lessonID).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lesson).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete lesson"})
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}
