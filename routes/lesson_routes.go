package routes

import (
	"github.com/AviAkaMe/Studio-App-Code/handlers"
	"github.com/gofiber/fiber/v2"
)

func LessonRoutes(app *fiber.App, h *handlers.LessonHandler, protected fiber.Handler) {
	api := app.Group("/api/v1")

	lessons := api.Group("/lessons", protected)
	lessons.Get("", h.ListLessons)
	lessons.Post("", h.CreateLesson)
	lessons.Delete("/:lessonId", h.DeleteLesson)
}
