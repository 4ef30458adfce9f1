package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesync/internal/cycle"
	"github.com/terraincognita07/cyclesync/internal/services"
)

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	monthStart, err := parseMonthParam(c.Query("month"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	repo, err := handler.days.LoadSnapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	settings, err := handler.settings.Get()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	days := services.BuildCalendarDayStates(monthStart, repo, settings, handler.now(), handler.location)
	return c.JSON(fiber.Map{
		"month": monthStart.Format("2006-01"),
		"days":  days,
	})
}

func (handler *Handler) ClassifyDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	repo, err := handler.days.LoadSnapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	return c.JSON(cycle.Classify(day, repo))
}
