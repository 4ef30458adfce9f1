package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesync/internal/services"
)

func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	from, err := parseDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	entries, err := handler.days.FetchRange(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, found, err := handler.days.FetchDay(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no entry for date")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertEntry(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := services.DayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.days.UpsertDay(day, payload)
	if err != nil {
		if isDayInputError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.days.DeleteDay(day); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func isDayInputError(err error) bool {
	return errors.Is(err, services.ErrInvalidFlow) ||
		errors.Is(err, services.ErrInvalidMood) ||
		errors.Is(err, services.ErrUnknownSymptom) ||
		errors.Is(err, services.ErrNotesTooLong)
}
