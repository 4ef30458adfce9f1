package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesync/internal/models"
	"github.com/terraincognita07/cyclesync/internal/services"
)

type cycleSettingsInput struct {
	CycleLength  int `json:"cycle_length"`
	PeriodLength int `json:"period_length"`
}

func (handler *Handler) GetCycleSettings(c *fiber.Ctx) error {
	settings, err := handler.settings.Get()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	input := cycleSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := services.ValidateCycleSettings(input.CycleLength, input.PeriodLength); err != nil {
		if errors.Is(err, services.ErrCycleLengthOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "cycle length should be between 21-45 days")
		}
		return apiError(c, fiber.StatusBadRequest, "period length should be between 2-10 days")
	}

	settings := models.CycleSettings{
		CycleLength:  input.CycleLength,
		PeriodLength: input.PeriodLength,
	}
	if err := handler.settings.Save(&settings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(settings)
}
