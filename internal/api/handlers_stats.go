package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	overview, err := handler.stats.BuildOverview(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build statistics")
	}
	return c.JSON(overview)
}

// GetPrediction returns 204 when the history is too short to project from;
// the client renders its placeholder instead of a fabricated date.
func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	prediction, ok, err := handler.stats.BuildPrediction(handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build prediction")
	}
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(prediction)
}
