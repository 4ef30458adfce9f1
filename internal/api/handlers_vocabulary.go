package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesync/internal/models"
)

// GetVocabulary serves the fixed catalogs the entry form renders. They are
// configuration constants, not computed data.
func (handler *Handler) GetVocabulary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"flow_levels": models.FlowLevels(),
		"moods":       models.Moods(),
		"symptoms":    models.SymptomCatalog(),
	})
}
