package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	entries := api.Group("/entries")
	entries.Get("", handler.GetEntries)
	entries.Get("/:date", handler.GetEntry)
	entries.Post("/:date", handler.UpsertEntry)
	entries.Delete("/:date", handler.DeleteEntry)

	api.Get("/calendar", handler.GetCalendar)
	api.Get("/classify/:date", handler.ClassifyDay)

	stats := api.Group("/stats")
	stats.Get("/overview", handler.GetStatsOverview)

	api.Get("/prediction", handler.GetPrediction)
	api.Get("/vocabulary", handler.GetVocabulary)

	settings := api.Group("/settings")
	settings.Get("/cycle", handler.GetCycleSettings)
	settings.Post("/cycle", handler.UpdateCycleSettings)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
