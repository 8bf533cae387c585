package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/electricity-usage-tracker/internal/energy"
	"github.com/i474232898/electricity-usage-tracker/internal/export"
	"github.com/i474232898/electricity-usage-tracker/internal/store"
)

// sessionHeader carries the caller's session ID. Each session owns an
// isolated history with no cross-session visibility.
const sessionHeader = "X-Session-ID"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *energy.Service, sessions *store.MemoryStore) {
	v1 := app.Group("/api/v1")

	v1.Post("/sessions", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"sessionId": sessions.NewSession(),
		})
	})

	v1.Get("/estimate", func(c *fiber.Ctx) error {
		profile := profileFromQuery(c)
		return c.JSON(service.Estimate(profile))
	})

	v1.Post("/usage", func(c *fiber.Ctx) error {
		sessionID, err := requireSession(c)
		if err != nil {
			return err
		}

		var profile energy.UserProfile
		if err := c.BodyParser(&profile); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid profile body")
		}

		entry, err := service.SaveUsage(sessionID, profile, time.Now())
		if err != nil {
			var verr *energy.ValidationError
			if errors.As(err, &verr) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, verr.Error())
			}
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "unknown session")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save usage")
		}

		return c.JSON(fiber.Map{
			"entry":       entry,
			"dailyCost":   energy.DailyCost(entry.TotalEnergyKWh),
			"monthlyCost": energy.MonthlyCost(entry.TotalEnergyKWh),
		})
	})

	v1.Get("/usage/history", func(c *fiber.Ctx) error {
		sessionID, err := requireSession(c)
		if err != nil {
			return err
		}

		entries, err := service.History(sessionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "unknown session")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch history")
		}

		return c.JSON(fiber.Map{
			"entries": entries,
		})
	})

	v1.Get("/usage/weekly", func(c *fiber.Ctx) error {
		sessionID, err := requireSession(c)
		if err != nil {
			return err
		}

		report, err := service.WeeklyReport(sessionID, time.Now())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "unknown session")
			}
			if errors.Is(err, energy.ErrNoEntries) {
				return fiber.NewError(fiber.StatusNotFound, "no usage data in the last 7 days")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build weekly report")
		}

		return c.JSON(report)
	})

	v1.Get("/export", func(c *fiber.Ctx) error {
		sessionID, err := requireSession(c)
		if err != nil {
			return err
		}

		entries, err := service.History(sessionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "unknown session")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch history")
		}

		now := time.Now()
		var blob export.Export
		switch c.Query("format", "csv") {
		case "csv":
			blob, err = export.CSV(entries, now)
		case "json":
			blob, err = export.JSON(entries, now)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "format must be csv or json")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to export usage data")
		}

		c.Set(fiber.HeaderContentType, blob.MIME)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+blob.Filename+`"`)
		return c.Send(blob.Data)
	})
}

func requireSession(c *fiber.Ctx) (string, error) {
	id := c.Get(sessionHeader)
	if id == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, sessionHeader+" header is required")
	}
	return id, nil
}

// profileFromQuery binds the estimation inputs from query parameters. The
// estimate endpoint never persists, so name is not required here.
func profileFromQuery(c *fiber.Ctx) energy.UserProfile {
	return energy.UserProfile{
		Housing: energy.HousingType(c.Query("housing")),
		Appliances: energy.ApplianceFlags{
			AC:             c.QueryBool("ac"),
			Fridge:         c.QueryBool("fridge"),
			WashingMachine: c.QueryBool("washingMachine"),
			TV:             c.QueryBool("tv"),
			Microwave:      c.QueryBool("microwave"),
			WaterHeater:    c.QueryBool("waterHeater"),
		},
	}
}
