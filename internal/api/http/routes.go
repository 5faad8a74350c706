package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yeonwoo-j/kma-midterm-forecast/internal/forecast"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The handlers
// are a thin collaborator surface over the forecast service: absence from
// the service maps to 404, and the service's silent baseTime correction
// still applies to anything that passes the query-shape validation here.
func RegisterRoutes(app *fiber.App, service *forecast.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast/narrative", func(c *fiber.Ctx) error {
		var q narrativeQuery
		q.BaseTime = c.Query("baseTime")

		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		outlooks, ok := service.GetNarrativeOutlook(c.UserContext(), q.BaseTime)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no narrative outlook available")
		}

		return c.JSON(fiber.Map{
			"outlooks": outlooks,
		})
	})

	v1.Get("/forecast/regional", func(c *fiber.Ctx) error {
		var q regionalQuery
		q.Location = c.Query("location")
		q.RegionCode = c.Query("regionCode")
		q.BaseTime = c.Query("baseTime")

		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		days, ok := service.GetRegionalMetrics(c.UserContext(), q.Location, q.RegionCode, q.BaseTime)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no forecast data for requested region")
		}

		return c.JSON(fiber.Map{
			"days": days,
		})
	})
}

// narrativeQuery holds query parameters for the narrative endpoint.
type narrativeQuery struct {
	BaseTime string `validate:"omitempty,numeric,len=12"`
}

// regionalQuery holds query parameters for the regional metrics endpoint.
// All parameters are optional; the service defaults location to Seoul.
type regionalQuery struct {
	Location   string `validate:"omitempty,max=32"`
	RegionCode string `validate:"omitempty,alphanum,max=10"`
	BaseTime   string `validate:"omitempty,numeric,len=12"`
}
