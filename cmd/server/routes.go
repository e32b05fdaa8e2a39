package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func registerRoutes(app *fiber.App, deps *Dependencies) {
	app.Get("/health", deps.HealthHandler.Health)
	app.Get("/readyz", deps.HealthHandler.Readiness)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/person", deps.PeopleHandler.CreatePerson)
	app.Get("/people", deps.PeopleHandler.ListPeople)
	app.Get("/person/:id", deps.PeopleHandler.GetPerson)
}
