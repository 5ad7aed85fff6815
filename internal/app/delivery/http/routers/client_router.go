package routers

import (
	"healthinfo-service/internal/app/delivery/http/middlewares"
	"healthinfo-service/internal/app/services/core/clients"
	"healthinfo-service/internal/app/services/core/enrollments"

	"github.com/go-chi/chi/v5"
)

func attachClientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	clientController *clients.ClientController,
	enrollmentController *enrollments.EnrollmentController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/", clientController.ListClients)
	router.Post("/", clientController.CreateClient)
	// Static routes before /{clientID} so chi does not treat them as an id.
	router.Get("/search", clientController.SearchClients)
	router.Get("/{clientID}", clientController.GetClientByID)
	router.Put("/{clientID}", clientController.UpdateClient)
	router.Get("/{clientID}/enrollments", enrollmentController.ListEnrollmentsByClient)
}
