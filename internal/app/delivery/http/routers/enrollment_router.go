package routers

import (
	"healthinfo-service/internal/app/delivery/http/middlewares"
	"healthinfo-service/internal/app/services/core/enrollments"

	"github.com/go-chi/chi/v5"
)

func attachEnrollmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, enrollmentController *enrollments.EnrollmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", enrollmentController.ListEnrollments)
	router.Put("/{enrollmentID}/status", enrollmentController.TransitionEnrollment)
}
