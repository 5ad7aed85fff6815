package routers

import (
	"healthinfo-service/internal/app/delivery/http/middlewares"
	"healthinfo-service/internal/app/services/core/enrollments"
	"healthinfo-service/internal/app/services/core/programs"

	"github.com/go-chi/chi/v5"
)

func attachProgramRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	programController *programs.ProgramController,
	enrollmentController *enrollments.EnrollmentController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/", programController.ListPrograms)
	router.Post("/", programController.CreateProgram)
	// Static routes before /{programID} so chi does not treat them as an id.
	router.Get("/categories", programController.ListCategories)
	router.Get("/{programID}", programController.GetProgramByID)
	router.Put("/{programID}", programController.UpdateProgram)
	router.Get("/{programID}/enrollments", enrollmentController.ListEnrollmentsByProgram)
}
