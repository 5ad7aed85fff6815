package routers

import (
	"fmt"
	"healthinfo-service/internal/app/config"
	"healthinfo-service/internal/app/delivery/http/middlewares"
	"healthinfo-service/internal/app/services/core/auth"
	"healthinfo-service/internal/app/services/core/clients"
	"healthinfo-service/internal/app/services/core/enrollments"
	"healthinfo-service/internal/app/services/core/programs"
	"healthinfo-service/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	clientController *clients.ClientController,
	programController *programs.ProgramController,
	enrollmentController *enrollments.EnrollmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Instrument)

	router.Handle("/metrics", promhttp.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/clients", func(r chi.Router) {
				attachClientRoutes(r, middlewares, clientController, enrollmentController)
			})

			r.Route("/programs", func(r chi.Router) {
				attachProgramRoutes(r, middlewares, programController, enrollmentController)
			})

			r.Route("/enrollments", func(r chi.Router) {
				attachEnrollmentRoutes(r, middlewares, enrollmentController)
			})

			r.With(middlewares.Authenticate).Post("/enroll", enrollmentController.EnrollClient)
		})
	})
}
