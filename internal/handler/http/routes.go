package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.welcome)
	router.Get("/test-db", h.testDB)
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", promhttp.Handler())

	// account
	router.Post("/signup", h.signup)
	router.Post("/login", h.login)

	// password reset
	router.Post("/generate_reset_code", h.generateResetCode)
	router.Post("/verify_reset_code", h.verifyResetCode)
	router.Post("/reset_password", h.resetPassword)

	// courses
	router.Get("/courses", h.listCourses)
	router.Post("/add_course", h.addCourse)

	// federated login
	router.Route("/google-auth", func(r chi.Router) {
		r.Get("/", h.googleAuth)
		r.Get("/callback", h.googleAuthCallback)
		r.Get("/status/{state}", h.googleAuthStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
