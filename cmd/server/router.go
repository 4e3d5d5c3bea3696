package main

import (
	"net/http"

	"github.com/gaebar/social-media-blog-api/internal/api"
	apiMiddleware "github.com/gaebar/social-media-blog-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Instrument)
	r.Use(app.sessions.Authenticate)

	accountHandler := api.NewAccountHandler(app.accountService, app.sessions, app.logger)
	messageHandler := api.NewMessageHandler(app.messageService, app.accountService, app.logger)

	r.Post("/register", accountHandler.Register)
	r.Post("/login", accountHandler.Login)
	r.Post("/logout", accountHandler.Logout)

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", accountHandler.ListAccounts)
		r.Get("/{id}", accountHandler.GetAccount)
		r.Patch("/{id}", accountHandler.UpdateAccount)
		r.Delete("/{id}", accountHandler.DeleteAccount)
		r.Get("/{id}/messages", messageHandler.ListAccountMessages)
	})

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", messageHandler.CreateMessage)
		r.Get("/", messageHandler.ListMessages)
		r.Get("/{id}", messageHandler.GetMessage)
		r.Patch("/{id}", messageHandler.UpdateMessage)
		r.Delete("/{id}", messageHandler.DeleteMessage)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
