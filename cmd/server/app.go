package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/auth"
	"github.com/ClemRoy/epicEvents/internal/config"
	"github.com/ClemRoy/epicEvents/internal/handlers"
	"github.com/ClemRoy/epicEvents/internal/policy"
	"github.com/ClemRoy/epicEvents/internal/services"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux     *http.ServeMux
	handler http.Handler
}

// NewApp wires the gate, services and handlers onto a ServeMux and wraps it
// with the authentication middleware.
func NewApp(db *gorm.DB, cfg *config.Config) *App {
	app := &App{mux: http.NewServeMux()}

	g := policy.NewGate()
	resolver := policy.NewResolver(db)

	contractSvc := services.NewContractService(db)
	eventSvc := services.NewEventService(db)
	userSvc := services.NewUserService(db)

	authHandler := handlers.NewAuthHandler(db, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	clientHandler := handlers.NewClientHandler(db, g)
	contractHandler := handlers.NewContractHandler(db, g, contractSvc)
	eventHandler := handlers.NewEventHandler(db, g, eventSvc)
	userHandler := handlers.NewUserHandler(g, userSvc)

	app.mux.HandleFunc("POST /api/login", authHandler.Login)

	app.mux.HandleFunc("POST /api/users", userHandler.Create)

	app.mux.HandleFunc("GET /api/clients", clientHandler.List)
	app.mux.HandleFunc("POST /api/clients", clientHandler.Create)
	app.mux.HandleFunc("GET /api/clients/{id}", clientHandler.Get)
	app.mux.HandleFunc("PUT /api/clients/{id}", clientHandler.Update)
	app.mux.HandleFunc("DELETE /api/clients/{id}", clientHandler.Delete)

	app.mux.HandleFunc("GET /api/contracts", contractHandler.List)
	app.mux.HandleFunc("POST /api/contracts", contractHandler.Create)
	app.mux.HandleFunc("GET /api/contracts/{id}", contractHandler.Get)
	app.mux.HandleFunc("PUT /api/contracts/{id}", contractHandler.Update)
	app.mux.HandleFunc("DELETE /api/contracts/{id}", contractHandler.Delete)

	app.mux.HandleFunc("GET /api/events", eventHandler.List)
	app.mux.HandleFunc("POST /api/events", eventHandler.Create)
	app.mux.HandleFunc("GET /api/events/{id}", eventHandler.Get)
	app.mux.HandleFunc("PUT /api/events/{id}", eventHandler.Update)
	app.mux.HandleFunc("DELETE /api/events/{id}", eventHandler.Delete)

	app.handler = auth.Middleware(cfg.Auth.Secret, resolver)(app.mux)
	return app
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}
