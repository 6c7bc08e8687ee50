// Package server exposes the generation pipeline over HTTP for dashboard
// frontends.
package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brandboost/brandboost/internal/analytics"
	"github.com/brandboost/brandboost/internal/catalog"
	"github.com/brandboost/brandboost/internal/content"
)

// Deps carries everything the handlers need. Generator may be nil, in
// which case copy comes from the fallback templates.
type Deps struct {
	Generator *content.Generator
	Engine    *analytics.Engine
	Products  []catalog.Product

	// ROI projection rates.
	WriterRate float64
	AICost     float64
}

// Server wraps the fiber app and its dependencies.
type Server struct {
	app  *fiber.App
	deps Deps
}

// New builds a server with all routes registered.
func New(deps Deps) *Server {
	if deps.Engine == nil {
		deps.Engine = analytics.NewEngine(analytics.DefaultMinutesPerPiece, analytics.DefaultCostPerPiece)
	}

	s := &Server{
		app:  fiber.New(fiber.Config{AppName: "brandboost"}),
		deps: deps,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.handleHealth)

	api := s.app.Group("/api/v1")
	api.Get("/products", s.handleProducts)
	api.Post("/generate", s.handleGenerate)
	api.Get("/analytics", s.handleAnalytics)
}

// App returns the underlying fiber app, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves HTTP on addr until the process exits.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}
