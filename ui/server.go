package ui

import (
	"fmt"
	"log"

	"bookflow/app"
	"bookflow/internal/config"

	"github.com/gin-gonic/gin"
)

// Server is the inbound HTTP gateway. It authenticates nothing itself;
// callers hand it workbook bytes plus the Booking Service endpoint and
// credential, and those are trusted as already validated upstream.
type Server struct {
	router  *gin.Engine
	service *app.BatchService
	cfg     *config.Config
}

// NewServer creates the gateway and wires its routes
func NewServer(service *app.BatchService, cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.Default(),
		service: service,
		cfg:     cfg,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(corsMiddleware())
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthHandler)
		api.GET("/template", s.templateHandler)
		api.POST("/process", s.processHandler)
	}
}

// Run starts the server on the configured port and blocks
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
