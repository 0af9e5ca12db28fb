package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/api"
	"github.com/savasana/yoga-web/internal/app/directory"
	"github.com/savasana/yoga-web/internal/app/session"
	"github.com/savasana/yoga-web/internal/pkg/config"
)

// Server holds the client's process-wide dependencies: the one auth session
// store, the upstream resource client, and the teacher directory.
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *session.Store
	api      *api.Client
	teachers *directory.TeacherDirectory
	router   http.Handler
}

// New creates a Server instance with all dependencies.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	store := session.NewStore(logger.Named("session"))
	client := api.New(cfg.Upstream, store, logger)
	teachers := directory.NewTeacherDirectory(client.Teachers, cfg.TeacherCacheTTL, logger.Named("directory"))

	logger.Info("Upstream client configured",
		zap.String("baseURL", cfg.Upstream.BaseURL),
		zap.Duration("timeout", cfg.Upstream.Timeout))

	return &Server{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		api:      client,
		teachers: teachers,
	}, nil
}

// HTTPServer creates and configures the HTTP server.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

func (s *Server) Store() *session.Store {
	return s.store
}

func (s *Server) APIClient() *api.Client {
	return s.api
}

func (s *Server) Teachers() *directory.TeacherDirectory {
	return s.teachers
}

func (s *Server) Logger() *zap.Logger {
	return s.logger
}

func (s *Server) Config() *config.Config {
	return s.cfg
}
