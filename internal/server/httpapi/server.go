// Package httpapi exposes the sanitizer, the word registry, statistics and
// health endpoints over HTTP using gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sensitivewords/internal/logging"
	"github.com/dmitrijs2005/sensitivewords/internal/sanitizer"
	"github.com/dmitrijs2005/sensitivewords/internal/server/health"
	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
	"github.com/dmitrijs2005/sensitivewords/internal/server/procstats"
	"github.com/gin-gonic/gin"
)

type WordService interface {
	List(ctx context.Context, activeOnly bool) ([]*models.SensitiveWord, error)
	Get(ctx context.Context, id string) (*models.SensitiveWord, error)
	Create(ctx context.Context, text string) (*models.SensitiveWord, error)
	Update(ctx context.Context, id string, text *string, active *bool) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	BulkImport(ctx context.Context, texts []string) (int, error)
}

type SanitizeService interface {
	Sanitize(ctx context.Context, message string) (sanitizer.Result, error)
}

type StatsService interface {
	Record(ctx context.Context, operationType, resourceType string) error
	List(ctx context.Context) ([]*models.OperationStat, error)
	ListByType(ctx context.Context, operationType string) ([]*models.OperationStat, error)
	Reset(ctx context.Context) error
}

type HealthChecker interface {
	Run(ctx context.Context, tags ...string) health.Report
}

type MetricsSampler interface {
	Sample(ctx context.Context) (procstats.Metrics, error)
}

// Deps groups the collaborators of the HTTP handlers.
type Deps struct {
	Words    WordService
	Sanitize SanitizeService
	Stats    StatsService
	Health   HealthChecker
	Metrics  MetricsSampler
}

type Server struct {
	deps   Deps
	log    logging.Logger
	slow   time.Duration
	engine *gin.Engine
	srv    *http.Server
}

// NewServer builds the router. Requests slower than slow are logged as
// warnings; zero disables the warning.
func NewServer(addr string, deps Deps, log logging.Logger, slow time.Duration) *Server {
	s := &Server{
		deps: deps,
		log:  log.With("module", "http"),
		slow: slow,
	}
	s.engine = s.routes()
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(s.recovery(), s.requestLogger(), cors())

	api := r.Group("/api")
	api.POST("/sanitize", s.sanitize)

	w := api.Group("/sensitivewords")
	w.GET("", s.listWords)
	w.POST("", s.createWord)
	w.POST("/bulk", s.bulkImport)
	w.GET("/:id", s.getWord)
	w.PUT("/:id", s.updateWord)
	w.DELETE("/:id", s.deleteWord)
	w.POST("/:id/activate", s.setActive(true))
	w.POST("/:id/deactivate", s.setActive(false))

	st := api.Group("/statistics")
	st.GET("", s.listStats)
	st.POST("/reset", s.resetStats)
	st.GET("/:operationType", s.statsByType)

	r.GET("/health", s.healthHandler())
	r.GET("/health/ready", s.healthHandler("db"))
	r.GET("/health/live", s.healthHandler("api"))
	r.GET("/metrics", s.metrics)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "http server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info(ctx, "http server shutting down")
	return s.srv.Shutdown(shutdownCtx)
}

// record bumps an operation counter. A failure is logged and otherwise
// ignored: the operation itself already succeeded.
func (s *Server) record(c *gin.Context, op, resource string) {
	if err := s.deps.Stats.Record(c.Request.Context(), op, resource); err != nil {
		s.log.Warn(c.Request.Context(), "failed to record statistics",
			"operation", op, "resource", resource, "error", err)
	}
}
