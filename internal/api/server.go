package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/udisondev/pvpsim/internal/battle"
	"github.com/udisondev/pvpsim/internal/config"
	"github.com/udisondev/pvpsim/internal/db"
	"github.com/udisondev/pvpsim/internal/ranking"
)

// BattleStore persists played battles.
type BattleStore interface {
	Save(ctx context.Context, rec *db.BattleRecord) error
	Get(ctx context.Context, id uuid.UUID) (*db.BattleRecord, error)
	ListRecent(ctx context.Context, limit int) ([]db.BattleRecord, error)
}

// RankingStore caches computed rankings per league cap.
type RankingStore interface {
	Replace(ctx context.Context, lim ranking.Limits, entries []ranking.Entry) error
	Load(ctx context.Context, lim ranking.Limits) ([]ranking.Entry, error)
}

// Pinger reports backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores groups the backends the server depends on. Health may be nil.
type Stores struct {
	Battles  BattleStore
	Rankings RankingStore
	Health   Pinger
}

// Server is the HTTP API in front of the battle engine and the ranking tools.
type Server struct {
	cfg     config.HTTPConfig
	rules   battle.Rules
	ranking config.RankingConfig
	stores  Stores

	engine   *gin.Engine
	rankings singleflight.Group
}

// NewServer builds the gin engine and registers the routes.
func NewServer(cfg config.Simulator, stores Stores) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg.HTTP,
		rules:   battle.NewRules(cfg.Battle),
		ranking: cfg.Ranking,
		stores:  stores,
		engine:  gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.Use(cors.New(corsConfig(cfg.HTTP.AllowOrigins)))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api")
	{
		api.POST("/battles", s.createBattle)
		api.GET("/battles", s.listBattles)
		api.GET("/battles/:id", s.getBattle)
		api.GET("/rankings", s.getRankings)
	}
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http api listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	slog.Info("http api stopped")
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// requestLogger пишет каждый запрос в slog на уровне Debug.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
