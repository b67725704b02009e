package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/item"
	"github.com/heartmarshall/myenglish-srs/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/myenglish-srs/internal/auth"
	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/sm2"
	"github.com/heartmarshall/myenglish-srs/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-srs/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires the review service into the HTTP server and serves
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := Migrate(ctx, cfg.Database.DSN, MigrateUp, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()

	studySvc, err := study.NewService(
		logger,
		clock,
		item.New(pool),
		reviewlog.New(pool),
		postgres.NewTxManager(pool),
		SM2Parameters(cfg.SRS),
		study.Config{MaxActiveSessions: cfg.Session.MaxActive, SessionTTL: cfg.Session.TTL},
	)
	if err != nil {
		return err
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, clock)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, rateLimitCleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Middleware())
	}

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, studySvc, clock, BuildVersion()),
		rest.NewStudyHandler(studySvc, logger),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// SM2Parameters converts the SRS config section into calculator parameters.
func SM2Parameters(c config.SRSConfig) sm2.Parameters {
	return sm2.Parameters{
		InitialEase:    c.InitialEase,
		MinEase:        c.MinEase,
		MaxEase:        c.MaxEase,
		AgainPenalty:   c.AgainPenalty,
		AgainInterval:  c.AgainInterval,
		FirstInterval:  c.FirstInterval,
		SecondInterval: c.SecondInterval,
		HardMultiplier: c.HardMultiplier,
		EasyMultiplier: c.EasyMultiplier,
	}
}
