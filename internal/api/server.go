// Package api serves the analyzer over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

// Deps are the use cases the routes are wired to. History may be nil, in
// which case the history routes are not registered.
type Deps struct {
	Analyze  *usecase.Analyze
	History  *usecase.History
	Defaults domain.GenerateRequest
	Save     bool
	Logger   *slog.Logger
}

// New builds the fiber app with every route under /api.
func New(d Deps) *fiber.App {
	log := logger.OrDiscard(d.Logger)

	app := fiber.New(fiber.Config{
		AppName:               "numdna",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(response{Error: &errorBody{Message: fe.Message}})
			}
			log.Error("api.unhandled", "path", c.Path(), "err", err)
			return applyError(c, err)
		},
	})

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("api.request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	})

	router := app.Group("/api")

	(&AnalyzeAPI{Router: router, Analyze: d.Analyze, Defaults: d.Defaults, Save: d.Save}).Register()
	(&FieldsAPI{Router: router}).Register()
	if d.History != nil {
		(&HistoryAPI{Router: router, History: d.History}).Register()
	}

	return app
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, app *fiber.App, addr string, log *slog.Logger) error {
	log = logger.OrDiscard(log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("api.listen", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return &domain.OpError{Op: "api.listen", Kind: domain.KindExecution, Err: err}
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("api.shutdown")
		return app.ShutdownWithContext(shutdownCtx)
	}
}
