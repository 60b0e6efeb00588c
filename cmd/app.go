package cmd

import (
	"fmt"

	"site-server/core/config"
	"site-server/core/loader"
	"site-server/core/logger"
	"site-server/core/middleware/rayid"
	"site-server/core/storage"
	"site-server/feature/static"
	"site-server/feature/subscribe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "site-server/docs/swagger"
)

// @title Site Server API
// @version 1.0
// @description Newsletter signup endpoint of the site server.
// @host localhost:3000
// @BasePath /

// newApp builds the Fiber app with middleware and every feature loaded.
func newApp(cfg *config.Config, logg *zap.Logger, source static.Source, creds *subscribe.Credentials) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		ReadTimeout:           cfg.Server.ReadTimeout(),
		BodyLimit:             cfg.Server.BodyLimitBytes,
		UnescapePath:          true,
		// /api/subscribe/ and /API/subscribe must not reach the subscribe route
		StrictRouting: true,
		CaseSensitive: true,
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))

	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager()
	// subscribe claims /api/* before static installs its catch-all
	mgr.Register(subscribe.NewFeature(cfg.Newsletter, creds, logg))
	mgr.Register(static.NewFeature(source, cfg.Static, logg))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

// newStaticSource builds the configured file source.
func newStaticSource(cfg *config.Config) (static.Source, error) {
	switch cfg.Static.Source {
	case static.SourceBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return static.NewBucketSource(client, cfg.Storage), nil
	case static.SourceLocal:
		return static.NewDirSource(cfg.Static.Root), nil
	default:
		return nil, fmt.Errorf("unknown static source %q", cfg.Static.Source)
	}
}
