package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"site-server/core/config"
	"site-server/core/logger"
	"site-server/feature/static"
	"site-server/feature/subscribe"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the site server",
	Long:  `Starts the HTTP server serving the static site and the subscribe endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Static file source
		source, err := newStaticSource(cfg)
		if err != nil {
			logg.Fatal("Failed to create static source", zap.Error(err))
		}
		logg = logg.With(zap.String("source", cfg.Static.Source))

		required := static.RequiredFiles(cfg.Static.DefaultDocument, cfg.Newsletter.SuccessRedirect)
		if missing, err := static.CheckRequired(cmd.Context(), source, required); err != nil {
			logg.Warn("Static source check failed", zap.Error(err))
		} else if len(missing) > 0 {
			logg.Warn("Static source is missing required files", zap.Strings("missing", missing))
		}

		// 4. Credentials are resolved lazily; a missing key only fails subscriptions.
		creds := subscribe.NewCredentials(cfg.Newsletter.APIKey, cfg.Newsletter.APIKeyFile, afero.NewOsFs())
		if _, err := creds.Resolve(); err != nil {
			logg.Warn("Newsletter API key unavailable, subscriptions will fail", zap.Error(err))
		}

		// 5. Build app and load features
		app, err := newApp(cfg, logg, source, creds)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
			logg.Error("Shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
