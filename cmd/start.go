package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app-reconciler/core/artifact"
	"app-reconciler/core/config"
	"app-reconciler/core/database"
	"app-reconciler/core/history"
	"app-reconciler/core/loader"
	"app-reconciler/core/logger"
	"app-reconciler/core/middleware/auth"
	"app-reconciler/core/middleware/rayid"
	"app-reconciler/core/netskope"
	"app-reconciler/core/storage"

	"app-reconciler/feature/compare"
	"app-reconciler/feature/diagnostics"
	"app-reconciler/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "app-reconciler/docs/swagger"
)

// @title App Reconciler API
// @version 1.0
// @description API for reconciling a private application inventory against a spreadsheet application list.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciler server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to Database (Optional)
		// Run history degrades to a warning when no database is reachable.
		var db *gorm.DB
		var recorder *history.Recorder
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, run history disabled", zap.Error(err))
		} else {
			db = conn
			if recorder, err = history.NewRecorder(db); err != nil {
				logg.Warn("Run history setup failed", zap.Error(err))
			} else {
				logg.Info("Run history enabled")
			}
		}

		// 4. Initialize Storage and the artifact sink
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		writer := artifact.NewObjectWriter(store, cfg.Storage.Bucket, cfg.Artifact.Prefix)
		if err := writer.EnsureBucket(context.Background()); err != nil {
			logg.Warn("Artifact bucket not ready", zap.Error(err))
		}

		// 5. Initialize the inventory client (Optional)
		var nsClient netskope.Client
		if cfg.Netskope.Endpoint == "" {
			logg.Warn("Netskope endpoint not configured, inventory features disabled")
		} else {
			if nsClient, err = netskope.NewClient(cfg.Netskope); err != nil {
				logg.Fatal("Failed to create inventory client", zap.Error(err))
			}
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		keys := cfg.Extract.KeySet()
		cacheTTL := time.Duration(cfg.Netskope.CacheTTLSeconds) * time.Second
		mgr.Register(inventory.NewFeature(nsClient, keys, cacheTTL, logg))
		mgr.Register(compare.NewFeature(nsClient, cfg.Sheet, keys, writer, cfg.Artifact.Keep, recorder, logg))
		mgr.Register(diagnostics.NewFeature(nsClient, keys, cfg.Sheet, store, cfg.Storage.Bucket, db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
