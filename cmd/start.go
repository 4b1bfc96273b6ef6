package cmd

import (
	"fmt"
	"time"

	"file-sorter/core/loader"
	"file-sorter/core/logger"
	"file-sorter/core/middleware/auth"
	"file-sorter/core/middleware/rayid"
	"file-sorter/feature/generator"
	"file-sorter/feature/history"
	"file-sorter/feature/sorter"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "file-sorter/docs/swagger"
)

// @title File Sorter API
// @version 1.0
// @description External merge sort of large record files.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.log

		sortSvc, err := rt.sorter()
		if err != nil {
			return err
		}

		app, err := newServer(rt, sortSvc)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port), zap.Bool("protected", rt.cfg.Server.IsProtected()))
			errCh <- app.Listen(":" + rt.cfg.Server.Port)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func newServer(rt *runtime, sortSvc *sorter.Service) (*fiber.App, error) {
	logg := rt.log

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           rt.cfg.Server.ReadTimeout(),
		WriteTimeout:          rt.cfg.Server.WriteTimeout(),
	})

	mgr := loader.NewManager()
	mgr.Register(sorter.NewFeature(sortSvc))
	mgr.Register(generator.NewFeature(rt.generator(rt.cfg.Generator)))
	mgr.Register(history.NewFeature(rt.history, logg))

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger stays public
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
