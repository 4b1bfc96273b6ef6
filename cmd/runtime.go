package cmd

import (
	"context"
	"fmt"

	"file-sorter/core/config"
	"file-sorter/core/database"
	"file-sorter/core/logger"
	"file-sorter/core/processing"
	"file-sorter/core/queue"
	"file-sorter/core/storage"
	"file-sorter/feature/archive"
	"file-sorter/feature/generator"
	"file-sorter/feature/history"
	"file-sorter/feature/sorter"

	"go.uber.org/zap"
)

// configDir is the directory the .env file is read from.
var configDir = "."

// runtime holds what every command needs once configuration is loaded.
type runtime struct {
	cfg      *config.Config
	log      *zap.Logger
	history  *history.Repository
	recorder processing.Recorder
}

func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	rt := &runtime{cfg: cfg, log: logg, recorder: processing.NopRecorder{}}

	// The history ledger is optional; a run never fails because of it
	if cfg.Database.Enabled {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
			return rt, nil
		}

		repo := history.NewRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			logg.Warn("History migration failed", zap.Error(err))
			return rt, nil
		}
		rt.history = repo
		rt.recorder = history.NewRecorder(repo, logg)
		logg.Info("Run history enabled", zap.String("driver", cfg.Database.Driver))
	}

	return rt, nil
}

func (rt *runtime) close() {
	_ = rt.log.Sync()
}

func (rt *runtime) sorter() (*sorter.Service, error) {
	svc, err := sorter.NewService(rt.cfg.Sorter, rt.log)
	if err != nil {
		return nil, err
	}
	return svc.WithRecorder(rt.recorder), nil
}

func (rt *runtime) generator(cfg generator.Config) *generator.Service {
	return generator.NewService(cfg, rt.log).WithRecorder(rt.recorder)
}

func (rt *runtime) archive() (*archive.Service, error) {
	client, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return archive.NewService(client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Prefix, rt.log), nil
}

func (rt *runtime) broker() (queue.Broker, error) {
	b, err := queue.NewRedis(rt.cfg.Queue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}
	return b, nil
}

// sortFile runs the pipeline on path and optionally archives the result.
func (rt *runtime) sortFile(ctx context.Context, path string, upload bool) error {
	svc, err := rt.sorter()
	if err != nil {
		return err
	}

	rt.log.Info("Sorting file", zap.String("source", path))
	res, err := svc.Sort(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to sort %s: %w", path, err)
	}
	rt.log.Info("File sorted", zap.String("target", res.Target()))

	if !upload {
		return nil
	}

	arch, err := rt.archive()
	if err != nil {
		return err
	}
	name, err := arch.Upload(ctx, res.Target())
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", res.Target(), err)
	}
	rt.log.Info("Result archived", zap.String("bucket", rt.cfg.Storage.Bucket), zap.String("object", name))
	return nil
}
