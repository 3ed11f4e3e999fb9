package root

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

func newLogger() (*zap.Logger, error) {
	if !debugLogs {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}

// openTracker opens the database, loads the aggregate and runs the load-time
// normalization. Every command goes through here.
func openTracker(ctx context.Context) (*engine.Tracker, *storage.DocumentRepo, func(), error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}

	repo := storage.NewDocumentRepo(db, logger)
	tracker, err := engine.NewTracker(ctx, repo, engine.WithLogger(logger))
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		_ = logger.Sync()
		_ = db.Close()
	}
	return tracker, repo, cleanup, nil
}
