// Package tasks is an in-memory task list: tasks with a status, a requirement
// and a deadline, kept in creation order.
package tasks

import (
	"fmt"

	"git.sr.ht/~jakintosh/tasks/internal/clock"
	"git.sr.ht/~jakintosh/tasks/internal/config"
	"git.sr.ht/~jakintosh/tasks/internal/domain"
	"git.sr.ht/~jakintosh/tasks/internal/logging"
	"git.sr.ht/~jakintosh/tasks/internal/store"
	"go.uber.org/zap"
)

type (
	Task         = domain.Task
	Status       = domain.Status
	Store        = domain.Store
	DateProvider = domain.DateProvider
	Config       = config.Config
)

const (
	Todo     = domain.StatusTodo
	Progress = domain.StatusProgress
	Done     = domain.StatusDone
)

var ErrInvalidStatus = domain.ErrInvalidStatus

func ParseStatus(text string) (Status, error) {
	return domain.ParseStatus(text)
}

// New returns an empty store. A nil DateProvider uses the local system clock;
// a nil logger discards output.
func New(dates DateProvider, logger *zap.Logger) Store {
	var opts []store.Option
	if dates != nil {
		opts = append(opts, store.WithDateProvider(dates))
	}
	if logger != nil {
		opts = append(opts, store.WithLogger(logger))
	}
	return store.NewInMemoryStore(opts...)
}

// NewFromConfig builds the logger and clock described by cfg and returns a
// store wired to them. The caller owns the logger and should Sync it.
func NewFromConfig(cfg Config) (Store, *zap.Logger, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("task store initialized",
		zap.String("timezone", loc.String()),
		zap.String("log_level", cfg.LogLevel),
	)
	return New(clock.System{Location: loc}, logger), logger, nil
}

// NewFromEnv is NewFromConfig with settings read by config.Load.
func NewFromEnv() (Store, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewFromConfig(cfg)
}
