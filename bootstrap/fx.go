package bootstrap

import (
	"context"
	"time"

	"github.com/lwch/logging"
	"github.com/teatak/transfer/config"
	"github.com/teatak/transfer/journal"
	"github.com/teatak/transfer/transfer"
	"go.uber.org/fx"
)

// Option holds settings shared by every fx application in this repository.
func Option() fx.Option {
	return fx.StopTimeout(30 * time.Second)
}

// Module provides the configuration, the translator and the result recorder.
var Module = fx.Options(
	fx.Provide(
		config.Init,
		Build,
		OpenJournal,
		Recorder,
	),
)

// OpenJournal opens the unmatched-unit journal, or returns nil when the
// config leaves it disabled.
func OpenJournal(lifecycle fx.Lifecycle, cfg *config.Config) (*journal.Journal, error) {
	if cfg.Journal == "" {
		return nil, nil
	}

	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return nil, err
	}
	logging.Info("recording unmatched units to %s", cfg.Journal)

	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return j.Close()
		},
	})
	return j, nil
}

// Recorder exposes the journal to the front ends. A disabled journal gives a
// nil recorder.
func Recorder(j *journal.Journal) transfer.Recorder {
	if j == nil {
		return nil
	}
	return j
}
