package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-life-keeper/internal/logger"
)

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}

type named struct {
	name   string
	worker Worker
}

type Workers struct {
	workers []named
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger.WithComponent("workers")}
}

// Add registers w under name. Workers must be added before Run.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers = append(w.workers, named{name: name, worker: worker})
	return w
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the context of the rest and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, nw := range w.workers {
		g.Go(func() error {
			w.logger.Debug().Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker started")
			if err := nw.worker.Run(gctx); err != nil {
				w.logger.Err(err).Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker failed")
				return fmt.Errorf("%s: %w", nw.name, err)
			}
			w.logger.Debug().Str("func", "Workers.Run").Str("worker", nw.name).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}

// Lifecycle turns a start/stop pair into a Worker that starts, waits for
// ctx to be done, then stops.
func Lifecycle(start func(ctx context.Context) error, stop func() error) Worker {
	return Func(func(ctx context.Context) error {
		if err := start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return stop()
	})
}
