// Package sampler draws batches and streams of values from a generator.
package sampler

import (
	"context"
	"fmt"

	"github.com/on-the-ground/fakir_go/gen"
	"github.com/on-the-ground/fakir_go/log"
	"github.com/on-the-ground/fakir_go/random"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Sampler draws successive values of one generator from one source.
// It is safe only in a single goroutine, and Next or Take must not be called
// while a Stream is running.
type Sampler[T any] struct {
	g      *gen.Generator[T]
	src    random.Source
	cfg    Config
	logger *zap.Logger
	drawn  int
}

// New builds a Sampler whose source comes from cfg.
func New[T any](g *gen.Generator[T], cfg Config, logger *zap.Logger) (*Sampler[T], error) {
	cfg = cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := cfg.NewSource()
	if err != nil {
		return nil, err
	}
	return NewWithSource(g, src, cfg, logger)
}

// NewWithSource builds a Sampler over an existing source. cfg.Seed,
// cfg.Algorithm and cfg.Stream are ignored.
func NewWithSource[T any](g *gen.Generator[T], src random.Source, cfg Config, logger *zap.Logger) (*Sampler[T], error) {
	cfg = cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = log.OrNop(logger).With(zap.Uint64("generator_id", uint64(g.ID())))
	logger.Debug("sampler created",
		zap.Uint64("seed", cfg.Seed),
		zap.String("algorithm", cfg.Algorithm),
		zap.String("stream", cfg.Stream),
	)
	return &Sampler[T]{g: g, src: src, cfg: cfg, logger: logger}, nil
}

// Drawn reports how many samples have been attempted.
func (s *Sampler[T]) Drawn() int {
	return s.drawn
}

// Next draws one value with a fresh evaluation cache.
func (s *Sampler[T]) Next() (T, error) {
	idx := s.drawn
	s.drawn++

	env := gen.NewEnv(s.src, gen.WithRejectionLimit(s.cfg.RejectionLimit))
	v, err := gen.Eval(env, s.g)
	if err != nil {
		s.logger.Warn("sample failed", zap.Int("sample", idx), zap.Error(err))
		return v, fmt.Errorf("sample %d: %w", idx, err)
	}
	s.logger.Debug("sample drawn",
		zap.Int("sample", idx),
		zap.Int("cache_size", env.Len()),
		zap.Int("cache_hits", env.Hits()),
		zap.Int("cache_misses", env.Misses()),
	)
	return v, nil
}

// Take draws n values. It stops at the first failure unless ContinueOnError
// is set, in which case failed samples are skipped and their errors combined.
func (s *Sampler[T]) Take(n int) ([]T, error) {
	out := make([]T, 0, n)
	var errs error
	for i := 0; i < n; i++ {
		v, err := s.Next()
		if err != nil {
			if !s.cfg.ContinueOnError {
				return out, err
			}
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, v)
	}
	return out, errs
}

// Batch is Take of the configured count.
func (s *Sampler[T]) Batch() ([]T, error) {
	return s.Take(s.cfg.Count)
}

// Result is one element of a Stream.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// Stream draws n values on a producer goroutine; n <= 0 draws until ctx is
// done. The channel, buffered to BufferSize, is closed when the producer
// stops. A failed sample is delivered and then ends the stream unless
// ContinueOnError is set.
func (s *Sampler[T]) Stream(ctx context.Context, n int) <-chan Result[T] {
	out := make(chan Result[T], s.cfg.BufferSize)

	go func() {
		defer close(out)
		reason := "done"
		defer func() {
			s.logger.Debug("stream closed", zap.String("reason", reason), zap.Int("drawn", s.drawn))
		}()

		for i := 0; n <= 0 || i < n; i++ {
			if ctx.Err() != nil {
				reason = "cancelled"
				return
			}
			idx := s.drawn
			v, err := s.Next()
			select {
			case out <- Result[T]{Index: idx, Value: v, Err: err}:
			case <-ctx.Done():
				reason = "cancelled"
				return
			}
			if err != nil && !s.cfg.ContinueOnError {
				reason = "failed"
				return
			}
		}
	}()

	return out
}

type checkpointer interface {
	Snapshot() ([]byte, error)
	Restore(state []byte) error
}

// Snapshot captures the source state so a run can be replayed with Restore.
func (s *Sampler[T]) Snapshot() ([]byte, error) {
	c, ok := s.src.(checkpointer)
	if !ok {
		return nil, fmt.Errorf("%w: %T", random.ErrSnapshotUnsupported, s.src)
	}
	return c.Snapshot()
}

func (s *Sampler[T]) Restore(state []byte) error {
	c, ok := s.src.(checkpointer)
	if !ok {
		return fmt.Errorf("%w: %T", random.ErrSnapshotUnsupported, s.src)
	}
	return c.Restore(state)
}
