package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sandevgo/tuskmem/pkg/log"
)

type Operation = func() error

// Retryable reports whether a failed attempt may be repeated.
type Retryable = func(err error) bool

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		Jitter:        25 * time.Millisecond,
	}
}

type Retrier struct {
	config    *Config
	retryable Retryable
	name      string
}

type Option func(*Retrier)

// WithRetryable stops retrying as soon as fn returns false.
func WithRetryable(fn Retryable) Option {
	return func(r *Retrier) { r.retryable = fn }
}

// WithName labels the log lines written for failed attempts.
func WithName(name string) Option {
	return func(r *Retrier) { r.name = name }
}

func NewRetrier(config *Config, opts ...Option) *Retrier {
	if config == nil {
		config = NewDefaultConfig()
	}
	r := &Retrier{
		config:    config,
		retryable: func(error) bool { return true },
		name:      "operation",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewDefaultRetrier(opts ...Option) *Retrier {
	return NewRetrier(NewDefaultConfig(), opts...)
}

// Do runs op until it succeeds, the error is not retryable, the attempts are
// exhausted or ctx is done.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	logger := log.FromCtx(ctx)
	delay := r.config.InitialDelay
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	var err error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if attempt == r.config.MaxRetries || !r.retryable(err) {
			return err
		}

		wait := r.nextDelay(delay, rnd)
		logger.Debug().
			Err(err).
			Str("op", r.name).
			Int("attempt", attempt+1).
			Dur("wait", wait).
			Msg("attempt failed, retrying")

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Join(ctx.Err(), err)
		case <-t.C:
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}
	return err
}

func (r *Retrier) nextDelay(delay time.Duration, rnd *rand.Rand) time.Duration {
	var jitter time.Duration
	if r.config.Jitter > 0 {
		jitter = time.Duration(rnd.Int63n(int64(r.config.Jitter)))
	}
	if delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}
	return delay + jitter
}
