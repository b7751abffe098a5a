package maze

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/carve"
)

// Option customizes New.
//
// Options that receive a meaningless value (nil Rand or Logger) panic,
// since that is a programming error at the call site.
type Option func(*Options)

// Options holds the resolved configuration for New.
type Options struct {
	// Seed seeds the random source when Rand is nil; 0 means time-seeded.
	Seed int64

	// Rand, when set, drives every random decision and Seed is ignored.
	Rand carve.Rand

	// Logger receives generation events.
	Logger logrus.FieldLogger

	// ID names the maze; uuid.Nil means a fresh random id.
	ID uuid.UUID
}

// DefaultOptions returns Options with a time-seeded source, a silent
// logger and no fixed id.
func DefaultOptions() Options {
	return Options{Logger: discardLogger()}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// WithSeed makes generation reproducible. A zero seed keeps the
// time-seeded default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source. Panics if r is nil.
func WithRand(r carve.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}

	return func(o *Options) {
		o.Rand = r
	}
}

// WithLogger routes generation logs to l. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// WithID fixes the maze id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(o *Options) {
		o.ID = id
	}
}

// resolve applies opts over the defaults and fills the random source and id.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = carve.NewRand(o.Seed)
	}
	if o.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return o, err
		}
		o.ID = id
	}

	return o, nil
}
