package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Modes returns the sorted names of the supported profiling modes.
//
//nolint:gochecknoglobals
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Option configures a profiling session.
type Option func(control) control

type control struct {
	opts []func(*profile.Profile)
	ok   bool
}

func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithMode selects the profiling mode by name (see [Modes]). Unknown names
// leave profiling disabled.
func WithMode(m string) Option {
	return func(c control) control {
		if fn, ok := mode[m]; ok {
			c.opts = append(c.opts, fn)
			c.ok = true
		}

		return c
	}
}

// WithPath sets the directory that receives the profile output.
func WithPath(p string) Option {
	return func(c control) control {
		if p != "" {
			c.opts = append(c.opts, profile.ProfilePath(p))
		}

		return c
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(v bool) Option {
	return func(c control) control {
		if v {
			c.opts = append(c.opts, profile.Quiet)
		}

		return c
	}
}

// WithoutShutdownHook keeps the profiler from installing its own interrupt
// handler.
func WithoutShutdownHook() Option {
	return func(c control) control {
		c.opts = append(c.opts, profile.NoShutdownHook)

		return c
	}
}

// Start begins profiling as configured by opts. The returned [Stopper] is a
// no-op when no valid mode was selected.
func Start(opts ...Option) Stopper {
	c := apply(control{}, opts...)
	if !c.ok {
		return ignore{}
	}

	return profile.Start(c.opts...)
}

type ignore struct{}

func (ignore) Stop() {}
