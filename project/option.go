package project

import (
	"os"

	"github.com/ardnew/cmakepm/log"
)

// DefaultCMakeVersion is the minimum CMake version written into new
// manifests.
const DefaultCMakeVersion = "3.30"

// Option configures [Create] and [AddClass].
type Option func(*options)

type options struct {
	cmakeVersion string
	logger       log.Logger
	mkdir        func(string, os.FileMode) error
}

func makeOptions(opts ...Option) options {
	o := options{
		cmakeVersion: DefaultCMakeVersion,
		logger:       log.Default(),
		mkdir:        os.Mkdir,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCMakeVersion sets the version passed to cmake_minimum_required in new
// manifests. An empty version keeps [DefaultCMakeVersion].
func WithCMakeVersion(version string) Option {
	return func(o *options) {
		if version != "" {
			o.cmakeVersion = version
		}
	}
}

// WithLogger sets the logger that reports each created file.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
