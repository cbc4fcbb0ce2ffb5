package merklelog

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Config is the engine's tunable configuration, grounded on the teacher's
// MassifCommitterConfig: a small, explicit knob set rather than a generic
// options bag.
type Config struct {
	// ServiceName tags every structured log line this Log emits, via
	// logger.Sugar.WithServiceName. Defaults to "merklelog".
	ServiceName string
	// MaxBatchSize caps the number of leaves a single BatchAppend call may
	// add. Zero means unlimited.
	MaxBatchSize int
}

// LogOption configures a Log at construction time.
type LogOption func(*logOptions)

type logOptions struct {
	cfg Config
	log logger.Logger
}

// WithConfig attaches cfg to the Log being constructed.
func WithConfig(cfg Config) LogOption {
	return func(o *logOptions) { o.cfg = cfg }
}

// WithLogger overrides the logger.Logger a Log uses, bypassing
// Config.ServiceName. Mainly useful for tests that want a NOOP logger.
func WithLogger(log logger.Logger) LogOption {
	return func(o *logOptions) { o.log = log }
}

// resolveLogOptions expects the host application to have already called
// logger.New (as mmrtesting.NewTestContext and equivalent production
// entrypoints do) before constructing a Log; it only binds a service name
// onto the already-configured logger.Sugar.
func resolveLogOptions(opts []LogOption) logOptions {
	var o logOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		name := o.cfg.ServiceName
		if name == "" {
			name = "merklelog"
		}
		o.log = logger.Sugar.WithServiceName(name)
	}
	return o
}
