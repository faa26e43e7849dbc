// SPDX-License-Identifier: MIT

package tabulated

import "go.uber.org/zap"

// Numeric policy.
const (
	// PointTolerance is the absolute window used by Point.Equal, IndexOfX and IndexOfY.
	PointTolerance = 1e-12

	// NotFound is returned by IndexOfX and IndexOfY when no sample matches.
	NotFound = -1

	// MinArrayPoints is the smallest table the array variants hold.
	MinArrayPoints = 2
)

// Option configures a tabulated function at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger // evaluation trace sink; never nil after gatherOptions
}

// WithLogger routes evaluation traces (branch taken, floor index, …) to l at
// Debug level. A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// nopIfNil lets zero-value types (an empty LinkedList) log safely.
func nopIfNil(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}
