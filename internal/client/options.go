package client

import "github.com/okian/lovecalc/pkg/logger"

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithDisplay sets the hook that shows a result. It is called before the
// save starts.
func WithDisplay(display func(Result)) Option {
	return func(c *Calculator) {
		if display != nil {
			c.display = display
		}
	}
}

// WithLogger sets the calculator logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}
