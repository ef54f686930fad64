package Trees

import "go.uber.org/zap"

type config struct {
	log *zap.Logger
}

// Option configures a BSTree.
type Option func(*config)

// WithLogger sets the logger that traces mutations at debug level. A nil logger disables tracing,
// which is also the default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}

func makeConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}
