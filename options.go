package trirec

// Option configures an engine at construction time.
type Option interface{ apply(c *config) }

// config carries the ambient knobs shared by all engines. Engines embed it
// by value; a constructed engine never mutates it.
type config struct {
	logfn    func(mess string, args ...interface{})
	stackCap uint
}

func (c *config) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(c)
		}
	}
}

func (c config) logf(mess string, args ...interface{}) {
	if c.logfn != nil {
		c.logfn(mess, args...)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(c *config) { c.logfn = logfn }

type stackCapOption uint

func (capacity stackCapOption) apply(c *config) { c.stackCap = uint(capacity) }
