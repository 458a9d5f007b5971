package encode

type config struct {
	verbatimTags bool
}

type Option func(*config)

// WithVerbatimTags copies everything between < and the first following >
// unchanged instead of treating the angle brackets as an ordinary scope.
func WithVerbatimTags() Option {
	return func(c *config) {
		c.verbatimTags = true
	}
}

func WithVerbatimTagsEnabled(enabled bool) Option {
	return func(c *config) {
		c.verbatimTags = enabled
	}
}
