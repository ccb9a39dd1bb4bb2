package text

// DefaultSize is the default glyph size in pixels per em.
// Outlines are normalised downstream, so size only affects the precision of
// hinted coordinates.
const DefaultSize = 256

// Option configures a provider during creation.
type Option func(*providerConfig)

// providerConfig holds configuration for providers.
type providerConfig struct {
	size float64
}

// defaultProviderConfig returns the default provider configuration.
func defaultProviderConfig() providerConfig {
	return providerConfig{
		size: DefaultSize,
	}
}

// WithSize sets the size in pixels per em at which outlines are extracted.
// Values <= 0 keep the default.
func WithSize(ppem float64) Option {
	return func(c *providerConfig) {
		if ppem > 0 {
			c.size = ppem
		}
	}
}
