package fontbake

// Config holds the baking configuration.
type Config struct {
	// Family is the font family name or font file to bake.
	Family string

	// Size is the font size in pixels per em.
	Size float32

	// Padding is the gap in pixels kept around every packed glyph.
	// Default: 0
	Padding float32

	// Codec compresses the serialized font.
	// Default: CodecZstd
	Codec Codec

	// Level is the codec-specific compression level.
	// Zero selects the codec's strongest level.
	Level int

	// Dedupe drops repeated sequences, keeping the first occurrence.
	Dedupe bool

	// Normalize converts sequences to Unicode NFC before baking.
	Normalize bool
}

// DefaultConfig returns default configuration for the given family and size.
func DefaultConfig(family string, size float32) Config {
	return Config{
		Family: family,
		Size:   size,
		Codec:  CodecZstd,
	}
}

// Option configures a Config.
type Option func(*Config)

// WithPadding sets the padding around packed glyphs.
func WithPadding(p float32) Option {
	return func(c *Config) {
		c.Padding = p
	}
}

// WithCodec selects the compression codec.
func WithCodec(codec Codec) Option {
	return func(c *Config) {
		c.Codec = codec
	}
}

// WithLevel sets the compression level.
func WithLevel(level int) Option {
	return func(c *Config) {
		c.Level = level
	}
}

// WithDedupe enables dropping of repeated sequences.
func WithDedupe(enabled bool) Option {
	return func(c *Config) {
		c.Dedupe = enabled
	}
}

// WithNormalization enables NFC normalization of input sequences.
func WithNormalization(enabled bool) Option {
	return func(c *Config) {
		c.Normalize = enabled
	}
}

// NewConfig builds a validated Config from defaults and options.
func NewConfig(family string, size float32, opts ...Option) (Config, error) {
	c := DefaultConfig(family, size)
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Family == "" {
		return &ConfigError{Field: "Family", Reason: "must not be empty"}
	}
	if !(c.Size > 0) {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if !(c.Padding >= 0) {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	lo, hi, ok := c.Codec.levelRange()
	if !ok {
		return &ConfigError{Field: "Codec", Reason: "unknown codec " + c.Codec.String()}
	}
	if c.Level != 0 && (c.Level < lo || c.Level > hi) {
		return &ConfigError{Field: "Level", Reason: "out of range for " + c.Codec.String()}
	}
	return nil
}
