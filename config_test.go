package fontbake

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig("Noto Sans", 32)
	if c.Family != "Noto Sans" || c.Size != 32 {
		t.Errorf("DefaultConfig() = %+v", c)
	}
	if c.Padding != 0 || c.Codec != CodecZstd || c.Level != 0 || c.Dedupe || c.Normalize {
		t.Errorf("DefaultConfig() has non-default options: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestNewConfig_Options(t *testing.T) {
	c, err := NewConfig("Noto Sans", 24,
		WithPadding(2), WithCodec(CodecBrotli), WithLevel(5),
		WithDedupe(true), WithNormalization(true))
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	want := Config{
		Family: "Noto Sans", Size: 24, Padding: 2,
		Codec: CodecBrotli, Level: 5, Dedupe: true, Normalize: true,
	}
	if c != want {
		t.Errorf("NewConfig() = %+v, want %+v", c, want)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		fam   string
		size  float32
		field string
	}{
		{"empty family", nil, "", 16, "Family"},
		{"zero size", nil, "Sans", 0, "Size"},
		{"negative size", nil, "Sans", -4, "Size"},
		{"nan size", nil, "Sans", float32(math.NaN()), "Size"},
		{"negative padding", []Option{WithPadding(-1)}, "Sans", 16, "Padding"},
		{"unknown codec", []Option{WithCodec(Codec(7))}, "Sans", 16, "Codec"},
		{"zstd level", []Option{WithLevel(23)}, "Sans", 16, "Level"},
		{"brotli level", []Option{WithCodec(CodecBrotli), WithLevel(12)}, "Sans", 16, "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.fam, tt.size, tt.opts...)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("NewConfig() error = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "Size", Reason: "must be positive"}
	if got, want := err.Error(), "fontbake: invalid config.Size: must be positive"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
