package fontbake

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// Codec selects the compressor applied to the serialized font.
type Codec int

const (
	// CodecZstd is Zstandard, the format the runtime loader expects.
	CodecZstd Codec = iota
	// CodecBrotli is Brotli.
	CodecBrotli
)

// Default compression levels, favoring ratio over speed.
const (
	DefaultZstdLevel   = 19
	DefaultBrotliLevel = brotli.BestCompression
)

// zstdMagic starts every Zstandard frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// String returns the string representation of the codec.
func (c Codec) String() string {
	switch c {
	case CodecZstd:
		return "zstd"
	case CodecBrotli:
		return "brotli"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

// ParseCodec returns the codec with the given name.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "zstd":
		return CodecZstd, nil
	case "brotli":
		return CodecBrotli, nil
	}
	return 0, &ConfigError{Field: "Codec", Reason: "unknown codec " + name}
}

// levelRange returns the valid compression levels of the codec.
func (c Codec) levelRange() (lo, hi int, ok bool) {
	switch c {
	case CodecZstd:
		return 1, 22, true
	case CodecBrotli:
		return brotli.BestSpeed, brotli.BestCompression, true
	}
	return 0, 0, false
}

// defaultLevel returns the level used when none is configured.
func (c Codec) defaultLevel() int {
	if c == CodecBrotli {
		return DefaultBrotliLevel
	}
	return DefaultZstdLevel
}

// Compress compresses data with the codec at the given level.
// A zero level selects the codec's default.
func Compress(data []byte, codec Codec, level int) ([]byte, error) {
	if level == 0 {
		level = codec.defaultLevel()
	}

	switch codec {
	case CodecZstd:
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
			zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("fontbake: zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, make([]byte, 0, len(data)/4)), nil

	case CodecBrotli:
		var buf bytes.Buffer
		w := brotli.NewWriterLevel(&buf, level)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("fontbake: brotli: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("fontbake: brotli: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, ErrUnknownCodec
}

// Decompress reverses Compress. Zstandard frames are recognized by their
// magic number; anything else is decoded as Brotli.
func Decompress(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("fontbake: zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("fontbake: zstd: %w", err)
		}
		return out, nil
	}

	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.Join(ErrUnknownCodec, err)
	}
	return out, nil
}
