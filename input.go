package fontbake

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParseSequences reads one glyph sequence per non-empty line.
// The text is UTF-8 unless it starts with a UTF-8 or UTF-16 byte order mark.
// Both "\n" and "\r\n" line endings are accepted.
func ParseSequences(r io.Reader) ([]string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, err
	}

	var seqs []string
	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			seqs = append(seqs, line)
		}
	}
	return seqs, nil
}

// ReadSequences reads the glyph files in order and concatenates their sequences.
func ReadSequences(paths ...string) ([]string, error) {
	var seqs []string
	for _, path := range paths {
		Logger().Info("reading file", "path", path)

		f, err := os.Open(path) // #nosec G304 -- glyph files are provided by the user
		if err != nil {
			return nil, fmt.Errorf("fontbake: open glyph file: %w", err)
		}
		s, err := ParseSequences(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("fontbake: read glyph file %s: %w", path, err)
		}
		seqs = append(seqs, s...)
	}
	return seqs, nil
}

// PrepareSequences applies the optional normalization and de-duplication.
// The relative order of the remaining sequences is kept.
func PrepareSequences(seqs []string, normalize, dedupe bool) []string {
	if !normalize && !dedupe {
		return seqs
	}

	out := make([]string, 0, len(seqs))
	seen := make(map[string]struct{}, len(seqs))
	for _, seq := range seqs {
		if normalize {
			seq = norm.NFC.String(seq)
		}
		if dedupe {
			if _, ok := seen[seq]; ok {
				continue
			}
			seen[seq] = struct{}{}
		}
		out = append(out, seq)
	}

	if dropped := len(seqs) - len(out); dropped > 0 {
		Logger().Info("dropped duplicate sequences", "count", dropped)
	}
	return out
}
