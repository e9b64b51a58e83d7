package fontbake

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"unicode/utf16"
)

func TestParseSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "A\nB\nAB\n", []string{"A", "B", "AB"}},
		{"crlf", "A\r\nB\r\n", []string{"A", "B"}},
		{"no trailing newline", "x\ny", []string{"x", "y"}},
		{"blank lines", "\n\nA\n\n\nB\n", []string{"A", "B"}},
		{"utf8 bom", "\ufeffA\nB", []string{"A", "B"}},
		{"spaces kept", " A \n", []string{" A "}},
		{"multi-codepoint", "👍🏽\né\n", []string{"👍🏽", "é"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSequences(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseSequences() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSequences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSequences_UTF16(t *testing.T) {
	units := utf16.Encode([]rune("\ufeffA\r\n😀\r\n"))
	var buf bytes.Buffer
	for _, u := range units {
		buf.WriteByte(byte(u))
		buf.WriteByte(byte(u >> 8))
	}

	got, err := ParseSequences(&buf)
	if err != nil {
		t.Fatalf("ParseSequences() error = %v", err)
	}
	if want := []string{"A", "😀"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSequences() = %q, want %q", got, want)
	}
}

func TestReadSequences(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "latin.txt")
	second := filepath.Join(dir, "emoji.txt")
	if err := os.WriteFile(first, []byte("A\nB\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("😀\nA\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSequences(first, second)
	if err != nil {
		t.Fatalf("ReadSequences() error = %v", err)
	}
	if want := []string{"A", "B", "😀", "A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReadSequences() = %q, want %q", got, want)
	}

	if _, err := ReadSequences(first, filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("ReadSequences() accepted a missing file")
	}
}

func TestPrepareSequences(t *testing.T) {
	const (
		composed   = "\u00e9"
		decomposed = "e\u0301"
	)
	in := []string{decomposed, "A", composed, "A", "B"}

	tests := []struct {
		name      string
		normalize bool
		dedupe    bool
		want      []string
	}{
		{"unchanged", false, false, in},
		{"dedupe", false, true, []string{decomposed, "A", composed, "B"}},
		{"normalize", true, false, []string{composed, "A", composed, "A", "B"}},
		{"both", true, true, []string{composed, "A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrepareSequences(in, tt.normalize, tt.dedupe)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PrepareSequences() = %+q, want %+q", got, tt.want)
			}
		})
	}
}
