package roster

import (
	"errors"
	"testing"

	"github.com/dana/castmatch/internal/domain"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean passthrough",
			input:    `[{"name":"김배우"}]`,
			expected: `[{"name":"김배우"}]`,
		},
		{
			name:     "strips control bytes",
			input:    "[{\"name\":\"김\x01배우\"}]",
			expected: `[{"name":"김배우"}]`,
		},
		{
			name:     "keeps newlines and tabs",
			input:    "[\n\t{\"name\":\"김배우\"}\n]",
			expected: "[\n\t{\"name\":\"김배우\"}\n]",
		},
		{
			name:     "truncation marker after ellipsis",
			input:    `[{"name":"김배우","impression":"차가운 인상... <truncated>"}]`,
			expected: `[{"name":"김배우","impression":"차가운 인상..."}]`,
		},
		{
			name:     "bare truncation marker",
			input:    `[{"name":"김배우","impression":"차가운<truncated>"}]`,
			expected: `[{"name":"김배우","impression":"차가운"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseAdmitsOnlyNamedRecords(t *testing.T) {
	raw := []byte(`[
		{"name": "김배우", "agency": "bh"},
		{"name": "", "agency": "soop"},
		{"name": "   ", "agency": "vast"},
		{"name": "이배우"}
	]`)

	actors, err := Parse("test", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actors) != 2 {
		t.Fatalf("expected 2 admitted records, got %d", len(actors))
	}
	if actors[0].Name != "김배우" || actors[1].Name != "이배우" {
		t.Errorf("unexpected admitted records: %v", actors)
	}
}

func TestParseDuplicateNamesKeepLater(t *testing.T) {
	raw := []byte(`[
		{"name": "김배우", "agency": "bh"},
		{"name": "김배우", "agency": "soop"}
	]`)

	actors, err := Parse("test", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actors) != 1 {
		t.Fatalf("expected 1 record after dedup, got %d", len(actors))
	}
	if actors[0].Agency != "soop" {
		t.Errorf("expected later duplicate to win, got agency %q", actors[0].Agency)
	}
}

func TestParseSecondPassRecovers(t *testing.T) {
	// A control character inside a string survives pass one only when it
	// is a newline, which is illegal inside a JSON string; pass two strips
	// it and the document parses.
	raw := []byte("[{\"name\":\"김\n배우\"}]")

	actors, err := Parse("test", raw)
	if err != nil {
		t.Fatalf("expected second cleanup pass to recover, got %v", err)
	}
	if len(actors) != 1 || actors[0].Name != "김배우" {
		t.Errorf("unexpected result: %v", actors)
	}
}

func TestParseCorruptedSource(t *testing.T) {
	raw := []byte(`[{"name": "김배우"`)

	_, err := Parse("final_actors.json", raw)
	if err == nil {
		t.Fatal("expected error for unparseable source")
	}

	var corruption *domain.DataCorruptionError
	if !errors.As(err, &corruption) {
		t.Fatalf("expected DataCorruptionError, got %T", err)
	}
	if corruption.Source != "final_actors.json" {
		t.Errorf("unexpected source %q", corruption.Source)
	}
}
