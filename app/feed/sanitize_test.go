package feed

import (
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Episode 42: The Answer",
			expected: "Episode 42: The Answer",
		},
		{
			name:     "strips markup",
			input:    "<p>Show notes with <a href=\"https://example.com\">links</a> and <b>bold</b></p>",
			expected: "Show notes with links and bold",
		},
		{
			name:     "trims whitespace",
			input:    "  padded title\n",
			expected: "padded title",
		},
		{
			name:     "decodes entities",
			input:    "Tea &amp; Biscuits",
			expected: "Tea & Biscuits",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
		{
			name:     "script content removed",
			input:    "Before<script>alert(1)</script>After",
			expected: "BeforeAfter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeText(tt.input)
			if result != tt.expected {
				t.Errorf("sanitizeText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeTextNormalizesUnicode(t *testing.T) {
	// e followed by a combining acute accent should collapse to the composed
	// form.
	decomposed := "Café Talk"
	composed := "Café Talk"

	if got := sanitizeText(decomposed); got != composed {
		t.Errorf("Expected NFC normalization %q, got %q", composed, got)
	}
}

func TestSanitizeTextCapsLength(t *testing.T) {
	input := strings.Repeat("a", 5000)

	result := sanitizeText(input)
	if len(result) != 2048 {
		t.Errorf("Expected length capped at 2048, got %d", len(result))
	}
}
