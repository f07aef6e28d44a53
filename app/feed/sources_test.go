package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSources(t *testing.T) {
	content := `
feeds:
  - "https://example.com/podcast.xml"
  - "https://another.example.net/rss"
`

	sources, err := LoadSources(writeSourcesFile(t, content))
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"https://example.com/podcast.xml",
		"https://another.example.net/rss",
	}

	if len(sources) != len(expected) {
		t.Fatalf("Expected %d sources, got %d", len(expected), len(sources))
	}

	for i, want := range expected {
		if sources[i] != want {
			t.Errorf("Expected source %d to be '%s', got '%s'", i, want, sources[i])
		}
	}
}

func TestLoadSourcesDeduplicates(t *testing.T) {
	content := `
feeds:
  - "https://example.com/podcast.xml"
  - "https://another.example.net/rss"
  - "https://example.com/podcast.xml"
`

	sources, err := LoadSources(writeSourcesFile(t, content))
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources after deduplication, got %d", len(sources))
	}

	if sources[0] != "https://example.com/podcast.xml" {
		t.Errorf("Expected first source 'https://example.com/podcast.xml', got '%s'", sources[0])
	}
}

func TestLoadSourcesEmptyList(t *testing.T) {
	sources, err := LoadSources(writeSourcesFile(t, "feeds: []\n"))
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 0 {
		t.Errorf("Expected 0 sources, got %d", len(sources))
	}
}

func TestLoadSourcesEmptyEntry(t *testing.T) {
	content := `
feeds:
  - "https://example.com/podcast.xml"
  - "   "
`

	_, err := LoadSources(writeSourcesFile(t, content))
	if err == nil {
		t.Error("Expected error for empty sources file entry, got none")
	}
}

func TestLoadSourcesRelativeURL(t *testing.T) {
	content := `
feeds:
  - "/feed.xml"
`

	_, err := LoadSources(writeSourcesFile(t, content))
	if err == nil {
		t.Error("Expected error for relative URL entry, got none")
	}
}

func TestLoadSourcesMalformedFile(t *testing.T) {
	_, err := LoadSources(writeSourcesFile(t, "invalid yaml content"))
	if err == nil {
		t.Error("Expected error for malformed sources file, got none")
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	_, err := LoadSources(filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Error("Expected error for missing sources file, got none")
	}
}
