package feed

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type sourcesFile struct {
	Feeds []string `yaml:"feeds"`
}

// LoadSources reads a YAML seed file listing podcast feed URLs.
// Duplicates are dropped, order is preserved.
func LoadSources(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var parsed sourcesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	seen := make(map[string]bool)
	sources := make([]string, 0, len(parsed.Feeds))
	for i, entry := range parsed.Feeds {
		feedURL := strings.TrimSpace(entry)
		if feedURL == "" {
			return nil, fmt.Errorf("sources file entry %d is empty", i)
		}

		u, err := url.Parse(feedURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return nil, fmt.Errorf("sources file entry %d is not an absolute URL: %q", i, entry)
		}

		if seen[feedURL] {
			continue
		}
		seen[feedURL] = true
		sources = append(sources, feedURL)
	}

	return sources, nil
}
