package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

type Validator struct {
	gofeedParser *gofeed.Parser
}

func NewValidator() *Validator {
	return &Validator{
		gofeedParser: gofeed.NewParser(),
	}
}

// Validate checks whether data is a parseable syndication feed carrying at
// least one entry with an audio enclosure. Malformed input yields an invalid
// result, not an error. Entries missing a guid or an audio enclosure are
// excluded from the result but do not invalidate the feed.
func (v *Validator) Validate(data []byte) Validation {
	parsed, err := v.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return Validation{Reason: fmt.Sprintf("failed to parse feed: %v", err)}
	}

	if len(parsed.Items) == 0 {
		return Validation{Title: parsed.Title, Reason: "feed has no entries"}
	}

	entries := make([]Entry, 0, len(parsed.Items))
	withAudio := 0
	for _, item := range parsed.Items {
		entry := normalizeEntry(item)
		if entry.AudioURL != "" {
			withAudio++
		}
		if entry.GUID == "" || entry.AudioURL == "" {
			continue
		}
		entries = append(entries, entry)
	}

	if withAudio == 0 {
		return Validation{Title: parsed.Title, Reason: "feed has no audio enclosures"}
	}

	return Validation{Valid: true, Title: parsed.Title, Entries: entries}
}

func normalizeEntry(item *gofeed.Item) Entry {
	entry := Entry{
		GUID:        item.GUID,
		Title:       item.Title,
		Description: item.Description,
		Published:   item.PublishedParsed,
	}

	// First audio enclosure wins; other enclosure types are ignored
	for _, enclosure := range item.Enclosures {
		if enclosure == nil {
			continue
		}
		if strings.HasPrefix(enclosure.Type, "audio/") {
			entry.AudioURL = enclosure.URL
			entry.AudioType = enclosure.Type
			break
		}
	}

	return entry
}
