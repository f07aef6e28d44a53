package feed

import (
	"time"
)

// Entry is a single usable episode extracted from a parsed feed. Items
// missing a guid or an audio enclosure are dropped during validation and
// never surface here.
type Entry struct {
	GUID        string
	Title       string
	Description string
	AudioURL    string     // first audio/* enclosure
	AudioType   string     // enclosure MIME type
	Published   *time.Time // nil when the feed provides no publication date
}

// Validation is the outcome of checking fetched data as a podcast feed.
type Validation struct {
	Valid   bool
	Reason  string // set when Valid is false
	Title   string // feed-level title, when parseable
	Entries []Entry
}
