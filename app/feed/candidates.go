package feed

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var feedLinkTypeRe = regexp.MustCompile(`(?i)(rss|xml|atom)`)

// guessedPaths are appended to the page URL as fallback candidates, covering
// feeds that pages do not advertise via <link> elements.
var guessedPaths = []string{"/feed", "/rss", "/podcast.xml", "/episodes.xml"}

// Candidates extracts potential feed URLs from a page: first every <link>
// element whose type attribute mentions a syndication format, with relative
// hrefs resolved against pageURL, then the well-known feed paths. The result
// is deduplicated preserving first-seen order. No network access happens
// here.
func Candidates(pageURL string, pageHTML []byte) []string {
	candidates := make([]string, 0, len(guessedPaths))
	seen := make(map[string]bool)

	add := func(candidate string) {
		if candidate == "" || seen[candidate] {
			return
		}
		seen[candidate] = true
		candidates = append(candidates, candidate)
	}

	base, baseErr := url.Parse(pageURL)

	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(pageHTML)); err == nil {
		doc.Find("link").Each(func(_ int, s *goquery.Selection) {
			linkType, _ := s.Attr("type")
			if !feedLinkTypeRe.MatchString(linkType) {
				return
			}

			href := strings.TrimSpace(s.AttrOr("href", ""))
			if href == "" {
				return
			}

			if baseErr == nil {
				if resolved, err := base.Parse(href); err == nil {
					add(resolved.String())
					return
				}
			}
			add(href)
		})
	}

	for _, path := range guessedPaths {
		add(strings.TrimRight(pageURL, "/") + path)
	}

	return candidates
}
