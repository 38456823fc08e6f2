package feed

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// Discover crawls an HTML index page and returns the absolute URLs of every
// *.csv link on it. Used against the static site's data listing to spot
// datasets the fixed set above does not know about yet.
func Discover(pageURL string, timeout time.Duration) ([]string, error) {
	c := colly.NewCollector()
	c.SetRequestTimeout(timeout)

	seen := make(map[string]struct{})
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Request.AbsoluteURL(e.Attr("href"))
		if strings.HasSuffix(strings.ToLower(href), ".csv") {
			seen[href] = struct{}{}
		}
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("feed: discover %s: %w", pageURL, err)
	}

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls, nil
}
