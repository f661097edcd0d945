package screener

import (
	"regexp"
	"strings"

	"solana-token-screener/internal/domain"
)

// urlPattern matches http/https URLs embedded in free text. The $-_ range
// covers the URL path and query characters ( / ? = digits and more).
var urlPattern = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*(),]|%[0-9a-fA-F]{2})+`)

// ExtractLinks scans free-text metadata for URLs and classifies each into
// exactly one bucket. Classification precedence is telegram, then twitter,
// then website: a URL containing "t.me" is always telegram even if it also
// mentions twitter. Output is grouped by bucket in that order.
func ExtractLinks(description string) []domain.Link {
	urls := urlPattern.FindAllString(description, -1)

	var links []domain.Link
	for _, u := range urls {
		if strings.Contains(u, "t.me") {
			links = append(links, domain.Link{Kind: domain.LinkTelegram, URL: u})
		}
	}
	for _, u := range urls {
		if !strings.Contains(u, "t.me") && strings.Contains(u, "twitter.com") {
			links = append(links, domain.Link{Kind: domain.LinkTwitter, URL: u})
		}
	}
	for _, u := range urls {
		if !strings.Contains(u, "t.me") && !strings.Contains(u, "twitter.com") {
			links = append(links, domain.Link{Kind: domain.LinkWebsite, URL: u})
		}
	}
	return links
}
