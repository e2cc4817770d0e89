// Package profiles reads public profile pages linked from a résumé.
package profiles

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/fetch"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

var headlineSelectors = []string{
	".top-card-layout__headline",
	"h2.top-card-layout__headline",
	"[data-section='headline']",
}

var locationSelectors = []string{
	".top-card__subline-item",
	".top-card-layout__first-subline .not-first-middot span",
	"[data-section='location']",
}

// LinkedIn looks up public LinkedIn profile pages
type LinkedIn struct {
	client *http.Client
}

// NewLinkedIn creates a lookup. A nil client uses the fetch defaults.
func NewLinkedIn(client *http.Client) *LinkedIn {
	return &LinkedIn{client: client}
}

// Lookup returns the headline and location shown on a public profile page.
// It is best-effort: any failure, a non-LinkedIn URL or a page without either
// field yields nil.
func (l *LinkedIn) Lookup(ctx context.Context, profileURL string) *types.LinkedInProfile {
	if !IsLinkedInURL(profileURL) {
		return nil
	}

	opts := fetch.DefaultOptions()
	opts.Client = l.client
	opts.Headers = map[string]string{"Accept-Language": "en"}

	result, err := fetch.URL(ctx, profileURL, opts)
	if err != nil {
		log.Printf("LinkedIn lookup skipped: %v", err)
		return nil
	}

	profile, err := ParseLinkedIn(result.Body)
	if err != nil {
		log.Printf("LinkedIn lookup skipped: %v", err)
		return nil
	}
	return profile
}

// ParseLinkedIn reads headline and location from a profile page. Returns nil
// when the page shows neither.
func ParseLinkedIn(html []byte) (*types.LinkedInProfile, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	headline := firstText(doc, headlineSelectors)
	if headline == "" {
		headline = metaContent(doc, "meta[property='og:title']")
	}
	location := firstText(doc, locationSelectors)

	if headline == "" && location == "" {
		return nil, nil
	}
	return &types.LinkedInProfile{Headline: headline, Location: location}, nil
}

// IsLinkedInURL reports whether u is an absolute linkedin.com URL
func IsLinkedInURL(u string) bool {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			if text := collapseSpaces(sel.First().Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return collapseSpaces(content)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
