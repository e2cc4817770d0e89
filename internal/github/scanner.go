// Package github lists a candidate's public repositories and their languages.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/fetch"
	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

// UserAgent identifies the scanner to the GitHub API.
const UserAgent = "CvAiMatcher/1.0"

// MaxRepos is how many recently updated repositories are requested.
const MaxRepos = 8

// languageWorkers bounds concurrent /languages requests.
const languageWorkers = 4

// Scanner fetches repository summaries from the GitHub REST API
type Scanner struct {
	baseURL string
	token   string
	client  *http.Client
}

// Option configures a Scanner
type Option func(*Scanner)

// WithBaseURL points the scanner at another API host, such as GitHub Enterprise.
func WithBaseURL(baseURL string) Option {
	return func(s *Scanner) {
		if baseURL != "" {
			s.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithToken authenticates requests, which raises the API rate limit.
func WithToken(token string) Option {
	return func(s *Scanner) { s.token = token }
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scanner) { s.client = client }
}

// NewScanner creates a scanner for the public GitHub API
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{baseURL: DefaultAPIURL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type repo struct {
	Name    string `json:"name"`
	Fork    bool   `json:"fork"`
	HTMLURL string `json:"html_url"`
}

// Scan returns up to MaxRepos non-fork repositories for the user named in
// profileURL. A URL that does not name a GitHub user yields no repositories.
func (s *Scanner) Scan(ctx context.Context, profileURL string) ([]types.RepoSummary, error) {
	user, ok := ParseUser(profileURL)
	if !ok {
		return []types.RepoSummary{}, nil
	}

	var repos []repo
	listURL := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", s.baseURL, url.PathEscape(user), MaxRepos)
	if err := fetch.JSON(ctx, listURL, s.options(), &repos); err != nil {
		return nil, err
	}

	owned := make([]repo, 0, len(repos))
	for _, r := range repos {
		if !r.Fork && r.Name != "" {
			owned = append(owned, r)
		}
	}

	results := make([]types.RepoSummary, len(owned))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(languageWorkers)
	for i, r := range owned {
		g.Go(func() error {
			langs := map[string]int64{}
			langURL := fmt.Sprintf("%s/repos/%s/%s/languages", s.baseURL, url.PathEscape(user), url.PathEscape(r.Name))
			if err := fetch.JSON(gCtx, langURL, s.options(), &langs); err != nil {
				return err
			}
			if langs == nil {
				langs = map[string]int64{}
			}

			htmlURL := r.HTMLURL
			if htmlURL == "" {
				htmlURL = fmt.Sprintf("https://github.com/%s/%s", user, r.Name)
			}
			results[i] = types.RepoSummary{Name: r.Name, URL: htmlURL, Languages: langs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Scanner) options() *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.UserAgent = UserAgent
	opts.Client = s.client
	opts.Headers = map[string]string{"Accept": "application/vnd.github+json"}
	if s.token != "" {
		opts.Headers["Authorization"] = "Bearer " + s.token
	}
	return opts
}

// ParseUser extracts the user name from a profile URL such as
// https://github.com/octocat or https://github.com/octocat/repo.
func ParseUser(profileURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(profileURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	if !strings.Contains(strings.ToLower(u.Host), "github.com") {
		return "", false
	}
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			return part, true
		}
	}
	return "", false
}
