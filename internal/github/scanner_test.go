package github

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUser(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "profile", input: "https://github.com/octocat", want: "octocat", wantOK: true},
		{name: "trailing slash", input: "https://github.com/octocat/", want: "octocat", wantOK: true},
		{name: "repo url", input: "https://github.com/octocat/hello-world", want: "octocat", wantOK: true},
		{name: "www host", input: "https://www.GitHub.com/octocat", want: "octocat", wantOK: true},
		{name: "no user", input: "https://github.com/", wantOK: false},
		{name: "other host", input: "https://gitlab.com/octocat", wantOK: false},
		{name: "relative", input: "github.com/octocat", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseUser(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newGitHubServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "8", r.URL.Query().Get("per_page"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[
			{"name":"hello","fork":false,"html_url":"https://github.com/octocat/hello"},
			{"name":"forked","fork":true,"html_url":"https://github.com/octocat/forked"},
			{"name":"nourl","fork":false}
		]`))
	})
	mux.HandleFunc("GET /repos/octocat/hello/languages", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(hits, 1)
		_, _ = w.Write([]byte(`{"Go":12000,"Shell":300}`))
	})
	mux.HandleFunc("GET /repos/octocat/nourl/languages", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(hits, 1)
		_, _ = w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestScanner_Scan(t *testing.T) {
	var hits int32
	server := newGitHubServer(t, &hits)
	scanner := NewScanner(WithBaseURL(server.URL+"/"), WithToken("secret"), WithHTTPClient(server.Client()))

	repos, err := scanner.Scan(t.Context(), "https://github.com/octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "hello", repos[0].Name)
	assert.Equal(t, "https://github.com/octocat/hello", repos[0].URL)
	assert.Equal(t, map[string]int64{"Go": 12000, "Shell": 300}, repos[0].Languages)

	assert.Equal(t, "nourl", repos[1].Name)
	assert.Equal(t, "https://github.com/octocat/nourl", repos[1].URL)
	assert.Empty(t, repos[1].Languages)
	assert.NotNil(t, repos[1].Languages)

	// one listing plus one languages call per owned repository
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestScanner_Scan_NotGitHub(t *testing.T) {
	var hits int32
	server := newGitHubServer(t, &hits)
	scanner := NewScanner(WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	repos, err := scanner.Scan(t.Context(), "https://example.com/octocat")
	require.NoError(t, err)
	assert.Empty(t, repos)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestScanner_Scan_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"API rate limit exceeded"}`, http.StatusForbidden)
	}))
	defer server.Close()

	scanner := NewScanner(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	_, err := scanner.Scan(t.Context(), "https://github.com/octocat")
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}

func TestScanner_Scan_LanguagesError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"hello"}]`))
	})
	mux.HandleFunc("GET /repos/octocat/hello/languages", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	scanner := NewScanner(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	_, err := scanner.Scan(t.Context(), "https://github.com/octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewScanner_Defaults(t *testing.T) {
	s := NewScanner(WithBaseURL(""))
	assert.Equal(t, DefaultAPIURL, s.baseURL)
	assert.Empty(t, s.token)
	assert.Nil(t, s.client)
}
