package profiles

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilePage = `
<html>
	<head><meta property="og:title" content="Jane Doe - Acme | LinkedIn"></head>
	<body>
		<section class="top-card-layout">
			<h2 class="top-card-layout__headline">
				Senior Backend Engineer
				at Acme
			</h2>
			<div class="top-card__subline-item">Berlin, Germany</div>
		</section>
	</body>
</html>`

func TestParseLinkedIn(t *testing.T) {
	tests := []struct {
		name string
		html string
		want *types.LinkedInProfile
	}{
		{
			name: "headline and location",
			html: profilePage,
			want: &types.LinkedInProfile{Headline: "Senior Backend Engineer at Acme", Location: "Berlin, Germany"},
		},
		{
			name: "og title fallback",
			html: `<html><head><meta property="og:title" content="Jane Doe"></head><body></body></html>`,
			want: &types.LinkedInProfile{Headline: "Jane Doe"},
		},
		{
			name: "nothing readable",
			html: `<html><body><p>Sign in to view</p></body></html>`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLinkedIn([]byte(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsLinkedInURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.linkedin.com/in/jane", true},
		{"https://linkedin.com/in/jane", true},
		{"https://de.linkedin.com/in/jane", true},
		{"https://notlinkedin.com/in/jane", false},
		{"https://linkedin.com.evil.io/in/jane", false},
		{"linkedin.com/in/jane", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLinkedInURL(tt.input))
		})
	}
}

func TestLinkedIn_Lookup_NonLinkedInURL(t *testing.T) {
	l := NewLinkedIn(nil)
	assert.Nil(t, l.Lookup(t.Context(), "https://github.com/jane"))
}

// The lookup only accepts linkedin.com hosts, so the HTTP path is exercised
// with a transport that reroutes requests to a local server.
type rewriteTransport struct {
	target string
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.URL.Scheme = "http"
	clone.URL.Host = rt.target
	return http.DefaultTransport.RoundTrip(clone)
}

func TestLinkedIn_Lookup(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *types.LinkedInProfile
	}{
		{
			name:   "public page",
			status: http.StatusOK,
			body:   profilePage,
			want:   &types.LinkedInProfile{Headline: "Senior Backend Engineer at Acme", Location: "Berlin, Germany"},
		},
		{name: "auth wall", status: 999, body: "", want: nil},
		{name: "not found", status: http.StatusNotFound, body: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/in/jane", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := &http.Client{Transport: rewriteTransport{target: server.Listener.Addr().String()}}
			l := NewLinkedIn(client)

			assert.Equal(t, tt.want, l.Lookup(t.Context(), "https://www.linkedin.com/in/jane"))
		})
	}
}
