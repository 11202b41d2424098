package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/go-github/v57/github"
	"github.com/saint0x/tutorialmaker/pkg/failure"
	"github.com/saint0x/tutorialmaker/pkg/log"
	"golang.org/x/oauth2"
)

const serviceName = "github"

var repoPathPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// ParseRepoURL extracts owner and name from the first github.com/<owner>/<name>
// occurrence in raw.
func ParseRepoURL(raw string) (RepoRef, error) {
	m := repoPathPattern.FindStringSubmatch(raw)
	if m == nil {
		return RepoRef{}, failure.New(failure.InvalidRepositoryURL, "parse url",
			fmt.Errorf("no github.com/<owner>/<repo> path in %q", raw))
	}
	return RepoRef{Owner: m[1], Name: m[2]}, nil
}

// Client reads repository contents from GitHub
type Client struct {
	client *github.Client
	logger *log.Logger
}

type options struct {
	baseURL    string
	httpClient *http.Client
	verbose    bool
}

// Option configures a Client
type Option func(*options)

// WithBaseURL points the client at a GitHub Enterprise or test API root
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the transport used underneath the token source
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithVerbose logs every GitHub API call at debug level
func WithVerbose(enabled bool) Option {
	return func(o *options) {
		o.verbose = enabled
	}
}

// loggingRoundTripper emits one line per request and response
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger *log.Logger
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.logger.Debug("github api: %s %s", req.Method, req.URL.String())
	resp, err := t.base.RoundTrip(req)
	dur := time.Since(start).Truncate(time.Millisecond)
	if err != nil {
		t.logger.Debug("github api: error after %s: %v", dur, err)
	} else {
		t.logger.Debug("github api: %d %s (%s)", resp.StatusCode, http.StatusText(resp.StatusCode), dur)
	}
	return resp, err
}

// New creates a GitHub client authenticated with a static token
func New(logger *log.Logger, token string, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("github token is required")
	}

	o := &options{}
	for _, apply := range opts {
		if apply != nil {
			apply(o)
		}
	}

	base := http.DefaultTransport
	if o.httpClient != nil && o.httpClient.Transport != nil {
		base = o.httpClient.Transport
	}
	if o.verbose {
		base = &loggingRoundTripper{base: base, logger: logger}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := &http.Client{Transport: &oauth2.Transport{Source: ts, Base: base}}
	if o.httpClient != nil {
		tc.Timeout = o.httpClient.Timeout
	}

	gh := github.NewClient(tc)
	if o.baseURL != "" {
		u, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}
		gh.BaseURL = u
	}

	return &Client{
		client: gh,
		logger: logger,
	}, nil
}

// parseBaseURL ensures the trailing slash go-github requires
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid github base URL %q: %w", raw, err)
	}
	return u, nil
}

// FetchListing returns the top-level contents of the repository
func (c *Client) FetchListing(ctx context.Context, ref RepoRef) (Listing, error) {
	owner, name := ref.escaped()
	file, dir, _, err := c.client.Repositories.GetContents(ctx, owner, name, "", &github.RepositoryContentGetOptions{})
	if err != nil {
		return nil, failure.Remote(serviceName, "fetch listing", fmt.Errorf("failed to get contents of %s: %w", ref, err))
	}
	if file != nil || dir == nil {
		return nil, failure.New(failure.NotADirectory, "fetch listing",
			fmt.Errorf("root of %s is not a directory", ref))
	}

	listing := make(Listing, 0, len(dir))
	for _, item := range dir {
		if item == nil {
			continue
		}
		listing = append(listing, Entry{
			Name: item.GetName(),
			Path: item.GetPath(),
			Kind: kindFromContentType(item.GetType()),
		})
	}
	c.logger.Debug("Listing for %s has %d entries", ref, len(listing))

	return listing, nil
}

// FetchReadme returns the decoded text of the file at path. An unreadable
// README is not an error: it is logged and reported as empty content.
func (c *Client) FetchReadme(ctx context.Context, ref RepoRef, path string) (string, error) {
	owner, name := ref.escaped()
	file, _, _, err := c.client.Repositories.GetContents(ctx, owner, name, path, &github.RepositoryContentGetOptions{})
	if err != nil {
		c.logger.Warning("Failed to fetch README %s from %s: %v", path, ref, err)
		return "", nil
	}
	if file == nil || file.Content == nil {
		c.logger.Warning("README content not found or in unexpected format")
		return "", nil
	}

	content, err := file.GetContent()
	if err != nil {
		c.logger.Warning("Failed to decode README %s: %v", path, err)
		return "", nil
	}
	if !utf8.ValidString(content) {
		c.logger.Warning("README %s is not valid UTF-8 text", path)
		return "", nil
	}

	return content, nil
}
