package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/repomedia/repomedia/internal/logging"
	"github.com/repomedia/repomedia/internal/model"
)

// Repository coordinates. The app browses exactly one repository; these are
// build-time constants, not runtime configuration.
const (
	RepoOwner = "media-archive"
	RepoName  = "collection"
	RepoRef   = "main"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	rawBaseURL        = "https://raw.githubusercontent.com"

	// Throttling policy: first retry waits backoffUnit, doubling each
	// attempt, up to maxListAttempts requests in total.
	maxListAttempts    = 5
	defaultBackoffUnit = 500 * time.Millisecond
)

// contentEntry is the wire shape of one listing entry.
type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Client talks to the repository listing API.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
}

// retryLogger adapts the retry transport's leveled logging onto our logger.
type retryLogger struct{}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	logging.Error().Str("source", "retry").Msgf("%s %v", msg, keysAndValues)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	logging.Warn().Str("source", "retry").Msgf("%s %v", msg, keysAndValues)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {}

// NewClient creates a listing client for the fixed repository.
func NewClient(timeout time.Duration) *Client {
	return newClient(defaultAPIBaseURL, timeout, defaultBackoffUnit)
}

// newClient exists so tests can point at a local server with a tiny backoff.
func newClient(baseURL string, timeout, backoffUnit time.Duration) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &nethttp.Client{Timeout: timeout}
	rc.RetryMax = maxListAttempts - 1
	rc.Logger = &retryLogger{}

	// Retry throttled responses only. Transport errors and other statuses
	// are handled (and degraded) in List.
	rc.CheckRetry = func(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
		if err != nil {
			return false, err
		}
		return resp.StatusCode == nethttp.StatusTooManyRequests, nil
	}

	// backoffUnit * 2^attempt, attempt counting from zero.
	rc.Backoff = func(min, max time.Duration, attemptNum int, resp *nethttp.Response) time.Duration {
		return backoffUnit << attemptNum
	}

	rc.ErrorHandler = func(resp *nethttp.Response, err error, numTries int) (*nethttp.Response, error) {
		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("throttled %d times: %w", numTries, ErrUnavailable)
	}

	return &Client{
		httpClient: rc.StandardClient(),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// List fetches the direct children of path, "" meaning the repository root.
// Missing directories read as an empty listing. Throttling beyond the retry
// budget returns ErrUnavailable; any other failure is logged and degrades to
// an empty listing.
func (c *Client) List(ctx context.Context, path string) (model.Listing, error) {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, c.listingURL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, fmt.Errorf("list %q: %w", path, err)
		}
		logging.Warn().Err(err).Str("path", path).Msg("listing request failed, treating as empty")
		return model.Listing{}, nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == nethttp.StatusOK:
		return decodeListing(resp.Body, path)
	case resp.StatusCode == nethttp.StatusNotFound:
		// Directories that don't exist behave like empty ones.
		return model.Listing{}, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logging.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("body", string(body)).
			Msg("unexpected listing response, treating as empty")
		return model.Listing{}, nil
	}
}

func decodeListing(r io.Reader, path string) (model.Listing, error) {
	var entries []contentEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("undecodable listing response, treating as empty")
		return model.Listing{}, nil
	}

	listing := make(model.Listing, 0, len(entries))
	for _, e := range entries {
		t := model.EntryTypeFile
		if e.Type == "dir" {
			t = model.EntryTypeDir
		}
		listing = append(listing, model.Entry{Name: e.Name, Path: e.Path, Type: t})
	}
	return listing, nil
}

func (c *Client) listingURL(path string) string {
	u := c.baseURL + "/repos/" + RepoOwner + "/" + RepoName + "/contents"
	if path != "" {
		u += "/" + escapePath(path)
	}
	return u + "?ref=" + url.QueryEscape(RepoRef)
}

// RawContentURL builds the deterministic URL serving a file's raw content.
func RawContentURL(path string) string {
	return rawBaseURL + "/" + RepoOwner + "/" + RepoName + "/" + RepoRef + "/" + escapePath(path)
}

// escapePath escapes each segment of a slash-separated path, keeping the
// slashes themselves intact.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
