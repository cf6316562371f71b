package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const listingBody = `[
	{"name": "art", "path": "art", "type": "dir"},
	{"name": "cat.png", "path": "cat.png", "type": "file"},
	{"name": "notes.txt", "path": "notes.txt", "type": "file"}
]`

// newCountingServer serves statuses in order, repeating the last one, and
// counts requests.
func newCountingServer(t *testing.T, statuses []int, body string) (*httptest.Server, *int64) {
	t.Helper()
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&calls, 1)
		idx := int(n) - 1
		if idx >= len(statuses) {
			idx = len(statuses) - 1
		}
		status := statuses[idx]
		w.WriteHeader(status)
		if status == http.StatusOK {
			fmt.Fprint(w, body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testClient(srv *httptest.Server) *Client {
	return newClient(srv.URL, 5*time.Second, time.Millisecond)
}

func TestClient_List_Success(t *testing.T) {
	srv, calls := newCountingServer(t, []int{http.StatusOK}, listingBody)
	client := testClient(srv)

	listing, err := client.List(context.Background(), "media")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if *calls != 1 {
		t.Errorf("expected 1 request, got %d", *calls)
	}
	if len(listing) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(listing))
	}
	if !listing[0].Type.IsDir() {
		t.Errorf("first entry should be a dir, got %s", listing[0].Type)
	}
	if listing[1].Name != "cat.png" || listing[1].Type.IsDir() {
		t.Errorf("unexpected second entry: %+v", listing[1])
	}
}

func TestClient_List_NotFoundIsEmpty(t *testing.T) {
	srv, _ := newCountingServer(t, []int{http.StatusNotFound}, "")
	client := testClient(srv)

	listing, err := client.List(context.Background(), "missing/dir")
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if len(listing) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(listing))
	}
}

func TestClient_List_ServerErrorDegradesToEmpty(t *testing.T) {
	srv, calls := newCountingServer(t, []int{http.StatusInternalServerError}, "")
	client := testClient(srv)

	listing, err := client.List(context.Background(), "")
	if err != nil {
		t.Fatalf("server errors must degrade, got %v", err)
	}
	if len(listing) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(listing))
	}
	if *calls != 1 {
		t.Errorf("server errors must not be retried, got %d requests", *calls)
	}
}

func TestClient_List_ThrottledThenSuccess(t *testing.T) {
	statuses := []int{
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusOK,
	}
	srv, calls := newCountingServer(t, statuses, listingBody)
	client := testClient(srv)

	listing, err := client.List(context.Background(), "media")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if *calls != 4 {
		t.Errorf("expected exactly 4 requests, got %d", *calls)
	}
	if len(listing) != 3 {
		t.Errorf("expected the final listing unmodified, got %d entries", len(listing))
	}
}

func TestClient_List_ThrottleExhaustionIsUnavailable(t *testing.T) {
	srv, calls := newCountingServer(t, []int{http.StatusTooManyRequests}, "")
	client := testClient(srv)

	_, err := client.List(context.Background(), "media")
	if !IsUnavailable(err) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if *calls != int64(maxListAttempts) {
		t.Errorf("expected exactly %d requests, got %d", maxListAttempts, *calls)
	}
}

func TestClient_List_UndecodableBodyDegradesToEmpty(t *testing.T) {
	srv, _ := newCountingServer(t, []int{http.StatusOK}, `{"not": "an array"}`)
	client := testClient(srv)

	listing, err := client.List(context.Background(), "")
	if err != nil {
		t.Fatalf("decode failures must degrade, got %v", err)
	}
	if len(listing) != 0 {
		t.Errorf("expected empty listing, got %d entries", len(listing))
	}
}

func TestClient_ListingURL(t *testing.T) {
	client := newClient("https://example.test", time.Second, time.Millisecond)

	tests := []struct {
		path     string
		expected string
	}{
		{"", "https://example.test/repos/media-archive/collection/contents?ref=main"},
		{"media/clips", "https://example.test/repos/media-archive/collection/contents/media/clips?ref=main"},
		{"with space/a.png", "https://example.test/repos/media-archive/collection/contents/with%20space/a.png?ref=main"},
	}

	for _, test := range tests {
		result := client.listingURL(test.path)
		if result != test.expected {
			t.Errorf("listingURL(%q) = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestRawContentURL(t *testing.T) {
	result := RawContentURL("media/cat.png")
	expected := "https://raw.githubusercontent.com/media-archive/collection/main/media/cat.png"
	if result != expected {
		t.Errorf("RawContentURL = %q, expected %q", result, expected)
	}

	if got := RawContentURL("a b/c.png"); !strings.Contains(got, "a%20b/c.png") {
		t.Errorf("path segments should be escaped, got %q", got)
	}
}
