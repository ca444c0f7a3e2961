package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Borislavv/go-image-cache/internal/cache"
	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var png = []byte("\x89PNG\r\n\x1a\n0000")

type fakeCache struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	cleared int
}

func (f *fakeCache) Preload(_ context.Context, url string) string {
	if strings.Contains(url, "broken") {
		return url
	}
	return "http://test/blob/" + strings.Repeat("a", 32)
}

func (f *fakeCache) PreloadAll(ctx context.Context, urls []string) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = f.Preload(ctx, u)
	}
	return out
}

func (f *fakeCache) Resolve(handle string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blobs[handle]
	return b, ok
}

func (f *fakeCache) ExpireStaleEntries() int { return 2 }

func (f *fakeCache) Clear() {
	f.mu.Lock()
	f.cleared++
	f.mu.Unlock()
}

func (f *fakeCache) clears() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cleared
}

func (f *fakeCache) Stats() cache.Stats {
	return cache.Stats{
		Size:             1,
		MaxEntries:       50,
		TotalAccessCount: 3,
		Bytes:            int64(len(png)),
		Oldest:           time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Newest:           time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Hits:             2,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *fakeCache) {
	t.Helper()
	fc := &fakeCache{blobs: map[string][]byte{"abc": png}}
	logger := zerolog.Nop()
	srv := httptest.NewServer(New(fc, &logger, time.Hour).Handler())
	t.Cleanup(srv.Close)
	return srv, fc
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// TestServer_Blob serves live handles with a sniffed content type.
func TestServer_Blob(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/blob/abc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	require.Equal(t, "private, max-age=3600", resp.Header.Get("Cache-Control"))
	require.Equal(t, png, body)

	resp, body = do(t, http.MethodGet, srv.URL+"/blob/revoked", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var e errorResponse
	require.NoError(t, easyjson.Unmarshal(body, &e))
	require.NotEmpty(t, e.Error)
}

// TestServer_Preload reports whether a handle was issued.
func TestServer_Preload(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/preload?url=https://cdn.rentiva.test/a.jpg", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var ok preloadResponse
	require.NoError(t, easyjson.Unmarshal(body, &ok))
	require.True(t, ok.Cached)
	require.True(t, strings.HasPrefix(ok.Handle, "http://test/blob/"))

	_, body = do(t, http.MethodGet, srv.URL+"/preload?url=https://broken.test/a.jpg", "")
	var degraded preloadResponse
	require.NoError(t, easyjson.Unmarshal(body, &degraded))
	require.False(t, degraded.Cached)
	require.Equal(t, "https://broken.test/a.jpg", degraded.Handle)

	resp, _ = do(t, http.MethodGet, srv.URL+"/preload", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestServer_PreloadAll keeps results index-aligned.
func TestServer_PreloadAll(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodPost, srv.URL+"/preload", `{"urls":["https://cdn.rentiva.test/a.jpg","https://broken.test/b.jpg"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out preloadAllResponse
	require.NoError(t, easyjson.Unmarshal(body, &out))
	require.Len(t, out.Handles, 2)
	require.NotEqual(t, "https://cdn.rentiva.test/a.jpg", out.Handles[0])
	require.Equal(t, "https://broken.test/b.jpg", out.Handles[1])

	resp, _ = do(t, http.MethodPost, srv.URL+"/preload", `{"urls":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestServer_Stats renders counters and timestamps.
func TestServer_Stats(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var s statsResponse
	require.NoError(t, easyjson.Unmarshal(body, &s))
	require.Equal(t, 1, s.Size)
	require.Equal(t, 50, s.MaxEntries)
	require.Equal(t, int64(3), s.TotalAccessCount)
	require.Equal(t, "2024-06-01T12:00:00Z", s.Oldest)
	require.Equal(t, int64(2), s.Hits)
}

// TestServer_StatsEmptyOmitsTimestamps leaves out zero times.
func TestServer_StatsEmptyOmitsTimestamps(t *testing.T) {
	data, err := easyjson.Marshal(newStatsResponse(cache.Stats{MaxEntries: 50}))
	require.NoError(t, err)
	require.NotContains(t, string(data), "oldest")
	require.Contains(t, string(data), `"size":0,"max_entries":50`)
}

// TestServer_ClearAndExpire drive maintenance operations.
func TestServer_ClearAndExpire(t *testing.T) {
	srv, fc := newTestServer(t)

	resp, _ := do(t, http.MethodDelete, srv.URL+"/cache", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, 1, fc.clears())

	resp, body := do(t, http.MethodPost, srv.URL+"/cache/expire", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var e expireResponse
	require.NoError(t, easyjson.Unmarshal(body, &e))
	require.Equal(t, 2, e.Expired)

	resp, _ = do(t, http.MethodGet, srv.URL+"/cache/expire", "")
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

// TestServer_Healthz answers ok.
func TestServer_Healthz(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := do(t, http.MethodGet, srv.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
}

// TestServer_Serve shuts down when the context is done.
func TestServer_Serve(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := zerolog.Nop()
	s := New(&fakeCache{}, &logger, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
