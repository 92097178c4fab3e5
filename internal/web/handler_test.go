package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsearch/internal/service"
)

type stubPages struct {
	queries []string
	results []string
}

func (s *stubPages) Index(context.Context) service.Page {
	return service.Page{Results: []string{}, FolderSize: "1.25 GB"}
}

func (s *stubPages) Search(_ context.Context, query string) service.Page {
	s.queries = append(s.queries, query)
	return service.Page{Query: query, Results: s.results, FolderSize: "0.50 GB"}
}

func TestIndexRendersFolderSize(t *testing.T) {
	h := NewHandler(&stubPages{}, nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Folder size: 1.25 GB")
	assert.NotContains(t, body, "<li>")
}

func TestSearchRendersResults(t *testing.T) {
	pages := &stubPages{results: []string{"[1] Found data: foo", "[2] Found data: <b>foo</b>"}}
	h := NewHandler(pages, nil)
	form := url.Values{"text": {"foo"}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"foo"}, pages.queries)
	body := rec.Body.String()
	assert.Contains(t, body, "<li>[1] Found data: foo</li>")
	assert.Contains(t, body, "&lt;b&gt;foo&lt;/b&gt;")
	assert.Contains(t, body, `value="foo"`)
	assert.Contains(t, body, "Folder size: 0.50 GB")
}

func TestSearchEmptyQueryIsAccepted(t *testing.T) {
	pages := &stubPages{results: []string{"No data found."}}
	h := NewHandler(pages, nil)
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{""}, pages.queries)
}

func TestRoutes(t *testing.T) {
	h := NewHandler(&stubPages{}, nil)
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/search", http.StatusMethodNotAllowed},
		{http.MethodPost, "/", http.StatusMethodNotAllowed},
		{http.MethodGet, "/elsewhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := NewServer(ServerConfig{ReadTimeout: time.Second, WriteTimeout: time.Second}, NewHandler(&stubPages{}, nil), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "1.25 GB")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	srv := NewServer(ServerConfig{Addr: "256.0.0.1:http-nope"}, http.NotFoundHandler(), nil)
	assert.Error(t, srv.ListenAndServe(context.Background()))
}
