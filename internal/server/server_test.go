package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	queries []string
}

func (s *stubResolver) Explain(_ context.Context, query string) assistant.Resolution {
	s.queries = append(s.queries, query)
	if strings.TrimSpace(query) == "" {
		return assistant.Resolution{Reply: assistant.EmptyReply, Source: assistant.SourceEmpty}
	}
	return assistant.Resolution{Reply: "echo: " + query, Intent: "greeting", Source: assistant.SourceIntent}
}

func newTestServer(t *testing.T) (*httptest.Server, *stubResolver) {
	t.Helper()
	res := &stubResolver{}
	srv := httptest.NewServer(NewHandler(res, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, res
}

func postProcess(t *testing.T, url, body string) (*http.Response, processResponse) {
	t.Helper()
	resp, err := http.Post(url+"/process", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out processResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestProcess(t *testing.T) {
	srv, res := newTestServer(t)

	resp, out := postProcess(t, srv.URL, `{"message":"hello"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, processResponse{Reply: "echo: hello", Intent: "greeting", Source: "intent"}, out)
	assert.Equal(t, []string{"hello"}, res.queries)
}

func TestProcess_MalformedBody(t *testing.T) {
	srv, res := newTestServer(t)

	for _, body := range []string{"", "not json", `{"message":`, `{}`} {
		resp, out := postProcess(t, srv.URL, body)
		assert.Equal(t, http.StatusOK, resp.StatusCode, body)
		assert.Equal(t, assistant.EmptyReply, out.Reply, body)
		assert.Equal(t, "empty", out.Source, body)
	}
	assert.Equal(t, []string{"", "", "", ""}, res.queries)
}

func TestProcess_MethodNotAllowed(t *testing.T) {
	srv, res := newTestServer(t)

	resp, err := http.Get(srv.URL + "/process")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Empty(t, res.queries)
}

func TestRequestID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := postProcess(t, srv.URL, `{"message":"hi"}`)
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, id)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	postProcess(t, srv.URL, `{"message":"hello"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "arlo_request_duration_seconds")
}
