package wolfram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Query(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantAnswer string
		wantOK     bool
	}{
		{name: "answer", status: http.StatusOK, body: "4", wantAnswer: "4", wantOK: true},
		{name: "trailing newline trimmed", status: http.StatusOK, body: "Paris\n", wantAnswer: "Paris", wantOK: true},
		{name: "not understood", status: http.StatusNotImplemented, body: "Wolfram|Alpha did not understand your input"},
		{name: "bad app id", status: http.StatusForbidden, body: "Error 1: Invalid appid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "secret", r.URL.Query().Get("appid"))
				assert.Equal(t, "2 + 2", r.URL.Query().Get("i"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New("secret", WithBaseURL(srv.URL))
			answer, ok := c.Query(context.Background(), "2 + 2")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAnswer, answer)
		})
	}
}

func TestClient_NoAppID(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New("", WithBaseURL(srv.URL))
	_, err := c.Result(context.Background(), "pi")
	assert.ErrorIs(t, err, ErrNoAppID)

	_, ok := c.Query(context.Background(), "pi")
	assert.False(t, ok)
	assert.False(t, called)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := New("secret", WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, ok := c.Query(context.Background(), "slow")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_ResultStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	}))
	defer srv.Close()

	_, err := New("secret", WithBaseURL(srv.URL)).Result(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestWithTimeout_CopiesSharedClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	c := New("secret", WithHTTPClient(shared), WithTimeout(2*time.Second))

	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, 2*time.Second, c.client.Timeout)
	assert.NotSame(t, shared, c.client)
}
