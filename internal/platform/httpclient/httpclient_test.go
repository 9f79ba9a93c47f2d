package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/session", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authenticated":false}`))
	})
	mux.HandleFunc("/points", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-User-Email") != "ana@example.com" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"points":45}`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a url", "/relative"} {
		_, err := New(raw, time.Second)
		assert.Error(t, err, raw)
	}
}

func TestStatus_AnonymousSkipsPoints(t *testing.T) {
	ts := fakeServer(t)
	c, err := New(ts.URL+"/", time.Second)
	require.NoError(t, err)

	st, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Healthy)
	assert.False(t, st.Session.Authenticated)
	assert.Zero(t, st.Points)
}

func TestStatus_WithUserHeader(t *testing.T) {
	ts := fakeServer(t)
	c, err := New(ts.URL, time.Second)
	require.NoError(t, err)
	c.User = "ana@example.com"

	st, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 45, st.Points)
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	ts := fakeServer(t)
	c, err := New(ts.URL, time.Second)
	require.NoError(t, err)

	_, err = c.Points(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "unauthorized", he.Body)
}
