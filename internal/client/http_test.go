package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-App-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"go","count":3}`))
	}))
	defer srv.Close()

	extra := http.Header{}
	extra.Set("X-Api-App-Id", "secret")

	var got payload
	err := GetJSON(context.Background(), CreateHTTPClient(time.Second), srv.URL, extra, &got)
	require.NoError(t, err)
	assert.Equal(t, payload{Name: "go", Count: 3}, got)
}

func TestGetJSON_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"name":"zipped","count":1}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	var got payload
	require.NoError(t, GetJSON(context.Background(), CreateHTTPClient(0), srv.URL, nil, &got))
	assert.Equal(t, "zipped", got.Name)
}

func TestGetJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, strings.Repeat("x", 1000), http.StatusForbidden)
	}))
	defer srv.Close()

	var got payload
	err := GetJSON(context.Background(), CreateHTTPClient(time.Second), srv.URL, nil, &got)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.LessOrEqual(t, len(statusErr.Body), maxErrorBody+3)
	assert.Contains(t, err.Error(), "403")
}

func TestGetJSON_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	var got payload
	err := GetJSON(context.Background(), CreateHTTPClient(time.Second), srv.URL, nil, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestGetJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	var got payload
	err := GetJSON(context.Background(), CreateHTTPClient(time.Second), url, nil, &got)
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestCreateProxyHTTPClient(t *testing.T) {
	direct, err := CreateProxyHTTPClient("", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, direct.Timeout)

	proxied, err := CreateProxyHTTPClient("http://localhost:8080", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, proxied.Timeout)

	req := httptest.NewRequest(http.MethodGet, "https://api.hh.ru/vacancies", nil)
	proxyURL, err := proxied.Transport.(*http.Transport).Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", proxyURL.Host)

	_, err = CreateProxyHTTPClient("://bad", 0)
	require.Error(t, err)
}
