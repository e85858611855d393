package services

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHttpRequest_PostsJSON(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "yes", r.Header.Get("X-Alert"))
		body, _ := ioutil.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	body, err := HttpRequest(http.MethodPost, server.URL, map[string]string{"X-Alert": "yes"}, map[string]string{"reason": "boom"})

	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "boom", received["reason"])
}

func TestHttpRequest_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := HttpRequest(http.MethodGet, server.URL, nil, nil)
	assert.Error(t, err)
}
