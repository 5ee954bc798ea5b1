package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tablesync/pkg/errors"
)

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "tablesync-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer pat", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"42","title":"Roster"}`))
	}))
	defer server.Close()

	client := New(&BearerAuth{}, "pat", WithUserAgent("tablesync-test"), WithTimeout(time.Second))
	resp, err := client.Get(context.Background(), server.URL+"/rest/api/content/42")
	require.NoError(t, err)

	var got struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, DecodeResponse(context.Background(), resp, &got))
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "Roster", got.Title)
}

func TestClientPutJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "page", payload["type"])
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(nil, "")
	resp, err := client.PutJSON(context.Background(), server.URL, map[string]string{"type": "page"})
	require.NoError(t, err)
	Discard(context.Background(), resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDecodeResponseError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad credentials"}`, errors.ErrUnauthorized},
		{"not found", http.StatusNotFound, "", errors.ErrNotFound},
		{"unavailable", http.StatusServiceUnavailable, "down", errors.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := New(nil, "").Get(context.Background(), server.URL+"/rest/api/content/1")
			require.NoError(t, err)

			var target map[string]any
			err = DecodeResponse(context.Background(), resp, &target)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "/rest/api/content/1", apiErr.Endpoint)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestDecodeResponseBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	resp, err := New(nil, "").Get(context.Background(), server.URL)
	require.NoError(t, err)

	var target map[string]any
	err = DecodeResponse(context.Background(), resp, &target)
	assert.True(t, errors.IsParse(err))
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(409))
}
