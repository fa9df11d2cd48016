package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebhookPostsMessage(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	hook := NewWebhook(server.URL)
	hook.Notify(context.Background(), "emp-1 requested day_off")
	require.Equal(t, "emp-1 requested day_off", got["text"])
}

func TestWebhookNoURLIsNoop(t *testing.T) {
	hook := NewWebhook("")
	hook.Notify(context.Background(), "ignored")
}

func TestWebhookSwallowsServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	hook := NewWebhook(server.URL)
	hook.Notify(context.Background(), "still fine")
}
