package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifySendsMessage(t *testing.T) {
	var got sendMessageRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/botsecret-token/sendMessage", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(sendMessageResponse{OK: true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tg, err := NewTelegram(srv.URL, "secret-token", "12345", nil)
	require.NoError(t, err)

	require.NoError(t, tg.Notify(context.Background(), "hello"))
	assert.Equal(t, "12345", got.ChatID)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "Markdown", got.ParseMode)
}

func TestNotifyAPIRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(sendMessageResponse{OK: false, Description: "chat not found"})
	}))
	defer srv.Close()

	tg, err := NewTelegram(srv.URL, "t", "c", nil)
	require.NoError(t, err)

	err = tg.Notify(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestNotifyOKFalseWith200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sendMessageResponse{OK: false, Description: "flood control"})
	}))
	defer srv.Close()

	tg, err := NewTelegram(srv.URL, "t", "c", nil)
	require.NoError(t, err)

	assert.Error(t, tg.Notify(context.Background(), "hello"))
}

func TestNotifyNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, to force a connection error

	tg, err := NewTelegram(srv.URL, "t", "c", nil)
	require.NoError(t, err)

	assert.Error(t, tg.Notify(context.Background(), "hello"))
}
