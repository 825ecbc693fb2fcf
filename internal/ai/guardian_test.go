package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		require.Equal(t, "system", req.Messages[0].Role)
		require.Equal(t, GuardianPersona, req.Messages[0].Content)
		require.Equal(t, "Estou perdido", req.Messages[1].Content)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "  Siga a Senda.  "}},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model", time.Second)
	reply, err := client.Reply(context.Background(), "Estou perdido")
	require.NoError(t, err)
	require.Equal(t, "Siga a Senda.", reply)
}

func TestClientReplyWithoutKey(t *testing.T) {
	client := NewClient("", "http://unused", "test-model", time.Second)
	_, err := client.Reply(context.Background(), "oi")
	require.Error(t, err)
}

func TestClientReplyNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model", time.Second)
	_, err := client.Reply(context.Background(), "oi")
	require.Error(t, err)
}

func TestClientReplyEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model", time.Second)
	_, err := client.Reply(context.Background(), "oi")
	require.ErrorIs(t, err, errEmptyReply)
}
