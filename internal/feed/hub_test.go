package feed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ManifoldAI-Apps/triuno-app/internal/models"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversPostEvents(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	defer close(done)
	go hub.Run(done)

	client := hub.Subscribe()
	defer hub.Unsubscribe(client)

	post := &models.GratitudePost{Author: "Ana", Content: "Grato"}
	hub.PublishPost(post)

	select {
	case payload := <-client.Send:
		var event Event
		require.NoError(t, json.Unmarshal(payload, &event))
		require.Equal(t, EventPostCreated, event.Type)
		require.Equal(t, "Grato", event.Post.Content)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	defer close(done)
	go hub.Run(done)

	first := hub.Subscribe()
	second := hub.Subscribe()
	defer hub.Unsubscribe(first)
	defer hub.Unsubscribe(second)

	hub.PublishPost(&models.GratitudePost{Author: "Ana", Content: "Luz"})

	for _, client := range []*Client{first, second} {
		select {
		case <-client.Send:
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the event")
		}
	}
}

func TestHubUnsubscribeClosesSendQueue(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	defer close(done)
	go hub.Run(done)

	client := hub.Subscribe()
	hub.Unsubscribe(client)

	select {
	case _, ok := <-client.Send:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send queue not closed")
	}
}
