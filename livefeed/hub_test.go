package livefeed

import (
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	hub.Register(client)

	data := []byte(`[{"id":"abc"}]`)
	hub.Broadcast(data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for snapshot")
	}

	hub.Unregister(client)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// Unbuffered send channel fills immediately.
	client := &Client{Send: make(chan []byte)}
	hub.Register(client)

	hub.Broadcast([]byte("one"))

	select {
	case _, ok := <-client.Send:
		if ok {
			t.Fatal("expected channel to be closed for slow client")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for close")
	}
}

func TestHubRegisterAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	client := &Client{Send: make(chan []byte, 1)}
	done := make(chan struct{})
	go func() {
		hub.Register(client)
		hub.Unregister(client)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("register/unregister blocked on a stopped hub")
	}

	// A registration the run loop never saw still ends with a closed
	// send channel so the writer goroutine exits.
	select {
	case _, ok := <-client.Send:
		if ok {
			t.Fatal("expected send channel to be closed")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("send channel left open after stopped-hub register")
	}
}
