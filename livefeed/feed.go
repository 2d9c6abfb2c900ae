package livefeed

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"tripforge/middleware"
	"tripforge/repo"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed pushes the full ordered itinerary list to dashboard viewers
// whenever the repository changes. Consumers diff if they need to.
type Feed struct {
	hub  *Hub
	repo *repo.ItineraryRepo
}

func NewFeed(hub *Hub, itineraries *repo.ItineraryRepo) *Feed {
	return &Feed{hub: hub, repo: itineraries}
}

// Run subscribes to repository changes and rebroadcasts snapshots until
// the context is cancelled.
func (f *Feed) Run(ctx context.Context) {
	changes, cancel := f.repo.Subscribe()
	defer cancel()

	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
			f.push(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (f *Feed) push(ctx context.Context) {
	listCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	items, err := f.repo.List(listCtx)
	if err != nil {
		log.Printf("livefeed: list failed: %v", err)
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("livefeed: marshal failed: %v", err)
		return
	}
	f.hub.Broadcast(data)
}

// ServeWS upgrades a dashboard connection and streams list snapshots.
// GET /ws/itineraries?token=...
func (f *Feed) ServeWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := r.URL.Query().Get("token")
	if _, err := middleware.ValidateJWT(token); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livefeed: upgrade failed: %v", err)
		return
	}

	client := &Client{Send: make(chan []byte, 8)}
	f.hub.Register(client)

	// Initial snapshot so the viewer does not wait for the next change.
	// The request context dies when this handler returns.
	go f.push(context.Background())

	go func() {
		defer func() {
			f.hub.Unregister(client)
			conn.Close()
		}()
		for data := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				f.hub.Unregister(client)
				return
			}
		}
	}()
}
