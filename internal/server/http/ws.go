package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"aimax/internal/server/game"
)

const wsIdlePingInterval = 30 * time.Second

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return data
}

type wsClient struct {
	send chan []byte
}

func (c *wsClient) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
		// 慢客户端直接丢
	}
}

// Hub 按对局 ID 分组的 websocket 客户端
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*wsClient]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*wsClient]struct{})}
}

func (h *Hub) register(id string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[id]
	if !ok {
		set = make(map[*wsClient]struct{})
		h.clients[id] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(id string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[id]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, id)
	}
}

// Broadcast 把新状态推给订阅这局的所有客户端
func (h *Hub) Broadcast(st game.State) {
	if h == nil {
		return
	}
	msg := wsMessage{Type: "state", Payload: mustMarshal(st)}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[st.ID] {
		c.sendJSON(msg)
	}
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

// ServeWS GET /api/games/{id}/ws：先推一次当前状态，之后每次变化都推
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id := chi.URLParam(r, "id")
	client := &wsClient{send: make(chan []byte, 16)}
	h.hub.register(id, client)
	client.sendJSON(wsMessage{Type: "state", Payload: mustMarshal(s.State())})

	go func() {
		defer conn.Close()
		_ = writeWSWithHeartbeat(conn, client.send)
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			h.hub.unregister(id, client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "ping":
			client.sendJSON(wsMessage{Type: "pong"})
		case "request_state":
			client.sendJSON(wsMessage{Type: "state", Payload: mustMarshal(s.State())})
		}
	}
}
