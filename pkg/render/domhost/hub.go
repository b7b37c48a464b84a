package domhost

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/fibrecore/fibre/internal/errors"
)

// hub fans out patch batches to every connected browser client and keeps
// the full op log so a client that connects after the app has already
// mounted still gets brought up to date — grounded on gorilla/websocket's
// register/unregister/broadcast channel idiom.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []patchOp
	history []patchOp
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]chan []patchOp)}
}

func (h *hub) register(conn *websocket.Conn) chan []patchOp {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan []patchOp, 16)
	h.clients[conn] = ch
	if len(h.history) > 0 {
		snapshot := make([]patchOp, len(h.history))
		copy(snapshot, h.history)
		ch <- snapshot
	}
	return ch
}

func (h *hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.clients[conn]; ok {
		close(ch)
		delete(h.clients, conn)
	}
}

func (h *hub) broadcast(ops []patchOp) {
	h.mu.Lock()
	h.history = append(h.history, ops...)
	for _, ch := range h.clients {
		select {
		case ch <- ops:
		default:
			slog.Warn("domhost: dropping patch batch, client channel full")
		}
	}
	h.mu.Unlock()
}

func writeLoop(conn *websocket.Conn, ch chan []patchOp) {
	for ops := range ch {
		if err := conn.WriteJSON(ops); err != nil {
			return
		}
	}
}

// clientEvent is an incoming message from the browser: a DOM event fired on
// the node with ID, optionally carrying Value (an input/change event's
// current value).
type clientEvent struct {
	ID    uint64 `json:"id"`
	Event string `json:"event"`
	Value string `json:"value"`
}

func readLoop(conn *websocket.Conn, onEvent func(clientEvent)) {
	for {
		var msg clientEvent
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err) {
				slog.Warn("domhost: websocket closed unexpectedly", "error", errors.New("E220").Wrap(err))
			} else if _, ok := err.(*websocket.CloseError); !ok {
				slog.Warn("domhost: invalid patch message from client", "error", errors.New("E221").Wrap(err))
			}
			return
		}
		onEvent(msg)
	}
}
