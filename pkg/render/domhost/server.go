package domhost

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/fibrecore/fibre/internal/errors"
	"github.com/fibrecore/fibre/pkg/reactive"
	"github.com/fibrecore/fibre/pkg/render"
)

// Server serves a single mounted component tree to any number of browser
// tabs: one GET "/" for the bootstrap page and client script, and one
// GET "/ws" WebSocket per tab that receives the initial snapshot followed
// by every subsequent patch batch, and sends back DOM events.
type Server struct {
	plat   *Platform
	hub    *hub
	router chi.Router
	upg    websocket.Upgrader
}

// NewServer creates a domhost Server with its router, WebSocket upgrader
// and broadcast hub wired to a fresh Platform.
func NewServer() *Server {
	h := newHub()
	s := &Server{
		hub: h,
		upg: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.plat = NewPlatform(h.broadcast)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	s.router = r
	return s
}

// Platform returns the render.Platform backing this server, for Mount.
func (s *Server) Platform() render.Platform { return s.plat }

// Handler returns the http.Handler serving both the bootstrap page and the
// WebSocket endpoint, for an *http.Server or for tests via httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Mount builds root under a fresh owner rooted at parent (or nil for a
// top-level root), attached under this server's document-body anchor.
func (s *Server) Mount(parent *reactive.Owner, root *render.VNode) (*reactive.Owner, error) {
	if s.plat == nil {
		return nil, errors.New("E202")
	}
	owner := reactive.NewOwner(parent)
	render.MountInto(s.plat, s.plat.Root(), owner, root)
	return owner, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(bootstrapHTML))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upg.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("domhost: websocket upgrade failed", "error", errors.New("E220").Wrap(err))
		return
	}
	defer conn.Close()

	ch := s.hub.register(conn)
	defer s.hub.unregister(conn)

	go writeLoop(conn, ch)
	readLoop(conn, func(ev clientEvent) {
		s.plat.dispatch(ev.ID, ev.Event, ev.Value)
	})
}
