// Package spectate serves a live view of a training run over HTTP: replay
// frames are broadcast to websocket subscribers on /ws, and /stats
// reports the latest generation summary as JSON. The server implements
// match.ReplaySink, so the trainer can point its champion replay at a
// browser instead of (or as well as) a file.
package spectate

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/neat-arena/match"
	"github.com/lixenwraith/neat-arena/sinks"
	"github.com/lixenwraith/neat-arena/world"
)

var _ match.ReplaySink = (*Server)(nil)

// writeWait bounds how long a broadcast blocks on one slow client before
// that client is dropped.
const writeWait = 1 * time.Second

// GenerationStats is the /stats payload, updated once per generation.
type GenerationStats struct {
	Generation      int     `json:"generation"`
	BestFitness     float64 `json:"best_fitness"`
	AverageFitness  float64 `json:"average_fitness"`
	AverageNaive    float64 `json:"average_naive"`
	DifficultyLevel int     `json:"difficulty_level"`
	ScanMaxDist     float64 `json:"scan_max_dist"`
}

// Server broadcasts replay frames and serves training stats.
type Server struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	stats   GenerationStats
	haveSts bool
}

// NewServer creates a spectator server with no connected clients.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			// Spectating is read-only and local; accept any origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Router returns the HTTP routes: GET /ws upgrades to a frame stream,
// GET /stats returns the latest generation summary.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.serveWebsocket).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.serveStats).Methods(http.MethodGet)
	return r
}

// ListenAndServe blocks serving the spectator routes on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[ws] = struct{}{}
	s.mu.Unlock()

	// Drain (and discard) client reads so closes are noticed; spectators
	// never send anything meaningful.
	go func() {
		defer s.drop(ws)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) serveStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	stats, have := s.stats, s.haveSts
	s.mu.Unlock()

	if !have {
		http.Error(w, "no generations completed yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

// PublishStats records the latest generation summary for /stats.
func (s *Server) PublishStats(stats GenerationStats) {
	s.mu.Lock()
	s.stats = stats
	s.haveSts = true
	s.mu.Unlock()
}

// WriteFrame broadcasts one replay frame to every connected spectator.
// Slow or dead clients are dropped rather than back-pressuring the match;
// the sink never returns an error for a client failure.
func (s *Server) WriteFrame(tick int, agents []world.Agent, wrecks []world.Wreck) error {
	payload, err := json.Marshal(sinks.NewFrame(tick, agents, wrecks))
	if err != nil {
		return err
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.drop(c)
		}
	}
	return nil
}

// ClientCount reports the number of connected spectators.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) drop(c *websocket.Conn) {
	s.mu.Lock()
	_, present := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()
	if present {
		c.Close()
	}
}
