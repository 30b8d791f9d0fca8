package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/game"
)

// Server hosts game sessions behind a JSON API and a WebSocket endpoint.
// Each session is one human seat against the in-process AI.
type Server struct {
	mux     *http.ServeMux
	logger  *zap.Logger
	balance config.Balance

	mu       sync.Mutex
	sessions map[string]*session
}

// session serializes access to one engine. The engine itself is
// single-writer; the lock keeps concurrent HTTP requests in line. Skip
// requests bypass the lock on purpose so they can land mid-AI-turn.
type session struct {
	mu  sync.Mutex
	eng *game.Engine
}

// NewServer creates a web server with the given balance configuration.
func NewServer(balance config.Balance, logger *zap.Logger) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		balance:  balance,
		sessions: make(map[string]*session),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("POST /api/games", s.handleCreate)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleSnapshot)
	s.mux.HandleFunc("POST /api/games/{id}/difficulty", s.handleDifficulty)
	s.mux.HandleFunc("POST /api/games/{id}/select", s.handleSelect)
	s.mux.HandleFunc("POST /api/games/{id}/attack", s.handleAttack)
	s.mux.HandleFunc("POST /api/games/{id}/end-turn", s.handleEndTurn)
	s.mux.HandleFunc("POST /api/games/{id}/skip", s.handleSkip)
	s.mux.HandleFunc("POST /api/games/{id}/reset", s.handleReset)
	s.mux.HandleFunc("GET /api/games/{id}/ws", s.handleWebSocket)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed int64 `json:"seed"`
	}
	// Body is optional; ignore decode errors and fall back to a random seed.
	_ = json.NewDecoder(r.Body).Decode(&req)

	id := uuid.NewString()
	sess := &session{
		eng: game.NewEngine(game.Config{Balance: s.balance, Seed: req.Seed}),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Info("session created", zap.String("id", id), zap.Int64("seed", req.Seed))
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) *session {
	id := r.PathValue("id")
	s.mu.Lock()
	sess := s.sessions[id]
	s.mu.Unlock()
	if sess == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown game"})
		return nil
	}
	return sess
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	snap := BuildSnapshot(sess.eng)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request body"})
		return
	}

	sess.mu.Lock()
	sess.eng.SetDifficulty(r.Context(), game.ParseDifficulty(req.Difficulty))
	snap := BuildSnapshot(sess.eng)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	var req struct {
		Card  *int `json:"card"`
		Asset *int `json:"asset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request body"})
		return
	}

	sess.mu.Lock()
	if req.Card != nil {
		sess.eng.SelectCard(*req.Card)
	}
	if req.Asset != nil {
		sess.eng.SelectAsset(*req.Asset)
	}
	snap := BuildSnapshot(sess.eng)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAttack(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	sess.eng.Attack()
	snap := BuildSnapshot(sess.eng)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleEndTurn(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	sess.eng.EndTurn(r.Context())
	snap := BuildSnapshot(sess.eng)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// handleSkip deliberately skips the session lock: the whole point is to
// reach an engine that is mid-AI-turn under the lock.
func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.eng.RequestSkip()
	writeJSON(w, http.StatusOK, map[string]string{"status": "skip requested"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	sess.eng.Reset()
	snap := BuildSnapshot(sess.eng)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// intentMessage is one client-to-server message on the WebSocket.
type intentMessage struct {
	Type       string `json:"type"` // set_difficulty, select, attack, end_turn, skip, reset
	Difficulty string `json:"difficulty,omitempty"`
	Card       *int   `json:"card,omitempty"`
	Asset      *int   `json:"asset,omitempty"`
}

// handleWebSocket streams a snapshot after every intent. The connection
// drives one session; skip intents are applied without the session lock.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.lookup(w, r)
	if sess == nil {
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // same-host browser UI
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	// Initial snapshot on connect.
	sess.mu.Lock()
	snap := BuildSnapshot(sess.eng)
	sess.mu.Unlock()
	if err := writeWS(ctx, conn, snap); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var intent intentMessage
		if err := json.Unmarshal(data, &intent); err != nil {
			s.logger.Warn("bad intent", zap.Error(err))
			continue
		}

		if intent.Type == "skip" {
			sess.eng.RequestSkip()
			continue
		}

		sess.mu.Lock()
		switch intent.Type {
		case "set_difficulty":
			sess.eng.SetDifficulty(ctx, game.ParseDifficulty(intent.Difficulty))
		case "select":
			if intent.Card != nil {
				sess.eng.SelectCard(*intent.Card)
			}
			if intent.Asset != nil {
				sess.eng.SelectAsset(*intent.Asset)
			}
		case "attack":
			sess.eng.Attack()
		case "end_turn":
			sess.eng.EndTurn(ctx)
		case "reset":
			sess.eng.Reset()
		}
		snap := BuildSnapshot(sess.eng)
		sess.mu.Unlock()

		if err := writeWS(ctx, conn, snap); err != nil {
			return
		}
	}
}

func writeWS(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
