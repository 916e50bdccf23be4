// Package web exposes the game over a JSON HTTP API. Handlers translate
// requests into store operations; invalid commands come back as
// {"applied": false, "reason": ...} with status 200, since a rejected
// game command is an answer, not a failure.
package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/store"
)

// Server wires the HTTP surface to the game store.
type Server struct {
	Game *store.Store
	Log  *zap.Logger
}

// NewServer builds a Server.
func NewServer(game *store.Store, log *zap.Logger) *Server {
	return &Server{Game: game, Log: log}
}

// Routes returns the API handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/game/new", s.handleNewGame)
	mux.HandleFunc("POST /api/game/load", s.handleLoadGame)
	mux.HandleFunc("POST /api/game/clear", s.handleClearGame)
	mux.HandleFunc("POST /api/game/state", s.handleSetState)
	mux.HandleFunc("POST /api/diagnostic", s.handleDiagnostic)

	mux.HandleFunc("POST /api/battle/trigger", s.handleTriggerBattle)
	mux.HandleFunc("POST /api/battle/answer", s.handleAnswer)
	mux.HandleFunc("POST /api/battle/skill", s.handleSkill)
	mux.HandleFunc("POST /api/battle/forfeit", s.handleForfeit)
	mux.HandleFunc("POST /api/respawn", s.handleRespawn)

	mux.HandleFunc("POST /api/quests/accept", s.handleAcceptQuest)
	mux.HandleFunc("POST /api/quests/complete", s.handleCompleteQuest)

	mux.HandleFunc("POST /api/items/use", s.handleUseItem)
	mux.HandleFunc("GET /api/shop", s.handleShop)
	mux.HandleFunc("POST /api/shop/buy", s.handleBuy)

	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("POST /api/daily/init", s.handleDailyInit)
	mux.HandleFunc("POST /api/daily/claim", s.handleDailyClaim)

	mux.HandleFunc("GET /api/questions", s.handleListQuestions)
	mux.HandleFunc("POST /api/questions", s.handleAddQuestion)
	mux.HandleFunc("DELETE /api/questions/{id}", s.handleDeleteQuestion)

	return mux
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Warn("writing response failed", zap.Error(err))
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorBody{Error: msg})
}

// decode parses the JSON request body into dst.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
