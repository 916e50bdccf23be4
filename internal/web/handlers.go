package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/player"
	"github.com/dmolchanov/magequest/internal/game/quest"
	"github.com/dmolchanov/magequest/internal/game/question"
	"github.com/dmolchanov/magequest/internal/game/ruleset"
	"github.com/dmolchanov/magequest/internal/game/store"
)

// commandBody pairs a command result with the fresh state snapshot so
// the client never needs a follow-up fetch.
type commandBody struct {
	store.CommandResult
	State store.View `json:"state"`
}

// answerBody is commandBody plus the battle outcome.
type answerBody struct {
	store.CommandResult
	Result store.AnswerResult `json:"result"`
	State  store.View         `json:"state"`
}

func (s *Server) command(w http.ResponseWriter, cmd store.CommandResult) {
	s.writeJSON(w, http.StatusOK, commandBody{CommandResult: cmd, State: s.Game.Snapshot()})
}

func (s *Server) answer(w http.ResponseWriter, res store.AnswerResult, cmd store.CommandResult) {
	s.writeJSON(w, http.StatusOK, answerBody{CommandResult: cmd, Result: res, State: s.Game.Snapshot()})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Game.Snapshot())
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Class     string `json:"class"`
		SkinTone  string `json:"skinTone"`
		HairColor string `json:"hairColor"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	appearance := player.Appearance{
		Class:     ruleset.Class(req.Class),
		SkinTone:  player.SkinTone(req.SkinTone),
		HairColor: player.HairColor(req.HairColor),
	}
	s.command(w, s.Game.NewCharacter(r.Context(), req.Name, appearance))
}

func (s *Server) handleLoadGame(w http.ResponseWriter, r *http.Request) {
	ok, err := s.Game.LoadSave(r.Context())
	if err != nil {
		s.Log.Error("loading save failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "loading save failed")
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Found bool       `json:"found"`
		State store.View `json:"state"`
	}{Found: ok, State: s.Game.Snapshot()})
}

func (s *Server) handleClearGame(w http.ResponseWriter, r *http.Request) {
	if err := s.Game.ClearSave(r.Context()); err != nil {
		s.Log.Error("clearing save failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "clearing save failed")
		return
	}
	s.command(w, store.CommandResult{Applied: true})
}

func (s *Server) handleSetState(w http.ResponseWriter, r *http.Request) {
	var req struct {
		State string `json:"state"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.command(w, s.Game.SetState(store.GameState(req.State)))
}

func (s *Server) handleDiagnostic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MathLevel int `json:"mathLevel"`
		RusLevel  int `json:"rusLevel"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.command(w, s.Game.FinishDiagnostic(r.Context(), req.MathLevel, req.RusLevel))
}

func (s *Server) handleTriggerBattle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EnemyID    string `json:"enemyId"`
		EnemyType  string `json:"enemyType"`
		Subject    string `json:"subject"`
		Difficulty int    `json:"difficulty"`
		Zone       string `json:"zone"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	cmd := s.Game.TriggerBattle(r.Context(), req.EnemyID, req.EnemyType,
		question.Subject(req.Subject), req.Difficulty, quest.Zone(req.Zone))
	s.command(w, cmd)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer string `json:"answer"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	res, cmd := s.Game.SubmitAnswer(r.Context(), req.Answer)
	s.answer(w, res, cmd)
}

func (s *Server) handleSkill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SkillID string `json:"skillId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	res, cmd := s.Game.UseSkill(r.Context(), req.SkillID)
	s.answer(w, res, cmd)
}

func (s *Server) handleForfeit(w http.ResponseWriter, r *http.Request) {
	res, cmd := s.Game.Forfeit(r.Context())
	s.answer(w, res, cmd)
}

func (s *Server) handleRespawn(w http.ResponseWriter, r *http.Request) {
	s.command(w, s.Game.Respawn(r.Context()))
}

func (s *Server) handleAcceptQuest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestID string `json:"questId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.command(w, s.Game.AcceptQuest(r.Context(), req.QuestID))
}

func (s *Server) handleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestID string `json:"questId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.command(w, s.Game.CompleteQuest(r.Context(), req.QuestID))
}

func (s *Server) handleUseItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.command(w, s.Game.UseItem(r.Context(), req.ItemID))
}

func (s *Server) handleShop(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Game.Shop())
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.command(w, s.Game.Purchase(r.Context(), req.ItemID))
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.Game.Leaderboard(r.Context(), 0)
	if err != nil {
		s.Log.Error("reading leaderboard failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "reading leaderboard failed")
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleDailyInit(w http.ResponseWriter, r *http.Request) {
	board, err := s.Game.InitDailyQuests(r.Context())
	if err != nil {
		s.Log.Error("initializing daily quests failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "initializing daily quests failed")
		return
	}
	s.writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleDailyClaim(w http.ResponseWriter, r *http.Request) {
	s.command(w, s.Game.ClaimDailyBonus(r.Context()))
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	customs, err := s.Game.CustomQuestions(r.Context())
	if err != nil {
		s.Log.Error("listing custom questions failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "listing custom questions failed")
		return
	}
	s.writeJSON(w, http.StatusOK, customs)
}

func (s *Server) handleAddQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subject string `json:"subject"`
		Text    string `json:"text"`
		Answer  string `json:"answer"`
		Hint    string `json:"hint"`
		Level   int    `json:"level"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	c, err := s.Game.AddCustomQuestion(r.Context(),
		question.Subject(req.Subject), req.Text, req.Answer, req.Hint, req.Level)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := s.Game.DeleteCustomQuestion(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, http.StatusNotFound, "question not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
