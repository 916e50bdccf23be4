package web_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dmolchanov/magequest/internal/game/random"
	"github.com/dmolchanov/magequest/internal/game/store"
	"github.com/dmolchanov/magequest/internal/storage/memory"
	"github.com/dmolchanov/magequest/internal/web"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	game := store.New(zap.NewNop(), memory.New().Stores(), "slot1",
		store.WithRandom(random.NewSequenceSource([]int{0}, []float64{0.99})),
		store.WithClock(func() time.Time { return day }))
	return web.NewServer(game, zap.NewNop()).Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

type commandResponse struct {
	Applied bool            `json:"applied"`
	Reason  string          `json:"reason"`
	State   json.RawMessage `json:"state"`
}

func startGame(t *testing.T, h http.Handler) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/game/new", map[string]any{
		"name": "Вера", "class": "mage", "skinTone": "light", "hairColor": "brown",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, h, http.MethodPost, "/api/diagnostic", map[string]any{
		"mathLevel": 1, "rusLevel": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewGame_ReturnsDiagnosticState(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/game/new", map[string]any{
		"name": "Вера", "class": "mage", "skinTone": "light", "hairColor": "brown",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Applied bool `json:"applied"`
		State   struct {
			GameState string `json:"gameState"`
			Player    struct {
				Name  string `json:"name"`
				MaxHP int    `json:"maxHp"`
			} `json:"player"`
		} `json:"state"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Applied)
	assert.Equal(t, "DIAGNOSTIC", resp.State.GameState)
	assert.Equal(t, "Вера", resp.State.Player.Name)
	assert.Equal(t, 80, resp.State.Player.MaxHP)
}

func TestNewGame_UnknownClassIgnored(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/game/new", map[string]any{
		"name": "Х", "class": "bard",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp commandResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Applied)
	assert.NotEmpty(t, resp.Reason)
}

func TestNewGame_MalformedBody(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/game/new", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBattleFlow_TriggerAnswerVictory(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/battle/trigger", map[string]any{
		"enemyId": "e1", "enemyType": "slime", "subject": "math", "difficulty": 1, "zone": "math",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var trig struct {
		Applied bool `json:"applied"`
		State   struct {
			GameState string `json:"gameState"`
			Battle    struct {
				Question struct {
					Text          string `json:"text"`
					CorrectAnswer string `json:"correctAnswer"`
				} `json:"currentQuestion"`
			} `json:"battleContext"`
		} `json:"state"`
	}
	decodeBody(t, rec, &trig)
	require.True(t, trig.Applied)
	assert.Equal(t, "BATTLE", trig.State.GameState)
	require.NotEmpty(t, trig.State.Battle.Question.Text)

	rec = doJSON(t, h, http.MethodPost, "/api/battle/answer", map[string]any{
		"answer": trig.State.Battle.Question.CorrectAnswer,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var ans struct {
		Applied bool `json:"applied"`
		Result  struct {
			Outcome string `json:"outcome"`
			XP      int    `json:"xp"`
			Gold    int    `json:"gold"`
		} `json:"result"`
		State struct {
			GameState string `json:"gameState"`
		} `json:"state"`
	}
	decodeBody(t, rec, &ans)
	assert.True(t, ans.Applied)
	assert.Equal(t, "victory", ans.Result.Outcome)
	assert.Equal(t, 24, ans.Result.XP)
	assert.Equal(t, 10, ans.Result.Gold)
	assert.Equal(t, "PLAYING", ans.State.GameState)
}

func TestBattleFlow_WrongAnswerRetries(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/battle/trigger", map[string]any{
		"enemyId": "e1", "enemyType": "slime", "subject": "math", "difficulty": 1, "zone": "math",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/battle/answer", map[string]any{"answer": "неверно"})
	var ans struct {
		Result struct {
			Outcome      string `json:"outcome"`
			AttemptsLeft int    `json:"attemptsLeft"`
		} `json:"result"`
	}
	decodeBody(t, rec, &ans)
	assert.Equal(t, "retry", ans.Result.Outcome)
	assert.Equal(t, 2, ans.Result.AttemptsLeft)
}

func TestBattle_AnswerWithoutBattleIgnored(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/battle/answer", map[string]any{"answer": "7"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp commandResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Applied)
}

func TestSkill_UseFireball(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	doJSON(t, h, http.MethodPost, "/api/battle/trigger", map[string]any{
		"enemyId": "e1", "enemyType": "slime", "subject": "math", "difficulty": 1, "zone": "math",
	})
	rec := doJSON(t, h, http.MethodPost, "/api/battle/skill", map[string]any{"skillId": "fireball"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp commandResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Applied)

	rec = doJSON(t, h, http.MethodPost, "/api/battle/skill", map[string]any{"skillId": "fireball"})
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Applied, "one skill per battle")
}

func TestQuests_AcceptViaAPI(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/quests/accept", map[string]any{"questId": "q_math_1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Applied bool `json:"applied"`
		State   struct {
			Quests []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"quests"`
		} `json:"state"`
	}
	decodeBody(t, rec, &resp)
	require.True(t, resp.Applied)
	for _, q := range resp.State.Quests {
		if q.ID == "q_math_1" {
			assert.Equal(t, "active", q.Status)
		}
	}
}

func TestShop_ListAndBuy(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/shop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listings []struct {
		ID        string `json:"id"`
		Price     int    `json:"price"`
		Remaining int    `json:"remaining"`
	}
	decodeBody(t, rec, &listings)
	require.NotEmpty(t, listings)
	assert.Equal(t, "health_potion", listings[0].ID)
	assert.Equal(t, 15, listings[0].Price)
	assert.Equal(t, -1, listings[0].Remaining)

	// No gold yet: the purchase is rejected, not an error.
	rec = doJSON(t, h, http.MethodPost, "/api/shop/buy", map[string]any{"itemId": "health_potion"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp commandResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Applied)
}

func TestLeaderboard_EmptyInitially(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []json.RawMessage
	decodeBody(t, rec, &entries)
	assert.Empty(t, entries)
}

func TestDaily_InitAndState(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/daily/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board struct {
		Date   string            `json:"date"`
		Quests []json.RawMessage `json:"quests"`
	}
	decodeBody(t, rec, &board)
	assert.Equal(t, "2026-03-14", board.Date)
	assert.Len(t, board.Quests, 3)

	rec = doJSON(t, h, http.MethodPost, "/api/daily/claim", nil)
	var resp commandResponse
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Applied, "nothing completed yet")
}

func TestQuestions_CRUD(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/questions", map[string]any{
		"subject": "math", "text": "2+2?", "answer": "4", "hint": "", "level": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, h, http.MethodGet, "/api/questions", nil)
	var listed []struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/questions/%s", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/questions/cq_missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuestions_InvalidRejected(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/questions", map[string]any{
		"subject": "chemistry", "text": "x", "answer": "y", "level": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadGame_EmptySlotReportsNotFound(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/game/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Found bool `json:"found"`
	}
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Found)
}

func TestSetState_InvalidTargetIgnored(t *testing.T) {
	h := newTestServer(t)
	startGame(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/game/state", map[string]any{"state": "SHOP"})
	var resp commandResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Applied)

	rec = doJSON(t, h, http.MethodPost, "/api/game/state", map[string]any{"state": "BATTLE"})
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Applied)
}
