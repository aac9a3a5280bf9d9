package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// a full board update is a few hundred bytes
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RequestProcessor serves one game against the computer per websocket
// connection.
type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
	newRng         func() *rand.Rand
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	analytics *sqlc.AnalyticsManager,
	newRng func() *rand.Rand,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		analytics:      analytics,
		newRng:         newRng,
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	session := rp.sessionManager.GenerateNewSession(conn)
	slog.Info("a new connection established", "session", session.Id(), "remote_addr", conn.RemoteAddr().String())

	rp.processSession(r.Context(), session)
}

func (rp RequestProcessor) processSession(ctx context.Context, session *mc.Session) {
	defer func() {
		_ = session.Close()
		rp.sessionManager.TerminateSession(session.Id())
		slog.Info("session terminated", "session", session.Id())
	}()

	resp := mc.NewPayloadMessage(mc.CodeSessionID, mc.RespSessionId{SessionID: session.Id()})
	if err := session.WriteJSON(resp); err != nil {
		return
	}

	game, err := rp.gameManager.CreateGame()
	if err != nil {
		slog.Error("failed to create game", "session", session.Id(), "error", err)
		_ = session.WriteJSON(mc.NewErrorMessage(mc.CodeStartGame, err.Error(), "could not start a game"))
		return
	}
	defer rp.gameManager.TerminateGame(game.Uuid())

	if err := rp.analytics.IncrementGamesCreatedCount(ctx); err != nil {
		// analytics never ends a game
		slog.Warn("failed to record created game", "error", err)
	}

	if err := session.WriteJSON(mc.NewPayloadMessage(mc.CodeStartGame, mc.RespStartGame{GameUuid: game.Uuid()})); err != nil {
		return
	}

	winner, err := mb.Play(
		ctx,
		game,
		mc.NewWsInput(session),
		mb.NewRandomPolicy(rp.newRng()),
		mc.NewWsDisplay(session),
	)
	if !game.IsOver() {
		slog.Info("game abandoned", "game", game.Uuid(), "turn", game.Turn(), "error", err)
		return
	}
	if err != nil {
		slog.Warn("game over but client could not be told", "game", game.Uuid(), "error", err)
	}

	if err := rp.analytics.IncrementGamesWonCount(ctx, winner == mb.RoleHuman); err != nil {
		slog.Warn("failed to record game result", "error", err)
	}
	slog.Info("game finished", "game", game.Uuid(), "winner", winner.String(), "turns", game.Turn()-1)
}

type RespStats struct {
	GamesCreated       int64 `json:"games_created"`
	GamesWonByPlayer   int64 `json:"games_won_by_player"`
	GamesWonByOpponent int64 `json:"games_won_by_opponent"`
	ActiveGames        int   `json:"active_games"`
	ActiveSessions     int   `json:"active_sessions"`
}

func (rp RequestProcessor) HandleStats(w http.ResponseWriter, r *http.Request) {
	created, err := rp.analytics.GetGamesCreatedCount(r.Context())
	if err != nil {
		slog.Error("failed to fetch created games", "error", err)
		http.Error(w, "could not fetch stats", http.StatusInternalServerError)
		return
	}

	wins, err := rp.analytics.GetWinCounts(r.Context())
	if err != nil {
		slog.Error("failed to fetch win counts", "error", err)
		http.Error(w, "could not fetch stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(RespStats{
		GamesCreated:       created,
		GamesWonByPlayer:   wins.Player,
		GamesWonByOpponent: wins.Opponent,
		ActiveGames:        rp.gameManager.CountGames(),
		ActiveSessions:     rp.sessionManager.CountSessions(),
	})
}

// NewMux wires the routes of the game server.
func NewMux(rp RequestProcessor) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)
	mux.HandleFunc("GET /stats", rp.HandleStats)
	return mux
}
