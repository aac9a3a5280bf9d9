package connection

import (
	"context"
	"encoding/base64"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	CountSessions() int
	CleanupPeriodically(ctx context.Context)
	CloseAllSessions(reason string)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

func NewBattleshipSessionManager(cleanupInterval time.Duration) *BattleshipSessionManager {
	return &BattleshipSessionManager{
		sessions:        make(map[string]*Session, 10),
		cleanupInterval: cleanupInterval,
	}
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) CountSessions() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// CleanupPeriodically closes sessions older than the cleanup interval
// so no connection is left dangling. Closing the connection makes the
// goroutine serving it return and terminate the session.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bsm.closeStaleSessions()
		}
	}
}

// CloseAllSessions sends every live client a going away frame and
// closes its connection. The goroutines serving them terminate the
// sessions on their own.
func (bsm *BattleshipSessionManager) CloseAllSessions(reason string) {
	bsm.mu.RLock()
	sessions := make([]*Session, 0, len(bsm.sessions))
	for _, session := range bsm.sessions {
		sessions = append(sessions, session)
	}
	bsm.mu.RUnlock()

	for _, session := range sessions {
		slog.Info("closing session", "session", session.id, "reason", reason)
		_ = session.CloseGoingAway(reason)
	}
}

func (bsm *BattleshipSessionManager) closeStaleSessions() {
	bsm.mu.RLock()
	stale := make([]*Session, 0)
	for _, session := range bsm.sessions {
		if time.Since(session.createdAt) > bsm.cleanupInterval {
			stale = append(stale, session)
		}
	}
	bsm.mu.RUnlock()

	for _, session := range stale {
		slog.Info("closing stale session", "session", session.id)
		_ = session.CloseGoingAway("session expired")
	}
}
