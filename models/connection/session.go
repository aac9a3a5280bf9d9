package connection

import (
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
	closeFrameTimeout       = time.Second
)

// Session is one websocket client playing one game at a time. All
// reads and writes happen on the goroutine that serves the session.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time
	backOff   func(retries uint8) time.Duration
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
		backOff: func(retries uint8) time.Duration {
			return time.Duration(retries*backOffFactor) * time.Second
		},
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) Close() error {
	return s.conn.Close()
}

// CloseGoingAway tells the client the server is leaving before the
// connection is closed. It is safe to call while the session goroutine
// is reading or writing.
func (s *Session) CloseGoingAway(reason string) error {
	frame := websocket.FormatCloseMessage(websocket.CloseGoingAway, reason)
	if err := s.conn.WriteControl(websocket.CloseMessage, frame, time.Now().Add(closeFrameTimeout)); err != nil {
		slog.Debug("failed to send close frame", "session", s.id, "error", err)
	}
	return s.conn.Close()
}

// onConnErr decides whether a failed read or write is worth another
// try or the session has to end.
func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		slog.Warn("timeout error", "session", s.id, "error", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		slog.Warn("high server load/traffic error", "session", s.id, "error", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
		slog.Info("connection closed by client", "session", s.id)
		return ConnLoopBreak
	}

	if websocket.IsUnexpectedCloseError(err) {
		slog.Warn("unexpected close", "session", s.id, "error", err)
		return ConnLoopBreak
	}

	slog.Warn("unexpected connection error", "session", s.id, "error", err)
	return ConnLoopBreak
}

// WriteJSON sends msg, retrying with a linear back off while the
// error looks temporary.
func (s *Session) WriteJSON(msg interface{}) error {
	var retries uint8

	for {
		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		if s.onConnErr(err) != ConnLoopRetry || retries >= maxWriteWsRetries {
			return NewConnErr(ConnLoopBreak).AddDesc("writing to session failed: " + err.Error())
		}

		retries++
		slog.Info("retrying write", "session", s.id, "retry", retries)
		time.Sleep(s.backOff(retries))
	}
}

// ReadMessage returns the next frame. A failed read is permanent for
// a gorilla connection, so there is nothing to retry here.
func (s *Session) ReadMessage() ([]byte, error) {
	_, payload, err := s.conn.ReadMessage()
	if err != nil {
		s.onConnErr(err)
		return nil, NewConnErr(ConnLoopBreak).AddDesc("reading from session failed: " + err.Error())
	}
	return payload, nil
}
