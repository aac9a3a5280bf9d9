package connection

import (
	"context"
	"encoding/json"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// signalProbe tells an absent "code" field apart from code 0.
type signalProbe struct {
	Code *uint8 `json:"code"`
}

// WsInput reads the human's shots from a session.
type WsInput struct {
	session *Session
}

var _ mb.CoordinateSource = (*WsInput)(nil)

func NewWsInput(session *Session) *WsInput {
	return &WsInput{session: session}
}

// NextCoordinates answers every frame that is not a well formed attack
// with an error message and keeps reading.
func (in *WsInput) NextCoordinates(ctx context.Context) (mb.Coordinates, error) {
	for {
		if err := ctx.Err(); err != nil {
			return mb.Coordinates{}, err
		}

		payload, err := in.session.ReadMessage()
		if err != nil {
			return mb.Coordinates{}, err
		}

		var probe signalProbe
		if err := json.Unmarshal(payload, &probe); err != nil || probe.Code == nil {
			msg := NewErrorMessage(CodeSignalAbsent, "", "incoming req payload must contain 'code' field")
			if err := in.session.WriteJSON(msg); err != nil {
				return mb.Coordinates{}, err
			}
			continue
		}

		if *probe.Code != CodeAttack {
			msg := NewErrorMessage(CodeInvalidSignal, "", "invalid code in the incoming payload")
			if err := in.session.WriteJSON(msg); err != nil {
				return mb.Coordinates{}, err
			}
			continue
		}

		var req Message[ReqAttack]
		if err := json.Unmarshal(payload, &req); err != nil {
			msg := NewErrorMessage(CodeAttack, err.Error(), "row and col must be whole numbers")
			if err := in.session.WriteJSON(msg); err != nil {
				return mb.Coordinates{}, err
			}
			continue
		}

		return mb.FromUserInput(req.Payload.Row, req.Payload.Col), nil
	}
}

// WsDisplay sends the game state to a session as JSON messages.
type WsDisplay struct {
	session *Session
}

var _ mb.Display = (*WsDisplay)(nil)

func NewWsDisplay(session *Session) *WsDisplay {
	return &WsDisplay{session: session}
}

func (d *WsDisplay) RenderBoards(shots, goal mb.Board) error {
	return d.session.WriteJSON(NewPayloadMessage(CodeRenderBoards, RespBoards{
		ShotGrid: NewGridRows(shots),
		GoalGrid: NewGridRows(goal),
	}))
}

func (d *WsDisplay) AnnounceSunk(defender mb.Role, kind mb.ShipKind) error {
	return d.session.WriteJSON(NewPayloadMessage(CodeShipSunk, RespShipSunk{
		Defender: defender.String(),
		Ship:     kind.Name(),
	}))
}

func (d *WsDisplay) InvalidCoordinate(err error) error {
	return d.session.WriteJSON(NewErrorMessage(CodeInvalidCoordinate, err.Error(), "invalid coordinate, pick another row and col"))
}

func (d *WsDisplay) RenderWinner(winner mb.Role, board mb.Board) error {
	return d.session.WriteJSON(NewPayloadMessage(CodeEndGame, RespEndGame{
		Winner: winner.String(),
		Grid:   NewGridRows(board),
	}))
}
