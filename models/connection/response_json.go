package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// GridRows is a board sent as one string of glyphs per row.
type GridRows []string

func NewGridRows(b mb.Board) GridRows {
	rows := make(GridRows, mb.GridSize)
	for row := range b {
		glyphs := make([]byte, mb.GridSize)
		for col, cell := range b[row] {
			glyphs[col] = cell.Glyph()
		}
		rows[row] = string(glyphs)
	}
	return rows
}

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespBoards struct {
	ShotGrid GridRows `json:"shot_grid"`
	GoalGrid GridRows `json:"goal_grid"`
}

type RespStartGame struct {
	GameUuid string `json:"game_uuid"`
}

type RespShipSunk struct {
	Defender string `json:"defender"`
	Ship     string `json:"ship"`
}

type RespEndGame struct {
	Winner string   `json:"winner"`
	Grid   GridRows `json:"grid"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
