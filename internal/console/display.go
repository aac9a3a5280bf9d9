package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// width of one rendered board, used to center the titles
const boardWidth = 40

const (
	MsgWelcome   = "-------> WELCOME TO BATTLESHIP <-------\nAdmiral, please type \"go\" to commence the game."
	MsgAwaitGo   = "The fleet awaits your command. Type \"go\" to commence the game."
	MsgObjective = "***OBJECTIVE***: You must sink the enemy fleet using skill and some guessing. Good luck, admiral!"
	MsgAskShot   = "Admiral, input a row and a column to fire torpedoes towards enemy vessels."
	MsgInvalid   = "Invalid coordinate, admiral. Input another set of row and column coordinates."
	MsgVictory   = "You commanded well, admiral. Victory is yours!"
	MsgDefeat    = "You can't win 'em all. Rendezvous back to base; let's win the next bout."
)

// Display draws the game as text. It implements mb.Display.
type Display struct {
	w io.Writer
}

var _ mb.Display = (*Display)(nil)

func NewDisplay(w io.Writer) *Display {
	return &Display{w: w}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func writeHeader(sb *strings.Builder) {
	for col := 1; col <= mb.GridSize; col++ {
		if col > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%2d", col)
	}
}

func writeRow(sb *strings.Builder, b *mb.Board, row int) {
	fmt.Fprintf(sb, "%2d\t", row+1)
	for col := 0; col < mb.GridSize; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%2c", b[row][col].Glyph())
	}
}

// FormatBoard renders a single board with row and column labels.
func FormatBoard(b mb.Board) string {
	var sb strings.Builder
	sb.WriteByte('\t')
	writeHeader(&sb)
	sb.WriteByte('\n')

	for row := 0; row < mb.GridSize; row++ {
		writeRow(&sb, &b, row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatBoards renders the human's shots next to their own fleet.
func FormatBoards(shots, goal mb.Board) string {
	var sb strings.Builder
	sb.WriteString(center("Your shots:", boardWidth))
	sb.WriteString(center("Your fleet:", boardWidth))
	sb.WriteString("\n\t")
	writeHeader(&sb)
	sb.WriteString("\t\t")
	writeHeader(&sb)
	sb.WriteByte('\n')

	for row := 0; row < mb.GridSize; row++ {
		writeRow(&sb, &shots, row)
		sb.WriteString("  |  ")
		writeRow(&sb, &goal, row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Display) RenderBoards(shots, goal mb.Board) error {
	_, err := io.WriteString(d.w, FormatBoards(shots, goal))
	return err
}

func (d *Display) AnnounceSunk(defender mb.Role, kind mb.ShipKind) error {
	owner := "The enemy"
	if defender == mb.RoleHuman {
		owner = "Your"
	}
	_, err := fmt.Fprintf(d.w, "%s %s has been destroyed.\n", owner, kind.Name())
	return err
}

func (d *Display) InvalidCoordinate(_ error) error {
	_, err := fmt.Fprintln(d.w, MsgInvalid)
	return err
}

func (d *Display) RenderWinner(winner mb.Role, board mb.Board) error {
	msg := MsgDefeat
	if winner == mb.RoleHuman {
		msg = MsgVictory
	}
	_, err := fmt.Fprintf(d.w, "%s\n%s", msg, FormatBoard(board))
	return err
}
