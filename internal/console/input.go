package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	gateWord      = "go"
	MsgNotANumber = "Rows and columns must be whole numbers, admiral. Try again."
)

// Input reads the human's answers line by line. Coordinates may be
// typed on one line or spread over several. It implements
// mb.CoordinateSource.
type Input struct {
	scanner *bufio.Scanner
	pending []string
	w       io.Writer
}

var _ mb.CoordinateSource = (*Input)(nil)

func NewInput(r io.Reader, w io.Writer) *Input {
	return &Input{scanner: bufio.NewScanner(r), w: w}
}

func (in *Input) say(msg string) error {
	_, err := fmt.Fprintln(in.w, msg)
	return err
}

func (in *Input) nextLine() (string, error) {
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return in.scanner.Text(), nil
}

func (in *Input) nextWord() (string, error) {
	for len(in.pending) == 0 {
		line, err := in.nextLine()
		if err != nil {
			return "", err
		}
		in.pending = strings.Fields(line)
	}

	word := in.pending[0]
	in.pending = in.pending[1:]
	return word, nil
}

func (in *Input) nextInt() (int, error) {
	word, err := in.nextWord()
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, cerr.ErrValueNotInt(word)
	}
	return n, nil
}

// NextCoordinates blocks until a row and a column have been read.
// Words left over from an earlier answer are discarded. On a word that
// is not an integer the rest of the line is dropped and the pair is
// asked for again.
func (in *Input) NextCoordinates(ctx context.Context) (mb.Coordinates, error) {
	in.pending = nil
	if err := in.say(MsgAskShot); err != nil {
		return mb.Coordinates{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return mb.Coordinates{}, err
		}

		row, err := in.nextInt()
		if err == nil {
			var col int
			col, err = in.nextInt()
			if err == nil {
				return mb.FromUserInput(row, col), nil
			}
		}

		if !errors.Is(err, cerr.ErrMalformedInput) {
			return mb.Coordinates{}, err
		}

		slog.Debug("malformed coordinate input", "error", err)
		in.pending = nil
		if err := in.say(MsgNotANumber); err != nil {
			return mb.Coordinates{}, err
		}
	}
}

// WaitForGo prints the welcome banner and blocks until the human
// types "go" in any letter case.
func (in *Input) WaitForGo() error {
	if err := in.say(MsgWelcome); err != nil {
		return err
	}

	fold := cases.Fold()
	for {
		line, err := in.nextLine()
		if err != nil {
			return err
		}

		if fold.String(strings.TrimSpace(line)) == gateWord {
			return in.say(MsgObjective)
		}
		if err := in.say(MsgAwaitGo); err != nil {
			return err
		}
	}
}
