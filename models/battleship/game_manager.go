package battleship

import (
	"math/rand"
	"sync"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type GameManager interface {
	CreateGame() (*Game, error)
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	CountGames() int
}

// BattleshipGameManager keeps the games of all live sessions. Each
// game is driven by a single session goroutine; only the map itself
// is shared.
type BattleshipGameManager struct {
	games  map[string]*Game
	newRng func() *rand.Rand
	mu     sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(newRng func() *rand.Rand) *BattleshipGameManager {
	return &BattleshipGameManager{
		games:  make(map[string]*Game, 10),
		newRng: newRng,
	}
}

func (bgm *BattleshipGameManager) CreateGame() (*Game, error) {
	game, err := NewGame(bgm.newRng())
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[game.Uuid()] = game
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotFound(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) CountGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
