package manager

import (
	"gridsnake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Screen is the presentation state the driver is in.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenRunning
	ScreenPaused
	ScreenOver
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenRunning:
		return "running"
	case ScreenPaused:
		return "paused"
	case ScreenOver:
		return "over"
	default:
		return "unknown"
	}
}

// Signal is one input event already decoded from the device.
type Signal int

const (
	SignalNone Signal = iota
	SignalNorth
	SignalEast
	SignalSouth
	SignalWest
	SignalPause
	SignalReset
	SignalQuit
)

// Direction maps a directional signal to a heading.
func (s Signal) Direction() (types.Direction, bool) {
	switch s {
	case SignalNorth:
		return types.North, true
	case SignalEast:
		return types.East, true
	case SignalSouth:
		return types.South, true
	case SignalWest:
		return types.West, true
	}
	return types.NoDirection, false
}

// Board is the part of the game board the state manager drives.
type Board interface {
	UpdateSnakeDir(dir types.Direction)
	Update() bool
	Reset() bool
	Score() int
}

// StateManager decides which screen is shown and when the board ticks.
// Scores live in memory for the length of the session only.
type StateManager struct {
	id        string
	board     Board
	screen    Screen
	quit      bool
	lastScore int
	highScore int
	games     int
	log       zerolog.Logger
}

func NewStateManager(board Board, logger zerolog.Logger) *StateManager {
	id := uuid.New().String()
	return &StateManager{
		id:     id,
		board:  board,
		screen: ScreenTitle,
		log:    logger.With().Str("session", id).Logger(),
	}
}

func (sm *StateManager) ID() string {
	return sm.id
}

func (sm *StateManager) Screen() Screen {
	return sm.screen
}

func (sm *StateManager) Quit() bool {
	return sm.quit
}

// LastScore is the score of the most recently finished game.
func (sm *StateManager) LastScore() int {
	return sm.lastScore
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GamesPlayed() int {
	return sm.games
}

// Handle applies one input signal.
func (sm *StateManager) Handle(sig Signal) {
	switch sig {
	case SignalQuit:
		sm.quit = true
		sm.log.Info().Msg("quit requested")
		return
	case SignalReset:
		sm.board.Reset()
		sm.setScreen(ScreenTitle)
		return
	case SignalPause:
		switch sm.screen {
		case ScreenRunning:
			sm.setScreen(ScreenPaused)
		case ScreenPaused:
			sm.setScreen(ScreenRunning)
		}
		return
	}

	dir, ok := sig.Direction()
	if !ok {
		return
	}
	switch sm.screen {
	case ScreenTitle, ScreenPaused:
		sm.board.UpdateSnakeDir(dir)
		sm.setScreen(ScreenRunning)
	case ScreenRunning:
		sm.board.UpdateSnakeDir(dir)
	}
}

// Tick advances the board once if the game is running.
func (sm *StateManager) Tick() {
	if sm.screen != ScreenRunning {
		return
	}
	if sm.board.Update() {
		return
	}

	sm.games++
	sm.lastScore = sm.board.Score()
	if sm.lastScore > sm.highScore {
		sm.highScore = sm.lastScore
	}
	sm.log.Info().
		Int("score", sm.lastScore).
		Int("high_score", sm.highScore).
		Int("games", sm.games).
		Msg("game over")
	sm.setScreen(ScreenOver)
}

func (sm *StateManager) setScreen(s Screen) {
	if s == sm.screen {
		return
	}
	sm.log.Debug().Stringer("from", sm.screen).Stringer("to", s).Msg("screen change")
	sm.screen = s
}
