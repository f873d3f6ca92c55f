package ui

import (
	"gridsnake/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyMap binds keys to input signals.
type KeyMap map[int32]manager.Signal

func DefaultKeyMap() KeyMap {
	return KeyMap{
		rl.KeyW:      manager.SignalNorth,
		rl.KeyUp:     manager.SignalNorth,
		rl.KeyD:      manager.SignalEast,
		rl.KeyRight:  manager.SignalEast,
		rl.KeyS:      manager.SignalSouth,
		rl.KeyDown:   manager.SignalSouth,
		rl.KeyA:      manager.SignalWest,
		rl.KeyLeft:   manager.SignalWest,
		rl.KeyP:      manager.SignalPause,
		rl.KeySpace:  manager.SignalPause,
		rl.KeyR:      manager.SignalReset,
		rl.KeyEscape: manager.SignalQuit,
		rl.KeyQ:      manager.SignalQuit,
	}
}

type Input struct {
	keys KeyMap
}

func NewInput(keys KeyMap) *Input {
	return &Input{keys: keys}
}

// Poll returns the signals for keys pressed since the last frame.
func (in *Input) Poll() []manager.Signal {
	var signals []manager.Signal
	for key, sig := range in.keys {
		if rl.IsKeyPressed(key) {
			signals = append(signals, sig)
		}
	}
	return signals
}
