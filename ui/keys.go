package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/game"
)

// maxKeysPerFrame bounds how much of raylib's key queue is drained per frame.
const maxKeysPerFrame = 16

// PollKeys drains the keys pressed since the last frame, in press order.
func PollKeys() []game.Key {
	var keys []game.Key
	for i := 0; i < maxKeysPerFrame; i++ {
		code := rl.GetKeyPressed()
		if code == 0 {
			break
		}
		keys = append(keys, TranslateKey(code))
	}
	return keys
}

// TranslateKey maps a raylib key code to a game key.
func TranslateKey(code int32) game.Key {
	switch code {
	case rl.KeyUp:
		return game.KeyUp
	case rl.KeyDown:
		return game.KeyDown
	case rl.KeyLeft:
		return game.KeyLeft
	case rl.KeyRight:
		return game.KeyRight
	case rl.KeyEnter, rl.KeyKpEnter, rl.KeyR:
		return game.KeyRestart
	}
	return game.KeyOther
}
