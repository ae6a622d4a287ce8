// Package ui draws the board and HUD with raylib and translates raylib
// keyboard state into game keys.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	Background  rl.Color
	Board       rl.Color
	GridLine    rl.Color
	SnakeHead   rl.Color
	SnakeBody   rl.Color
	Food        rl.Color
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Banner      rl.Color

	Padding      int32
	FontSize     int32
	BigFontSize  int32
	ButtonWidth  int32
	ButtonHeight int32
	ShowGrid     bool
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:   rl.Color{R: 15, G: 15, B: 20, A: 255},
		Board:        rl.Color{R: 24, G: 26, B: 32, A: 255},
		GridLine:     rl.Color{R: 34, G: 36, B: 44, A: 255},
		SnakeHead:    rl.Color{R: 100, G: 255, B: 150, A: 255},
		SnakeBody:    rl.Color{R: 70, G: 200, B: 120, A: 255},
		Food:         rl.Color{R: 255, G: 80, B: 80, A: 255},
		PanelBg:      rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:  rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:   rl.LightGray,
		ValueColor:   rl.White,
		Banner:       rl.Yellow,
		Padding:      10,
		FontSize:     20,
		BigFontSize:  32,
		ButtonWidth:  110,
		ButtonHeight: 32,
		ShowGrid:     true,
	}
}
