package ui

import (
	"strconv"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD strip.
type HUDData struct {
	Score          int
	Round          int
	NotStarted     bool
	RestartVisible bool
	BoardSize      int32
	Height         int32
}

// HUD renders the score strip below the board and the restart control.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD and returns true when the restart button was clicked
// this frame. The button only exists while RestartVisible is set.
func (h *HUD) Draw(data HUDData) bool {
	r := h.renderer
	theme := r.Theme
	top := data.BoardSize

	r.DrawPanel(0, top, data.BoardSize, data.Height)

	textY := top + (data.Height-theme.FontSize)/2
	x := r.DrawLabelValue(theme.Padding, textY, "Score", strconv.Itoa(data.Score))
	r.DrawLabelValue(x+theme.Padding*2, textY, "Round", strconv.Itoa(data.Round))

	if data.NotStarted {
		r.DrawCenteredText("Press any key to start", 0, data.BoardSize/2-theme.FontSize/2,
			data.BoardSize, theme.FontSize, theme.Banner)
	}

	if !data.RestartVisible {
		return false
	}

	r.DrawCenteredText("Game Over", 0, data.BoardSize/2-theme.BigFontSize,
		data.BoardSize, theme.BigFontSize, theme.Banner)

	bounds := rl.Rectangle{
		X:      float32(data.BoardSize - theme.ButtonWidth - theme.Padding),
		Y:      float32(top + (data.Height-theme.ButtonHeight)/2),
		Width:  float32(theme.ButtonWidth),
		Height: float32(theme.ButtonHeight),
	}
	return gui.Button(bounds, "Restart")
}
