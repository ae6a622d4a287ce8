package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabelValue draws "label: value" and returns the x position after it.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	text := label + ": "
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	x += rl.MeasureText(text, r.Theme.FontSize)
	rl.DrawText(value, x, y, r.Theme.FontSize, r.Theme.ValueColor)
	return x + rl.MeasureText(value, r.Theme.FontSize)
}

// DrawCenteredText draws text horizontally centered in [x, x+width).
func (r *Renderer) DrawCenteredText(text string, x, y, width, fontSize int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, x+(width-w)/2, y, fontSize, color)
}
