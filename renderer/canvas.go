// Package renderer draws the animation with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas is an accumulation surface: draws persist across frames and are only
// erased by the per-frame fade rectangle, which is what produces the motion
// trail aesthetic.
type Canvas struct {
	target rl.RenderTexture2D
	width  int32
	height int32
}

// NewCanvas creates the accumulation canvas and seeds it with an opaque
// background fill, so the first frames fade from that color instead of black.
func NewCanvas(width, height int32, background rl.Color) *Canvas {
	c := &Canvas{
		target: rl.LoadRenderTexture(width, height),
		width:  width,
		height: height,
	}

	rl.BeginTextureMode(c.target)
	rl.ClearBackground(background)
	rl.EndTextureMode()

	return c
}

// Begin redirects subsequent draws onto the canvas. Nothing is cleared.
func (c *Canvas) Begin() {
	rl.BeginTextureMode(c.target)
}

// End stops drawing onto the canvas.
func (c *Canvas) End() {
	rl.EndTextureMode()
}

// Fade paints a translucent rectangle over the whole canvas. Previous frames
// show through and decay a little more each frame.
func (c *Canvas) Fade(color rl.Color) {
	rl.DrawRectangle(0, 0, c.width, c.height, color)
}

// Present draws the accumulated canvas to the screen.
// Render textures are stored bottom-up (OpenGL convention), so the source
// rect uses a negative height to flip.
func (c *Canvas) Present() {
	srcRect := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(c.width),
		Height: -float32(c.height),
	}
	dstRect := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(c.width),
		Height: float32(c.height),
	}
	rl.DrawTexturePro(c.target.Texture, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
}

// Texture exposes the underlying texture for callers that compose the canvas
// themselves, e.g. into a sub-rectangle of a larger window. The texture is
// stored bottom-up; use a negative source height when drawing it.
func (c *Canvas) Texture() rl.Texture2D {
	return c.target.Texture
}

// Unload releases the render texture.
func (c *Canvas) Unload() {
	rl.UnloadRenderTexture(c.target)
}
