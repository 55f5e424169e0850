package internal

import (
	"image"

	"github.com/moonwhale/setup/pkg/kiosk/layout"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func ToSDLRect(r image.Rectangle) *sdl.Rect {
	return &sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

func FillRect(renderer *sdl.Renderer, r image.Rectangle, color sdl.Color) error {
	if err := renderer.SetDrawColor(color.R, color.G, color.B, color.A); err != nil {
		return err
	}
	return renderer.FillRect(ToSDLRect(r))
}

// FillBlended fills r with a translucent color, blending over what is
// already drawn.
func FillBlended(renderer *sdl.Renderer, r image.Rectangle, color sdl.Color) {
	gfx.BoxColor(renderer, int32(r.Min.X), int32(r.Min.Y), int32(r.Max.X-1), int32(r.Max.Y-1), color)
}

// DrawBorder outlines r with a border width pixels thick, drawn inward.
func DrawBorder(renderer *sdl.Renderer, r image.Rectangle, width int, color sdl.Color) {
	for i := 0; i < width; i++ {
		gfx.RectangleColor(renderer,
			int32(r.Min.X+i), int32(r.Min.Y+i),
			int32(r.Max.X-1-i), int32(r.Max.Y-1-i),
			color)
	}
}

// TextSize measures text without rendering it.
func TextSize(font *ttf.Font, text string) (int, int) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		GetInternalLogger().Debug("Failed to measure text", "text", text, "error", err)
		return 0, 0
	}
	return w, h
}

// DrawText renders text with its top-left corner at p.
func DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, p image.Point, color sdl.Color) {
	if text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Debug("Failed to create text texture", "text", text, "error", err)
		return
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: int32(p.X), Y: int32(p.Y), W: surface.W, H: surface.H})
}

// DrawTextCentered renders text centred within r.
func DrawTextCentered(renderer *sdl.Renderer, font *ttf.Font, text string, r image.Rectangle, color sdl.Color) {
	w, h := TextSize(font, text)
	DrawText(renderer, font, text, layout.Center(r, w, h), color)
}

func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-radius, rect.Y+rect.H, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius, rect.Y+rect.H-radius, color)
	gfx.BoxColor(renderer, rect.X+rect.W-radius, rect.Y+radius, rect.X+rect.W, rect.Y+rect.H-radius, color)

	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	if radius > 2 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}
