package internal

import (
	"github.com/moonwhale/setup/pkg/kiosk/layout"
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	BackgroundColor   sdl.Color // Screen background
	BandColor         sdl.Color // Header and footer bands, dialog panel
	RowColor          sdl.Color // Unselected menu row
	SelectedRowColor  sdl.Color // Selected menu row, dialog button
	TextColor         sdl.Color // Text on dark surfaces
	SelectedTextColor sdl.Color // Text on light surfaces
	BorderColor       sdl.Color // Dialog border
	ScrimColor        sdl.Color // Dims the menu behind a dialog
}

func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:   HexToColor(0x001E3C),
		BandColor:         HexToColor(0x0078D7),
		RowColor:          HexToColor(0x0078D7),
		SelectedRowColor:  HexToColor(0x00AEDB),
		TextColor:         HexToColor(0xFFFFFF),
		SelectedTextColor: HexToColor(0x000000),
		BorderColor:       HexToColor(0xFFFFFF),
		ScrimColor:        sdl.Color{R: 0, G: 0, B: 0, A: layout.ScrimAlpha},
	}
}
