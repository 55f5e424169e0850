package kiosk

import (
	"fmt"

	"github.com/moonwhale/setup/pkg/kiosk/i18n"
	"github.com/moonwhale/setup/pkg/kiosk/internal"
	"github.com/moonwhale/setup/pkg/kiosk/layout"
)

// render draws one full frame from the current session state and presents
// it. It reads state only.
func (a *App) render() error {
	renderer := a.window.Renderer
	bg := a.theme.BackgroundColor

	if err := renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return fmt.Errorf("set background color: %w", err)
	}
	if err := renderer.Clear(); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}

	a.renderHeader()
	a.renderMenu()
	a.renderFooter()

	if a.session.Overlay.Shown() {
		a.renderDialog()
	}

	renderer.Present()
	return nil
}

func (a *App) renderHeader() {
	renderer := a.window.Renderer

	internal.FillRect(renderer, layout.Header(a.screen), a.theme.BandColor)

	if a.logo != nil {
		renderer.Copy(a.logo, nil, internal.ToSDLRect(layout.Logo()))
	}

	internal.DrawText(renderer, a.fonts.Large, i18n.GetString(i18n.AppTitle), layout.TitleOrigin(), a.theme.TextColor)
}

func (a *App) renderMenu() {
	renderer := a.window.Renderer
	selected := a.session.Menu.Selected()

	for i, entry := range a.session.Menu.Entries() {
		row := layout.Row(a.screen, i)

		fill, text := a.theme.RowColor, a.theme.TextColor
		if i == selected {
			fill, text = a.theme.SelectedRowColor, a.theme.SelectedTextColor
		}

		internal.FillRect(renderer, row, fill)
		internal.DrawTextCentered(renderer, a.fonts.Medium, entry.Label, row, text)
	}
}
