package kiosk

import (
	"github.com/moonwhale/setup/pkg/kiosk/internal"
	"github.com/moonwhale/setup/pkg/kiosk/layout"
	"github.com/moonwhale/setup/pkg/kiosk/menu"
)

func (a *App) controllerAttached() bool {
	return a.controllers.Attached() > 0 || a.remote.Connected()
}

func (a *App) renderFooter() {
	renderer := a.window.Renderer

	internal.FillRect(renderer, layout.Footer(a.screen), a.theme.BandColor)

	hint := menu.FooterHint(a.controllerAttached())
	w, _ := internal.TextSize(a.fonts.Small, hint)
	internal.DrawText(renderer, a.fonts.Small, hint, layout.FooterTextOrigin(a.screen, w), a.theme.TextColor)
}
