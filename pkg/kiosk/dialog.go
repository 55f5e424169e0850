package kiosk

import (
	"github.com/moonwhale/setup/pkg/kiosk/i18n"
	"github.com/moonwhale/setup/pkg/kiosk/internal"
	"github.com/moonwhale/setup/pkg/kiosk/layout"
	"github.com/moonwhale/setup/pkg/kiosk/overlay"
)

const dialogButtonRadius = 8

// dialogCache keeps the wrapped body of the last request so measuring runs
// once per dialog instead of once per frame.
type dialogCache struct {
	request overlay.Request
	lines   []string
}

func (c *dialogCache) wrap(req overlay.Request, m layout.Measurer) []string {
	if c.lines == nil || c.request != req {
		c.request = req
		c.lines = layout.Wrap(req.Body, layout.DialogBodyWidth(), m)
	}
	return c.lines
}

func (a *App) renderDialog() {
	renderer := a.window.Renderer
	req := a.session.Overlay.Request()

	internal.FillBlended(renderer, a.screen.Bounds(), a.theme.ScrimColor)

	panel := layout.DialogPanel(a.screen)
	internal.FillRect(renderer, panel, a.theme.BandColor)
	internal.DrawBorder(renderer, panel, layout.DialogBorder, a.theme.BorderColor)

	titleW, _ := internal.TextSize(a.fonts.Medium, req.Title)
	internal.DrawText(renderer, a.fonts.Medium, req.Title, layout.DialogTitleOrigin(panel, titleW), a.theme.TextColor)

	for i, line := range a.dialog.wrap(req, internal.FontMeasurer{Font: a.fonts.Small}) {
		internal.DrawText(renderer, a.fonts.Small, line, layout.DialogBodyLine(panel, i), a.theme.TextColor)
	}

	button := layout.DialogButton(panel)
	internal.DrawRoundedRect(renderer, internal.ToSDLRect(button), dialogButtonRadius, a.theme.SelectedRowColor)
	internal.DrawTextCentered(renderer, a.fonts.Small, i18n.GetString(i18n.DialogDismiss), button, a.theme.SelectedTextColor)
}
