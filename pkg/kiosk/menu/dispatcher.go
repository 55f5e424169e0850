package menu

import (
	"github.com/moonwhale/setup/pkg/kiosk/i18n"
	"github.com/moonwhale/setup/pkg/kiosk/overlay"
)

// Outcome is the effect of activating an entry: either a dialog to show or
// a request to terminate. Exactly one of the two is set.
type Outcome struct {
	Terminate bool
	Dialog    *overlay.Request
}

type Dispatcher struct {
	menu *Menu
}

func NewDispatcher(menu *Menu) *Dispatcher {
	return &Dispatcher{menu: menu}
}

// Activate resolves the entry at index. Every entry other than the terminal
// one maps to the same placeholder dialog, worded with the entry's feature.
func (d *Dispatcher) Activate(index int) (Outcome, error) {
	entry, err := d.menu.Entry(index)
	if err != nil {
		return Outcome{}, err
	}

	if entry.Action.IsTerminal() {
		return Outcome{Terminate: true}, nil
	}

	return Outcome{Dialog: ComingSoon(entry)}, nil
}

func ComingSoon(entry Entry) *overlay.Request {
	feature := entry.Feature
	if feature == "" {
		feature = entry.Label
	}
	return &overlay.Request{
		Title: i18n.GetString(i18n.DialogComingSoonTitle),
		Body:  i18n.GetStringWithData(i18n.DialogComingSoonBody, map[string]interface{}{"Feature": feature}),
	}
}
