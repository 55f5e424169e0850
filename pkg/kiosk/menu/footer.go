package menu

import "github.com/moonwhale/setup/pkg/kiosk/i18n"

// FooterHint returns the control hint shown under the menu. Controller
// wording is used while any gamepad or remote is attached.
func FooterHint(controllerAttached bool) string {
	if controllerAttached {
		return i18n.GetString(i18n.FooterControllerHint)
	}
	return i18n.GetString(i18n.FooterKeyboardHint)
}
