package menu

import "github.com/moonwhale/setup/pkg/kiosk/i18n"

type ActionID int

const (
	ActionInstallEmulators ActionID = iota
	ActionInstallBrowser
	ActionInstallMediaPlayer
	ActionSystemSettings
	ActionExit
)

func (a ActionID) String() string {
	switch a {
	case ActionInstallEmulators:
		return "InstallEmulators"
	case ActionInstallBrowser:
		return "InstallBrowser"
	case ActionInstallMediaPlayer:
		return "InstallMediaPlayer"
	case ActionSystemSettings:
		return "SystemSettings"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether activating the action ends the program.
func (a ActionID) IsTerminal() bool {
	return a == ActionExit
}

// Entry is one row of the menu. Feature names the placeholder shown in the
// "Coming Soon" dialog.
type Entry struct {
	Label   string
	Feature string
	Action  ActionID
}

// DefaultEntries returns the kiosk's menu in display order, the exit entry last.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Label:   i18n.GetString(i18n.MenuInstallEmulators),
			Feature: i18n.GetString(i18n.FeatureInstallEmulators),
			Action:  ActionInstallEmulators,
		},
		{
			Label:   i18n.GetString(i18n.MenuInstallBrowser),
			Feature: i18n.GetString(i18n.FeatureInstallBrowser),
			Action:  ActionInstallBrowser,
		},
		{
			Label:   i18n.GetString(i18n.MenuInstallMediaPlayer),
			Feature: i18n.GetString(i18n.FeatureInstallMediaPlayer),
			Action:  ActionInstallMediaPlayer,
		},
		{
			Label:   i18n.GetString(i18n.MenuSystemSettings),
			Feature: i18n.GetString(i18n.FeatureSystemSettings),
			Action:  ActionSystemSettings,
		},
		{
			Label:  i18n.GetString(i18n.MenuExit),
			Action: ActionExit,
		},
	}
}
