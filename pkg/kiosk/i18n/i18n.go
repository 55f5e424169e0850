package i18n

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.en.toml
var defaultMessages []byte

const defaultMessagesName = "active.en.toml"

// Message IDs used by the kiosk.
const (
	AppTitle                  = "app_title"
	WindowTitle               = "window_title"
	MenuInstallEmulators      = "menu_install_emulators"
	FeatureInstallEmulators   = "feature_install_emulators"
	MenuInstallBrowser        = "menu_install_browser"
	FeatureInstallBrowser     = "feature_install_browser"
	MenuInstallMediaPlayer    = "menu_install_media_player"
	FeatureInstallMediaPlayer = "feature_install_media_player"
	MenuSystemSettings        = "menu_system_settings"
	FeatureSystemSettings     = "feature_system_settings"
	MenuExit                  = "menu_exit"
	DialogComingSoonTitle     = "dialog_coming_soon_title"
	DialogComingSoonBody      = "dialog_coming_soon_body"
	DialogDismiss             = "dialog_dismiss"
	FooterControllerHint      = "footer_controller_hint"
	FooterKeyboardHint        = "footer_keyboard_hint"
)

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.ParseMessageFileBytes(defaultMessages, defaultMessagesName); err != nil {
		return nil, fmt.Errorf("parse embedded messages: %w", err)
	}
	return bundle, nil
}

// InitI18N loads the embedded English catalog and then each of
// messageFilePaths, later files overriding earlier messages with the same ID.
func InitI18N(messageFilePaths []string) error {
	files := make([]MessageFile, 0, len(messageFilePaths))
	for _, path := range messageFilePaths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("load message file %s: %w", path, err)
		}
		files = append(files, MessageFile{Name: filepath.Base(path), Content: content})
	}
	return InitI18NFromBytes(files)
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle, err := newBundle()
	if err != nil {
		return err
	}

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return fmt.Errorf("parse message file %s: %w", messageFile.Name, err)
		}
	}

	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}
	return nil
}

// current returns the active catalog, falling back to the embedded one when
// nothing was initialised.
func current() *I18N {
	if i == nil {
		if err := InitI18N(nil); err != nil {
			panic(err)
		}
	}
	return i
}

// GetString retrieves a localized string by key.
// A missing key yields "I18N Error".
func GetString(key string) string {
	msg, err := current().localizer.Localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return "I18N Error"
	}
	return msg
}

// GetStringWithData retrieves a localized string by key with template data.
func GetStringWithData(key string, templateData map[string]interface{}) string {
	msg, err := current().localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		return "I18N Error"
	}
	return msg
}
