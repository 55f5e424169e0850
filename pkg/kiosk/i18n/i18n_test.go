package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedCatalogWithoutInit(t *testing.T) {
	i = nil
	if got := GetString(AppTitle); got != "Moonwhale Setup" {
		t.Fatalf("expected embedded title, got %q", got)
	}
}

func TestBodyTemplate(t *testing.T) {
	if err := InitI18N(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := GetStringWithData(DialogComingSoonBody, map[string]interface{}{"Feature": "System settings"})
	want := "System settings will be available in a future update."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMissingKey(t *testing.T) {
	if err := InitI18N(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GetString("no_such_message"); got != "I18N Error" {
		t.Fatalf("expected I18N Error, got %q", got)
	}
}

func TestOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.en.toml")
	if err := os.WriteFile(path, []byte("[app_title]\nother = \"Acme Setup\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := InitI18N([]string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer InitI18N(nil)

	if got := GetString(AppTitle); got != "Acme Setup" {
		t.Fatalf("expected override, got %q", got)
	}
	if got := GetString(MenuExit); got != "Exit" {
		t.Fatalf("expected untouched message, got %q", got)
	}
}

func TestOverrideFromBytes(t *testing.T) {
	err := InitI18NFromBytes([]MessageFile{{Name: "brand.en.toml", Content: []byte("[menu_exit]\nother = \"Quit\"\n")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer InitI18N(nil)

	if got := GetString(MenuExit); got != "Quit" {
		t.Fatalf("expected Quit, got %q", got)
	}
}

func TestBadOverrideFile(t *testing.T) {
	if err := InitI18N([]string{filepath.Join(t.TempDir(), "missing.en.toml")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
