package menu

import (
	"errors"
	"testing"
)

func TestActivateTerminalEntry(t *testing.T) {
	d := NewDispatcher(newTestMenu(t))
	out, err := d.Activate(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Terminate || out.Dialog != nil {
		t.Fatalf("expected terminate without dialog, got %+v", out)
	}
}

func TestActivateNonTerminalEntries(t *testing.T) {
	d := NewDispatcher(newTestMenu(t))
	features := []string{
		"Gaming emulator installation",
		"Web browser installation",
		"Media player installation",
		"System settings",
	}
	for i, feature := range features {
		out, err := d.Activate(i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Terminate || out.Dialog == nil {
			t.Fatalf("entry %d: expected dialog, got %+v", i, out)
		}
		if out.Dialog.Title != "Coming Soon" {
			t.Fatalf("entry %d: expected Coming Soon title, got %q", i, out.Dialog.Title)
		}
		want := feature + " will be available in a future update."
		if out.Dialog.Body != want {
			t.Fatalf("entry %d: expected %q, got %q", i, want, out.Dialog.Body)
		}
	}
}

func TestActivateOutOfRange(t *testing.T) {
	d := NewDispatcher(newTestMenu(t))
	if _, err := d.Activate(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := d.Activate(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestComingSoonFallsBackToLabel(t *testing.T) {
	req := ComingSoon(Entry{Label: "Backup", Action: ActionSystemSettings})
	if req.Body != "Backup will be available in a future update." {
		t.Fatalf("expected label fallback, got %q", req.Body)
	}
}
