package layout

import (
	"image"
	"testing"
)

var screen = Screen{Width: 1280, Height: 720}

func TestBands(t *testing.T) {
	if got := Header(screen); got != image.Rect(0, 0, 1280, 120) {
		t.Fatalf("unexpected header %v", got)
	}
	if got := Footer(screen); got != image.Rect(0, 660, 1280, 720) {
		t.Fatalf("unexpected footer %v", got)
	}
}

func TestRowsUseFixedStride(t *testing.T) {
	for i := 0; i < 5; i++ {
		r := Row(screen, i)
		if r.Min.Y != 160+80*i || r.Dy() != 60 {
			t.Fatalf("row %d: unexpected rect %v", i, r)
		}
		if r.Min.X != 100 || r.Max.X != 1180 {
			t.Fatalf("row %d: unexpected horizontal span %v", i, r)
		}
	}
	if last := Row(screen, 4); last.Max.Y > Footer(screen).Min.Y {
		t.Fatalf("expected five rows above the footer, last %v", last)
	}
}

func TestDialogGeometry(t *testing.T) {
	panel := DialogPanel(screen)
	if panel != image.Rect(340, 210, 940, 510) {
		t.Fatalf("unexpected panel %v", panel)
	}
	if got := DialogBodyWidth(); got != 560 {
		t.Fatalf("expected body width 560, got %d", got)
	}
	if got := DialogButton(panel); got != image.Rect(590, 450, 690, 490) {
		t.Fatalf("unexpected button %v", got)
	}
	if got := DialogBodyLine(panel, 2); got != image.Pt(360, 350) {
		t.Fatalf("unexpected body line origin %v", got)
	}
	if got := DialogTitleOrigin(panel, 200); got != image.Pt(540, 230) {
		t.Fatalf("unexpected title origin %v", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center(image.Rect(100, 160, 1180, 220), 280, 40); got != image.Pt(500, 170) {
		t.Fatalf("unexpected centre %v", got)
	}
	if got := FooterTextOrigin(screen, 600); got != image.Pt(340, 680) {
		t.Fatalf("unexpected footer text origin %v", got)
	}
}
