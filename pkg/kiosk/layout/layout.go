// Package layout computes the fixed screen geometry of the kiosk. All
// functions are pure so the renderer can be checked without a display.
package layout

import "image"

// Menu screen.
const (
	HeaderHeight = 120
	FooterHeight = 60

	LogoX    = 20
	LogoY    = 10
	LogoSize = 200

	TitleX = 240
	TitleY = 30

	MenuStartY = 160
	RowStride  = 80
	RowHeight  = 60
	RowInsetX  = 100

	// FooterTextInset is the distance from the screen bottom to the hint's top edge.
	FooterTextInset = 40
)

// Dialog.
const (
	DialogWidth       = 600
	DialogHeight      = 300
	DialogPadding     = 20
	DialogTitleY      = 20
	DialogBodyY       = 80
	DialogLineStride  = 30
	DialogBorder      = 2
	DialogButtonW     = 100
	DialogButtonH     = 40
	DialogButtonInset = 60

	ScrimAlpha = 128
)

// Screen is the logical canvas size.
type Screen struct {
	Width  int
	Height int
}

func (s Screen) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

func Header(s Screen) image.Rectangle {
	return image.Rect(0, 0, s.Width, HeaderHeight)
}

func Footer(s Screen) image.Rectangle {
	return image.Rect(0, s.Height-FooterHeight, s.Width, s.Height)
}

func Logo() image.Rectangle {
	return image.Rect(LogoX, LogoY, LogoX+LogoSize, LogoY+LogoSize)
}

func TitleOrigin() image.Point {
	return image.Pt(TitleX, TitleY)
}

// Row returns the background rectangle of menu entry index.
func Row(s Screen, index int) image.Rectangle {
	y := MenuStartY + index*RowStride
	return image.Rect(RowInsetX, y, s.Width-RowInsetX, y+RowHeight)
}

// Center returns the top-left corner that centres a w×h box inside rect.
func Center(rect image.Rectangle, w, h int) image.Point {
	return image.Pt(rect.Min.X+(rect.Dx()-w)/2, rect.Min.Y+(rect.Dy()-h)/2)
}

// FooterTextOrigin returns where a hint of width w is drawn.
func FooterTextOrigin(s Screen, w int) image.Point {
	return image.Pt(s.Width/2-w/2, s.Height-FooterTextInset)
}

func DialogPanel(s Screen) image.Rectangle {
	x := (s.Width - DialogWidth) / 2
	y := (s.Height - DialogHeight) / 2
	return image.Rect(x, y, x+DialogWidth, y+DialogHeight)
}

// DialogBodyWidth is the widest a wrapped body line may render.
func DialogBodyWidth() int {
	return DialogWidth - 2*DialogPadding
}

// DialogTitleOrigin centres a title of width w along the panel top.
func DialogTitleOrigin(panel image.Rectangle, w int) image.Point {
	return image.Pt(panel.Min.X+(panel.Dx()-w)/2, panel.Min.Y+DialogTitleY)
}

func DialogBodyLine(panel image.Rectangle, line int) image.Point {
	return image.Pt(panel.Min.X+DialogPadding, panel.Min.Y+DialogBodyY+line*DialogLineStride)
}

func DialogButton(panel image.Rectangle) image.Rectangle {
	x := panel.Min.X + (panel.Dx()-DialogButtonW)/2
	y := panel.Max.Y - DialogButtonInset
	return image.Rect(x, y, x+DialogButtonW, y+DialogButtonH)
}
