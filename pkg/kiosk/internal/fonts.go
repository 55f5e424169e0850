package internal

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"
)

type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  60,
	Medium: 36,
	Small:  24,
}

// FontSource records where the loaded face came from.
type FontSource string

const (
	FontSourcePath     FontSource = "path"
	FontSourceSystem   FontSource = "system"
	FontSourceEmbedded FontSource = "embedded"
)

// Fonts holds the three faces used by the kiosk: title, menu rows and
// dialog body/footer.
type Fonts struct {
	Large  *ttf.Font
	Medium *ttf.Font
	Small  *ttf.Font

	Source FontSource
	Path   string
}

// LoadFonts resolves a face in order: the explicit path, the system font
// matching family, then the embedded Go Regular face. Only a failure of the
// embedded face is returned as an error.
func LoadFonts(path, family string, sizes FontSizes) (*Fonts, error) {
	logger := GetInternalLogger()

	if path != "" {
		fonts, err := openFontFile(path, sizes)
		if err == nil {
			fonts.Source = FontSourcePath
			return fonts, nil
		}
		logger.Warn("Failed to load configured font, trying system font", "path", path, "error", err)
	}

	if family != "" {
		if systemPath, err := lookupSystemFont(family); err != nil {
			logger.Debug("System font lookup failed", "family", family, "error", err)
		} else {
			fonts, err := openFontFile(systemPath, sizes)
			if err == nil {
				fonts.Source = FontSourceSystem
				return fonts, nil
			}
			logger.Warn("Failed to load system font", "family", family, "path", systemPath, "error", err)
		}
	}

	logger.Info("Using embedded font")
	return openEmbeddedFont(goregular.TTF, sizes)
}

func openFontFile(path string, sizes FontSizes) (*Fonts, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	fonts := &Fonts{Path: path}
	var err error

	if fonts.Large, err = ttf.OpenFont(path, sizes.Large); err != nil {
		return nil, err
	}
	if fonts.Medium, err = ttf.OpenFont(path, sizes.Medium); err != nil {
		fonts.Close()
		return nil, err
	}
	if fonts.Small, err = ttf.OpenFont(path, sizes.Small); err != nil {
		fonts.Close()
		return nil, err
	}

	return fonts, nil
}

func openEmbeddedFont(bytes []byte, sizes FontSizes) (*Fonts, error) {
	fonts := &Fonts{Source: FontSourceEmbedded}
	var err error

	if fonts.Large, err = loadEmbeddedFont(bytes, sizes.Large); err != nil {
		return nil, err
	}
	if fonts.Medium, err = loadEmbeddedFont(bytes, sizes.Medium); err != nil {
		fonts.Close()
		return nil, err
	}
	if fonts.Small, err = loadEmbeddedFont(bytes, sizes.Small); err != nil {
		fonts.Close()
		return nil, err
	}

	return fonts, nil
}

func loadEmbeddedFont(bytes []byte, size int) (*ttf.Font, error) {
	rw, err := sdl.RWFromMem(bytes)
	if err != nil {
		return nil, fmt.Errorf("create RW from embedded font: %w", err)
	}

	font, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, fmt.Errorf("load embedded font at size %d: %w", size, err)
	}

	return font, nil
}

// lookupSystemFont asks fontconfig for the file backing family.
func lookupSystemFont(family string) (string, error) {
	out, err := exec.Command("fc-match", "--format=%{file}", family).Output()
	if err != nil {
		return "", err
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", fmt.Errorf("no font file for %q", family)
	}
	return path, nil
}

func (f *Fonts) Close() {
	if f == nil {
		return
	}
	for _, font := range []*ttf.Font{f.Large, f.Medium, f.Small} {
		if font != nil {
			font.Close()
		}
	}
	f.Large, f.Medium, f.Small = nil, nil, nil
}

// FontMeasurer adapts a ttf face to layout.Measurer.
type FontMeasurer struct {
	Font *ttf.Font
}

func (m FontMeasurer) TextWidth(text string) int {
	w, _ := TextSize(m.Font, text)
	return w
}
