package internal

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// LogoCandidates lists the files tried, in order, inside the images directory.
var LogoCandidates = []string{"moonwhale.svg", "moonwhale.png", "moonwhale.jpg"}

// LogoPaths returns the paths LoadLogo tries: the configured path first, then
// the candidates under dir/images.
func LogoPaths(configured, dir string) []string {
	var paths []string
	if configured != "" {
		paths = append(paths, configured)
	}
	for _, name := range LogoCandidates {
		paths = append(paths, filepath.Join(dir, "images", name))
	}
	return paths
}

// LoadLogo returns a texture for the first readable logo, rasterized at
// size×size. A missing logo yields nil and no error.
func LoadLogo(renderer *sdl.Renderer, paths []string, size int32) *sdl.Texture {
	logger := GetInternalLogger()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Debug("Logo not found", "path", path, "error", err)
			continue
		}

		texture, err := loadImageTexture(renderer, data, size, size)
		if err != nil {
			logger.Warn("Failed to load logo", "path", path, "error", err)
			continue
		}

		logger.Info("Loaded logo", "path", path)
		return texture
	}

	logger.Info("No logo found, header will be drawn without it")
	return nil
}

func loadImageTexture(renderer *sdl.Renderer, data []byte, width, height int32) (*sdl.Texture, error) {
	if isSVG(data) {
		return loadSVGTexture(renderer, data, width, height)
	}
	return loadRasterTexture(renderer, data)
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

func loadRasterTexture(renderer *sdl.Renderer, data []byte) (*sdl.Texture, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}

func loadSVGTexture(renderer *sdl.Renderer, data []byte, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), canvas, canvas.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return loadRasterTexture(renderer, buf.Bytes())
}
