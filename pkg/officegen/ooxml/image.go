package ooxml

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
)

var imageContentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// Image is a decoded-enough picture ready to embed as a media part.
type Image struct {
	Data        []byte
	Ext         string
	ContentType string
	WidthPx     int
	HeightPx    int
}

// LoadImage reads an image file and sniffs its format and pixel size.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeImage(data)
}

// DecodeImage sniffs the format and pixel size of image data.
func DecodeImage(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	ct, ok := imageContentTypes[format]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	return &Image{
		Data:        data,
		Ext:         format,
		ContentType: ct,
		WidthPx:     cfg.Width,
		HeightPx:    cfg.Height,
	}, nil
}

// Extent returns the display size in EMU. A zero width or height is derived from the
// other dimension keeping the aspect ratio; both zero yields the native size at 96 DPI.
func (img *Image) Extent(width, height int64) (cx, cy int64) {
	nativeW := int64(img.WidthPx) * style.EMUPerPixel
	nativeH := int64(img.HeightPx) * style.EMUPerPixel
	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0 && nativeW > 0:
		return width, nativeH * width / nativeW
	case height > 0 && nativeH > 0:
		return nativeW * height / nativeH, height
	default:
		return nativeW, nativeH
	}
}
