package overlay

import (
	"image"

	"github.com/disintegration/imaging"
)

// Compositor pastes a logo onto the center of a QR code raster.
type Compositor struct{}

// NewCompositor creates a new logo compositor
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Overlay opens the logo at logoPath, stretches it to a square a third of
// the base image's width, and pastes it centered on a copy of base. The
// paste is opaque; whatever modules lie beneath are overwritten.
//
// Open errors are returned unwrapped so the caller can distinguish a
// missing file from a corrupt or unreadable one.
func (c *Compositor) Overlay(base image.Image, logoPath string) (image.Image, error) {
	logo, err := imaging.Open(logoPath)
	if err != nil {
		return nil, err
	}

	side := LogoSide(base.Bounds().Dx())
	logo = imaging.Resize(logo, side, side, imaging.Lanczos)

	pos := image.Pt(
		(base.Bounds().Dx()-side)/2,
		(base.Bounds().Dy()-side)/2,
	)

	return imaging.Paste(base, logo, pos), nil
}

// LogoSide returns the pixel side length of the pasted logo for a base
// image of the given width.
func LogoSide(baseWidth int) int {
	return baseWidth / 3
}
