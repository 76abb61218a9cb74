package qrcode

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	qrc "github.com/skip2/go-qrcode"
)

// Symbol parameters. Version 6 with level H redundancy leaves enough
// undamaged modules for an opaque logo covering the center third.
const (
	minVersion = 6
	maxVersion = 40
	boxSize    = 10
)

// Generator handles QR code generation
type Generator struct {
	foreground color.Color
	background color.Color
}

// NewGenerator creates a new QR code generator rendering blue on white.
func NewGenerator() *Generator {
	return &Generator{
		foreground: color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
		background: color.White,
	}
}

// Encode renders content as a QR symbol at 10 pixels per module with the
// standard 4-module quiet zone, as an RGB raster.
//
// Version 6 is a floor, not a ceiling: content that does not fit at level H
// steps up to the smallest version that holds it. Content too large for any
// version is returned as an error from the underlying library.
func (g *Generator) Encode(content string) (image.Image, error) {
	q, err := newSymbol(content)
	if err != nil {
		return nil, err
	}

	q.ForegroundColor = g.foreground
	q.BackgroundColor = g.background

	// Negative size renders at a fixed pixels-per-module scale, quiet
	// zone included. Version 6 is 41 modules, so (41+8)*10 = 490px.
	img := q.Image(-boxSize)

	// The library returns a paletted image; clone to a plain color raster
	// so the compositor can paste onto it.
	return imaging.Clone(img), nil
}

func newSymbol(content string) (*qrc.QRCode, error) {
	var err error
	for version := minVersion; version <= maxVersion; version++ {
		var q *qrc.QRCode
		q, err = qrc.NewWithForcedVersion(content, version, qrc.Highest)
		if err == nil {
			return q, nil
		}
	}
	return nil, err
}
