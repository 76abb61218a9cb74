package mailqr

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/prasetyowira/qrmailer/infrastructure/output"
	"github.com/prasetyowira/qrmailer/infrastructure/overlay"
	"github.com/prasetyowira/qrmailer/infrastructure/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubViewer keeps integration runs headless.
type stubViewer struct{}

func (stubViewer) Show(string) error { return nil }

func newIntegrationService() *Service {
	return NewService(
		context.Background(),
		qrcode.NewGenerator(),
		overlay.NewCompositor(),
		output.NewWriter(),
		stubViewer{},
	)
}

func writeSquareLogo(t *testing.T, path string, c color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestGenerate_EndToEnd_WithLogo(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "logo.png")
	outPath := filepath.Join(dir, "out.png")
	writeSquareLogo(t, logoPath, color.NRGBA{R: 0xff, A: 0xff})

	service := newIntegrationService()

	// Act
	err := service.Generate(context.Background(), Request{
		Email:      "x@y.com",
		Subject:    "S",
		Body:       "B",
		BodySet:    true,
		LogoPath:   logoPath,
		OutputPath: outPath,
	})

	// Assert
	require.NoError(t, err)

	saved, err := imaging.Open(outPath)
	require.NoError(t, err)
	assert.Equal(t, 490, saved.Bounds().Dx())
	assert.Equal(t, 490, saved.Bounds().Dy())

	// The center of the raster holds the pasted logo, not QR modules
	r, g, b, _ := saved.At(245, 245).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)

	// The quiet zone stays white
	r, g, b, _ = saved.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestGenerate_EndToEnd_MissingLogo(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	outPath := filepath.Join(dir, "email_qr.png")

	service := newIntegrationService()

	// Act
	err := service.Generate(context.Background(), Request{
		Email:      "a@b.com",
		Subject:    "Hi",
		Body:       "B",
		BodySet:    true,
		LogoPath:   filepath.Join(dir, "missing.png"),
		OutputPath: outPath,
	})

	// Assert: the QR-only image is written anyway
	require.NoError(t, err)

	saved, err := imaging.Open(outPath)
	require.NoError(t, err)
	assert.Equal(t, 490, saved.Bounds().Dx())
	assert.Equal(t, 490, saved.Bounds().Dy())
}

func TestGenerate_EndToEnd_DefaultBody(t *testing.T) {
	// Arrange: no body supplied and no logo on disk
	dir := t.TempDir()
	outPath := filepath.Join(dir, "email_qr.png")

	service := newIntegrationService()

	// Act
	err := service.Generate(context.Background(), Request{
		Email:      "a@b.com",
		Subject:    "Hi",
		LogoPath:   filepath.Join(dir, "missing.png"),
		OutputPath: outPath,
	})

	// Assert: the default body overflows version 6, so the symbol grows
	// past 490px instead of the run failing
	require.NoError(t, err)

	saved, err := imaging.Open(outPath)
	require.NoError(t, err)
	assert.Equal(t, saved.Bounds().Dx(), saved.Bounds().Dy())
	assert.Greater(t, saved.Bounds().Dx(), 490)
}

func TestGenerate_EndToEnd_CorruptLogo(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "broken.png")
	outPath := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(logoPath, []byte("not a png"), 0o644))

	service := newIntegrationService()

	// Act
	err := service.Generate(context.Background(), Request{
		Email:      "a@b.com",
		Subject:    "Hi",
		Body:       "B",
		BodySet:    true,
		LogoPath:   logoPath,
		OutputPath: outPath,
	})

	// Assert: the run aborts and no output file appears
	require.Error(t, err)
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}
