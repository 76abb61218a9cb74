package output

import (
	"image"
	"os/exec"
	"runtime"

	"github.com/disintegration/imaging"
)

// Writer persists composed images to disk.
type Writer struct{}

// NewWriter creates a new image writer
func NewWriter() *Writer {
	return &Writer{}
}

// Save writes img to path. The encoding format is picked from the file
// extension (PNG for .png, JPEG for .jpg, and so on). The raster is
// flattened to opaque first, so a pasted logo with transparency still
// yields an RGB image rather than an RGBA one.
func (w *Writer) Save(img image.Image, path string) error {
	return imaging.Save(flattenOpaque(img), path)
}

// flattenOpaque drops the alpha channel, keeping color values as-is.
func flattenOpaque(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// Viewer opens saved images in the platform image viewer.
type Viewer struct{}

// NewViewer creates a new image viewer
func NewViewer() *Viewer {
	return &Viewer{}
}

// Show launches the platform viewer on path and returns without waiting.
// Headless environments have no viewer; the caller treats a failure here
// as non-fatal.
func (v *Viewer) Show(path string) error {
	cmd := viewerCommand(path)
	return cmd.Start()
}

func viewerCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
