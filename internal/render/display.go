package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/skratchdot/open-golang/open"
)

// systemViewer hands a file to the desktop's default application and
// waits for the launcher to return
func systemViewer(path string) error {
	return open.Run(path)
}

// WithOpener replaces the function used to show interactive diagrams.
// The preview file is removed once fn returns.
func (p *PNGRenderer) WithOpener(fn func(path string) error) *PNGRenderer {
	p.open = fn
	return p
}

// display writes img to a preview file, shows it and removes the file
func (p *PNGRenderer) display(img image.Image) error {
	f, err := os.CreateTemp("", "vennDiagram-*.png")
	if err != nil {
		return fmt.Errorf("create preview file: %w", err)
	}
	defer os.Remove(f.Name())

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close preview: %w", err)
	}
	if err := p.open(f.Name()); err != nil {
		return fmt.Errorf("open diagram viewer: %w", err)
	}
	return nil
}
