package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"vennsets/internal/domain"
	"vennsets/internal/output"
)

const (
	margin      = 40
	titleHeight = 40
	lineHeight  = 15
	sampleStep  = 4
)

// slot fills for A, B and C
var palette = []color.NRGBA{
	{R: 0xE4, G: 0x1A, B: 0x1C, A: 0x66},
	{R: 0x37, G: 0x7E, B: 0xB8, A: 0x66},
	{R: 0x4D, G: 0xAF, B: 0x4A, A: 0x66},
}

// PNGRenderer draws proportional Venn diagrams as PNG images
type PNGRenderer struct {
	Width  int
	Height int

	open func(path string) error
}

// NewPNGRenderer creates a renderer with an 800x800 canvas that shows
// interactive diagrams in the system image viewer
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{
		Width:  800,
		Height: 800,
		open:   systemViewer,
	}
}

// Render draws the diagram and either saves it to req.Path or opens it
func (p *PNGRenderer) Render(ctx context.Context, req *Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(req.LabeledSets) < 2 || len(req.LabeledSets) > domain.MaxArity {
		return &domain.UnsupportedArityError{Arity: len(req.LabeledSets), Want: "2-3"}
	}

	img := p.Draw(req)

	if req.Mode == ModeInteractive {
		return p.display(img)
	}
	return output.WriteFileAtomic(req.Path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// Draw renders the diagram into an image
func (p *PNGRenderer) Draw(req *Request) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	circles := p.project(layout(req))

	for i, c := range circles {
		mask := &circleMask{p: image.Pt(int(c.X), int(c.Y)), r: int(math.Round(c.R))}
		draw.DrawMask(img, mask.Bounds(), &image.Uniform{C: palette[i]}, image.Point{},
			mask, mask.Bounds().Min, draw.Over)
	}

	p.drawRegionCounts(img, circles, req)

	for i, c := range circles {
		lines := strings.Split(req.LabeledSets[i].DisplayLabel, "\n")
		// C sits below the A-B axis, so its label goes underneath
		y := int(c.Y-c.R) - lineHeight*len(lines) + 4
		if i == 2 {
			y = int(c.Y+c.R) + lineHeight
		}
		for j, line := range lines {
			drawCentered(img, line, int(c.X), y+j*lineHeight)
		}
	}

	drawCentered(img, req.Title, p.Width/2, titleHeight/2+6)
	return img
}

// project scales layout units to pixels, fitting every circle and its
// labels into the canvas below the title
func (p *PNGRenderer) project(circles []circle) []circle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range circles {
		minX, maxX = math.Min(minX, c.X-c.R), math.Max(maxX, c.X+c.R)
		minY, maxY = math.Min(minY, c.Y-c.R), math.Max(maxY, c.Y+c.R)
	}

	labelSpace := float64(3 * lineHeight)
	availW := float64(p.Width - 2*margin)
	availH := float64(p.Height-titleHeight-2*margin) - 2*labelSpace

	scale := 1.0
	if w, h := maxX-minX, maxY-minY; w > 0 && h > 0 {
		scale = math.Min(availW/w, availH/h)
	}

	offX := float64(margin) + (availW-(maxX-minX)*scale)/2
	offY := float64(titleHeight+margin) + labelSpace + (availH-(maxY-minY)*scale)/2

	out := make([]circle, len(circles))
	for i, c := range circles {
		out[i] = circle{
			X: offX + (c.X-minX)*scale,
			Y: offY + (c.Y-minY)*scale,
			R: c.R * scale,
		}
	}
	return out
}

// drawRegionCounts writes each non-empty region's size at the centroid of
// the pixels belonging to exactly that region
func (p *PNGRenderer) drawRegionCounts(img *image.RGBA, circles []circle, req *Request) {
	type acc struct{ x, y, n float64 }
	centroids := make(map[string]*acc)

	b := make([]byte, len(circles))
	for y := 0; y < p.Height; y += sampleStep {
		for x := 0; x < p.Width; x += sampleStep {
			inside := false
			for i, c := range circles {
				dx, dy := float64(x)-c.X, float64(y)-c.Y
				if dx*dx+dy*dy < c.R*c.R {
					b[i] = '1'
					inside = true
				} else {
					b[i] = '0'
				}
			}
			if !inside {
				continue
			}
			a, ok := centroids[string(b)]
			if !ok {
				a = &acc{}
				centroids[string(b)] = a
			}
			a.x += float64(x)
			a.y += float64(y)
			a.n++
		}
	}

	for mask, count := range req.Regions {
		a, ok := centroids[mask]
		if !ok || count == 0 {
			continue
		}
		drawCentered(img, domain.FormatCount(count), int(a.x/a.n), int(a.y/a.n)+4)
	}
}

func drawCentered(img draw.Image, text string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(text).Round()
	d.Dot = fixed.P(x-width/2, y)
	d.DrawString(text)
}

// circleMask is an alpha mask that is opaque inside the circle
type circleMask struct {
	p image.Point
	r int
}

func (c *circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circleMask) Bounds() image.Rectangle {
	return image.Rect(c.p.X-c.r, c.p.Y-c.r, c.p.X+c.r, c.p.Y+c.r)
}

func (c *circleMask) At(x, y int) color.Color {
	xx, yy, rr := float64(x-c.p.X)+0.5, float64(y-c.p.Y)+0.5, float64(c.r)
	if xx*xx+yy*yy < rr*rr {
		return color.Alpha{A: 255}
	}
	return color.Alpha{A: 0}
}
