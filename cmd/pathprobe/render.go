package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/curve3"
)

var (
	backgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pathColor       = color.RGBA{0x9e, 0x9e, 0x9e, 0xff}
	progressColor   = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
	markerColor     = color.RGBA{0xe5, 0x39, 0x35, 0xff}
)

const (
	margin      = 16
	strokeWidth = 3
	markerSize  = 6
	// Samples per segment.
	segmentSamples = 256
)

// canvas maps the XY plane of world space onto an image. Y points up in world
// space and down in the image.
type canvas struct {
	img   *image.RGBA
	r     *vector.Rasterizer
	scale float64
	// World coordinates of the image's top-left corner, inside the margin.
	x0, y1 float64
}

func newCanvas(size int, box curve3.Box) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{backgroundColor}, image.Point{}, draw.Src)

	extent := max(box.X1-box.X0, box.Y1-box.Y0)
	scale := 1.0
	if extent > 0 {
		scale = float64(size-2*margin) / extent
	}
	// Center the shorter dimension.
	cx := (box.X0 + box.X1) / 2
	cy := (box.Y0 + box.Y1) / 2
	half := float64(size-2*margin) / 2 / scale
	return &canvas{
		img:   img,
		r:     vector.NewRasterizer(size, size),
		scale: scale,
		x0:    cx - half,
		y1:    cy + half,
	}
}

func (c *canvas) project(pt curve3.Point) (float32, float32) {
	x := (pt.X-c.x0)*c.scale + margin
	y := (c.y1-pt.Y)*c.scale + margin
	return float32(x), float32(y)
}

func (c *canvas) fill(col color.Color) {
	c.r.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{})
	b := c.img.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
}

// polyline strokes the polyline through pts by filling one quad per piece.
func (c *canvas) polyline(pts []curve3.Point, width float64, col color.Color) {
	half := width / 2
	for i := 1; i < len(pts); i++ {
		x0, y0 := c.project(pts[i-1])
		x1, y1 := c.project(pts[i])
		dx, dy := float64(x1-x0), float64(y1-y0)
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx := float32(-dy / l * half)
		ny := float32(dx / l * half)
		c.r.MoveTo(x0+nx, y0+ny)
		c.r.LineTo(x1+nx, y1+ny)
		c.r.LineTo(x1-nx, y1-ny)
		c.r.LineTo(x0-nx, y0-ny)
		c.r.ClosePath()
	}
	c.fill(col)
}

// marker draws a diamond centered on pt.
func (c *canvas) marker(pt curve3.Point, size float32, col color.Color) {
	x, y := c.project(pt)
	c.r.MoveTo(x, y-size)
	c.r.LineTo(x+size, y)
	c.r.LineTo(x, y+size)
	c.r.LineTo(x-size, y)
	c.r.ClosePath()
	c.fill(col)
}

// render draws the XY projection of p. The first progress fraction of the
// path is highlighted, and near, if not nil, is marked.
func render(p *curve3.Path, size int, progress float64, near *curve3.Point) *image.RGBA {
	box := p.ControlBox()
	if near != nil {
		box = box.UnionPoint(*near)
	}
	c := newCanvas(size, box)

	total := p.Length()
	var offset float64
	for _, seg := range p.All() {
		pts := make([]curve3.Point, 0, segmentSamples+1)
		for pt := range seg.Samples(segmentSamples) {
			pts = append(pts, pt)
		}
		c.polyline(pts, strokeWidth, pathColor)

		if total > 0 {
			span := seg.Length() / total
			done := 1.0
			if span > 0 {
				done = min(max((progress-offset)/span, 0), 1)
			}
			if done > 0 {
				var donePts []curve3.Point
				for i := range segmentSamples + 1 {
					donePts = append(donePts, seg.Eval(done*float64(i)/segmentSamples))
				}
				c.polyline(donePts, strokeWidth, progressColor)
			}
			offset += span
		}
	}

	if near != nil {
		c.marker(*near, markerSize, markerColor)
	}
	return c.img
}
