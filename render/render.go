// Copyright © 2024 Galvanized Logic Inc.

// Package render is an optional collaborator for the physics package:
// given a read-only snapshot of bodies between solver steps, it
// rasterizes antialiased disks, segments, and polygons to an RGBA
// frame buffer. It never touches the solver's hot path - a caller
// reads positions and vertex lists after Step returns and hands them
// here purely for drawing.
//
// The wireframe and filled-shape helpers mirror the antialiased
// drawing affordances (aacircle, aapolygon, draw_antialiased_wireframe)
// of a typical 2D scene helper library, rebuilt on top of
// golang.org/x/image/vector's path rasterizer instead of a
// software gfxdraw port.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gazed/vu/math/vec2"
)

// Frame is an antialiased RGBA canvas that bodies are drawn onto.
type Frame struct {
	width, height int
	img           *image.RGBA
}

// NewFrame allocates a blank frame of the given pixel dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{width: width, height: height, img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Clear fills the frame with a flat background color.
func (f *Frame) Clear(c color.Color) {
	draw.Draw(f.img, f.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Image exposes the underlying RGBA buffer for display or encoding.
func (f *Frame) Image() *image.RGBA { return f.img }

// circleSegments is how many line segments approximate a circle's
// antialiased outline; enough to look smooth at typical sandbox scales.
const circleSegments = 48

// DrawDisk rasterizes an antialiased filled disk centered at center
// with the given radius and color.
func (f *Frame) DrawDisk(center vec2.V, radius float64, c color.Color) {
	r := vector.NewRasterizer(f.width, f.height)
	for i := 0; i <= circleSegments; i++ {
		theta := vec2.PiX2 * float64(i) / circleSegments
		p := center.Add(vec2.V{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)})
		if i == 0 {
			r.MoveTo(float32(p.X), float32(p.Y))
		} else {
			r.LineTo(float32(p.X), float32(p.Y))
		}
	}
	r.ClosePath()
	f.fill(r, c)
}

// DrawSegment rasterizes a segment as a thin antialiased quad between
// p0 and p1, thickness pixels wide.
func (f *Frame) DrawSegment(p0, p1 vec2.V, thickness float64, c color.Color) {
	axis := p1.Sub(p0)
	perp := axis.Unit().Perp().Scale(thickness / 2)
	quad := []vec2.V{p0.Add(perp), p1.Add(perp), p1.Sub(perp), p0.Sub(perp)}
	f.DrawPolygon(quad, c)
}

// DrawPolygon rasterizes an antialiased filled convex polygon from its
// world-space vertices, in either winding order.
func (f *Frame) DrawPolygon(vertices []vec2.V, c color.Color) {
	r := vector.NewRasterizer(f.width, f.height)
	for i, v := range vertices {
		if i == 0 {
			r.MoveTo(float32(v.X), float32(v.Y))
		} else {
			r.LineTo(float32(v.X), float32(v.Y))
		}
	}
	r.ClosePath()
	f.fill(r, c)
}

// fill rasterizes the accumulated path straight onto the frame,
// compositing the solid color c using the path's antialiased coverage.
func (f *Frame) fill(r *vector.Rasterizer, c color.Color) {
	r.Draw(f.img, f.img.Bounds(), &image.Uniform{C: c}, image.Point{})
}
