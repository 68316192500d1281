// Copyright © 2024 Galvanized Logic Inc.

package render

import (
	"image/color"
	"testing"

	"github.com/gazed/vu/math/vec2"
)

func TestNewFrameDimensions(t *testing.T) {
	f := NewFrame(640, 480)
	b := f.Image().Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("expected a 640x480 frame, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestClearFillsBackground(t *testing.T) {
	f := NewFrame(4, 4)
	f.Clear(color.White)
	got := f.Image().At(1, 1)
	r, g, b, a := got.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("expected white pixel, got %v", got)
	}
}

func TestDrawDiskPaintsCenterPixel(t *testing.T) {
	f := NewFrame(20, 20)
	f.DrawDisk(vec2.V{X: 10, Y: 10}, 5, color.Black)
	_, _, _, a := f.Image().At(10, 10).RGBA()
	if a == 0 {
		t.Error("expected the disk's center pixel to be painted")
	}
}

func TestDrawPolygonPaintsInterior(t *testing.T) {
	f := NewFrame(20, 20)
	square := []vec2.V{{X: 2, Y: 2}, {X: 18, Y: 2}, {X: 18, Y: 18}, {X: 2, Y: 18}}
	f.DrawPolygon(square, color.Black)
	_, _, _, a := f.Image().At(10, 10).RGBA()
	if a == 0 {
		t.Error("expected the polygon's interior pixel to be painted")
	}
}

func TestDrawSegmentPaintsLinePixel(t *testing.T) {
	f := NewFrame(20, 20)
	f.DrawSegment(vec2.V{X: 2, Y: 10}, vec2.V{X: 18, Y: 10}, 3, color.Black)
	_, _, _, a := f.Image().At(10, 10).RGBA()
	if a == 0 {
		t.Error("expected a pixel on the segment to be painted")
	}
}
