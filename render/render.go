// Package render rasterizes reconciled offset cycles to raster images for
// visual debugging. Arcs are flattened to chords and filled with the
// vector rasterizer from golang.org/x/image.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/arcline"
)

// maxChordAngle is the angular step used when flattening arcs.
const maxChordAngle = 0.1

// palette is rotated through per cycle.
var palette = []color.NRGBA{
	{R: 0xe5, G: 0x39, B: 0x35, A: 0x90},
	{R: 0x43, G: 0xa0, B: 0x47, A: 0x90},
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0x90},
	{R: 0xfb, G: 0x8c, B: 0x00, A: 0x90},
	{R: 0x8e, G: 0x24, B: 0xaa, A: 0x90},
}

// Cycles rasterizes the cycles into a white-backed RGBA image of the given
// size. World coordinates are scaled by scale and the y axis flipped so the
// drawing appears in mathematical orientation.
func Cycles(cycles [][]arcline.Edge, width, height int, scale float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, cycle := range cycles {
		pts := Flatten(cycle)
		if len(pts) < 3 {
			continue
		}
		r := vector.NewRasterizer(width, height)
		r.MoveTo(float32(pts[0].X*scale), float32(float64(height)-pts[0].Y*scale))
		for _, p := range pts[1:] {
			r.LineTo(float32(p.X*scale), float32(float64(height)-p.Y*scale))
		}
		r.ClosePath()
		src := image.NewUniform(palette[i%len(palette)])
		r.Draw(img, img.Bounds(), src, image.Point{})
	}
	return img
}

// WritePNG renders the cycles and writes them to a PNG file.
func WritePNG(path string, cycles [][]arcline.Edge, width, height int, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, Cycles(cycles, width, height, scale))
}

// Flatten converts a head-to-tail connected cycle into a closed point
// chain, subdividing arcs at a fixed angular step. Edges traversed against
// their stored orientation are flattened backwards.
func Flatten(cycle []arcline.Edge) []arcline.Point {
	if len(cycle) == 0 {
		return nil
	}
	pos := cycle[0].A
	var pts []arcline.Point
	for _, e := range cycle {
		forward := e.A.Sub(pos).Length() <= e.B.Sub(pos).Length()
		seg := flattenEdge(e, forward)
		pts = append(pts, seg[:len(seg)-1]...)
		pos = seg[len(seg)-1]
	}
	return pts
}

func flattenEdge(e arcline.Edge, forward bool) []arcline.Point {
	if e.IsSeg() {
		if forward {
			return []arcline.Point{e.A, e.B}
		}
		return []arcline.Point{e.B, e.A}
	}
	a0 := math.Atan2(e.A.Y-e.C.Y, e.A.X-e.C.X)
	a1 := math.Atan2(e.B.Y-e.C.Y, e.B.X-e.C.X)
	if a1 <= a0 {
		a1 += 2 * math.Pi
	}
	steps := int(math.Ceil((a1 - a0) / maxChordAngle))
	if steps < 1 {
		steps = 1
	}
	pts := make([]arcline.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := a0 + (a1-a0)*t
		pts = append(pts, arcline.Pt(e.C.X+e.R*math.Cos(angle), e.C.Y+e.R*math.Sin(angle)))
	}
	if !forward {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}
