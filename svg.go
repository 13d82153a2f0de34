package arcline

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// SVG accumulates debug drawings of points, edges, polylines and cycles
// and writes them as a standalone SVG document. The viewport is
// (0,0)-(xsize,ysize) with the y axis flipped so drawings appear in the
// usual mathematical orientation.
type SVG struct {
	xsize, ysize float64
	strokeWidth  float64
	body         strings.Builder
}

// NewSVG creates an SVG canvas of the given size.
func NewSVG(xsize, ysize float64) *SVG {
	return &SVG{xsize: xsize, ysize: ysize, strokeWidth: 1}
}

// SetStrokeWidth sets the stroke width used by the document header.
func (s *SVG) SetStrokeWidth(w float64) {
	s.strokeWidth = w
}

func (s *SVG) flipY(y float64) float64 {
	return s.ysize - y
}

// Circle draws a circle outline.
func (s *SVG) Circle(c Point, r float64, color string) {
	fmt.Fprintf(&s.body, "<circle cx=\"%v\" cy=\"%v\" r=\"%v\" stroke=\"%s\" />\n",
		c.X, s.flipY(c.Y), r, color)
}

// Text draws a small text label at p.
func (s *SVG) Text(p Point, text, color string) {
	fmt.Fprintf(&s.body, "<text x=\"%v\" y=\"%v\" fill=\"%s\" font-size=\"2.0\">%s</text>\n",
		p.X, s.flipY(p.Y), color, text)
}

// Edge draws a segment or arc.
func (s *SVG) Edge(e Edge, color string) {
	if e.IsSeg() {
		fmt.Fprintf(&s.body, "<line x1=\"%v\" y1=\"%v\" x2=\"%v\" y2=\"%v\" stroke=\"%s\" />\n",
			e.A.X, s.flipY(e.A.Y), e.B.X, s.flipY(e.B.Y), color)
		return
	}
	a0 := math.Atan2(e.A.Y-e.C.Y, e.A.X-e.C.X)
	a1 := math.Atan2(e.B.Y-e.C.Y, e.B.X-e.C.X)
	if a1 <= a0 {
		a1 += 2 * math.Pi
	}
	largeArc := 0
	if a1-a0 > math.Pi {
		largeArc = 1
	}
	// The counter-clockwise sweep turns clockwise under the y flip, which
	// is SVG sweep flag 0.
	fmt.Fprintf(&s.body, "<path d=\"M %v %v A %v %v 0 %d 0 %v %v\" stroke=\"%s\" />\n",
		e.A.X, s.flipY(e.A.Y), e.R, e.R, largeArc, e.B.X, s.flipY(e.B.Y), color)
}

// Edges draws a list of edges in one color.
func (s *SVG) Edges(edges []Edge, color string) {
	for _, e := range edges {
		s.Edge(e, color)
	}
}

// Polyline draws a closed polyline including its closing edge.
func (s *SVG) Polyline(pline Polyline, color string) {
	s.Edges(pline.Edges(), color)
}

// cycleColors is the palette Cycles rotates through.
var cycleColors = []string{"red", "green", "blue", "orange", "purple", "teal"}

// Cycles draws each cycle in its own color.
func (s *SVG) Cycles(cycles [][]Edge) {
	for i, cycle := range cycles {
		s.Edges(cycle, cycleColors[i%len(cycleColors)])
	}
}

// Document returns the complete SVG document.
func (s *SVG) Document() string {
	var doc strings.Builder
	fmt.Fprintf(&doc,
		"<svg viewBox=\"0 0 %v %v\" xmlns=\"http://www.w3.org/2000/svg\" fill=\"none\" stroke-width=\"%v\" stroke-linecap=\"round\">",
		s.xsize, s.ysize, s.strokeWidth)
	doc.WriteString("<rect width=\"100%\" height=\"100%\" fill=\"#ffffff\" />\n")
	doc.WriteString(s.body.String())
	doc.WriteString("</svg>")
	return doc.String()
}

// WriteFile writes the document to path.
func (s *SVG) WriteFile(path string) error {
	return os.WriteFile(path, []byte(s.Document()), 0o644)
}
