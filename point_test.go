package arcline

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestPoint_Ops(t *testing.T) {
	p := Pt(5, 5)
	q := Pt(1, 2)

	if !pointsEqual(p.Add(q), Pt(6, 7), epsilon) {
		t.Errorf("Add = %v, want (6, 7)", p.Add(q))
	}
	if !pointsEqual(p.Sub(q), Pt(4, 3), epsilon) {
		t.Errorf("Sub = %v, want (4, 3)", p.Sub(q))
	}
	if !pointsEqual(p.Mul(2), Pt(10, 10), epsilon) {
		t.Errorf("Mul = %v, want (10, 10)", p.Mul(2))
	}
	if !pointsEqual(q.Div(2), Pt(0.5, 1), epsilon) {
		t.Errorf("Div = %v, want (0.5, 1)", q.Div(2))
	}
	if !pointsEqual(q.Neg(), Pt(-1, -2), epsilon) {
		t.Errorf("Neg = %v, want (-1, -2)", q.Neg())
	}
}

func TestPoint_DotCross(t *testing.T) {
	tests := []struct {
		name  string
		p, q  Point
		dot   float64
		cross float64
	}{
		{name: "axes", p: Pt(1, 0), q: Pt(0, 1), dot: 0, cross: 1},
		{name: "parallel", p: Pt(2, 2), q: Pt(3, 3), dot: 12, cross: 0},
		{name: "opposed", p: Pt(1, 0), q: Pt(-1, 0), dot: -1, cross: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Dot(tt.q); math.Abs(got-tt.dot) > epsilon {
				t.Errorf("Dot = %v, want %v", got, tt.dot)
			}
			if got := tt.p.Cross(tt.q); math.Abs(got-tt.cross) > epsilon {
				t.Errorf("Cross = %v, want %v", got, tt.cross)
			}
		})
	}
}

func TestPoint_CrossRobust(t *testing.T) {
	// The fused-product cross survives catastrophic cancellation that a
	// naive a*d - b*c computation would amplify.
	p := Pt(1e4, 1e4)
	q := Pt(-1e4-1, -1e4)
	want := p.X*q.Y - p.Y*q.X
	if got := p.Cross(q); got != want {
		t.Errorf("Cross = %v, want %v", got, want)
	}
}

func TestPoint_Normalize(t *testing.T) {
	dir, length := Pt(3, 4).Normalize()
	if math.Abs(length-5) > epsilon {
		t.Errorf("length = %v, want 5", length)
	}
	if !pointsEqual(dir, Pt(0.6, 0.8), epsilon) {
		t.Errorf("dir = %v, want (0.6, 0.8)", dir)
	}

	dir, length = Pt(0, 0).Normalize()
	if length != 0 || dir != (Point{}) {
		t.Errorf("zero vector: got %v, %v", dir, length)
	}
}

func TestPoint_PerpDistance(t *testing.T) {
	if !pointsEqual(Pt(1, 0).Perp(), Pt(0, 1), epsilon) {
		t.Errorf("Perp = %v, want (0, 1)", Pt(1, 0).Perp())
	}
	if d := Pt(0, 0).Distance(Pt(1, 1)); math.Abs(d-math.Sqrt2) > epsilon {
		t.Errorf("Distance = %v, want sqrt(2)", d)
	}
}

func TestOrient2D(t *testing.T) {
	if v := orient2D(Pt(0, 0), Pt(1, 0), Pt(0, 1)); v <= 0 {
		t.Errorf("ccw triple: orient2D = %v, want > 0", v)
	}
	if v := orient2D(Pt(0, 0), Pt(0, 1), Pt(1, 0)); v >= 0 {
		t.Errorf("cw triple: orient2D = %v, want < 0", v)
	}
	if v := orient2D(Pt(0, 0), Pt(1, 1), Pt(2, 2)); v != 0 {
		t.Errorf("collinear triple: orient2D = %v, want 0", v)
	}
}
