package arcline

// Test polylines exercising the offset pipeline. Pline01 reproduces the
// project's long-standing stress fixture: a 19-vertex outline mixing
// straight spans, half circles, a near-degenerate sliver and one huge
// bulge.

// Pline01 returns the mixed segment/arc stress fixture.
func Pline01() Polyline {
	return Polyline{
		PV(Pt(100, 100), 1.5),
		PV(Pt(100, 160), 0),
		PV(Pt(120, 200), 0),
		PV(Pt(128, 192), 0),
		PV(Pt(128, 205), 0),
		PV(Pt(136, 197), 0),
		PV(Pt(136, 250), 0),
		PV(Pt(110, 250), -1),
		PV(Pt(78, 250), 0),
		PV(Pt(50, 250), -1),
		PV(Pt(38, 250), 0),
		PV(Pt(0.001, 250), 100000),
		PV(Pt(0, 250), 0),
		PV(Pt(-52, 250), 0),
		PV(Pt(-23.429621235520095, 204.88318696736243), -0.6068148963145962),
		PV(Pt(82, 150), 0),
		PV(Pt(50, 150), 1),
		PV(Pt(-20, 150), 0),
		PV(Pt(0, 100), 0),
	}
}

// Pline02 returns a small convex outline with two rounded corners.
func Pline02() Polyline {
	return Polyline{
		PV(Pt(100, 100), 0.5),
		PV(Pt(200, 100), 0.5),
		PV(Pt(300, 200), -0.5),
		PV(Pt(200, 300), -0.5),
		PV(Pt(100, 300), 0.5),
		PV(Pt(0, 200), 0.5),
	}
}
