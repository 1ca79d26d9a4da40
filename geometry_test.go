// seehuhn.de/go/checkbox - vector geometry for checkbox controls
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package checkbox

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func near(a, b vec.Vec2, eps float64) bool {
	return a.Sub(b).Length() <= eps
}

func TestPointOnCircle(t *testing.T) {
	c := vec.Vec2{X: 10, Y: 20}
	cases := []struct {
		angle float64
		want  vec.Vec2
	}{
		{0, vec.Vec2{X: 15, Y: 20}},
		{math.Pi / 2, vec.Vec2{X: 10, Y: 15}}, // y-down: up on screen
		{math.Pi, vec.Vec2{X: 5, Y: 20}},
		{3 * math.Pi / 2, vec.Vec2{X: 10, Y: 25}},
	}
	for _, tc := range cases {
		got := pointOnCircle(c, 5, tc.angle)
		if !near(got, tc.want, 1e-12) {
			t.Errorf("angle %g: got %v, want %v", tc.angle, got, tc.want)
		}
	}
}

func TestSquareBoundaryRegimes(t *testing.T) {
	cfg := DefaultConfig(100)
	cfg.BoxLineWidth = 2
	cfg.CornerRadius = 10

	cases := []struct {
		deg    float64
		regime boundaryRegime
		want   vec.Vec2
	}{
		{0, regimeRightEdge, vec.Vec2{X: 99, Y: 50}},
		{10, regimeRightEdge, vec.Vec2{X: 99, Y: 50 - 49*math.Tan(10*math.Pi/180)}},
		{80, regimeTopEdge, vec.Vec2{X: 50 + 49/math.Tan(80*math.Pi/180), Y: 1}},
		{90, regimeTopEdge, vec.Vec2{X: 50, Y: 1}},
		{45, regimeCorner, vec.Vec2{}},
	}
	for _, tc := range cases {
		theta := tc.deg * math.Pi / 180
		got, regime := cfg.squareBoundaryPoint(theta)
		if regime != tc.regime {
			t.Errorf("%g°: regime %s, want %s", tc.deg, regime, tc.regime)
			continue
		}
		if tc.regime == regimeCorner {
			corner := vec.Vec2{X: 89, Y: 11}
			if d := got.Sub(corner).Length(); math.Abs(d-10) > 1e-9 {
				t.Errorf("%g°: distance to corner centre %g, want 10", tc.deg, d)
			}
			continue
		}
		if !near(got, tc.want, 1e-9) {
			t.Errorf("%g°: got %v, want %v", tc.deg, got, tc.want)
		}
	}
}

// TestSquareBoundaryOnRay checks that every boundary point lies on the ray
// from the centre in the requested direction.
func TestSquareBoundaryOnRay(t *testing.T) {
	for _, radius := range []float64{0, 3, 10, 49} {
		cfg := DefaultConfig(100)
		cfg.BoxLineWidth = 2
		cfg.CornerRadius = radius
		for deg := 0.0; deg <= 90; deg += 0.5 {
			theta := deg * math.Pi / 180
			p, _ := cfg.squareBoundaryPoint(theta)
			d := p.Sub(vec.Vec2{X: 50, Y: 50})
			want := pointOnCircle(vec.Vec2{X: 50, Y: 50}, d.Length(), theta)
			if !near(p, want, 1e-9) {
				t.Errorf("r=%g, %g°: %v is not on the ray", radius, deg, p)
			}
		}
	}
}

func TestSquareBoundaryContinuity(t *testing.T) {
	const step = 0.25 // degrees

	for _, radius := range []float64{0, 3, 10, 30, 49} {
		cfg := DefaultConfig(100)
		cfg.BoxLineWidth = 2
		cfg.CornerRadius = radius

		// A point at distance at most 49·√2 from the centre moves by at
		// most twice that distance times the step in radians.
		maxJump := 2 * 49 * math.Sqrt2 * step * math.Pi / 180

		prev, _ := cfg.squareBoundaryPoint(0)
		for deg := step; deg <= 90; deg += step {
			p, _ := cfg.squareBoundaryPoint(deg * math.Pi / 180)
			if d := p.Sub(prev).Length(); d > maxJump {
				t.Errorf("r=%g: jump of %g at %g°", radius, d, deg)
			}
			prev = p
		}
	}
}

func TestSquareBoundaryTransition(t *testing.T) {
	cfg := DefaultConfig(100)
	cfg.BoxLineWidth = 2
	cfg.CornerRadius = 10

	// The straight top edge ends at x = 89, which the ray reaches at
	// θ = atan(49/39).
	theta := math.Atan2(49, 39)
	before, r1 := cfg.squareBoundaryPoint(theta + 1e-7)
	after, r2 := cfg.squareBoundaryPoint(theta - 1e-7)
	if r1 != regimeTopEdge || r2 != regimeCorner {
		t.Fatalf("regimes %s, %s, want top edge, corner", r1, r2)
	}
	want := vec.Vec2{X: 89, Y: 1}
	if !near(before, want, 1e-4) || !near(after, want, 1e-4) {
		t.Errorf("transition points %v, %v, want %v", before, after, want)
	}
}

func TestSquareBoundarySpecialAngles(t *testing.T) {
	cfg := DefaultConfig(24)
	for _, theta := range []float64{0, math.Pi / 2, 90 * math.Pi / 180} {
		p, _ := cfg.squareBoundaryPoint(theta)
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Errorf("θ=%g: point %v is not finite", theta, p)
		}
	}
}

func TestLineCircleIntersection(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 10, Y: 0}

	t1, t2, ok := lineCircleIntersection(a, b, vec.Vec2{X: 5, Y: 0}, 2)
	if !ok || math.Abs(t1-0.3) > 1e-12 || math.Abs(t2-0.7) > 1e-12 {
		t.Errorf("got %g, %g, %t, want 0.3, 0.7, true", t1, t2, ok)
	}

	_, _, ok = lineCircleIntersection(a, b, vec.Vec2{X: 5, Y: 3}, 2)
	if ok {
		t.Errorf("line should miss the circle")
	}

	_, _, ok = lineCircleIntersection(a, a, a, 1)
	if ok {
		t.Errorf("degenerate line should give no intersection")
	}
}

func TestPointTowards(t *testing.T) {
	from := vec.Vec2{X: 1, Y: 1}

	got := pointTowards(from, vec.Vec2{X: 1, Y: 11}, 4)
	if want := (vec.Vec2{X: 1, Y: 5}); !near(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}

	// the target closer than r: still on the side of the target
	got = pointTowards(from, vec.Vec2{X: 2, Y: 1}, 3)
	if want := (vec.Vec2{X: 4, Y: 1}); !near(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := pointTowards(from, from, 3); got != from {
		t.Errorf("degenerate: got %v, want %v", got, from)
	}
}
