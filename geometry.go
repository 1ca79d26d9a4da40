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

	"seehuhn.de/go/geom/vec"
)

// Numerical tolerances for the geometry code.
const (
	// zeroLengthThreshold is the length below which a direction vector is
	// treated as degenerate.
	zeroLengthThreshold = 1e-9

	// angleEpsilon is how close sin θ or cos θ must come to zero for the
	// ray at angle θ to be treated as exactly vertical or horizontal.
	angleEpsilon = 1e-12
)

// pointOnCircle returns the point at the given angle on a circle.
// The angle is counter-clockwise as seen on screen, so with the y-axis
// pointing down the y-coordinate decreases for angles in (0, π).
func pointOnCircle(center vec.Vec2, radius, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: center.X + radius*cos,
		Y: center.Y - radius*sin,
	}
}

// boundaryRegime identifies which part of a rounded square outline a ray
// from the centre leaves through.
type boundaryRegime int

const (
	regimeTopEdge boundaryRegime = iota
	regimeRightEdge
	regimeCorner
)

func (r boundaryRegime) String() string {
	switch r {
	case regimeTopEdge:
		return "top edge"
	case regimeRightEdge:
		return "right edge"
	default:
		return "corner"
	}
}

// squareBoundaryPoint returns the point where the ray from the centre of the
// control at angle theta crosses the centre line of the rounded square's
// stroke.  Only the top-right quarter is handled, so theta is expected to
// lie in [0, π/2].
//
// The three regimes are tried in order: the straight part of the top edge,
// the straight part of the right edge, and finally the top-right corner arc.
// Neighbouring regimes meet where the straight edges join the arc, so the
// result is continuous in theta.
func (c Config) squareBoundaryPoint(theta float64) (vec.Vec2, boundaryRegime) {
	lo := c.lineOffset()
	mid := c.half()
	reach := mid - lo // centre to stroke centre line of each edge

	radius := min(max(c.CornerRadius, 0), max(reach, 0))
	corner := vec.Vec2{X: c.Size - lo - radius, Y: lo + radius}

	sin, cos := math.Sincos(theta)
	if math.Abs(cos) < angleEpsilon {
		return vec.Vec2{X: mid, Y: lo}, regimeTopEdge
	}
	if math.Abs(sin) < angleEpsilon {
		return vec.Vec2{X: c.Size - lo, Y: mid}, regimeRightEdge
	}

	edgeX := mid + reach*cos/sin
	if edgeX <= corner.X {
		return vec.Vec2{X: edgeX, Y: lo}, regimeTopEdge
	}

	edgeY := mid - reach*sin/cos
	if edgeY >= corner.Y {
		return vec.Vec2{X: c.Size - lo, Y: edgeY}, regimeRightEdge
	}

	// The ray leaves through the corner arc.  With o the centre of the
	// control, u the unit direction and w = o - corner, the exit point o+t·u
	// solves t² + 2(u·w)t + |w|² - r² = 0; the exit is the larger root.
	o := vec.Vec2{X: mid, Y: mid}
	u := vec.Vec2{X: cos, Y: -sin}
	w := o.Sub(corner)
	b := u.Dot(w)
	disc := b*b - w.Dot(w) + radius*radius
	t := -b + math.Sqrt(max(disc, 0))
	return o.Add(u.Mul(t)), regimeCorner
}

// lineCircleIntersection intersects the line a + t·(b-a) with a circle and
// returns the two parameters t1 ≤ t2 of the intersection points.
// If the line misses the circle, or a and b coincide, ok is false.
func lineCircleIntersection(a, b, center vec.Vec2, radius float64) (t1, t2 float64, ok bool) {
	d := b.Sub(a)
	f := a.Sub(center)

	qa := d.Dot(d)
	if qa < zeroLengthThreshold*zeroLengthThreshold {
		return 0, 0, false
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - radius*radius

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa), true
}

// pointTowards returns the point at distance r from `from`, on the line
// through `from` and `towards`, on the side of `towards`.
// Of the two intersections of the line with the circle of radius r around
// `from`, the one whose parameter is closer to `towards` (t = 1) is used.
// If the two points coincide, `from` is returned.
func pointTowards(from, towards vec.Vec2, r float64) vec.Vec2 {
	t1, t2, ok := lineCircleIntersection(from, towards, from, r)
	if !ok {
		return from
	}
	t := t2
	if math.Abs(t1-1) < math.Abs(t2-1) {
		t = t1
	}
	return from.Add(towards.Sub(from).Mul(t))
}
