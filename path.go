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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Builder is the minimal vector path capability the geometry code needs.
//
// Angles passed to Arc are measured in the control's coordinate space, where
// the y-axis points down: the point at angle a is center + radius·(cos a,
// sin a).  Clockwise arcs, as seen on screen, have increasing angles.
// If a path is already open, Arc first draws a straight line to the start
// of the arc.
type Builder interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	Arc(center vec.Vec2, radius, startAngle, endAngle float64, clockwise bool)
	Close()

	// Transform applies m to everything added so far.  m must be a
	// similarity transformation (uniform scaling, rotation, reflection and
	// translation), so that arcs stay circular.
	Transform(m matrix.Matrix)
}

// OpKind identifies a drawing operation.
type OpKind int

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpArc
	OpClose
)

func (k OpKind) String() string {
	switch k {
	case OpMoveTo:
		return "M"
	case OpLineTo:
		return "L"
	case OpArc:
		return "A"
	case OpClose:
		return "Z"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a single recorded drawing operation.
type Op struct {
	Kind OpKind

	// Pt is the target of OpMoveTo and OpLineTo.
	Pt vec.Vec2

	// Center, Radius, Start, End and Clockwise describe an OpArc.
	Center     vec.Vec2
	Radius     float64
	Start, End float64
	Clockwise  bool
}

// Sweep returns the signed angle an arc covers, positive for clockwise
// arcs.  Arcs whose start and end angles differ by a whole number of turns
// cover one full turn.
func (op Op) Sweep() float64 {
	diff := op.End - op.Start
	s := math.Mod(diff, 2*math.Pi)
	if math.Abs(s) < sweepEpsilon || 2*math.Pi-math.Abs(s) < sweepEpsilon {
		if math.Abs(diff) < sweepEpsilon {
			return 0
		}
		s = 0
	}
	switch {
	case op.Clockwise && s <= 0:
		s += 2 * math.Pi
	case !op.Clockwise && s >= 0:
		s -= 2 * math.Pi
	}
	return s
}

// StartPoint returns the first point of an arc.
func (op Op) StartPoint() vec.Vec2 {
	return arcPoint(op.Center, op.Radius, op.Start)
}

// EndPoint returns the last point of an arc.
func (op Op) EndPoint() vec.Vec2 {
	return arcPoint(op.Center, op.Radius, op.Start+op.Sweep())
}

// sweepEpsilon is the angular tolerance used to detect full-turn arcs.
const sweepEpsilon = 1e-9

// arcPoint uses the y-down angle convention of [Builder.Arc].
func arcPoint(center vec.Vec2, radius, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

// Path records drawing operations.  It implements [Builder], and the
// recorded operations can be replayed into any other Builder.
//
// The zero value is an empty path ready to use.
type Path struct {
	Ops []Op
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt vec.Vec2) {
	p.Ops = append(p.Ops, Op{Kind: OpMoveTo, Pt: pt})
}

// LineTo adds a straight line to pt.
func (p *Path) LineTo(pt vec.Vec2) {
	p.Ops = append(p.Ops, Op{Kind: OpLineTo, Pt: pt})
}

// Arc adds a circular arc.
func (p *Path) Arc(center vec.Vec2, radius, startAngle, endAngle float64, clockwise bool) {
	p.Ops = append(p.Ops, Op{
		Kind:      OpArc,
		Center:    center,
		Radius:    radius,
		Start:     startAngle,
		End:       endAngle,
		Clockwise: clockwise,
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Ops = append(p.Ops, Op{Kind: OpClose})
}

// Transform applies the similarity transformation m to all recorded
// operations.
func (p *Path) Transform(m matrix.Matrix) {
	scale := math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
	reflect := m[0]*m[3]-m[1]*m[2] < 0
	phi := math.Atan2(m[1], m[0])

	for i := range p.Ops {
		op := &p.Ops[i]
		switch op.Kind {
		case OpMoveTo, OpLineTo:
			op.Pt = apply(m, op.Pt)
		case OpArc:
			op.Center = apply(m, op.Center)
			op.Radius *= scale
			if reflect {
				op.Start, op.End = phi-op.Start, phi-op.End
				op.Clockwise = !op.Clockwise
			} else {
				op.Start += phi
				op.End += phi
			}
		}
	}
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{Ops: append([]Op(nil), p.Ops...)}
}

// Replay sends the recorded operations to b.
func (p *Path) Replay(b Builder) {
	for _, op := range p.Ops {
		switch op.Kind {
		case OpMoveTo:
			b.MoveTo(op.Pt)
		case OpLineTo:
			b.LineTo(op.Pt)
		case OpArc:
			b.Arc(op.Center, op.Radius, op.Start, op.End, op.Clockwise)
		case OpClose:
			b.Close()
		}
	}
}

// IsClosed reports whether the path ends with a Close operation.
func (p *Path) IsClosed() bool {
	return len(p.Ops) > 0 && p.Ops[len(p.Ops)-1].Kind == OpClose
}

// NumArcs returns the number of arc operations in the path.
func (p *Path) NumArcs() int {
	n := 0
	for _, op := range p.Ops {
		if op.Kind == OpArc {
			n++
		}
	}
	return n
}

// Points returns the targets of all MoveTo and LineTo operations, in order.
// For paths without arcs these are the vertices of the polyline.
func (p *Path) Points() []vec.Vec2 {
	var pts []vec.Vec2
	for _, op := range p.Ops {
		if op.Kind == OpMoveTo || op.Kind == OpLineTo {
			pts = append(pts, op.Pt)
		}
	}
	return pts
}

// Data converts the path to a [path.Data].  Arcs are approximated by cubic
// Bézier curves, each covering at most a quarter turn.
func (p *Path) Data() *path.Data {
	res := &path.Data{}

	var current, subpathStart vec.Vec2
	inSubpath := false
	for _, op := range p.Ops {
		switch op.Kind {
		case OpMoveTo:
			res = res.MoveTo(op.Pt)
			current, subpathStart = op.Pt, op.Pt
			inSubpath = true

		case OpLineTo:
			if !inSubpath {
				res = res.MoveTo(op.Pt)
				subpathStart = op.Pt
				inSubpath = true
			} else {
				res = res.LineTo(op.Pt)
			}
			current = op.Pt

		case OpArc:
			start := op.StartPoint()
			if !inSubpath {
				res = res.MoveTo(start)
				subpathStart = start
				inSubpath = true
			} else if current.Sub(start).Length() > zeroLengthThreshold {
				res = res.LineTo(start)
			}
			res, current = appendArc(res, op)

		case OpClose:
			if inSubpath {
				res = res.Close()
				current = subpathStart
				inSubpath = false
			}
		}
	}
	return res
}

// appendArc adds the Bézier segments for an arc whose start point is the
// current point of res, and returns the new current point.
//
// For a segment of signed angle δ on a circle of radius r, the control
// points lie on the end tangents at distance 4/3·tan(δ/4)·r.
func appendArc(res *path.Data, op Op) (*path.Data, vec.Vec2) {
	sweep := op.Sweep()
	if sweep == 0 || op.Radius == 0 {
		return res, op.StartPoint()
	}

	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-sweepEpsilon)), 1)
	delta := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4) * op.Radius

	a0 := op.Start
	p0 := arcPoint(op.Center, op.Radius, a0)
	for i := 1; i <= n; i++ {
		a1 := op.Start + float64(i)*delta
		p3 := arcPoint(op.Center, op.Radius, a1)

		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		t0 := vec.Vec2{X: -sin0, Y: cos0} // unit tangents
		t1 := vec.Vec2{X: -sin1, Y: cos1}
		p1 := p0.Add(t0.Mul(k))
		p2 := p3.Sub(t1.Mul(k))

		res = res.CubeTo(p1, p2, p3)
		a0, p0 = a1, p3
	}
	return res, p0
}

// Bounds returns the bounding box of the path.
// For an empty path, the zero rectangle is returned.
func (p *Path) Bounds() rect.Rect {
	var r rect.Rect
	empty := true
	add := func(v vec.Vec2) {
		if empty {
			r = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			empty = false
			return
		}
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}

	for _, op := range p.Ops {
		switch op.Kind {
		case OpMoveTo, OpLineTo:
			add(op.Pt)
		case OpArc:
			add(op.StartPoint())
			add(op.EndPoint())

			// the extreme points in x and y which lie inside the arc
			lo, hi := op.Start, op.Start+op.Sweep()
			if lo > hi {
				lo, hi = hi, lo
			}
			for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
				add(arcPoint(op.Center, op.Radius, k*math.Pi/2))
			}
		}
	}
	return r
}
