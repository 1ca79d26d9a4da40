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

func TestMixedCheckmark(t *testing.T) {
	for _, size := range []float64{10, 24, 100} {
		cfg := DefaultConfig(size)
		pts := cfg.MarkPath(Mixed).Points()
		want := []vec.Vec2{
			{X: size / 4, Y: size / 2},
			{X: size / 2, Y: size / 2},
			{X: 3 * size / 4, Y: size / 2},
		}
		if len(pts) != len(want) {
			t.Fatalf("size %g: got %d points, want %d", size, len(pts), len(want))
		}
		for i := range want {
			if pts[i] != want[i] {
				t.Errorf("size %g, point %d: got %v, want %v", size, i, pts[i], want[i])
			}
		}
	}
}

func TestMixedRadio(t *testing.T) {
	cfg := DefaultConfig(40)
	cfg.MarkType = MarkRadio
	pts := cfg.MarkPath(Mixed).Points()
	want := []vec.Vec2{{X: 30, Y: 20}, {X: 10, Y: 20}}
	if len(pts) != 2 || pts[0] != want[0] || pts[1] != want[1] {
		t.Errorf("got %v, want %v", pts, want)
	}
}

func TestUncheckedMatchesChecked(t *testing.T) {
	for _, mark := range []MarkType{MarkCheckmark, MarkRadio} {
		for _, box := range []BoxType{BoxCircle, BoxSquare} {
			cfg := DefaultConfig(24)
			cfg.BoxType = box
			cfg.MarkType = mark

			a := cfg.MarkPath(Unchecked)
			b := cfg.MarkPath(Checked)
			if len(a.Ops) != len(b.Ops) {
				t.Fatalf("%s/%s: %d vs %d ops", box, mark, len(a.Ops), len(b.Ops))
			}
			for i := range a.Ops {
				if a.Ops[i] != b.Ops[i] {
					t.Errorf("%s/%s, op %d: %+v vs %+v", box, mark, i, a.Ops[i], b.Ops[i])
				}
			}
		}
	}
}

func TestUnknownState(t *testing.T) {
	cfg := DefaultConfig(24)
	if p := cfg.MarkPath(State(3)); p != nil {
		t.Errorf("got %v, want nil", p)
	}

	p := &Path{}
	cfg.DrawMark(p, State(-1))
	if len(p.Ops) != 0 {
		t.Errorf("unknown state added %d operations", len(p.Ops))
	}
}

// TestRadioDot checks that the radio dot is the box outline, scaled by
// radioScale about the centre of the control.
func TestRadioDot(t *testing.T) {
	for _, box := range []BoxType{BoxCircle, BoxSquare} {
		cfg := DefaultConfig(64)
		cfg.BoxType = box
		cfg.MarkType = MarkRadio
		cfg.BoxLineWidth = 2
		cfg.CornerRadius = 8

		outline := cfg.BoxOutline()
		dot := cfg.MarkPath(Checked)
		if len(dot.Ops) != len(outline.Ops) {
			t.Fatalf("%s: %d ops, want %d", box, len(dot.Ops), len(outline.Ops))
		}
		if !dot.IsClosed() {
			t.Errorf("%s: radio dot is not closed", box)
		}

		centre := vec.Vec2{X: 32, Y: 32}
		scaled := func(v vec.Vec2) vec.Vec2 {
			return centre.Add(v.Sub(centre).Mul(radioScale))
		}
		for i, op := range outline.Ops {
			got := dot.Ops[i]
			switch op.Kind {
			case OpMoveTo, OpLineTo:
				if !near(got.Pt, scaled(op.Pt), 1e-9) {
					t.Errorf("%s, op %d: got %v, want %v", box, i, got.Pt, scaled(op.Pt))
				}
			case OpArc:
				if !near(got.StartPoint(), scaled(op.StartPoint()), 1e-9) ||
					!near(got.EndPoint(), scaled(op.EndPoint()), 1e-9) {
					t.Errorf("%s, op %d: arc %+v does not match %+v", box, i, got, op)
				}
				if math.Abs(got.Radius-op.Radius*radioScale) > 1e-9 {
					t.Errorf("%s, op %d: radius %g, want %g", box, i, got.Radius, op.Radius*radioScale)
				}
				if got.Clockwise != op.Clockwise {
					t.Errorf("%s, op %d: direction changed", box, i)
				}
			}
		}
	}
}

func TestLongCheckmark(t *testing.T) {
	for _, box := range []BoxType{BoxCircle, BoxSquare} {
		cfg := DefaultConfig(48)
		cfg.BoxType = box
		pts := cfg.FeaturePoints()

		long := cfg.LongCheckmarkPath().Points()
		if len(long) != 3 {
			t.Fatalf("%s: %d points", box, len(long))
		}
		if long[0] != pts.ShortArmEnd || long[1] != pts.Middle || long[2] != pts.BoxIntersection {
			t.Errorf("%s: got %v", box, long)
		}

		// around a circle, the long checkmark joins the start of the outline
		if box == BoxCircle {
			start := cfg.BoxOutline().Ops[0].StartPoint()
			if !near(long[2], start, 1e-9) {
				t.Errorf("long checkmark ends at %v, outline starts at %v", long[2], start)
			}
		}
	}
}

func TestLongMixed(t *testing.T) {
	cfg := DefaultConfig(24)
	cfg.BoxLineWidth = 2
	pts := cfg.LongMixedPath().Points()
	want := []vec.Vec2{{X: 6, Y: 12}, {X: 12, Y: 12}, {X: 23, Y: 12}}
	if len(pts) != 3 {
		t.Fatalf("got %d points", len(pts))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}
