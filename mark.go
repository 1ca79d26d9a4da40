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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Proportions of the radio dot and the mixed-state bar, as fractions of the
// control size.
const (
	// radioScale shrinks the box outline to the radio dot.  Together with
	// radioInset on both sides this adds up to the full size, so the dot
	// stays centred.
	radioScale = 0.665
	radioInset = 0.1675

	mixedLeft   = 0.25
	mixedMiddle = 0.5
	mixedRight  = 0.75
)

// MarkPath returns the mark for the given state.  For an unknown state,
// nil is returned.
//
// The unchecked state uses the same path as the checked state.  A renderer
// hides it, but it is available as the start or end of a transition.
func (c Config) MarkPath(s State) *Path {
	if s != Unchecked && s != Checked && s != Mixed {
		return nil
	}
	p := &Path{}
	c.DrawMark(p, s)
	return p
}

// DrawMark adds the mark for the given state to b.  Unknown states add
// nothing.
func (c Config) DrawMark(b Builder, s State) {
	switch s {
	case Unchecked, Checked:
		if c.MarkType == MarkRadio {
			c.drawRadio(b)
		} else {
			c.drawCheckmark(b)
		}
	case Mixed:
		if c.MarkType == MarkRadio {
			c.drawMixedRadio(b)
		} else {
			c.drawMixedCheckmark(b)
		}
	}
}

// drawCheckmark draws the polyline short arm, middle point, long arm.
func (c Config) drawCheckmark(b Builder) {
	pts := c.FeaturePoints()
	b.MoveTo(pts.ShortArmEnd)
	b.LineTo(pts.Middle)
	b.LineTo(pts.LongArmEnd)
}

// drawRadio draws a smaller copy of the box outline, centred in the box.
// The copy is built separately, so that the transformation does not touch
// anything b already holds.
func (c Config) drawRadio(b Builder) {
	dot := c.BoxOutline()
	inset := c.Size * radioInset
	dot.Transform(matrix.Scale(radioScale, radioScale).Translate(inset, inset))
	dot.Replay(b)
}

func (c Config) drawMixedCheckmark(b Builder) {
	y := c.half()
	b.MoveTo(vec.Vec2{X: c.Size * mixedLeft, Y: y})
	b.LineTo(vec.Vec2{X: c.Size * mixedMiddle, Y: y})
	b.LineTo(vec.Vec2{X: c.Size * mixedRight, Y: y})
}

// drawMixedRadio draws the bar from right to left, the opposite direction
// of the checkmark variant.
func (c Config) drawMixedRadio(b Builder) {
	y := c.half()
	b.MoveTo(vec.Vec2{X: c.Size * mixedRight, Y: y})
	b.LineTo(vec.Vec2{X: c.Size * mixedLeft, Y: y})
}

// LongCheckmarkPath returns the checkmark with its long arm extended all the
// way to the box outline.  Its end joins the start of the box outline, so
// that the two can be stroked as one continuous line.
func (c Config) LongCheckmarkPath() *Path {
	pts := c.FeaturePoints()
	p := &Path{}
	p.MoveTo(pts.ShortArmEnd)
	p.LineTo(pts.Middle)
	p.LineTo(pts.BoxIntersection)
	return p
}

// LongMixedPath returns the mixed-state bar extended to the centre line of
// the right-hand side of the box stroke.
func (c Config) LongMixedPath() *Path {
	y := c.half()
	p := &Path{}
	p.MoveTo(vec.Vec2{X: c.Size * mixedLeft, Y: y})
	p.LineTo(vec.Vec2{X: c.Size * mixedMiddle, Y: y})
	p.LineTo(vec.Vec2{X: c.Size - c.lineOffset(), Y: y})
	return p
}
