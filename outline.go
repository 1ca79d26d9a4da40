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

// BoxOutline returns the closed outline of the box, running along the
// centre line of the box stroke.
func (c Config) BoxOutline() *Path {
	p := &Path{}
	c.DrawBoxOutline(p)
	return p
}

// DrawBoxOutline adds the box outline to b.
func (c Config) DrawBoxOutline(b Builder) {
	if c.BoxType == BoxCircle {
		c.drawCircleOutline(b)
	} else {
		c.drawSquareOutline(b)
	}
}

// drawCircleOutline draws one full clockwise turn, starting and ending at
// the point where the long arm of the checkmark meets the circle.
func (c Config) drawCircleOutline(b Builder) {
	theta := c.Shape.LongArmBoxIntersectionAngle.Circle
	b.Arc(c.centerPoint(), c.circleRadius(), -theta, 2*math.Pi-theta, true)
	b.Close()
}

// drawSquareOutline draws the rounded square clockwise, starting half way
// around the top-right corner.
func (c Config) drawSquareOutline(b Builder) {
	lo := c.lineOffset()
	r := max(c.CornerRadius, 0)

	// corner centres
	tr := vec.Vec2{X: c.Size - lo - r, Y: lo + r}
	br := vec.Vec2{X: c.Size - lo - r, Y: c.Size - lo - r}
	bl := vec.Vec2{X: lo + r, Y: c.Size - lo - r}
	tl := vec.Vec2{X: lo + r, Y: lo + r}

	if r == 0 {
		b.MoveTo(tr)
		b.LineTo(br)
		b.LineTo(bl)
		b.LineTo(tl)
		b.LineTo(tr)
		b.Close()
		return
	}

	offset := r * math.Sqrt2 / 2
	b.MoveTo(vec.Vec2{X: tr.X + offset, Y: tr.Y - offset})
	b.Arc(tr, r, -0.25*math.Pi, 0, true)
	b.LineTo(vec.Vec2{X: c.Size - lo, Y: br.Y})
	b.Arc(br, r, 0, 0.5*math.Pi, true)
	b.LineTo(vec.Vec2{X: bl.X, Y: c.Size - lo})
	b.Arc(bl, r, 0.5*math.Pi, math.Pi, true)
	b.LineTo(vec.Vec2{X: lo, Y: tl.Y})
	b.Arc(tl, r, math.Pi, 1.5*math.Pi, true)
	b.LineTo(vec.Vec2{X: tr.X, Y: lo})
	b.Arc(tr, r, 1.5*math.Pi, 1.75*math.Pi, true)
	b.Close()
}
