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

import "seehuhn.de/go/geom/vec"

// Points holds the points which define the checkmark.
type Points struct {
	// BoxIntersection is where the line of the long arm meets the centre
	// line of the box stroke.  It fixes the direction of the long arm and
	// is not drawn itself.
	BoxIntersection vec.Vec2

	LongArmEnd  vec.Vec2 // upper right end of the checkmark
	Middle      vec.Vec2 // vertex at the bottom of the checkmark
	ShortArmEnd vec.Vec2 // upper left end of the checkmark
}

// FeaturePoints computes all checkmark points.
func (c Config) FeaturePoints() Points {
	box := c.BoxIntersectionPoint()
	middle := c.MiddlePoint()
	return Points{
		BoxIntersection: box,
		LongArmEnd:      pointTowards(middle, box, c.longArmLength()),
		Middle:          middle,
		ShortArmEnd:     c.ShortArmEndPoint(),
	}
}

// BoxIntersectionPoint returns the point where the ray from the centre at
// the long arm angle crosses the centre line of the box stroke.
func (c Config) BoxIntersectionPoint() vec.Vec2 {
	theta := c.Shape.LongArmBoxIntersectionAngle.For(c.BoxType)
	if c.BoxType == BoxCircle {
		return pointOnCircle(c.centerPoint(), c.circleRadius(), theta)
	}
	p, _ := c.squareBoundaryPoint(theta)
	return p
}

// MiddlePoint returns the vertex of the checkmark.
func (c Config) MiddlePoint() vec.Vec2 {
	r := c.Shape.MiddlePointRadius.For(c.BoxType)
	o := c.Shape.MiddlePointOffset.For(c.BoxType)
	return vec.Vec2{
		X: c.half() + c.Size*o,
		Y: c.half() + c.Size*r,
	}
}

// ShortArmEndPoint returns the free end of the short arm.
func (c Config) ShortArmEndPoint() vec.Vec2 {
	r := c.Shape.ShortArmRadius.For(c.BoxType)
	o := c.Shape.ShortArmOffset.For(c.BoxType)
	return vec.Vec2{
		X: c.half() - c.Size*r,
		Y: c.half() + c.Size*o,
	}
}

// LongArmEndPoint returns the free end of the long arm: the point at
// distance Size·LongArmRadius from the middle point, in the direction of
// the box intersection point.
func (c Config) LongArmEndPoint() vec.Vec2 {
	return pointTowards(c.MiddlePoint(), c.BoxIntersectionPoint(), c.longArmLength())
}

func (c Config) longArmLength() float64 {
	return c.Size * c.Shape.LongArmRadius.For(c.BoxType)
}

func (c Config) centerPoint() vec.Vec2 {
	return vec.Vec2{X: c.half(), Y: c.half()}
}

// circleRadius is the radius of the centre line of a circular box stroke.
func (c Config) circleRadius() float64 {
	return (c.Size - c.BoxLineWidth) / 2
}
