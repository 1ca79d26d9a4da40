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

// Package checkbox computes the vector outlines of a tri-state checkbox
// control: the box (a circle or a rounded square) and the mark drawn inside
// it (a checkmark, a radio dot, or the bar of the mixed state).
//
// All geometry lives in the control's local coordinate space: the origin is
// the top-left corner of the bounding square [0,Size]×[0,Size] and the
// y-axis points down.
//
// A [Config] is a plain value. Every method works on its own copy and
// nothing is cached, so a Config can be shared between goroutines as long
// as nobody modifies it while a computation is reading it.
package checkbox

import (
	"errors"
	"fmt"
	"math"
)

// BoxType selects the shape of the box outline.
type BoxType int

const (
	// BoxCircle draws the box as a circle.
	BoxCircle BoxType = iota

	// BoxSquare draws the box as a square with rounded corners.
	// A corner radius of zero gives sharp corners.
	BoxSquare
)

func (b BoxType) String() string {
	switch b {
	case BoxCircle:
		return "circle"
	case BoxSquare:
		return "square"
	default:
		return fmt.Sprintf("BoxType(%d)", int(b))
	}
}

// MarkType selects what is drawn inside the box.
type MarkType int

const (
	MarkCheckmark MarkType = iota
	MarkRadio
)

func (m MarkType) String() string {
	switch m {
	case MarkCheckmark:
		return "checkmark"
	case MarkRadio:
		return "radio"
	default:
		return fmt.Sprintf("MarkType(%d)", int(m))
	}
}

// State is the logical state of a checkbox.
type State int

const (
	Unchecked State = iota
	Checked
	Mixed
)

func (s State) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Pair holds one shape parameter for both box types.  The same feature of
// the checkmark sits at a different normalised distance inside a circle
// than inside a square.
type Pair struct {
	Circle float64
	Box    float64
}

// For returns the value which applies to the given box type.
func (p Pair) For(b BoxType) float64 {
	if b == BoxCircle {
		return p.Circle
	}
	return p.Box
}

// ShapeParams describes the checkmark in units of the control size.
// Radii and offsets are fractions of Size, measured from the centre of the
// control.
type ShapeParams struct {
	// LongArmBoxIntersectionAngle is the angle (in radians, counter-clockwise
	// from the positive x-axis) of the ray from the centre whose exit point
	// through the box outline the long arm points at.
	LongArmBoxIntersectionAngle Pair

	// LongArmRadius is the length of the visible long arm.
	LongArmRadius Pair

	// MiddlePointRadius and MiddlePointOffset locate the vertex of the
	// checkmark below and beside the centre.
	MiddlePointRadius Pair
	MiddlePointOffset Pair

	// ShortArmRadius and ShortArmOffset locate the left end of the short arm.
	ShortArmRadius Pair
	ShortArmOffset Pair
}

// DefaultShapeParams returns the standard checkmark proportions.
func DefaultShapeParams() ShapeParams {
	const deg45 = 45 * math.Pi / 180
	return ShapeParams{
		LongArmBoxIntersectionAngle: Pair{Circle: deg45, Box: deg45},
		LongArmRadius:               Pair{Circle: 0.22, Box: 0.33},
		MiddlePointRadius:           Pair{Circle: 0.133, Box: 0.1995},
		MiddlePointOffset:           Pair{Circle: -0.04, Box: -0.06},
		ShortArmRadius:              Pair{Circle: 0.17, Box: 0.255},
		ShortArmOffset:              Pair{Circle: 0.02, Box: 0.03},
	}
}

// Config is the complete description of a checkbox's geometry.
type Config struct {
	// Size is the side length of the square the control occupies.
	Size float64

	// CheckmarkLineWidth is the stroke width used for the mark.
	// The geometry does not depend on it; it is carried for renderers.
	CheckmarkLineWidth float64

	// BoxLineWidth is the stroke width of the box outline.  Outline paths
	// run along the centre of this stroke.
	BoxLineWidth float64

	// CornerRadius is the radius of the rounded corners of a BoxSquare
	// outline.  It is ignored for BoxCircle.
	CornerRadius float64

	BoxType  BoxType
	MarkType MarkType

	Shape ShapeParams
}

// DefaultConfig returns a checkmark-in-square configuration of the given
// size with unit line widths and a corner radius of 3.
func DefaultConfig(size float64) Config {
	return Config{
		Size:               size,
		CheckmarkLineWidth: 1,
		BoxLineWidth:       1,
		CornerRadius:       3,
		BoxType:            BoxSquare,
		MarkType:           MarkCheckmark,
		Shape:              DefaultShapeParams(),
	}
}

// ErrInvalidConfig is wrapped by all errors returned from [Config.Validate].
var ErrInvalidConfig = errors.New("invalid checkbox configuration")

// Validate checks that the configuration is inside the range where the
// geometry is well defined.
//
// The path methods do not call Validate.  Outside the valid range they still
// return a path, but its shape is not meaningful.
func (c Config) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"Size", c.Size},
		{"CheckmarkLineWidth", c.CheckmarkLineWidth},
		{"BoxLineWidth", c.BoxLineWidth},
		{"CornerRadius", c.CornerRadius},
		{"LongArmBoxIntersectionAngle", c.Shape.LongArmBoxIntersectionAngle.For(c.BoxType)},
		{"LongArmRadius", c.Shape.LongArmRadius.For(c.BoxType)},
		{"MiddlePointRadius", c.Shape.MiddlePointRadius.For(c.BoxType)},
		{"MiddlePointOffset", c.Shape.MiddlePointOffset.For(c.BoxType)},
		{"ShortArmRadius", c.Shape.ShortArmRadius.For(c.BoxType)},
		{"ShortArmOffset", c.Shape.ShortArmOffset.For(c.BoxType)},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}

	if c.Size <= 0 {
		return fmt.Errorf("%w: Size %g is not positive", ErrInvalidConfig, c.Size)
	}
	if c.CheckmarkLineWidth < 0 || c.CheckmarkLineWidth > c.Size {
		return fmt.Errorf("%w: CheckmarkLineWidth %g outside [0, %g]",
			ErrInvalidConfig, c.CheckmarkLineWidth, c.Size)
	}
	if c.BoxLineWidth < 0 || c.BoxLineWidth > c.Size {
		return fmt.Errorf("%w: BoxLineWidth %g outside [0, %g]",
			ErrInvalidConfig, c.BoxLineWidth, c.Size)
	}

	switch c.BoxType {
	case BoxCircle:
	case BoxSquare:
		if c.CornerRadius < 0 || c.CornerRadius > c.Size/2 {
			return fmt.Errorf("%w: CornerRadius %g outside [0, %g]",
				ErrInvalidConfig, c.CornerRadius, c.Size/2)
		}
		// The inset corner centres must not cross over.
		if c.BoxLineWidth/2+c.CornerRadius > c.Size/2 {
			return fmt.Errorf("%w: CornerRadius %g too large for BoxLineWidth %g",
				ErrInvalidConfig, c.CornerRadius, c.BoxLineWidth)
		}
		theta := c.Shape.LongArmBoxIntersectionAngle.Box
		if theta < -angleEpsilon || theta > math.Pi/2+angleEpsilon {
			return fmt.Errorf("%w: LongArmBoxIntersectionAngle %g outside [0, π/2]",
				ErrInvalidConfig, theta)
		}
	default:
		return fmt.Errorf("%w: unknown %s", ErrInvalidConfig, c.BoxType)
	}

	switch c.MarkType {
	case MarkCheckmark, MarkRadio:
	default:
		return fmt.Errorf("%w: unknown %s", ErrInvalidConfig, c.MarkType)
	}

	return nil
}

// half returns the coordinate of the centre of the control.
func (c Config) half() float64 {
	return c.Size / 2
}

// lineOffset returns the distance from the edge of the control to the
// centre line of the box stroke.
func (c Config) lineOffset() float64 {
	return c.BoxLineWidth / 2
}
