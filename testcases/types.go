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

// Package testcases holds named checkbox configurations which are used by
// the tests and by the reference generators in the subdirectories.
package testcases

import (
	"math"

	"seehuhn.de/go/checkbox"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single checkbox to draw.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Config checkbox.Config // geometry of the control
	State  checkbox.State  // which mark to draw
	Scale  float64         // device pixels per unit (zero means 1)
	Mark   Stroke          // how the mark is stroked
}

// Stroke holds the line style for the mark.  The line width is taken
// from the configuration.
type Stroke struct {
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// roundStroke is the usual style for checkmarks.
var roundStroke = Stroke{
	Cap:        graphics.LineCapRound,
	Join:       graphics.LineJoinRound,
	MiterLimit: 10,
}

// PixelScale returns the scale factor from control units to pixels.
func (tc TestCase) PixelScale() float64 {
	if tc.Scale == 0 {
		return 1
	}
	return tc.Scale
}

// PixelSize returns the side length of the rendered image in pixels.
func (tc TestCase) PixelSize() int {
	return int(math.Ceil(tc.Config.Size * tc.PixelScale()))
}

// square is a helper to create a checkmark-in-square configuration.
func square(size, boxWidth, markWidth, radius float64) checkbox.Config {
	cfg := checkbox.DefaultConfig(size)
	cfg.BoxLineWidth = boxWidth
	cfg.CheckmarkLineWidth = markWidth
	cfg.CornerRadius = radius
	return cfg
}

// circle is a helper to create a checkmark-in-circle configuration.
func circle(size, boxWidth, markWidth float64) checkbox.Config {
	cfg := checkbox.DefaultConfig(size)
	cfg.BoxType = checkbox.BoxCircle
	cfg.BoxLineWidth = boxWidth
	cfg.CheckmarkLineWidth = markWidth
	cfg.CornerRadius = 0
	return cfg
}

// withAngle returns cfg with the long arm angle (in degrees) set for both
// box types.
func withAngle(cfg checkbox.Config, deg float64) checkbox.Config {
	theta := deg * math.Pi / 180
	cfg.Shape.LongArmBoxIntersectionAngle = checkbox.Pair{Circle: theta, Box: theta}
	return cfg
}

// radio returns cfg with the radio mark selected.
func radio(cfg checkbox.Config) checkbox.Config {
	cfg.MarkType = checkbox.MarkRadio
	return cfg
}
