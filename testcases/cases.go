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

package testcases

import "seehuhn.de/go/checkbox"

var squareCases = []TestCase{
	// ========================================
	// Section 1: Checkmark in a rounded square
	// ========================================
	{
		Name:   "checked_24",
		Config: square(24, 1, 1, 3),
		State:  checkbox.Checked,
		Scale:  4,
		Mark:   roundStroke,
	},
	{
		Name:   "unchecked_24",
		Config: square(24, 1, 1, 3),
		State:  checkbox.Unchecked,
		Scale:  4,
		Mark:   roundStroke,
	},
	{
		Name:   "checked_100",
		Config: square(100, 2, 6, 10),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "thick_box",
		Config: square(64, 8, 6, 12),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
}

var circleCases = []TestCase{
	// ========================================
	// Section 2: Checkmark in a circle
	// ========================================
	{
		Name:   "checked_24",
		Config: circle(24, 1, 1),
		State:  checkbox.Checked,
		Scale:  4,
		Mark:   roundStroke,
	},
	{
		Name:   "checked_100",
		Config: circle(100, 2, 6),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
}

var cornerCases = []TestCase{
	// ========================================
	// Section 3: Corner radius extremes
	// ========================================
	{
		Name:   "sharp",
		Config: square(64, 2, 4, 0),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "large_radius",
		Config: square(64, 2, 4, 24),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "full_radius", // the box becomes a circle
		Config: square(64, 2, 4, 31),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
}

var angleCases = []TestCase{
	// ========================================
	// Section 4: Long arm angle through all regimes
	// ========================================
	{
		Name:   "deg_0", // right edge, horizontal ray
		Config: withAngle(square(64, 2, 4, 8), 0),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "deg_30", // right edge
		Config: withAngle(square(64, 2, 4, 8), 30),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "deg_45", // corner arc
		Config: withAngle(square(64, 2, 4, 8), 45),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "deg_70", // top edge
		Config: withAngle(square(64, 2, 4, 8), 70),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "deg_90", // top edge, vertical ray
		Config: withAngle(square(64, 2, 4, 8), 90),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "circle_deg_60",
		Config: withAngle(circle(64, 2, 4), 60),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
}

var radioCases = []TestCase{
	// ========================================
	// Section 5: Radio dot
	// ========================================
	{
		Name:   "circle_checked",
		Config: radio(circle(64, 2, 2)),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "square_checked",
		Config: radio(square(64, 2, 2, 8)),
		State:  checkbox.Checked,
		Mark:   roundStroke,
	},
	{
		Name:   "circle_mixed",
		Config: radio(circle(64, 2, 4)),
		State:  checkbox.Mixed,
		Mark:   roundStroke,
	},
}

var mixedCases = []TestCase{
	// ========================================
	// Section 6: Mixed state bar
	// ========================================
	{
		Name:   "square",
		Config: square(64, 2, 4, 8),
		State:  checkbox.Mixed,
		Mark:   roundStroke,
	},
	{
		Name:   "circle",
		Config: circle(64, 2, 4),
		State:  checkbox.Mixed,
		Mark:   roundStroke,
	},
}
