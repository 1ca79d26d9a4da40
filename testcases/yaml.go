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

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/checkbox"
	"seehuhn.de/go/pdf/graphics"
)

// File is the layout of a YAML file with additional test cases:
//
//	cases:
//	  - name: big_circle
//	    size: 128
//	    box: circle
//	    state: checked
//	    box_line_width: 4
//	    checkmark_line_width: 10
type File struct {
	Cases []CaseSpec `yaml:"cases"`
}

// CaseSpec describes one test case in a YAML file.  Omitted fields take
// the values of [checkbox.DefaultConfig].
type CaseSpec struct {
	Name               string   `yaml:"name"`
	Size               float64  `yaml:"size"`
	Box                string   `yaml:"box,omitempty"`   // "circle" or "square"
	Mark               string   `yaml:"mark,omitempty"`  // "checkmark" or "radio"
	State              string   `yaml:"state,omitempty"` // "unchecked", "checked" or "mixed"
	Scale              float64  `yaml:"scale,omitempty"`
	BoxLineWidth       *float64 `yaml:"box_line_width,omitempty"`
	CheckmarkLineWidth *float64 `yaml:"checkmark_line_width,omitempty"`
	CornerRadius       *float64 `yaml:"corner_radius,omitempty"`
	AngleDeg           *float64 `yaml:"angle_deg,omitempty"`
	Cap                string   `yaml:"cap,omitempty"`  // "butt", "round" or "square"
	Join               string   `yaml:"join,omitempty"` // "miter", "round" or "bevel"
}

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// Load reads additional test cases from a YAML file.
// A missing file is not an error and gives no test cases.
func Load(fname string) ([]TestCase, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", fname, err)
	}
	return Parse(data)
}

// Parse decodes test cases from YAML data and validates them.
func Parse(data []byte) ([]TestCase, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse test cases: %w", err)
	}

	res := make([]TestCase, 0, len(f.Cases))
	for i, cs := range f.Cases {
		tc, err := cs.TestCase()
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		res = append(res, tc)
	}
	return res, nil
}

// TestCase converts the YAML entry into a validated test case.
func (s CaseSpec) TestCase() (TestCase, error) {
	if !validName.MatchString(s.Name) {
		return TestCase{}, fmt.Errorf("invalid name %q", s.Name)
	}

	cfg := checkbox.DefaultConfig(s.Size)
	switch s.Box {
	case "", "square":
	case "circle":
		cfg.BoxType = checkbox.BoxCircle
	default:
		return TestCase{}, fmt.Errorf("%s: unknown box type %q", s.Name, s.Box)
	}
	switch s.Mark {
	case "", "checkmark":
	case "radio":
		cfg.MarkType = checkbox.MarkRadio
	default:
		return TestCase{}, fmt.Errorf("%s: unknown mark type %q", s.Name, s.Mark)
	}
	if s.BoxLineWidth != nil {
		cfg.BoxLineWidth = *s.BoxLineWidth
	}
	if s.CheckmarkLineWidth != nil {
		cfg.CheckmarkLineWidth = *s.CheckmarkLineWidth
	}
	if s.CornerRadius != nil {
		cfg.CornerRadius = *s.CornerRadius
	}
	if s.AngleDeg != nil {
		cfg = withAngle(cfg, *s.AngleDeg)
	}
	if err := cfg.Validate(); err != nil {
		return TestCase{}, fmt.Errorf("%s: %w", s.Name, err)
	}

	tc := TestCase{
		Name:   s.Name,
		Config: cfg,
		Scale:  s.Scale,
		Mark:   roundStroke,
	}

	switch s.State {
	case "", "checked":
		tc.State = checkbox.Checked
	case "unchecked":
		tc.State = checkbox.Unchecked
	case "mixed":
		tc.State = checkbox.Mixed
	default:
		return TestCase{}, fmt.Errorf("%s: unknown state %q", s.Name, s.State)
	}

	switch s.Cap {
	case "", "round":
	case "butt":
		tc.Mark.Cap = graphics.LineCapButt
	case "square":
		tc.Mark.Cap = graphics.LineCapSquare
	default:
		return TestCase{}, fmt.Errorf("%s: unknown line cap %q", s.Name, s.Cap)
	}
	switch s.Join {
	case "", "round":
	case "miter":
		tc.Mark.Join = graphics.LineJoinMiter
	case "bevel":
		tc.Mark.Join = graphics.LineJoinBevel
	default:
		return TestCase{}, fmt.Errorf("%s: unknown line join %q", s.Name, s.Join)
	}

	return tc, nil
}
