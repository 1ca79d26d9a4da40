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

// Command export writes the paths generated for all test cases to JSON, so
// that they can be compared against other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/checkbox"
	"seehuhn.de/go/checkbox/testcases"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const outFile = "testdata/testcases.json"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		slog.Error("cannot create output directory", "err", err)
		os.Exit(1)
	}
	f, err := os.Create(outFile)
	if err != nil {
		slog.Error("cannot create output file", "err", err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("cannot write test cases", "err", err)
		os.Exit(1)
	}
	slog.Info("test cases exported", "file", outFile, "count", len(out.TestCases))
}

type jsonTestCase struct {
	Name               string        `json:"name"`
	Size               float64       `json:"size"`
	Box                string        `json:"box"`
	Mark               string        `json:"mark"`
	State              string        `json:"state"`
	BoxLineWidth       float64       `json:"box_line_width"`
	CheckmarkLineWidth float64       `json:"checkmark_line_width"`
	CornerRadius       float64       `json:"corner_radius,omitempty"`
	LineCap            string        `json:"line_cap"`
	LineJoin           string        `json:"line_join"`
	Points             *jsonPoints   `json:"points,omitempty"`
	Outline            []jsonSegment `json:"outline"`
	MarkPath           []jsonSegment `json:"mark_path"`
}

type jsonPoints struct {
	BoxIntersection []float64 `json:"box_intersection"`
	LongArmEnd      []float64 `json:"long_arm_end"`
	Middle          []float64 `json:"middle"`
	ShortArmEnd     []float64 `json:"short_arm_end"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	cfg := tc.Config
	jtc := jsonTestCase{
		Name:               category + "_" + tc.Name,
		Size:               cfg.Size,
		Box:                cfg.BoxType.String(),
		Mark:               cfg.MarkType.String(),
		State:              tc.State.String(),
		BoxLineWidth:       cfg.BoxLineWidth,
		CheckmarkLineWidth: cfg.CheckmarkLineWidth,
		LineCap:            tc.Mark.Cap.String(),
		LineJoin:           tc.Mark.Join.String(),
		Outline:            pathToJSON(checkbox.PathForBoxOutline(cfg).Data()),
		MarkPath:           pathToJSON(checkbox.PathForState(cfg, tc.State).Data()),
	}
	if cfg.BoxType == checkbox.BoxSquare {
		jtc.CornerRadius = cfg.CornerRadius
	}
	if cfg.MarkType == checkbox.MarkCheckmark {
		pts := cfg.FeaturePoints()
		jtc.Points = &jsonPoints{
			BoxIntersection: pair(pts.BoxIntersection),
			LongArmEnd:      pair(pts.LongArmEnd),
			Middle:          pair(pts.Middle),
			ShortArmEnd:     pair(pts.ShortArmEnd),
		}
	}
	return jtc
}

func pair(v vec.Vec2) []float64 {
	return []float64{v.X, v.Y}
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = pair(pt)
		}
		segs = append(segs, seg)
	}
	return segs
}
