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

// Command genpdf draws every test case into a PDF file and, if Ghostscript
// is installed, renders it to a PNG for visual inspection.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/checkbox"
	"seehuhn.de/go/checkbox/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// GenPDF holds the command line options.
type GenPDF struct {
	Output string `short:"o" default:"testdata/reference" desc:"Output directory"`
	Extra  string `short:"c" default:"" desc:"YAML file with additional test cases"`
	PNG    bool   `desc:"Also render PNG files with Ghostscript"`
}

func main() {
	root := argp.NewCmd(&GenPDF{}, "Draw the checkbox test cases into PDF reference files")
	root.Parse()
	root.PrintHelp()
}

// Run generates the reference files.
func (cmd *GenPDF) Run() error {
	if err := os.MkdirAll(cmd.Output, 0755); err != nil {
		return err
	}

	all := maps.Clone(testcases.All)
	if cmd.Extra != "" {
		extra, err := testcases.Load(cmd.Extra)
		if err != nil {
			return err
		}
		all["extra"] = extra
		slog.Info("loaded extra test cases", "file", cmd.Extra, "count", len(extra))
	}

	usePNG := cmd.PNG
	if usePNG {
		if _, err := exec.LookPath("gs"); err != nil {
			slog.Warn("Ghostscript not found, skipping PNG output")
			usePNG = false
		}
	}

	for _, category := range slices.Sorted(maps.Keys(all)) {
		for _, tc := range all[category] {
			name := category + "_" + tc.Name
			if err := tc.Config.Validate(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			pdfPath := filepath.Join(cmd.Output, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Debug("wrote PDF", "file", pdfPath)

			if usePNG {
				pngPath := filepath.Join(cmd.Output, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}
	return nil
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	size := float64(tc.PixelSize())
	paper := &pdf.Rectangle{
		URx: size,
		URy: size,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, white lines: the PNG then shows coverage directly
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// PDF origin is bottom-left; the checkbox geometry is y-down.
	scale := tc.PixelScale()
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, size})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	cfg := tc.Config

	page.SetLineWidth(cfg.BoxLineWidth)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetMiterLimit(10)
	drawPath(page, checkbox.PathForBoxOutline(cfg).Data())
	page.Stroke()

	if tc.State == checkbox.Unchecked {
		// the unchecked mark exists only as a transition endpoint
		return page.Close()
	}
	mark := checkbox.PathForState(cfg, tc.State)
	drawPath(page, mark.Data())
	if mark.IsClosed() {
		page.Fill()
	} else {
		page.SetLineWidth(cfg.CheckmarkLineWidth)
		page.SetLineCap(tc.Mark.Cap)
		page.SetLineJoin(tc.Mark.Join)
		page.SetMiterLimit(tc.Mark.MiterLimit)
		page.Stroke()
	}

	return page.Close()
}

// pathWriter is the part of a PDF page used for path construction.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawPath(page pathWriter, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
