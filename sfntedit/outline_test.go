// seehuhn.de/go/fontgraft - copy glyphs from one font into another
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package sfntedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
)

func square() *outline {
	return &outline{
		isQuad: true,
		contours: []contour{
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 100, Y: 0, OnCurve: true},
				{X: 100, Y: 100, OnCurve: true},
				{X: 0, Y: 100, OnCurve: true},
			},
		},
	}
}

func TestTransformScale(t *testing.T) {
	o := square()
	o.transform(matrix.Scale(2, 0.5))

	want := funit.Rect16{LLx: 0, LLy: 0, URx: 200, URy: 50}
	if d := cmp.Diff(want, o.bbox()); d != "" {
		t.Errorf("unexpected bounding box (-want +got):\n%s", d)
	}
}

func TestTransformTranslate(t *testing.T) {
	o := square()
	o.transform(matrix.Translate(10, -20))

	want := funit.Rect16{LLx: 10, LLy: -20, URx: 110, URy: 80}
	if d := cmp.Diff(want, o.bbox()); d != "" {
		t.Errorf("unexpected bounding box (-want +got):\n%s", d)
	}
}

func TestTransformCubic(t *testing.T) {
	o := &outline{
		cmds: []pathCmd{
			{Op: opMoveTo, Args: []float64{0, 0}},
			{Op: opCurveTo, Args: []float64{10, 20, 30, 40, 50, 60}},
		},
	}
	o.transform(matrix.Scale(2, 2))

	want := []pathCmd{
		{Op: opMoveTo, Args: []float64{0, 0}},
		{Op: opCurveTo, Args: []float64{20, 40, 60, 80, 100, 120}},
	}
	if d := cmp.Diff(want, o.cmds, cmp.AllowUnexported(pathCmd{})); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}
}

func TestClone(t *testing.T) {
	o := square()
	c := o.clone()
	c.transform(matrix.Scale(2, 2))

	want := funit.Rect16{LLx: 0, LLy: 0, URx: 100, URy: 100}
	if d := cmp.Diff(want, o.bbox()); d != "" {
		t.Errorf("clone shares storage with the original (-want +got):\n%s", d)
	}
}

func TestExtendContour(t *testing.T) {
	// two consecutive off-curve points, with wrap-around
	cc := contour{
		{X: 0, Y: 0, OnCurve: false},
		{X: 100, Y: 0, OnCurve: true},
		{X: 100, Y: 100, OnCurve: false},
	}
	extended := extendContour(cc)

	want := contour{
		{X: 0, Y: 0, OnCurve: false},
		{X: 100, Y: 0, OnCurve: true},
		{X: 100, Y: 100, OnCurve: false},
		{X: 50, Y: 50, OnCurve: true}, // implied midpoint of wrap-around
	}
	if d := cmp.Diff(want, extended, cmp.AllowUnexported(point{})); d != "" {
		t.Errorf("unexpected extended contour (-want +got):\n%s", d)
	}
}

func TestExtendContourNoOnCurve(t *testing.T) {
	cc := contour{
		{X: 0, Y: 0, OnCurve: false},
		{X: 100, Y: 0, OnCurve: false},
	}
	if got := extendContour(cc); got != nil {
		t.Errorf("contour without on-curve points not rejected: %v", got)
	}
}

func TestToCubicLines(t *testing.T) {
	cmds := square().toCubic()

	want := []pathCmd{
		{Op: opMoveTo, Args: []float64{0, 0}},
		{Op: opLineTo, Args: []float64{100, 0}},
		{Op: opLineTo, Args: []float64{100, 100}},
		{Op: opLineTo, Args: []float64{0, 100}},
	}
	if d := cmp.Diff(want, cmds, cmp.AllowUnexported(pathCmd{})); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}
}

// TestToCubicCurve checks the degree elevation of one quadratic segment:
// the cubic control points must sit at 1/3 and 2/3 between the end points
// and the quadratic control point.
func TestToCubicCurve(t *testing.T) {
	o := &outline{
		isQuad: true,
		contours: []contour{
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 30, Y: 60, OnCurve: false},
				{X: 60, Y: 0, OnCurve: true},
			},
		},
	}
	cmds := o.toCubic()

	// The closing line back to the start point is implied.
	want := []pathCmd{
		{Op: opMoveTo, Args: []float64{0, 0}},
		{Op: opCurveTo, Args: []float64{20, 40, 40, 40, 60, 0}},
	}
	if d := cmp.Diff(want, cmds, cmp.AllowUnexported(pathCmd{})); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}
}
