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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
)

// A point is one point of a quadratic (TrueType) contour.  Off-curve
// points are the control points of quadratic Bézier segments.
type point struct {
	X, Y    float64
	OnCurve bool
}

// A contour is a closed part of a quadratic outline.
type contour []point

type pathOp int

const (
	opMoveTo pathOp = iota
	opLineTo
	opCurveTo
)

// A pathCmd is one drawing command of a cubic (CFF) outline.  MoveTo and
// LineTo take one coordinate pair, CurveTo takes three.
type pathCmd struct {
	Op   pathOp
	Args []float64
}

// An outline holds glyph geometry in editable form, between Paste and
// Write.  Exactly one of the two representations is used: contours for
// outlines destined for a glyf font, cmds for outlines destined for a CFF
// font.
type outline struct {
	contours []contour
	cmds     []pathCmd
	isQuad   bool
}

func (o *outline) clone() *outline {
	res := &outline{isQuad: o.isQuad}
	if o.isQuad {
		res.contours = make([]contour, len(o.contours))
		for i, cc := range o.contours {
			res.contours[i] = append(contour{}, cc...)
		}
	} else {
		res.cmds = make([]pathCmd, len(o.cmds))
		for i, cmd := range o.cmds {
			res.cmds[i] = pathCmd{Op: cmd.Op, Args: append([]float64{}, cmd.Args...)}
		}
	}
	return res
}

func (o *outline) isEmpty() bool {
	if o.isQuad {
		return len(o.contours) == 0
	}
	return len(o.cmds) == 0
}

// transform applies m to every coordinate of the outline.
func (o *outline) transform(m matrix.Matrix) {
	if o.isQuad {
		for _, cc := range o.contours {
			for i, p := range cc {
				cc[i].X = m[0]*p.X + m[2]*p.Y + m[4]
				cc[i].Y = m[1]*p.X + m[3]*p.Y + m[5]
			}
		}
		return
	}
	for _, cmd := range o.cmds {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x := cmd.Args[i]
			y := cmd.Args[i+1]
			cmd.Args[i] = m[0]*x + m[2]*y + m[4]
			cmd.Args[i+1] = m[1]*x + m[3]*y + m[5]
		}
	}
}

// bbox returns the bounding box of the outline as it will appear in the
// written font.  For quadratic outlines the coordinates are rounded the
// same way the glyf encoder rounds them; for cubic outlines the box is
// the integer hull of the control points, as in the CFF glyph extents.
func (o *outline) bbox() funit.Rect16 {
	first := true
	var minX, minY, maxX, maxY float64
	visit := func(x, y float64) {
		if first {
			minX, maxX = x, x
			minY, maxY = y, y
			first = false
			return
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	if o.isQuad {
		for _, cc := range o.contours {
			for _, p := range cc {
				visit(math.Round(p.X), math.Round(p.Y))
			}
		}
	} else {
		for _, cmd := range o.cmds {
			for i := 0; i+1 < len(cmd.Args); i += 2 {
				visit(cmd.Args[i], cmd.Args[i+1])
			}
		}
	}

	if first {
		return funit.Rect16{}
	}
	return funit.Rect16{
		LLx: funit.Int16(math.Floor(minX)),
		LLy: funit.Int16(math.Floor(minY)),
		URx: funit.Int16(math.Ceil(maxX)),
		URy: funit.Int16(math.Ceil(maxY)),
	}
}

// toCubic converts a quadratic outline to cubic drawing commands.
// Implied on-curve points between consecutive off-curve points are
// inserted first, then each quadratic segment is degree-elevated using
// control points at 1/3 and 2/3.
func (o *outline) toCubic() []pathCmd {
	if !o.isQuad {
		return o.cmds
	}

	var cmds []pathCmd
	for _, cc := range o.contours {
		extended := extendContour(cc)
		n := len(extended)
		if n == 0 {
			continue
		}

		// rotate so that the contour starts with an on-curve point
		var offs int
		for i, p := range extended {
			if p.OnCurve {
				offs = i
				break
			}
		}

		start := extended[offs]
		cmds = append(cmds, pathCmd{Op: opMoveTo, Args: []float64{start.X, start.Y}})

		i := 0
		for i < n {
			i0 := (i + offs) % n
			p0 := extended[i0]
			p1 := extended[(i0+1)%n]
			if p1.OnCurve {
				if i == n-1 {
					break
				}
				cmds = append(cmds, pathCmd{Op: opLineTo, Args: []float64{p1.X, p1.Y}})
				i++
			} else {
				p2 := extended[(i0+2)%n]
				cmds = append(cmds, pathCmd{
					Op: opCurveTo,
					Args: []float64{
						p0.X/3 + p1.X*2/3, p0.Y/3 + p1.Y*2/3,
						p1.X*2/3 + p2.X/3, p1.Y*2/3 + p2.Y/3,
						p2.X, p2.Y,
					},
				})
				i += 2
			}
		}
	}
	return cmds
}

// extendContour inserts the implied on-curve midpoints between
// consecutive off-curve points.
func extendContour(cc contour) contour {
	var extended contour
	var prev point
	onCurve := true
	for _, cur := range cc {
		if !onCurve && !cur.OnCurve {
			extended = append(extended, point{
				X:       (cur.X + prev.X) / 2,
				Y:       (cur.Y + prev.Y) / 2,
				OnCurve: true,
			})
		}
		extended = append(extended, cur)
		prev = cur
		onCurve = cur.OnCurve
	}
	if len(extended) > 1 && !onCurve && !extended[0].OnCurve {
		extended = append(extended, point{
			X:       (extended[0].X + prev.X) / 2,
			Y:       (extended[0].Y + prev.Y) / 2,
			OnCurve: true,
		})
	}

	// a contour with no on-curve point cannot be traversed
	hasOn := false
	for _, p := range extended {
		if p.OnCurve {
			hasOn = true
			break
		}
	}
	if !hasOn {
		return nil
	}
	return extended
}
