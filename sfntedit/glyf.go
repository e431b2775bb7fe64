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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

const maxComponentDepth = 8

var (
	errComponentDepth   = errors.New("glyf: component nesting too deep")
	errPointMatching    = errors.New("glyf: point-matching component not supported")
	errCoordinateRange  = errors.New("glyf: coordinate outside int16 range")
	errUnknownGlyphData = errors.New("glyf: unknown glyph data type")
)

// quadContours extracts the contours of one glyph from a glyf table, with
// composite glyphs flattened into plain contours.
func quadContours(o *glyf.Outlines, gid glyph.ID, depth int) ([]contour, error) {
	if depth > maxComponentDepth {
		return nil, errComponentDepth
	}
	if int(gid) >= len(o.Glyphs) {
		return nil, fmt.Errorf("glyf: glyph %d out of range", gid)
	}
	g := o.Glyphs[gid]
	if g == nil {
		return nil, nil
	}

	switch d := g.Data.(type) {
	case glyf.SimpleGlyph:
		info, err := d.Unpack()
		if err != nil {
			return nil, err
		}
		res := make([]contour, len(info.Contours))
		for i, cc := range info.Contours {
			pp := make(contour, len(cc))
			for j, p := range cc {
				pp[j] = point{
					X:       float64(p.X),
					Y:       float64(p.Y),
					OnCurve: p.OnCurve,
				}
			}
			res[i] = pp
		}
		return res, nil

	case glyf.CompositeGlyph:
		var res []contour
		for _, comp := range d.Components {
			info, err := comp.Unpack()
			if err != nil {
				return nil, err
			}
			if info.AlignPoints {
				return nil, errPointMatching
			}
			sub, err := quadContours(o, info.Child, depth+1)
			if err != nil {
				return nil, err
			}
			m := componentMatrix(info)
			for _, cc := range sub {
				tc := make(contour, len(cc))
				for j, p := range cc {
					x, y := m.Apply(p.X, p.Y)
					tc[j] = point{X: x, Y: y, OnCurve: p.OnCurve}
				}
				res = append(res, tc)
			}
		}
		return res, nil

	default:
		return nil, errUnknownGlyphData
	}
}

// componentMatrix returns the placement of one composite glyph component
// as a single affine matrix.  When the component requests a scaled
// offset, the translation part is run through the linear part first.
func componentMatrix(info *glyf.ComponentUnpacked) matrix.Matrix {
	m := info.Trfm
	if info.ScaledComponentOffset {
		dx, dy := m[4], m[5]
		m[4] = m[0]*dx + m[2]*dy
		m[5] = m[1]*dx + m[3]*dy
	}
	return m
}

// packGlyf converts contours into a glyf glyph record.  Coordinates are
// rounded to the nearest font unit; hinting instructions are not carried
// over.  Empty outlines encode as a nil glyph.
func packGlyf(contours []contour) (*glyf.Glyph, error) {
	var cc []glyf.Contour
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		points := make(glyf.Contour, len(c))
		for j, p := range c {
			x := math.Round(p.X)
			y := math.Round(p.Y)
			if x < math.MinInt16 || x > math.MaxInt16 ||
				y < math.MinInt16 || y > math.MaxInt16 {
				return nil, errCoordinateRange
			}
			points[j] = glyf.Point{
				X:       funit.Int16(x),
				Y:       funit.Int16(y),
				OnCurve: p.OnCurve,
			}
		}
		cc = append(cc, points)
	}
	if len(cc) == 0 {
		return nil, nil
	}

	info := &glyf.SimpleUnpacked{Contours: cc}
	g := info.AsGlyph()
	return &g, nil
}
