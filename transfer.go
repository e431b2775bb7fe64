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

package fontgraft

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
)

// Transfer copies the glyphs for the given code points from src into dst.
//
// The code points must be sorted in ascending order, for example using
// [seehuhn.de/go/fontgraft/codepoint.Set].  Outlines are scaled by the
// ratio of the two fonts' units-per-em, optionally shifted vertically
// according to opts.Align, and the advance width and side bearings are
// rewritten to the scaled source values, rounded to the nearest integer.
//
// A failure while processing one code point does not abort the run; the
// affected slot is reported via [Result] and processing continues with the
// next code point.
func Transfer(dst, src Editor, codepoints []rune, opts *Options) Stats {
	if opts == nil {
		opts = &Options{}
	}
	align := opts.Align
	if align == 0 {
		align = AlignSourceTop
	}

	q := float64(dst.UnitsPerEm()) / float64(src.UnitsPerEm())

	var stats Stats
	for _, cp := range codepoints {
		res := transferGlyph(dst, src, cp, q, align)
		switch res.Status {
		case StatusReplaced:
			stats.Replaced++
		case StatusSkipped:
			stats.Skipped++
		case StatusFailed:
			stats.Failed++
		}
		if opts.OnResult != nil {
			opts.OnResult(res)
		}
	}
	return stats
}

func transferGlyph(dst, src Editor, cp rune, q float64, align Alignment) Result {
	fail := func(err error) Result {
		return Result{CP: cp, Status: StatusFailed, Err: &GlyphError{CP: cp, Err: err}}
	}

	if !src.Outputtable(cp) {
		return Result{CP: cp, Status: StatusSkipped}
	}

	var oldBox funit.Rect16
	hadOld := dst.Outputtable(cp)
	if hadOld {
		oldBox, _ = dst.BBox(cp)
	}

	clip, err := src.Copy(cp)
	if err != nil {
		return fail(fmt.Errorf("copy: %w", err))
	}
	err = dst.Paste(cp, clip)
	if err != nil {
		return fail(fmt.Errorf("paste: %w", err))
	}
	err = dst.Transform(cp, matrix.Scale(q, q))
	if err != nil {
		return fail(fmt.Errorf("scale: %w", err))
	}

	if hadOld && align != AlignSourceTop {
		newBox, ok := dst.BBox(cp)
		if !ok {
			return fail(errNoBBox)
		}
		var shift float64
		switch align {
		case AlignDestTop:
			shift = float64(oldBox.URy - newBox.URy)
		case AlignDestBottom:
			shift = float64(oldBox.LLy - newBox.LLy)
		}
		if shift != 0 {
			err = dst.Transform(cp, matrix.Translate(0, shift))
			if err != nil {
				return fail(fmt.Errorf("align: %w", err))
			}
		}
	}

	m, ok := src.Metrics(cp)
	if !ok {
		return fail(errNoMetrics)
	}
	scale := func(v funit.Int16) funit.Int16 {
		return funit.Int16(math.Round(float64(v) * q))
	}
	err = dst.SetAdvanceWidth(cp, scale(m.Width))
	if err != nil {
		return fail(fmt.Errorf("width: %w", err))
	}
	err = dst.SetLeftSideBearing(cp, scale(m.LSB))
	if err != nil {
		return fail(fmt.Errorf("left side bearing: %w", err))
	}
	err = dst.SetRightSideBearing(cp, scale(m.RSB))
	if err != nil {
		return fail(fmt.Errorf("right side bearing: %w", err))
	}

	return Result{CP: cp, Status: StatusReplaced}
}
