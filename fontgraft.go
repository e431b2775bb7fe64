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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
)

// Metrics contains the horizontal metrics of one glyph, in font design
// units.
type Metrics struct {
	Width funit.Int16 // advance width
	LSB   funit.Int16 // left side bearing
	RSB   funit.Int16 // right side bearing
}

// Metadata contains the font-level identity fields written to the output
// font.
type Metadata struct {
	FontName  string
	Designer  string
	Copyright string
	License   string
}

// Clipboard is an opaque value produced by [Editor.Copy] and consumed by
// [Editor.Paste].  Clipboard values can be transferred between two editors
// of the same backend.
type Clipboard any

// Editor gives access to the glyph slots of one loaded font.
//
// Glyph slots are addressed by Unicode code point.  All coordinates and
// metrics are in the font's own design units; callers which move glyphs
// between fonts with different units-per-em must apply the scale factor
// themselves, using [Editor.Transform].
type Editor interface {
	// UnitsPerEm returns the size of the font's design grid.
	UnitsPerEm() uint16

	// Outputtable reports whether the font has a glyph for the given code
	// point which would be included when the font is written out.
	Outputtable(cp rune) bool

	// BBox returns the bounding box of the glyph for the given code point.
	// The second return value is false if the font has no such glyph.
	BBox(cp rune) (funit.Rect16, bool)

	// Metrics returns the horizontal metrics of the glyph for the given
	// code point.  The second return value is false if the font has no
	// such glyph.
	Metrics(cp rune) (Metrics, bool)

	// Copy extracts the outline of the glyph for the given code point.
	Copy(cp rune) (Clipboard, error)

	// Paste replaces the outline of the glyph slot for the given code
	// point with a previously copied outline, allocating the slot if the
	// font did not map the code point before.
	Paste(cp rune, clip Clipboard) error

	// Transform applies an affine transformation to a pasted outline.
	Transform(cp rune, m matrix.Matrix) error

	// SetAdvanceWidth changes the advance width of the glyph.
	SetAdvanceWidth(cp rune, w funit.Int16) error

	// SetLeftSideBearing moves a pasted outline horizontally so that its
	// left edge is at the given position.  The advance width is not
	// changed.
	SetLeftSideBearing(cp rune, lsb funit.Int16) error

	// SetRightSideBearing changes the advance width so that the space
	// right of the outline equals the given value.
	SetRightSideBearing(cp rune, rsb funit.Int16) error
}

// Alignment selects how transplanted glyphs are positioned vertically.
type Alignment int

// The three alignment policies.  A run uses one policy for all glyphs.
const (
	// AlignSourceTop keeps the vertical position produced by scaling
	// alone.
	AlignSourceTop Alignment = 1 + iota

	// AlignDestTop shifts each glyph so that its top edge matches the top
	// edge of the glyph it replaces.  Glyphs which do not replace an
	// existing glyph are not shifted.
	AlignDestTop

	// AlignDestBottom is like AlignDestTop, but matches the bottom edge.
	AlignDestBottom
)

// ParseAlignment maps the interactive mode selection to an [Alignment].
// Unrecognized input selects [AlignSourceTop].
func ParseAlignment(s string) Alignment {
	switch s {
	case "2":
		return AlignDestTop
	case "3":
		return AlignDestBottom
	default:
		return AlignSourceTop
	}
}

// Status describes the outcome of transferring one glyph.
type Status int

// The possible outcomes for a single code point.
const (
	// StatusReplaced indicates that the glyph was copied into the
	// destination font.
	StatusReplaced Status = iota

	// StatusSkipped indicates that the source font has no glyph for the
	// code point.
	StatusSkipped

	// StatusFailed indicates that an error occurred while transferring
	// the glyph.  The destination slot is left in whatever state the
	// failed operation produced.
	StatusFailed
)

// Result describes the outcome of transferring one code point.
type Result struct {
	CP     rune
	Status Status
	Err    error // only set for StatusFailed
}

// Stats summarises a transfer run.
type Stats struct {
	Replaced int
	Skipped  int
	Failed   int
}

// Options controls a call to [Transfer].
type Options struct {
	// Align selects the vertical alignment policy.  The zero value
	// behaves like AlignSourceTop.
	Align Alignment

	// OnResult, if non-nil, is called once for every code point
	// processed, in order.
	OnResult func(Result)
}
