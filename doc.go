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

// Package fontgraft copies glyph outlines between font files.
//
// The package defines the [Editor] interface, which gives access to the
// glyph slots of one loaded font, and the [Transfer] function, which moves
// a set of glyphs from one editor into another: for every requested code
// point the source outline is copied, scaled to the destination's
// units-per-em, optionally shifted vertically, and the horizontal metrics
// are rewritten to the scaled source values.
//
// The [seehuhn.de/go/fontgraft/sfntedit] package implements Editor for
// TrueType and OpenType font files:
//
//	dst, err := sfntedit.Open("Output/MyFont.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src, err := sfntedit.Open("Source/donor.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats := fontgraft.Transfer(dst, src, codepoints, nil)
//	err = dst.Write("Output/MyFont.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Transfer never aborts a run because of a single glyph: failures are
// reported per code point and processing continues.
package fontgraft
