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
	"errors"
	"fmt"
)

// GlyphError wraps an error which occurred while transferring the glyph
// for one code point.
type GlyphError struct {
	CP  rune
	Err error
}

func (err *GlyphError) Error() string {
	return fmt.Sprintf("U+%04X: %s", err.CP, err.Err)
}

func (err *GlyphError) Unwrap() error {
	return err.Err
}

var (
	errNoBBox    = errors.New("pasted glyph has no bounding box")
	errNoMetrics = errors.New("source glyph has no metrics")
)
