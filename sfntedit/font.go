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

// Package sfntedit edits glyphs in TrueType and OpenType fonts.
//
// The package implements [fontgraft.Editor] on top of fonts read with
// seehuhn.de/go/sfnt.  Pasted outlines are kept in floating point form
// until [Font.Write], so that scaling and shifting do not accumulate
// rounding errors.
package sfntedit

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"
	"unicode/utf16"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontgraft"
)

var (
	// ErrToQuadratic is returned when a CFF outline would have to be
	// converted to TrueType form.  This conversion is lossy and not
	// implemented.
	ErrToQuadratic = errors.New("sfntedit: cannot convert cubic outline to quadratic")

	errNoGlyph    = errors.New("sfntedit: no glyph for code point")
	errNotPasted  = errors.New("sfntedit: no pasted outline for code point")
	errBadOutline = errors.New("sfntedit: clipboard does not hold an outline")
)

// Font is one font loaded for editing.  It implements [fontgraft.Editor].
type Font struct {
	// Path is the file the font was read from.
	Path string

	// Info is the decoded font.
	Info *sfnt.Font

	cmap      map[rune]glyph.ID
	pending   map[rune]*outline
	cmapDirty bool
}

// Open reads the font stored in the given file.
func Open(fname string) (*Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	f := &Font{
		Path:    fname,
		Info:    info,
		cmap:    make(map[rune]glyph.ID),
		pending: make(map[rune]*outline),
	}

	if info.CMapTable != nil {
		subtable, err := info.CMapTable.GetBest()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		low, high := subtable.CodeRange()
		for r := low; r <= high; r++ {
			if utf16.IsSurrogate(r) {
				continue
			}
			if gid := subtable.Lookup(r); gid != 0 {
				f.cmap[r] = gid
			}
		}
	}

	return f, nil
}

// UnitsPerEm returns the size of the font's design grid.
func (f *Font) UnitsPerEm() uint16 {
	return f.Info.UnitsPerEm
}

// NumGlyphs returns the number of glyph slots in the font.
func (f *Font) NumGlyphs() int {
	switch o := f.Info.Outlines.(type) {
	case *glyf.Outlines:
		return len(o.Glyphs)
	case *cff.Outlines:
		return len(o.Glyphs)
	}
	return 0
}

// Outputtable reports whether the font maps the given code point to a
// glyph which will be present in the written font.
func (f *Font) Outputtable(cp rune) bool {
	if _, ok := f.pending[cp]; ok {
		return true
	}
	_, ok := f.cmap[cp]
	return ok
}

// BBox returns the bounding box of the glyph for the given code point.
// The box of a pasted outline reflects all transformations applied so
// far.
func (f *Font) BBox(cp rune) (funit.Rect16, bool) {
	if o, ok := f.pending[cp]; ok {
		return o.bbox(), true
	}
	gid, ok := f.cmap[cp]
	if !ok {
		return funit.Rect16{}, false
	}

	switch o := f.Info.Outlines.(type) {
	case *glyf.Outlines:
		g := o.Glyphs[gid]
		if g == nil {
			return funit.Rect16{}, true
		}
		return g.Rect16, true
	case *cff.Outlines:
		return cffBBox(o.Glyphs[gid]), true
	}
	return funit.Rect16{}, false
}

// cffBBox computes glyph extents from the charstring control points.
func cffBBox(g *cff.Glyph) funit.Rect16 {
	first := true
	var minX, minY, maxX, maxY float64
	for _, cmd := range g.Cmds {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				minX, maxX = x, x
				minY, maxY = y, y
				first = false
				continue
			}
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
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

// Metrics returns the horizontal metrics of the glyph for the given code
// point.
func (f *Font) Metrics(cp rune) (fontgraft.Metrics, bool) {
	gid, ok := f.cmap[cp]
	if !ok {
		return fontgraft.Metrics{}, false
	}

	var width funit.Int16
	switch o := f.Info.Outlines.(type) {
	case *glyf.Outlines:
		if int(gid) < len(o.Widths) {
			width = o.Widths[gid]
		}
	case *cff.Outlines:
		width = funit.Int16(math.Round(o.Glyphs[gid].Width))
	}

	bbox, _ := f.BBox(cp)
	return fontgraft.Metrics{
		Width: width,
		LSB:   bbox.LLx,
		RSB:   width - bbox.URx,
	}, true
}

// Copy extracts the outline of the glyph for the given code point.
func (f *Font) Copy(cp rune) (fontgraft.Clipboard, error) {
	if o, ok := f.pending[cp]; ok {
		return o.clone(), nil
	}
	gid, ok := f.cmap[cp]
	if !ok {
		return nil, errNoGlyph
	}

	switch o := f.Info.Outlines.(type) {
	case *glyf.Outlines:
		contours, err := quadContours(o, gid, 0)
		if err != nil {
			return nil, err
		}
		return &outline{contours: contours, isQuad: true}, nil

	case *cff.Outlines:
		g := o.Glyphs[gid]
		cmds := make([]pathCmd, 0, len(g.Cmds))
		for _, cmd := range g.Cmds {
			var op pathOp
			switch cmd.Op {
			case cff.OpMoveTo:
				op = opMoveTo
			case cff.OpLineTo:
				op = opLineTo
			case cff.OpCurveTo:
				op = opCurveTo
			default:
				continue
			}
			cmds = append(cmds, pathCmd{
				Op:   op,
				Args: append([]float64{}, cmd.Args...),
			})
		}
		return &outline{cmds: cmds}, nil
	}
	return nil, errNoGlyph
}

// Paste replaces the outline of the glyph slot for the given code point.
// If the font does not map the code point yet, a new glyph slot is
// allocated and the character map is extended.
func (f *Font) Paste(cp rune, clip fontgraft.Clipboard) error {
	o, ok := clip.(*outline)
	if !ok {
		return errBadOutline
	}

	var converted *outline
	switch f.Info.Outlines.(type) {
	case *glyf.Outlines:
		if !o.isQuad {
			return ErrToQuadratic
		}
		converted = o.clone()
	case *cff.Outlines:
		if o.isQuad {
			converted = &outline{cmds: o.toCubic()}
		} else {
			converted = o.clone()
		}
	default:
		return errNoGlyph
	}

	if _, ok := f.cmap[cp]; !ok {
		err := f.allocSlot(cp)
		if err != nil {
			return err
		}
	}
	f.pending[cp] = converted
	return nil
}

// allocSlot appends an empty glyph slot for the given code point and maps
// the code point to it.
func (f *Font) allocSlot(cp rune) error {
	var name string
	if cp <= 0xFFFF {
		name = fmt.Sprintf("uni%04X", cp)
	} else {
		name = fmt.Sprintf("u%04X", cp)
	}

	var gid glyph.ID
	switch o := f.Info.Outlines.(type) {
	case *glyf.Outlines:
		gid = glyph.ID(len(o.Glyphs))
		o.Glyphs = append(o.Glyphs, nil)
		o.Widths = append(o.Widths, 0)
		if o.Names != nil {
			o.Names = append(o.Names, name)
		}
	case *cff.Outlines:
		gid = glyph.ID(len(o.Glyphs))
		o.Glyphs = append(o.Glyphs, cff.NewGlyph(name, 0))
		if orig := o.FDSelect; orig != nil {
			o.FDSelect = func(g glyph.ID) int {
				if g == gid {
					return 0
				}
				return orig(g)
			}
		}
	default:
		return errNoGlyph
	}

	f.cmap[cp] = gid
	f.cmapDirty = true
	return nil
}

// Transform applies an affine transformation to a pasted outline.
func (f *Font) Transform(cp rune, m matrix.Matrix) error {
	o, ok := f.pending[cp]
	if !ok {
		return errNotPasted
	}
	o.transform(m)
	return nil
}

// SetAdvanceWidth changes the advance width of the glyph for the given
// code point.
func (f *Font) SetAdvanceWidth(cp rune, w funit.Int16) error {
	gid, ok := f.cmap[cp]
	if !ok {
		return errNoGlyph
	}
	switch o := f.Info.Outlines.(type) {
	case *glyf.Outlines:
		if int(gid) >= len(o.Widths) {
			return errNoGlyph
		}
		o.Widths[gid] = w
	case *cff.Outlines:
		o.Glyphs[gid].Width = float64(w)
	default:
		return errNoGlyph
	}
	return nil
}

// SetLeftSideBearing moves the pasted outline horizontally so that its
// left edge is at the given position.  The advance width is unchanged.
func (f *Font) SetLeftSideBearing(cp rune, lsb funit.Int16) error {
	o, ok := f.pending[cp]
	if !ok {
		return errNotPasted
	}
	box := o.bbox()
	dx := float64(lsb - box.LLx)
	if dx != 0 {
		o.transform(matrix.Translate(dx, 0))
	}
	return nil
}

// SetRightSideBearing changes the advance width so that the space right
// of the outline equals the given value.
func (f *Font) SetRightSideBearing(cp rune, rsb funit.Int16) error {
	box, ok := f.BBox(cp)
	if !ok {
		return errNoGlyph
	}
	return f.SetAdvanceWidth(cp, box.URx+rsb)
}

// SetMetadata rewrites the identity fields of the font.  Empty fields
// leave the corresponding values of the font unchanged.
func (f *Font) SetMetadata(meta fontgraft.Metadata) {
	if meta.FontName != "" {
		f.Info.FamilyName = meta.FontName
	}
	if meta.Copyright != "" {
		f.Info.Copyright = meta.Copyright
	}
	var parts []string
	if meta.Designer != "" {
		parts = append(parts, "Designer: "+meta.Designer)
	}
	if meta.License != "" {
		parts = append(parts, meta.License)
	}
	if len(parts) > 0 {
		f.Info.Description = strings.Join(parts, "; ")
	}
}

// Write stores the font in the given file.  All pasted outlines are
// rounded to font units and encoded, and the character map is rebuilt if
// new glyph slots were allocated.
func (f *Font) Write(fname string) error {
	err := f.flushOutlines()
	if err != nil {
		return err
	}

	if f.cmapDirty {
		bmp := cmap.Format4{}
		full := cmap.Format12{}
		needFull := false
		for r, gid := range f.cmap {
			if r <= 0xFFFF {
				bmp[uint16(r)] = gid
			} else {
				needFull = true
			}
			full[uint32(r)] = gid
		}
		enc := bmp.Encode(0)
		table := cmap.Table{
			{PlatformID: 0, EncodingID: 3}: enc,
			{PlatformID: 3, EncodingID: 1}: enc,
		}
		if needFull {
			enc12 := full.Encode(0)
			table[cmap.Key{PlatformID: 0, EncodingID: 4}] = enc12
			table[cmap.Key{PlatformID: 3, EncodingID: 10}] = enc12
		}
		f.Info.CMapTable = table
		f.cmapDirty = false
	}

	f.Info.ModificationTime = time.Now()

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = f.Info.Write(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// flushOutlines converts the pending outlines to their binary form and
// stores them in the glyph slots.
func (f *Font) flushOutlines() error {
	cps := maps.Keys(f.pending)
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })

	for _, cp := range cps {
		o := f.pending[cp]
		gid := f.cmap[cp]

		switch outlines := f.Info.Outlines.(type) {
		case *glyf.Outlines:
			g, err := packGlyf(o.contours)
			if err != nil {
				return fmt.Errorf("U+%04X: %w", cp, err)
			}
			outlines.Glyphs[gid] = g

		case *cff.Outlines:
			old := outlines.Glyphs[gid]
			g := cff.NewGlyph(old.Name, old.Width)
			for _, cmd := range o.cmds {
				switch cmd.Op {
				case opMoveTo:
					g.MoveTo(cmd.Args[0], cmd.Args[1])
				case opLineTo:
					g.LineTo(cmd.Args[0], cmd.Args[1])
				case opCurveTo:
					g.CurveTo(cmd.Args[0], cmd.Args[1],
						cmd.Args[2], cmd.Args[3],
						cmd.Args[4], cmd.Args[5])
				}
			}
			outlines.Glyphs[gid] = g
		}

		delete(f.pending, cp)
	}
	return nil
}
