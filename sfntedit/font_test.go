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
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fontgraft"
)

func openTestFont(t *testing.T, data []byte) *Font {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "test.ttf")
	err := os.WriteFile(fname, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestOpen(t *testing.T) {
	f := openTestFont(t, goregular.TTF)

	if f.UnitsPerEm() == 0 {
		t.Error("units per em is zero")
	}
	if !f.Outputtable('A') {
		t.Error("no glyph for 'A'")
	}
	if f.Outputtable('\uE735') {
		t.Error("glyph for unassigned private use code point")
	}

	m, ok := f.Metrics('A')
	if !ok {
		t.Fatal("no metrics for 'A'")
	}
	if m.Width <= 0 {
		t.Errorf("advance width %d for 'A'", m.Width)
	}
	box, ok := f.BBox('A')
	if !ok {
		t.Fatal("no bounding box for 'A'")
	}
	if box.LLx >= box.URx || box.LLy >= box.URy {
		t.Errorf("degenerate bounding box %v for 'A'", box)
	}
	if m.LSB != box.LLx {
		t.Errorf("left side bearing %d, want %d", m.LSB, box.LLx)
	}
	if m.RSB != m.Width-box.URx {
		t.Errorf("right side bearing %d, want %d", m.RSB, m.Width-box.URx)
	}
}

func TestCopyPaste(t *testing.T) {
	src := openTestFont(t, gomono.TTF)
	dst := openTestFont(t, goregular.TTF)

	srcBox, _ := src.BBox('A')

	clip, err := src.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = dst.Paste('A', clip)
	if err != nil {
		t.Fatal(err)
	}

	box, ok := dst.BBox('A')
	if !ok {
		t.Fatal("no bounding box after paste")
	}
	if box != srcBox {
		t.Errorf("pasted bounding box %v, want %v", box, srcBox)
	}
}

func TestTransform(t *testing.T) {
	f := openTestFont(t, goregular.TTF)

	clip, err := f.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = f.Paste('A', clip)
	if err != nil {
		t.Fatal(err)
	}
	before, _ := f.BBox('A')

	err = f.Transform('A', matrix.Scale(0.5, 0.5))
	if err != nil {
		t.Fatal(err)
	}
	after, _ := f.BBox('A')

	// rounding may move each edge by one unit
	for _, d := range []int{
		int(after.URx) - int(math.Round(float64(before.URx)*0.5)),
		int(after.URy) - int(math.Round(float64(before.URy)*0.5)),
	} {
		if d < -1 || d > 1 {
			t.Errorf("scaled bounding box %v, base %v", after, before)
		}
	}
}

func TestTransformWithoutPaste(t *testing.T) {
	f := openTestFont(t, goregular.TTF)
	err := f.Transform('A', matrix.Scale(2, 2))
	if err == nil {
		t.Error("transform of unpasted glyph not rejected")
	}
}

func TestPasteNewSlot(t *testing.T) {
	f := openTestFont(t, goregular.TTF)

	const cp = '\uE735' // unassigned private use code point
	if f.Outputtable(cp) {
		t.Fatal("test code point already mapped")
	}
	numBefore := f.NumGlyphs()

	clip, err := f.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = f.Paste(cp, clip)
	if err != nil {
		t.Fatal(err)
	}

	if !f.Outputtable(cp) {
		t.Error("pasted code point not outputtable")
	}
	if f.NumGlyphs() != numBefore+1 {
		t.Errorf("got %d glyphs, want %d", f.NumGlyphs(), numBefore+1)
	}
}

// TestWriteSupplementary grafts a glyph onto a code point outside the
// basic multilingual plane and checks that it survives writing.
func TestWriteSupplementary(t *testing.T) {
	f := openTestFont(t, goregular.TTF)

	const cp = rune(0x1F600)
	clip, err := f.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = f.Paste(cp, clip)
	if err != nil {
		t.Fatal(err)
	}

	outName := filepath.Join(t.TempDir(), "out.ttf")
	err = f.Write(outName)
	if err != nil {
		t.Fatal(err)
	}

	check, err := Open(outName)
	if err != nil {
		t.Fatal(err)
	}
	if !check.Outputtable(cp) {
		t.Fatal("supplementary code point missing from the written font")
	}
	if !check.Outputtable('A') {
		t.Error("pre-existing mapping lost")
	}
	box, ok := check.BBox(cp)
	if !ok || box.LLx >= box.URx || box.LLy >= box.URy {
		t.Errorf("bad bounding box %v for grafted glyph", box)
	}
}

// TestWritePreservesSupplementary rebuilds the character map of a font
// which already covers the supplementary planes and checks that this
// coverage is kept.
func TestWritePreservesSupplementary(t *testing.T) {
	f := openTestFont(t, goregular.TTF)

	const astral = rune(0x1F600)
	clip, err := f.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = f.Paste(astral, clip)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	first := filepath.Join(dir, "first.ttf")
	err = f.Write(first)
	if err != nil {
		t.Fatal(err)
	}

	// reopen and force a second character map rebuild
	g, err := Open(first)
	if err != nil {
		t.Fatal(err)
	}
	clip, err = g.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = g.Paste('\uE735', clip)
	if err != nil {
		t.Fatal(err)
	}
	second := filepath.Join(dir, "second.ttf")
	err = g.Write(second)
	if err != nil {
		t.Fatal(err)
	}

	check, err := Open(second)
	if err != nil {
		t.Fatal(err)
	}
	if !check.Outputtable(astral) {
		t.Error("supplementary mapping lost in character map rebuild")
	}
	if !check.Outputtable('\uE735') {
		t.Error("new mapping missing from the written font")
	}
	if !check.Outputtable('A') {
		t.Error("pre-existing mapping lost")
	}
}

func TestSetLeftSideBearing(t *testing.T) {
	f := openTestFont(t, goregular.TTF)

	clip, err := f.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = f.Paste('A', clip)
	if err != nil {
		t.Fatal(err)
	}
	widthBefore, _ := f.Metrics('A')

	err = f.SetLeftSideBearing('A', 100)
	if err != nil {
		t.Fatal(err)
	}
	box, _ := f.BBox('A')
	if box.LLx != 100 {
		t.Errorf("left edge at %d, want 100", box.LLx)
	}
	widthAfter, _ := f.Metrics('A')
	if widthAfter.Width != widthBefore.Width {
		t.Errorf("advance width changed from %d to %d",
			widthBefore.Width, widthAfter.Width)
	}
}

func TestSetRightSideBearing(t *testing.T) {
	f := openTestFont(t, goregular.TTF)

	clip, err := f.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = f.Paste('A', clip)
	if err != nil {
		t.Fatal(err)
	}

	err = f.SetRightSideBearing('A', 80)
	if err != nil {
		t.Fatal(err)
	}
	m, _ := f.Metrics('A')
	if m.RSB != 80 {
		t.Errorf("right side bearing %d, want 80", m.RSB)
	}
}

// TestWriteRoundTrip grafts two glyphs from Go Mono into Go Regular,
// writes the result and reads it back.
func TestWriteRoundTrip(t *testing.T) {
	src := openTestFont(t, gomono.TTF)
	dst := openTestFont(t, goregular.TTF)

	stats := fontgraft.Transfer(dst, src, []rune{'A', 'B'}, nil)
	if stats.Replaced != 2 || stats.Skipped != 0 || stats.Failed != 0 {
		t.Fatalf("unexpected transfer stats %+v", stats)
	}

	dst.SetMetadata(fontgraft.Metadata{
		FontName:  "Graft Test",
		Designer:  "A. Designer",
		Copyright: "Copyright 2025: A. Designer",
		License:   "All rights reserved",
	})

	outName := filepath.Join(t.TempDir(), "out.ttf")
	err := dst.Write(outName)
	if err != nil {
		t.Fatal(err)
	}

	check, err := Open(outName)
	if err != nil {
		t.Fatal(err)
	}
	if check.Info.FamilyName != "Graft Test" {
		t.Errorf("family name %q", check.Info.FamilyName)
	}

	q := float64(dst.UnitsPerEm()) / float64(src.UnitsPerEm())
	srcM, _ := src.Metrics('A')
	wantWidth := int(math.Round(float64(srcM.Width) * q))
	gotM, ok := check.Metrics('A')
	if !ok {
		t.Fatal("no glyph for 'A' in the written font")
	}
	if int(gotM.Width) != wantWidth {
		t.Errorf("advance width %d, want %d", gotM.Width, wantWidth)
	}
	box, ok := check.BBox('A')
	if !ok || box.LLx >= box.URx || box.LLy >= box.URy {
		t.Errorf("bad bounding box %v for grafted glyph", box)
	}
}

// TestWriteNewSlot checks that the character map is rebuilt when a glyph
// is grafted onto a previously unmapped code point.
func TestWriteNewSlot(t *testing.T) {
	src := openTestFont(t, gomono.TTF)
	dst := openTestFont(t, goregular.TTF)

	const cp = '\uE735'
	clip, err := src.Copy('A')
	if err != nil {
		t.Fatal(err)
	}
	err = dst.Paste(cp, clip)
	if err != nil {
		t.Fatal(err)
	}
	err = dst.SetAdvanceWidth(cp, 1234)
	if err != nil {
		t.Fatal(err)
	}

	outName := filepath.Join(t.TempDir(), "out.ttf")
	err = dst.Write(outName)
	if err != nil {
		t.Fatal(err)
	}

	check, err := Open(outName)
	if err != nil {
		t.Fatal(err)
	}
	if !check.Outputtable(cp) {
		t.Fatal("grafted code point missing from the written font")
	}
	if !check.Outputtable('A') {
		t.Error("pre-existing mapping lost")
	}
	m, _ := check.Metrics(cp)
	if m.Width != 1234 {
		t.Errorf("advance width %d, want 1234", m.Width)
	}
}
