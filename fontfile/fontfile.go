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

// Package fontfile locates font files on disk.
package fontfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Discover returns the names of all font files in the given directory, in
// directory-listing order.  A file counts as a font file if its name ends
// in ".ttf" or ".otf", ignoring case.  The returned names are relative to
// dir.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.HasSuffix(name, ".ttf") || strings.HasSuffix(name, ".otf") {
			res = append(res, e.Name())
		}
	}
	return res, nil
}

// Ext returns the lower-cased extension of the given font file name.  For
// names which end in neither ".ttf" nor ".otf" the fallback ".ttf" is
// returned, so that the result is always a usable output extension.
func Ext(fname string) string {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext != ".ttf" && ext != ".otf" {
		ext = ".ttf"
	}
	return ext
}

// Copy duplicates the file src at dst, creating or truncating dst.
func Copy(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
