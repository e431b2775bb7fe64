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

// Package codepoint collects sets of Unicode code points from textual,
// hexadecimal user input.
package codepoint

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// MaxRune is the largest valid Unicode code point.
const MaxRune = 0x10FFFF

// ParseHex parses a hexadecimal code point.  An optional "0x" prefix is
// allowed and letters can be given in either case.  The second return
// value is false if s is empty, contains non-hexadecimal characters, or
// denotes a value outside [0, MaxRune].
func ParseHex(s string) (rune, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return 0, false
	}
	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil || val > MaxRune {
		return 0, false
	}
	return rune(val), true
}

// Set is a set of Unicode code points.
type Set map[rune]struct{}

// NewSet returns an empty set.
func NewSet() Set {
	return make(Set)
}

// AddRange adds the inclusive range described by the two hexadecimal
// strings to the set.  The range is only applied when both ends parse and
// the end is not smaller than the start; otherwise the set is unchanged
// and AddRange returns false.
func (s Set) AddRange(startHex, endHex string) bool {
	start, ok1 := ParseHex(startHex)
	end, ok2 := ParseHex(endHex)
	if !ok1 || !ok2 || end < start {
		return false
	}
	for cp := start; cp <= end; cp++ {
		s[cp] = struct{}{}
	}
	return true
}

// AddList adds the code points from a comma-separated list of hexadecimal
// strings to the set.  Tokens which do not parse are dropped without
// affecting the rest of the list.  AddList returns the code points which
// were recognised, in the order they appeared.
func (s Set) AddList(list string) []rune {
	var added []rune
	for _, tok := range strings.Split(list, ",") {
		cp, ok := ParseHex(tok)
		if !ok {
			continue
		}
		s[cp] = struct{}{}
		added = append(added, cp)
	}
	return added
}

// Runes returns the code points in the set, sorted in ascending order.
func (s Set) Runes() []rune {
	cc := maps.Keys(s)
	sort.Slice(cc, func(i, j int) bool { return cc[i] < cc[j] })
	return cc
}
