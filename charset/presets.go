// seehuhn.de/go/cjk2ttf - make PDF-friendly TrueType fonts from CJK OpenType fonts
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

package charset

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultPreset is the preset used when no selection criterion is
// given.
const DefaultPreset = "sc-min"

// The "*-min" presets cover Basic Latin, Latin-1 Supplement, General
// Punctuation, CJK Symbols and Punctuation, Halfwidth and Fullwidth
// Forms, and the CJK Unified Ideographs.  The "*-bmp" presets
// additionally cover CJK Unified Ideographs Extension A.
var presets = map[string]string{
	"sc-min": "U+0020-007E,U+00A0-00FF,U+2000-206F,U+3000-303F,U+FF00-FFEF,U+4E00-9FFF",
	"tc-min": "U+0020-007E,U+00A0-00FF,U+2000-206F,U+3000-303F,U+FF00-FFEF,U+4E00-9FFF",
	"sc-bmp": "U+0020-007E,U+00A0-00FF,U+2000-206F,U+3000-303F,U+FF00-FFEF,U+4E00-9FFF,U+3400-4DBF",
	"tc-bmp": "U+0020-007E,U+00A0-00FF,U+2000-206F,U+3000-303F,U+FF00-FFEF,U+4E00-9FFF,U+3400-4DBF",
}

// Preset returns the set for a named preset.  The second return value
// reports whether the name is known.
func Preset(name string) (*Set, bool) {
	spec, ok := presets[name]
	if !ok {
		return nil, false
	}
	s, err := ParseRanges(spec)
	if err != nil {
		panic("charset: invalid preset table: " + err.Error())
	}
	return s, true
}

// PresetNames returns the names of all presets, sorted alphabetically.
func PresetNames() []string {
	names := maps.Keys(presets)
	slices.Sort(names)
	return names
}
