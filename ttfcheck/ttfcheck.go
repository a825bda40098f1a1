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

// Package ttfcheck verifies that a font file contains the tables
// required for TrueType glyph data.
package ttfcheck

import (
	"bytes"
	"os"

	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/maxp"
)

// Report describes the glyph tables of a font file.
type Report struct {
	HasGlyf bool // the font has a "glyf" table
	HasLoca bool // the font has a "loca" table

	// NumGlyphs is the glyph count declared in the "maxp" table,
	// or -1 if the table could not be read.
	NumGlyphs int
}

// OK reports whether both tables required for TrueType glyph data are
// present.
func (r Report) OK() bool {
	return r.HasGlyf && r.HasLoca
}

// BelowMin reports whether the declared glyph count is below the given
// threshold.
func (r Report) BelowMin(min int) bool {
	return r.NumGlyphs < min
}

var invalid = Report{NumGlyphs: -1}

// File inspects the named font file.  Files which cannot be opened or
// parsed are reported as invalid; File never fails.
func File(fname string) Report {
	fd, err := os.Open(fname)
	if err != nil {
		return invalid
	}
	defer fd.Close()

	info, err := header.Read(fd)
	if err != nil {
		return invalid
	}

	rep := Report{NumGlyphs: -1}
	_, rep.HasGlyf = info.Toc["glyf"]
	_, rep.HasLoca = info.Toc["loca"]

	maxpData, err := info.ReadTableBytes(fd, "maxp")
	if err != nil {
		return rep
	}
	maxpInfo, err := maxp.Read(bytes.NewReader(maxpData))
	if err != nil {
		return rep
	}
	rep.NumGlyphs = maxpInfo.NumGlyphs

	return rep
}
