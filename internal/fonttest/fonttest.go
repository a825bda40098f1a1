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

// Package fonttest provides fonts for use in unit tests.
package fonttest

import (
	"bytes"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// MakeCIDFont creates a small CID-keyed CFF font covering the space
// character and the letters A-Z, with outlines taken from the Go
// regular font.  The font exercises the OpenType/CFF input path of the
// pipeline, including the CID-flattening report.
func MakeCIDFont() *sfnt.Font {
	info, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	fontCMap, err := info.CMapTable.GetBest()
	if err != nil {
		panic(err)
	}

	includeGid := []glyph.ID{0}
	subtable := cmap.Format4{}
	for _, r := range runeRange(' ', ' ', 'A', 'Z') {
		gid := fontCMap.Lookup(r)
		subtable[uint16(r)] = glyph.ID(len(includeGid))
		includeGid = append(includeGid, gid)
	}

	origOutlines := info.Outlines.(*glyf.Outlines)
	newOutlines := &cff.Outlines{
		Private: []*type1.PrivateDict{
			{
				BlueScale: 0.039625,
				BlueShift: 7,
				BlueFuzz:  1,
			},
		},
		FDSelect: func(glyph.ID) int {
			return 0
		},
		ROS: &cid.SystemInfo{
			Registry:   "Adobe",
			Ordering:   "Identity",
			Supplement: 0,
		},
		FontMatrices: []matrix.Matrix{matrix.Identity},
	}
	for i, gid := range includeGid {
		newOutlines.GIDToCID = append(newOutlines.GIDToCID, cid.CID(i))

		cffGlyph := cff.NewGlyph(info.GlyphName(gid), float64(info.GlyphWidth(gid)))
		origGlyph := origOutlines.Glyphs[gid]
		if origGlyph != nil {
			glyphPath := origOutlines.Path(gid)
			for cmd, pts := range glyphPath.ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					cffGlyph.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					cffGlyph.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					cffGlyph.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					// CFF glyphs close automatically.
				}
			}
		}
		newOutlines.Glyphs = append(newOutlines.Glyphs, cffGlyph)
	}

	now := time.Now()
	res := &sfnt.Font{
		FamilyName: "Test",
		Width:      info.Width,
		Weight:     info.Weight,
		IsRegular:  true,

		Version:          0,
		CreationTime:     now,
		ModificationTime: now,

		UnitsPerEm: info.UnitsPerEm,
		FontMatrix: info.FontMatrix,

		Ascent:    info.Ascent,
		Descent:   info.Descent,
		LineGap:   info.LineGap,
		CapHeight: info.CapHeight,
		XHeight:   info.XHeight,

		Outlines: newOutlines,
	}
	res.InstallCMap(subtable)

	return res
}

// runeRange returns the runes of the inclusive ranges given as
// lo, hi pairs.
func runeRange(pairs ...rune) []rune {
	var runes []rune
	for i := 0; i+1 < len(pairs); i += 2 {
		for r := pairs[i]; r <= pairs[i+1]; r++ {
			runes = append(runes, r)
		}
	}
	return runes
}
