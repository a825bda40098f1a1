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

package cjk2ttf

import (
	"fmt"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/cjk2ttf/charset"
)

// subsetFont reduces the font to the glyphs needed for the selected
// characters.  The result contains the .notdef glyph, one glyph for
// every selected character present in the font, and (for TrueType
// outlines) the components of composite glyphs.  Glyph IDs are
// reassigned; a Unicode cmap for the kept characters replaces the
// original cmap table.
//
// OpenType layout tables and hinting do not survive subsetting.  Glyph
// names and unrecognised tables are carried over unchanged.
func subsetFont(font *sfnt.Font, sel *charset.Set) (*sfnt.Font, error) {
	cmapSubtable, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("cjk2ttf: no usable cmap: %w", err)
	}

	keep := make(map[rune]glyph.ID)
	seen := map[glyph.ID]bool{0: true}
	glyphs := []glyph.ID{0}
	for _, r := range sel.Runes() {
		gid := cmapSubtable.Lookup(r)
		if gid == 0 {
			continue
		}
		keep[r] = gid
		if !seen[gid] {
			seen[gid] = true
			glyphs = append(glyphs, gid)
		}
	}
	// Keep the original glyph order after .notdef, so that runs with
	// the same selection produce identical fonts.
	slices.Sort(glyphs[1:])

	newGid := make(map[glyph.ID]glyph.ID, len(glyphs))
	for i, gid := range glyphs {
		newGid[gid] = glyph.ID(i)
	}

	clone := font.Clone()
	clone.CMapTable = nil
	clone.Gdef = nil
	clone.Gsub = nil
	clone.Gpos = nil
	res := clone.Subset(glyphs)

	res.InstallCMap(makeCMap(keep, newGid))

	if outlines, ok := res.Outlines.(*glyf.Outlines); ok && outlines.Tables != nil {
		outlines.Tables = dropHinting(outlines.Tables)
	}

	return res, nil
}

// makeCMap builds a Unicode cmap subtable for the kept characters,
// using format 12 if any of them lies outside the Basic Multilingual
// Plane.
func makeCMap(keep map[rune]glyph.ID, newGid map[glyph.ID]glyph.ID) cmap.Subtable {
	needFormat12 := false
	for r := range keep {
		if r > 0xFFFF {
			needFormat12 = true
			break
		}
	}

	if needFormat12 {
		subtable := cmap.Format12{}
		for r, gid := range keep {
			subtable[uint32(r)] = newGid[gid]
		}
		return subtable
	}
	subtable := cmap.Format4{}
	for r, gid := range keep {
		subtable[uint16(r)] = newGid[gid]
	}
	return subtable
}

// dropHinting removes the TrueType hinting tables from the passthrough
// table set.  The map is copied, since subsetting shares it with the
// original font.
func dropHinting(tables map[string][]byte) map[string][]byte {
	res := maps.Clone(tables)
	delete(res, "fpgm")
	delete(res, "prep")
	delete(res, "cvt ")
	return res
}

// subsetFile subsets the font file inName and writes the result to
// outName.
func subsetFile(inName, outName string, sel *charset.Set) error {
	font, err := readFont(inName)
	if err != nil {
		return err
	}
	subsetted, err := subsetFont(font, sel)
	if err != nil {
		return err
	}
	return writeFont(subsetted, outName)
}

func readFont(fname string) (*sfnt.Font, error) {
	font, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("cjk2ttf: cannot read %s: %w", fname, err)
	}
	return font, nil
}

func writeFont(font *sfnt.Font, outName string) error {
	fd, err := os.Create(outName)
	if err != nil {
		return err
	}
	_, err = font.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// fontSummary describes a font in progress output.
func fontSummary(fname string, font *sfnt.Font) string {
	desc := fmt.Sprintf("%s: %s, %d glyphs", fname, font.PostScriptName(), font.NumGlyphs())
	if outlines, ok := font.Outlines.(*cff.Outlines); ok && outlines.ROS != nil {
		desc += fmt.Sprintf(", CID-keyed (%s-%s-%d)",
			outlines.ROS.Registry, outlines.ROS.Ordering, outlines.ROS.Supplement)
	}
	return desc
}
