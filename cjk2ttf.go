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

// Package cjk2ttf converts CJK OpenType/CFF fonts into subset TrueType
// fonts, small enough for PDF libraries which cannot handle fonts with
// more than 65535 glyphs.
//
// The conversion is a pipeline of up to three stages: CFF-flavoured
// input is first subset in-process to get the glyph count below the
// 16-bit limit, then converted to TrueType outlines using the FontForge
// command line tool, and finally subset again (or copied through).
// TrueType input skips the conversion and is subset directly, or copied
// byte for byte if no character selection is given.
package cjk2ttf

import (
	"fmt"

	"seehuhn.de/go/cjk2ttf/charset"
	"seehuhn.de/go/cjk2ttf/ttfcheck"
)

// Config describes a single conversion run.  A Config is built once,
// from command line arguments, and is not modified afterwards.
type Config struct {
	In  string // input font file (.otf or .ttf)
	Out string // output TrueType file

	// Character selection.  At most one of these is used; see Selection.
	Preset   string // named preset, e.g. "sc-min"
	Unicodes string // explicit range spec, e.g. "U+0020-007E,U+4E00-9FFF"
	TextFile string // UTF-8 file whose characters define the keep-set

	// NoSecondSubset skips the final subset stage for OTF input.
	NoSecondSubset bool

	// MinGlyphs is the smallest acceptable glyph count for the
	// converted and final fonts.
	MinGlyphs int
}

// HasSelection reports whether any character-selection flag was given.
func (c *Config) HasSelection() bool {
	return c.TextFile != "" || c.Unicodes != "" || c.Preset != ""
}

// Selection resolves the character-selection criterion.  A text file
// takes precedence over an explicit range spec, which takes precedence
// over a named preset.  Without any selection flags the default preset
// is used.
func (c *Config) Selection() (*charset.Set, error) {
	if c.TextFile != "" {
		return charset.ReadTextFile(c.TextFile)
	}
	if c.Unicodes != "" {
		return charset.ParseRanges(c.Unicodes)
	}
	name := c.Preset
	if name == "" {
		name = charset.DefaultPreset
	}
	s, ok := charset.Preset(name)
	if !ok {
		return nil, fmt.Errorf("cjk2ttf: unknown preset %q", name)
	}
	return s, nil
}

// selectionDesc describes the selection criterion in progress output.
func (c *Config) selectionDesc(sel *charset.Set) string {
	if c.TextFile != "" {
		return "text from " + c.TextFile
	}
	return sel.String()
}

// InvalidFontError reports a font which failed the glyph-table check,
// either after the FontForge conversion or at the very end of the run.
type InvalidFontError struct {
	Path      string
	Final     bool // final output, as opposed to the conversion result
	Report    ttfcheck.Report
	MinGlyphs int
}

func (e *InvalidFontError) Error() string {
	what := "converted TTF"
	if e.Final {
		what = "output TTF"
	}
	return fmt.Sprintf("cjk2ttf: %s invalid or too few glyphs (glyf=%t, loca=%t, numGlyphs=%d, min=%d): %s",
		what, e.Report.HasGlyf, e.Report.HasLoca, e.Report.NumGlyphs, e.MinGlyphs, e.Path)
}
