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

// Cjk2ttf makes PDF-friendly TrueType fonts from CJK OpenType fonts,
// subsetting CFF-flavoured input before conversion to stay below the
// 65535-glyph limit.
//
// Exit codes: 0 on success, 1 if the input font cannot be found, 2 if
// the converted intermediate font is invalid or too small (or on flag
// misuse), 3 if the final output is invalid or too small.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"

	"seehuhn.de/go/cjk2ttf"
	"seehuhn.de/go/cjk2ttf/charset"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cjk2ttf: ")

	inName := flag.String("in", "", "input font (.otf or .ttf)")
	outName := flag.String("out", "", "output TTF path")
	preset := flag.String("preset", "",
		"unicode preset for subsetting: "+strings.Join(charset.PresetNames(), ", "))
	unicodes := flag.String("unicodes", "",
		"custom unicode spec like 'U+0020-007E,U+4E00-9FFF'")
	textFile := flag.String("text-file", "",
		"UTF-8 file containing the text to keep (overrides preset/unicodes)")
	noSecondSubset := flag.Bool("no-second-subset", false,
		"skip the second TTF subset stage (only pre-subset the OTF, then convert)")
	minGlyphs := flag.Int("min-glyphs", 500,
		"sanity threshold for the output TTF glyph count")
	flag.Parse()

	if *inName == "" || *outName == "" || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *preset != "" {
		if _, ok := charset.Preset(*preset); !ok {
			fmt.Fprintf(os.Stderr, "ERROR: unknown preset %q (have %s)\n",
				*preset, strings.Join(charset.PresetNames(), ", "))
			os.Exit(2)
		}
	}

	in, err := resolveInput(*inName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}

	absOut, err := filepath.Abs(*outName)
	if err != nil {
		log.Fatal(err)
	}
	err = os.MkdirAll(filepath.Dir(absOut), 0o755)
	if err != nil {
		log.Fatal(err)
	}

	cfg := &cjk2ttf.Config{
		In:  in,
		Out: absOut,

		Preset:   *preset,
		Unicodes: *unicodes,
		TextFile: *textFile,

		NoSecondSubset: *noSecondSubset,
		MinGlyphs:      *minGlyphs,
	}
	err = cjk2ttf.Run(cfg)
	var invalidErr *cjk2ttf.InvalidFontError
	switch {
	case err == nil:
		// done
	case errors.As(err, &invalidErr):
		fmt.Fprintln(os.Stderr, "ERROR:", invalidErr)
		if invalidErr.Final {
			os.Exit(3)
		}
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

// resolveInput returns the path of the input font file.  A bare font
// name (no path separator) which does not name a file is looked up in
// the system font directories.
func resolveInput(name string) (string, error) {
	if st, err := os.Stat(name); err == nil && st.Mode().IsRegular() {
		return name, nil
	}
	if !strings.ContainsAny(name, `/\`) {
		if path, err := findfont.Find(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("input not found: %s", name)
}
