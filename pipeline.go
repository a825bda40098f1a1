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
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/cjk2ttf/fontforge"
	"seehuhn.de/go/cjk2ttf/ttfcheck"
)

// Run executes the conversion pipeline described by cfg.  Intermediate
// files are kept in a temporary directory which is removed before Run
// returns, on all paths.
//
// A failed glyph-table check is reported as an *InvalidFontError; all
// other errors abort the run as they are.
func Run(cfg *Config) error {
	tmpDir, err := os.MkdirTemp("", "cjk2ttf_")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	ext := strings.ToLower(filepath.Ext(cfg.In))
	if ext == ".otf" {
		err = runOTF(cfg, tmpDir)
	} else {
		err = runTTF(cfg)
	}
	if err != nil {
		return err
	}

	rep := ttfcheck.File(cfg.Out)
	if !rep.OK() || rep.BelowMin(cfg.MinGlyphs) {
		fmt.Println("[ok] output path:", cfg.Out)
		return &InvalidFontError{
			Path:      cfg.Out,
			Final:     true,
			Report:    rep,
			MinGlyphs: cfg.MinGlyphs,
		}
	}

	fmt.Println("[ok] success.")
	fmt.Println("Output:", cfg.Out)
	inStat, err1 := os.Stat(cfg.In)
	outStat, err2 := os.Stat(cfg.Out)
	if err1 == nil && err2 == nil {
		fmt.Printf("Size: %s -> %s\n",
			humanSize(inStat.Size()), humanSize(outStat.Size()))
	}
	return nil
}

// runOTF is the CFF-flavoured path: pre-subset, convert with FontForge,
// then subset again or copy through.
func runOTF(cfg *Config, tmpDir string) error {
	sel, err := cfg.Selection()
	if err != nil {
		return err
	}

	font, err := readFont(cfg.In)
	if err != nil {
		return err
	}
	fmt.Println("Input:", fontSummary(cfg.In, font))

	subsetOTF := filepath.Join(tmpDir, "subset.otf")
	fmt.Printf("[A] pre-subset OTF (%s) -> %s\n", cfg.selectionDesc(sel), subsetOTF)
	subsetted, err := subsetFont(font, sel)
	if err != nil {
		return err
	}
	err = writeFont(subsetted, subsetOTF)
	if err != nil {
		return err
	}

	intermediate := filepath.Join(tmpDir, "intermediate.ttf")
	fmt.Printf("[B] convert OTF -> TTF via FontForge: %s -> %s\n", subsetOTF, intermediate)
	warnings, err := fontforge.Convert(subsetOTF, intermediate)
	if err != nil {
		return err
	}
	if warnings > 0 {
		log.Printf("FontForge suppressed %d conversion warning(s)", warnings)
	}

	rep := ttfcheck.File(intermediate)
	if !rep.OK() || rep.BelowMin(cfg.MinGlyphs) {
		return &InvalidFontError{
			Path:      intermediate,
			Report:    rep,
			MinGlyphs: cfg.MinGlyphs,
		}
	}

	if cfg.NoSecondSubset {
		fmt.Printf("[C] skipping second subset, writing TTF -> %s\n", cfg.Out)
		return copyFile(intermediate, cfg.Out)
	}
	fmt.Printf("[C] subset TTF (%s) -> %s\n", cfg.selectionDesc(sel), cfg.Out)
	return subsetFile(intermediate, cfg.Out, sel)
}

// runTTF is the TrueType path: subset directly, or copy through when no
// character selection is given.
func runTTF(cfg *Config) error {
	if !cfg.HasSelection() {
		fmt.Printf("[T] copy TTF as-is -> %s\n", cfg.Out)
		return copyFile(cfg.In, cfg.Out)
	}
	sel, err := cfg.Selection()
	if err != nil {
		return err
	}
	fmt.Printf("[T] subset TTF (%s) -> %s\n", cfg.selectionDesc(sel), cfg.Out)
	return subsetFile(cfg.In, cfg.Out, sel)
}

func copyFile(fromName, toName string) error {
	from, err := os.Open(fromName)
	if err != nil {
		return err
	}
	defer from.Close()

	to, err := os.Create(toName)
	if err != nil {
		return err
	}
	_, err = io.Copy(to, from)
	if err != nil {
		to.Close()
		return err
	}
	return to.Close()
}

func humanSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%3.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f TB", size)
}
