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

// Package fontforge converts CFF-flavoured fonts to TrueType using the
// FontForge command line tool.
package fontforge

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNotFound indicates that the FontForge executable could not be
// located on the PATH.
var ErrNotFound = errors.New("fontforge executable not found")

// script is run inside FontForge to turn a CFF-flavoured font into a
// TrueType font: CID-keyed structure is flattened into a single font,
// the encoding is forced to full Unicode, and glyph references are
// unlinked before the TrueType file is generated.
//
// Flattening and unlinking are best-effort.  Failures there are
// suppressed, counted, and the total is reported on stderr for the Go
// side to pick up.
const script = `import fontforge, sys
warnings = 0
f = fontforge.open(sys.argv[1])
try:
    if getattr(f, 'cidfontname', None):
        f.cidFlatten()
except Exception:
    warnings += 1
f.encoding = 'UnicodeFull'
for g in f.glyphs():
    try:
        g.unlinkRef()
    except Exception:
        warnings += 1
f.generate(sys.argv[2])
print('cjk2ttf-warnings:%d' % warnings, file=sys.stderr)
`

const warningMarker = "cjk2ttf-warnings:"

// Find returns the path of the FontForge executable.  The error wraps
// ErrNotFound if the executable is not on the PATH.
func Find() (string, error) {
	path, err := exec.LookPath("fontforge")
	if err != nil {
		return "", fmt.Errorf("fontforge: %w (install FontForge and make sure it is on the PATH)", ErrNotFound)
	}
	return path, nil
}

// Convert converts the font otfName into a TrueType font and writes
// the result to ttfName.  It returns the number of suppressed
// conversion warnings.
func Convert(otfName, ttfName string) (int, error) {
	ff, err := Find()
	if err != nil {
		return 0, err
	}

	cmd := exec.Command(ff, "-lang=py", "-c", script, otfName, ttfName)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("fontforge: conversion of %s failed: %w\n%s",
			otfName, err, out)
	}
	return countWarnings(string(out)), nil
}

// countWarnings extracts the warning count printed by the embedded
// script.  Output without a marker counts as zero warnings.
func countWarnings(out string) int {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, warningMarker) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(line, warningMarker))
		if err == nil && n >= 0 {
			return n
		}
	}
	return 0
}
