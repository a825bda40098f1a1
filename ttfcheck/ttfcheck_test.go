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

package ttfcheck

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/cjk2ttf/internal/fonttest"
)

func TestTrueTypeFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	rep := File(fname)
	if !rep.HasGlyf || !rep.HasLoca {
		t.Errorf("missing tables: glyf=%t, loca=%t", rep.HasGlyf, rep.HasLoca)
	}
	if !rep.OK() {
		t.Error("expected valid report")
	}
	if rep.NumGlyphs <= 0 {
		t.Errorf("NumGlyphs = %d", rep.NumGlyphs)
	}
	if rep.BelowMin(rep.NumGlyphs) || !rep.BelowMin(rep.NumGlyphs+1) {
		t.Error("wrong BelowMin threshold")
	}
}

func TestCFFFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.otf")
	fd, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	_, err = fonttest.MakeCIDFont().Write(fd)
	if err != nil {
		t.Fatal(err)
	}
	err = fd.Close()
	if err != nil {
		t.Fatal(err)
	}

	// A CFF-flavoured font has a maxp table but no TrueType glyph data.
	rep := File(fname)
	if rep.OK() || rep.HasGlyf || rep.HasLoca {
		t.Errorf("unexpected tables: glyf=%t, loca=%t", rep.HasGlyf, rep.HasLoca)
	}
	if rep.NumGlyphs != 28 {
		t.Errorf("NumGlyphs = %d, want 28", rep.NumGlyphs)
	}
}

func TestBadFiles(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.ttf")
	err := os.WriteFile(garbage, []byte("this is not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	want := Report{NumGlyphs: -1}
	for _, fname := range []string{garbage, filepath.Join(dir, "missing.ttf")} {
		rep := File(fname)
		if rep != want {
			t.Errorf("File(%q) = %+v, want %+v", fname, rep, want)
		}
	}
}
