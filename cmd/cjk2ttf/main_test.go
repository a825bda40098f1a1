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

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// TestMain makes the test binary stand in for the cjk2ttf executable
// when CJK2TTF_TEST_MAIN is set, so that tests can observe exit codes.
func TestMain(m *testing.M) {
	if os.Getenv("CJK2TTF_TEST_MAIN") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runTool runs the command line tool with the given arguments and
// returns its exit code and output.
func runTool(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "CJK2TTF_TEST_MAIN=1")
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.Stdout = outBuf
	cmd.Stderr = errBuf

	err := cmd.Run()
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatal(err)
		}
		code = exitErr.ExitCode()
	}
	return code, outBuf.String(), errBuf.String()
}

func writeGoRegular(t *testing.T, dir string) string {
	t.Helper()
	fname := filepath.Join(dir, "in.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestExitSuccess(t *testing.T) {
	dir := t.TempDir()
	inName := writeGoRegular(t, dir)
	outName := filepath.Join(dir, "sub", "out.ttf")

	code, stdout, stderr := runTool(t, "-in", inName, "-out", outName)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "[ok] success.") {
		t.Errorf("stdout = %q", stdout)
	}
	// the output directory is created on demand
	if _, err := os.Stat(outName); err != nil {
		t.Error(err)
	}
}

func TestExitMissingInput(t *testing.T) {
	dir := t.TempDir()
	outName := filepath.Join(dir, "sub", "out.ttf")

	code, _, stderr := runTool(t,
		"-in", filepath.Join(dir, "missing.otf"), "-out", outName)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "ERROR") {
		t.Errorf("stderr = %q", stderr)
	}
	// the error comes before any filesystem writes
	if _, err := os.Stat(filepath.Dir(outName)); !os.IsNotExist(err) {
		t.Error("output directory was created")
	}
}

func TestExitFlagMisuse(t *testing.T) {
	code, _, stderr := runTool(t)
	if code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(stderr, "Usage") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestExitUnknownPreset(t *testing.T) {
	dir := t.TempDir()
	inName := writeGoRegular(t, dir)

	code, _, stderr := runTool(t,
		"-in", inName, "-out", filepath.Join(dir, "out.ttf"),
		"-preset", "kr-min")
	if code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(stderr, "unknown preset") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestExitFinalInvalid(t *testing.T) {
	dir := t.TempDir()
	inName := writeGoRegular(t, dir)
	outName := filepath.Join(dir, "out.ttf")

	code, stdout, stderr := runTool(t,
		"-in", inName, "-out", outName, "-min-glyphs", "100000")
	if code != 3 {
		t.Fatalf("exit code %d, want 3", code)
	}
	if !strings.Contains(stdout, "output path:") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "too few glyphs") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()
	inName := writeGoRegular(t, dir)

	got, err := resolveInput(inName)
	if err != nil {
		t.Fatal(err)
	}
	if got != inName {
		t.Errorf("resolveInput(%q) = %q", inName, got)
	}

	// a missing path is not looked up in the font directories
	_, err = resolveInput(filepath.Join(dir, "missing.otf"))
	if err == nil {
		t.Error("expected error for missing path")
	}

	// a bare name absent from the system font directories fails too
	_, err = resolveInput("cjk2ttf-no-such-font-3f9a.ttf")
	if err == nil {
		t.Error("expected error for unknown font name")
	}
}
