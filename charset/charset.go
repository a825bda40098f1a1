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

// Package charset describes sets of Unicode code points used to select
// the glyphs which are kept when subsetting a font.
package charset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Set is an immutable set of Unicode code points.
type Set struct {
	rt *unicode.RangeTable
}

func newSet(runes []rune) *Set {
	return &Set{rt: rangetable.New(runes...)}
}

// ParseRanges parses a comma-separated list of Unicode ranges, for
// example "U+0020-007E,U+4E00-9FFF".  Each item is a single code point
// or an inclusive range, given in hexadecimal; the "U+" prefix is
// optional and case does not matter.
func ParseRanges(spec string) (*Set, error) {
	var runes []rune
	for _, item := range strings.Split(spec, ",") {
		lo, hi, err := parseItem(strings.TrimSpace(item))
		if err != nil {
			return nil, err
		}
		for r := lo; r <= hi; r++ {
			runes = append(runes, r)
		}
	}
	return newSet(runes), nil
}

func parseItem(item string) (lo, hi rune, err error) {
	s := item
	if len(s) >= 2 && (s[0] == 'U' || s[0] == 'u') && s[1] == '+' {
		s = s[2:]
	}
	loStr, hiStr, isRange := strings.Cut(s, "-")
	if !isRange {
		hiStr = loStr
	}
	lo, err = parseHex(loStr)
	if err == nil {
		hi, err = parseHex(hiStr)
	}
	if err == nil && hi < lo {
		err = fmt.Errorf("charset: invalid range %q", item)
	}
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func parseHex(s string) (rune, error) {
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil || x > unicode.MaxRune {
		return 0, fmt.Errorf("charset: invalid code point %q", s)
	}
	return rune(x), nil
}

// ReadText returns the set of code points occurring in the given UTF-8
// text.
func ReadText(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("charset: text is not valid UTF-8")
	}
	var runes []rune
	for _, r := range string(data) {
		runes = append(runes, r)
	}
	return newSet(runes), nil
}

// ReadTextFile returns the set of code points occurring in the named
// UTF-8 text file.
func ReadTextFile(fname string) (*Set, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return ReadText(fd)
}

// Contains reports whether the code point r is in the set.
func (s *Set) Contains(r rune) bool {
	return unicode.Is(s.rt, r)
}

// Runes returns the code points of the set in ascending order.
func (s *Set) Runes() []rune {
	var runes []rune
	rangetable.Visit(s.rt, func(r rune) {
		runes = append(runes, r)
	})
	return runes
}

// Len returns the number of code points in the set.
func (s *Set) Len() int {
	n := 0
	rangetable.Visit(s.rt, func(rune) {
		n++
	})
	return n
}

// String returns the set in the form accepted by ParseRanges, with
// consecutive code points merged into ranges.
func (s *Set) String() string {
	runes := s.Runes()

	b := &strings.Builder{}
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[j-1]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		if j == i+1 {
			fmt.Fprintf(b, "U+%04X", runes[i])
		} else {
			fmt.Fprintf(b, "U+%04X-%04X", runes[i], runes[j-1])
		}
		i = j
	}
	return b.String()
}
