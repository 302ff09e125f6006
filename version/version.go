// Copyright 2025 The Versioner Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Format identifies the grammar a version string is parsed under.
type Format int

const (
	// FormatSemantic parses "major[.minor[.patch]][-label]" versions.
	FormatSemantic Format = iota

	// FormatSimple parses "major[.minor]" versions.
	FormatSimple

	// FormatDate parses ISO-8601 calendar dates ("2024-01-15").
	FormatDate
)

// String returns the format name as used in configuration files.
func (f Format) String() string {
	switch f {
	case FormatSemantic:
		return "semantic"
	case FormatSimple:
		return "simple"
	case FormatDate:
		return "date"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat converts a configuration string into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "semantic":
		return FormatSemantic, nil
	case "simple":
		return FormatSimple, nil
	case "date":
		return FormatDate, nil
	default:
		return 0, fmt.Errorf("unknown version format %q (want semantic, simple, or date)", s)
	}
}

// Version is an immutable API version value. The zero value is not a
// valid version; construct one with Parse or MustParse.
type Version struct {
	format   Format
	major    int
	minor    int
	patch    int
	hasPatch bool
	label    string
	raw      string
	valid    bool
}

// Parse parses raw under the given format.
//
// It returns *InvalidVersionError when raw does not match the
// format's grammar. Parse has no side effects.
func Parse(raw string, f Format) (Version, error) {
	switch f {
	case FormatSemantic:
		return parseSemantic(raw)
	case FormatSimple:
		return parseSimple(raw)
	case FormatDate:
		return parseDate(raw)
	default:
		return Version{}, &InvalidVersionError{Raw: raw, Format: f, Reason: "unknown format"}
	}
}

// MustParse is Parse that panics on error. Intended for registration
// code and tests where the input is a literal.
func MustParse(raw string, f Format) Version {
	v, err := Parse(raw, f)
	if err != nil {
		panic(err)
	}
	return v
}

func parseSemantic(raw string) (Version, error) {
	numeric := raw
	label := ""
	if idx := strings.IndexByte(raw, '-'); idx >= 0 {
		numeric = raw[:idx]
		label = raw[idx+1:]
		if label == "" || !validLabel(label) {
			return Version{}, &InvalidVersionError{Raw: raw, Format: FormatSemantic, Reason: "malformed pre-release label"}
		}
	}

	parts := strings.Split(numeric, ".")
	if len(parts) < 1 || len(parts) > 3 {
		return Version{}, &InvalidVersionError{Raw: raw, Format: FormatSemantic, Reason: "want major[.minor[.patch]]"}
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, ok := atoiStrict(p)
		if !ok {
			return Version{}, &InvalidVersionError{Raw: raw, Format: FormatSemantic, Reason: "non-numeric component " + strconv.Quote(p)}
		}
		nums[i] = n
	}

	v := Version{
		format: FormatSemantic,
		major:  nums[0],
		label:  label,
		raw:    raw,
		valid:  true,
	}
	if len(nums) > 1 {
		v.minor = nums[1]
	}
	if len(nums) > 2 {
		v.patch = nums[2]
		v.hasPatch = true
	}
	return v, nil
}

func parseSimple(raw string) (Version, error) {
	parts := strings.Split(raw, ".")
	if len(parts) < 1 || len(parts) > 2 {
		return Version{}, &InvalidVersionError{Raw: raw, Format: FormatSimple, Reason: "want major[.minor]"}
	}

	major, ok := atoiStrict(parts[0])
	if !ok {
		return Version{}, &InvalidVersionError{Raw: raw, Format: FormatSimple, Reason: "non-numeric major"}
	}

	minor := 0
	if len(parts) == 2 {
		minor, ok = atoiStrict(parts[1])
		if !ok {
			return Version{}, &InvalidVersionError{Raw: raw, Format: FormatSimple, Reason: "non-numeric minor"}
		}
	}

	return Version{
		format: FormatSimple,
		major:  major,
		minor:  minor,
		raw:    raw,
		valid:  true,
	}, nil
}

const dateLayout = "2006-01-02"

func parseDate(raw string) (Version, error) {
	t, err := time.Parse(dateLayout, raw)
	// time.Parse is lenient about zero padding; require the exact
	// canonical rendering so "2024-1-5" is rejected.
	if err != nil || t.Format(dateLayout) != raw {
		return Version{}, &InvalidVersionError{Raw: raw, Format: FormatDate, Reason: "want YYYY-MM-DD"}
	}

	return Version{
		format:   FormatDate,
		major:    t.Year(),
		minor:    int(t.Month()),
		patch:    t.Day(),
		hasPatch: true,
		raw:      raw,
		valid:    true,
	}, nil
}

// atoiStrict parses a non-negative decimal integer. Unlike
// strconv.Atoi it rejects signs and empty strings.
func atoiStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func validLabel(label string) bool {
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.':
		default:
			return false
		}
	}
	return true
}

// Format returns the format the version was parsed under.
func (v Version) Format() Format { return v.format }

// Major returns the major component (the year for FormatDate).
func (v Version) Major() int { return v.major }

// Minor returns the minor component (the month for FormatDate).
func (v Version) Minor() int { return v.minor }

// Patch returns the patch component and whether it was present in the
// source text. FormatSimple versions never carry a patch.
func (v Version) Patch() (int, bool) { return v.patch, v.hasPatch }

// Label returns the pre-release label, or "" for a release version.
func (v Version) Label() string { return v.label }

// Raw returns the original text the version was parsed from.
func (v Version) Raw() string { return v.raw }

// IsZero reports whether v is the zero value rather than a parsed
// version.
func (v Version) IsZero() bool { return !v.valid }

// String returns the canonical form. Canonical forms re-parse to a
// version equal to v.
func (v Version) String() string {
	if !v.valid {
		return ""
	}
	switch v.format {
	case FormatDate:
		return fmt.Sprintf("%04d-%02d-%02d", v.major, v.minor, v.patch)
	case FormatSimple:
		return fmt.Sprintf("%d.%d", v.major, v.minor)
	default:
		s := fmt.Sprintf("%d.%d", v.major, v.minor)
		if v.hasPatch {
			s += "." + strconv.Itoa(v.patch)
		}
		if v.label != "" {
			s += "-" + v.label
		}
		return s
	}
}

// Compare orders v against o within a shared format.
//
// The order is major, then minor, then patch (absent patch sorts
// before any present patch), then label (pre-release labels sort
// before release). Versions of different formats are incomparable and
// return *IncomparableVersionError.
func (v Version) Compare(o Version) (int, error) {
	if v.format != o.format {
		return 0, &IncomparableVersionError{A: v, B: o}
	}

	if v.major != o.major {
		return sign(v.major - o.major), nil
	}
	if v.minor != o.minor {
		return sign(v.minor - o.minor), nil
	}

	switch {
	case v.hasPatch && o.hasPatch:
		if v.patch != o.patch {
			return sign(v.patch - o.patch), nil
		}
	case v.hasPatch:
		return 1, nil
	case o.hasPatch:
		return -1, nil
	}

	return compareLabels(v.label, o.label), nil
}

// Compare is the function form of Version.Compare.
func Compare(a, b Version) (int, error) {
	return a.Compare(b)
}

// Equal reports whether v and o share a format and order equal.
// The original raw text does not participate: "1" and "1.0" under
// FormatSimple are equal.
func (v Version) Equal(o Version) bool {
	if v.format != o.format || v.valid != o.valid {
		return false
	}
	c, err := v.Compare(o)
	return err == nil && c == 0
}

// compareLabels orders pre-release labels. An empty label (a release)
// sorts after any pre-release. Non-empty labels compare dot-segment
// wise, numerically when both segments are numeric, lexicographically
// otherwise; a label that is a strict prefix sorts first.
func compareLabels(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		if i >= len(as) {
			return -1
		}
		if i >= len(bs) {
			return 1
		}
		an, aNum := atoiStrict(as[i])
		bn, bNum := atoiStrict(bs[i])
		switch {
		case aNum && bNum:
			if an != bn {
				return sign(an - bn)
			}
		case aNum != bNum:
			// Numeric identifiers sort before alphanumeric ones.
			if aNum {
				return -1
			}
			return 1
		default:
			if as[i] != bs[i] {
				if as[i] < bs[i] {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Sort orders versions ascending in place. All versions must share a
// format; mixed-format slices are a configuration error caught at
// route table construction, so Sort treats incomparable pairs as
// equal rather than panicking mid-sort.
func Sort(vs []Version) {
	sort.SliceStable(vs, func(i, j int) bool {
		c, err := vs[i].Compare(vs[j])
		return err == nil && c < 0
	})
}

// Strings renders versions canonically, preserving order.
func Strings(vs []Version) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}
