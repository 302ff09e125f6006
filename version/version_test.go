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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemantic(t *testing.T) {
	t.Parallel()

	t.Run("full version", func(t *testing.T) {
		t.Parallel()
		v, err := Parse("1.2.3", FormatSemantic)
		require.NoError(t, err)
		assert.Equal(t, 1, v.Major())
		assert.Equal(t, 2, v.Minor())
		patch, ok := v.Patch()
		assert.True(t, ok)
		assert.Equal(t, 3, patch)
		assert.Equal(t, "1.2.3", v.String())
	})

	t.Run("major only", func(t *testing.T) {
		t.Parallel()
		v, err := Parse("2", FormatSemantic)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Major())
		assert.Equal(t, 0, v.Minor())
		_, ok := v.Patch()
		assert.False(t, ok)
		assert.Equal(t, "2.0", v.String())
	})

	t.Run("prerelease label", func(t *testing.T) {
		t.Parallel()
		v, err := Parse("2.0.0-beta.1", FormatSemantic)
		require.NoError(t, err)
		assert.Equal(t, "beta.1", v.Label())
		assert.Equal(t, "2.0.0-beta.1", v.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "a.b.c", "1.2.3.4", "1..2", "-beta", "1.2.3-", "1.2.3-be ta", "+1.2"} {
			_, err := Parse(raw, FormatSemantic)
			var invalid *InvalidVersionError
			require.ErrorAs(t, err, &invalid, "raw=%q", raw)
			assert.Equal(t, raw, invalid.Raw)
		}
	})
}

func TestParseSimple(t *testing.T) {
	t.Parallel()

	t.Run("canonicalizes major only", func(t *testing.T) {
		t.Parallel()
		v, err := Parse("1", FormatSimple)
		require.NoError(t, err)
		assert.Equal(t, "1.0", v.String())

		v2, err := Parse("1.0", FormatSimple)
		require.NoError(t, err)
		assert.True(t, v.Equal(v2))
	})

	t.Run("rejects patch component", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("1.2.3", FormatSimple)
		assert.Error(t, err)
	})

	t.Run("rejects negative", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("-1", FormatSimple)
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		v, err := Parse("2024-01-15", FormatDate)
		require.NoError(t, err)
		assert.Equal(t, 2024, v.Major())
		assert.Equal(t, 1, v.Minor())
		assert.Equal(t, "2024-01-15", v.String())
	})

	t.Run("rejects unpadded date", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("2024-1-5", FormatDate)
		assert.Error(t, err)
	})

	t.Run("rejects impossible date", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("2024-02-30", FormatDate)
		assert.Error(t, err)
	})
}

// Canonicalization must be idempotent: parsing a canonical form gives
// back an equal version with an identical canonical form.
func TestCanonicalRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw    string
		format Format
	}{
		{"1", FormatSimple},
		{"1.0", FormatSimple},
		{"3.14", FormatSimple},
		{"1", FormatSemantic},
		{"1.2", FormatSemantic},
		{"1.2.3", FormatSemantic},
		{"2.0.0-alpha.2", FormatSemantic},
		{"2024-06-30", FormatDate},
	}

	for _, tc := range cases {
		v, err := Parse(tc.raw, tc.format)
		require.NoError(t, err, "raw=%q", tc.raw)

		again, err := Parse(v.String(), tc.format)
		require.NoError(t, err, "canonical=%q", v.String())
		assert.True(t, v.Equal(again), "raw=%q canonical=%q", tc.raw, v.String())
		assert.Equal(t, v.String(), again.String())
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	sv := func(raw string) Version { return MustParse(raw, FormatSemantic) }

	t.Run("ordering", func(t *testing.T) {
		t.Parallel()
		// Each entry is strictly less than the next.
		ordered := []Version{
			sv("1.0"),
			sv("1.0.0"),
			sv("1.0.1-alpha"),
			sv("1.0.1-alpha.1"),
			sv("1.0.1-beta"),
			sv("1.0.1"),
			sv("1.1"),
			sv("2.0.0"),
		}
		for i := 0; i < len(ordered)-1; i++ {
			c, err := ordered[i].Compare(ordered[i+1])
			require.NoError(t, err)
			assert.Equal(t, -1, c, "%s < %s", ordered[i], ordered[i+1])

			c, err = ordered[i+1].Compare(ordered[i])
			require.NoError(t, err)
			assert.Equal(t, 1, c)
		}
	})

	t.Run("absent patch sorts before present", func(t *testing.T) {
		t.Parallel()
		c, err := sv("1.2").Compare(sv("1.2.0"))
		require.NoError(t, err)
		assert.Equal(t, -1, c)
	})

	t.Run("numeric label segments compare numerically", func(t *testing.T) {
		t.Parallel()
		c, err := sv("1.0.0-alpha.2").Compare(sv("1.0.0-alpha.10"))
		require.NoError(t, err)
		assert.Equal(t, -1, c)
	})

	t.Run("equal is reflexive", func(t *testing.T) {
		t.Parallel()
		c, err := sv("1.2.3").Compare(sv("1.2.3"))
		require.NoError(t, err)
		assert.Equal(t, 0, c)
	})

	t.Run("transitive over a sorted set", func(t *testing.T) {
		t.Parallel()
		a, b, c := sv("1.0.0"), sv("1.5.0"), sv("2.0.0")
		ab, _ := a.Compare(b)
		bc, _ := b.Compare(c)
		ac, _ := a.Compare(c)
		assert.Equal(t, -1, ab)
		assert.Equal(t, -1, bc)
		assert.Equal(t, -1, ac)
	})

	t.Run("mixed formats fail fast", func(t *testing.T) {
		t.Parallel()
		_, err := MustParse("1.0", FormatSimple).Compare(MustParse("1.0", FormatSemantic))
		var incomparable *IncomparableVersionError
		require.ErrorAs(t, err, &incomparable)
	})
}

func TestSort(t *testing.T) {
	t.Parallel()

	vs := []Version{
		MustParse("2.0", FormatSimple),
		MustParse("1.0", FormatSimple),
		MustParse("1.5", FormatSimple),
	}
	Sort(vs)
	assert.Equal(t, []string{"1.0", "1.5", "2.0"}, Strings(vs))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Format{
		"semantic": FormatSemantic,
		"Simple":   FormatSimple,
		" date ":   FormatDate,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("calver")
	assert.Error(t, err)
}
