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

package deprecation

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	names := DefaultHeaderNames()

	t.Run("nil info is active", func(t *testing.T) {
		t.Parallel()
		out := Evaluate(nil, now, names)
		assert.Equal(t, StatusActive, out.Status)
		assert.Empty(t, out.Headers)
	})

	t.Run("deprecated without sunset", func(t *testing.T) {
		t.Parallel()
		out := Evaluate(&Info{Level: LevelWarning}, now, names)
		assert.Equal(t, StatusDeprecated, out.Status)
		assert.Equal(t, "true", out.Headers.Get("Deprecation"))
		assert.Empty(t, out.Headers.Get("Sunset"))
		assert.Contains(t, out.Headers.Get("Warning"), "299 - ")
	})

	t.Run("critical uses warning code 199", func(t *testing.T) {
		t.Parallel()
		out := Evaluate(&Info{Level: LevelCritical}, now, names)
		assert.Contains(t, out.Headers.Get("Warning"), "199 - ")
	})

	t.Run("future sunset is deprecated", func(t *testing.T) {
		t.Parallel()
		sunset := now.Add(time.Second)
		out := Evaluate(&Info{SunsetDate: sunset}, now, names)
		assert.Equal(t, StatusDeprecated, out.Status)
		assert.Equal(t, sunset.UTC().Format(http.TimeFormat), out.Headers.Get("Sunset"))
	})

	t.Run("past sunset is sunset", func(t *testing.T) {
		t.Parallel()
		out := Evaluate(&Info{SunsetDate: now.Add(-time.Second)}, now, names)
		assert.Equal(t, StatusSunset, out.Status)
		assert.Equal(t, "true", out.Headers.Get("Deprecation"))
		assert.NotEmpty(t, out.Headers.Get("Sunset"))
		assert.Empty(t, out.Headers.Get("Warning"), "retired versions are announced, not warned")
	})

	t.Run("sunset instant itself is sunset", func(t *testing.T) {
		t.Parallel()
		out := Evaluate(&Info{SunsetDate: now}, now, names)
		assert.Equal(t, StatusSunset, out.Status)
	})

	t.Run("replacement and guide links", func(t *testing.T) {
		t.Parallel()
		out := Evaluate(&Info{
			Replacement:    "2.0",
			MigrationGuide: "https://example.com/migrate",
		}, now, names)

		links := out.Headers.Values("Link")
		require.Len(t, links, 2)
		assert.Equal(t, `<2.0>; rel="successor-version"`, links[0])
		assert.Equal(t, `<https://example.com/migrate>; rel="deprecation"`, links[1])
	})

	t.Run("header name overrides", func(t *testing.T) {
		t.Parallel()
		custom := HeaderNames{
			Deprecation: "X-Deprecation",
			Sunset:      "X-Sunset",
			Warning:     "X-Warning",
			Link:        "X-Link",
		}
		out := Evaluate(&Info{SunsetDate: now.Add(24 * time.Hour), Replacement: "2.0"}, now, custom)
		assert.Equal(t, "true", out.Headers.Get("X-Deprecation"))
		assert.NotEmpty(t, out.Headers.Get("X-Sunset"))
		assert.NotEmpty(t, out.Headers.Get("X-Warning"))
		assert.NotEmpty(t, out.Headers.Get("X-Link"))
		assert.Empty(t, out.Headers.Get("Deprecation"))
	})
}

func TestWarningMessage(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("plain deprecation", func(t *testing.T) {
		t.Parallel()
		info := &Info{}
		assert.Equal(t, "This API version is deprecated.", info.WarningMessage(now))
	})

	t.Run("sunset countdown", func(t *testing.T) {
		t.Parallel()
		info := &Info{SunsetDate: now.AddDate(0, 0, 30)}
		assert.Equal(t,
			"This API version is deprecated and will be sunset on 2025-07-01 (30 days remaining).",
			info.WarningMessage(now))
	})

	t.Run("replacement and reason", func(t *testing.T) {
		t.Parallel()
		info := &Info{Replacement: "2.0", Reason: "v1 authentication is insecure."}
		assert.Equal(t,
			"This API version is deprecated. Use version 2.0 instead. v1 authentication is insecure.",
			info.WarningMessage(now))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"info":     LevelInfo,
		"":         LevelInfo,
		"Warning":  LevelWarning,
		"CRITICAL": LevelCritical,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("fatal")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "critical", LevelCritical.String())
	assert.Equal(t, "active", StatusActive.String())
	assert.Equal(t, "deprecated", StatusDeprecated.String())
	assert.Equal(t, "sunset", StatusSunset.String())
}
