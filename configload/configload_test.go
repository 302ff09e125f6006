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

package configload

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versioner-dev/versioner/strategy"
	"github.com/versioner-dev/versioner/version"
)

const fullYAML = `
format: semantic
default_version: "1.0"
version_header: X-Served-Version
strategies:
  - kind: header
    priority: 1
    parameters:
      name: X-API-Version
      alternatives: [API-Version]
  - kind: path
    priority: 2
    parameters:
      marker: v
      api_prefix: api
  - kind: query
    parameters:
      name: version
  - kind: accept
    parameters:
      param: version
      vendor_pattern: "application/vnd.myapi.v{version}+json"
compatibility:
  "3.0": ["2.0", "1.0"]
header_names:
  deprecation: X-Deprecation
deprecations:
  "1.0":
    sunset_date: "2025-12-31"
    level: critical
    replacement: "2.0"
    reason: superseded
    migration_guide: https://example.com/migrate
`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, "semantic", cfg.Format)
	assert.Equal(t, "1.0", cfg.DefaultVersion)
	assert.Equal(t, "X-Served-Version", cfg.VersionHeader)
	require.Len(t, cfg.Strategies, 4)
	assert.Equal(t, "header", cfg.Strategies[0].Kind)
	assert.Equal(t, 1, cfg.Strategies[0].Priority)

	// Unset priorities fall back to list position.
	assert.Equal(t, 3, cfg.Strategies[2].Priority)
	assert.Equal(t, 4, cfg.Strategies[3].Priority)
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	input := `
format = "simple"
default_version = "2"

[[strategies]]
kind = "query"
priority = 1

[strategies.parameters]
name = "version"

[compatibility]
"3.0" = ["2.0"]
`
	cfg, err := Parse([]byte(input), "toml")
	require.NoError(t, err)
	assert.Equal(t, "simple", cfg.Format)
	assert.Equal(t, []string{"2.0"}, cfg.Compatibility["3.0"])

	// Defaults fill the gaps.
	assert.Equal(t, "X-API-Version", cfg.VersionHeader)
	assert.Equal(t, "Deprecation", cfg.HeaderNames.Deprecation)
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	input := `{"strategies": [{"kind": "path"}], "strict": true}`
	cfg, err := Parse([]byte(input), "json")
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "semantic", cfg.Format)
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown top-level key": `{"strategies": [{"kind": "path"}], "bogus": 1}`,
		"unknown strategy kind": `{"strategies": [{"kind": "cookie"}]}`,
		"bad format":            `{"format": "vintage", "strategies": [{"kind": "path"}]}`,
		"priority below one":    `{"strategies": [{"kind": "path", "priority": 0}]}`,
		"empty strategies":      `{"strategies": []}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(input), "json")
			assert.ErrorContains(t, err, "invalid config")
		})
	}

	_, err := Parse([]byte("{}"), "ini")
	assert.ErrorContains(t, err, "unsupported config encoding")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "versioner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.DefaultVersion)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildResolver(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullYAML), "yaml")
	require.NoError(t, err)

	resolver, err := cfg.Resolver()
	require.NoError(t, err)
	assert.Equal(t, version.FormatSemantic, resolver.Format())
	assert.Equal(t, []string{"header", "path", "query", "accept"}, resolver.Names())

	def, ok := resolver.Default()
	require.True(t, ok)
	assert.Equal(t, "1.0", def.String())

	// The built strategies behave per their parameters.
	req := httptest.NewRequest("GET", "/api/v2/users", nil)
	v, source, err := resolver.Resolve(strategy.ViewHTTP(req))
	require.NoError(t, err)
	assert.Equal(t, "2.0", v.String())
	assert.Equal(t, strategy.KindURLPath, source)

	req = httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Accept", "application/vnd.myapi.v2+json")
	v, source, err = resolver.Resolve(strategy.ViewHTTP(req))
	require.NoError(t, err)
	assert.Equal(t, "2.0", v.String())
	assert.Equal(t, strategy.KindAcceptHeader, source)
}

func TestBuildResolverErrors(t *testing.T) {
	t.Parallel()

	t.Run("header requires a name", func(t *testing.T) {
		t.Parallel()
		cfg, err := Parse([]byte(`{"strategies": [{"kind": "header"}]}`), "json")
		require.NoError(t, err)
		_, err = cfg.Resolver()
		assert.ErrorContains(t, err, `"name" is required`)
	})

	t.Run("default must parse", func(t *testing.T) {
		t.Parallel()
		cfg, err := Parse([]byte(`{"strategies": [{"kind": "path"}], "default_version": "nope"}`), "json")
		require.NoError(t, err)
		_, err = cfg.Resolver()
		assert.ErrorContains(t, err, "default_version")
	})
}

func TestBuildMatrix(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullYAML), "yaml")
	require.NoError(t, err)

	m, err := cfg.Matrix()
	require.NoError(t, err)

	v3 := version.MustParse("3.0", version.FormatSemantic)
	fallbacks := m.Fallbacks(v3)
	require.Len(t, fallbacks, 2)
	assert.Equal(t, "2.0", fallbacks[0].String())
	assert.Equal(t, "1.0", fallbacks[1].String())
}

func TestBuildHeaderNames(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullYAML), "yaml")
	require.NoError(t, err)

	names := cfg.HeaderNameOverrides()
	assert.Equal(t, "X-Deprecation", names.Deprecation)
	assert.Equal(t, "Sunset", names.Sunset)
}

func TestBuildDeprecationInfo(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullYAML), "yaml")
	require.NoError(t, err)

	infos, err := cfg.DeprecationInfo()
	require.NoError(t, err)
	require.Contains(t, infos, "1.0")

	info := infos["1.0"]
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), info.SunsetDate)
	assert.Equal(t, "2.0", info.Replacement)
	assert.Equal(t, "superseded", info.Reason)
}
