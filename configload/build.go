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
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/versioner-dev/versioner/compat"
	"github.com/versioner-dev/versioner/deprecation"
	"github.com/versioner-dev/versioner/strategy"
	"github.com/versioner-dev/versioner/version"
)

// Resolver builds the strategy resolver declared by the file.
func (f *File) Resolver() (*strategy.Resolver, error) {
	format, err := version.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}

	opts := []strategy.Option{strategy.WithFormat(format)}

	for i, sc := range f.Strategies {
		s, err := buildStrategy(sc)
		if err != nil {
			return nil, fmt.Errorf("strategy %d (%s): %w", i+1, sc.Kind, err)
		}
		opts = append(opts, strategy.WithStrategy(sc.Priority, s))
	}

	if f.DefaultVersion != "" {
		def, err := version.Parse(f.DefaultVersion, format)
		if err != nil {
			return nil, fmt.Errorf("default_version: %w", err)
		}
		opts = append(opts, strategy.WithDefault(def))
	}
	if f.Strict {
		opts = append(opts, strategy.WithStrict())
	}

	return strategy.NewResolver(opts...)
}

func buildStrategy(sc StrategyConfig) (strategy.Strategy, error) {
	p := sc.Parameters

	switch sc.Kind {
	case strategy.KindURLPath:
		var opts []strategy.URLPathOption
		if marker, ok := p["marker"]; ok {
			opts = append(opts, strategy.Marker(cast.ToString(marker)))
		}
		if prefix, ok := p["api_prefix"]; ok {
			opts = append(opts, strategy.APIPrefix(cast.ToString(prefix)))
		}
		return strategy.NewURLPath(opts...), nil

	case strategy.KindHeader:
		name := cast.ToString(p["name"])
		if name == "" {
			return nil, fmt.Errorf("parameter %q is required", "name")
		}
		var opts []strategy.HeaderOption
		if alts := cast.ToStringSlice(p["alternatives"]); len(alts) > 0 {
			opts = append(opts, strategy.Alternatives(alts...))
		}
		if key := cast.ToString(p["param"]); key != "" {
			opts = append(opts, strategy.HeaderParam(key))
		}
		return strategy.NewHeader(name, opts...), nil

	case strategy.KindQueryParam:
		name := cast.ToString(p["name"])
		if name == "" {
			return nil, fmt.Errorf("parameter %q is required", "name")
		}
		return strategy.NewQueryParam(name, cast.ToStringSlice(p["alternatives"])...), nil

	case strategy.KindAcceptHeader:
		var opts []strategy.AcceptOption
		if key := cast.ToString(p["param"]); key != "" {
			opts = append(opts, strategy.AcceptParam(key))
		}
		if pattern := cast.ToString(p["vendor_pattern"]); pattern != "" {
			opts = append(opts, strategy.VendorPattern(pattern))
		}
		return strategy.NewAcceptHeader(opts...), nil
	}

	return nil, fmt.Errorf("unknown strategy kind %q", sc.Kind)
}

// Matrix builds the compatibility matrix declared by the file.
func (f *File) Matrix() (*compat.Matrix, error) {
	format, err := version.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}

	m := compat.NewMatrix()
	for from, fallbacks := range f.Compatibility {
		fromVer, err := version.Parse(from, format)
		if err != nil {
			return nil, fmt.Errorf("compatibility key %q: %w", from, err)
		}
		for _, raw := range fallbacks {
			fb, err := version.Parse(raw, format)
			if err != nil {
				return nil, fmt.Errorf("compatibility %q fallback %q: %w", from, raw, err)
			}
			m.Add(fromVer, fb)
		}
	}
	return m, nil
}

// HeaderNameOverrides merges the file's header-name overrides over
// the standard names.
func (f *File) HeaderNameOverrides() deprecation.HeaderNames {
	names := deprecation.DefaultHeaderNames()
	if f.HeaderNames.Deprecation != "" {
		names.Deprecation = f.HeaderNames.Deprecation
	}
	if f.HeaderNames.Sunset != "" {
		names.Sunset = f.HeaderNames.Sunset
	}
	if f.HeaderNames.Warning != "" {
		names.Warning = f.HeaderNames.Warning
	}
	if f.HeaderNames.Link != "" {
		names.Link = f.HeaderNames.Link
	}
	return names
}

// DeprecationInfo builds the per-version lifecycle metadata declared
// by the file, keyed by canonical version string.
func (f *File) DeprecationInfo() (map[string]*deprecation.Info, error) {
	format, err := version.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}

	infos := make(map[string]*deprecation.Info, len(f.Deprecations))
	for raw, dc := range f.Deprecations {
		v, err := version.Parse(raw, format)
		if err != nil {
			return nil, fmt.Errorf("deprecations key %q: %w", raw, err)
		}

		level, err := deprecation.ParseLevel(dc.Level)
		if err != nil {
			return nil, fmt.Errorf("deprecations %q: %w", raw, err)
		}

		info := &deprecation.Info{
			Level:          level,
			Replacement:    dc.Replacement,
			Reason:         dc.Reason,
			MigrationGuide: dc.MigrationGuide,
		}
		if dc.SunsetDate != "" {
			sunset, err := parseSunset(dc.SunsetDate)
			if err != nil {
				return nil, fmt.Errorf("deprecations %q sunset_date: %w", raw, err)
			}
			info.SunsetDate = sunset
		}

		infos[v.String()] = info
	}
	return infos, nil
}

func parseSunset(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
