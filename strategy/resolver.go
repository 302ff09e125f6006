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

package strategy

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/versioner-dev/versioner/version"
)

// Static errors for resolver configuration validation.
var (
	ErrNoStrategies = errors.New("at least one strategy is required")
	ErrNilStrategy  = errors.New("strategy cannot be nil")
)

// MissingVersionError reports that no strategy matched the request
// and no default version was configured to fall back to.
type MissingVersionError struct{}

func (e *MissingVersionError) Error() string {
	return "no version supplied and no default version configured"
}

// HTTPStatus marks the error as a client error at the boundary.
func (e *MissingVersionError) HTTPStatus() int { return http.StatusBadRequest }

// Code returns the machine-readable error code.
func (e *MissingVersionError) Code() string { return "missing-version" }

// Resolver evaluates strategies in ascending priority order and
// parses the first extracted token into a Version.
//
// A Resolver is built once at startup and is safe for concurrent use.
type Resolver struct {
	entries    []entry
	format     version.Format
	defaultVer version.Version
	hasDefault bool
	strict     bool
}

type entry struct {
	priority int
	strategy Strategy
}

// Option configures a Resolver.
type Option func(*Resolver) error

// WithFormat sets the version format tokens are parsed under.
// Default FormatSemantic.
func WithFormat(f version.Format) Option {
	return func(r *Resolver) error {
		r.format = f
		return nil
	}
}

// WithStrategy registers a strategy at the given priority. Lower
// numeric priority wins; equal priorities keep registration order.
func WithStrategy(priority int, s Strategy) Option {
	return func(r *Resolver) error {
		if s == nil {
			return ErrNilStrategy
		}
		r.entries = append(r.entries, entry{priority: priority, strategy: s})
		return nil
	}
}

// WithDefault sets the version returned when no strategy yields a
// token. The default must be of the resolver's format.
func WithDefault(v version.Version) Option {
	return func(r *Resolver) error {
		r.defaultVer = v
		r.hasDefault = true
		return nil
	}
}

// WithStrict enables strict versioning: requests that carry no
// version token fail with *MissingVersionError instead of using a
// default. A configured default still applies — strictness only
// matters when no default exists.
func WithStrict() Option {
	return func(r *Resolver) error {
		r.strict = true
		return nil
	}
}

// NewResolver builds a Resolver from options and validates the
// configuration.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{format: version.FormatSemantic}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("invalid resolver option: %w", err)
		}
	}

	if len(r.entries) == 0 {
		return nil, ErrNoStrategies
	}
	if r.hasDefault && r.defaultVer.Format() != r.format {
		return nil, fmt.Errorf("default version %q is %s but resolver format is %s",
			r.defaultVer, r.defaultVer.Format(), r.format)
	}
	if !r.hasDefault && !r.strict {
		// Without a default, an unversioned request cannot resolve;
		// that is strict behavior whether or not it was asked for.
		r.strict = true
	}

	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].priority < r.entries[j].priority
	})

	return r, nil
}

// Resolve extracts a version from the request view.
//
// Strategies are tried in ascending priority order and the first
// non-empty token short-circuits the scan: later strategies are never
// invoked. The token is parsed under the configured format; a
// malformed token surfaces *version.InvalidVersionError and is never
// silently replaced by the default. When no strategy matches, the
// default version is returned with source SourceDefault, or
// *MissingVersionError when none is configured.
func (r *Resolver) Resolve(view RequestView) (version.Version, string, error) {
	for _, e := range r.entries {
		token, ok := e.strategy.Extract(view)
		if !ok || token == "" {
			continue
		}

		v, err := version.Parse(token, r.format)
		if err != nil {
			return version.Version{}, e.strategy.Name(), err
		}
		return v, e.strategy.Name(), nil
	}

	if r.hasDefault {
		return r.defaultVer, SourceDefault, nil
	}
	return version.Version{}, "", &MissingVersionError{}
}

// Format returns the configured version format.
func (r *Resolver) Format() version.Format { return r.format }

// Default returns the configured default version, if any.
func (r *Resolver) Default() (version.Version, bool) {
	return r.defaultVer, r.hasDefault
}

// Strict reports whether strict versioning is enabled.
func (r *Resolver) Strict() bool { return r.strict }

// Names returns the configured strategy names in priority order, for
// the discovery document.
func (r *Resolver) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.strategy.Name()
	}
	return names
}

// StripPath removes a leading version segment recognized by any
// configured URLPath strategy (including those nested in a
// Composite), so request paths can be matched against route
// templates registered without version prefixes.
func (r *Resolver) StripPath(path string) string {
	for _, e := range r.entries {
		if stripped := stripWith(e.strategy, path); stripped != path {
			return stripped
		}
	}
	return path
}

func stripWith(s Strategy, path string) string {
	switch st := s.(type) {
	case *URLPath:
		return st.StripVersion(path)
	case *Composite:
		for _, sub := range st.Strategies() {
			if stripped := stripWith(sub, path); stripped != path {
				return stripped
			}
		}
	}
	return path
}
