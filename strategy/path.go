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

import "strings"

// URLPath extracts a version token from the first path segment (or
// the segment after a configured API prefix). With the default
// marker "v", "/v2/users" yields token "2" and "/api/v2/users"
// yields "2" when the prefix is "api".
type URLPath struct {
	marker    string
	apiPrefix string
}

// URLPathOption configures a URLPath strategy.
type URLPathOption func(*URLPath)

// Marker sets the character sequence that introduces the version
// segment. Default "v". An empty marker accepts a bare segment such
// as "/2024-01-15/users".
func Marker(m string) URLPathOption {
	return func(s *URLPath) {
		s.marker = m
	}
}

// APIPrefix sets an optional leading path segment (without slashes)
// that may precede the version segment, e.g. "api" for
// "/api/v1/users". Requests without the prefix still match on the
// first segment.
func APIPrefix(p string) URLPathOption {
	return func(s *URLPath) {
		s.apiPrefix = strings.Trim(p, "/")
	}
}

// NewURLPath creates a path extraction strategy.
func NewURLPath(opts ...URLPathOption) *URLPath {
	s := &URLPath{marker: "v"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Strategy.
func (s *URLPath) Name() string { return KindURLPath }

// Extract implements Strategy.
func (s *URLPath) Extract(view RequestView) (string, bool) {
	segment, _, ok := s.versionSegment(view.Path())
	if !ok {
		return "", false
	}
	return segment[len(s.marker):], true
}

// StripVersion removes the matched version segment (and nothing
// else) from path, so "/v1/users" becomes "/users". Paths without a
// version segment are returned unchanged. Route tables register
// templates without the version prefix; the engine strips before
// lookup.
func (s *URLPath) StripVersion(path string) string {
	segment, start, ok := s.versionSegment(path)
	if !ok {
		return path
	}

	rest := path[start+len(segment):]
	if rest == "" {
		rest = "/"
	}
	return path[:start-1] + rest
}

// versionSegment locates the version segment. It returns the full
// segment text, the index of its first byte, and whether it matched.
func (s *URLPath) versionSegment(path string) (string, int, bool) {
	if len(path) == 0 || path[0] != '/' {
		return "", 0, false
	}

	start := 1
	rest := path[1:]

	if s.apiPrefix != "" {
		if cut, found := strings.CutPrefix(rest, s.apiPrefix+"/"); found {
			start += len(s.apiPrefix) + 1
			rest = cut
		}
	}

	end := strings.IndexByte(rest, '/')
	segment := rest
	if end >= 0 {
		segment = rest[:end]
	}

	if len(segment) <= len(s.marker) || !strings.HasPrefix(segment, s.marker) {
		return "", 0, false
	}

	// The token must open with a digit: "/v2" matches, "/values"
	// does not.
	c := segment[len(s.marker)]
	if c < '0' || c > '9' {
		return "", 0, false
	}

	return segment, start, true
}
