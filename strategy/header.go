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

// Header extracts a version token from a named request header. A
// list of alternative header names is consulted in order; the first
// header present wins. When a parameter key is configured, composite
// header values like "application/json; version=2" yield the
// parameter's value instead of the whole header.
type Header struct {
	names    []string
	paramKey string
}

// HeaderOption configures a Header strategy.
type HeaderOption func(*Header)

// Alternatives appends fallback header names consulted after the
// primary name, in order.
func Alternatives(names ...string) HeaderOption {
	return func(s *Header) {
		s.names = append(s.names, names...)
	}
}

// HeaderParam makes the strategy parse the header as a
// semicolon-separated parameter list and extract "key=value" for the
// given key rather than the raw header value.
func HeaderParam(key string) HeaderOption {
	return func(s *Header) {
		s.paramKey = key
	}
}

// NewHeader creates a header extraction strategy for the given
// primary header name.
func NewHeader(name string, opts ...HeaderOption) *Header {
	s := &Header{names: []string{name}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Strategy.
func (s *Header) Name() string { return KindHeader }

// Extract implements Strategy.
func (s *Header) Extract(view RequestView) (string, bool) {
	for _, name := range s.names {
		value := strings.TrimSpace(view.Header(name))
		if value == "" {
			continue
		}
		if s.paramKey == "" {
			return value, true
		}
		if token, ok := paramValue(value, s.paramKey); ok {
			return token, true
		}
		return "", false
	}
	return "", false
}

// paramValue pulls "key=value" out of a parameter list separated by
// ";" or ",". Values may be quoted.
func paramValue(value, key string) (string, bool) {
	for part := range strings.FieldsFuncSeq(value, func(r rune) bool { return r == ';' || r == ',' }) {
		part = strings.TrimSpace(part)
		k, v, found := strings.Cut(part, "=")
		if !found || !strings.EqualFold(strings.TrimSpace(k), key) {
			continue
		}
		v = strings.TrimSpace(v)
		v = strings.Trim(v, `"`)
		if v == "" {
			return "", false
		}
		return v, true
	}
	return "", false
}
