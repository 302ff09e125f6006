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

const versionPlaceholder = "{version}"

// AcceptHeader extracts a version token from the Accept header via
// content negotiation. Two mechanisms are supported:
//
//   - a media-type parameter, "Accept: application/json; version=2"
//     (parameter key configurable, default "version"), and
//   - a vendor media-type pattern with a {version} placeholder, as in
//     "application/vnd.api.v{version}+json" matching
//     "Accept: application/vnd.api.v2+json".
//
// The vendor pattern, when configured, is tried first for each media
// type in the comma-separated Accept list.
type AcceptHeader struct {
	paramKey      string
	vendorPrefix  string
	vendorSuffix  string
	vendorEnabled bool
}

// AcceptOption configures an AcceptHeader strategy.
type AcceptOption func(*AcceptHeader)

// AcceptParam sets the media-type parameter key to look for.
// Default "version".
func AcceptParam(key string) AcceptOption {
	return func(s *AcceptHeader) {
		s.paramKey = key
	}
}

// VendorPattern enables vendor media-type matching. The pattern must
// contain the {version} placeholder; patterns without it are ignored.
func VendorPattern(pattern string) AcceptOption {
	return func(s *AcceptHeader) {
		idx := strings.Index(pattern, versionPlaceholder)
		if idx < 0 {
			return
		}
		s.vendorPrefix = pattern[:idx]
		s.vendorSuffix = pattern[idx+len(versionPlaceholder):]
		s.vendorEnabled = true
	}
}

// NewAcceptHeader creates an Accept header extraction strategy.
func NewAcceptHeader(opts ...AcceptOption) *AcceptHeader {
	s := &AcceptHeader{paramKey: "version"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Strategy.
func (s *AcceptHeader) Name() string { return KindAcceptHeader }

// Extract implements Strategy.
func (s *AcceptHeader) Extract(view RequestView) (string, bool) {
	accept := view.Header("Accept")
	if accept == "" {
		return "", false
	}

	for mediaType := range strings.SplitSeq(accept, ",") {
		mediaType = strings.TrimSpace(mediaType)

		if s.vendorEnabled {
			bare := mediaType
			if semi := strings.IndexByte(bare, ';'); semi >= 0 {
				bare = strings.TrimSpace(bare[:semi])
			}
			if token, ok := s.matchVendor(bare); ok {
				return token, true
			}
		}

		if s.paramKey != "" {
			if _, params, found := strings.Cut(mediaType, ";"); found {
				if token, ok := paramValue(params, s.paramKey); ok {
					return token, true
				}
			}
		}
	}

	return "", false
}

func (s *AcceptHeader) matchVendor(mediaType string) (string, bool) {
	if len(mediaType) <= len(s.vendorPrefix)+len(s.vendorSuffix) {
		return "", false
	}
	if !strings.HasPrefix(mediaType, s.vendorPrefix) || !strings.HasSuffix(mediaType, s.vendorSuffix) {
		return "", false
	}
	token := mediaType[len(s.vendorPrefix) : len(mediaType)-len(s.vendorSuffix)]
	if token == "" {
		return "", false
	}
	return token, true
}
