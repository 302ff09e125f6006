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
	"net/http"
	"strings"
)

// RequestView is the read-only slice of a request that strategies may
// inspect. The engine never needs the request body.
type RequestView interface {
	// Path returns the URL path ("/v1/users").
	Path() string

	// Method returns the HTTP method.
	Method() string

	// Header returns the first value of the named header, or "".
	Header(name string) string

	// QueryParam returns the value of the named query parameter, or
	// "". An empty value is indistinguishable from absence, which is
	// fine for version tokens: an empty token is no token.
	QueryParam(name string) string
}

// ViewHTTP adapts an *http.Request into a RequestView.
func ViewHTTP(req *http.Request) RequestView {
	return httpView{req: req}
}

type httpView struct {
	req *http.Request
}

func (v httpView) Path() string {
	if v.req.URL == nil {
		return ""
	}
	return v.req.URL.Path
}

func (v httpView) Method() string {
	return v.req.Method
}

func (v httpView) Header(name string) string {
	return v.req.Header.Get(name)
}

// QueryParam scans RawQuery directly instead of materializing the
// full url.Values map; version lookups touch at most a couple of
// parameters per request.
func (v httpView) QueryParam(name string) string {
	if v.req.URL == nil {
		return ""
	}
	value, _ := scanQuery(v.req.URL.RawQuery, name)
	return value
}

// scanQuery looks for "name=" at a parameter boundary (start of the
// query or after "&") and returns the value up to the next "&".
func scanQuery(rawQuery, name string) (string, bool) {
	if rawQuery == "" || name == "" {
		return "", false
	}

	pattern := name + "="
	search := rawQuery
	offset := 0
	for {
		idx := strings.Index(search, pattern)
		if idx == -1 {
			return "", false
		}
		if idx == 0 && offset == 0 || (offset+idx > 0 && rawQuery[offset+idx-1] == '&') {
			start := offset + idx + len(pattern)
			if start >= len(rawQuery) {
				return "", true
			}
			if end := strings.IndexByte(rawQuery[start:], '&'); end >= 0 {
				return rawQuery[start : start+end], true
			}
			return rawQuery[start:], true
		}
		// Substring match inside another parameter name; keep looking.
		search = search[idx+1:]
		offset += idx + 1
	}
}
