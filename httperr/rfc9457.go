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

package httperr

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// RFC9457 formats errors as RFC 9457 Problem Details with
// Content-Type "application/problem+json".
type RFC9457 struct {
	// BaseURL is prepended to problem type slugs to form full type
	// URIs, e.g. "https://api.example.com/problems" + "/missing-version".
	BaseURL string

	// ErrorIDGenerator overrides the random error_id generation,
	// mainly for tests.
	ErrorIDGenerator func() string

	// DisableErrorID drops the error_id extension entirely.
	DisableErrorID bool
}

// NewRFC9457 creates an RFC 9457 formatter. baseURL may be empty, in
// which case bare code slugs are used as type URIs.
func NewRFC9457(baseURL string) *RFC9457 {
	return &RFC9457{BaseURL: baseURL}
}

// ProblemDetail is an RFC 9457 problem detail body. Extensions are
// marshaled inline next to the standard members.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"-"`
}

// MarshalJSON merges extensions into the top-level object. Reserved
// member names cannot be shadowed by extensions.
func (p ProblemDetail) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"type":   p.Type,
		"title":  p.Title,
		"status": p.Status,
	}
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}
	for k, v := range p.Extensions {
		switch k {
		case "type", "title", "status", "detail", "instance":
		default:
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// Format implements Formatter.
func (f *RFC9457) Format(req *http.Request, err error) Response {
	status := statusOf(err)

	p := ProblemDetail{
		Type:       f.typeOf(err),
		Title:      http.StatusText(status),
		Status:     status,
		Detail:     err.Error(),
		Extensions: make(map[string]any),
	}
	if req != nil && req.URL != nil {
		p.Instance = req.URL.Path
	}

	if !f.DisableErrorID {
		if f.ErrorIDGenerator != nil {
			p.Extensions["error_id"] = f.ErrorIDGenerator()
		} else {
			p.Extensions["error_id"] = generateErrorID()
		}
	}

	var coded ErrorCode
	if errors.As(err, &coded) {
		p.Extensions["code"] = coded.Code()
	}
	var detailed ErrorDetails
	if errors.As(err, &detailed) {
		p.Extensions["errors"] = detailed.Details()
	}

	return Response{
		Status:      status,
		ContentType: "application/problem+json; charset=utf-8",
		Body:        p,
	}
}

func (f *RFC9457) typeOf(err error) string {
	var coded ErrorCode
	if !errors.As(err, &coded) {
		return "about:blank"
	}
	if f.BaseURL == "" {
		return coded.Code()
	}
	return f.BaseURL + "/" + coded.Code()
}

func statusOf(err error) int {
	var typed ErrorType
	if errors.As(err, &typed) {
		return typed.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// generateErrorID returns a correlation ID for log/response
// matching. Falls back to a timestamp ID if the random source fails.
func generateErrorID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("err-%d", time.Now().UnixNano())
	}
	return "err-" + hex.EncodeToString(bytes)
}
