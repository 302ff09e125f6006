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
	"encoding/json"
	"net/http"
)

// Formatter converts an error into the components of an HTTP error
// response. Implementations must be safe for concurrent use.
type Formatter interface {
	Format(req *http.Request, err error) Response
}

// Response is a formatted error ready to be written.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// ContentType is the Content-Type header value.
	ContentType string

	// Body is marshaled to JSON when written.
	Body any
}

// Write sends the response. JSON encoding failures after the status
// line are unrecoverable and ignored.
func (r Response) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", r.ContentType)
	w.WriteHeader(r.Status)
	_ = json.NewEncoder(w).Encode(r.Body)
}

// ErrorType lets an error declare its own HTTP status code.
type ErrorType interface {
	error
	HTTPStatus() int
}

// ErrorCode lets an error expose a machine-readable code, used as
// the problem type slug.
type ErrorCode interface {
	error
	Code() string
}

// ErrorDetails lets an error expose structured payload for clients,
// such as the list of available versions.
type ErrorDetails interface {
	error
	Details() any
}

// WithStatus wraps an error with an explicit HTTP status code,
// overriding whatever the error itself declares. A nil err uses the
// status text as the message.
func WithStatus(err error, status int) error {
	return &statusError{err: err, status: status}
}

type statusError struct {
	err    error
	status int
}

func (e *statusError) Error() string {
	if e.err == nil {
		return http.StatusText(e.status)
	}
	return e.err.Error()
}

func (e *statusError) Unwrap() error { return e.err }

func (e *statusError) HTTPStatus() int { return e.status }
