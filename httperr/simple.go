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
	"errors"
	"net/http"
)

// Simple formats errors as a flat JSON object:
//
//	{"error": "...", "code": "...", "status": 400, "details": ...}
//
// for clients that do not speak problem+json.
type Simple struct{}

// NewSimple creates a Simple formatter.
func NewSimple() *Simple {
	return &Simple{}
}

type simpleBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

// Format implements Formatter.
func (f *Simple) Format(_ *http.Request, err error) Response {
	status := statusOf(err)

	body := simpleBody{
		Error:  err.Error(),
		Status: status,
	}
	var coded ErrorCode
	if errors.As(err, &coded) {
		body.Code = coded.Code()
	}
	var detailed ErrorDetails
	if errors.As(err, &detailed) {
		body.Details = detailed.Details()
	}

	return Response{
		Status:      status,
		ContentType: "application/json; charset=utf-8",
		Body:        body,
	}
}
