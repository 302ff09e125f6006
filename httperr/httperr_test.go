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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVersionError struct{}

func (fakeVersionError) Error() string    { return "version 3.0 is not supported" }
func (fakeVersionError) HTTPStatus() int  { return http.StatusBadRequest }
func (fakeVersionError) Code() string     { return "unsupported-version" }
func (fakeVersionError) Details() any     { return map[string]any{"available": []string{"1.0", "2.0"}} }

func TestRFC9457Format(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/users", nil)

	t.Run("structural error", func(t *testing.T) {
		t.Parallel()
		f := NewRFC9457("https://api.example.com/problems")
		f.ErrorIDGenerator = func() string { return "err-test" }

		resp := f.Format(req, fakeVersionError{})
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, "application/problem+json; charset=utf-8", resp.ContentType)

		data, err := json.Marshal(resp.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(data, &body))
		assert.Equal(t, "https://api.example.com/problems/unsupported-version", body["type"])
		assert.Equal(t, "Bad Request", body["title"])
		assert.Equal(t, float64(http.StatusBadRequest), body["status"])
		assert.Equal(t, "version 3.0 is not supported", body["detail"])
		assert.Equal(t, "/users", body["instance"])
		assert.Equal(t, "unsupported-version", body["code"])
		assert.Equal(t, "err-test", body["error_id"])
		assert.NotNil(t, body["errors"])
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		t.Parallel()
		f := NewRFC9457("")
		f.DisableErrorID = true

		resp := f.Format(req, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, resp.Status)

		data, err := json.Marshal(resp.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(data, &body))
		assert.Equal(t, "about:blank", body["type"])
		assert.NotContains(t, body, "error_id")
	})

	t.Run("wrapped error keeps its mapping", func(t *testing.T) {
		t.Parallel()
		f := NewRFC9457("")
		wrapped := errors.Join(errors.New("context"), fakeVersionError{})
		resp := f.Format(req, wrapped)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}

func TestSimpleFormat(t *testing.T) {
	t.Parallel()

	resp := NewSimple().Format(nil, fakeVersionError{})
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "application/json; charset=utf-8", resp.ContentType)

	body, ok := resp.Body.(simpleBody)
	require.True(t, ok)
	assert.Equal(t, "unsupported-version", body.Code)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.NotNil(t, body.Details)
}

func TestWithStatus(t *testing.T) {
	t.Parallel()

	err := WithStatus(errors.New("gone"), http.StatusGone)
	var typed ErrorType
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, http.StatusGone, typed.HTTPStatus())
	assert.Equal(t, "gone", err.Error())

	nilErr := WithStatus(nil, http.StatusTeapot)
	assert.Equal(t, http.StatusText(http.StatusTeapot), nilErr.Error())
}

func TestResponseWrite(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewSimple().Format(nil, fakeVersionError{}).Write(rec)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unsupported-version", body["code"])
}
