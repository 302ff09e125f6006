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

package echoversion

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	versioner "github.com/versioner-dev/versioner"
	"github.com/versioner-dev/versioner/routes"
	"github.com/versioner-dev/versioner/strategy"
	"github.com/versioner-dev/versioner/version"
)

func newEngine(t *testing.T) *versioner.Engine {
	t.Helper()

	v1 := version.MustParse("1.0", version.FormatSemantic)
	v2 := version.MustParse("2.0", version.FormatSemantic)
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	table, err := routes.NewBuilder().
		Endpoint("/users", "GET", v1, noop).
		Endpoint("/users", "GET", v2, noop).
		Build()
	require.NoError(t, err)

	resolver, err := strategy.NewResolver(
		strategy.WithStrategy(1, strategy.NewQueryParam("version")),
		strategy.WithDefault(v1),
	)
	require.NoError(t, err)

	engine, err := versioner.New(
		versioner.WithRoutes(table),
		versioner.WithResolver(resolver),
	)
	require.NoError(t, err)
	return engine
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(Middleware(newEngine(t)))
	e.GET("/users", func(c echo.Context) error {
		res, ok := FromContext(c)
		require.True(t, ok)
		return c.String(http.StatusOK, "served "+res.Version.String())
	})

	t.Run("resolved request reaches the handler", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/users?version=2.0", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "served 2.0", rec.Body.String())
	})

	t.Run("default version applies", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/users", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "served 1.0", rec.Body.String())
	})

	t.Run("unsupported version short-circuits", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/users?version=9.0", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDiscoveryHandler(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/versions", DiscoveryHandler(newEngine(t)))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/versions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"default_version":"1.0"`)
}
