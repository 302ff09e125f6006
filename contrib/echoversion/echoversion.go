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

// Package echoversion adapts a versioner engine to Echo.
//
//	e := echo.New()
//	e.Use(echoversion.Middleware(engine))
//	e.GET("/users", func(c echo.Context) error {
//		res, _ := echoversion.FromContext(c)
//		...
//	})
package echoversion

import (
	"github.com/labstack/echo/v4"

	versioner "github.com/versioner-dev/versioner"
)

const contextKey = "versioner.resolution"

// Middleware resolves the request version and stores the resolution
// on the Echo context. Failed resolutions short-circuit with the
// engine's formatted error response already written.
func Middleware(engine *versioner.Engine) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res, ok := engine.Apply(c.Response(), c.Request())
			if !ok {
				return nil
			}
			c.Set(contextKey, res)
			c.SetRequest(c.Request().WithContext(versioner.NewContext(c.Request().Context(), res)))
			return next(c)
		}
	}
}

// FromContext returns the resolution stored by Middleware.
func FromContext(c echo.Context) (*versioner.Resolution, bool) {
	res, ok := c.Get(contextKey).(*versioner.Resolution)
	return res, ok
}

// DiscoveryHandler wraps the engine's discovery endpoint for Echo
// route registration.
func DiscoveryHandler(engine *versioner.Engine) echo.HandlerFunc {
	return echo.WrapHandler(engine.DiscoveryHandler())
}
