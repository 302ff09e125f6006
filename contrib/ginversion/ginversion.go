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

// Package ginversion adapts a versioner engine to Gin.
//
// The middleware resolves every request up front and aborts with the
// engine's error response when resolution fails; handlers read the
// resolution with FromContext and typically dispatch on
// Resolution.Version:
//
//	r := gin.New()
//	r.Use(ginversion.Middleware(engine))
//	r.GET("/users", func(c *gin.Context) {
//		res, _ := ginversion.FromContext(c)
//		...
//	})
package ginversion

import (
	"github.com/gin-gonic/gin"

	versioner "github.com/versioner-dev/versioner"
)

const contextKey = "versioner.resolution"

// Middleware resolves the request version and stores the resolution
// on the Gin context. Failed resolutions abort the chain with the
// engine's formatted error response.
func Middleware(engine *versioner.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := engine.Apply(c.Writer, c.Request)
		if !ok {
			c.Abort()
			return
		}
		c.Set(contextKey, res)
		c.Request = c.Request.WithContext(versioner.NewContext(c.Request.Context(), res))
		c.Next()
	}
}

// FromContext returns the resolution stored by Middleware.
func FromContext(c *gin.Context) (*versioner.Resolution, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return nil, false
	}
	res, ok := value.(*versioner.Resolution)
	return res, ok
}

// DiscoveryHandler wraps the engine's discovery endpoint for Gin
// route registration.
func DiscoveryHandler(engine *versioner.Engine) gin.HandlerFunc {
	return gin.WrapH(engine.DiscoveryHandler())
}
