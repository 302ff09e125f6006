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

// Composite evaluates an ordered list of sub-strategies and yields
// the first token any of them produces. It lets several facets share
// one priority slot in the resolver.
type Composite struct {
	strategies []Strategy
}

// NewComposite creates a composite strategy over the given
// sub-strategies, evaluated in order.
func NewComposite(strategies ...Strategy) *Composite {
	return &Composite{strategies: strategies}
}

// Name implements Strategy.
func (s *Composite) Name() string { return KindComposite }

// Extract implements Strategy.
func (s *Composite) Extract(view RequestView) (string, bool) {
	for _, sub := range s.strategies {
		if token, ok := sub.Extract(view); ok && token != "" {
			return token, true
		}
	}
	return "", false
}

// Strategies returns the ordered sub-strategies.
func (s *Composite) Strategies() []Strategy {
	return s.strategies
}
