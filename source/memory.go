// Copyright 2026 The Drift Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

// Memory is a Provider backed by a fixed map from `using` path to source
// text, useful for tests and for embedders that already have every file
// in memory (e.g. an IDE's open-buffer set).
type Memory map[string]string

// TryLoad implements Provider. The requesting file (current) is ignored;
// Memory resolves every path against the same flat namespace.
func (m Memory) TryLoad(requested string, _ string) Result {
	text, ok := m[requested]
	if !ok {
		return Result{Status: NotExists}
	}
	return Result{Status: Loaded, Text: text, URI: requested}
}
