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

// Package diag implements the positioned diagnostics pipeline: Diagnostic,
// the de-duplicating Collection with scoped overrides, and the
// OrderedCollection used by the parser to pick the most-promising
// explanation among several competing failed productions.
package diag

import "fmt"

// Level is the severity of a Diagnostic.
type Level int8

const (
	// Error indicates a syntax or internal error; has_errors reports true
	// when a collection contains at least one.
	Error Level = iota
	Warning
	Information
	Hint
	OptimizationNotice
	FailedOptimization
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "information"
	case Hint:
		return "hint"
	case OptimizationNotice:
		return "optimization notice"
	case FailedOptimization:
		return "failed optimization"
	default:
		return fmt.Sprintf("diag.Level(%d)", int(l))
	}
}

// IsErrorLevel reports whether a diagnostic at this level counts toward
// Collection.HasErrors.
func (l Level) IsErrorLevel() bool {
	return l == Error
}
