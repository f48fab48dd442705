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

// Package source defines the source-file ingestion contract the core
// consumes but never implements directly (§6.2), plus a couple of
// reference Providers real embedders can register: an in-memory map and
// a filesystem directory rooted against a `using` target.
//
// try_load(requested, current) resolves a `using` path (a dotted
// identifier or string literal, per §4.2.1's using_def) against whichever
// file is doing the requesting, trying each registered Provider in turn
// until one reports Loaded or Error; NotExists from every provider means
// the import could not be found anywhere.
package source

import "github.com/driftlang/drift/diag"

// Status is the three-way outcome of a single Provider.TryLoad call.
type Status int

const (
	// Loaded means Text and URI are populated.
	Loaded Status = iota
	// NotExists means this provider has nothing for the request; the
	// resolver should keep trying the remaining providers.
	NotExists
	// Error means this provider recognized the request but failed to
	// satisfy it (e.g. a permission error, a malformed path); resolution
	// stops and the diagnostic is surfaced to the caller.
	Error
)

// Result is the outcome of resolving one `using` target.
type Result struct {
	Status Status
	Text   string // populated only when Status == Loaded
	URI    string // populated only when Status == Loaded

	// Diag is populated only when Status == Error; it is not appended to
	// any diag.Collection automatically, since the caller is the one
	// holding the collection the failing using_def belongs to.
	Diag diag.Diagnostic
}

// Provider is the synchronous source-provider contract (§5, §6.2): given
// a requested path and the URI of the file that requested it (empty for
// a root file with no requester), it reports whether it can supply that
// source text.
//
// A Provider must not block on anything but the I/O needed to answer
// this one call; the core never calls TryLoad mid-parse (§5 "Suspension
// points: none within the tokenizer/parser themselves").
type Provider interface {
	TryLoad(requested string, current string) Result
}

// Resolve tries each provider in order, returning the first Loaded or
// Error result. If every provider reports NotExists, Resolve itself
// returns a NotExists Result.
func Resolve(providers []Provider, requested string, current string) Result {
	for _, p := range providers {
		r := p.TryLoad(requested, current)
		if r.Status != NotExists {
			return r
		}
	}
	return Result{Status: NotExists}
}
