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

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AsyncProvider is the asynchronous flavor of the source-provider
// contract (§5): it returns once ctx is cancelled or the load completes.
// Cancellation cancels only the I/O; it is never observed mid-parse,
// since loading always happens strictly before parsing begins (§5
// "Suspension points").
type AsyncProvider interface {
	TryLoadAsync(ctx context.Context, requested, current string) (Result, error)
}

// syncAsAsync adapts a synchronous Provider to AsyncProvider by running
// it inline; ctx is only checked before starting, never polled during
// the (assumed-fast) synchronous call.
type syncAsAsync struct{ Provider }

func (s syncAsAsync) TryLoadAsync(ctx context.Context, requested, current string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return s.Provider.TryLoad(requested, current), nil
}

// AsAsync wraps a synchronous Provider so it can be passed to
// ResolveAll alongside genuinely asynchronous providers.
func AsAsync(p Provider) AsyncProvider { return syncAsAsync{p} }

// ResolveAll resolves every one of requests concurrently against
// providers, fanning the work out across goroutines via errgroup and
// returning results in the same order as requests. Each request tries
// providers in order until one reports something other than NotExists.
// The first provider error for any request cancels the context passed to
// the other requests, and ResolveAll then returns that error and no
// results at all, not even those of requests that had already succeeded.
func ResolveAll(ctx context.Context, providers []AsyncProvider, requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))
	g, ctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			r, err := resolveOneAsync(ctx, providers, req.Path, req.Current)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Request is one `using` target to resolve, paired with the URI of the
// file that requested it.
type Request struct {
	Path    string
	Current string
}

func resolveOneAsync(ctx context.Context, providers []AsyncProvider, requested, current string) (Result, error) {
	for _, p := range providers {
		r, err := p.TryLoadAsync(ctx, requested, current)
		if err != nil {
			return Result{}, err
		}
		if r.Status != NotExists {
			return r, nil
		}
	}
	return Result{Status: NotExists}, nil
}
