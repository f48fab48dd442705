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

package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftlang/drift/source"
)

func TestMemoryProvider(t *testing.T) {
	m := source.Memory{"a.b": "struct B {}"}

	r := m.TryLoad("a.b", "")
	require.Equal(t, source.Loaded, r.Status)
	require.Equal(t, "struct B {}", r.Text)

	r = m.TryLoad("nope", "")
	require.Equal(t, source.NotExists, r.Status)
}

func TestDirProviderDottedPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "c.drift"), []byte("struct C {}"), 0o644))

	d := source.Dir{Root: root}
	r := d.TryLoad("a.b.c", "")
	require.Equal(t, source.Loaded, r.Status)
	require.Equal(t, "struct C {}", r.Text)

	r = d.TryLoad("a.b.missing", "")
	require.Equal(t, source.NotExists, r.Status)
}

func TestResolveTriesProvidersInOrder(t *testing.T) {
	first := source.Memory{}
	second := source.Memory{"x": "struct X {}"}

	r := source.Resolve([]source.Provider{first, second}, "x", "")
	require.Equal(t, source.Loaded, r.Status)
	require.Equal(t, "struct X {}", r.Text)

	r = source.Resolve([]source.Provider{first, second}, "missing", "")
	require.Equal(t, source.NotExists, r.Status)
}

func TestResolveAllFansOutConcurrently(t *testing.T) {
	providers := []source.AsyncProvider{
		source.AsAsync(source.Memory{"a": "1", "b": "2"}),
	}
	requests := []source.Request{{Path: "a"}, {Path: "b"}, {Path: "missing"}}

	results, err := source.ResolveAll(context.Background(), providers, requests)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "1", results[0].Text)
	require.Equal(t, "2", results[1].Text)
	require.Equal(t, source.NotExists, results[2].Status)
}
