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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/driftlang/drift/diag"
)

// Dir is a Provider rooted at a directory on the local filesystem. A
// `using` path such as "a.b.c" resolves to "<root>/a/b/c.drift"; a
// `using` string literal such as "relative/path.drift" resolves as-is
// underneath root.
//
// Extensions lists the file extensions tried, in order, when the
// requested path has none of its own; it defaults to {"drift"} when nil.
type Dir struct {
	Root       string
	Extensions []string
}

var _ Provider = Dir{}

// TryLoad implements Provider.
func (d Dir) TryLoad(requested string, _ string) Result {
	rel := dottedToPath(requested)
	extns := d.Extensions
	if len(extns) == 0 {
		extns = []string{"drift"}
	}

	candidates := []string{rel}
	if filepath.Ext(rel) == "" {
		for _, ext := range extns {
			candidates = append(candidates, rel+"."+ext)
		}
	}

	for _, c := range candidates {
		full := filepath.Join(d.Root, c)
		bytes, err := os.ReadFile(full)
		if err == nil {
			return Result{Status: Loaded, Text: string(bytes), URI: filepath.ToSlash(full)}
		}
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return Result{Status: Error, Diag: diag.New(diag.Error, "could not read "+full+": "+err.Error())}
	}
	return Result{Status: NotExists}
}

// dottedToPath turns a dotted `using` identifier path ("a.b.c") into a
// slash-separated relative path ("a/b/c"). A path that contains a slash
// or backslash is left alone, since it came from a string-literal form of
// using_def rather than the dotted-identifier form (§4.2.1). A path with
// no slash is always split on dots, including one such as "x.drift".
func dottedToPath(requested string) string {
	if strings.ContainsAny(requested, "/\\") {
		return filepath.FromSlash(requested)
	}
	return strings.Join(strings.Split(requested, "."), string(filepath.Separator))
}

// Glob matches pattern (which may use doublestar's `**` to search nested
// directories) against fsys. It is meant for embedders that scatter
// drift sources across a tree with an irregular layout that a single Dir
// root cannot express, e.g. `source.Glob(os.DirFS(root), "**/*.drift")`.
func Glob(fsys fs.FS, pattern string) ([]string, error) {
	return doublestar.Glob(fsys, pattern)
}
