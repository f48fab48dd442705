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

package diag

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/driftlang/drift/position"
)

// SourceLookup resolves a file identifier to its full text, for rendering
// an arrow-annotated snippet underneath a positioned diagnostic (§4.4).
// Implementations are typically backed by a chain of source.Provider
// values (see the source package); this interface, rather than a concrete
// dependency on that package, is what lets diag avoid importing it (the
// source package constructs Diagnostic values on load failure, so the
// dependency can only go one way).
type SourceLookup interface {
	Source(file string) (text string, ok bool)
}

// Render formats a single Diagnostic as "LEVEL (file:line:col): message",
// followed by an arrow-annotated snippet when lookup can resolve the file,
// followed by any sub-errors indented one level further. If lookup is nil,
// or cannot resolve the file, only the message line (and sub-errors) are
// rendered.
func Render(d Diagnostic, lookup SourceLookup) string {
	var b strings.Builder
	renderInto(&b, d, lookup, 0)
	return b.String()
}

func renderInto(b *strings.Builder, d Diagnostic, lookup SourceLookup, depth int) {
	indent := strings.Repeat("  ", depth)

	tag := strings.ToUpper(d.Level.String())
	if d.Located {
		fmt.Fprintf(b, "%s%s (%s): %s\n", indent, tag, d.Location, d.Message)
	} else {
		fmt.Fprintf(b, "%s%s: %s\n", indent, tag, d.Message)
	}

	if d.Located && lookup != nil {
		if text, ok := lookup.Source(d.Location.File); ok {
			if snippet, ok := snippetFor(text, d.Location.Position); ok {
				for _, line := range strings.Split(snippet, "\n") {
					fmt.Fprintf(b, "%s%s\n", indent, line)
				}
			}
		}
	}

	for _, sub := range d.SubErrors {
		renderInto(b, sub, lookup, depth+1)
	}
}

// snippetFor extracts the source line the diagnostic's position starts on,
// plus a caret line underneath pointing at the offending span.
func snippetFor(text string, pos position.Position) (string, bool) {
	if pos.IsUnknown() {
		return "", false
	}

	lines := strings.Split(text, "\n")
	lineIdx := pos.Start.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return "", false
	}
	line := lines[lineIdx]

	startCol := pos.Start.Column - 1
	width := 1
	if pos.Start.Line == pos.End.Line && pos.End.Column > pos.Start.Column {
		width = pos.End.Column - pos.Start.Column
	}

	caretOffset := displayWidth(clampPrefix(line, startCol))
	caret := strings.Repeat(" ", caretOffset) + strings.Repeat("^", width)

	return line + "\n" + caret, true
}

// clampPrefix returns the prefix of line up to byte offset n, clamped to
// line's length.
func clampPrefix(line string, n int) string {
	if n < 0 {
		return ""
	}
	if n > len(line) {
		n = len(line)
	}
	return line[:n]
}

// displayWidth returns the number of terminal display cells s occupies,
// summing the width of each grapheme cluster. This is what lets the caret
// under a snippet line up correctly when the prefix contains multi-byte
// or wide runes, rather than assuming one byte (or one rune) is one cell.
func displayWidth(s string) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "" {
			break
		}
		if w <= 0 {
			w = 1
		}
		width += w
	}
	return width
}
