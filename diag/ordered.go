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

// Ordered pairs a Diagnostic with an Importance: how far the failed
// production that produced it managed to advance before giving up. The
// parser uses this to decide, among several alternatives that all failed
// on the same input (function vs. operator vs. alias vs. struct vs.
// statement, say), which failure is most likely to be the one the user
// actually wants to hear about.
type Ordered struct {
	Importance int
	Diagnostic Diagnostic
	Sub        []Ordered
}

// NewOrdered wraps d with an importance score.
func NewOrdered(importance int, d Diagnostic) Ordered {
	return Ordered{Importance: importance, Diagnostic: d}
}

// OrderedCollection accumulates Ordered diagnostics from several competing
// alternatives and, at Compile, yields only those tied for the highest
// Importance recorded — the others are discarded as less-promising
// explanations of the same failure (§3.3, §8.1 invariant 7).
type OrderedCollection struct {
	entries []Ordered
}

// Add records a new candidate.
func (c *OrderedCollection) Add(o Ordered) {
	c.entries = append(c.entries, o)
}

// Len reports how many candidates have been recorded.
func (c *OrderedCollection) Len() int {
	return len(c.entries)
}

// Max returns the highest Importance recorded, or 0 if nothing was added.
func (c *OrderedCollection) Max() int {
	max := 0
	for _, e := range c.entries {
		if e.Importance > max {
			max = e.Importance
		}
	}
	return max
}

// Compile returns the Diagnostics of every entry whose Importance equals
// the maximum Importance recorded, in the order they were added. An empty
// collection compiles to nil.
func (c *OrderedCollection) Compile() []Diagnostic {
	if len(c.entries) == 0 {
		return nil
	}
	max := c.Max()

	out := make([]Diagnostic, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Importance != max {
			continue
		}
		d := e.Diagnostic
		for _, sub := range flattenSub(e.Sub, max) {
			d.SubErrors = append(d.SubErrors, sub)
		}
		out = append(out, d)
	}
	return out
}

// flattenSub applies the same max-importance filter recursively to a
// candidate's own recorded sub-alternatives.
func flattenSub(subs []Ordered, parentMax int) []Diagnostic {
	if len(subs) == 0 {
		return nil
	}
	local := &OrderedCollection{entries: subs}
	return local.Compile()
}

// CompileInto appends the result of Compile onto dest.
func (c *OrderedCollection) CompileInto(dest *Collection) {
	for _, d := range c.Compile() {
		dest.Add(d)
	}
}
