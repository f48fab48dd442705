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

package lexer

import (
	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/position"
)

// conditionFrame is one entry of the preprocessor's #if/#elseif/#else
// stack (§4.1.2).
type conditionFrame struct {
	inElse          bool
	priorConditions []bool
}

// lastCondition reports the truth value of the frame's most recently
// appended condition, which is what is_skipping consults.
func (f conditionFrame) lastCondition() bool {
	if len(f.priorConditions) == 0 {
		return false
	}
	return f.priorConditions[len(f.priorConditions)-1]
}

// noneOfPriorTrue reports whether every condition recorded in this frame
// so far evaluated to false, which #elseif and #else need to decide their
// own condition.
func (f conditionFrame) noneOfPriorTrue() bool {
	for _, c := range f.priorConditions {
		if c {
			return false
		}
	}
	return true
}

// preprocessor is the conditional-inclusion state machine embedded in the
// tokenizer: a stack of conditionFrame plus the set of currently defined
// variables.
type preprocessor struct {
	stack   []conditionFrame
	defined map[string]bool
}

func newPreprocessor(initiallyDefined map[string]bool) *preprocessor {
	defined := make(map[string]bool, len(initiallyDefined))
	for k, v := range initiallyDefined {
		if v {
			defined[k] = true
		}
	}
	return &preprocessor{defined: defined}
}

// isSkipping is true iff any frame's last recorded condition is false.
func (p *preprocessor) isSkipping() bool {
	for _, f := range p.stack {
		if !f.lastCondition() {
			return true
		}
	}
	return false
}

// apply dispatches one directive, updating the stack/defined-set and
// appending any diagnostics the transition table (§4.1.2) calls for.
func (p *preprocessor) apply(directive, arg string, hasArg bool, pos position.Position, diags *diag.Collection, file string) {
	switch directive {
	case "#if":
		if !hasArg {
			p.reportMissingArgument(diags, file, pos, "#if")
		}
		p.stack = append(p.stack, conditionFrame{
			priorConditions: []bool{hasArg && p.defined[arg]},
		})

	case "#elseif":
		if len(p.stack) == 0 {
			p.reportf(diags, file, pos, "#elseif without a matching #if")
			return
		}
		top := &p.stack[len(p.stack)-1]
		if top.inElse {
			p.reportf(diags, file, pos, "#elseif after #else")
			return
		}
		cond := top.noneOfPriorTrue() && hasArg && p.defined[arg]
		top.priorConditions = append(top.priorConditions, cond)
		if !hasArg {
			p.reportMissingArgument(diags, file, pos, "#elseif")
		}

	case "#else":
		if len(p.stack) == 0 {
			p.reportf(diags, file, pos, "#else without a matching #if")
			return
		}
		top := &p.stack[len(p.stack)-1]
		if top.inElse {
			p.reportf(diags, file, pos, "#else after #else")
			return
		}
		top.priorConditions = append(top.priorConditions, top.noneOfPriorTrue())
		top.inElse = true

	case "#endif":
		if len(p.stack) == 0 {
			p.reportf(diags, file, pos, "#endif without a matching #if")
			return
		}
		p.stack = p.stack[:len(p.stack)-1]

	case "#define":
		if !hasArg {
			p.reportMissingArgument(diags, file, pos, "#define")
			return
		}
		if !p.isSkipping() {
			p.defined[arg] = true
		}

	case "#undefine":
		if !hasArg {
			p.reportMissingArgument(diags, file, pos, "#undefine")
			return
		}
		if !p.isSkipping() {
			delete(p.defined, arg)
		}

	default:
		p.reportf(diags, file, pos, "Unknown preprocessor tag: "+directive)
	}
}

// checkUnclosed emits a warning for every #if left open at end of input.
func (p *preprocessor) checkUnclosed(diags *diag.Collection, file string, eof position.Point) {
	if len(p.stack) == 0 {
		return
	}
	p.reportfLevel(diags, diag.Warning, file, position.AtPoint(eof), "Unclosed #if at end of file")
}

func (p *preprocessor) reportMissingArgument(diags *diag.Collection, file string, pos position.Position, directive string) {
	p.reportf(diags, file, pos, directive+" requires an argument")
}

func (p *preprocessor) reportf(diags *diag.Collection, file string, pos position.Position, message string) {
	p.reportfLevel(diags, diag.Error, file, pos, message)
}

func (p *preprocessor) reportfLevel(diags *diag.Collection, level diag.Level, file string, pos position.Position, message string) {
	if diags == nil {
		return
	}
	diags.Add(diag.At(level, message, position.Location{Position: pos, File: file}))
}
