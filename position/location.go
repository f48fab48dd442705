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

package position

import "fmt"

// Location pairs a Position with the file it occurs in. File is whatever
// URI or path the embedder used to identify the source (it is opaque to
// this package).
type Location struct {
	Position Position
	File     string
}

// Unlocated is the Location with an Unknown Position and no file.
var Unlocated = Location{Position: Unknown}

// IsUnknown reports whether this Location carries no real position.
func (l Location) IsUnknown() bool {
	return l.Position.IsUnknown()
}

func (l Location) String() string {
	if l.IsUnknown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Position.Start.Line, l.Position.Start.Column)
}

// Equal reports structural equality of file and position.
func (l Location) Equal(m Location) bool {
	return l.File == m.File && l.Position.Equal(m.Position)
}
