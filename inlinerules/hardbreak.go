// Copyright 2024 The commonmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package inlinerules

import "go.readio.dev/commonmark"

// HardBreakKind is the kind of a hard line break, produced either here
// (two or more trailing spaces before a line ending) or by [Backslash]
// (a backslash before a line ending).
const HardBreakKind commonmark.InlineKind = "hardbreak"

// HardBreak recognizes two or more spaces immediately before the end of
// a physical line that is not the leaf's last line.
type HardBreak struct{}

// FirstChars dispatches HardBreak on ' ': a lone or non-trailing run of
// spaces simply fails to match and falls through to [Literal].
func (*HardBreak) FirstChars() []byte { return []byte{' '} }

func (*HardBreak) Match(state *commonmark.InlineState) bool {
	c := state.Cursor()
	start := c.AbsolutePos()
	n := 0
	for !c.AtLineEnd() {
		b, _ := c.Current()
		if b != ' ' {
			break
		}
		c.Advance(1)
		n++
	}
	if n < 2 || !c.AtLineEnd() || isLastPhysicalLine(c) {
		return false
	}
	end := c.AbsolutePos()
	c.NextLine() // consume the crossing ourselves so the engine doesn't also insert a SoftBreakKind
	state.Inline = commonmark.NewLeafInline(HardBreakKind, &HardBreak{}, commonmark.Span{Start: start, End: end})
	return true
}
