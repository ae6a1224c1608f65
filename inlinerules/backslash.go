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

// Backslash recognizes a backslash escape: '\' followed by ASCII
// punctuation emits that punctuation character as a literal, a lone '\'
// at the end of a line emits a [HardBreak] (unless it is also the last
// line of the leaf, where it stays literal text), and '\' followed by
// anything else is kept as two literal bytes.
type Backslash struct{}

// FirstChars dispatches Backslash on '\' alone.
func (*Backslash) FirstChars() []byte { return []byte{'\\'} }

func (*Backslash) Match(state *commonmark.InlineState) bool {
	c := state.Cursor()
	start := c.AbsolutePos()
	c.Advance(1)

	if c.AtLineEnd() {
		if isLastPhysicalLine(c) {
			state.Inline = commonmark.NewLeafInline(TextKind, &Backslash{}, commonmark.Span{Start: start, End: start + 1})
			return true
		}
		c.NextLine() // consume the crossing ourselves so the engine doesn't also insert a SoftBreakKind
		state.Inline = commonmark.NewLeafInline(HardBreakKind, &Backslash{}, commonmark.Span{Start: start, End: start + 1})
		return true
	}

	b, _ := c.Current()
	if isASCIIPunctuation(b) {
		c.Advance(1)
		end := c.AbsolutePos()
		state.Inline = commonmark.NewLeafInline(TextKind, &Backslash{}, commonmark.Span{Start: start + 1, End: end})
		return true
	}

	c.Advance(1)
	end := c.AbsolutePos()
	state.Inline = commonmark.NewLeafInline(TextKind, &Backslash{}, commonmark.Span{Start: start, End: end})
	return true
}

// isLastPhysicalLine reports whether c has no further lines left in its
// LineGroup beyond the one it currently rests at the end of.
func isLastPhysicalLine(c *commonmark.LineGroupCursor) bool {
	c.Save()
	c.NextLine()
	atEnd := c.AtEnd()
	c.Restore()
	return atEnd
}
