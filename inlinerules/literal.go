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

// TextKind is the kind of a plain-text run produced by [Literal], and
// also reused by [Backslash] for the spans it emits.
const TextKind commonmark.InlineKind = "text"

// isSpecialByte reports whether b is the first character of some other
// registered inline construct, so [Literal] knows where a plain-text run
// has to stop and hand control back to the dispatch table.
func isSpecialByte(b byte) bool {
	switch b {
	case '\\', '`', '*', '_', '<', ' ':
		return true
	}
	return false
}

// Literal is the trailing, always-matching fallback: it greedily
// consumes a run of plain bytes, merging what would otherwise be the
// engine's own one-byte-at-a-time literal fallback into a single
// TextKind span per run. Registered with no FirstChars so it is only
// tried once every special-first-byte parser has already failed for
// the current byte.
type Literal struct{}

// FirstChars reports no specific bytes: Literal is tried as part of the
// engine's regular list, not dispatched on a single byte.
func (*Literal) FirstChars() []byte { return nil }

func (*Literal) Match(state *commonmark.InlineState) bool {
	c := state.Cursor()
	start := c.AbsolutePos()
	c.Advance(1)
	for !c.AtLineEnd() {
		b, _ := c.Current()
		if isSpecialByte(b) {
			break
		}
		c.Advance(1)
	}
	end := c.AbsolutePos()
	state.Inline = commonmark.NewLeafInline(TextKind, &Literal{}, commonmark.Span{Start: start, End: end})
	return true
}
