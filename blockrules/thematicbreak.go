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

package blockrules

import "go.readio.dev/commonmark"

// ThematicBreakKind is the kind of a block produced by [ThematicBreak].
const ThematicBreakKind commonmark.BlockKind = "thematicbreak"

// ThematicBreak recognizes a line made up of three or more '-', '_', or
// '*' characters, optionally separated by spaces or tabs, with no other
// content.
type ThematicBreak struct{}

// CanInterruptParagraph reports true: a thematic break always
// interrupts an open paragraph.
func (*ThematicBreak) CanInterruptParagraph() bool { return true }

func (*ThematicBreak) Match(state *commonmark.BlockState) commonmark.MatchResult {
	c := state.Cursor()
	line := c.Bytes()

	n := 0
	var want byte
	for _, b := range line {
		switch b {
		case '-', '_', '*':
			if n == 0 {
				want = b
			} else if b != want {
				return commonmark.NoMatch
			}
			n++
		case ' ', '\t':
			// Ignore.
		default:
			return commonmark.NoMatch
		}
	}
	if n < 3 {
		return commonmark.NoMatch
	}

	blk := state.NewLeaf(ThematicBreakKind, &ThematicBreak{})
	blk.SetNoInline(true)
	c.Advance(len(line))
	return commonmark.LastDiscard
}
