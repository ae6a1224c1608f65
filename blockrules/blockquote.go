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

// BlockQuoteKind is the kind of a block produced by [BlockQuote].
const BlockQuoteKind commonmark.BlockKind = "blockquote"

// BlockQuote recognizes a '>' marker, optionally followed by a single
// space, at the start of a line. It is a Container: its children are
// whatever the new-blocks phase opens inside it, most often a Paragraph.
//
// Dropping the marker on a later line does not close the block quote by
// itself, because the engine's lazy-continuation path may still
// reinstate it if the block quote's own last child is an open
// paragraph.
type BlockQuote struct{}

// CanInterruptParagraph reports true: a '>' marker always interrupts an
// open paragraph, even with no space before the first character.
func (*BlockQuote) CanInterruptParagraph() bool { return true }

func (*BlockQuote) Match(state *commonmark.BlockState) commonmark.MatchResult {
	c := state.Cursor()
	line := c.Bytes()
	if len(line) == 0 || line[0] != '>' {
		return commonmark.NoMatch
	}
	consumed := 1
	if len(line) > 1 && (line[1] == ' ' || line[1] == '\t') {
		consumed = 2
	}

	if state.Phase() == commonmark.NewBlocksPhase {
		state.NewContainer(BlockQuoteKind, &BlockQuote{})
	}
	c.Advance(consumed)
	return commonmark.Continue
}
