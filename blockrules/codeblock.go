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

// IndentedCodeBlockKind is the kind of a block produced by
// [IndentedCodeBlock].
const IndentedCodeBlockKind commonmark.BlockKind = "codeblock"

// IndentedCodeBlock recognizes a line indented by four or more columns.
// Blank lines continue it without extending its visible content, and
// unlike every other reference parser it cannot interrupt a paragraph:
// an indented line under an open paragraph is lazily absorbed as
// paragraph text instead.
type IndentedCodeBlock struct{}

// CanInterruptParagraph reports false: indentation alone never starts a
// code block in the middle of an open paragraph.
func (*IndentedCodeBlock) CanInterruptParagraph() bool { return false }

func (*IndentedCodeBlock) Match(state *commonmark.BlockState) commonmark.MatchResult {
	c := state.Cursor()

	if state.Phase() == commonmark.ContinuationPhase {
		if c.IsBlankRest() {
			return commonmark.Continue
		}
		if c.Indent() < codeBlockIndentLimit {
			return commonmark.NoMatch
		}
		c.ConsumeIndent(codeBlockIndentLimit)
		return commonmark.Continue
	}

	if c.IsBlankRest() {
		return commonmark.NoMatch
	}
	if c.Indent() < codeBlockIndentLimit {
		return commonmark.NoMatch
	}
	c.ConsumeIndent(codeBlockIndentLimit)
	blk := state.NewLeaf(IndentedCodeBlockKind, &IndentedCodeBlock{})
	blk.SetNoInline(true)
	return commonmark.Continue
}
