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

// ParagraphKind is the kind of a block produced by [Paragraph].
const ParagraphKind commonmark.BlockKind = "paragraph"

// Paragraph absorbs consecutive non-blank lines into a single leaf. It
// is the engine's designated [commonmark.ParagraphBlockParser]: the
// engine never probes it directly during the continuation phase, and it
// is the sole target of lazy continuation.
type Paragraph struct{}

var _ commonmark.ParagraphBlockParser = (*Paragraph)(nil)

// IsParagraphBlockParser reports true: Paragraph is the one parser the
// engine treats specially for lazy continuation.
func (*Paragraph) IsParagraphBlockParser() bool { return true }

// CanInterruptParagraph reports false: a paragraph never needs to
// interrupt itself. This value is never consulted by the engine, since
// Paragraph is skipped entirely in the interruption check.
func (*Paragraph) CanInterruptParagraph() bool { return false }

// Match opens a new Paragraph leaf, unless the line is blank. The leaf
// stays open (Continue) so later lines can extend it through the
// lazy-continuation path; a later blank line or an interrupting
// block is what actually closes it.
func (*Paragraph) Match(state *commonmark.BlockState) commonmark.MatchResult {
	if state.Cursor().IsBlankRest() {
		return commonmark.NoMatch
	}
	state.NewLeaf(ParagraphKind, &Paragraph{})
	return commonmark.Continue
}
