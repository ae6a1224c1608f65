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

// Package blockrules provides a reference set of [commonmark.BlockParser]
// implementations: Paragraph, ATX Heading, Block Quote, Thematic Break,
// Indented Code Block, Fenced Code Block, List/List Item, and a type 1/6
// HTML Block subset. Together they are enough to exercise the engine end
// to end, but they are not a claim of CommonMark conformance.
package blockrules

import "go.readio.dev/commonmark"

// codeBlockIndentLimit is the column width of an indent required to
// start an indented code block.
const codeBlockIndentLimit = 4

// isBlankLine reports whether b, a line's remaining bytes, is empty or
// consists only of spaces and tabs.
func isBlankLine(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// All returns the reference block parsers in the priority order the
// engine's new-blocks phase should try them in: block-level containers
// and one-line leaves before the catch-all Paragraph.
func All() []commonmark.BlockParser {
	return []commonmark.BlockParser{
		&ThematicBreak{},
		&ATXHeading{},
		&FencedCodeBlock{},
		&HTMLBlock{},
		&BlockQuote{},
		&ListItem{},
		&IndentedCodeBlock{},
		&Paragraph{},
	}
}
