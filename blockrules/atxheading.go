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

// ATXHeadingKind is the kind of a block produced by [ATXHeading].
const ATXHeadingKind commonmark.BlockKind = "heading"

// ATXHeading recognizes a line of 1-6 '#' characters, required trailing
// whitespace (unless the line ends right there), and trims any closing
// run of '#' characters. It reports the heading's level and trimmed
// content span through Data.
type ATXHeading struct{}

// HeadingLevel is the per-block payload ATXHeading stashes on a
// Block.Data: the number of leading '#' characters (1-6).
type HeadingLevel int

// Level returns blk's heading level, or 0 if blk was not produced by
// [ATXHeading].
func Level(blk *commonmark.Block) int {
	if l, ok := blk.Data.(HeadingLevel); ok {
		return int(l)
	}
	return 0
}

// CanInterruptParagraph reports true: an ATX heading always interrupts
// an open paragraph.
func (*ATXHeading) CanInterruptParagraph() bool { return true }

// Match recognizes the line as an ATX heading, in either block phase:
// since an ATX heading never continues across lines, it is only ever
// reached from the new-blocks phase in practice, but nothing about it
// depends on that.
func (*ATXHeading) Match(state *commonmark.BlockState) commonmark.MatchResult {
	c := state.Cursor()
	line := c.Bytes()

	level := 0
	for level < len(line) && level < 7 && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return commonmark.NoMatch
	}

	i := level
	if i < len(line) && line[i] != ' ' && line[i] != '\t' {
		return commonmark.NoMatch
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	contentStart := i

	contentEnd := len(line)
	for contentEnd > contentStart && (line[contentEnd-1] == ' ' || line[contentEnd-1] == '\t') {
		contentEnd--
	}
	trailing := contentEnd
	for trailing > contentStart && line[trailing-1] == '#' {
		trailing--
	}
	if trailing < contentEnd && (trailing == contentStart || line[trailing-1] == ' ' || line[trailing-1] == '\t') {
		contentEnd = trailing
		for contentEnd > contentStart && (line[contentEnd-1] == ' ' || line[contentEnd-1] == '\t') {
			contentEnd--
		}
	}

	blk := state.NewLeaf(ATXHeadingKind, &ATXHeading{})
	blk.Data = HeadingLevel(level)
	start := c.AbsolutePos() + contentStart
	end := c.AbsolutePos() + contentEnd
	if end > start {
		blk.Lines().Append(commonmark.Span{Start: start, End: end})
	}
	c.Advance(len(line))
	return commonmark.LastDiscard
}
