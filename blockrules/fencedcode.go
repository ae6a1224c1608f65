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

// FencedCodeBlockKind is the kind of a block produced by
// [FencedCodeBlock].
const FencedCodeBlockKind commonmark.BlockKind = "fencedcode"

// fenceData is the per-block payload FencedCodeBlock stores on a
// Block.Data: the fence character and run length that opened it (a
// closing fence must match the character and be at least as long), its
// indent (stripped from content lines up to that many columns), and its
// info string.
type fenceData struct {
	char   byte
	length int
	indent int
	info   string
}

// Info returns blk's fenced code block info string, or "" if blk was
// not produced by [FencedCodeBlock] or has none.
func Info(blk *commonmark.Block) string {
	if d, ok := blk.Data.(*fenceData); ok {
		return d.info
	}
	return ""
}

// Fence returns the fence character and run length that opened blk, a
// block produced by [FencedCodeBlock]. It returns (0, 0) for any other
// kind of block.
func Fence(blk *commonmark.Block) (char byte, length int) {
	if d, ok := blk.Data.(*fenceData); ok {
		return d.char, d.length
	}
	return 0, 0
}

// FencedCodeBlock recognizes a fence of three or more '`' or '~'
// characters, an optional info string on the same line, and closes on a
// matching or longer fence of the same character (or at end of input).
type FencedCodeBlock struct{}

// CanInterruptParagraph reports true: a fence always interrupts an open
// paragraph.
func (*FencedCodeBlock) CanInterruptParagraph() bool { return true }

func (*FencedCodeBlock) Match(state *commonmark.BlockState) commonmark.MatchResult {
	if state.Phase() == commonmark.ContinuationPhase {
		return matchFenceContinuation(state)
	}
	return matchNewFence(state)
}

func matchNewFence(state *commonmark.BlockState) commonmark.MatchResult {
	c := state.Cursor()
	indent := c.Indent()
	if indent >= codeBlockIndentLimit {
		return commonmark.NoMatch
	}
	c.Save()
	c.ConsumeIndent(indent)
	line := c.Bytes()

	char, length := sniffFence(line)
	if length < 3 {
		c.Restore()
		return commonmark.NoMatch
	}
	c.Discard()
	c.Advance(length)

	rest := c.Bytes()
	if char == '`' {
		for _, b := range rest {
			if b == '`' {
				return commonmark.NoMatch
			}
		}
	}
	info := trimASCIISpace(rest)

	blk := state.NewLeaf(FencedCodeBlockKind, &FencedCodeBlock{})
	blk.SetNoInline(true)
	blk.Data = &fenceData{char: char, length: length, indent: indent, info: string(info)}
	c.Advance(len(rest))
	return commonmark.ContinueDiscard
}

func matchFenceContinuation(state *commonmark.BlockState) commonmark.MatchResult {
	blk := state.Pending()
	d, _ := blk.Data.(*fenceData)
	c := state.Cursor()

	indent := c.Indent()
	if indent < codeBlockIndentLimit {
		c.Save()
		c.ConsumeIndent(indent)
		char, length := sniffFence(c.Bytes())
		if char == d.char && length >= d.length {
			rest := c.Bytes()[length:]
			if len(trimASCIISpace(rest)) == 0 {
				c.Discard()
				c.Advance(len(c.Bytes()))
				return commonmark.LastDiscard
			}
		}
		c.Restore()
	}

	strip := d.indent
	if c.Indent() < strip {
		strip = c.Indent()
	}
	c.ConsumeIndent(strip)
	return commonmark.Continue
}

// sniffFence reports the fence character and run length at the start of
// line, or length 0 if line does not begin with a run of 3+ identical
// '`' or '~' characters.
func sniffFence(line []byte) (char byte, length int) {
	if len(line) == 0 || (line[0] != '`' && line[0] != '~') {
		return 0, 0
	}
	char = line[0]
	for length < len(line) && line[length] == char {
		length++
	}
	if length < 3 {
		return 0, 0
	}
	return char, length
}

func trimASCIISpace(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}
