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

import (
	"unicode"
	"unicode/utf8"

	"go.readio.dev/commonmark"
)

// EmphasisKind and StrongKind name the container kinds [Delimiter]'s
// runs resolve into once the engine's emphasis post-pass pairs them up.
const (
	EmphasisKind commonmark.InlineKind = "emphasis"
	StrongKind   commonmark.InlineKind = "strong"
)

// Delimiter recognizes a run of one or more identical '*' or '_'
// characters and stages it as a [commonmark.DelimiterRun], leaving
// resolution into actual Emphasis/Strong containers to the engine's
// post-pass.
type Delimiter struct{}

// FirstChars dispatches Delimiter on '*' and '_'.
func (*Delimiter) FirstChars() []byte { return []byte{'*', '_'} }

func (*Delimiter) Match(state *commonmark.InlineState) bool {
	c := state.Cursor()
	start := c.AbsolutePos()
	atStart := c.AtLineStart()
	ch, _ := c.Current()

	n := 0
	for !c.AtLineEnd() {
		b, _ := c.Current()
		if b != ch {
			break
		}
		c.Advance(1)
		n++
	}
	end := c.AbsolutePos()

	source := state.Leaf().Lines().Source()
	prev, next := flankingRunes(c, source, atStart, start, end)

	leftFlanking := !isUnicodeWhitespace(next) &&
		(!isUnicodePunctuation(next) || isUnicodeWhitespace(prev) || isUnicodePunctuation(prev))
	rightFlanking := !isUnicodeWhitespace(prev) &&
		(!isUnicodePunctuation(prev) || isUnicodeWhitespace(next) || isUnicodePunctuation(next))

	canOpen := leftFlanking
	canClose := rightFlanking
	if ch == '_' {
		canOpen = leftFlanking && (!rightFlanking || isUnicodePunctuation(prev))
		canClose = rightFlanking && (!leftFlanking || isUnicodePunctuation(next))
	}

	in := commonmark.NewLeafInline(TextKind, &Delimiter{}, commonmark.Span{Start: start, End: end})
	in.Data = &commonmark.DelimiterRun{
		Char:         ch,
		Count:        n,
		CanOpen:      canOpen,
		CanClose:     canClose,
		EmphasisKind: EmphasisKind,
		StrongKind:   StrongKind,
	}
	state.Inline = in
	return true
}

// flankingRunes reports the Unicode code points immediately outside
// [start, end), the run [Delimiter] just consumed, treating either side
// as a space whenever it falls outside the current physical line (an
// implicit line boundary counts as whitespace for flanking purposes)
// rather than indexing across into whatever the document source happens
// to hold between one line and the next, since a LineGroup is not
// guaranteed to be contiguous there. atStart must be the cursor's
// AtLineStart reading taken at start, before the run was consumed: by
// the time the run has been read, the cursor sits at end, so asking it
// whether start was a line start no longer gives the right answer for
// anything but a zero-length run.
func flankingRunes(c *commonmark.LineGroupCursor, source []byte, atStart bool, start, end int) (prev, next rune) {
	prev, next = ' ', ' '
	if !atStart {
		prev, _ = utf8.DecodeLastRune(source[:start])
	}
	if !c.AtLineEnd() {
		next, _ = utf8.DecodeRune(source[end:])
	}
	return prev, next
}

// isUnicodeWhitespace reports whether r is CommonMark's definition of a
// Unicode whitespace character.
func isUnicodeWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isUnicodePunctuation reports whether r is CommonMark's definition of a
// Unicode punctuation character (Unicode general categories P* or S*).
func isUnicodePunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
