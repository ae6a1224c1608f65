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

// CodeSpanKind is the kind of an inline produced by [CodeSpan].
const CodeSpanKind commonmark.InlineKind = "codespan"

// codeSpanData is the normalized text CodeSpan stores on its Inline's
// Data, since a code span's rendered content (line endings collapsed to
// single spaces, one leading/trailing space stripped) is not simply a
// slice of the document source the way most other inlines' content is.
type codeSpanData struct {
	content string
}

// Content returns in's normalized code span text, or "" if in was not
// produced by [CodeSpan].
func Content(in *commonmark.Inline) string {
	if d, ok := in.Data.(*codeSpanData); ok {
		return d.content
	}
	return ""
}

// CodeSpan recognizes a run of one or more '`' characters, consumes
// through a matching-length closing run (possibly crossing into later
// lines of the same leaf, with each crossing collapsed to a single
// space), and fails if no closing run of the same length exists before
// the leaf ends.
type CodeSpan struct{}

// FirstChars dispatches CodeSpan on '`'.
func (*CodeSpan) FirstChars() []byte { return []byte{'`'} }

func (*CodeSpan) Match(state *commonmark.InlineState) bool {
	c := state.Cursor()
	start := c.AbsolutePos()

	openLen := consumeBacktickRun(c)
	if openLen == 0 {
		return false
	}

	b := state.Builder()
	for {
		if c.AtEnd() {
			state.PutBuilder(b)
			return false
		}
		if c.AtLineEnd() {
			b.WriteByte(' ')
			c.NextLine()
			continue
		}
		ch, _ := c.Current()
		if ch != '`' {
			b.WriteByte(ch)
			c.Advance(1)
			continue
		}

		c.Save()
		runLen := consumeBacktickRun(c)
		if runLen == openLen {
			c.Discard()
			break
		}
		c.Restore()
		b.WriteByte('`')
		c.Advance(1)
	}

	end := c.AbsolutePos()
	content := normalizeCodeSpanContent(b.String())
	state.PutBuilder(b)

	state.Inline = commonmark.NewLeafInline(CodeSpanKind, &CodeSpan{}, commonmark.Span{Start: start, End: end})
	state.Inline.Data = &codeSpanData{content: content}
	return true
}

// consumeBacktickRun advances c past a run of consecutive '`' characters
// on the current line and reports its length.
func consumeBacktickRun(c *commonmark.LineGroupCursor) int {
	n := 0
	for !c.AtLineEnd() {
		b, _ := c.Current()
		if b != '`' {
			break
		}
		c.Advance(1)
		n++
	}
	return n
}

// normalizeCodeSpanContent strips exactly one leading and trailing space
// from s if both are present and s is not made up entirely of spaces,
// per CommonMark's code span rule.
func normalizeCodeSpanContent(s string) string {
	if len(s) < 2 {
		return s
	}
	allSpaces := true
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			allSpaces = false
			break
		}
	}
	if allSpaces {
		return s
	}
	if s[0] == ' ' && s[len(s)-1] == ' ' {
		return s[1 : len(s)-1]
	}
	return s
}
