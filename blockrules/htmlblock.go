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

import (
	"golang.org/x/net/html/atom"

	"go.readio.dev/commonmark"
)

// HTMLBlockKind is the kind of a block produced by [HTMLBlock].
const HTMLBlockKind commonmark.BlockKind = "htmlblock"

// htmlBlockTagStarters is the set of block-level tag names whose
// presence at the start of a line (inside a '<' or '</') opens an
// [HTMLBlock], built from [golang.org/x/net/html/atom]'s tag table
// instead of a hand-maintained string literal list.
var htmlBlockTagStarters = []string{
	atom.Address.String(), atom.Article.String(), atom.Aside.String(),
	atom.Base.String(), atom.Basefont.String(), atom.Blockquote.String(),
	atom.Body.String(), atom.Caption.String(), atom.Center.String(),
	atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
	atom.Details.String(), atom.Dialog.String(), atom.Dir.String(),
	atom.Div.String(), atom.Dl.String(), atom.Dt.String(),
	atom.Fieldset.String(), atom.Figcaption.String(), atom.Figure.String(),
	atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
	atom.Frameset.String(), atom.H1.String(), atom.H2.String(),
	atom.H3.String(), atom.H4.String(), atom.H5.String(), atom.H6.String(),
	atom.Head.String(), atom.Header.String(), atom.Hr.String(),
	atom.Html.String(), atom.Iframe.String(), atom.Legend.String(),
	atom.Li.String(), atom.Link.String(), atom.Main.String(),
	atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(),
	atom.Noframes.String(), atom.Ol.String(), atom.Optgroup.String(),
	atom.Option.String(), atom.P.String(), atom.Param.String(),
	atom.Section.String(), atom.Source.String(), atom.Summary.String(),
	atom.Table.String(), atom.Tbody.String(), atom.Td.String(),
	atom.Tfoot.String(), atom.Th.String(), atom.Thead.String(),
	atom.Title.String(), atom.Tr.String(), atom.Track.String(),
	atom.Ul.String(),
}

// htmlBlockLiteralStarters is the set of raw-text tags whose block form
// (type 1) is not terminated by a blank line but by a matching closing
// tag anywhere later on a line.
var htmlBlockLiteralStarters = []string{"<pre", "<script", "<style", "<textarea"}

// htmlBlockLiteralEnders are the closing tags [HTMLBlock] looks for once
// it has opened on one of [htmlBlockLiteralStarters].
var htmlBlockLiteralEnders = []string{"</pre>", "</script>", "</style>", "</textarea>"}

// htmlData is the per-block payload recording which termination rule
// applies: literal (closes on a matching end tag appearing anywhere on a
// line) or blank-line-terminated (every other recognized starter).
type htmlData struct {
	literal bool
}

// HTMLBlock recognizes a line beginning with '<' followed by a
// block-level tag name (open, closing, or self-closing) and keeps
// consuming lines until a blank line, or, for the handful of raw-text
// tags in [htmlBlockLiteralStarters], until a line containing the
// matching closing tag. This is a deliberately small subset of
// CommonMark's seven HTML block start conditions: it does not
// recognize HTML comments,
// processing instructions, declarations, or CDATA sections as their own
// block types, only as ordinary text.
type HTMLBlock struct{}

// CanInterruptParagraph reports true: every recognized starter here
// interrupts an open paragraph.
func (*HTMLBlock) CanInterruptParagraph() bool { return true }

func (*HTMLBlock) Match(state *commonmark.BlockState) commonmark.MatchResult {
	if state.Phase() == commonmark.ContinuationPhase {
		return matchHTMLBlockContinuation(state)
	}
	return matchNewHTMLBlock(state)
}

func matchNewHTMLBlock(state *commonmark.BlockState) commonmark.MatchResult {
	c := state.Cursor()
	if c.Indent() >= codeBlockIndentLimit {
		return commonmark.NoMatch
	}
	c.Save()
	c.ConsumeIndent(c.Indent())
	line := c.Bytes()
	c.Restore()

	if literal := hasCaseInsensitiveTagPrefix(line, htmlBlockLiteralStarters); literal {
		blk := state.NewLeaf(HTMLBlockKind, &HTMLBlock{})
		blk.SetNoInline(true)
		blk.Data = &htmlData{literal: true}
		return commonmark.Continue
	}

	if startsBlockTag(line) {
		blk := state.NewLeaf(HTMLBlockKind, &HTMLBlock{})
		blk.SetNoInline(true)
		blk.Data = &htmlData{literal: false}
		return commonmark.Continue
	}

	return commonmark.NoMatch
}

func matchHTMLBlockContinuation(state *commonmark.BlockState) commonmark.MatchResult {
	blk := state.Pending()
	d, _ := blk.Data.(*htmlData)
	c := state.Cursor()

	if d != nil && d.literal {
		if containsCaseInsensitive(c.Bytes(), htmlBlockLiteralEnders) {
			return commonmark.Last
		}
		return commonmark.Continue
	}

	if c.IsBlankRest() {
		return commonmark.NoMatch
	}
	return commonmark.Continue
}

// startsBlockTag reports whether line opens with '<' or '</' followed by
// one of [htmlBlockTagStarters], itself followed by whitespace, '>',
// "/>", or end of line.
func startsBlockTag(line []byte) bool {
	switch {
	case len(line) >= 2 && line[0] == '<' && line[1] == '/':
		line = line[2:]
	case len(line) >= 1 && line[0] == '<':
		line = line[1:]
	default:
		return false
	}
	for _, starter := range htmlBlockTagStarters {
		if !hasCaseInsensitiveBytePrefix(line, starter) {
			continue
		}
		rest := line[len(starter):]
		if len(rest) == 0 || rest[0] == ' ' || rest[0] == '\t' ||
			rest[0] == '\r' || rest[0] == '\n' || rest[0] == '>' ||
			(len(rest) >= 2 && rest[0] == '/' && rest[1] == '>') {
			return true
		}
	}
	return false
}

func hasCaseInsensitiveTagPrefix(line []byte, starters []string) bool {
	for _, starter := range starters {
		if !hasCaseInsensitiveBytePrefix(line, starter) {
			continue
		}
		rest := line[len(starter):]
		if len(rest) == 0 || rest[0] == ' ' || rest[0] == '\t' ||
			rest[0] == '\r' || rest[0] == '\n' || rest[0] == '>' {
			return true
		}
	}
	return false
}

func hasCaseInsensitiveBytePrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toLowerASCII(b[i]) != toLowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func containsCaseInsensitive(line []byte, needles []string) bool {
	for _, needle := range needles {
		for i := 0; i+len(needle) <= len(line); i++ {
			if hasCaseInsensitiveBytePrefix(line[i:], needle) {
				return true
			}
		}
	}
	return false
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
