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

// Package format provides a function to re-emit a parsed document as
// CommonMark text, for the canonical subset of block kinds the
// reference parsers in blockrules produce.
package format

import (
	"io"
	"strings"

	"go.readio.dev/commonmark"
	"go.readio.dev/commonmark/blockrules"
	"go.readio.dev/commonmark/inlinerules"
)

// Format writes doc as CommonMark to w, walking the block tree with
// [commonmark.Walk] and, for each leaf, the leaf's inline tree in a
// nested Walk, since the block and inline trees are separate roots in
// this engine. Handles blockquote, heading, fenced, and indented-code
// blocks in addition to paragraphs, lists, and thematic breaks.
func Format(w io.Writer, doc *commonmark.Document) error {
	ww := &errWriter{w: w}
	source := doc.Source()
	indents := make(map[commonmark.Node]string)
	commonmark.Walk(doc.Root().AsNode(), &commonmark.WalkOptions{
		Pre: func(c *commonmark.Cursor) bool {
			b := c.Node().Block()
			if b == nil {
				return false
			}
			parentIndent := indents[c.Parent()]
			childIndent, descend := preBlock(ww, source, parentIndent, c)
			indents[c.Node()] = parentIndent + childIndent
			return descend
		},
	})
	return ww.err
}

func preBlock(w *errWriter, source []byte, indent string, c *commonmark.Cursor) (childIndent string, descend bool) {
	b := c.Node().Block()
	switch b.Kind() {
	case commonmark.DocumentKind:
		return "", true

	case blockrules.ParagraphKind:
		if !isListItemChild(c) {
			if w.hasWritten {
				blankLine(w, indent)
			}
			w.WriteString(indent)
		}
		writeInline(w, source, indent, b.Inline())
		w.WriteString("\n")
		return "", false

	case blockrules.ATXHeadingKind:
		if w.hasWritten {
			blankLine(w, indent)
		}
		w.WriteString(indent)
		w.WriteString(strings.Repeat("#", blockrules.Level(b)))
		w.WriteString(" ")
		writeInline(w, source, indent, b.Inline())
		w.WriteString("\n")
		return "", false

	case blockrules.ThematicBreakKind:
		if w.hasWritten {
			blankLine(w, indent)
		}
		w.WriteString(indent)
		w.WriteString("---\n")
		return "", false

	case blockrules.BlockQuoteKind:
		if w.hasWritten {
			blankLine(w, indent)
		}
		return "> ", true

	case blockrules.ListKind:
		if w.hasWritten {
			blankLine(w, indent)
		}
		return "", true

	case blockrules.ListItemKind:
		list := b.Parent()
		if w.hasWritten && !blockrules.IsTightList(list) {
			blankLine(w, indent)
		}
		marker := listMarker(list, c)
		w.WriteString(indent)
		w.WriteString(marker)
		return strings.Repeat(" ", len(marker)), true

	case blockrules.FencedCodeBlockKind:
		if w.hasWritten {
			blankLine(w, indent)
		}
		char, length := blockrules.Fence(b)
		fence := strings.Repeat(string(char), length)
		w.WriteString(indent)
		w.WriteString(fence)
		w.WriteString(blockrules.Info(b))
		w.WriteString("\n")
		writeRawLines(w, indent, b.Lines())
		w.WriteString(indent)
		w.WriteString(fence)
		w.WriteString("\n")
		return "", false

	case blockrules.IndentedCodeBlockKind:
		if w.hasWritten {
			blankLine(w, indent)
		}
		writeIndentedLines(w, indent, b.Lines())
		return "", false

	default:
		if !b.IsLeaf() {
			return "", false
		}
		if w.hasWritten {
			blankLine(w, indent)
		}
		if b.NoInline() {
			writeRawLines(w, indent, b.Lines())
		} else {
			w.WriteString(indent)
			writeInline(w, source, indent, b.Inline())
			w.WriteString("\n")
		}
		return "", false
	}
}

// isListItemChild reports whether c's parent block is a ListItem: a
// paragraph directly inside a list item never gets a blank line before
// its own text, since any blank-line separation between items belongs
// before the item's marker, not between the marker and its first block
// (see the ListItemKind handling above).
func isListItemChild(c *commonmark.Cursor) bool {
	parent := c.Parent().Block()
	return parent != nil && parent.Kind() == blockrules.ListItemKind
}

// listMarker returns the marker text (with its trailing space) for a
// ListItem whose parent is list.
func listMarker(list *commonmark.Block, c *commonmark.Cursor) string {
	if blockrules.IsOrderedList(list) {
		return "1. "
	}
	bullet := blockrules.Bullet(list)
	if bullet == 0 {
		bullet = '-'
	}
	return string(bullet) + " "
}

// blankLine writes a blank separator line. Inside a block quote
// (indent ends in "> "), the separator keeps a bare '>' rather than a
// fully empty line, since an empty line does not continue a block quote
// on reparse: a later sibling block inside the same quote would
// otherwise end up as a new, adjacent BlockQuote instead.
func blankLine(w *errWriter, indent string) {
	trimmed := strings.TrimRight(indent, " ")
	w.WriteString(trimmed)
	w.WriteString("\n")
}

func writeInline(w *errWriter, source []byte, indent string, root *commonmark.Inline) {
	if root == nil {
		return
	}
	commonmark.Walk(root.AsNode(), &commonmark.WalkOptions{
		Pre: func(c *commonmark.Cursor) bool {
			in := c.Node().Inline()
			switch in.Kind() {
			case commonmark.RootInlineKind:
				return true
			case inlinerules.EmphasisKind:
				w.WriteString("*")
				return true
			case inlinerules.StrongKind:
				w.WriteString("**")
				return true
			case commonmark.SoftBreakKind:
				w.WriteString("\n")
				w.WriteString(indent)
				return false
			case inlinerules.HardBreakKind:
				w.WriteString("  \n")
				w.WriteString(indent)
				return false
			case inlinerules.CodeSpanKind:
				writeCodeSpan(w, inlinerules.Content(in))
				return false
			default:
				if sp := in.Span(); sp.IsValid() {
					w.Write(sp.Slice(source))
				}
				return false
			}
		},
		Post: func(c *commonmark.Cursor) bool {
			switch c.Node().Inline().Kind() {
			case inlinerules.EmphasisKind:
				w.WriteString("*")
			case inlinerules.StrongKind:
				w.WriteString("**")
			}
			return true
		},
	})
}

// writeCodeSpan wraps content in enough backticks to never be confused
// with any backtick run it contains, padding with a single space on
// each side when needed so the content's own leading/trailing backtick
// (or emptiness) can't merge with the fence.
func writeCodeSpan(w *errWriter, content string) {
	longest, current := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	pad := ""
	if content == "" || content[0] == '`' || content[len(content)-1] == '`' {
		pad = " "
	}
	w.WriteString(fence)
	w.WriteString(pad)
	w.WriteString(content)
	w.WriteString(pad)
	w.WriteString(fence)
}

func writeRawLines(w *errWriter, indent string, lg *commonmark.LineGroup) {
	if lg == nil {
		return
	}
	for i := 0; i < lg.LineCount(); i++ {
		w.WriteString(indent)
		w.Write(lg.LineBytes(i))
		w.WriteString("\n")
	}
}

func writeIndentedLines(w *errWriter, indent string, lg *commonmark.LineGroup) {
	if lg == nil {
		return
	}
	for i := 0; i < lg.LineCount(); i++ {
		w.WriteString(indent)
		w.WriteString("    ")
		w.Write(lg.LineBytes(i))
		w.WriteString("\n")
	}
}

// errWriter makes every write attempt after the first error a no-op,
// so callers
// never have to check an error after each individual write.
type errWriter struct {
	w          io.Writer
	hasWritten bool
	err        error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}
