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

// ListKind and ListItemKind are the kinds of blocks produced by
// [ListItem]. A List only ever holds ListItem children; a ListItem holds
// whatever the new-blocks phase opens inside it (typically a Paragraph).
const (
	ListKind     commonmark.BlockKind = "list"
	ListItemKind commonmark.BlockKind = "listitem"
)

// listData is the per-List payload stored on a List block's Data,
// recording enough about the marker that started it to decide whether a
// later marker continues this list or starts a new, nested one.
type listData struct {
	ordered bool
	bullet  byte // '-', '*', or '+' for a bullet list
	tight   bool
}

// itemData is the per-ListItem payload stored on a ListItem block's
// Data: the column width its marker and following whitespace occupied,
// which is exactly the indent a continuation line must have to remain
// part of the item.
type itemData struct {
	markerWidth int
}

// IsTightList reports whether blk, a List block produced by [ListItem],
// is tight (no blank line ever separated its items or their content).
// It reports false for any other kind of block.
func IsTightList(blk *commonmark.Block) bool {
	d, ok := blk.Data.(*listData)
	return ok && d.tight
}

// IsOrderedList reports whether blk is an ordered List.
func IsOrderedList(blk *commonmark.Block) bool {
	d, ok := blk.Data.(*listData)
	return ok && d.ordered
}

// Bullet returns the bullet character ('-', '*', or '+') that opened
// blk, an unordered List. It returns 0 for any other kind of block or
// for an ordered list.
func Bullet(blk *commonmark.Block) byte {
	d, ok := blk.Data.(*listData)
	if !ok || d.ordered {
		return 0
	}
	return d.bullet
}

// MarkerWidth returns the column width blk's own marker and following
// whitespace occupied, the indent every continuation line of blk (a
// ListItem) carries. It returns 0 for any other kind of block.
func MarkerWidth(blk *commonmark.Block) int {
	d, ok := blk.Data.(*itemData)
	if !ok {
		return 0
	}
	return d.markerWidth
}

// listContainer is the continuation parser attached to a List block
// itself (as opposed to its ListItem children). A List's own
// continuation normally just defers to whether its last ListItem
// continues (returning Continue unconditionally lets the stack walk
// reach that item), but it still has to recognize a marker of a
// different bullet/ordered type arriving at its own indent level as
// closing it, or every later list in a document would get misnested as
// an ever-deeper child of the first one instead of a sibling.
type listContainer struct{}

func (listContainer) CanInterruptParagraph() bool { return true }

func (listContainer) Match(state *commonmark.BlockState) commonmark.MatchResult {
	list := state.Pending()
	ld, ok := list.Data.(*listData)
	if !ok {
		return commonmark.Continue
	}
	c := state.Cursor()
	if c.Indent() >= codeBlockIndentLimit {
		return commonmark.Continue
	}
	c.Save()
	c.ConsumeIndent(c.Indent())
	m, matched := sniffListMarker(c.Bytes())
	c.Restore()
	if matched && (m.ordered != ld.ordered || m.bullet != ld.bullet) {
		return commonmark.NoMatch
	}
	return commonmark.Continue
}

// ListItem recognizes a bullet ('-', '*', '+') or ordered (one or more
// digits followed by '.' or ')') marker followed by a space or tab, and
// is also the continuation parser for the List container it opens. This
// is not a full CommonMark list parser: it does not special-case an
// ordered list that doesn't start at 1, or distinguish an empty first
// item's paragraph-interruption rule.
type ListItem struct{}

// CanInterruptParagraph reports true: a list marker always interrupts
// an open paragraph in this reference implementation.
func (*ListItem) CanInterruptParagraph() bool { return true }

func (*ListItem) Match(state *commonmark.BlockState) commonmark.MatchResult {
	if state.Phase() == commonmark.ContinuationPhase {
		return matchListItemContinuation(state)
	}
	return matchNewListItem(state)
}

func matchListItemContinuation(state *commonmark.BlockState) commonmark.MatchResult {
	item := state.Pending()
	d, _ := item.Data.(*itemData)
	c := state.Cursor()

	if c.IsBlankRest() {
		if list := item.Parent(); list != nil {
			if ld, ok := list.Data.(*listData); ok {
				ld.tight = false
			}
		}
		return commonmark.Continue
	}
	if d == nil || c.Indent() < d.markerWidth {
		return commonmark.NoMatch
	}
	c.ConsumeIndent(d.markerWidth)
	return commonmark.Continue
}

// listMarker is what [sniffListMarker] reports about a recognized
// bullet or ordered marker.
type listMarker struct {
	ordered   bool
	bullet    byte
	markerLen int
	blank     bool // no content (or only whitespace) follows the marker on this line
}

// sniffListMarker recognizes a bullet ('-', '*', '+') or ordered (one or
// more digits followed by '.' or ')') marker at the start of line,
// without consuming anything.
func sniffListMarker(line []byte) (m listMarker, ok bool) {
	switch {
	case len(line) > 0 && (line[0] == '-' || line[0] == '*' || line[0] == '+'):
		m.bullet = line[0]
		m.markerLen = 1
	case len(line) > 0 && line[0] >= '0' && line[0] <= '9':
		i := 0
		for i < len(line) && i < 9 && line[i] >= '0' && line[i] <= '9' {
			i++
		}
		if i >= len(line) || (line[i] != '.' && line[i] != ')') {
			return listMarker{}, false
		}
		m.ordered = true
		m.markerLen = i + 1
	default:
		return listMarker{}, false
	}

	rest := line[m.markerLen:]
	m.blank = len(rest) == 0 || rest[0] == '\r' || rest[0] == '\n'
	if !m.blank && rest[0] != ' ' && rest[0] != '\t' {
		return listMarker{}, false
	}
	return m, true
}

func matchNewListItem(state *commonmark.BlockState) commonmark.MatchResult {
	c := state.Cursor()
	indent := c.Indent()
	if indent >= codeBlockIndentLimit {
		return commonmark.NoMatch
	}
	c.Save()
	c.ConsumeIndent(indent)

	m, ok := sniffListMarker(c.Bytes())
	if !ok {
		c.Restore()
		return commonmark.NoMatch
	}
	c.Discard()

	c.Advance(m.markerLen)
	spacing := 1
	if !m.blank {
		spacing = c.Indent()
		if spacing > 4 {
			spacing = 1
		}
		c.ConsumeIndent(spacing)
	}
	markerWidth := indent + m.markerLen + spacing

	joinsExisting := false
	for i := state.StackDepth() - 1; i >= 0; i-- {
		blk := state.BlockAt(i)
		if !blk.IsOpen() {
			continue
		}
		if blk.Kind() == ListKind {
			if ld, ok := blk.Data.(*listData); ok && ld.ordered == m.ordered && ld.bullet == m.bullet {
				joinsExisting = true
			}
		}
		break
	}

	if !joinsExisting {
		list := state.NewContainer(ListKind, listContainer{})
		list.Data = &listData{ordered: m.ordered, bullet: m.bullet, tight: true}
	}
	item := state.NewContainer(ListItemKind, &ListItem{})
	item.Data = &itemData{markerWidth: markerWidth}
	return commonmark.Continue
}
