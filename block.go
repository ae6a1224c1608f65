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

package commonmark

import "unsafe"

// BlockKind is a caller-chosen tag identifying what a [Block] represents
// (for example, "paragraph" or "blockquote"). Unlike a closed enum, kinds
// are just strings a [BlockParser] picks when it opens a block: the engine
// never switches on them, only the parser that owns a block and any code
// inspecting the finished tree do.
type BlockKind string

// DocumentKind is the kind of the implicit root container every document
// tree begins with.
const DocumentKind BlockKind = "document"

// A Block is a structural element of a parsed document: either a
// Container, which holds other blocks, or a Leaf, which owns a [LineGroup]
// of source text and (after phase two) an inline tree.
//
// Blocks are created by a [BlockParser]'s Match method and mutated only
// through the [BlockState] passed to that method; callers should treat a
// finished tree's Blocks as read-only.
type Block struct {
	kind   BlockKind
	parser BlockParser
	parent *Block
	span   Span
	isOpen bool

	startLine int

	// Container data.
	children []*Block

	// Leaf data.
	isLeaf   bool
	noInline bool
	lines    *LineGroup
	inline   *Inline

	// Data is an extension point for parser-specific payloads (for
	// example, a fenced code block's fence character and info string, or
	// a list's bullet/ordering state). The engine never reads it.
	Data any
}

// newContainerBlock creates a new, open container block.
func newContainerBlock(kind BlockKind, parser BlockParser, startLine int) *Block {
	return &Block{
		kind:      kind,
		parser:    parser,
		isOpen:    true,
		startLine: startLine,
		span:      NullSpan(),
	}
}

// newLeafBlock creates a new, open leaf block with a fresh, empty
// [LineGroup].
func newLeafBlock(kind BlockKind, parser BlockParser, startLine int) *Block {
	return &Block{
		kind:      kind,
		parser:    parser,
		isOpen:    true,
		isLeaf:    true,
		startLine: startLine,
		span:      NullSpan(),
		lines:     newLineGroup(),
	}
}

// Kind returns the block's kind, or [DocumentKind] if b is nil.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return DocumentKind
	}
	return b.kind
}

// Parser returns the [BlockParser] that created and continues to match
// this block, or nil for the document root or a nil block.
func (b *Block) Parser() BlockParser {
	if b == nil {
		return nil
	}
	return b.parser
}

// Parent returns the block's parent, or nil if b is the document root or
// is nil. The parent reference is a relation, not ownership: the tree
// owns children, and this pointer must never be used to mutate the parent
// outside of the block phase.
func (b *Block) Parent() *Block {
	if b == nil {
		return nil
	}
	return b.parent
}

// IsOpen reports whether the block is still open to continuation. Once a
// block is closed (IsOpen reports false), no further line content may be
// appended to it.
func (b *Block) IsOpen() bool {
	return b != nil && b.isOpen
}

// IsLeaf reports whether the block is a leaf (owns a [LineGroup] and,
// after phase two, an inline tree) as opposed to a container.
func (b *Block) IsLeaf() bool {
	return b != nil && b.isLeaf
}

// StartLine returns the 0-based source line index where the block began.
func (b *Block) StartLine() int {
	if b == nil {
		return -1
	}
	return b.startLine
}

// Span returns a zero-width span at the source byte offset where the
// block was closed, or [NullSpan] while it is still open. The block's
// start offset is not recorded; [Block.StartLine] gives its first line.
func (b *Block) Span() Span {
	if b == nil {
		return NullSpan()
	}
	return b.span
}

// NoInline reports whether phase two should skip this leaf.
func (b *Block) NoInline() bool {
	return b != nil && b.noInline
}

// SetNoInline suppresses phase two for this leaf block.
func (b *Block) SetNoInline(v bool) {
	b.noInline = v
}

// Lines returns the block's [LineGroup], or nil if b is not a leaf.
func (b *Block) Lines() *LineGroup {
	if b == nil || !b.isLeaf {
		return nil
	}
	return b.lines
}

// Inline returns the root of the block's inline tree, populated by phase
// two. It is nil before phase two runs or if b is not a leaf.
func (b *Block) Inline() *Inline {
	if b == nil {
		return nil
	}
	return b.inline
}

// ChildCount returns the number of child blocks b has. Leaves always
// report 0.
func (b *Block) ChildCount() int {
	if b == nil {
		return 0
	}
	return len(b.children)
}

// Child returns the i'th child block.
func (b *Block) Child(i int) Node {
	return b.children[i].AsNode()
}

// Children returns the block's child blocks. The returned slice must not
// be modified.
func (b *Block) Children() []*Block {
	if b == nil {
		return nil
	}
	return b.children
}

// AsNode converts b to a [Node].
func (b *Block) AsNode() Node {
	if b == nil {
		return Node{}
	}
	return Node{typ: nodeTypeBlock, ptr: unsafe.Pointer(b)}
}

// lastChild returns the last, deepest-appended child block, or nil if b
// has no children.
func (b *Block) lastChild() *Block {
	if b == nil || len(b.children) == 0 {
		return nil
	}
	return b.children[len(b.children)-1]
}

// close closes b (even when a continuation miss has already cleared its
// open flag) and every open descendant reachable by following last
// children, stamping each with the same end-of-span byte offset. Closing
// a nil block is a no-op. Closing a container cascades to its descendants
// because only the last child of an open container can itself be open.
func (b *Block) close(endOffset int) {
	for cur := b; cur != nil && (cur == b || cur.isOpen); cur = cur.lastChild() {
		cur.isOpen = false
		if cur.span.Start < 0 {
			cur.span = Span{Start: endOffset, End: endOffset}
		} else {
			cur.span.End = endOffset
		}
		if cur.parser != nil {
			if finalizer, ok := cur.parser.(BlockFinalizer); ok {
				finalizer.Finalize(cur)
			}
		}
	}
}

// appendChild attaches child as the last child of b, setting child's
// parent back-reference.
func (b *Block) appendChild(child *Block) {
	child.parent = b
	b.children = append(b.children, child)
}

// A BlockFinalizer is an optional capability a [BlockParser] may implement
// to run a hook when one of its blocks is closed. No further line content
// may be appended to blk by the time Finalize runs.
type BlockFinalizer interface {
	Finalize(blk *Block)
}
