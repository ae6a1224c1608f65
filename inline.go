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

// InlineKind is a caller-chosen tag identifying what an [Inline]
// represents, in the same spirit as [BlockKind].
type InlineKind string

// RootInlineKind is the kind of the implicit ContainerInline created at
// the start of phase two for every leaf block.
const RootInlineKind InlineKind = "root"

// An Inline is a node in a leaf block's inline tree: either a
// ContainerInline, which groups other inlines and may be closable, or a
// LeafInline, which is terminal (literal text, a code span, an autolink,
// a hard break, ...).
type Inline struct {
	kind        InlineKind
	parser      InlineParser
	parent      *Inline
	span        Span
	isContainer bool
	children    []*Inline
	isClosable  bool
	isClosed    bool

	// Data is an extension point for parser-specific payloads (for
	// example, a link destination). The engine never reads it.
	Data any
}

// NewLeafInline creates a terminal inline node spanning the given range.
func NewLeafInline(kind InlineKind, parser InlineParser, span Span) *Inline {
	return &Inline{kind: kind, parser: parser, span: span}
}

// NewContainerInline creates a new, open container inline node. If
// closable is true, the caller is responsible for enqueueing it onto the
// to-close queue (see [InlineState.Enqueue]) so it is eventually closed.
func NewContainerInline(kind InlineKind, parser InlineParser, closable bool) *Inline {
	return &Inline{kind: kind, parser: parser, isContainer: true, isClosable: closable, span: NullSpan()}
}

// Kind returns the inline's kind, or the zero InlineKind if in is nil.
func (in *Inline) Kind() InlineKind {
	if in == nil {
		return ""
	}
	return in.kind
}

// Parser returns the [InlineParser] that created this inline, or nil for
// nodes synthesized by the engine itself (the per-leaf root, or emphasis
// wrappers produced by the post-pass).
func (in *Inline) Parser() InlineParser {
	if in == nil {
		return nil
	}
	return in.parser
}

// Parent returns the inline's parent container, or nil if in is the
// per-leaf root or is nil.
func (in *Inline) Parent() *Inline {
	if in == nil {
		return nil
	}
	return in.parent
}

// Span returns the inline's byte range in the document source.
func (in *Inline) Span() Span {
	if in == nil {
		return NullSpan()
	}
	return in.span
}

// IsContainer reports whether in groups other inlines.
func (in *Inline) IsContainer() bool {
	return in != nil && in.isContainer
}

// IsClosable reports whether in is a container awaiting closure: one
// closed in the order it was enqueued once a matching delimiter appears or at
// end-of-lines.
func (in *Inline) IsClosable() bool {
	return in != nil && in.isClosable
}

// IsClosed reports whether in has already been closed.
func (in *Inline) IsClosed() bool {
	return in == nil || in.isClosed
}

// ChildCount returns the number of children in has. Leaf inlines always
// report 0.
func (in *Inline) ChildCount() int {
	if in == nil {
		return 0
	}
	return len(in.children)
}

// Child returns the i'th child inline.
func (in *Inline) Child(i int) *Inline {
	return in.children[i]
}

// Children returns the inline's child inlines. The returned slice must
// not be modified.
func (in *Inline) Children() []*Inline {
	if in == nil {
		return nil
	}
	return in.children
}

// LastChild returns the last, most-recently-appended child, or nil if in
// has no children.
func (in *Inline) LastChild() *Inline {
	if in == nil || len(in.children) == 0 {
		return nil
	}
	return in.children[len(in.children)-1]
}

// AsNode converts in to a [Node].
func (in *Inline) AsNode() Node {
	if in == nil {
		return Node{}
	}
	return Node{typ: nodeTypeInline, ptr: unsafe.Pointer(in)}
}

// appendChild attaches child as in's new last child.
func (in *Inline) appendChild(child *Inline) {
	child.parent = in
	in.children = append(in.children, child)
}

// close marks in as closed and, if its parser implements
// [InlineCloser], invokes the close hook.
func (in *Inline) close() {
	if in.isClosed {
		return
	}
	in.isClosed = true
	if closer, ok := in.parser.(InlineCloser); ok {
		closer.CloseInline(in)
	}
}

// deepestOpenContainer descends from in, always following the last child
// while it is an open container.
func deepestOpenContainer(in *Inline) *Inline {
	for {
		last := in.LastChild()
		if last == nil || !last.isContainer || last.isClosed {
			return in
		}
		in = last
	}
}

// An InlineCloser is an optional capability an [InlineParser] may
// implement to run a hook when one of its container inlines is drained
// from the to-close queue.
type InlineCloser interface {
	CloseInline(in *Inline)
}
