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

import "strings"

// An InlineParser recognizes one kind of inline-level Markdown construct
// within a leaf block's accumulated text. Match inspects and
// advances state's cursor; on success it either creates a new inline
// node and stores it at state.Inline, or mutates already-open inlines
// (for example, closing a span) and leaves state.Inline referencing a
// valid insertion point. On failure it must leave state.Inline nil and
// leave the cursor's position to the caller to restore.
type InlineParser interface {
	Match(state *InlineState) bool

	// FirstChars returns the set of bytes for which Match is worth
	// trying, used to build the engine's dispatch table. An
	// empty result means the parser is "regular": it is tried, in
	// registration order, for any character the dispatch table didn't
	// resolve. Every byte returned must be < 128; a parser that
	// violates this is a construction-time error.
	FirstChars() []byte
}

// InlineState is the mutable context threaded through
// [InlineParser.Match] calls during the inline phase. Each leaf block
// gets its own InlineState; leaves may be processed concurrently as long
// as each InlineState's data stays disjoint from
// every other's (true here, since each is a fresh value over the leaf's
// own LineGroup).
type InlineState struct {
	engine *Engine

	leaf   *Block
	cursor LineGroupCursor
	root   *Inline

	// Inline is the current inline insertion point. A successful Match
	// either sets it to a newly created node or, if it mutated existing
	// state instead, leaves it as a valid anchor for the next parser. A
	// failing Match must set it to nil.
	Inline *Inline

	toClose []*Inline

	// worker, when non-nil, is a per-goroutine builder handed out by a
	// parallel inline phase instead of the shared pool, so
	// concurrent leaves never contend on sync.Pool's internal locking.
	worker *strings.Builder
}

// Leaf returns the leaf block whose text is being scanned.
func (s *InlineState) Leaf() *Block {
	return s.leaf
}

// Root returns the per-leaf root ContainerInline created at the start of
// phase two.
func (s *InlineState) Root() *Inline {
	return s.root
}

// Cursor returns the state's [LineGroupCursor].
func (s *InlineState) Cursor() *LineGroupCursor {
	return &s.cursor
}

// Enqueue adds a closable inline to the to-close queue if it is not
// already closed and is not already the tail of the queue. It
// is normally called by a parser that just produced a new, open
// ContainerInline via [NewContainerInline].
func (s *InlineState) Enqueue(in *Inline) {
	if in == nil || in.isClosed || !in.isClosable {
		return
	}
	if len(s.toClose) > 0 && s.toClose[len(s.toClose)-1] == in {
		return
	}
	s.toClose = append(s.toClose, in)
}

// Builder borrows a [strings.Builder], from a parallel inline phase's
// per-worker builder if one was assigned, otherwise from the engine's
// shared pool.
func (s *InlineState) Builder() *strings.Builder {
	if s.worker != nil {
		s.worker.Reset()
		return s.worker
	}
	return s.engine.builders.get()
}

// PutBuilder returns a builder previously borrowed with
// [InlineState.Builder]. It is a no-op for a per-worker builder, which
// the worker keeps for its entire lifetime.
func (s *InlineState) PutBuilder(b *strings.Builder) {
	if s.worker != nil && b == s.worker {
		return
	}
	s.engine.builders.put(b)
}
