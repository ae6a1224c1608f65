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

import (
	"strings"
	"sync"
)

// literalFallbackKind tags the single-byte text node the engine
// synthesizes when no [InlineParser] claims a byte: in
// practice this only fires if no Literal-style catch-all parser was
// registered, since one normally claims every byte no other parser
// wants.
const literalFallbackKind InlineKind = "text"

// SoftBreakKind tags the node the engine synthesizes when a leaf's
// LineGroup crosses from one source line to the next without an
// [InlineParser] having consumed the crossing itself (for example, by
// recognizing a hard line break).
const SoftBreakKind InlineKind = "softbreak"

// ProcessInlines runs the inline phase over every leaf in doc's tree
// that has NoInline=false, in pre-order, populating each leaf's
// [Block.Inline]. If the Engine was constructed with
// [WithParallelism] greater than 1, leaves are scanned concurrently;
// the order leaves are scheduled in never affects the result.
func (e *Engine) ProcessInlines(doc *Document) {
	leaves := collectInlineLeaves(doc.root)
	if e.parallelism <= 1 || len(leaves) <= 1 {
		for _, leaf := range leaves {
			e.runInlinePhase(leaf, nil)
		}
		return
	}
	e.runInlinesParallel(leaves)
}

// collectInlineLeaves gathers every leaf with NoInline=false from b's
// subtree, in pre-order.
func collectInlineLeaves(b *Block) []*Block {
	var out []*Block
	var walk func(*Block)
	walk = func(b *Block) {
		if b.IsLeaf() {
			if !b.NoInline() {
				out = append(out, b)
			}
			return
		}
		for _, c := range b.Children() {
			walk(c)
		}
	}
	walk(b)
	return out
}

// runInlinesParallel fans leaves out across a bounded worker pool, each
// worker holding its own [strings.Builder] for the lifetime of the
// fan-out rather than contending on the engine's shared pool.
func (e *Engine) runInlinesParallel(leaves []*Block) {
	workers := e.parallelism
	if workers > len(leaves) {
		workers = len(leaves)
	}
	builders := newPerWorkerBuilders(workers)

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			b := builders.forWorker(w)
			for i := range jobs {
				e.runInlinePhase(leaves[i], b)
			}
		}(w)
	}
	for i := range leaves {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// runInlinePhase runs the inline scanner and emphasis post-pass over a
// single leaf, assigning the resulting tree
// to leaf.Inline. worker, if non-nil, is a per-goroutine builder used
// in place of the engine's shared pool.
func (e *Engine) runInlinePhase(leaf *Block, worker *strings.Builder) {
	root := NewContainerInline(RootInlineKind, nil, false)
	state := &InlineState{
		engine: e,
		leaf:   leaf,
		root:   root,
		worker: worker,
	}
	state.cursor = *leaf.Lines().NewCursor()

	for !state.cursor.AtEnd() {
		if state.cursor.AtLineEnd() {
			state.cursor.NextLine()
			if !state.cursor.AtEnd() {
				insertSoftBreak(state)
			}
			continue
		}
		if !tryInlineDispatch(state) {
			consumeLiteralByte(state)
		}
	}

	drainToClose(state)
	resolveEmphasis(root)
	leaf.inline = root
	e.tracer.TraceLeaf(leaf, "inline phase complete")
}

// tryInlineDispatch runs one scan step of inline dispatch: the
// current byte's dispatch entry, if any, then the regular list in
// order, restoring the cursor before each attempt. It reports whether
// any parser matched.
func tryInlineDispatch(state *InlineState) bool {
	e := state.engine
	c, _ := state.cursor.Current()

	if c < 128 {
		if p := e.inlineDispatch[c]; p != nil {
			state.Inline = nil
			state.cursor.Save()
			if p.Match(state) {
				state.cursor.Discard()
				attachInlineMatch(state)
				return true
			}
			state.cursor.Restore()
		}
	}

	for _, p := range e.inlineRegular {
		state.Inline = nil
		state.cursor.Save()
		if p.Match(state) {
			state.cursor.Discard()
			attachInlineMatch(state)
			return true
		}
		state.cursor.Restore()
	}
	return false
}

// attachInlineMatch attaches the node or insertion anchor a successful
// Match left in state.Inline.
func attachInlineMatch(state *InlineState) {
	n := state.Inline
	if n != nil {
		if n.parent == nil && n != state.root {
			deepestOpenContainer(state.root).appendChild(n)
		}
		state.Enqueue(n)
		return
	}
	anchor := deepestOpenContainer(state.root)
	if last := anchor.LastChild(); last != nil && !last.isContainer {
		state.Inline = last
	} else {
		state.Inline = anchor
	}
}

// attachSynthesizedNode attaches an engine-synthesized node (a soft
// break or literal-fallback byte, neither ever produced by calling a
// parser's Match) as a new child of the leaf's deepest open container.
func attachSynthesizedNode(state *InlineState, n *Inline) {
	deepestOpenContainer(state.root).appendChild(n)
	state.Enqueue(n)
}

func insertSoftBreak(state *InlineState) {
	attachSynthesizedNode(state, NewLeafInline(SoftBreakKind, nil, NullSpan()))
}

func consumeLiteralByte(state *InlineState) {
	start := state.cursor.AbsolutePos()
	state.cursor.Advance(1)
	end := state.cursor.AbsolutePos()
	attachSynthesizedNode(state, NewLeafInline(literalFallbackKind, nil, Span{Start: start, End: end}))
}

// drainToClose runs the end-of-line-group close step: every inline
// enqueued over the leaf's scan, in enqueue order, gets its
// close hook invoked.
func drainToClose(state *InlineState) {
	for _, in := range state.toClose {
		in.close()
	}
	state.toClose = nil
}
