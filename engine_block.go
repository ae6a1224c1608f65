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

import "io"

// lineGrowthChunk is how many bytes ParseLines grows its owned source
// buffer by at a time: a document's accumulated source grows in fixed
// steps rather than via append's unchecked doubling.
const lineGrowthChunk = 4 * 1024

// ParseLines runs the block phase to completion, reading lines from r
// until io.EOF, and returns the resulting [Document]. The block phase
// is strictly single-threaded: ParseLines must not be called
// concurrently with itself for the same Engine from multiple goroutines
// sharing a single logical document, though independent documents may
// be parsed concurrently on the same Engine.
func (e *Engine) ParseLines(r LineReader) (*Document, error) {
	doc := newContainerBlock(DocumentKind, nil, 0)
	state := &BlockState{
		engine: e,
		stack:  []*Block{doc},
	}

	var source []byte
	lineIndex := 0
	for {
		line, err := r.NextLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		lineStart := len(source)
		source = appendGrown(source, line)
		state.lineIndex = lineIndex
		state.cursor.reset(source[lineStart:lineStart+len(line)], lineStart)

		if processPendingBlocks(state) {
			parseNewBlocks(state)
		}
		closeStaleTop(state)
		e.tracer.TraceLine(lineIndex, "line processed")
		lineIndex++
	}

	closeAtEndOfInput(state, len(source))
	setLineGroupSource(doc, source)

	return &Document{root: doc, source: source}, nil
}

// appendGrown appends line to buf, growing buf's capacity in
// [lineGrowthChunk]-sized steps rather than letting append's default
// doubling strategy run unchecked across a long document.
func appendGrown(buf, line []byte) []byte {
	need := len(buf) + len(line)
	if cap(buf) < need {
		newCap := cap(buf) + lineGrowthChunk
		for newCap < need {
			newCap += lineGrowthChunk
		}
		grown := make([]byte, len(buf), newCap)
		copy(grown, buf)
		buf = grown
	}
	return append(buf, line...)
}

// setLineGroupSource recursively points every leaf's LineGroup at the
// document's final source buffer. It runs once, after the block phase
// has finished growing that buffer, because a LineGroup's spans are
// meaningless without it.
func setLineGroupSource(b *Block, source []byte) {
	if b.IsLeaf() {
		if lg := b.Lines(); lg != nil {
			lg.SetSource(source)
		}
		return
	}
	for _, child := range b.Children() {
		setLineGroupSource(child, source)
	}
}

// closeAtEndOfInput closes every block remaining on the stack, from the
// document root down through whichever leaf is deepest, with endOffset
// as every closed block's span end.
func closeAtEndOfInput(s *BlockState, endOffset int) {
	s.stack[0].close(endOffset)
	s.stack = s.stack[:1]
}

// isParagraphBlock reports whether blk is governed by e's paragraph
// parser, if one is registered.
func isParagraphBlock(e *Engine, blk *Block) bool {
	return e.paragraphParser != nil && blk != nil && blk.parser == e.paragraphParser
}

// isParagraphParser reports whether bp is e's registered paragraph
// parser.
func isParagraphParser(e *Engine, bp BlockParser) bool {
	return e.paragraphParser != nil && bp == e.paragraphParser
}

// processPendingBlocks walks the open-block stack from shallow to
// deep, asking each open block's parser
// whether the current line continues it, and reports whether the
// new-blocks phase should run on whatever is left of the line.
func processPendingBlocks(s *BlockState) (continueLine bool) {
	top := len(s.stack) - 1
	for i := 1; i <= top; i++ {
		b := s.stack[i]

		// A paragraph is never probed directly here: the new-blocks
		// phase alone decides whether it is interrupted or lazily
		// continued. Leave it, and anything still
		// deeper than it (nothing, by the leaf-is-deepest invariant),
		// tentatively closed until that phase runs.
		if isParagraphBlock(s.engine, b) {
			markTentativelyClosed(s, i)
			return true
		}

		s.phase = ContinuationPhase
		s.pendingAt = i
		s.newBlocks = s.newBlocks[:0]
		s.leafStaged = false
		s.cursor.Save()
		result := b.parser.Match(s)

		switch result {
		case Skip:
			s.cursor.Restore()
			continue
		case NoMatch:
			s.cursor.Restore()
			markTentativelyClosed(s, i)
			return true
		}
		s.cursor.Discard()
		b.isOpen = result == Continue || result == ContinueDiscard

		if len(s.newBlocks) > 0 {
			if i != len(s.stack)-1 {
				panic(&EngineInvariantViolation{
					Reason:    "pending block parser staged a block while not the deepest open block",
					LineIndex: s.lineIndex,
					Parser:    parserName(b.parser),
				})
			}
			if attachNewBlocks(s, result, false) {
				return false // a leaf now sits at the top of the stack
			}
			if result == ContinueDiscard || result == LastDiscard {
				return false
			}
			continue
		}

		if b.isLeaf {
			if result != ContinueDiscard && result != LastDiscard {
				appendCurrentLineToLeaf(s, b)
			}
			return false
		}

		if result == ContinueDiscard || result == LastDiscard {
			return false
		}
	}
	return true
}

// markTentativelyClosed flags every stack entry from i to the top as not
// open, without popping them: actual closing is deferred to
// [attachNewBlocks]'s stale-block cleanup (or the end of the line), because a
// lazy paragraph continuation may yet reinstate all of them.
func markTentativelyClosed(s *BlockState, i int) {
	for j := i; j < len(s.stack); j++ {
		s.stack[j].isOpen = false
	}
}

// reopenStack flags every stack entry as open again, undoing a prior
// [markTentativelyClosed]: the lazy-continuation case in
// [parseNewBlocks].
func reopenStack(s *BlockState) {
	for _, b := range s.stack {
		b.isOpen = true
	}
}

// parseNewBlocks takes whatever the continuation phase left of the
// line and tries each registered
// [BlockParser] in priority order to open new blocks, repeating until
// the line is exhausted or a parser claims the rest of it.
func parseNewBlocks(s *BlockState) {
	for {
		if s.cursor.AtEOL() {
			return
		}

		matched := false
		for _, bp := range s.engine.blockParsers {
			if isParagraphBlock(s.engine, s.Deepest()) && !isParagraphParser(s.engine, bp) && !bp.CanInterruptParagraph() {
				continue
			}

			s.phase = NewBlocksPhase
			s.newBlocks = s.newBlocks[:0]
			s.leafStaged = false
			s.cursor.Save()
			result := bp.Match(s)

			if result == NoMatch || result == Skip {
				s.cursor.Restore()
				if isParagraphParser(s.engine, bp) && s.cursor.IsBlankRest() {
					return
				}
				continue
			}
			s.cursor.Discard()

			if isParagraphParser(s.engine, bp) && isParagraphBlock(s.engine, s.Deepest()) {
				appendCurrentLineToLeaf(s, s.Deepest())
				reopenStack(s)
				return
			}

			leafAtTop := attachNewBlocks(s, result, true)
			if leafAtTop || result == ContinueDiscard || result == LastDiscard {
				return
			}
			matched = true
			break
		}
		if !matched {
			return
		}
	}
}

// closeStaleTop pops and closes every block at the top of the stack
// whose IsOpen is false, stopping as soon as it reaches one still open.
// Because continuation marks a contiguous run at the top of the stack
// closed, this always stops at exactly the right boundary.
func closeStaleTop(s *BlockState) {
	end := s.cursor.AbsolutePos()
	for len(s.stack) > 1 && !s.stack[len(s.stack)-1].isOpen {
		top := s.stack[len(s.stack)-1]
		top.close(end)
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// attachNewBlocks takes the blocks staged by the Match call that just
// produced outcome, closes whatever
// is stale if allowClose permits it, attaches the staged blocks in
// order under the current deepest open container, and pushes each onto
// the open-block stack. It reports whether a leaf now sits at the top.
func attachNewBlocks(s *BlockState, outcome MatchResult, allowClose bool) (leafAtTop bool) {
	discard := outcome == ContinueDiscard || outcome == LastDiscard
	open := outcome == Continue || outcome == ContinueDiscard

	blocks := s.newBlocks
	s.newBlocks = nil

	for _, b := range blocks {
		if b.isLeaf && !discard {
			appendCurrentLineToLeaf(s, b)
		}
		if allowClose {
			closeStaleTop(s)
		}
		parent := s.stack[len(s.stack)-1]
		parent.appendChild(b)
		b.isOpen = open
		s.stack = append(s.stack, b)
		if b.isLeaf {
			return true
		}
	}
	return false
}

// appendCurrentLineToLeaf appends the span from the cursor's current
// position to the end of the current physical line to b's LineGroup,
// then advances the cursor to end of line.
func appendCurrentLineToLeaf(s *BlockState, b *Block) {
	start := s.cursor.AbsolutePos()
	end := s.cursor.LineEnd()
	if end > start {
		b.lines.Append(Span{Start: start, End: end})
	} else {
		b.lines.Append(Span{Start: start, End: start})
	}
	s.cursor.Advance(len(s.cursor.Bytes()))
}
