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

// MatchResult is the outcome a [BlockParser] reports from Match.
type MatchResult int

const (
	// NoMatch means the parser did not recognize the line. The parser
	// must leave the cursor restorable to its entry position.
	NoMatch MatchResult = iota
	// Continue means the parser recognized the line and wishes its
	// block to remain open; the line may still be passed on to other
	// parsers or appended to a leaf.
	Continue
	// ContinueDiscard is like Continue, but the remaining line is
	// consumed: it will not be appended to a leaf's LineGroup.
	ContinueDiscard
	// Last means the parser recognized the line but closes its block
	// after this line; the line may still be appended.
	Last
	// LastDiscard is Last with the remaining line discarded.
	LastDiscard
	// Skip means, in the continuation phase only, that the pending
	// block makes no claim on this line and yields to the next level
	// without closing itself. Returned from the new-blocks phase, Skip
	// is treated identically to NoMatch.
	Skip
)

// String returns the constant's name for the result, for use in trace
// messages and test failures.
func (r MatchResult) String() string {
	switch r {
	case NoMatch:
		return "NoMatch"
	case Continue:
		return "Continue"
	case ContinueDiscard:
		return "ContinueDiscard"
	case Last:
		return "Last"
	case LastDiscard:
		return "LastDiscard"
	case Skip:
		return "Skip"
	default:
		return "MatchResult(" + itoa(int(r)) + ")"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// A BlockParser recognizes one kind of block-level Markdown construct. The
// engine calls Match once per open block per line (continuation phase)
// and once per candidate new block per line (new-blocks phase); which
// phase is active is visible through [BlockState.Phase].
//
// Match must leave the state's cursor restorable to its entry position
// whenever it returns NoMatch: callers are expected to wrap position
// changes in cursor.Save()/cursor.Restore() and only cursor.Discard() on
// success.
type BlockParser interface {
	Match(state *BlockState) MatchResult

	// CanInterruptParagraph reports whether this parser may start a new
	// block in the middle of an open paragraph. It is queried
	// once per Match call in the new-blocks phase, not cached, so it
	// may legitimately depend on parser configuration (it must not
	// depend on mutable state.BlockState).
	CanInterruptParagraph() bool
}

// BlockPhase identifies which of the two block-phase sub-phases is
// invoking a [BlockParser].
type BlockPhase int

const (
	// ContinuationPhase is the continuation sub-phase: the parser is
	// being asked whether its own, already-open block continues.
	ContinuationPhase BlockPhase = iota
	// NewBlocksPhase is the new-blocks sub-phase: the parser is being
	// asked whether it recognizes the start of a new block.
	NewBlocksPhase
)

// BlockState is the mutable context threaded through [BlockParser.Match]
// calls during the block phase. A BlockState is never shared across
// goroutines: the block phase is strictly single-threaded.
type BlockState struct {
	engine *Engine

	phase     BlockPhase
	cursor    LineCursor
	stack     []*Block // open-block stack; stack[0] is always the Document
	pendingAt int      // index into stack of the block currently being matched (continuation phase only)
	lineIndex int

	newBlocks  []*Block
	leafStaged bool
}

// Phase reports which block-phase sub-phase is currently invoking Match.
func (s *BlockState) Phase() BlockPhase {
	return s.phase
}

// Cursor returns the state's [LineCursor], positioned within the line
// currently being scanned.
func (s *BlockState) Cursor() *LineCursor {
	return &s.cursor
}

// LineIndex returns the 0-based index of the line currently being
// scanned.
func (s *BlockState) LineIndex() int {
	return s.lineIndex
}

// StackDepth returns the number of blocks on the open-block stack,
// including the Document at index 0.
func (s *BlockState) StackDepth() int {
	return len(s.stack)
}

// BlockAt returns the open-block stack's i'th entry (0 is the Document).
func (s *BlockState) BlockAt(i int) *Block {
	return s.stack[i]
}

// Deepest returns the open-block stack's deepest (most recently pushed)
// entry.
func (s *BlockState) Deepest() *Block {
	return s.stack[len(s.stack)-1]
}

// Pending returns the block whose continuation is currently being
// tested. It is only meaningful during [ContinuationPhase]; during
// [NewBlocksPhase] it returns the same value as [BlockState.Deepest],
// the container a new block would attach under.
func (s *BlockState) Pending() *Block {
	if s.phase == ContinuationPhase {
		return s.stack[s.pendingAt]
	}
	return s.stack[len(s.stack)-1]
}

// NewContainer stages a new, open container block of the given kind,
// governed by parser. Staged blocks are attached to the tree by the
// engine after Match returns; parser must not assume the block has a
// parent yet.
func (s *BlockState) NewContainer(kind BlockKind, parser BlockParser) *Block {
	if s.leafStaged {
		panic(&EngineInvariantViolation{
			Reason:    "block parser staged a block after a leaf",
			LineIndex: s.lineIndex,
			Parser:    parserName(parser),
		})
	}
	b := newContainerBlock(kind, parser, s.lineIndex)
	s.newBlocks = append(s.newBlocks, b)
	return b
}

// NewLeaf stages a new, open leaf block of the given kind, governed by
// parser. A leaf-producing parser must be terminal: calling
// NewContainer or NewLeaf again in the same Match call after this one
// panics with an [EngineInvariantViolation].
func (s *BlockState) NewLeaf(kind BlockKind, parser BlockParser) *Block {
	if s.leafStaged {
		panic(&EngineInvariantViolation{
			Reason:    "block parser staged more than one leaf",
			LineIndex: s.lineIndex,
			Parser:    parserName(parser),
		})
	}
	b := newLeafBlock(kind, parser, s.lineIndex)
	s.newBlocks = append(s.newBlocks, b)
	s.leafStaged = true
	return b
}

// Builder borrows a [strings.Builder] from the engine's shared pool. The
// caller must return it with [BlockState.PutBuilder] on every exit path,
// including failure.
func (s *BlockState) Builder() *strings.Builder {
	return s.engine.builders.get()
}

// PutBuilder returns a builder previously borrowed with
// [BlockState.Builder].
func (s *BlockState) PutBuilder(b *strings.Builder) {
	s.engine.builders.put(b)
}

func parserName(p any) string {
	if p == nil {
		return "<nil>"
	}
	type namer interface{ String() string }
	if n, ok := p.(namer); ok {
		return n.String()
	}
	return goTypeName(p)
}
