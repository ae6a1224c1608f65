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

// ParagraphBlockParser is implemented by the one [BlockParser], if any,
// responsible for plain paragraphs. The engine gives that parser special
// treatment in both block sub-phases: it is the only
// parser never probed directly during continuation (paragraphs are only
// resolved once the new-blocks phase has had a chance to interrupt or
// lazily continue them), and it is the only parser lazy continuation
// ever applies to.
//
// At most one registered [BlockParser] should implement this interface
// and return true from IsParagraphBlockParser; if more than one does,
// [NewEngine] uses the first in priority order.
type ParagraphBlockParser interface {
	BlockParser
	IsParagraphBlockParser() bool
}

// Document represents a single parsed document: its block tree, rooted
// at an implicit Document container, and the source bytes every Span in
// the tree indexes into.
type Document struct {
	root   *Block
	source []byte
}

// Root returns the implicit Document container at the root of the tree.
func (d *Document) Root() *Block {
	return d.root
}

// Source returns the document's source bytes.
func (d *Document) Source() []byte {
	return d.source
}

// Engine owns a fixed, ordered set of [BlockParser] and [InlineParser]
// collaborators and drives the two-phase block/inline parse.
// An Engine is safe for concurrent use by multiple goroutines calling
// [Engine.ParseLines] or [Engine.ProcessInlines] on independent
// documents; a single [Document]'s block phase, however, is strictly
// single-threaded.
type Engine struct {
	blockParsers   []BlockParser
	paragraphParser BlockParser

	inlineDispatch [128]InlineParser
	inlineRegular  []InlineParser

	builders    *builderPool
	tracer      Tracer
	parallelism int
}

// An EngineOption configures optional [Engine] behavior in [NewEngine].
type EngineOption func(*Engine)

// WithTracer installs a [Tracer] that receives line- and leaf-oriented
// progress notifications. The default is a no-op tracer.
func WithTracer(t Tracer) EngineOption {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// WithParallelism sets the number of worker goroutines
// [Engine.ProcessInlines] may use to process leaves concurrently.
// n<=1 (the default) processes leaves sequentially in document order.
func WithParallelism(n int) EngineOption {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// NewEngine constructs an Engine from an ordered list of block parsers
// (tried in this priority order during the new-blocks phase) and an
// ordered list of inline parsers (used to build the dispatch table and
// regular list).
//
// NewEngine returns a [ConfigError] wrapping [ErrFirstCharOutOfRange] if
// any inline parser declares a first char outside [0,128), and one
// wrapping [ErrDuplicateFirstChar] if two inline parsers claim the same
// first char.
func NewEngine(blockParsers []BlockParser, inlineParsers []InlineParser, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		blockParsers: append([]BlockParser(nil), blockParsers...),
		builders:     newBuilderPool(),
		tracer:       noopTracer{},
	}
	for _, bp := range blockParsers {
		if pp, ok := bp.(ParagraphBlockParser); ok && pp.IsParagraphBlockParser() {
			e.paragraphParser = bp
			break
		}
	}

	var regular []InlineParser
	for _, ip := range inlineParsers {
		chars := ip.FirstChars()
		if len(chars) == 0 {
			regular = append(regular, ip)
			continue
		}
		for _, c := range chars {
			if c >= 128 {
				return nil, &ConfigError{Err: ErrFirstCharOutOfRange, Parser: ip, Char: c}
			}
			if e.inlineDispatch[c] != nil {
				return nil, &ConfigError{Err: ErrDuplicateFirstChar, Parser: ip, Char: c}
			}
			e.inlineDispatch[c] = ip
		}
	}
	e.inlineRegular = regular

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}
