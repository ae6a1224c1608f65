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

// Package commonmark implements a two-phase Markdown parsing engine.
//
// A first phase ([Engine.ParseLines]) recognizes block-level structure —
// paragraphs, headings, quotes, lists, and the like — by scanning lines
// top to bottom against a stack of currently open containers. A second
// phase ([Engine.ProcessInlines]) walks the resulting block tree and
// resolves inline structure — emphasis, code spans, autolinks — inside
// each leaf block's accumulated text.
//
// Both phases are driven by pluggable collaborators, [BlockParser] and
// [InlineParser], rather than by a fixed grammar: the engine owns the
// line-by-line protocol and the tree bookkeeping, and parsers own the
// per-syntax recognition logic. The commonmark package ships a modest
// reference set of such parsers (see the blockrules and inlinerules
// packages) so the engine can be exercised end to end, but conformance
// with any particular Markdown dialect is the parsers' concern, not the
// engine's.
package commonmark
