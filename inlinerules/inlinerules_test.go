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

package inlinerules

import (
	"strings"
	"testing"

	"go.readio.dev/commonmark"
)

func TestIsASCIIPunctuation(t *testing.T) {
	for _, b := range []byte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~") {
		if !isASCIIPunctuation(b) {
			t.Errorf("isASCIIPunctuation(%q) = false; want true", b)
		}
	}
	for _, b := range []byte("abcZYX019 \t") {
		if isASCIIPunctuation(b) {
			t.Errorf("isASCIIPunctuation(%q) = true; want false", b)
		}
	}
}

// paragraphParser is a minimal commonmark.BlockParser, local to this test
// package, that absorbs every non-blank line into one leaf: just enough
// block-phase machinery to drive the inline parsers under test without
// depending on package blockrules.
type paragraphParser struct{}

func (paragraphParser) IsParagraphBlockParser() bool      { return true }
func (paragraphParser) CanInterruptParagraph() bool       { return false }
func (paragraphParser) Match(state *commonmark.BlockState) commonmark.MatchResult {
	if state.Cursor().IsBlankRest() {
		return commonmark.NoMatch
	}
	state.NewLeaf("paragraph", paragraphParser{})
	return commonmark.Continue
}

// parseInlineText parses input as a single paragraph and returns the
// leaf's children after inline processing, for tests that need to drive
// a real [commonmark.InlineState] rather than call a parser's Match
// directly.
func parseInlineText(t *testing.T, input string) (source []byte, children []*commonmark.Inline) {
	t.Helper()
	e, err := commonmark.NewEngine([]commonmark.BlockParser{paragraphParser{}}, All())
	if err != nil {
		t.Fatalf("commonmark.NewEngine: %v", err)
	}
	doc, err := e.ParseLines(commonmark.NewIOLineReader(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	e.ProcessInlines(doc)
	leaf := doc.Root().Children()[0]
	return doc.Source(), leaf.Inline().Children()
}
