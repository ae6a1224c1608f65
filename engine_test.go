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

package commonmark_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.readio.dev/commonmark"
	"go.readio.dev/commonmark/blockrules"
	"go.readio.dev/commonmark/inlinerules"
	"go.readio.dev/commonmark/internal/fixtures"
)

func newTestEngine(t *testing.T) *commonmark.Engine {
	t.Helper()
	e, err := commonmark.NewEngine(blockrules.All(), inlinerules.All())
	if err != nil {
		t.Fatalf("commonmark.NewEngine: %v", err)
	}
	return e
}

func parseDocument(t *testing.T, e *commonmark.Engine, input string) *commonmark.Document {
	t.Helper()
	doc, err := e.ParseLines(commonmark.NewIOLineReader(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	e.ProcessInlines(doc)
	return doc
}

// TestBoundaryScenarios runs every case in fixtures.Cases end to end and
// checks the resulting tree against its expected [fixtures.Shape].
func TestBoundaryScenarios(t *testing.T) {
	e := newTestEngine(t)
	for _, c := range fixtures.Cases {
		t.Run(c.Name, func(t *testing.T) {
			doc := parseDocument(t, e, c.Input)
			got := buildShape(doc.Source(), doc.Root(), c.Root)
			if diff := cmp.Diff(c.Root, got); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// buildShape walks blk alongside want, reading out of the tree only the
// fields want actually exercises (fixtures.Shape entries are partial
// specifications, not full dumps), so the result is something [cmp.Diff]
// can compare directly against want.
func buildShape(source []byte, blk *commonmark.Block, want fixtures.Shape) fixtures.Shape {
	got := fixtures.Shape{Kind: string(blk.Kind())}
	if want.Info != "" {
		got.Info = blockrules.Info(blk)
	}
	if want.Ordered {
		got.Ordered = blockrules.IsOrderedList(blk)
	}
	if blk.Kind() == blockrules.ListKind {
		got.Tight = blockrules.IsTightList(blk)
	}
	if want.Lines != nil {
		lg := blk.Lines()
		got.Lines = make([]string, lineCount(lg))
		for i := range got.Lines {
			got.Lines[i] = string(lg.LineBytes(i))
		}
	}

	if blk.IsLeaf() {
		if want.Children != nil {
			got.Children = buildInlineShapes(source, blk.Inline().Children(), want.Children)
		}
		return got
	}

	children := blk.Children()
	got.Children = make([]fixtures.Shape, len(children))
	for i, child := range children {
		var w fixtures.Shape
		if i < len(want.Children) {
			w = want.Children[i]
		}
		got.Children[i] = buildShape(source, child, w)
	}
	return got
}

// buildInlineShapes mirrors buildShape for a leaf's inline tree, after
// collapsing consecutive text-producing runs (literal text and the
// engine's synthesized soft breaks) into the single merged Text shape
// entry the fixture table expresses them as.
func buildInlineShapes(source []byte, children []*commonmark.Inline, want []fixtures.Shape) []fixtures.Shape {
	merged := mergeInlineRuns(source, children)
	got := make([]fixtures.Shape, len(merged))
	for i, m := range merged {
		s := fixtures.Shape{Kind: m.kind}
		var w fixtures.Shape
		if i < len(want) {
			w = want[i]
		}
		if w.Text != "" {
			s.Text = normalizeWhitespace(m.text)
		}
		if w.Children != nil && m.node != nil {
			s.Children = buildInlineShapes(source, m.node.Children(), w.Children)
		}
		got[i] = s
	}
	return got
}

type mergedInline struct {
	kind string
	text string
	node *commonmark.Inline
}

func mergeInlineRuns(source []byte, children []*commonmark.Inline) []mergedInline {
	var out []mergedInline
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, mergedInline{kind: string(inlinerules.TextKind), text: buf.String()})
			buf.Reset()
		}
	}
	for _, in := range children {
		switch in.Kind() {
		case inlinerules.TextKind:
			buf.Write(in.Span().Slice(source))
		case commonmark.SoftBreakKind:
			buf.WriteByte(' ')
		default:
			flush()
			out = append(out, mergedInline{kind: string(in.Kind()), node: in})
		}
	}
	flush()
	return out
}

// normalizeWhitespace collapses runs of whitespace to a single space, so
// a fixture's Text can express logical content ("a b") without being
// sensitive to exactly how many source-level spaces separate the words
// (a lazily-continued line keeps its own leading indent verbatim, for
// instance).
func normalizeWhitespace(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

func lineCount(lg *commonmark.LineGroup) int {
	if lg == nil {
		return -1
	}
	return lg.LineCount()
}
