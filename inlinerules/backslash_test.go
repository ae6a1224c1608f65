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
	"testing"

	"go.readio.dev/commonmark"
)

func TestBackslashEscape(t *testing.T) {
	source, children := parseInlineText(t, `a\*b`)
	if got := joinTextChildren(source, children); got != "a*b" {
		t.Errorf("text = %q, want %q (%v)", got, "a*b", describe(source, children))
	}
}

func TestBackslashNonPunctuationKeptLiteral(t *testing.T) {
	source, children := parseInlineText(t, `a\qb`)
	if got := joinTextChildren(source, children); got != `a\qb` {
		t.Errorf("text = %q, want %q (%v)", got, `a\qb`, describe(source, children))
	}
}

// joinTextChildren concatenates every TextKind child's literal span,
// for asserting on logical content without depending on exactly how
// many separate TextKind nodes the scanner happened to emit.
func joinTextChildren(source []byte, children []*commonmark.Inline) string {
	var s string
	for _, c := range children {
		if c.Kind() == TextKind {
			s += string(c.Span().Slice(source))
		}
	}
	return s
}

func TestBackslashEndOfLineIsHardBreak(t *testing.T) {
	_, children := parseInlineText(t, "a\\\nb\n")
	var kinds []string
	for _, c := range children {
		kinds = append(kinds, string(c.Kind()))
	}
	want := []string{string(TextKind), string(HardBreakKind), string(TextKind)}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds = %v, want %v", kinds, want)
			break
		}
	}
}

func TestBackslashAtEndOfLastLineStaysLiteral(t *testing.T) {
	source, children := parseInlineText(t, "a\\")
	for _, c := range children {
		if c.Kind() != TextKind {
			t.Fatalf("got %v, want only TextKind children (no hard break on the leaf's last line)", describe(source, children))
		}
	}
	if got := joinTextChildren(source, children); got != `a\` {
		t.Errorf("text = %q, want %q", got, `a\`)
	}
}
