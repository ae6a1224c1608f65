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

func TestCodeSpan(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantIdx int // index of the CodeSpanKind node among the leaf's children
	}{
		{"simple", "`code`", "code", 0},
		{"longer fence lets literal backtick through", "``co`de``", "co`de", 0},
		{"leading and trailing space stripped once", "` code `", "code", 0},
		{"all-space content keeps its space", "` `", " ", 0},
		{"line ending collapses to one space", "`a\nb`", "a b", 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source, children := parseInlineText(t, test.input)
			if len(children) <= test.wantIdx || children[test.wantIdx].Kind() != CodeSpanKind {
				t.Fatalf("parseInlineText(%q): no CodeSpanKind child at %d (children: %v)", test.input, test.wantIdx, describe(source, children))
			}
			if got := Content(children[test.wantIdx]); got != test.want {
				t.Errorf("Content(...) = %q; want %q", got, test.want)
			}
		})
	}
}

func TestCodeSpanUnterminatedFallsBackToLiteral(t *testing.T) {
	_, children := parseInlineText(t, "`code")
	for _, c := range children {
		if c.Kind() == CodeSpanKind {
			t.Fatalf("unterminated backtick run should not produce a CodeSpanKind node: %v", children)
		}
	}
}

func describe(source []byte, children []*commonmark.Inline) []string {
	s := make([]string, len(children))
	for i, c := range children {
		if sp := c.Span(); sp.IsValid() {
			s[i] = string(c.Kind()) + ":" + string(sp.Slice(source))
		} else {
			s[i] = string(c.Kind())
		}
	}
	return s
}
