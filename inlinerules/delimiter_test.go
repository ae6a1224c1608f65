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

// TestDelimiterFlankingAcrossContinuationLine checks a delimiter run that
// opens a continuation line of a multi-line leaf: the soft line break
// before it must count as whitespace on its left, not the last byte of
// the previous line (flankingRunes previously re-asked the cursor after
// the run was consumed, which always answered "not a line start").
func TestDelimiterFlankingAcrossContinuationLine(t *testing.T) {
	source, children := parseInlineText(t, "abc\n*bar*\n")
	var found *commonmark.Inline
	for _, c := range children {
		if c.Kind() == EmphasisKind {
			found = c
		}
	}
	if found == nil {
		t.Fatalf("no EmphasisKind child found among %v; the line-start delimiter run failed to open emphasis", describe(source, children))
	}
	if got := joinTextChildren(source, found.Children()); got != "bar" {
		t.Errorf("emphasis content = %q, want %q", got, "bar")
	}
}
