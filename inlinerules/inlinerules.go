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

// Package inlinerules provides reference [commonmark.InlineParser]
// implementations: literal text, backslash escapes, code spans,
// emphasis delimiter runs, autolinks, and hard line breaks.
package inlinerules

import "go.readio.dev/commonmark"

// isASCIIPunctuation reports whether c is one of the ASCII punctuation
// characters CommonMark recognizes for backslash escapes.
func isASCIIPunctuation(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}

// All returns every reference [commonmark.InlineParser] in registration
// priority order: special constructs before the trailing literal
// catch-all.
func All() []commonmark.InlineParser {
	return []commonmark.InlineParser{
		&Backslash{},
		&CodeSpan{},
		&Delimiter{},
		&Autolink{},
		&HardBreak{},
		&Literal{},
	}
}
