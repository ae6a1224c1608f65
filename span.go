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

// Span is a half-open byte range [Start, End) into a document's source
// text. Every block and inline node carries a Span that locates it within
// the original bytes it was parsed from.
type Span struct {
	Start int
	End   int
}

// NullSpan returns an invalid span, used as the zero value for nodes that
// have no associated source range (for example, the implicit document
// root).
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span has non-negative, ordered bounds.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers, or 0 if invalid.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// Slice returns the bytes of source covered by the span.
// It panics if the span is out of bounds of source.
func (s Span) Slice(source []byte) []byte {
	if !s.IsValid() {
		return nil
	}
	return source[s.Start:s.End]
}
