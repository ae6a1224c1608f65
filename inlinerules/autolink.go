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

import "go.readio.dev/commonmark"

// AutolinkKind is the kind of an inline produced by [Autolink].
const AutolinkKind commonmark.InlineKind = "autolink"

// autolinkData is the destination text Autolink stores on its Inline's
// Data (the '<'/'>' delimiters and, for an email autolink, the implied
// "mailto:" scheme are not part of the source text, so they cannot just
// be read back out of the span).
type autolinkData struct {
	destination string
	email       bool
}

// Destination returns in's autolink destination (with a synthesized
// "mailto:" prefix for an email autolink), or "" if in was not produced
// by [Autolink].
func Destination(in *commonmark.Inline) string {
	d, ok := in.Data.(*autolinkData)
	if !ok {
		return ""
	}
	if d.email {
		return "mailto:" + d.destination
	}
	return d.destination
}

// Autolink recognizes '<scheme:...>' absolute URIs and bare
// email-address-shaped '<...>' spans. This is a deliberately small
// subset of CommonMark's autolink grammar: the scheme/email shapes
// below, not the full RFC 3986 URI or RFC 5322 mailbox grammars.
type Autolink struct{}

// FirstChars dispatches Autolink on '<'.
func (*Autolink) FirstChars() []byte { return []byte{'<'} }

func (*Autolink) Match(state *commonmark.InlineState) bool {
	c := state.Cursor()
	start := c.AbsolutePos()
	c.Advance(1)

	contentStart := c.AbsolutePos()
	for !c.AtLineEnd() {
		b, _ := c.Current()
		if b == '>' {
			break
		}
		if b == ' ' || b == '\t' || b == '<' {
			return false
		}
		c.Advance(1)
	}
	if c.AtLineEnd() {
		return false
	}
	contentEnd := c.AbsolutePos()
	c.Advance(1) // consume '>'
	end := c.AbsolutePos()

	source := state.Leaf().Lines().Source()
	content := string(source[contentStart:contentEnd])

	switch {
	case isURIAutolink(content):
		state.Inline = commonmark.NewLeafInline(AutolinkKind, &Autolink{}, commonmark.Span{Start: start, End: end})
		state.Inline.Data = &autolinkData{destination: content}
		return true
	case isEmailAutolink(content):
		state.Inline = commonmark.NewLeafInline(AutolinkKind, &Autolink{}, commonmark.Span{Start: start, End: end})
		state.Inline.Data = &autolinkData{destination: content, email: true}
		return true
	}
	return false
}

// isURIAutolink reports whether s has the shape scheme":"rest, where
// scheme is 2-32 ASCII letters/digits/'+'/'-'/'.' starting with a
// letter, per CommonMark's absolute URI autolink rule.
func isURIAutolink(s string) bool {
	colon := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			colon = i
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
		if colon >= 0 {
			break
		}
	}
	if colon < 2 || colon > 32 {
		return false
	}
	for i := colon + 1; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] < ' ' {
			return false
		}
	}
	return true
}

// isEmailAutolink reports whether s has the shape local"@"domain, using
// a simplified character class for local and domain rather than
// CommonMark's full grammar (see [Autolink]'s non-conformance note).
func isEmailAutolink(s string) bool {
	at := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			at = i
			break
		}
	}
	if at <= 0 || at == len(s)-1 {
		return false
	}
	for i := 0; i < at; i++ {
		if !isEmailLocalChar(s[i]) {
			return false
		}
	}
	domain := s[at+1:]
	if domain[0] == '-' || domain[0] == '.' || domain[len(domain)-1] == '-' || domain[len(domain)-1] == '.' {
		return false
	}
	for i := 0; i < len(domain); i++ {
		c := domain[i]
		if !(c == '-' || c == '.' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

func isEmailLocalChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '.', '!', '#', '$', '%', '&', '\'', '*', '+', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~', '-':
		return true
	}
	return false
}
