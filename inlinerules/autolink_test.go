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

import "testing"

func TestIsURIAutolink(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"https://example.com", true},
		{"mailto:foo@example.com", true},
		{"a+b-c.d:x", true},
		{"ab:", true},
		{"a:b", false},          // scheme too short
		{"https://exa mple.com", false},
		{"nocolon", false},
		{"1http://example.com", false}, // scheme can't start with a digit
	}
	for _, test := range tests {
		if got := isURIAutolink(test.s); got != test.want {
			t.Errorf("isURIAutolink(%q) = %v; want %v", test.s, got, test.want)
		}
	}
}

func TestIsEmailAutolink(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"foo@example.com", true},
		{"foo.bar+baz@example.co.uk", true},
		{"@example.com", false},
		{"foo@", false},
		{"foo@-example.com", false},
		{"foo@example.com-", false},
		{"foo bar@example.com", false},
		{"noatsign", false},
	}
	for _, test := range tests {
		if got := isEmailAutolink(test.s); got != test.want {
			t.Errorf("isEmailAutolink(%q) = %v; want %v", test.s, got, test.want)
		}
	}
}
