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

package blockrules

import "testing"

func TestSniffFence(t *testing.T) {
	tests := []struct {
		line       string
		wantChar   byte
		wantLength int
	}{
		{"```", '`', 3},
		{"~~~~", '~', 4},
		{"``` go", '`', 3},
		{"``", 0, 0},
		{"abc", 0, 0},
		{"", 0, 0},
		{"~~~ ~", '~', 3},
	}
	for _, test := range tests {
		char, length := sniffFence([]byte(test.line))
		if char != test.wantChar || length != test.wantLength {
			t.Errorf("sniffFence(%q) = (%q, %d); want (%q, %d)", test.line, char, length, test.wantChar, test.wantLength)
		}
	}
}

func TestTrimASCIISpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  go  ", "go"},
		{"\tgo\t", "go"},
		{"go", "go"},
		{"   ", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := string(trimASCIISpace([]byte(test.in))); got != test.want {
			t.Errorf("trimASCIISpace(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}
