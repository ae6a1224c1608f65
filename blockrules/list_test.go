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

func TestSniffListMarker(t *testing.T) {
	tests := []struct {
		line        string
		wantOK      bool
		wantOrdered bool
		wantBullet  byte
		wantLen     int
		wantBlank   bool
	}{
		{"- a", true, false, '-', 1, false},
		{"* a", true, false, '*', 1, false},
		{"+ a", true, false, '+', 1, false},
		{"-", true, false, '-', 1, true},
		{"-a", false, false, 0, 0, false},
		{"1. a", true, true, 0, 2, false},
		{"12) a", true, true, 0, 3, false},
		{"1.a", false, false, 0, 0, false},
		{"1234567890. a", false, false, 0, 0, false},
		{"", false, false, 0, 0, false},
		{"hello", false, false, 0, 0, false},
	}
	for _, test := range tests {
		m, ok := sniffListMarker([]byte(test.line))
		if ok != test.wantOK {
			t.Errorf("sniffListMarker(%q) ok = %v; want %v", test.line, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if m.ordered != test.wantOrdered || m.bullet != test.wantBullet || m.markerLen != test.wantLen || m.blank != test.wantBlank {
			t.Errorf("sniffListMarker(%q) = %+v; want ordered=%v bullet=%q markerLen=%d blank=%v",
				test.line, m, test.wantOrdered, test.wantBullet, test.wantLen, test.wantBlank)
		}
	}
}
