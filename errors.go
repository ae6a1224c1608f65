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

import (
	"errors"
	"fmt"
)

// ErrFirstCharOutOfRange is returned by [NewEngine] when an [InlineParser]
// declares a first char outside the ASCII range [0,128).
var ErrFirstCharOutOfRange = errors.New("commonmark: inline parser first char must be < 128")

// ErrDuplicateFirstChar is returned by [NewEngine] when two
// [InlineParser] values claim the same first char; this implementation
// treats that as a construction-time bug to report rather than silently
// letting the later registration win.
var ErrDuplicateFirstChar = errors.New("commonmark: two inline parsers claim the same first char")

// A ConfigError wraps one of the sentinel errors above with the
// offending parser and character for diagnostics.
type ConfigError struct {
	Err    error
	Parser InlineParser
	Char   byte
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (char %q, parser %s)", e.Err, e.Char, goTypeName(e.Parser))
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// EngineInvariantViolation reports a block-phase invariant violated at
// runtime: a pending parser produced a new block while not the
// deepest block on the open-block stack, or a leaf-producing parser
// staged further blocks after its leaf. Either indicates a bug in the
// offending [BlockParser], not malformed input, so the engine panics with
// one rather than returning it as an error.
type EngineInvariantViolation struct {
	Reason    string
	LineIndex int
	Parser    string
}

func (e *EngineInvariantViolation) Error() string {
	return fmt.Sprintf("commonmark: invariant violation at line %d (parser %s): %s", e.LineIndex, e.Parser, e.Reason)
}

func goTypeName(v any) string {
	return fmt.Sprintf("%T", v)
}
