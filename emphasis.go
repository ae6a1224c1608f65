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

// DelimiterRun is the payload an [InlineParser] recognizing a run of
// emphasis delimiter characters stores in a LeafInline's Data field.
// The engine's emphasis post-pass looks for leaf inlines
// carrying one of these and resolves them into paired EmphasisKind or
// StrongKind containers following CommonMark's rule of 3; a run that
// never finds a match keeps its original literal kind and simply has
// its DelimiterRun payload discarded, degrading to plain text.
type DelimiterRun struct {
	Char     byte
	Count    int
	CanOpen  bool
	CanClose bool

	// EmphasisKind and StrongKind name the container kinds to wrap a
	// single-delimiter and a double-delimiter match in, respectively.
	EmphasisKind InlineKind
	StrongKind   InlineKind
}

type delimiterStackElement struct {
	run  *DelimiterRun
	node *Inline
}

// openersBottomIndex buckets a delimiter the same way the CommonMark
// reference algorithm does: by character, and for '*' additionally by
// opener/closer role and run length mod 3 (rule 9/10 of the emphasis
// spec), so [processEmphasisStack]'s lower-bound pruning doesn't have
// to rescan delimiters it has already proven can never match.
func (e delimiterStackElement) openersBottomIndex() int {
	if e.run.Char == '*' {
		if !e.run.CanOpen {
			return e.run.Count % 3
		}
		return 3 + e.run.Count%3
	}
	return 6
}

// isEmphasisMatch reports whether close may close open, applying rules
// 9 and 10 of CommonMark's emphasis algorithm: a delimiter run that can
// both open and close only matches another such run when their
// combined length isn't a multiple of 3, unless both lengths already
// are.
func isEmphasisMatch(open, close delimiterStackElement) bool {
	if open.run.Char != close.run.Char {
		return false
	}
	if !open.run.CanOpen || !close.run.CanClose {
		return false
	}
	if !open.run.CanClose && !close.run.CanOpen {
		return true
	}
	if (open.run.Count+close.run.Count)%3 != 0 {
		return true
	}
	return open.run.Count%3 == 0 && close.run.Count%3 == 0
}

// resolveEmphasis runs the emphasis post-pass over root, recursing
// into every container inline present before the pass began.
func resolveEmphasis(root *Inline) {
	resolveEmphasisLevel(root)
}

func resolveEmphasisLevel(container *Inline) {
	preExisting := append([]*Inline(nil), container.Children()...)

	stack := buildDelimiterStack(container)
	processEmphasisStack(container, stack)

	for _, child := range preExisting {
		if child.IsContainer() {
			resolveEmphasisLevel(child)
		}
	}
}

func buildDelimiterStack(container *Inline) []delimiterStackElement {
	var stack []delimiterStackElement
	for _, child := range container.Children() {
		if dr, ok := child.Data.(*DelimiterRun); ok {
			stack = append(stack, delimiterStackElement{run: dr, node: child})
		}
	}
	return stack
}

// processEmphasisStack implements CommonMark's "process emphasis"
// procedure, operating directly on container's child list instead of a
// separate unparsed-node array.
func processEmphasisStack(container *Inline, stack []delimiterStackElement) {
	current := 0
	var openersBottom [7]int

closerLoop:
	for {
		for {
			if current >= len(stack) {
				break closerLoop
			}
			if stack[current].run.CanClose {
				break
			}
			current++
		}

		bucket := stack[current].openersBottomIndex()
		opener := current - 1
		for opener >= openersBottom[bucket] && !isEmphasisMatch(stack[opener], stack[current]) {
			opener--
		}

		if opener >= openersBottom[bucket] {
			openNode := stack[opener].node
			closeNode := stack[current].node

			strong := stack[opener].run.Count >= 2 && stack[current].run.Count >= 2
			consume := 1
			kind := stack[opener].run.EmphasisKind
			if strong {
				consume = 2
				kind = stack[opener].run.StrongKind
			}
			openNode.span.End -= consume
			closeNode.span.Start += consume
			stack[opener].run.Count -= consume
			stack[current].run.Count -= consume

			wrapRange(container, kind, openNode, closeNode)

			for _, elem := range stack[opener+1 : current] {
				elem.node.Data = nil
			}
			stack = deleteDelimiterStackRange(stack, opener+1, current)
			current = opener + 1

			if stack[opener].run.Count == 0 {
				removeChild(container, openNode)
				stack = deleteDelimiterStackRange(stack, opener, opener+1)
				current--
			}
			if current < len(stack) && stack[current].run.Count == 0 {
				removeChild(container, closeNode)
				stack = deleteDelimiterStackRange(stack, current, current+1)
			}
		} else {
			openersBottom[bucket] = current
			if !stack[current].run.CanOpen {
				stack[current].node.Data = nil
				stack = deleteDelimiterStackRange(stack, current, current+1)
			} else {
				current++
			}
		}
	}

	for _, elem := range stack {
		elem.node.Data = nil
	}
}

func deleteDelimiterStackRange(stack []delimiterStackElement, i, j int) []delimiterStackElement {
	copy(stack[i:], stack[j:])
	return stack[:len(stack)-(j-i)]
}

// wrapRange replaces the run of container's children strictly between
// start and end with a single new container inline of kind wrapping
// them. The start and end delimiter nodes stay in container on either
// side of the wrapper, whose span covers the delimiter bytes just
// consumed from them.
func wrapRange(container *Inline, kind InlineKind, start, end *Inline) {
	i := indexOfChild(container, start)
	j := indexOfChild(container, end)

	wrapper := NewContainerInline(kind, nil, false)
	wrapper.span = Span{Start: start.span.End, End: end.span.Start}
	wrapper.parent = container
	wrapper.children = append([]*Inline(nil), container.children[i+1:j]...)
	for _, c := range wrapper.children {
		c.parent = wrapper
	}

	newChildren := make([]*Inline, 0, len(container.children)-(j-i-1)+1)
	newChildren = append(newChildren, container.children[:i+1]...)
	newChildren = append(newChildren, wrapper)
	newChildren = append(newChildren, container.children[j:]...)
	container.children = newChildren
}

func removeChild(container *Inline, node *Inline) {
	i := indexOfChild(container, node)
	if i < 0 {
		return
	}
	container.children = append(container.children[:i], container.children[i+1:]...)
}

func indexOfChild(container *Inline, node *Inline) int {
	for i, c := range container.children {
		if c == node {
			return i
		}
	}
	return -1
}
