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

// Package fixtures holds a literal table of input documents and the
// tree shapes a correct parse of them must produce, consumed by
// table-driven tests elsewhere in the module rather than loaded from
// an embedded corpus.
package fixtures

import (
	"go.readio.dev/commonmark"
	"go.readio.dev/commonmark/blockrules"
	"go.readio.dev/commonmark/inlinerules"
)

// Shape describes one node a test expects to find in a parsed tree. Its
// meaning depends on whether the block it describes is a container or a
// leaf:
//   - For a container block, Children describes the block's own child
//     blocks (via Block.Child).
//   - For a leaf block, Children describes the leaf's *inline* tree (via
//     Block.Inline), since the block tree's own Child never descends into
//     it (see DESIGN.md's note on the two trees being separate roots).
//
// Text, when set on an inline leaf, is the logical text the node
// contributes once internal soft breaks collapse to a single space —
// not necessarily the literal byte span, which may cross a line
// boundary inside a LineGroup.
type Shape struct {
	Kind     string
	Text     string
	Info     string // fenced code info string, checked only on FencedCodeBlockKind
	Lines    []string
	Ordered  bool
	Tight    bool
	Children []Shape
}

// Case is one test case: an input document and the tree shape a
// correct parse of it must produce.
type Case struct {
	Name  string
	Input string
	Root  Shape
}

// Cases holds one representative case per block/inline construct the
// reference parsers recognize (headings, lazy block-quote continuation,
// fenced code, lazy paragraph continuation, tight/loose lists, emphasis
// and strong, hard breaks, autolinks, HTML blocks, indented code,
// thematic breaks interrupting a paragraph).
var Cases = []Case{
	{
		Name:  "A_atx_heading",
		Input: "# Hello\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ATXHeadingKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "Hello"},
			}},
		}},
	},
	{
		Name:  "B_blockquote_lazy_continuation",
		Input: "> quoted\n> still\n\nout\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.BlockQuoteKind), Children: []Shape{
				{Kind: string(blockrules.ParagraphKind), Children: []Shape{
					{Kind: string(inlinerules.TextKind), Text: "quoted still"},
				}},
			}},
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "out"},
			}},
		}},
	},
	{
		Name:  "C_fenced_code",
		Input: "```x\ny\n```\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.FencedCodeBlockKind), Info: "x", Lines: []string{"y"}},
		}},
	},
	{
		Name:  "D_indented_line_is_lazy_paragraph_continuation",
		Input: "a\n    b\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "a b"},
			}},
		}},
	},
	{
		Name:  "E_tight_bullet_list",
		Input: "- a\n- b\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ListKind), Tight: true, Children: []Shape{
				{Kind: string(blockrules.ListItemKind), Children: []Shape{
					{Kind: string(blockrules.ParagraphKind), Children: []Shape{
						{Kind: string(inlinerules.TextKind), Text: "a"},
					}},
				}},
				{Kind: string(blockrules.ListItemKind), Children: []Shape{
					{Kind: string(blockrules.ParagraphKind), Children: []Shape{
						{Kind: string(inlinerules.TextKind), Text: "b"},
					}},
				}},
			}},
		}},
	},
	{
		Name:  "F_emphasis_and_strong",
		Input: "*em* and **strong**",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.EmphasisKind), Children: []Shape{
					{Kind: string(inlinerules.TextKind), Text: "em"},
				}},
				{Kind: string(inlinerules.TextKind), Text: " and "},
				{Kind: string(inlinerules.StrongKind), Children: []Shape{
					{Kind: string(inlinerules.TextKind), Text: "strong"},
				}},
			}},
		}},
	},
	{
		Name:  "G_loose_ordered_list",
		Input: "1. a\n\n2. b\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ListKind), Ordered: true, Tight: false, Children: []Shape{
				{Kind: string(blockrules.ListItemKind), Children: []Shape{
					{Kind: string(blockrules.ParagraphKind), Children: []Shape{
						{Kind: string(inlinerules.TextKind), Text: "a"},
					}},
				}},
				{Kind: string(blockrules.ListItemKind), Children: []Shape{
					{Kind: string(blockrules.ParagraphKind), Children: []Shape{
						{Kind: string(inlinerules.TextKind), Text: "b"},
					}},
				}},
			}},
		}},
	},
	{
		Name:  "H_hard_line_break",
		Input: "a  \nb\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "a"},
				{Kind: string(inlinerules.HardBreakKind)},
				{Kind: string(inlinerules.TextKind), Text: "b"},
			}},
		}},
	},
	{
		Name:  "I_autolink",
		Input: "see <https://example.com> now\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "see "},
				{Kind: string(inlinerules.AutolinkKind)},
				{Kind: string(inlinerules.TextKind), Text: " now"},
			}},
		}},
	},
	{
		Name:  "J_html_block_closes_on_blank_line",
		Input: "<div>\ncontent\n</div>\n\nafter\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.HTMLBlockKind), Lines: []string{"<div>", "content", "</div>"}},
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "after"},
			}},
		}},
	},
	{
		Name:  "K_indented_code_block",
		Input: "para\n\n    code here\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "para"},
			}},
			{Kind: string(blockrules.IndentedCodeBlockKind), Lines: []string{"code here"}},
		}},
	},
	{
		Name:  "L_thematic_break_interrupts_paragraph",
		Input: "a\n---\n",
		Root: Shape{Kind: string(commonmark.DocumentKind), Children: []Shape{
			{Kind: string(blockrules.ParagraphKind), Children: []Shape{
				{Kind: string(inlinerules.TextKind), Text: "a"},
			}},
			{Kind: string(blockrules.ThematicBreakKind)},
		}},
	},
}
