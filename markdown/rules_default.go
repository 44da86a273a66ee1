package markdown

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// groupString returns capture group n of a match, or "" when the group did
// not participate in the match.
func groupString(m *regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// Default rule patterns, compiled once. Block-level rules are line-anchored
// via (?m). Rule names are part of the scan-priority contract: the
// comparator sorts unpinned rules lexicographically, and the names below are
// chosen so the order comes out right (paragraph_break before single_newline,
// task_list_item before unordered_list_item).
var (
	headingPattern           = MustCompilePattern(`(?m)^(#{1,6})[ \t]+(.+)$`)
	codeBlockPattern         = MustCompilePattern("```([A-Za-z0-9+#_-]*)[ \\t]*\\n([\\s\\S]*?)```")
	lineBreakBackslashRegex  = MustCompilePattern(`\\\n`)
	lineBreakSpacesRegex     = MustCompilePattern(`[ \t]{2,}\n`)
	paragraphBreakPattern    = MustCompilePattern(`\n[ \t]*\n+`)
	boldPattern              = MustCompilePattern(`\*\*(?!\*)([\s\S]+?)\*\*`)
	italicPattern            = MustCompilePattern(`(?<!\*)\*(?!\*)([^*\n]+)\*(?!\*)`)
	inlineCodePattern        = MustCompilePattern("`([^`\n]+)`")
	imagePattern             = MustCompilePattern(`!\[([^\]]*)\]\(([^)\s]+)(?:[ \t]+"([^"]*)")?\)`)
	linkPattern              = MustCompilePattern(`\[([^\]]+)\]\(([^)\s]+)\)`)
	taskListItemPattern      = MustCompilePattern(`(?m)^[-*] \[( |x|X)\] (.+)$`)
	unorderedListItemPattern = MustCompilePattern(`(?m)^[-*+] (.+)$`)
	orderedListItemPattern   = MustCompilePattern(`(?m)^(\d+)\. (.+)$`)
	blockquotePattern        = MustCompilePattern(`(?m)^> ?(.+)$`)
	horizontalRulePattern    = MustCompilePattern(`(?m)^---[ \t]*$`)
	singleNewlinePattern     = MustCompilePattern(`\n`)
)

// defaultParseRules builds the built-in rule set. Every rule's Render is a
// pure function of its match groups.
func defaultParseRules() []ParseRule {
	return []ParseRule{
		{
			Name:    "heading",
			Pattern: headingPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				level := len(groupString(m, 1))
				return Token{
					Type:    TypeHeading,
					Content: strings.TrimSpace(groupString(m, 2)),
					Attributes: map[string]string{
						"level": strconv.Itoa(level),
					},
				}, nil
			},
		},
		{
			Name:    "code_block",
			Pattern: codeBlockPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{
					Type:    TypeCodeBlock,
					Content: groupString(m, 2),
					Attributes: map[string]string{
						"language": groupString(m, 1),
					},
				}, nil
			},
		},
		{
			Name:    "line_break_backslash",
			Pattern: lineBreakBackslashRegex,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeLineBreak}, nil
			},
		},
		{
			Name:    "line_break_spaces",
			Pattern: lineBreakSpacesRegex,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeLineBreak}, nil
			},
		},
		{
			Name:    "paragraph_break",
			Pattern: paragraphBreakPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeParagraph}, nil
			},
		},
		{
			Name:    "bold",
			Pattern: boldPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeBold, Content: groupString(m, 1)}, nil
			},
		},
		{
			Name:    "italic",
			Pattern: italicPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeItalic, Content: groupString(m, 1)}, nil
			},
		},
		{
			Name:    "inline_code",
			Pattern: inlineCodePattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeInlineCode, Content: groupString(m, 1)}, nil
			},
		},
		{
			Name:    "image",
			Pattern: imagePattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{
					Type:    TypeImage,
					Content: groupString(m, 1),
					Attributes: map[string]string{
						"src":   groupString(m, 2),
						"title": groupString(m, 3),
					},
				}, nil
			},
		},
		{
			Name:    "link",
			Pattern: linkPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{
					Type:    TypeLink,
					Content: groupString(m, 1),
					Attributes: map[string]string{
						"href": groupString(m, 2),
					},
				}, nil
			},
		},
		{
			Name:    "task_list_item",
			Pattern: taskListItemPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				checked := strings.EqualFold(groupString(m, 1), "x")
				return Token{
					Type:    TypeTaskListItem,
					Content: groupString(m, 2),
					Attributes: map[string]string{
						"checked": strconv.FormatBool(checked),
					},
				}, nil
			},
		},
		{
			Name:    "unordered_list_item",
			Pattern: unorderedListItemPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeUnorderedListItem, Content: groupString(m, 1)}, nil
			},
		},
		{
			Name:    "ordered_list_item",
			Pattern: orderedListItemPattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{
					Type:    TypeOrderedListItem,
					Content: groupString(m, 2),
					Attributes: map[string]string{
						"index": groupString(m, 1),
					},
				}, nil
			},
		},
		{
			Name:    "blockquote",
			Pattern: blockquotePattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeBlockquote, Content: groupString(m, 1)}, nil
			},
		},
		{
			Name:    "horizontal_rule",
			Pattern: horizontalRulePattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeHorizontalRule}, nil
			},
		},
		{
			// Catch-all soft break. The name must sort after every
			// block-level rule name so line-anchored rules win offset ties
			// at a newline boundary.
			Name:    "single_newline",
			Pattern: singleNewlinePattern,
			Render: func(m *regexp2.Match) (Token, error) {
				return Token{Type: TypeSoftBreak, Content: " "}, nil
			},
		},
	}
}
