package markdown

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Pre-flight lookaround patterns. The single-character probes exclude the
// doubled forms so a "**" pair is not double-counted as two stray "*".
var (
	strayItalicPattern   = MustCompilePattern(`(?<!\\)(?<!\*)\*(?!\*)`)
	singleTickPattern    = MustCompilePattern("(?<!`)`(?!`)")
	boldDelimiterPattern = MustCompilePattern(`\*\*`)
	fencePattern         = MustCompilePattern("```")
)

// normalizeLineEndings converts CRLF and lone CR line endings to LF. Every
// downstream pattern assumes "\n" only.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// countMatches counts non-overlapping matches of re in s. A pattern timeout
// aborts the count; the balance scan is advisory, so a partial count is
// acceptable.
func countMatches(re *regexp2.Regexp, s string) int {
	var n int
	m, err := re.FindStringMatch(s)
	for m != nil && err == nil {
		n++
		m, err = re.FindNextMatch(m)
	}
	return n
}

// preflight scans the normalized input for structural anomalies before the
// matching loop runs. Everything it finds is advisory; parsing proceeds
// regardless.
func (p *Parser) preflight(input string) {
	if countMatches(boldDelimiterPattern, input)%2 != 0 {
		p.warn(IssueUnbalancedBold, -1, "unbalanced \"**\" delimiters; a bold span is likely unclosed")
	}
	if countMatches(strayItalicPattern, input)%2 != 0 {
		p.warn(IssueStrayItalic, -1, "odd number of unescaped \"*\"; an italic span is likely unclosed")
	}
	if countMatches(fencePattern, input)%2 != 0 {
		p.warn(IssueUnbalancedFence, -1, "unbalanced \"```\" code fences")
	}
	// Single backticks inside a balanced fence pair come in even numbers of
	// their own, so the parity check stays meaningful.
	if countMatches(singleTickPattern, input)%2 != 0 {
		p.warn(IssueUnbalancedBacktick, -1, "odd number of single backticks; an inline code span is likely unclosed")
	}
	if open, close := strings.Count(input, "["), strings.Count(input, "]"); open != close {
		p.warn(IssueUnbalancedBracket, -1, fmt.Sprintf("bracket counts differ: %d \"[\" vs %d \"]\"", open, close))
	}
	if open, close := strings.Count(input, "("), strings.Count(input, ")"); open != close {
		p.warn(IssueUnbalancedParen, -1, fmt.Sprintf("parenthesis counts differ: %d \"(\" vs %d \")\"", open, close))
	}
}
