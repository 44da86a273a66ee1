package markdown

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// iterationCapFactor bounds the matching loop at factor × input length.
// The cap is the only safety net against pathological input; tripping it is
// advisory truncation, not an error.
const iterationCapFactor = 2

// Parser converts raw markdown text into an ordered token sequence using a
// prioritized set of pattern rules.
//
// A Parser is not safe for concurrent use; callers needing per-call rule
// sets should build isolated engines instead of mutating a shared one
// mid-flight.
type Parser struct {
	rules []ParseRule
	warns warnings
}

// NewParser returns an empty Parser. Default rules are installed lazily at
// the start of every Parse, so a fresh Parser is immediately usable.
func NewParser() *Parser {
	return &Parser{}
}

// AddRule registers a rule and re-sorts the full rule list by the priority
// comparator, so extension-contributed structural rules get first refusal at
// every scan position.
func (p *Parser) AddRule(rule ParseRule) {
	p.rules = append(p.rules, rule)
	sortRules(p.rules)
}

// addOwnedRules registers an extension's rules tagged with its name.
func (p *Parser) addOwnedRules(owner string, rules []ParseRule) {
	for _, r := range rules {
		r.owner = owner
		p.rules = append(p.rules, r)
	}
	sortRules(p.rules)
}

// removeOwnedRules drops every rule contributed by the named extension and
// leaves all others, including the defaults, intact. The surviving list is
// already sorted, so filtering preserves scan priority.
func (p *Parser) removeOwnedRules(owner string) {
	kept := p.rules[:0]
	for _, r := range p.rules {
		if r.owner != owner {
			kept = append(kept, r)
		}
	}
	p.rules = kept
}

// RuleNames returns the registered rule names in scan-priority order.
func (p *Parser) RuleNames() []string {
	names := make([]string, len(p.rules))
	for i, r := range p.rules {
		names[i] = r.Name
	}
	return names
}

// Warnings returns the anomalies collected by the most recent Parse call.
func (p *Parser) Warnings() []Warning {
	return p.warns.list
}

func (p *Parser) warn(issue Issue, pos int, description string) {
	p.warns.add(Warning{Issue: issue, Pos: pos, Description: description})
}

// ensureDefaultRules installs every default rule whose name is not already
// registered. Idempotent and re-entrant; called at the start of every Parse
// and after an unregister rebuild.
func (p *Parser) ensureDefaultRules() {
	present := make(map[string]bool, len(p.rules))
	for _, r := range p.rules {
		present[r.Name] = true
	}
	var added bool
	for _, r := range defaultParseRules() {
		if !present[r.Name] {
			p.rules = append(p.rules, r)
			added = true
		}
	}
	if added {
		sortRules(p.rules)
	}
}

// ruleCandidate memoizes one rule's earliest pending match. Because the scan
// position only moves forward, a cached match starting at or after the
// current position stays the rule's earliest match, and a rule that found
// nothing once will find nothing later either.
type ruleCandidate struct {
	match     *regexp2.Match
	start     int
	exhausted bool
	disabled  bool
}

// Parse converts markdown into an ordered token sequence. It never fails for
// well-formed string input and always terminates; anomalies are reported via
// Warnings, and concatenating the returned tokens' Raw fields reproduces the
// normalized input.
func (p *Parser) Parse(markdown string) []Token {
	p.warns.reset()
	p.ensureDefaultRules()

	input := normalizeLineEndings(markdown)
	p.preflight(input)

	tokens := p.scan(input)
	return mergeTextTokens(tokens)
}

// scan is the core matching loop. It walks the input with a position index,
// asking every rule for its earliest match at or after the current position
// and consuming the winner when it sits exactly at the position.
func (p *Parser) scan(input string) []Token {
	var tokens []Token

	candidates := make([]ruleCandidate, len(p.rules))
	pos := 0
	iterations := 0
	maxIterations := iterationCapFactor * len(input)

	for pos < len(input) {
		iterations++
		if iterations > maxIterations {
			p.warn(IssueIterationCap, pos, fmt.Sprintf(
				"parse exceeded %d iterations; remaining %d bytes emitted as plain text",
				maxIterations, len(input)-pos))
			tokens = append(tokens, newTextToken(input[pos:]))
			break
		}

		// 1) Find the winning rule: lowest match offset, priority order
		// breaking ties. A match exactly at pos cannot be beaten.
		best, bestStart := -1, -1
		for i := range p.rules {
			start, ok := p.candidateStart(input, candidates, i, pos)
			if !ok {
				continue
			}
			if bestStart == -1 || start < bestStart {
				best, bestStart = i, start
			}
			if start == pos {
				break
			}
		}

		// 2) No rule matches anywhere in the remainder: degrade one
		// character to text and keep going.
		if best == -1 {
			_, width := utf8.DecodeRuneInString(input[pos:])
			tokens = append(tokens, newTextToken(input[pos:pos+width]))
			pos += width
			continue
		}

		// 3) Skipped prefix becomes a text token; the match itself is left
		// unconsumed so the next iteration re-resolves precedence at the
		// new position.
		if bestStart > pos {
			tokens = append(tokens, newTextToken(input[pos:bestStart]))
			pos = bestStart
			continue
		}

		// 4) Match at the current position: render it.
		rule := p.rules[best]
		match := candidates[best].match
		matched := match.String()

		tok, err := safeRenderToken(rule, match)
		if err != nil {
			p.warn(IssueRuleFailed, pos, fmt.Sprintf("rule %q failed on its own match: %v", rule.Name, err))
			_, width := utf8.DecodeRuneInString(input[pos:])
			tokens = append(tokens, newTextToken(input[pos:pos+width]))
			pos += width
			continue
		}

		// Zero-width matches cannot advance the scan; treat them like a
		// rule failure to guarantee progress.
		if len(matched) == 0 {
			p.warn(IssueRuleFailed, pos, fmt.Sprintf("rule %q produced a zero-width match", rule.Name))
			_, width := utf8.DecodeRuneInString(input[pos:])
			tokens = append(tokens, newTextToken(input[pos:pos+width]))
			pos += width
			continue
		}

		// Raw is forced to the matched substring so the source stays
		// recoverable no matter what the rule set.
		tok.Raw = matched
		tokens = append(tokens, tok)
		pos += len(matched)
	}

	return tokens
}

// candidateStart returns the start offset of rule i's earliest match at or
// after pos, refreshing the memo when the cached match has been consumed.
func (p *Parser) candidateStart(input string, candidates []ruleCandidate, i, pos int) (int, bool) {
	c := &candidates[i]
	if c.disabled || c.exhausted {
		return 0, false
	}
	if c.match != nil && c.start >= pos {
		return c.start, true
	}

	m, err := p.rules[i].Pattern.FindStringMatchStartingAt(input, pos)
	if err != nil {
		// Timeout from the backtracking guard: drop the rule for the rest
		// of this parse rather than stalling on every iteration.
		c.disabled = true
		p.warn(IssuePatternTimeout, pos, fmt.Sprintf("rule %q pattern timed out and was disabled for this parse", p.rules[i].Name))
		return 0, false
	}
	if m == nil {
		c.exhausted = true
		return 0, false
	}
	c.match = m
	c.start = m.Index
	return c.start, true
}

// safeRenderToken invokes a rule's Render, converting panics into errors so
// a misbehaving rule degrades to a text token instead of aborting the parse.
func safeRenderToken(rule ParseRule, m *regexp2.Match) (tok Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return rule.Render(m)
}

// mergeTextTokens collapses runs of consecutive text tokens into one.
// Whitespace-only spans are kept: they separate adjacent inline tokens and
// concatenating the Raw fields must reproduce the source.
func mergeTextTokens(tokens []Token) []Token {
	if len(tokens) == 0 {
		return tokens
	}

	merged := make([]Token, 0, len(tokens))
	flush := func(content, raw string) {
		if raw == "" {
			return
		}
		merged = append(merged, Token{Type: TypeText, Content: content, Raw: raw})
	}

	var content, raw strings.Builder
	for _, t := range tokens {
		if t.Type == TypeText && t.Attributes == nil {
			content.WriteString(t.Content)
			raw.WriteString(t.Raw)
			continue
		}
		flush(content.String(), raw.String())
		content.Reset()
		raw.Reset()
		merged = append(merged, t)
	}
	flush(content.String(), raw.String())

	return merged
}
