package markdown

import (
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// patternTimeout caps a single regex search. The default rule set uses
// lookarounds which are backtracking-based; the timeout is the guard against
// pathological input stalling a parse.
const patternTimeout = 250 * time.Millisecond

// ParseRule recognizes one markdown construct.
type ParseRule struct {
	// Name identifies the rule. It participates in the priority comparator:
	// names containing "alert", "embed" or "button" are pinned before all
	// other rules, the rest sort lexicographically.
	Name string

	// Pattern is a single-match regex searched anywhere in the unconsumed
	// input. Compile it with MustCompilePattern so lookarounds work and the
	// match timeout is set.
	Pattern *regexp2.Regexp

	// Render converts a successful match into a Token. It must be a pure
	// function of the match groups and must not panic for any input the
	// pattern accepts; the parser catches failures and degrades to a raw
	// text token for the offending character.
	Render func(m *regexp2.Match) (Token, error)

	// owner is the name of the extension that contributed the rule, or ""
	// for the built-in default set. Unregistering an extension filters by
	// this tag instead of rebuilding rule bookkeeping from scratch.
	owner string
}

// RenderRule emits HTML for one token type. Exactly one RenderRule is active
// per type at any time; registering another for the same type replaces it.
type RenderRule struct {
	Type   string
	Render func(t Token) (string, error)

	// Block marks the rule's output as block-level HTML. The renderer
	// flushes the open paragraph run before emitting a block token instead
	// of wrapping it in <p>.
	Block bool

	owner string
}

// Extension is a named, atomically registrable bundle of parse and render
// rules. Unregistering an extension removes exactly its contributed rules
// and leaves every other rule, including the defaults, intact.
type Extension struct {
	Name        string
	ParseRules  []ParseRule
	RenderRules []RenderRule
}

// MustCompilePattern compiles a rule pattern with the engine's match timeout.
// Panics on an invalid pattern, so call it from package-level rule
// constructors only.
func MustCompilePattern(pattern string) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, regexp2.None)
	re.MatchTimeout = patternTimeout
	return re
}

// pinnedNameParts are substrings that promote a rule to the front of the
// scan order. Extension-contributed structural rules (fenced blocks,
// bracket-with-colon forms) get first refusal at every scan position.
var pinnedNameParts = [3]string{"alert", "embed", "button"}

func isPinnedName(name string) bool {
	lower := strings.ToLower(name)
	for _, part := range pinnedNameParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

// ruleLess is the priority comparator: pinned names first, then plain
// lexicographic order by name. The lexicographic tail is a frozen contract
// inherited from the original engine, not markdown-semantic precedence;
// tests pin it and the default rule names are chosen to sort correctly
// under it.
func ruleLess(a, b ParseRule) bool {
	pa, pb := isPinnedName(a.Name), isPinnedName(b.Name)
	if pa != pb {
		return pa
	}
	return a.Name < b.Name
}

// sortRules orders rules by the priority comparator. The sort is stable so
// equal names keep registration order.
func sortRules(rules []ParseRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return ruleLess(rules[i], rules[j])
	})
}
