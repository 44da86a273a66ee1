package markdown

// Issue defines categories of non-critical problems detected while parsing.
type Issue int

const (
	// IssueUnbalancedBold means the input contains an odd number of "**"
	// delimiters.
	IssueUnbalancedBold Issue = iota

	// IssueStrayItalic means a single unescaped "*" has no closing pair.
	IssueStrayItalic

	// IssueUnbalancedFence means the number of "```" fences is odd.
	IssueUnbalancedFence

	// IssueUnbalancedBacktick means the number of single backticks is odd.
	IssueUnbalancedBacktick

	// IssueUnbalancedBracket means "[" and "]" counts differ.
	IssueUnbalancedBracket

	// IssueUnbalancedParen means "(" and ")" counts differ.
	IssueUnbalancedParen

	// IssueIterationCap means the scan loop hit the safety counter and the
	// remainder of the input was emitted as plain text.
	IssueIterationCap

	// IssueRuleFailed means a rule's Render failed on its own match; the
	// parser degraded to a one-character text token.
	IssueRuleFailed

	// IssuePatternTimeout means a rule's pattern search exceeded the match
	// timeout and was skipped for the rest of the parse.
	IssuePatternTimeout

	// IssueWarningsTruncated means too many warnings were recorded and
	// further ones were suppressed.
	IssueWarningsTruncated
)

// Warning describes a non-critical problem found during parsing. Parsing
// still succeeded and produced tokens; warnings are advisory, never an
// exception channel.
type Warning struct {
	// Issue is the category of the problem.
	Issue Issue `json:"issue"`

	// Pos is the byte offset in the normalized input where the problem was
	// detected, or -1 when the problem is not tied to a position (balance
	// scans report the whole input).
	Pos int `json:"pos"`

	// Description is a human-readable story of what went wrong.
	Description string `json:"description"`
}

// maxWarnings caps the collector so a hostile input full of anomalies cannot
// grow the list without bound.
const maxWarnings = 64

// warnings is the per-parse collector. Reset at the start of every Parse.
type warnings struct {
	list      []Warning
	truncated bool
}

func (w *warnings) add(item Warning) {
	if w.truncated {
		return
	}
	if len(w.list) >= maxWarnings-1 {
		w.truncated = true
		w.list = append(w.list, Warning{
			Issue:       IssueWarningsTruncated,
			Pos:         item.Pos,
			Description: "too many warnings; further warnings suppressed",
		})
		return
	}
	w.list = append(w.list, item)
}

func (w *warnings) reset() {
	w.list = nil
	w.truncated = false
}
