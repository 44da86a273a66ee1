// Package markdown implements an extensible, rule-driven markdown engine:
// a prioritized regex tokenizer, a type-keyed HTML renderer with a
// sanitization pass, and an extension mechanism that lets third-party
// syntax hook into both sides at once.
package markdown

// Token type tags produced by the default rule set. Extensions introduce
// their own tags (e.g. "alert", "button", "embed").
const (
	TypeText              = "text"
	TypeHeading           = "heading"
	TypeCodeBlock         = "code_block"
	TypeLineBreak         = "line_break"
	TypeParagraph         = "paragraph"
	TypeBold              = "bold"
	TypeItalic            = "italic"
	TypeInlineCode        = "inline_code"
	TypeImage             = "image"
	TypeLink              = "link"
	TypeTaskListItem      = "task_list_item"
	TypeUnorderedListItem = "unordered_list_item"
	TypeOrderedListItem   = "ordered_list_item"
	TypeBlockquote        = "blockquote"
	TypeHorizontalRule    = "horizontal_rule"
	TypeSoftBreak         = "soft_break"
)

// Token is the atomic unit of parsed markdown.
type Token struct {
	// Type is the string tag the Renderer keys its rule table on.
	Type string `json:"type"`

	// Content is the semantically meaningful inner text, e.g. the label of
	// a link or the body of a blockquote. Empty for structural tokens
	// (line breaks, horizontal rules).
	Content string `json:"content"`

	// Raw is the exact source substring the token was matched from.
	// Concatenating Raw over all tokens in emission order reproduces the
	// normalized input string exactly. The parser forces this field to the
	// matched substring regardless of what a rule's Render set, so it stays
	// recoverable even when rendering later fails.
	Raw string `json:"raw"`

	// Attributes carries structured metadata extracted from the source
	// syntax (heading level, link href, embed provider/url). Values are
	// always strings; callers parse further as needed, booleans are encoded
	// as "true"/"false".
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Attr returns the attribute value for key, or "" if absent.
func (t Token) Attr(key string) string {
	if t.Attributes == nil {
		return ""
	}
	return t.Attributes[key]
}

// newTextToken creates a plain text Token whose Content and Raw are both val.
func newTextToken(val string) Token {
	return Token{
		Type:    TypeText,
		Content: val,
		Raw:     val,
	}
}
