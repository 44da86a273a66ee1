package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/Codycody31/changerawr-sub002/sanitize"
)

// Renderer converts a token sequence into sanitized HTML using a type-keyed
// table of render rules. Like the Parser, it is not safe for concurrent
// mutation.
type Renderer struct {
	rules     map[string]RenderRule
	blockType map[string]bool
	devMode   bool
	sanitizer *sanitize.Sanitizer
}

// RendererOption configures a Renderer at construction.
type RendererOption func(*Renderer)

// WithDevMode makes unknown token types render a visible debug block naming
// the type, to surface rule-authoring mistakes. In production mode unknown
// types degrade silently to escaped text. This is an explicit flag, not an
// environment check, so both behaviors are testable from the same build.
func WithDevMode(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.devMode = enabled
	}
}

// WithSanitizer overrides the default sanitizer, e.g. to change the
// content-loss threshold from config.
func WithSanitizer(s *sanitize.Sanitizer) RendererOption {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

// NewRenderer builds a Renderer with the default render rules installed for
// every default token type the Parser produces.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		rules:     make(map[string]RenderRule),
		blockType: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.sanitizer == nil {
		r.sanitizer = sanitize.New(sanitize.Options{})
	}
	for _, rule := range defaultRenderRules() {
		r.AddRule(rule)
	}
	return r
}

// AddRule registers a render rule for a token type, replacing any existing
// rule for that type. Last registered wins; there is no stacking.
func (r *Renderer) AddRule(rule RenderRule) {
	r.rules[rule.Type] = rule
	r.blockType[rule.Type] = rule.Block
}

// addOwnedRules registers an extension's render rules tagged with its name.
func (r *Renderer) addOwnedRules(owner string, rules []RenderRule) {
	for _, rule := range rules {
		rule.owner = owner
		r.AddRule(rule)
	}
}

// Render converts tokens into a single sanitized HTML string. It never
// fails: rule errors and panics degrade to visible per-token error blocks,
// and unknown types degrade to escaped text (or a debug block in dev mode).
//
// Runs of inline tokens are wrapped in paragraphs via the registered
// "paragraph" rule; block-level tokens and paragraph-break tokens flush the
// open run.
func (r *Renderer) Render(tokens []Token) string {
	var out strings.Builder
	var run strings.Builder

	flush := func() {
		inner := run.String()
		run.Reset()
		if strings.TrimSpace(inner) == "" {
			return
		}
		out.WriteString(r.renderToken(Token{
			Type:       TypeParagraph,
			Content:    inner,
			Attributes: map[string]string{"html": "true"},
		}))
	}

	for _, tok := range tokens {
		switch {
		case tok.Type == TypeParagraph:
			flush()
		case r.blockType[tok.Type]:
			flush()
			out.WriteString(r.renderToken(tok))
		default:
			run.WriteString(r.renderToken(tok))
		}
	}
	flush()

	return r.sanitizer.Sanitize(out.String())
}

// renderToken emits HTML for a single token.
func (r *Renderer) renderToken(tok Token) string {
	rule, ok := r.rules[tok.Type]
	if !ok {
		return r.renderUnknown(tok)
	}

	out, err := safeRenderHTML(rule, tok)
	if err != nil {
		return fmt.Sprintf(
			`<div class="md-render-error">Render error for %s: %s</div>`,
			html.EscapeString(tok.Type), html.EscapeString(err.Error()),
		)
	}
	return out
}

// renderUnknown handles token types with no registered rule. Text degrades
// to escaped content; other unknown types render a visible debug block in
// dev mode and degrade silently in production.
func (r *Renderer) renderUnknown(tok Token) string {
	if tok.Type == TypeText {
		return html.EscapeString(tok.Content)
	}
	if r.devMode {
		return fmt.Sprintf(
			`<div class="md-unknown-token">Unknown token type %q: %s</div>`,
			tok.Type, html.EscapeString(tok.Content),
		)
	}
	if tok.Content != "" {
		return html.EscapeString(tok.Content)
	}
	return html.EscapeString(tok.Raw)
}

// safeRenderHTML invokes a render rule, converting panics into errors so one
// bad token never takes down the whole document.
func safeRenderHTML(rule RenderRule, tok Token) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return rule.Render(tok)
}
