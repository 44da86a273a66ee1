package markdown

import (
	"fmt"
	"html"
	"strings"
)

// slugify builds a heading anchor id: lowercase, spaces to hyphens,
// everything outside [a-z0-9-] dropped.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppresses a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// defaultRenderRules builds the render rules for every default token type
// the Parser produces, plus "text" and "paragraph".
func defaultRenderRules() []RenderRule {
	return []RenderRule{
		{
			Type:  TypeHeading,
			Block: true,
			Render: func(t Token) (string, error) {
				level := t.Attr("level")
				if level == "" {
					level = "1"
				}
				slug := slugify(t.Content)
				return fmt.Sprintf(
					`<h%s id=%q class="md-heading md-heading-%s">%s<a href="#%s" class="heading-anchor" aria-hidden="true">#</a></h%s>`,
					level, slug, level, html.EscapeString(t.Content), slug, level,
				), nil
			},
		},
		{
			Type: TypeText,
			Render: func(t Token) (string, error) {
				return html.EscapeString(t.Content), nil
			},
		},
		{
			// Paragraph content is escaped unless it is pre-rendered HTML
			// from the wrapping pass or carries a literal <br> injected by
			// a line-break token. The <br> case is a deliberate compromise
			// so break tags survive paragraph wrapping.
			Type:  TypeParagraph,
			Block: true,
			Render: func(t Token) (string, error) {
				content := t.Content
				if t.Attr("html") != "true" && !strings.Contains(content, "<br>") {
					content = html.EscapeString(content)
				}
				return "<p>" + content + "</p>", nil
			},
		},
		{
			Type: TypeBold,
			Render: func(t Token) (string, error) {
				return "<strong>" + html.EscapeString(t.Content) + "</strong>", nil
			},
		},
		{
			Type: TypeItalic,
			Render: func(t Token) (string, error) {
				return "<em>" + html.EscapeString(t.Content) + "</em>", nil
			},
		},
		{
			Type: TypeInlineCode,
			Render: func(t Token) (string, error) {
				return `<code class="md-inline-code">` + html.EscapeString(t.Content) + "</code>", nil
			},
		},
		{
			Type:  TypeCodeBlock,
			Block: true,
			Render: func(t Token) (string, error) {
				lang := t.Attr("language")
				class := "language-plaintext"
				if lang != "" {
					class = "language-" + html.EscapeString(lang)
				}
				return fmt.Sprintf(
					`<pre class="md-code-block"><code class=%q>%s</code></pre>`,
					class, html.EscapeString(t.Content),
				), nil
			},
		},
		{
			Type: TypeImage,
			Render: func(t Token) (string, error) {
				src := html.EscapeString(t.Attr("src"))
				alt := html.EscapeString(t.Content)
				title := t.Attr("title")
				if title != "" {
					return fmt.Sprintf(`<img src=%q alt=%q title=%q class="md-image" loading="lazy">`,
						src, alt, html.EscapeString(title)), nil
				}
				return fmt.Sprintf(`<img src=%q alt=%q class="md-image" loading="lazy">`, src, alt), nil
			},
		},
		{
			Type: TypeLink,
			Render: func(t Token) (string, error) {
				return fmt.Sprintf(
					`<a href=%q target="_blank" rel="noopener noreferrer" class="md-link">%s</a>`,
					html.EscapeString(t.Attr("href")), html.EscapeString(t.Content),
				), nil
			},
		},
		{
			Type:  TypeTaskListItem,
			Block: true,
			Render: func(t Token) (string, error) {
				checked := ""
				if t.Attr("checked") == "true" {
					checked = " checked"
				}
				return fmt.Sprintf(
					`<ul class="md-task-list"><li class="md-task-item"><input type="checkbox" disabled%s> %s</li></ul>`,
					checked, html.EscapeString(t.Content),
				), nil
			},
		},
		{
			Type:  TypeUnorderedListItem,
			Block: true,
			Render: func(t Token) (string, error) {
				return `<ul class="md-list"><li>` + html.EscapeString(t.Content) + "</li></ul>", nil
			},
		},
		{
			Type:  TypeOrderedListItem,
			Block: true,
			Render: func(t Token) (string, error) {
				index := t.Attr("index")
				if index == "" {
					index = "1"
				}
				return fmt.Sprintf(
					`<ol class="md-list md-list-ordered" start=%q><li>%s</li></ol>`,
					index, html.EscapeString(t.Content),
				), nil
			},
		},
		{
			Type:  TypeBlockquote,
			Block: true,
			Render: func(t Token) (string, error) {
				return `<blockquote class="md-blockquote">` + html.EscapeString(t.Content) + "</blockquote>", nil
			},
		},
		{
			Type:  TypeHorizontalRule,
			Block: true,
			Render: func(t Token) (string, error) {
				return `<hr class="md-hr">`, nil
			},
		},
		{
			Type: TypeLineBreak,
			Render: func(t Token) (string, error) {
				return "<br>", nil
			},
		},
		{
			Type: TypeSoftBreak,
			Render: func(t Token) (string, error) {
				return " ", nil
			},
		},
	}
}
