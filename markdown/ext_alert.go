package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/dlclark/regexp2"
)

// TypeAlert is the token type contributed by the Alert extension.
const TypeAlert = "alert"

// alertPattern matches fenced alert blocks:
//
//	:::type Optional title
//	body
//	:::
//
// The title is single-line and optional; the body spans to the closing
// fence.
var alertPattern = MustCompilePattern(`:::(\w+)(?:[ \t]+([^\n]*))?\n([\s\S]*?)\n?:::`)

// alertStyle bundles the icon glyph and Tailwind-style classes for one
// alert type.
type alertStyle struct {
	Icon      string
	Container string
	Title     string
	Body      string
}

var alertStyles = map[string]alertStyle{
	"info": {
		Icon:      "ℹ️",
		Container: "border-blue-200 bg-blue-50 text-blue-900",
		Title:     "text-blue-800",
		Body:      "text-blue-700",
	},
	"warning": {
		Icon:      "⚠️",
		Container: "border-amber-200 bg-amber-50 text-amber-900",
		Title:     "text-amber-800",
		Body:      "text-amber-700",
	},
	"error": {
		Icon:      "❌",
		Container: "border-red-200 bg-red-50 text-red-900",
		Title:     "text-red-800",
		Body:      "text-red-700",
	},
	"success": {
		Icon:      "✅",
		Container: "border-green-200 bg-green-50 text-green-900",
		Title:     "text-green-800",
		Body:      "text-green-700",
	},
	"tip": {
		Icon:      "💡",
		Container: "border-violet-200 bg-violet-50 text-violet-900",
		Title:     "text-violet-800",
		Body:      "text-violet-700",
	},
	"note": {
		Icon:      "📝",
		Container: "border-gray-200 bg-gray-50 text-gray-900",
		Title:     "text-gray-800",
		Body:      "text-gray-700",
	},
}

// styleForAlertType resolves an alert type key, falling back to the "info"
// bundle for unrecognized keys.
func styleForAlertType(alertType string) alertStyle {
	if s, ok := alertStyles[alertType]; ok {
		return s
	}
	return alertStyles["info"]
}

// capitalize uppercases the first byte of an ASCII word; alert type keys
// are \w+ so this is sufficient for default titles.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// AlertExtension recognizes ":::type title" fenced blocks and renders them
// as styled callout boxes. The rule name contains "alert", which pins it
// before every default rule in scan priority.
func AlertExtension() Extension {
	return Extension{
		Name: "alert",
		ParseRules: []ParseRule{
			{
				Name:    "alert_block",
				Pattern: alertPattern,
				Render: func(m *regexp2.Match) (Token, error) {
					alertType := strings.ToLower(groupString(m, 1))
					title := strings.TrimSpace(groupString(m, 2))
					if title == "" {
						title = capitalize(alertType)
					}
					return Token{
						Type:    TypeAlert,
						Content: strings.TrimSpace(groupString(m, 3)),
						Attributes: map[string]string{
							"type":  alertType,
							"title": title,
						},
					}, nil
				},
			},
		},
		RenderRules: []RenderRule{
			{
				Type:  TypeAlert,
				Block: true,
				Render: func(t Token) (string, error) {
					style := styleForAlertType(t.Attr("type"))
					return fmt.Sprintf(
						`<div class="md-alert rounded-lg border p-4 %s" role="alert">`+
							`<div class="md-alert-title flex items-center gap-2 font-semibold %s">`+
							`<span class="md-alert-icon" aria-hidden="true">%s</span>%s</div>`+
							`<div class="md-alert-body mt-1 %s">%s</div></div>`,
						style.Container,
						style.Title, style.Icon, html.EscapeString(t.Attr("title")),
						style.Body, html.EscapeString(t.Content),
					), nil
				},
			},
		},
	}
}
