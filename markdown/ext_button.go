package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/dlclark/regexp2"
)

// TypeButton is the token type contributed by the Button extension.
const TypeButton = "button"

// buttonPattern matches [button:label](href){opt1,opt2,...} with an
// optional flag bag.
var buttonPattern = MustCompilePattern(`\[button:([^\]]+)\]\(([^)\s]+)\)(?:\{([^}]*)\})?`)

// externalLinkGlyph is appended to buttons that open in a new tab.
const externalLinkGlyph = `<span class="md-button-external" aria-hidden="true">↗</span>`

var buttonStyleClasses = map[string]string{
	"default":   "bg-gray-100 text-gray-900 hover:bg-gray-200",
	"primary":   "bg-blue-600 text-white hover:bg-blue-700",
	"secondary": "bg-gray-600 text-white hover:bg-gray-700",
	"success":   "bg-green-600 text-white hover:bg-green-700",
	"danger":    "bg-red-600 text-white hover:bg-red-700",
	"outline":   "border border-gray-300 text-gray-900 hover:bg-gray-50",
	"ghost":     "text-gray-900 hover:bg-gray-100",
}

var buttonSizeClasses = map[string]string{
	"sm": "px-2.5 py-1.5 text-sm",
	"md": "px-4 py-2 text-base",
	"lg": "px-6 py-3 text-lg",
}

// parseButtonOptions interprets the comma-separated flag bag: a style
// keyword (default "primary"), a size keyword (default "md"), a "disabled"
// flag and a "self" same-tab flag.
func parseButtonOptions(raw string) (style, size string, disabled, sameTab bool) {
	style, size = "primary", "md"
	for _, opt := range strings.Split(raw, ",") {
		opt = strings.ToLower(strings.TrimSpace(opt))
		switch {
		case opt == "":
		case opt == "disabled":
			disabled = true
		case opt == "self":
			sameTab = true
		default:
			if _, ok := buttonStyleClasses[opt]; ok {
				style = opt
				continue
			}
			if _, ok := buttonSizeClasses[opt]; ok {
				size = opt
			}
			// Unknown flags are ignored; the options bag is forgiving.
		}
	}
	return style, size, disabled, sameTab
}

// ButtonExtension recognizes [button:label](href){opts} and renders a
// styled anchor. The rule name contains "button", pinning it before the
// default link rule so the bracket form is not consumed as a plain link.
func ButtonExtension() Extension {
	return Extension{
		Name: "button",
		ParseRules: []ParseRule{
			{
				Name:    "button_link",
				Pattern: buttonPattern,
				Render: func(m *regexp2.Match) (Token, error) {
					style, size, disabled, sameTab := parseButtonOptions(groupString(m, 3))
					target := "_blank"
					if sameTab {
						target = "_self"
					}
					return Token{
						Type:    TypeButton,
						Content: groupString(m, 1),
						Attributes: map[string]string{
							"href":     groupString(m, 2),
							"style":    style,
							"size":     size,
							"disabled": fmt.Sprintf("%t", disabled),
							"target":   target,
						},
					}, nil
				},
			},
		},
		RenderRules: []RenderRule{
			{
				Type:   TypeButton,
				Render: renderButton,
			},
		},
	}
}

func renderButton(t Token) (string, error) {
	style := buttonStyleClasses[t.Attr("style")]
	if style == "" {
		style = buttonStyleClasses["primary"]
	}
	size := buttonSizeClasses[t.Attr("size")]
	if size == "" {
		size = buttonSizeClasses["md"]
	}

	disabled := t.Attr("disabled") == "true"
	newTab := t.Attr("target") != "_self"

	classes := fmt.Sprintf(
		"md-button inline-flex items-center gap-1 rounded-md font-medium %s %s", style, size)
	if disabled {
		classes += " opacity-50 pointer-events-none"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<a href=%q class=%q`, html.EscapeString(t.Attr("href")), classes)
	if newTab {
		b.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	if disabled {
		b.WriteString(` aria-disabled="true" tabindex="-1"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(t.Content))
	if newTab && !disabled {
		b.WriteString(externalLinkGlyph)
	}
	b.WriteString("</a>")
	return b.String(), nil
}
