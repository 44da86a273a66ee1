package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseButtonOptions_Table(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		wantStyle    string
		wantSize     string
		wantDisabled bool
		wantSameTab  bool
	}{
		{name: "Empty", raw: "", wantStyle: "primary", wantSize: "md"},
		{name: "StyleOnly", raw: "danger", wantStyle: "danger", wantSize: "md"},
		{name: "SizeOnly", raw: "lg", wantStyle: "primary", wantSize: "lg"},
		{name: "StyleAndSize", raw: "outline,sm", wantStyle: "outline", wantSize: "sm"},
		{name: "Disabled", raw: "disabled", wantStyle: "primary", wantSize: "md", wantDisabled: true},
		{name: "SelfTarget", raw: "self", wantStyle: "primary", wantSize: "md", wantSameTab: true},
		{name: "Everything", raw: "ghost,lg,disabled,self", wantStyle: "ghost", wantSize: "lg", wantDisabled: true, wantSameTab: true},
		{name: "UnknownFlagsIgnored", raw: "sparkly,xl,primary", wantStyle: "primary", wantSize: "md"},
		{name: "WhitespaceAndCaseForgiven", raw: " Success , LG ", wantStyle: "success", wantSize: "lg"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			style, size, disabled, sameTab := parseButtonOptions(tc.raw)
			require.Equal(t, tc.wantStyle, style)
			require.Equal(t, tc.wantSize, size)
			require.Equal(t, tc.wantDisabled, disabled)
			require.Equal(t, tc.wantSameTab, sameTab)
		})
	}
}

func TestButton_ParseTokenShape(t *testing.T) {
	e := New()

	tokens := e.Parse("[button:Get Started](https://example.com/docs){secondary,sm}")

	require.Len(t, tokens, 1)
	require.Equal(t, TypeButton, tokens[0].Type)
	require.Equal(t, "Get Started", tokens[0].Content)
	require.Equal(t, "https://example.com/docs", tokens[0].Attr("href"))
	require.Equal(t, "secondary", tokens[0].Attr("style"))
	require.Equal(t, "sm", tokens[0].Attr("size"))
	require.Equal(t, "false", tokens[0].Attr("disabled"))
	require.Equal(t, "_blank", tokens[0].Attr("target"))
}

func TestButton_NewTabGetsExternalGlyph(t *testing.T) {
	e := New()

	html := e.ToHTML("[button:Docs](https://example.com)")

	require.Contains(t, html, `target="_blank"`)
	require.Contains(t, html, `rel="noopener noreferrer"`)
	require.Contains(t, html, "↗")
}

func TestButton_SelfTargetSkipsGlyphAndRel(t *testing.T) {
	e := New()

	html := e.ToHTML("[button:Home](https://example.com){self}")

	require.NotContains(t, html, `target="_blank"`)
	require.NotContains(t, html, "noopener")
	require.NotContains(t, html, "↗")
}

func TestButton_DisabledSkipsGlyph(t *testing.T) {
	e := New()

	html := e.ToHTML("[button:Soon](https://example.com){disabled}")

	require.Contains(t, html, `aria-disabled="true"`)
	require.Contains(t, html, "opacity-50")
	require.NotContains(t, html, "↗")
}

func TestButton_PinnedBeforeDefaultLinkRule(t *testing.T) {
	e := New()

	tokens := e.Parse("[button:Click](https://example.com)")

	require.Len(t, tokens, 1)
	require.Equal(t, TypeButton, tokens[0].Type)
}
