package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// embedToken builds an embed token the way the parse rule would.
func embedToken(t *testing.T, provider, url, options string) Token {
	t.Helper()
	return Token{
		Type:    TypeEmbed,
		Content: url,
		Attributes: map[string]string{
			"provider": provider,
			"url":      url,
			"options":  options,
		},
	}
}

func TestEmbed_YouTube_URLShapeVariants(t *testing.T) {
	testCases := []struct {
		name string
		url  string
	}{
		{name: "Watch", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{name: "WatchWithExtraParams", url: "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ"},
		{name: "ShortLink", url: "https://youtu.be/dQw4w9WgXcQ"},
		{name: "EmbedPath", url: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{name: "Shorts", url: "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			html, err := renderEmbed(embedToken(t, "youtube", tc.url, ""))
			require.NoError(t, err)
			require.Contains(t, html, "youtube.com/embed/dQw4w9WgXcQ")
			require.Contains(t, html, "rel=0")
			require.Contains(t, html, "modestbranding=1")
		})
	}
}

func TestEmbed_YouTube_OptionsBecomeParams(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "youtube",
		"https://youtu.be/dQw4w9WgXcQ", "autoplay:true,mute:true,loop:true,controls:false,start:42"))
	require.NoError(t, err)

	require.Contains(t, html, "autoplay=1")
	require.Contains(t, html, "mute=1")
	require.Contains(t, html, "loop=1")
	require.Contains(t, html, "playlist=dQw4w9WgXcQ")
	require.Contains(t, html, "controls=0")
	require.Contains(t, html, "start=42")
}

func TestEmbed_YouTube_InvalidURLRendersErrorBlock(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "youtube", "https://example.com/not-a-video", ""))
	require.NoError(t, err)

	require.Contains(t, html, "Invalid YouTube URL")
	require.Contains(t, html, "https://example.com/not-a-video")
	require.NotContains(t, html, "<iframe")
}

func TestEmbed_Vimeo_ExtractsNumericID(t *testing.T) {
	for _, url := range []string{
		"https://vimeo.com/76979871",
		"https://vimeo.com/channels/staffpicks/76979871",
	} {
		html, err := renderEmbed(embedToken(t, "vimeo", url, ""))
		require.NoError(t, err)
		require.Contains(t, html, "player.vimeo.com/video/76979871")
	}

	html, err := renderEmbed(embedToken(t, "vimeo", "https://vimeo.com/about", ""))
	require.NoError(t, err)
	require.Contains(t, html, "Invalid Vimeo URL")
}

func TestEmbed_CodePen_URLShapeVariants(t *testing.T) {
	for _, url := range []string{
		"https://codepen.io/chriscoyier/pen/gOPGbYN",
		"https://codepen.io/chriscoyier/embed/gOPGbYN",
		"https://codepen.io/chriscoyier/details/gOPGbYN",
	} {
		html, err := renderEmbed(embedToken(t, "codepen", url, ""))
		require.NoError(t, err)
		require.Contains(t, html, "codepen.io/chriscoyier/embed/gOPGbYN")
		require.Contains(t, html, "default-tab=result")
		require.Contains(t, html, "theme-id=dark")
	}
}

func TestEmbed_CodePen_OptionsAndErrorPath(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "codepen",
		"https://codepen.io/u/pen/abcDEF", "tab:css,theme:light,editable:true"))
	require.NoError(t, err)
	require.Contains(t, html, "default-tab=css")
	require.Contains(t, html, "theme-id=light")
	require.Contains(t, html, "editable=true")

	html, err = renderEmbed(embedToken(t, "codepen", "https://codepen.io/onlyuser", ""))
	require.NoError(t, err)
	require.Contains(t, html, "Invalid CodePen URL")
}

func TestEmbed_CodeSandbox_RewritesPathAndAppendsView(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "codesandbox",
		"https://codesandbox.io/s/new-sandbox-abc123", "view:preview"))
	require.NoError(t, err)
	require.Contains(t, html, "codesandbox.io/embed/new-sandbox-abc123")
	require.Contains(t, html, "view=preview")

	// An explicit view in the URL wins over the option.
	html, err = renderEmbed(embedToken(t, "codesandbox",
		"https://codesandbox.io/embed/abc123?view=editor", "view:preview"))
	require.NoError(t, err)
	require.Contains(t, html, "view=editor")
	require.NotContains(t, html, "view=preview")

	html, err = renderEmbed(embedToken(t, "codesandbox", "https://example.com/x", ""))
	require.NoError(t, err)
	require.Contains(t, html, "Invalid CodeSandbox URL")
}

func TestEmbed_Figma_WrapsURLInEmbedProxy(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "figma",
		"https://www.figma.com/file/AbC123/My-Design", ""))
	require.NoError(t, err)
	// The src attribute is HTML-escaped, so the & shows up as &amp;.
	require.Contains(t, html, "figma.com/embed?embed_host=share&amp;url=")
	require.Contains(t, html, "My-Design")
}

func TestEmbed_Spotify_RewritesHostAndPicksHeight(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "spotify",
		"https://open.spotify.com/track/4cOdK2wGLETKBW3PvgPWqT", ""))
	require.NoError(t, err)
	require.Contains(t, html, "open.spotify.com/embed/track/")
	require.Contains(t, html, "height:152px")

	html, err = renderEmbed(embedToken(t, "spotify",
		"https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", ""))
	require.NoError(t, err)
	require.Contains(t, html, "open.spotify.com/embed/playlist/")
	require.Contains(t, html, "height:352px")
}

func TestEmbed_TwitterAndTweet_RenderStaticCard(t *testing.T) {
	for _, provider := range []string{"twitter", "tweet"} {
		html, err := renderEmbed(embedToken(t, provider, "https://x.com/user/status/1", ""))
		require.NoError(t, err)
		require.Contains(t, html, "View post on X (Twitter)")
		require.NotContains(t, html, "<iframe")
	}
}

func TestEmbed_GitHub_CardAndFailClosed(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "github", "https://github.com/golang/go", ""))
	require.NoError(t, err)
	require.Contains(t, html, "golang/go")
	require.Contains(t, html, `href="https://github.com/golang/go"`)

	for _, url := range []string{
		"https://github.com/golang",
		"https://github.com/",
		"https://example.com/golang/go",
	} {
		html, err = renderEmbed(embedToken(t, "github", url, ""))
		require.NoError(t, err)
		require.Contains(t, html, "Invalid GitHub URL", "url: %s", url)
	}
}

func TestEmbed_UnknownProvider_FallsBackToGenericCard(t *testing.T) {
	html, err := renderEmbed(embedToken(t, "mysteryprovider", "https://blog.example.com/post/1", ""))
	require.NoError(t, err)

	require.Contains(t, html, "md-embed-generic")
	require.Contains(t, html, "blog.example.com")
	require.Contains(t, html, "https://blog.example.com/post/1")
}

func TestParseEmbedOptions_KeyValueBag(t *testing.T) {
	opts := parseEmbedOptions("autoplay:true, start:30 ,muted,theme:dark")

	require.Equal(t, "true", opts["autoplay"])
	require.Equal(t, "30", opts["start"])
	require.Equal(t, "true", opts["muted"])
	require.Equal(t, "dark", opts["theme"])
	require.Empty(t, opts["missing"])
}

func TestEmbed_ParseTokenShape(t *testing.T) {
	e := New()

	tokens := e.Parse("[embed:YouTube](https://youtu.be/abc123xyz){autoplay:true}")

	require.Len(t, tokens, 1)
	require.Equal(t, TypeEmbed, tokens[0].Type)
	require.Equal(t, "youtube", tokens[0].Attr("provider"))
	require.Equal(t, "https://youtu.be/abc123xyz", tokens[0].Attr("url"))
	require.Equal(t, "autoplay:true", tokens[0].Attr("options"))
}
