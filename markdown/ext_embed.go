package markdown

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/dlclark/regexp2"
)

// TypeEmbed is the token type contributed by the Embed extension.
const TypeEmbed = "embed"

// embedPattern matches [embed:provider](url){key:val,key:val} with an
// optional key:value options bag (distinct syntax from Button's flag bag).
var embedPattern = MustCompilePattern(`\[embed:([A-Za-z]+)\]\(([^)\s]+)\)(?:\{([^}]*)\})?`)

// Provider-specific URL extraction patterns. None need lookarounds, but the
// package compiles every rule-adjacent pattern the same way.
var (
	youtubeWatchPattern  = MustCompilePattern(`youtube\.com/watch\?(?:[^#\s]*&)?v=([A-Za-z0-9_-]{6,})`)
	youtubeShortPattern  = MustCompilePattern(`youtu\.be/([A-Za-z0-9_-]{6,})`)
	youtubeEmbedPattern  = MustCompilePattern(`youtube\.com/embed/([A-Za-z0-9_-]{6,})`)
	youtubeShortsPattern = MustCompilePattern(`youtube\.com/shorts/([A-Za-z0-9_-]{6,})`)
	vimeoPattern         = MustCompilePattern(`vimeo\.com/(?:.*/)?(\d+)`)
	codepenPattern       = MustCompilePattern(`codepen\.io/([^/\s]+)/(?:pen|embed|details)/([A-Za-z0-9]+)`)
)

// parseEmbedOptions interprets the comma-separated key:value bag, e.g.
// {autoplay:true,start:30}. Entries without a colon are kept as flags with
// value "true".
func parseEmbedOptions(raw string) map[string]string {
	opts := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, val, found := strings.Cut(entry, ":")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if !found {
			opts[key] = "true"
			continue
		}
		opts[key] = strings.TrimSpace(val)
	}
	return opts
}

// EmbedExtension recognizes [embed:provider](url){opts} and renders
// provider-specific iframe or card HTML. Extraction failures render a
// visually distinct error block with the failure reason and the original
// URL; that is the expected path for malformed embed syntax, never a panic.
func EmbedExtension() Extension {
	return Extension{
		Name: "embed",
		ParseRules: []ParseRule{
			{
				Name:    "embed_link",
				Pattern: embedPattern,
				Render: func(m *regexp2.Match) (Token, error) {
					return Token{
						Type:    TypeEmbed,
						Content: groupString(m, 2),
						Attributes: map[string]string{
							"provider": strings.ToLower(groupString(m, 1)),
							"url":      groupString(m, 2),
							"options":  groupString(m, 3),
						},
					}, nil
				},
			},
		},
		RenderRules: []RenderRule{
			{
				Type:   TypeEmbed,
				Block:  true,
				Render: renderEmbed,
			},
		},
	}
}

func renderEmbed(t Token) (string, error) {
	rawURL := t.Attr("url")
	opts := parseEmbedOptions(t.Attr("options"))

	switch t.Attr("provider") {
	case "youtube":
		return renderYouTubeEmbed(rawURL, opts), nil
	case "vimeo":
		return renderVimeoEmbed(rawURL), nil
	case "codepen":
		return renderCodePenEmbed(rawURL, opts), nil
	case "codesandbox":
		return renderCodeSandboxEmbed(rawURL, opts), nil
	case "figma":
		return renderFigmaEmbed(rawURL), nil
	case "spotify":
		return renderSpotifyEmbed(rawURL), nil
	case "twitter", "tweet":
		return renderTwitterCard(rawURL), nil
	case "github":
		return renderGitHubCard(rawURL), nil
	default:
		return renderGenericCard(rawURL), nil
	}
}

// embedErrorBlock renders the expected-path failure for a malformed
// provider URL: a distinct block carrying the reason and the original URL.
func embedErrorBlock(reason, rawURL string) string {
	return fmt.Sprintf(
		`<div class="md-embed-error rounded-md border border-red-200 bg-red-50 p-3 text-red-800">`+
			`<span aria-hidden="true">⚠️</span> <strong>%s</strong> <span class="md-embed-error-url">%s</span></div>`,
		html.EscapeString(reason), html.EscapeString(rawURL),
	)
}

// responsiveFrame wraps an iframe in a 16:9 container.
func responsiveFrame(provider, src, title string) string {
	return fmt.Sprintf(
		`<div class="md-embed md-embed-%s" style="position:relative;padding-bottom:56.25%%;height:0;overflow:hidden;">`+
			`<iframe src=%q title=%q style="position:absolute;top:0;left:0;width:100%%;height:100%%;" `+
			`frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" `+
			`allowfullscreen loading="lazy"></iframe></div>`,
		provider, html.EscapeString(src), html.EscapeString(title),
	)
}

// firstGroup runs extraction patterns in order and returns the first
// capture group of the first one that matches.
func firstGroup(rawURL string, patterns ...*regexp2.Regexp) string {
	for _, re := range patterns {
		if m, err := re.FindStringMatch(rawURL); err == nil && m != nil {
			return groupString(m, 1)
		}
	}
	return ""
}

func renderYouTubeEmbed(rawURL string, opts map[string]string) string {
	videoID := firstGroup(rawURL,
		youtubeWatchPattern, youtubeShortPattern, youtubeEmbedPattern, youtubeShortsPattern)
	if videoID == "" {
		return embedErrorBlock("Invalid YouTube URL", rawURL)
	}

	params := url.Values{}
	params.Set("rel", "0")
	params.Set("modestbranding", "1")
	if opts["autoplay"] == "true" {
		params.Set("autoplay", "1")
	}
	if opts["mute"] == "true" {
		params.Set("mute", "1")
	}
	if opts["loop"] == "true" {
		// YouTube only honors loop with an explicit single-video playlist.
		params.Set("loop", "1")
		params.Set("playlist", videoID)
	}
	if opts["controls"] == "false" {
		params.Set("controls", "0")
	}
	if start := opts["start"]; start != "" {
		params.Set("start", start)
	}

	src := "https://www.youtube.com/embed/" + videoID + "?" + params.Encode()
	return responsiveFrame("youtube", src, "YouTube video")
}

func renderVimeoEmbed(rawURL string) string {
	videoID := firstGroup(rawURL, vimeoPattern)
	if videoID == "" {
		return embedErrorBlock("Invalid Vimeo URL", rawURL)
	}
	return responsiveFrame("vimeo", "https://player.vimeo.com/video/"+videoID, "Vimeo video")
}

func renderCodePenEmbed(rawURL string, opts map[string]string) string {
	m, err := codepenPattern.FindStringMatch(rawURL)
	if err != nil || m == nil {
		return embedErrorBlock("Invalid CodePen URL", rawURL)
	}
	user, penID := groupString(m, 1), groupString(m, 2)

	params := url.Values{}
	tab := opts["tab"]
	if tab == "" {
		tab = "result"
	}
	params.Set("default-tab", tab)
	theme := opts["theme"]
	if theme == "" {
		theme = "dark"
	}
	params.Set("theme-id", theme)
	if opts["editable"] == "true" {
		params.Set("editable", "true")
	}

	src := fmt.Sprintf("https://codepen.io/%s/embed/%s?%s", user, penID, params.Encode())
	return fmt.Sprintf(
		`<div class="md-embed md-embed-codepen"><iframe src=%q title="CodePen embed" `+
			`style="width:100%%;height:400px;" frameborder="0" scrolling="no" allowfullscreen loading="lazy"></iframe></div>`,
		html.EscapeString(src),
	)
}

func renderCodeSandboxEmbed(rawURL string, opts map[string]string) string {
	if !strings.Contains(rawURL, "codesandbox.io/") {
		return embedErrorBlock("Invalid CodeSandbox URL", rawURL)
	}
	src := strings.Replace(rawURL, "/s/", "/embed/", 1)
	if view := opts["view"]; view != "" && !strings.Contains(src, "view=") {
		sep := "?"
		if strings.Contains(src, "?") {
			sep = "&"
		}
		src += sep + "view=" + url.QueryEscape(view)
	}
	return fmt.Sprintf(
		`<div class="md-embed md-embed-codesandbox"><iframe src=%q title="CodeSandbox embed" `+
			`style="width:100%%;height:500px;" frameborder="0" sandbox="allow-scripts allow-same-origin" loading="lazy"></iframe></div>`,
		html.EscapeString(src),
	)
}

func renderFigmaEmbed(rawURL string) string {
	if !strings.Contains(rawURL, "figma.com/") {
		return embedErrorBlock("Invalid Figma URL", rawURL)
	}
	src := "https://www.figma.com/embed?embed_host=share&url=" + url.QueryEscape(rawURL)
	return fmt.Sprintf(
		`<div class="md-embed md-embed-figma"><iframe src=%q title="Figma embed" `+
			`style="width:100%%;height:450px;" frameborder="0" allowfullscreen loading="lazy"></iframe></div>`,
		html.EscapeString(src),
	)
}

func renderSpotifyEmbed(rawURL string) string {
	if !strings.Contains(rawURL, "open.spotify.com/") {
		return embedErrorBlock("Invalid Spotify URL", rawURL)
	}
	src := rawURL
	if !strings.Contains(src, "open.spotify.com/embed/") {
		src = strings.Replace(src, "open.spotify.com/", "open.spotify.com/embed/", 1)
	}
	height := "352"
	if strings.Contains(src, "/track/") {
		height = "152"
	}
	return fmt.Sprintf(
		`<div class="md-embed md-embed-spotify"><iframe src=%q title="Spotify embed" `+
			`style="width:100%%;height:%spx;" frameborder="0" allow="encrypted-media" loading="lazy"></iframe></div>`,
		html.EscapeString(src), height,
	)
}

// renderTwitterCard renders a static informational card rather than a true
// embed; the widget script is not loaded inside rendered changelog HTML.
func renderTwitterCard(rawURL string) string {
	return fmt.Sprintf(
		`<div class="md-embed-card md-embed-twitter rounded-md border p-3">`+
			`<span aria-hidden="true">🐦</span> <a href=%q target="_blank" rel="noopener noreferrer">View post on X (Twitter)</a></div>`,
		html.EscapeString(rawURL),
	)
}

// renderGitHubCard parses owner/repo from the URL path and fails closed to
// an error card when either segment is missing.
func renderGitHubCard(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || !strings.HasSuffix(parsed.Hostname(), "github.com") {
		return embedErrorBlock("Invalid GitHub URL", rawURL)
	}
	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return embedErrorBlock("Invalid GitHub URL", rawURL)
	}
	repo := segments[0] + "/" + segments[1]
	return fmt.Sprintf(
		`<div class="md-embed-card md-embed-github rounded-md border p-3">`+
			`<span aria-hidden="true">🐙</span> <a href=%q target="_blank" rel="noopener noreferrer">%s</a> on GitHub</div>`,
		html.EscapeString(rawURL), html.EscapeString(repo),
	)
}

// renderGenericCard is the fallback for unrecognized providers: a domain
// card with the raw link.
func renderGenericCard(rawURL string) string {
	domain := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Hostname() != "" {
		domain = parsed.Hostname()
	}
	return fmt.Sprintf(
		`<div class="md-embed-card md-embed-generic rounded-md border p-3">`+
			`<span aria-hidden="true">🔗</span> <span class="md-embed-domain">%s</span> `+
			`<a href=%q target="_blank" rel="noopener noreferrer">%s</a></div>`,
		html.EscapeString(domain), html.EscapeString(rawURL), html.EscapeString(rawURL),
	)
}
