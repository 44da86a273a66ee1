// Package sanitize provides the HTML sanitization pass applied to rendered
// markdown. The rich path is a permissive bluemonday allow-list wide enough
// to keep third-party embeds working; a minimal fallback strips only the
// dangerous constructs when the rich pass destroys too much content.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultLossThreshold is the content-loss ratio below which the rich pass
// is considered to have stripped legitimate markup (usually an embed iframe)
// and the minimal fallback is used instead.
const DefaultLossThreshold = 0.70

// defaultProviderMarkers identify embed-provider HTML that the rich policy
// tends to mangle. Output containing one of these markers is routed through
// the minimal sanitizer directly. This is an explicit reviewed allow-list;
// it does not skip sanitization outright.
var defaultProviderMarkers = []string{
	"youtube.com/embed/",
	"player.vimeo.com/video/",
	"codepen.io/",
	"codesandbox.io/embed/",
	"figma.com/embed",
	"open.spotify.com/embed",
}

// Options configures a Sanitizer. Zero values select the defaults.
type Options struct {
	// LossThreshold overrides DefaultLossThreshold. Must be in (0, 1];
	// values outside the range fall back to the default.
	LossThreshold float64

	// ProviderMarkers overrides the embed-provider marker list.
	ProviderMarkers []string
}

// Sanitizer applies the two-tier sanitization pass.
type Sanitizer struct {
	policy    *bluemonday.Policy
	threshold float64
	markers   []string
}

// New builds a Sanitizer with the rich allow-list policy.
func New(opts Options) *Sanitizer {
	threshold := opts.LossThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultLossThreshold
	}
	markers := opts.ProviderMarkers
	if markers == nil {
		markers = defaultProviderMarkers
	}
	return &Sanitizer{
		policy:    richPolicy(),
		threshold: threshold,
		markers:   markers,
	}
}

// richPolicy is the permissive allow-list: user-generated-content baseline
// plus iframe/object/embed/video, SVG primitives and form controls. Inline
// event handlers are dropped by construction (never allowed) and URL schemes
// are limited to http/https/mailto, which blocks javascript: URIs.
func richPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowAttrs("class", "id", "role", "aria-hidden", "aria-label", "aria-disabled", "tabindex").Globally()
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("target", "rel").OnElements("a")
	p.AllowAttrs("class").OnElements("code", "pre", "span", "div")

	p.AllowElements("iframe", "object", "embed", "video", "audio", "source", "figure", "figcaption")
	p.AllowAttrs(
		"src", "width", "height", "frameborder", "allow", "allowfullscreen",
		"referrerpolicy", "loading", "title", "sandbox", "scrolling",
	).OnElements("iframe")
	p.AllowAttrs("type", "data", "width", "height").OnElements("object", "embed")
	p.AllowAttrs(
		"src", "controls", "autoplay", "muted", "loop", "playsinline",
		"poster", "preload", "width", "height",
	).OnElements("video", "audio")
	p.AllowAttrs("src", "type").OnElements("source")

	p.AllowElements("svg", "path", "circle", "rect", "line", "polyline", "polygon", "g", "defs", "use")
	p.AllowAttrs(
		"viewBox", "xmlns", "fill", "stroke", "stroke-width", "stroke-linecap",
		"stroke-linejoin", "d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
		"points", "width", "height", "aria-hidden",
	).OnElements("svg", "path", "circle", "rect", "line", "polyline", "polygon", "g", "use")

	p.AllowElements("button", "input", "label", "select", "option", "textarea", "form")
	p.AllowAttrs("type", "disabled", "checked", "value", "placeholder", "name", "for").
		OnElements("button", "input", "label", "select", "option", "textarea")

	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowDataURIImages()
	p.RequireNoFollowOnLinks(false)

	return p
}

// Sanitize runs the rich pass and falls back to Minimal when the output
// shrinks below the loss threshold, which in practice means the policy ate a
// legitimate embed. Provider-marked HTML goes straight to Minimal: the
// system deliberately trades maximal XSS hardening for embed fidelity.
func (s *Sanitizer) Sanitize(html string) string {
	if html == "" {
		return ""
	}
	if s.containsProviderMarker(html) {
		return Minimal(html)
	}

	out := s.policy.Sanitize(html)
	if float64(len(out)) < s.threshold*float64(len(html)) {
		return Minimal(html)
	}
	return out
}

// Threshold reports the configured content-loss threshold.
func (s *Sanitizer) Threshold() float64 {
	return s.threshold
}

func (s *Sanitizer) containsProviderMarker(html string) bool {
	for _, marker := range s.markers {
		if strings.Contains(html, marker) {
			return true
		}
	}
	return false
}
