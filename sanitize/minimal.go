package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// uriAttrs are the attributes whose values can carry a URI scheme.
var uriAttrs = map[string]bool{
	"href":       true,
	"src":        true,
	"action":     true,
	"formaction": true,
	"data":       true,
	"xlink:href": true,
}

// Minimal is the weak sanitizer: it strips <script> blocks (including their
// contents), inline event-handler attributes and javascript: URIs, and
// passes everything else through untouched. It is the fallback when the rich
// policy destroys legitimate embed markup and the only path in contexts
// where the rich policy is not configured.
func Minimal(input string) string {
	tz := html.NewTokenizer(strings.NewReader(input))

	var b strings.Builder
	b.Grow(len(input))
	scriptDepth := 0

	for {
		tt := tz.Next()
		switch tt {
		case html.ErrorToken:
			// Malformed trailing markup is dropped with the error; the
			// tokenizer has already emitted everything well-formed.
			return b.String()

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := tz.Token()
			if tok.Data == "script" {
				if tt == html.StartTagToken {
					scriptDepth++
				}
				continue
			}
			if scriptDepth > 0 {
				continue
			}
			tok.Attr = filterAttrs(tok.Attr)
			b.WriteString(tok.String())

		case html.EndTagToken:
			tok := tz.Token()
			if tok.Data == "script" {
				if scriptDepth > 0 {
					scriptDepth--
				}
				continue
			}
			if scriptDepth > 0 {
				continue
			}
			b.WriteString(tok.String())

		case html.TextToken:
			if scriptDepth > 0 {
				continue
			}
			b.WriteString(tz.Token().String())

		case html.CommentToken, html.DoctypeToken:
			if scriptDepth == 0 {
				b.WriteString(tz.Token().String())
			}
		}
	}
}

// filterAttrs drops on* event handlers and URI attributes whose value
// resolves to a javascript: scheme.
func filterAttrs(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") {
			continue
		}
		if uriAttrs[key] && isJavascriptURI(a.Val) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// isJavascriptURI detects javascript: values, including ones padded with
// whitespace or control characters before the scheme.
func isJavascriptURI(val string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, val)
	return strings.HasPrefix(strings.ToLower(cleaned), "javascript:")
}
