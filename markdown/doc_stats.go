package markdown

import (
	"strings"
	"time"
)

// wordsPerMinute is the reading-speed assumption behind reading-time
// estimates for changelog entries.
const wordsPerMinute = 200

// Heading is one entry of a table of contents extracted from raw markdown.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}

// stripMarkup drops syntax characters that would inflate word counts.
func stripMarkup(markdown string) string {
	replacer := strings.NewReplacer(
		"**", " ", "*", " ", "`", " ", "#", " ",
		"[", " ", "]", " ", "(", " ", ")", " ",
		">", " ", "---", " ", ":::", " ",
	)
	return replacer.Replace(markdown)
}

// WordCount counts whitespace-separated words in the markdown text, after
// stripping syntax characters.
func WordCount(markdown string) int {
	return len(strings.Fields(stripMarkup(markdown)))
}

// EstimateReadingTime returns a reading-time estimate rounded up to a full
// minute, with a one-minute floor for non-empty input.
func EstimateReadingTime(markdown string) time.Duration {
	words := WordCount(markdown)
	if words == 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return time.Duration(minutes) * time.Minute
}

// ExtractHeadings scans raw markdown for heading lines and returns them in
// document order, for table-of-contents generation. Lines inside fenced
// code blocks are skipped.
func ExtractHeadings(markdown string) []Heading {
	var headings []Heading
	inFence := false

	for _, line := range strings.Split(normalizeLineEndings(markdown), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "#") {
			continue
		}

		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if level > 6 || level == len(trimmed) || (trimmed[level] != ' ' && trimmed[level] != '\t') {
			continue
		}

		text := strings.TrimSpace(trimmed[level:])
		headings = append(headings, Heading{
			Level: level,
			Text:  text,
			Slug:  slugify(text),
		})
	}
	return headings
}
