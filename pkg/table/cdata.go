package table

import (
	"html"
	"strings"
)

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// cdataSections returns the [start, end) offsets of every CDATA section in
// markup. Storage-format code macros carry their source in CDATA, which an
// HTML tokenizer reads as a bogus comment ending at the first '>'. An
// unterminated section runs to the end of markup.
func cdataSections(markup string) [][2]int {
	var sections [][2]int
	for from := 0; ; {
		i := strings.Index(markup[from:], cdataOpen)
		if i < 0 {
			return sections
		}
		start := from + i
		body := start + len(cdataOpen)
		j := strings.Index(markup[body:], cdataClose)
		end := len(markup)
		if j >= 0 {
			end = body + j + len(cdataClose)
		}
		sections = append(sections, [2]int{start, end})
		from = end
	}
}

// maskCDATA overwrites each CDATA section with a comment of the same byte
// length, so offsets into the result index the original markup.
func maskCDATA(markup string) string {
	sections := cdataSections(markup)
	if len(sections) == 0 {
		return markup
	}
	var b strings.Builder
	b.Grow(len(markup))
	last := 0
	for _, s := range sections {
		b.WriteString(markup[last:s[0]])
		b.WriteString("<!--")
		b.WriteString(strings.Repeat(" ", s[1]-s[0]-len("<!---->")))
		b.WriteString("-->")
		last = s[1]
	}
	b.WriteString(markup[last:])
	return b.String()
}

// unwrapCDATA replaces each CDATA section with its escaped text content.
func unwrapCDATA(markup string) string {
	sections := cdataSections(markup)
	if len(sections) == 0 {
		return markup
	}
	var b strings.Builder
	last := 0
	for _, s := range sections {
		b.WriteString(markup[last:s[0]])
		text := strings.TrimSuffix(markup[s[0]+len(cdataOpen):s[1]], cdataClose)
		b.WriteString(html.EscapeString(text))
		last = s[1]
	}
	b.WriteString(markup[last:])
	return b.String()
}
