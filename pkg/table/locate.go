package table

import (
	"strings"

	"golang.org/x/net/html"
)

// Span holds the byte offsets of one table element within the markup it was
// located in. Offsets index the original string; -1 marks an absent marker.
type Span struct {
	// Index is the position of the table element in document order.
	Index int

	// Start is the offset of "<table", End the offset just past "</table>".
	Start, End int

	// BodyOpenEnd is the offset just past the first own <tbody> start tag.
	BodyOpenEnd int

	// BodyClose is the offset of the last own </tbody> end tag.
	BodyClose int

	// HeaderEnd is the offset just past the first row's </tr>.
	HeaderEnd int

	// HeaderInBody reports whether the first row sits inside <tbody>.
	HeaderInBody bool
}

// tableScan is the state of one open table while tokenizing.
type tableScan struct {
	span       Span
	section    string
	rows       int
	inFirstRow bool
}

// Locate tokenizes markup and returns the span of every table element in
// document order. Rows and sections of nested tables are attributed to the
// innermost open table only. Tables left unclosed end at len(markup).
// CDATA sections are opaque: markup inside them never produces a span.
func Locate(markup string) []Span {
	z := html.NewTokenizer(strings.NewReader(maskCDATA(markup)))

	var (
		spans  []Span
		open   []*tableScan
		offset int
	)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())

		if tt != html.StartTagToken && tt != html.EndTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		name, _ := z.TagName()
		tag := string(name)

		if tag == "table" {
			switch tt {
			case html.StartTagToken:
				spans = append(spans, Span{})
				open = append(open, &tableScan{span: Span{
					Index:       len(spans) - 1,
					Start:       start,
					End:         -1,
					BodyOpenEnd: -1,
					BodyClose:   -1,
					HeaderEnd:   -1,
				}})
			case html.EndTagToken:
				if len(open) == 0 {
					continue
				}
				top := open[len(open)-1]
				open = open[:len(open)-1]
				top.span.End = offset
				spans[top.span.Index] = top.span
			}
			continue
		}

		if len(open) == 0 {
			continue
		}
		top := open[len(open)-1]

		switch {
		case tt == html.StartTagToken && (tag == "thead" || tag == "tfoot"):
			top.section = tag
		case tt == html.StartTagToken && tag == "tbody":
			top.section = tag
			if top.span.BodyOpenEnd < 0 {
				top.span.BodyOpenEnd = offset
			}
		case tt == html.EndTagToken && tag == "tbody":
			top.span.BodyClose = start
			top.section = ""
		case tt == html.EndTagToken && (tag == "thead" || tag == "tfoot"):
			top.section = ""
		case tt == html.StartTagToken && tag == "tr":
			if top.rows == 0 {
				top.inFirstRow = true
				top.span.HeaderInBody = top.section == "tbody"
			}
			top.rows++
		case tt == html.EndTagToken && tag == "tr":
			if top.inFirstRow {
				top.inFirstRow = false
				top.span.HeaderEnd = offset
			}
		}
	}

	for _, top := range open {
		top.span.End = len(markup)
		spans[top.span.Index] = top.span
	}
	return spans
}

// Find returns the span sel selects, or false when the markup holds no such table.
func Find(markup string, sel Selection) (Span, bool) {
	spans := Locate(markup)
	idx, ok := sel.resolve(len(spans))
	if !ok {
		return Span{}, false
	}
	return spans[idx], true
}
