package viewer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link is an anchor found in the page body, numbered in reading order.
type Link struct {
	Number int
	Text   string
	Href   string
}

// page is the readable part of an HTML document.
type page struct {
	title    string
	markdown string
	links    []Link
}

var contentSelectors = []string{
	"article", "main", "[role='main']",
	".content", ".main-content", "#content", "#main",
}

// inlineTags are flowed into the surrounding paragraph or list item.
var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "br": true, "cite": true, "code": true,
	"em": true, "i": true, "kbd": true, "label": true, "mark": true, "q": true,
	"s": true, "small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "time": true, "u": true,
}

var headingPrefix = map[string]string{
	"h1": "# ", "h2": "## ", "h3": "### ",
	"h4": "#### ", "h5": "#### ", "h6": "#### ",
}

// extractPage turns an HTML document into Markdown, keeping headings,
// paragraphs, list items and quotes, with anchors replaced by [n] markers.
func extractPage(doc *goquery.Document) page {
	doc.Find("script, style, meta, link, noscript, svg, iframe").Remove()

	p := page{title: strings.TrimSpace(doc.Find("title").First().Text())}

	w := &markdownWriter{title: p.title, links: &p.links}
	if p.title != "" {
		w.out.WriteString(fmt.Sprintf("# %s\n\n", p.title))
	}
	w.walk(findMainContent(doc), "")

	if len(p.links) > 0 {
		w.out.WriteString("\n## Links\n\n")
		for _, l := range p.links {
			w.out.WriteString(fmt.Sprintf("%d. %s (%s)\n", l.Number, l.Text, l.Href))
		}
	}

	p.markdown = strings.TrimSpace(w.out.String())
	return p
}

// markdownWriter emits blocks in document order. The quote argument of its
// methods is the "> " prefix of the enclosing blockquotes.
type markdownWriter struct {
	out    strings.Builder
	title  string
	links  *[]Link
	inList bool
}

// walk writes the blocks under sel. Loose text and inline elements between
// blocks become paragraphs of their own.
func (w *markdownWriter) walk(sel *goquery.Selection, quote string) {
	var parts []string
	flush := func() {
		if text := strings.Join(parts, " "); text != "" {
			w.block(quote+text+"\n\n", false)
		}
		parts = nil
	}

	sel.Contents().Each(func(i int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch {
		case name == "#text" || inlineTags[name]:
			if text := inlineText(c, w.links); text != "" {
				parts = append(parts, text)
			}
		case name == "#comment":
		case headingPrefix[name] != "":
			flush()
			text := textWithLinks(c, w.links)
			if text == "" || (name == "h1" && text == w.title) {
				return
			}
			w.block(quote+headingPrefix[name]+text+"\n\n", false)
		case name == "p":
			flush()
			if text := textWithLinks(c, w.links); text != "" {
				w.block(quote+text+"\n\n", false)
			}
		case name == "ul" || name == "ol":
			flush()
			w.list(c, quote, 0)
		case name == "li":
			flush()
			w.item(c, quote, 0)
		case name == "blockquote":
			flush()
			w.walk(c, quote+"> ")
		default:
			flush()
			w.walk(c, quote)
		}
	})
	flush()
}

func (w *markdownWriter) list(sel *goquery.Selection, quote string, depth int) {
	sel.Children().Each(func(i int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "li":
			w.item(c, quote, depth)
		case "ul", "ol":
			w.list(c, quote, depth+1)
		}
	})
}

// item writes the text of a list item, then any lists nested inside it one
// level deeper.
func (w *markdownWriter) item(sel *goquery.Selection, quote string, depth int) {
	var parts []string
	var nested []*goquery.Selection
	sel.Contents().Each(func(i int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "ul", "ol":
			nested = append(nested, c)
		default:
			if text := inlineText(c, w.links); text != "" {
				parts = append(parts, text)
			}
		}
	})

	if text := strings.Join(parts, " "); text != "" {
		w.block(fmt.Sprintf("%s%s- %s\n", quote, strings.Repeat("  ", depth), text), true)
	}
	for _, list := range nested {
		w.list(list, quote, depth+1)
	}
}

// block appends one rendered block, closing a preceding list with a blank line.
func (w *markdownWriter) block(text string, listItem bool) {
	if w.inList && !listItem {
		w.out.WriteString("\n")
	}
	w.inList = listItem
	w.out.WriteString(text)
}

// textWithLinks flattens the text under sel, numbering followable anchors.
func textWithLinks(sel *goquery.Selection, links *[]Link) string {
	var parts []string
	sel.Contents().Each(func(i int, c *goquery.Selection) {
		if text := inlineText(c, links); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// inlineText flattens a single node.
func inlineText(c *goquery.Selection, links *[]Link) string {
	switch goquery.NodeName(c) {
	case "#text":
		return strings.Join(strings.Fields(c.Text()), " ")
	case "#comment":
		return ""
	case "a":
		text := strings.Join(strings.Fields(c.Text()), " ")
		if text == "" {
			return ""
		}
		href, _ := c.Attr("href")
		if !followable(href) {
			return text
		}
		number := len(*links) + 1
		*links = append(*links, Link{Number: number, Text: text, Href: href})
		return fmt.Sprintf("%s [%d]", text, number)
	default:
		return textWithLinks(c, links)
	}
}

func followable(href string) bool {
	if href == "" {
		return false
	}
	for _, prefix := range []string{"#", "mailto:", "tel:", "javascript:"} {
		if strings.HasPrefix(href, prefix) {
			return false
		}
	}
	return true
}

// findMainContent picks the element most likely to hold the page body.
func findMainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if found := doc.Find(selector).First(); found.Length() > 0 {
			return found
		}
	}
	return findBestContentByDensity(doc.Find("body"))
}

// findBestContentByDensity scores containers by word count, discounting
// link-heavy blocks such as navigation bars.
func findBestContentByDensity(sel *goquery.Selection) *goquery.Selection {
	bestScore := 0.0
	var best *goquery.Selection

	sel.Find("div, section").Each(func(i int, s *goquery.Selection) {
		words := len(strings.Fields(s.Text()))
		if words < 20 {
			return
		}
		linkRatio := float64(s.Find("a").Length()) / float64(words)
		if linkRatio > 0.3 {
			return
		}
		score := float64(words) * (1 - linkRatio)
		if score > bestScore {
			bestScore = score
			best = s
		}
	})

	if best != nil {
		return best
	}
	return sel
}
