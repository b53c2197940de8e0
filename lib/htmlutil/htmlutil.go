package htmlutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// JoinedText collects the text nodes under a selection, trims each one
// and joins the non-empty segments with sep. Whitespace-only nodes
// (indentation between tags) are dropped.
func JoinedText(sel *goquery.Selection, sep string) string {
	var segments []string
	for _, node := range sel.Nodes {
		collectText(node, &segments)
	}
	return strings.Join(segments, sep)
}

// StrippedText is JoinedText without a separator, the usual shape for
// a table cell or heading that holds a single value.
func StrippedText(sel *goquery.Selection) string {
	return JoinedText(sel, "")
}

func collectText(node *html.Node, segments *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		text := strings.TrimSpace(node.Data)
		if text != "" {
			*segments = append(*segments, text)
		}
		return
	}
	child := node.FirstChild
	for child != nil {
		collectText(child, segments)
		child = child.NextSibling
	}
}
