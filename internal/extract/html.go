// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor reads HTML pages. Each block element (paragraph, heading,
// list item, table cell, preformatted block) becomes one run. Scripts,
// styles, and navigation chrome are skipped, as is everything in <head>.
type HTMLExtractor struct{}

// Extract parses the HTML file at path and returns its block texts.
func (HTMLExtractor) Extract(_ context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening HTML file: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	root := findFirst(doc, "body")
	if root == nil {
		root = doc
	}
	c := &blockCollector{}
	c.walk(root)
	c.flush()
	return c.runs, nil
}

// blockCollector accumulates text and cuts a run at every block boundary.
type blockCollector struct {
	runs []string
	cur  strings.Builder
}

var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"nav": true, "footer": true, "aside": true, "iframe": true, "head": true,
}

var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "dt": true, "dd": true, "td": true, "th": true, "tr": true,
	"pre": true, "blockquote": true, "div": true, "section": true, "article": true,
	"main": true, "header": true, "figcaption": true, "caption": true,
	"ul": true, "ol": true, "dl": true, "table": true,
}

func (c *blockCollector) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.cur.WriteString(n.Data)
		return
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		if skipTags[name] {
			return
		}
		if name == "br" {
			c.cur.WriteByte('\n')
			return
		}
		if blockTags[name] {
			c.flush()
			defer c.flush()
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.walk(ch)
	}
}

// flush ends the current run. Runs that are only whitespace are dropped.
func (c *blockCollector) flush() {
	text := strings.TrimSpace(c.cur.String())
	c.cur.Reset()
	if text != "" {
		c.runs = append(c.runs, text)
	}
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findFirst(ch, tag); found != nil {
			return found
		}
	}
	return nil
}
