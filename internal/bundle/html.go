// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const indexHTML = "index.html"

func readIndex(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", indexHTML, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", indexHTML, err)
	}
	return doc, nil
}

func renderIndex(doc *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", indexHTML, err)
	}
	return buf.Bytes(), nil
}

// findEntry returns the first <script type="module" src="..."> element.
func findEntry(doc *html.Node) (*html.Node, string) {
	var (
		node *html.Node
		src  string
	)
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Script || attr(n, "type") != "module" {
			return true
		}
		if s := attr(n, "src"); s != "" {
			node, src = n, s
			return false
		}
		return true
	})
	return node, src
}

type emittedTags struct {
	script   string
	preloads []string
	style    string
}

// injectBuild replaces entry with the built script and adds preload and
// stylesheet links to <head>.
func injectBuild(doc, entry *html.Node, tags emittedTags) error {
	head := findElement(doc, atom.Head)
	if head == nil {
		return fmt.Errorf("%s has no head", indexHTML)
	}
	entry.Parent.RemoveChild(entry)

	head.AppendChild(newElement(atom.Script,
		html.Attribute{Key: "type", Val: "module"},
		html.Attribute{Key: "crossorigin"},
		html.Attribute{Key: "src", Val: tags.script},
	))
	for _, href := range tags.preloads {
		head.AppendChild(newElement(atom.Link,
			html.Attribute{Key: "rel", Val: "modulepreload"},
			html.Attribute{Key: "crossorigin"},
			html.Attribute{Key: "href", Val: href},
		))
	}
	if tags.style != "" {
		head.AppendChild(newElement(atom.Link,
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "crossorigin"},
			html.Attribute{Key: "href", Val: tags.style},
		))
	}
	return nil
}

func findElement(doc *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return false
		}
		return true
	})
	return found
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// walk visits nodes depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
