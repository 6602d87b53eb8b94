// Package render extracts displayable text from rendered chapter
// fragments.
package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements treated as text blocks.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li"

// Text extracts plain text from a rendered chapter fragment. Each text
// block becomes one paragraph with collapsed whitespace; blocks are
// separated by blank lines.
func Text(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("render: parse fragment: %w", err)
	}

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if text := collapse(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) == 0 {
		// No block elements: fall back to the whole document text.
		return collapse(doc.Text()), nil
	}
	return strings.Join(blocks, "\n\n"), nil
}

// Headings returns the collapsed text of every heading element in
// document order.
func Headings(fragment string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("render: parse fragment: %w", err)
	}

	var headings []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if text := collapse(s.Text()); text != "" {
			headings = append(headings, text)
		}
	})
	return headings, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
