package epub

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// parseNCX parses a legacy NCX navigation document into ordered
// (text, href) pairs. Only direct children of navMap are visited;
// nested navPoint trees are not flattened. A navPoint missing its
// content src or navLabel text fails the whole call.
func parseNCX(data []byte) ([]TocItem, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("epub: parse ncx: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("epub: parse ncx: empty document")
	}

	navMap := root.SelectElement("navMap")
	if navMap == nil {
		return nil, fmt.Errorf("%w: navMap", ErrMissingElement)
	}

	var toc []TocItem
	for _, np := range navMap.ChildElements() {
		if np.Tag != "navPoint" {
			continue
		}

		content := np.SelectElement("content")
		if content == nil {
			return nil, fmt.Errorf("%w: content in navPoint", ErrMissingElement)
		}
		src := content.SelectAttr("src")
		if src == nil {
			return nil, fmt.Errorf("%w: src in content", ErrMissingAttribute)
		}

		navLabel := np.SelectElement("navLabel")
		if navLabel == nil {
			return nil, fmt.Errorf("%w: navLabel in navPoint", ErrMissingElement)
		}
		text := navLabel.SelectElement("text")
		if text == nil {
			return nil, fmt.Errorf("%w: text in navLabel", ErrMissingElement)
		}

		toc = append(toc, TocItem{
			Text: strings.TrimSpace(text.Text()),
			Href: src.Value,
		})
	}
	return toc, nil
}
