package epub

import (
	"strings"

	"github.com/beevik/etree"
)

// parseMetadata extracts Dublin Core metadata from the package root.
// The metadata section is optional; a package without one yields the
// zero Metadata.
func parseMetadata(root *etree.Element) Metadata {
	var md Metadata

	meta := root.SelectElement("metadata")
	if meta == nil {
		return md
	}

	md.Title = elementText(meta, "title")
	md.Language = elementText(meta, "language")
	md.Identifier = elementText(meta, "identifier")
	md.Publisher = elementText(meta, "publisher")
	md.Date = elementText(meta, "date")
	md.Description = elementText(meta, "description")
	md.Rights = elementText(meta, "rights")

	for _, el := range meta.SelectElements("creator") {
		md.Creators = append(md.Creators, Creator{
			Name: strings.TrimSpace(el.Text()),
			Role: el.SelectAttrValue("role", ""),
		})
	}

	for _, el := range meta.SelectElements("subject") {
		if s := strings.TrimSpace(el.Text()); s != "" {
			md.Subjects = append(md.Subjects, s)
		}
	}

	// EPUB 2.0 cover declaration: <meta name="cover" content="item-id"/>.
	for _, el := range meta.SelectElements("meta") {
		if el.SelectAttrValue("name", "") == "cover" {
			if content := el.SelectAttrValue("content", ""); content != "" {
				md.CoverID = content
				break
			}
		}
	}

	return md
}

// elementText returns the trimmed text of the first child with the
// given tag, or "" if absent.
func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
