package epub

import (
	"encoding/base64"

	"github.com/beevik/etree"
)

// inlineResources rewrites every image/stylesheet reference under el
// into a base64 data URI so the rendered fragment needs no further
// archive access. The walk is post-order: children first, then the
// element's own attribute. A reference that cannot be read aborts the
// whole render; there is no partial-inlining fallback.
func (b *Book) inlineResources(el *etree.Element, chapterPath string) error {
	for _, child := range el.ChildElements() {
		if err := b.inlineResources(child, chapterPath); err != nil {
			return err
		}
	}

	var attrKey string
	switch el.Tag {
	case "img":
		attrKey = "src"
	case "image":
		attrKey = "xlink:href"
	case "link":
		attrKey = "href"
	default:
		return nil
	}

	attr := el.SelectAttr(attrKey)
	if attr == nil {
		return nil
	}

	resourcePath := resolvePath(attr.Value, chapterPath)
	data, err := b.reader.ReadFile(resourcePath)
	if err != nil {
		return err
	}

	attr.Value = "data:" + b.mediaType(resourcePath) + ";base64," +
		base64.StdEncoding.EncodeToString(data)
	return nil
}

// mediaType reverse-searches the manifest for an item whose resolved
// href equals the given archive path. An unlisted resource yields ""
// rather than an error. Document order makes the scan deterministic.
func (b *Book) mediaType(path string) string {
	for _, id := range b.order {
		item := b.manifest[id]
		if resolvePath(item.Href, b.opfPath) == path {
			return item.MediaType
		}
	}
	return ""
}
