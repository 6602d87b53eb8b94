package epub

import "strings"

// FindCover locates the cover image using prioritized methods: the
// EPUB 3 manifest property first, then the EPUB 2 meta declaration.
func (b *Book) FindCover() (ManifestItem, bool) {
	// Method 1: EPUB 3.0 - manifest item with a cover-image property.
	for _, id := range b.order {
		item := b.manifest[id]
		if !isImage(item.MediaType) {
			continue
		}
		for _, prop := range item.Properties {
			if strings.EqualFold(prop, "cover-image") {
				return item, true
			}
		}
	}

	// Method 2: EPUB 2.0 - meta name="cover" content="item-id".
	if b.metadata.CoverID != "" {
		if item, ok := b.manifest[b.metadata.CoverID]; ok && isImage(item.MediaType) {
			return item, true
		}
	}

	return ManifestItem{}, false
}

// CoverBytes reads the detected cover image and returns its bytes and
// declared media type.
func (b *Book) CoverBytes() ([]byte, string, error) {
	item, ok := b.FindCover()
	if !ok {
		return nil, "", ErrNoCover
	}
	data, err := b.reader.ReadFile(resolvePath(item.Href, b.opfPath))
	if err != nil {
		return nil, "", err
	}
	return data, item.MediaType, nil
}

func isImage(mediaType string) bool {
	return strings.HasPrefix(mediaType, "image/")
}
