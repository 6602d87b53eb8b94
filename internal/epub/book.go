package epub

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Book is the navigation engine over a single open EPUB archive. It
// holds the parsed manifest and spine plus a cursor (currentPath), the
// archive path of whichever chapter was most recently rendered.
//
// A Book is single-owner state: it is not safe for concurrent use.
type Book struct {
	reader   *Reader
	manifest map[string]ManifestItem
	order    []string
	spine    []string
	opfPath  string
	tocPath  string
	metadata Metadata

	// currentPath anchors link-relative navigation. It starts at the
	// package document's own path (a placeholder, never rendered) and
	// is overwritten on every successful chapter resolution. A failed
	// resolution leaves the previous value in place so the caller can
	// retry.
	currentPath string
}

// Open reads raw EPUB archive bytes and builds the navigation engine:
// container and package documents are parsed once, the manifest, spine
// and TOC location are fixed for the engine's lifetime.
func Open(data []byte) (*Book, error) {
	reader, err := NewReader(data)
	if err != nil {
		return nil, err
	}

	opfPath, err := parseContainer(reader)
	if err != nil {
		return nil, err
	}

	pkg, err := parsePackage(reader, opfPath)
	if err != nil {
		return nil, err
	}

	return &Book{
		reader:      reader,
		manifest:    pkg.manifest,
		order:       pkg.order,
		spine:       pkg.spine,
		opfPath:     pkg.opfPath,
		tocPath:     pkg.tocPath,
		metadata:    pkg.metadata,
		currentPath: pkg.opfPath,
	}, nil
}

// DocCount returns the number of documents in the reading order.
func (b *Book) DocCount() int {
	return len(b.spine)
}

// Metadata returns the package metadata parsed at load time.
func (b *Book) Metadata() Metadata {
	return b.metadata
}

// Chapter renders the spine entry at the given zero-based index.
// Manifest hrefs are anchored at the package document's path, never at
// the current chapter.
func (b *Book) Chapter(index int) (string, error) {
	if index < 0 || index >= len(b.spine) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	item := b.manifest[b.spine[index]]
	return b.render(item.Href, b.opfPath)
}

// ChapterByLink renders the chapter a link points to. The href is taken
// as it appears inside an already rendered chapter and is resolved
// relative to the current chapter's location.
func (b *Book) ChapterByLink(href string) (string, error) {
	return b.render(href, b.currentPath)
}

// ChapterByTOCLink renders the chapter a table-of-contents entry points
// to. TOC hrefs are expressed relative to the NCX document's own
// location, not the current chapter.
func (b *Book) ChapterByTOCLink(href string) (string, error) {
	return b.render(href, b.tocPath)
}

// NextChapter renders the spine entry after the current chapter.
// Requesting past the end surfaces ErrIndexOutOfRange.
func (b *Book) NextChapter() (string, error) {
	idx, err := b.currentIndex()
	if err != nil {
		return "", err
	}
	return b.Chapter(idx + 1)
}

// PrevChapter renders the spine entry before the current chapter,
// saturating at the first one: repeated calls at chapter 0 re-render
// chapter 0.
func (b *Book) PrevChapter() (string, error) {
	idx, err := b.currentIndex()
	if err != nil {
		return "", err
	}
	if idx > 0 {
		idx--
	}
	return b.Chapter(idx)
}

// TOC returns the top-level table-of-contents entries in document
// order. It does not move the cursor.
func (b *Book) TOC() ([]TocItem, error) {
	data, err := b.reader.ReadFile(b.tocPath)
	if err != nil {
		return nil, err
	}
	return parseNCX(data)
}

// currentIndex finds the spine index whose resolved item path equals
// the current path. Following a link to a non-spine document (e.g. a
// footnote file) legitimately leaves the cursor outside the spine.
func (b *Book) currentIndex() (int, error) {
	for i, idref := range b.spine {
		item := b.manifest[idref]
		if resolvePath(item.Href, b.opfPath) == b.currentPath {
			return i, nil
		}
	}
	return 0, ErrCurrentNotInSpine
}

// render resolves href against the anchor path, reads and parses the
// target document, inlines its resources and serializes it back to
// text. The cursor moves only after the whole pipeline succeeds.
func (b *Book) render(href, anchor string) (string, error) {
	u, err := parseRelativeURL(href)
	if err != nil {
		return "", fmt.Errorf("epub: parse link %q: %w", href, err)
	}
	target := resolvePath(strings.TrimPrefix(u.Path, "/"), anchor)

	data, err := b.reader.ReadFile(target)
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("epub: parse %s: %w", target, err)
	}
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("epub: parse %s: empty document", target)
	}

	if err := b.inlineResources(root, target); err != nil {
		return "", err
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("epub: serialize %s: %w", target, err)
	}

	b.currentPath = target
	return out, nil
}
