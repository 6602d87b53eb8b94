package epub

// ManifestItem represents an item in the package manifest. Href is kept
// as written in the package document, relative to the OPF directory;
// it is resolved against the OPF path at use sites.
type ManifestItem struct {
	ID         string
	Href       string
	MediaType  string
	Properties []string
}

// TocItem is a single top-level table-of-contents entry. Href is
// relative to the NCX document's own location.
type TocItem struct {
	Text string
	Href string
}

// Metadata represents the Dublin Core metadata section of the OPF.
type Metadata struct {
	Title       string
	Creators    []Creator
	Language    string
	Identifier  string
	Publisher   string
	Date        string
	Description string
	Subjects    []string
	Rights      string
	CoverID     string // EPUB 2.0 cover image manifest item ID (from meta name="cover")
}

// Creator represents a creator (author, editor, etc.) of the book.
type Creator struct {
	Name string
	Role string // e.g., "aut" for author, "edt" for editor
}
