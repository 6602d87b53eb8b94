package epub

import "errors"

// Sentinel errors returned by the epub package. Structural errors
// (rootfile, element, attribute, idref) mean the archive itself is
// malformed and reject the load wholesale; lookup errors (index,
// current-not-in-spine) are recoverable by choosing another target.
var (
	// ErrMissingRootfile indicates container.xml has no rootfile element.
	ErrMissingRootfile = errors.New("epub: no rootfile in container.xml")

	// ErrMissingElement indicates a required element is absent from a
	// package or navigation document.
	ErrMissingElement = errors.New("epub: missing element")

	// ErrMissingAttribute indicates a required attribute is absent.
	ErrMissingAttribute = errors.New("epub: missing attribute")

	// ErrUnresolvedIdref indicates a spine idref (or the spine's toc
	// reference) does not resolve to a manifest item.
	ErrUnresolvedIdref = errors.New("epub: idref not in manifest")

	// ErrIndexOutOfRange indicates a chapter index outside the spine.
	ErrIndexOutOfRange = errors.New("epub: spine index out of range")

	// ErrCurrentNotInSpine indicates the current document is not part of
	// the reading order, so next/prev navigation has no reference point.
	ErrCurrentNotInSpine = errors.New("epub: current document not in spine")

	// ErrFileNotFound indicates the requested entry does not exist in
	// the archive.
	ErrFileNotFound = errors.New("epub: file not found in archive")

	// ErrNoCover indicates no cover image could be detected.
	ErrNoCover = errors.New("epub: no cover image found")
)
