package epub

import (
	"net/url"
	"strings"
)

// linkBase is an opaque base URL used to parse hrefs found in rendered
// chapters. Resolving against it percent-decodes the path and splits
// off any fragment; the host itself is never used.
var linkBase = url.URL{Scheme: "https", Host: "leedor.invalid"}

// resolvePath resolves a relative reference against an anchor path (an
// existing archive entry). The anchor's last segment is dropped to
// obtain its directory, then ref's segments are walked: ".." pops a
// directory component, anything else (including ".") is appended
// verbatim. An empty ref yields the anchor's directory.
//
// This is filesystem-style relative resolution only; percent-decoding
// and fragment stripping happen before this function is called.
func resolvePath(ref, anchor string) string {
	segs := strings.Split(anchor, "/")
	segs = segs[:len(segs)-1]

	if ref != "" {
		for _, seg := range strings.Split(ref, "/") {
			if seg == ".." {
				if len(segs) > 0 {
					segs = segs[:len(segs)-1]
				}
			} else {
				segs = append(segs, seg)
			}
		}
	}
	return strings.Join(segs, "/")
}

// parseRelativeURL parses an href as it appears inside a rendered
// chapter (possibly percent-encoded, possibly carrying a fragment)
// against the fixed opaque base.
func parseRelativeURL(href string) (*url.URL, error) {
	return linkBase.Parse(href)
}
