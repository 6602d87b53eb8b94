package epub

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

const containerPath = "META-INF/container.xml"

// packageDoc is the result of parsing the OPF package document.
type packageDoc struct {
	opfPath  string
	manifest map[string]ManifestItem
	order    []string // manifest ids in document order
	spine    []string // manifest ids in reading order
	tocPath  string
	metadata Metadata
}

// parseContainer parses META-INF/container.xml and returns the package
// document's archive path.
func parseContainer(r *Reader) (string, error) {
	data, err := r.ReadFile(containerPath)
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("epub: parse %s: %w", containerPath, err)
	}

	rootfile := doc.FindElement("//rootfile")
	if rootfile == nil {
		return "", ErrMissingRootfile
	}

	fullPath := rootfile.SelectAttr("full-path")
	if fullPath == nil {
		return "", fmt.Errorf("%w: full-path in rootfile", ErrMissingAttribute)
	}
	return normalizePath(fullPath.Value), nil
}

// parsePackage parses the OPF package document found at opfPath.
// Malformed archives are rejected wholesale: a manifest item missing a
// required attribute or a spine entry without a manifest counterpart
// fails the whole load.
func parsePackage(r *Reader, opfPath string) (*packageDoc, error) {
	data, err := r.ReadFile(opfPath)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("epub: parse %s: %w", opfPath, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("epub: parse %s: empty document", opfPath)
	}

	pkg := &packageDoc{
		opfPath:  opfPath,
		manifest: make(map[string]ManifestItem),
	}

	manifestEl := root.SelectElement("manifest")
	if manifestEl == nil {
		return nil, fmt.Errorf("%w: manifest", ErrMissingElement)
	}
	for _, item := range manifestEl.SelectElements("item") {
		mi, err := parseManifestItem(item)
		if err != nil {
			return nil, err
		}
		// Duplicate ids: last write wins.
		if _, dup := pkg.manifest[mi.ID]; !dup {
			pkg.order = append(pkg.order, mi.ID)
		}
		pkg.manifest[mi.ID] = mi
	}

	spineEl := root.SelectElement("spine")
	if spineEl == nil {
		return nil, fmt.Errorf("%w: spine", ErrMissingElement)
	}
	for _, ref := range spineEl.SelectElements("itemref") {
		idref := ref.SelectAttr("idref")
		if idref == nil {
			return nil, fmt.Errorf("%w: idref in itemref", ErrMissingAttribute)
		}
		if _, ok := pkg.manifest[idref.Value]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedIdref, idref.Value)
		}
		pkg.spine = append(pkg.spine, idref.Value)
	}

	tocID := spineEl.SelectAttr("toc")
	if tocID == nil {
		return nil, fmt.Errorf("%w: toc in spine", ErrMissingAttribute)
	}
	tocItem, ok := pkg.manifest[tocID.Value]
	if !ok {
		return nil, fmt.Errorf("%w: toc %q", ErrUnresolvedIdref, tocID.Value)
	}
	pkg.tocPath = resolvePath(tocItem.Href, opfPath)

	pkg.metadata = parseMetadata(root)

	return pkg, nil
}

// parseManifestItem extracts a manifest item; id, href and media-type
// are all required.
func parseManifestItem(el *etree.Element) (ManifestItem, error) {
	var mi ManifestItem
	for _, attr := range []struct {
		name string
		dst  *string
	}{
		{"id", &mi.ID},
		{"href", &mi.Href},
		{"media-type", &mi.MediaType},
	} {
		a := el.SelectAttr(attr.name)
		if a == nil {
			return ManifestItem{}, fmt.Errorf("%w: %s in item", ErrMissingAttribute, attr.name)
		}
		*attr.dst = a.Value
	}
	if props := el.SelectAttrValue("properties", ""); props != "" {
		mi.Properties = strings.Fields(props)
	}
	return mi, nil
}
