package epub

import (
	"archive/zip"
	"bytes"
	"testing"
)

// zipEntry is a single archive entry for test EPUBs built in code.
type zipEntry struct {
	name string
	data []byte
}

// pngPayload stands in for a real image; the inliner never decodes it.
var pngPayload = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3, 4, 5, 6, 7, 8}

var cssPayload = []byte("body { margin: 1em; }")

const testContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const testOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0" unique-identifier="uid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:opf="http://www.idpf.org/2007/opf">
    <dc:title>Letters from Prison</dc:title>
    <dc:creator opf:role="aut">Rosa L.</dc:creator>
    <dc:language>de</dc:language>
    <dc:identifier id="uid">urn:uuid:d7a9e1d2-0001</dc:identifier>
    <dc:subject>Letters</dc:subject>
    <dc:subject>History</dc:subject>
  </metadata>
  <manifest>
    <item id="chapter1" href="text/chapter1.xhtml" media-type="application/xhtml+xml"/>
    <item id="chapter2" href="text/chapter2.xhtml" media-type="application/xhtml+xml"/>
    <item id="chapter3" href="text/chapter3.xhtml" media-type="application/xhtml+xml"/>
    <item id="notes" href="text/notes.xhtml" media-type="application/xhtml+xml"/>
    <item id="cover-img" href="img/cover.png" media-type="image/png" properties="cover-image"/>
    <item id="css" href="css/style.css" media-type="text/css"/>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="chapter1"/>
    <itemref idref="chapter2"/>
    <itemref idref="chapter3"/>
  </spine>
</package>`

const testChapter1 = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
<title>Chapter 1</title>
<link rel="stylesheet" type="text/css" href="../css/style.css"/>
</head>
<body>
<h1 id="pgepubid00000">LETTERS FROM PRISON</h1>
<p>First chapter body.</p>
<img alt="" src="../img/cover.png"/>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
<image xlink:href="../img/cover.png" width="100" height="100"/>
</svg>
<p><a href="chapter2.xhtml#Footnote_1_1">see note</a></p>
</body>
</html>`

const testChapter2 = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 2</title></head>
<body>
<h1 id="pgepubid00006">CHAPTER TWO</h1>
<p id="Footnote_1_1">A footnote target.</p>
</body>
</html>`

const testChapter3 = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter 3</title></head>
<body>
<h1 id="ch3">CHAPTER THREE</h1>
<img alt="" src="../img/extra.png"/>
</body>
</html>`

const testNotes = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Notes</title></head>
<body><p id="note-1">Outside the reading order.</p></body>
</html>`

const testBrokenNotes = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Broken</title></head>
<body><img alt="" src="../img/nowhere.png"/></body>
</html>`

const testNCX = `<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head><meta name="dtb:uid" content="urn:uuid:d7a9e1d2-0001"/></head>
  <docTitle><text>Letters from Prison</text></docTitle>
  <navMap>
    <navPoint id="np1" playOrder="1">
      <navLabel><text>  Chapter One  </text></navLabel>
      <content src="text/chapter1.xhtml"/>
    </navPoint>
    <navPoint id="np2" playOrder="2">
      <navLabel><text>Chapter Two</text></navLabel>
      <content src="text/chapter2.xhtml#pgepubid00006"/>
      <navPoint id="np2a" playOrder="3">
        <navLabel><text>Nested Section</text></navLabel>
        <content src="text/chapter2.xhtml#Footnote_1_1"/>
      </navPoint>
    </navPoint>
    <navPoint id="np3" playOrder="4">
      <navLabel><text>Chapter Three</text></navLabel>
      <content src="text/chapter3.xhtml"/>
    </navPoint>
  </navMap>
</ncx>`

// buildZip assembles an in-memory zip archive with a stored mimetype
// entry first, matching the EPUB packaging convention.
func buildZip(t *testing.T, entries []zipEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	mw, err := w.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	})
	if err != nil {
		t.Fatalf("create mimetype: %v", err)
	}
	if _, err := mw.Write([]byte("application/epub+zip")); err != nil {
		t.Fatalf("write mimetype: %v", err)
	}

	for _, e := range entries {
		ew, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("create %s: %v", e.name, err)
		}
		if _, err := ew.Write(e.data); err != nil {
			t.Fatalf("write %s: %v", e.name, err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// buildTestEPUB builds the canonical three-chapter test book used by
// most navigation tests.
func buildTestEPUB(t *testing.T) []byte {
	t.Helper()
	return buildZip(t, []zipEntry{
		{"META-INF/container.xml", []byte(testContainerXML)},
		{"OEBPS/content.opf", []byte(testOPF)},
		{"OEBPS/text/chapter1.xhtml", []byte(testChapter1)},
		{"OEBPS/text/chapter2.xhtml", []byte(testChapter2)},
		{"OEBPS/text/chapter3.xhtml", []byte(testChapter3)},
		{"OEBPS/text/notes.xhtml", []byte(testNotes)},
		{"OEBPS/text/broken.xhtml", []byte(testBrokenNotes)},
		{"OEBPS/img/cover.png", pngPayload},
		{"OEBPS/img/extra.png", pngPayload},
		{"OEBPS/css/style.css", cssPayload},
		{"OEBPS/toc.ncx", []byte(testNCX)},
	})
}

// buildEPUBWithOPF builds a minimal archive around a custom package
// document, for load-failure tests.
func buildEPUBWithOPF(t *testing.T, opf string) []byte {
	t.Helper()
	return buildZip(t, []zipEntry{
		{"META-INF/container.xml", []byte(testContainerXML)},
		{"OEBPS/content.opf", []byte(opf)},
		{"OEBPS/text/chapter1.xhtml", []byte(testChapter2)},
		{"OEBPS/toc.ncx", []byte(testNCX)},
	})
}

// openTestBook opens the canonical test book or fails the test.
func openTestBook(t *testing.T) *Book {
	t.Helper()
	b, err := Open(buildTestEPUB(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return b
}
