package svgembed

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/alnah/go-svg-embed/internal/fileutil"
)

// findImages returns every image element in document order, matching on
// the local tag name so both <image> and <svg:image> qualify.
func findImages(doc *etree.Document) []*etree.Element {
	var images []*etree.Element

	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "image" {
			images = append(images, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}

	if root := doc.Root(); root != nil {
		walk(root)
	}
	return images
}

// hrefAttr returns the element's reference attribute, preferring the
// legacy xlink:href over the SVG 2 plain href.
func hrefAttr(el *etree.Element) *etree.Attr {
	if a := el.SelectAttr("xlink:href"); a != nil {
		return a
	}
	return el.SelectAttr("href")
}

// processImage resolves one image reference into inline content.
// References that do not point under the assets directory are skipped
// silently; asset-level failures are logged and leave the element as-is.
func (s *Service) processImage(img *etree.Element, assetsDir string, report *Report) {
	attr := hrefAttr(img)
	if attr == nil || attr.Value == "" {
		return
	}

	assetPath, ok := fileutil.ContainsPath(assetsDir, attr.Value)
	if !ok {
		return
	}

	report.Found++
	s.logf("Processing: %s", attr.Value)

	switch strings.ToLower(filepath.Ext(assetPath)) {
	case ".png", ".gif":
		uri, err := s.raster.DataURI(assetPath)
		if err != nil {
			report.Warnings++
			s.logf("  -> Warning: %v. Skipping.", err)
			return
		}
		attr.Value = uri
		report.Embedded++
		s.logf("  -> Embedded as Base64 data URI.")

	case ".svg":
		x, y, err := inlineVector(img, assetPath)
		if err != nil {
			report.Warnings++
			s.logf("  -> Warning: %v. Skipping.", err)
			return
		}
		report.Embedded++
		s.logf("  -> Inlined content with transform: translate(%s, %s).", x, y)

	default:
		report.Warnings++
		s.logf("  -> Warning: unsupported asset type %q. Skipping.", filepath.Ext(assetPath))
	}
}
