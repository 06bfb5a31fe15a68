package svgembed

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// inlineVector replaces an image reference with the parsed content of its
// SVG asset. The image element's parent must be a <g> container: it
// receives a translate(x, y) transform using the image's position, the
// image element is removed, and the asset's root element is appended in
// its place. Returns the x/y values used in the transform.
func inlineVector(img *etree.Element, assetPath string) (x, y string, err error) {
	parent := img.Parent()
	if parent == nil || parent.Tag != "g" {
		return "", "", fmt.Errorf("%w: %s", ErrNotInGroup, assetPath)
	}

	assetDoc := etree.NewDocument()
	if err := assetDoc.ReadFromFile(assetPath); err != nil {
		if os.IsNotExist(err) {
			return "", "", fmt.Errorf("%w: %s", ErrAssetNotFound, assetPath)
		}
		return "", "", fmt.Errorf("%w: %s: %v", ErrParseAsset, assetPath, err)
	}

	root := assetDoc.Root()
	if root == nil {
		return "", "", fmt.Errorf("%w: %s: no root element", ErrParseAsset, assetPath)
	}

	stripNamespaces(root)

	x = img.SelectAttrValue("x", "0")
	y = img.SelectAttrValue("y", "0")
	parent.CreateAttr("transform", fmt.Sprintf("translate(%s, %s)", x, y))

	// The asset keeps its own dimensions unless the image reference
	// overrides them.
	if w := img.SelectAttrValue("width", ""); w != "" {
		root.CreateAttr("width", w)
	}
	if h := img.SelectAttrValue("height", ""); h != "" {
		root.CreateAttr("height", h)
	}

	parent.RemoveChild(img)
	parent.AddChild(root)

	return x, y, nil
}

// stripNamespaces removes the namespace prefix from every tag in the
// subtree and drops the now-unused xmlns declarations, so the inlined
// markup reads as plain element names in the host document's default
// namespace.
func stripNamespaces(el *etree.Element) {
	el.Space = ""

	kept := el.Attr[:0]
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		kept = append(kept, a)
	}
	el.Attr = kept

	for _, child := range el.ChildElements() {
		stripNamespaces(child)
	}
}
