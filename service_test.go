package svgembed

// Notes:
// - Tests using t.Chdir cannot run in parallel; fixtures there use the
//   relative "./assets/..." hrefs a real banner document carries.
// - All other tests build fixtures with absolute paths inside t.TempDir()
//   so they can run in parallel.

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

// writeTestFile creates a file (and its parent directories) under a test dir.
func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// parseOutput reparses an output document for structural assertions.
func parseOutput(t *testing.T, path string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		t.Fatalf("reading output %s: %v", path, err)
	}
	return doc
}

func TestEmbed_RasterDataURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		content  []byte
		wantMIME string
	}{
		{
			name:     "png asset",
			fileName: "logo.png",
			content:  []byte("0123456789"),
			wantMIME: "image/png",
		},
		{
			name:     "gif asset",
			fileName: "girl.gif",
			content:  []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x00, 0x01},
			wantMIME: "image/gif",
		},
		{
			name:     "empty png",
			fileName: "blank.png",
			content:  []byte{},
			wantMIME: "image/png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			assetsDir := filepath.Join(dir, "assets")
			assetPath := filepath.Join(assetsDir, tt.fileName)
			writeTestFile(t, assetPath, tt.content)

			source := filepath.Join(dir, "in.svg")
			writeTestFile(t, source, []byte(fmt.Sprintf(
				`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+
					`<g><image x="1" y="2" xlink:href="%s"/></g></svg>`, assetPath)))

			output := filepath.Join(dir, "out.svg")
			svc := New(WithLogOutput(new(bytes.Buffer)))
			report, err := svc.Embed(context.Background(), Input{
				SourcePath: source,
				OutputPath: output,
				AssetsDir:  assetsDir,
			})
			if err != nil {
				t.Fatalf("Embed() error = %v", err)
			}
			if report.Embedded != 1 || report.Found != 1 {
				t.Errorf("report = %+v, want Found=1 Embedded=1", report)
			}

			doc := parseOutput(t, output)
			img := doc.FindElement("//image")
			if img == nil {
				t.Fatal("output has no image element")
			}
			want := "data:" + tt.wantMIME + ";base64," + base64.StdEncoding.EncodeToString(tt.content)
			if got := img.SelectAttrValue("xlink:href", ""); got != want {
				t.Errorf("href = %q, want %q", got, want)
			}
		})
	}
}

func TestEmbed_PlainHrefAttribute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	assetPath := filepath.Join(assetsDir, "logo.png")
	writeTestFile(t, assetPath, []byte("png-bytes"))

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><g><image href="%s"/></g></svg>`, assetPath)))

	output := filepath.Join(dir, "out.svg")
	svc := New(WithLogOutput(new(bytes.Buffer)))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  assetsDir,
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Embedded != 1 {
		t.Errorf("Embedded = %d, want 1", report.Embedded)
	}

	doc := parseOutput(t, output)
	href := doc.FindElement("//image").SelectAttrValue("href", "")
	if !strings.HasPrefix(href, "data:image/png;base64,") {
		t.Errorf("href = %q, want data:image/png;base64,... prefix", href)
	}
}

func TestEmbed_MissingAssetLeavesReference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(assetsDir, "nope.png")

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><g><image xlink:href="%s" xmlns:xlink="http://www.w3.org/1999/xlink"/></g></svg>`, missing)))

	output := filepath.Join(dir, "out.svg")
	var log bytes.Buffer
	svc := New(WithLogOutput(&log))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  assetsDir,
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Warnings != 1 || report.Embedded != 0 {
		t.Errorf("report = %+v, want Warnings=1 Embedded=0", report)
	}
	if !strings.Contains(log.String(), "Warning") {
		t.Errorf("log = %q, want a warning line", log.String())
	}

	doc := parseOutput(t, output)
	if got := doc.FindElement("//image").SelectAttrValue("xlink:href", ""); got != missing {
		t.Errorf("href = %q, want untouched %q", got, missing)
	}
}

func TestEmbed_ContainmentRejectsSiblingPrefix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	// Sibling directory whose name shares the assets-dir prefix.
	sibling := filepath.Join(dir, "assets-extra", "logo.png")
	writeTestFile(t, sibling, []byte("outside"))

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><g><image href="%s"/></g></svg>`, sibling)))

	output := filepath.Join(dir, "out.svg")
	var log bytes.Buffer
	svc := New(WithLogOutput(&log))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  assetsDir,
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Found != 0 {
		t.Errorf("Found = %d, want 0 (sibling prefix must not qualify)", report.Found)
	}

	doc := parseOutput(t, output)
	if got := doc.FindElement("//image").SelectAttrValue("href", ""); got != sibling {
		t.Errorf("href = %q, want untouched %q", got, sibling)
	}
}

func TestEmbed_SkipsElementsWithoutHref(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(
		`<svg xmlns="http://www.w3.org/2000/svg"><g><image x="3"/></g></svg>`))

	output := filepath.Join(dir, "out.svg")
	var log bytes.Buffer
	svc := New(WithLogOutput(&log))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  filepath.Join(dir, "assets"),
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Found != 0 || report.Warnings != 0 {
		t.Errorf("report = %+v, want all zero", report)
	}
	if log.Len() != 0 {
		t.Errorf("log = %q, want silence for hrefless images", log.String())
	}
}

func TestEmbed_VectorInline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	writeTestFile(t, filepath.Join(assetsDir, "icon.svg"), []byte(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><circle r="4"/></svg>`))

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+
			`<g id="icon"><image x="5" y="10" width="20" height="20" xlink:href="%s"/></g></svg>`,
		filepath.Join(assetsDir, "icon.svg"))))

	output := filepath.Join(dir, "out.svg")
	svc := New(WithLogOutput(new(bytes.Buffer)))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  assetsDir,
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Embedded != 1 {
		t.Errorf("Embedded = %d, want 1", report.Embedded)
	}

	doc := parseOutput(t, output)
	if img := doc.FindElement("//image"); img != nil {
		t.Error("image element should have been removed")
	}

	g := doc.FindElement("//g")
	if g == nil {
		t.Fatal("output has no g element")
	}
	if got := g.SelectAttrValue("transform", ""); got != "translate(5, 10)" {
		t.Errorf("transform = %q, want %q", got, "translate(5, 10)")
	}

	inlined := g.SelectElement("svg")
	if inlined == nil {
		t.Fatal("g has no inlined svg child")
	}
	if got := inlined.SelectAttrValue("width", ""); got != "20" {
		t.Errorf("width = %q, want %q", got, "20")
	}
	if got := inlined.SelectAttrValue("height", ""); got != "20" {
		t.Errorf("height = %q, want %q", got, "20")
	}
	if inlined.SelectElement("circle") == nil {
		t.Error("inlined asset lost its content")
	}
}

func TestEmbed_VectorDefaultPosition(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	writeTestFile(t, filepath.Join(assetsDir, "icon.svg"), []byte(
		`<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`))

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><g><image href="%s"/></g></svg>`,
		filepath.Join(assetsDir, "icon.svg"))))

	output := filepath.Join(dir, "out.svg")
	svc := New(WithLogOutput(new(bytes.Buffer)))
	if _, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  assetsDir,
	}); err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	doc := parseOutput(t, output)
	g := doc.FindElement("//g")
	if got := g.SelectAttrValue("transform", ""); got != "translate(0, 0)" {
		t.Errorf("transform = %q, want %q", got, "translate(0, 0)")
	}
	// No width/height on the image reference, so none copied onto the asset.
	inlined := g.SelectElement("svg")
	if inlined.SelectAttr("width") != nil || inlined.SelectAttr("height") != nil {
		t.Error("asset root gained width/height that the image reference never had")
	}
}

func TestEmbed_VectorOutsideGroupSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	assetPath := filepath.Join(assetsDir, "icon.svg")
	writeTestFile(t, assetPath, []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><image href="%s"/></svg>`, assetPath)))

	output := filepath.Join(dir, "out.svg")
	var log bytes.Buffer
	svc := New(WithLogOutput(&log))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  assetsDir,
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", report.Warnings)
	}
	if !strings.Contains(log.String(), "<g>") {
		t.Errorf("log = %q, want a not-inside-<g> warning", log.String())
	}

	doc := parseOutput(t, output)
	if got := doc.FindElement("//image").SelectAttrValue("href", ""); got != assetPath {
		t.Errorf("href = %q, want untouched %q", got, assetPath)
	}
}

func TestEmbed_UnparsableVectorAssetSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	assetPath := filepath.Join(assetsDir, "broken.svg")
	writeTestFile(t, assetPath, []byte(`<svg><unclosed`))

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><g><image href="%s"/></g></svg>`, assetPath)))

	output := filepath.Join(dir, "out.svg")
	var log bytes.Buffer
	svc := New(WithLogOutput(&log))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  assetsDir,
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", report.Warnings)
	}

	doc := parseOutput(t, output)
	if doc.FindElement("//image") == nil {
		t.Error("image element should survive an unparsable asset")
	}
}

func TestEmbed_FatalErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		svc := New(WithLogOutput(new(bytes.Buffer)))
		_, err := svc.Embed(context.Background(), Input{
			SourcePath: filepath.Join(dir, "absent.svg"),
			OutputPath: filepath.Join(dir, "out.svg"),
			AssetsDir:  "assets",
		})
		if !errors.Is(err, ErrReadSource) {
			t.Errorf("error = %v, want ErrReadSource", err)
		}
	})

	t.Run("unparsable source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		source := filepath.Join(dir, "bad.svg")
		writeTestFile(t, source, []byte(`<svg><g`))

		svc := New(WithLogOutput(new(bytes.Buffer)))
		_, err := svc.Embed(context.Background(), Input{
			SourcePath: source,
			OutputPath: filepath.Join(dir, "out.svg"),
			AssetsDir:  "assets",
		})
		if !errors.Is(err, ErrParseSource) {
			t.Errorf("error = %v, want ErrParseSource", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		assetsDir := filepath.Join(dir, "assets")
		assetPath := filepath.Join(assetsDir, "logo.png")
		writeTestFile(t, assetPath, []byte("x"))
		source := filepath.Join(dir, "in.svg")
		writeTestFile(t, source, []byte(fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg"><g><image href="%s"/></g></svg>`, assetPath)))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := New(WithLogOutput(new(bytes.Buffer)))
		_, err := svc.Embed(ctx, Input{
			SourcePath: source,
			OutputPath: filepath.Join(dir, "out.svg"),
			AssetsDir:  assetsDir,
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestEmbed_OutputDeclaration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(
		`<?xml version="1.0" encoding="utf-8"?><svg xmlns="http://www.w3.org/2000/svg"/>`))

	output := filepath.Join(dir, "out.svg")
	svc := New(WithLogOutput(new(bytes.Buffer)))
	if _, err := svc.Embed(context.Background(), Input{
		SourcePath: source,
		OutputPath: output,
		AssetsDir:  "assets",
	}); err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("output starts with %q, want XML declaration", string(data[:40]))
	}
	if strings.Count(string(data), "<?xml") != 1 {
		t.Error("output has a duplicated XML declaration")
	}
}

// Running the embedder on an already-embedded document is a no-op.
func TestEmbed_RerunReproducesDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	writeTestFile(t, filepath.Join(assetsDir, "logo.png"), []byte("0123456789"))
	writeTestFile(t, filepath.Join(assetsDir, "icon.svg"), []byte(
		`<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`))

	source := filepath.Join(dir, "in.svg")
	writeTestFile(t, source, []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+
			`<g><image xlink:href="%s"/></g><g><image x="5" y="10" xlink:href="%s"/></g></svg>`,
		filepath.Join(assetsDir, "logo.png"), filepath.Join(assetsDir, "icon.svg"))))

	first := filepath.Join(dir, "out1.svg")
	second := filepath.Join(dir, "out2.svg")
	svc := New(WithLogOutput(new(bytes.Buffer)))

	if _, err := svc.Embed(context.Background(), Input{
		SourcePath: source, OutputPath: first, AssetsDir: assetsDir,
	}); err != nil {
		t.Fatalf("first Embed() error = %v", err)
	}

	report, err := svc.Embed(context.Background(), Input{
		SourcePath: first, OutputPath: second, AssetsDir: assetsDir,
	})
	if err != nil {
		t.Fatalf("second Embed() error = %v", err)
	}
	if report.Found != 0 {
		t.Errorf("second run Found = %d, want 0", report.Found)
	}

	out1, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out1, out2) {
		t.Error("rerun did not reproduce the document")
	}
}

// The end-to-end scenario: one raster and one vector reference, relative
// hrefs as a real banner uses them. Uses t.Chdir, so no t.Parallel.
func TestEmbed_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	pngContent := []byte("0123456789") // 10 bytes
	writeTestFile(t, filepath.Join("assets", "logo.png"), pngContent)
	writeTestFile(t, filepath.Join("assets", "icon.svg"), []byte(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20"><path d="M0 0h20v20z"/></svg>`))

	writeTestFile(t, "new_readme.svg", []byte(
		`<?xml version="1.0" encoding="utf-8"?>`+
			`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="800" height="400">`+
			`<g><image x="0" y="0" xlink:href="./assets/logo.png"/></g>`+
			`<g><image x="5" y="10" width="20" height="20" xlink:href="./assets/icon.svg"/></g>`+
			`</svg>`))

	var log bytes.Buffer
	svc := New(WithLogOutput(&log))
	report, err := svc.Embed(context.Background(), Input{
		SourcePath: "new_readme.svg",
		OutputPath: "new_readme_embedded.svg",
		AssetsDir:  "assets",
	})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if report.Found != 2 || report.Embedded != 2 || report.Warnings != 0 {
		t.Fatalf("report = %+v, want Found=2 Embedded=2 Warnings=0", report)
	}

	doc := parseOutput(t, "new_readme_embedded.svg")

	img := doc.FindElement("//image")
	if img == nil {
		t.Fatal("raster image element missing from output")
	}
	wantURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngContent)
	if got := img.SelectAttrValue("xlink:href", ""); got != wantURI {
		t.Errorf("raster href = %q, want %q", got, wantURI)
	}

	var iconGroup *etree.Element
	for _, g := range doc.FindElements("//g") {
		if g.SelectAttrValue("transform", "") == "translate(5, 10)" {
			iconGroup = g
			break
		}
	}
	if iconGroup == nil {
		t.Fatal("no g element with transform translate(5, 10)")
	}
	inlined := iconGroup.SelectElement("svg")
	if inlined == nil {
		t.Fatal("icon group has no inlined svg child")
	}
	if inlined.SelectAttrValue("width", "") != "20" || inlined.SelectAttrValue("height", "") != "20" {
		t.Errorf("inlined dimensions = %q x %q, want 20 x 20",
			inlined.SelectAttrValue("width", ""), inlined.SelectAttrValue("height", ""))
	}
}
