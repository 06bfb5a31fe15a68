// Package svgembed turns an SVG banner with external image references
// into a self-contained document.
//
// # Quick Start
//
// Create a service and embed:
//
//	svc := svgembed.New()
//	report, err := svc.Embed(ctx, svgembed.Input{
//	    SourcePath: "new_readme.svg",
//	    OutputPath: "new_readme_embedded.svg",
//	    AssetsDir:  "assets",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("embedded %d of %d assets\n", report.Embedded, report.Found)
//
// # Embedding Rules
//
// Every <image> element whose href points under the assets directory is
// resolved into inline content:
//
//   - Raster assets (.png, .gif) are Base64-encoded and written back into
//     the href attribute as a data:<mime>;base64,<payload> URI.
//   - Vector assets (.svg) are inlined structurally: the <image> element is
//     removed, the asset's root element is appended to the enclosing <g>,
//     and the <g> gets a translate(x, y) transform preserving the image's
//     position. Namespace prefixes are stripped from the inlined markup.
//
// References outside the assets directory are left untouched. A broken or
// unreadable asset is a per-asset soft failure: it is logged and the
// original reference survives, so the output stays well-formed.
//
// # Refreshing Assets
//
// The companion Refresher re-downloads locally cached assets from the
// remote URLs recorded as comments next to each href in the SVG source:
//
//	ref := svgembed.NewRefresher(svgembed.WithRefreshTimeout(30 * time.Second))
//	report, err := ref.Refresh(ctx, "new_readme.svg", "assets")
//
// Fetches run sequentially with a fixed delay between requests; each
// failure is logged and counted without aborting the batch.
//
// # Configuration
//
// Use functional options to customize behavior:
//
//	svc := svgembed.New(svgembed.WithLogOutput(io.Discard))
//
// The svg-embed CLI under cmd/svg-embed adds YAML configuration and flag
// handling on top of this package.
package svgembed
