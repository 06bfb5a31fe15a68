package svgembed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-svg-embed/internal/fileutil"
)

// Refresher re-downloads locally cached assets from the remote URLs
// recorded in the SVG source. Fetches run sequentially with a fixed delay
// between requests; each failure is logged and counted without aborting
// the batch.
type Refresher struct {
	client    *http.Client
	delay     time.Duration
	userAgent string
	logWriter io.Writer
}

// NewRefresher creates a Refresher with default configuration
// (15s per-request timeout, 1s inter-request delay, browser User-Agent).
func NewRefresher(opts ...RefresherOption) *Refresher {
	r := &Refresher{
		client:    &http.Client{Timeout: DefaultRefreshTimeout},
		delay:     DefaultRefreshDelay,
		userAgent: defaultUserAgent,
		logWriter: os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RefreshReport summarizes one refresh run.
type RefreshReport struct {
	Found   int // asset URL / local path pairs discovered
	Updated int // assets fetched and saved successfully
}

// assetRef pairs a remote URL with the local path it refreshes.
type assetRef struct {
	URL       string
	LocalPath string
}

// discoverAssets scans the raw SVG text for URL comments adjacent to
// assets-directory hrefs.
//
// The adjacency rule is provisional: a comment holding an http(s) URL
// (optionally wrapped in href="...") pairs with the next href attribute
// whose value starts with the assets directory. Matching is
// case-insensitive and spans lines.
func discoverAssets(content, assetsDir string) []assetRef {
	prefix := regexp.QuoteMeta(filepath.ToSlash(filepath.Clean(assetsDir)))
	pattern := regexp.MustCompile(
		`(?is)<!--\s*(?:href=")?(https?://.*?)"?\s*-->.*?href="((?:\./)?` + prefix + `/.*?)"`)

	var refs []assetRef
	for _, m := range pattern.FindAllStringSubmatch(content, -1) {
		refs = append(refs, assetRef{
			URL:       strings.TrimSpace(m[1]),
			LocalPath: m[2],
		})
	}
	return refs
}

// Refresh scans the source SVG for asset URLs and downloads each one to
// its local path, creating parent directories as needed. A missing source
// file is fatal; every per-asset failure is soft.
func (r *Refresher) Refresh(ctx context.Context, sourcePath, assetsDir string) (*RefreshReport, error) {
	data, err := os.ReadFile(sourcePath) // #nosec G304 -- source path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadSource, sourcePath)
	}

	refs := discoverAssets(string(data), assetsDir)
	report := &RefreshReport{Found: len(refs)}
	if len(refs) == 0 {
		r.logf("No asset URLs found in %s.", sourcePath)
		return report, nil
	}

	r.logf("Found %d assets to update.", len(refs))

	for i, ref := range refs {
		if i > 0 {
			if err := sleepCtx(ctx, r.delay); err != nil {
				return report, err
			}
		}

		localPath, ok := fileutil.ContainsPath(assetsDir, ref.LocalPath)
		if !ok {
			r.logf("  -> Skipping %s: path escapes the assets directory", ref.LocalPath)
			continue
		}

		if err := r.fetchAndSave(ctx, ref.URL, localPath); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			r.logf("  -> Error: %v", err)
			continue
		}
		report.Updated++
	}

	r.logf("Update complete. %d/%d assets updated successfully.", report.Updated, report.Found)
	return report, nil
}

// fetchAndSave performs one HTTP GET and writes the response body to the
// local path.
func (r *Refresher) fetchAndSave(ctx context.Context, url, localPath string) error {
	r.logf("Fetching: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s returned %s", ErrBadStatus, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if err := fileutil.EnsureParentDir(localPath); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveAsset, err)
	}
	if err := os.WriteFile(localPath, body, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveAsset, err)
	}

	r.logf("  -> Saved to: %s", localPath)
	return nil
}

// logf writes one diagnostic line to the configured log writer.
func (r *Refresher) logf(format string, args ...any) {
	fmt.Fprintf(r.logWriter, format+"\n", args...)
}

// sleepCtx pauses for d, returning early if the context is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
