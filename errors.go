package svgembed

import "errors"

// Sentinel errors for library operations.
var (
	// Input validation errors.
	ErrNoSource    = errors.New("source path cannot be empty")
	ErrNoOutput    = errors.New("output path cannot be empty")
	ErrNoAssetsDir = errors.New("assets directory cannot be empty")

	// Fatal embedder errors; these abort the whole run.
	ErrReadSource  = errors.New("failed to read source SVG")
	ErrParseSource = errors.New("failed to parse source SVG")
	ErrWriteOutput = errors.New("failed to write output SVG")

	// Per-asset soft failures; surfaced as warnings, never fatal.
	ErrAssetNotFound = errors.New("asset file not found")
	ErrUnknownMIME   = errors.New("could not determine MIME type")
	ErrParseAsset    = errors.New("failed to parse asset SVG")
	ErrNotInGroup    = errors.New("image element is not inside a <g> container")

	// Refresher errors.
	ErrFetchFailed     = errors.New("fetch failed")
	ErrBadStatus       = errors.New("unexpected HTTP status")
	ErrSaveAsset       = errors.New("failed to save asset")
	ErrNoAssetsUpdated = errors.New("no assets could be updated")
)
