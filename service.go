package svgembed

import (
	"context"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// File permissions for written documents and assets: rw-r--r--.
const filePermissions = 0o644

// xmlDeclaration is written at the top of every output document.
const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Service orchestrates the asset-embedding transform.
type Service struct {
	cfg    serviceConfig
	raster rasterEncoder
}

// rasterEncoder turns an asset file into a data URI.
type rasterEncoder interface {
	DataURI(path string) (string, error)
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLogOutput).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    serviceConfig{logWriter: os.Stderr},
		raster: fileEncoder{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Embed reads the source SVG, resolves every qualifying image reference
// into inline content, and writes the result to the output path.
//
// Per-asset failures are soft: the offending reference is left untouched,
// a warning is logged, and the run continues. Only a missing or unparsable
// source document, a write failure, or context cancellation is fatal.
func (s *Service) Embed(ctx context.Context, input Input) (*Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(input.SourcePath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrReadSource, input.SourcePath)
		}
		return nil, fmt.Errorf("%w: %v", ErrParseSource, err)
	}

	report := &Report{}
	for _, img := range findImages(doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.processImage(img, input.AssetsDir, report)
	}

	if err := writeDocument(doc, input.OutputPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return report, nil
}

// logf writes one diagnostic line to the configured log writer.
func (s *Service) logf(format string, args ...any) {
	fmt.Fprintf(s.cfg.logWriter, format+"\n", args...)
}

// writeDocument serializes the tree with a fresh XML declaration.
func writeDocument(doc *etree.Document, path string) error {
	// A declaration parsed from the source would duplicate the one written
	// below, so drop it first.
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			doc.RemoveChild(pi)
			break
		}
	}

	body, err := doc.WriteToBytes()
	if err != nil {
		return err
	}

	return os.WriteFile(path, append([]byte(xmlDeclaration), body...), filePermissions)
}
