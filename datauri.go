package svgembed

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// fileEncoder is the default rasterEncoder, reading assets from disk.
type fileEncoder struct{}

// DataURI reads the file and encodes it as a data:<mime>;base64,<payload>
// string.
func (fileEncoder) DataURI(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path already passed the assets-dir containment check
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return "", fmt.Errorf("reading asset %s: %w", path, err)
	}

	mime, err := resolveMIME(path, data)
	if err != nil {
		return "", err
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// resolveMIME guesses the MIME type from the file extension, falling back
// to content sniffing for extensions the type registry does not know.
func resolveMIME(path string, data []byte) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if t := filetype.GetType(ext); t != filetype.Unknown {
		return t.MIME.Value, nil
	}

	if t, err := filetype.Match(data); err == nil && t != filetype.Unknown {
		return t.MIME.Value, nil
	}

	return "", fmt.Errorf("%w for %s", ErrUnknownMIME, path)
}
