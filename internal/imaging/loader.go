package imaging

import (
	"context"
	"image"
	"os"
	"path/filepath"

	// Decoder registration is all these imports do.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// Loader reads and decodes gallery images. Relative sources are
// resolved against the gallery document's directory so a gallery can
// be opened from anywhere.
type Loader struct {
	root string
}

// NewLoader creates a loader that resolves relative sources against root.
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Resolve returns the absolute path a source refers to.
func (l *Loader) Resolve(source string) string {
	if filepath.IsAbs(source) || l.root == "" {
		return source
	}
	return filepath.Join(l.root, source)
}

// Load decodes the image the source refers to, fully, before
// returning. Callers run it off the event loop; the decoded image is
// only committed to the display by whoever receives the result.
func (l *Loader) Load(ctx context.Context, source string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(l.Resolve(source))
	if err != nil {
		return nil, vitrineerrors.NewLoadError(source, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, vitrineerrors.NewLoadError(source, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}
