package startxml

import (
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/mkessler/startlayout/pkg/errors"
	"github.com/mkessler/startlayout/pkg/layout"
)

// WriteFile serializes the layout and overwrites path in a single pass.
//
// The document is written in Windows-1252, the single-byte encoding the
// legacy policy tooling reads. Runes outside the codepage are replaced
// rather than failing the whole run. There is no rollback: a failed write
// can leave a stale or truncated file behind.
func WriteFile(path string, l *layout.Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}

	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	w := transform.NewWriter(f, enc)

	if err := Write(w, l); err != nil {
		_ = w.Close()
		_ = f.Close()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write layout to %s", path)
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "encode layout to %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}
