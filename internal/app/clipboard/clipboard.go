// Package clipboard bridges transcript and translation text to the host OS
// clipboard. A headless or remote host may have no clipboard at all; that
// failure is isolated and never touches transcript or translation state.
package clipboard

import (
	"github.com/atotto/clipboard"

	apierrors "groq-scribe/internal/api/errors"
)

// Copier writes a string to a clipboard. The interface exists so tests can
// substitute a fake for the host clipboard.
type Copier interface {
	Copy(text string) error
}

// SystemCopier writes to the host OS clipboard.
type SystemCopier struct{}

// NewSystemCopier creates a Copier backed by the host clipboard.
func NewSystemCopier() *SystemCopier {
	return &SystemCopier{}
}

// Copy writes text to the host clipboard. Copying an empty string is a
// validation error, never a silent success.
func (c *SystemCopier) Copy(text string) error {
	if text == "" {
		return apierrors.NewValidationError("nothing to copy", map[string]string{
			"text": "is empty",
		})
	}
	if clipboard.Unsupported {
		return apierrors.NewClipboardError("no clipboard available on this host")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return apierrors.NewClipboardError("failed to write to clipboard: " + err.Error())
	}
	return nil
}
