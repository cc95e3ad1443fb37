package intake

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	apierrors "groq-scribe/internal/api/errors"
)

// AcceptedExtension is the only audio container the upload form accepts.
const AcceptedExtension = ".m4a"

// AudioBlob holds one uploaded file for the duration of a request cycle.
// The bytes are forwarded to the transcription API unchanged.
type AudioBlob struct {
	Filename string
	Size     int64
	Data     []byte
}

// FromMultipart validates and buffers a single uploaded file. Wrong extension
// and empty uploads are validation errors; exceeding maxBytes is a distinct
// payload_too_large error so the UI can tell the cases apart. Validation runs
// before the bytes are read, so an oversized file never reaches the network.
func FromMultipart(header *multipart.FileHeader, maxBytes int64) (*AudioBlob, error) {
	if header == nil || header.Size == 0 {
		return nil, apierrors.NewValidationError("no audio file uploaded", map[string]string{
			"file": "an M4A file is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != AcceptedExtension {
		return nil, apierrors.NewValidationError("unsupported file type", map[string]string{
			"file": fmt.Sprintf("expected %s, got %q", AcceptedExtension, ext),
		})
	}

	if header.Size > maxBytes {
		return nil, apierrors.NewPayloadTooLargeError(
			fmt.Sprintf("file is %d bytes, the limit is %d bytes", header.Size, maxBytes))
	}

	file, err := header.Open()
	if err != nil {
		return nil, apierrors.NewInternalError("failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, apierrors.NewInternalError("failed to read uploaded file")
	}
	// The declared size can lie; re-check what was actually read.
	if int64(len(data)) > maxBytes {
		return nil, apierrors.NewPayloadTooLargeError(
			fmt.Sprintf("file exceeds the %d byte limit", maxBytes))
	}
	if len(data) == 0 {
		return nil, apierrors.NewValidationError("no audio file uploaded", map[string]string{
			"file": "uploaded file is empty",
		})
	}

	return &AudioBlob{
		Filename: filepath.Base(header.Filename),
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}
