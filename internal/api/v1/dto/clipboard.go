package dto

// Clipboard copy sources.
const (
	ClipboardSourceTranscript  = "transcript"
	ClipboardSourceTranslation = "translation"
)

// ClipboardRequest asks for one of the session's text slots to be copied to
// the host clipboard.
type ClipboardRequest struct {
	Source string `json:"source" binding:"required,oneof=transcript translation"`
}

// ClipboardResponse acknowledges a successful copy.
type ClipboardResponse struct {
	Copied int    `json:"copied"`
	Source string `json:"source"`
}
