package dto

// TranscriptionResponse is returned after a successful transcription call.
// Transcript is the speech API output verbatim.
type TranscriptionResponse struct {
	Transcript string `json:"transcript"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	Language   string `json:"language"`
	Model      string `json:"model"`
	DurationMs int64  `json:"duration_ms"`
	WordCount  int    `json:"word_count"`
}
