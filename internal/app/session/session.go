// Package session holds the per-session interaction state: the current audio
// blob, the single Transcript and Translation slots, and the debug record.
// At most one transcript and one translation are live at a time; each slot is
// overwritten by the next successful call and never by a failed one.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"groq-scribe/internal/app/intake"
	"groq-scribe/internal/app/language"
)

// Session is the state for one browser session. All mutation goes through
// methods so handlers and services never race on the slots.
type Session struct {
	ID string

	mu             sync.RWMutex
	audio          *intake.AudioBlob
	sourceLanguage language.Language
	transcript     string
	translation    string
	debug          map[string]any

	transcribeGate Gate
	translateGate  Gate
}

// State is a read-only snapshot of a session, safe to render or serialize.
type State struct {
	ID             string            `json:"id"`
	FileName       string            `json:"file_name,omitempty"`
	FileSize       int64             `json:"file_size,omitempty"`
	SourceLanguage language.Language `json:"source_language,omitempty"`
	Transcript     string            `json:"transcript"`
	Translation    string            `json:"translation"`
	Transcribing   bool              `json:"transcribing"`
	Translating    bool              `json:"translating"`
	Debug          map[string]any    `json:"debug"`
}

func newSession(id string) *Session {
	return &Session{
		ID:             id,
		sourceLanguage: language.English,
		debug:          map[string]any{},
	}
}

// SetAudio replaces the current upload; the previous blob is discarded.
func (s *Session) SetAudio(blob *intake.AudioBlob, source language.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audio = blob
	s.sourceLanguage = source
}

// SetTranscript overwrites the single transcript slot.
func (s *Session) SetTranscript(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = text
}

// SetTranslation overwrites the single translation slot.
func (s *Session) SetTranslation(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translation = text
}

// Transcript returns the current transcript.
func (s *Session) Transcript() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transcript
}

// Translation returns the current translation.
func (s *Session) Translation() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.translation
}

// SourceLanguage returns the declared spoken language of the current upload.
func (s *Session) SourceLanguage() language.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourceLanguage
}

// RecordDebug merges a diagnostic snapshot into the debug record and stamps it.
func (s *Session) RecordDebug(fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range fields {
		s.debug[k] = v
	}
	s.debug["updated_at"] = time.Now().Format(time.RFC3339)
}

// TranscribeGate returns the single-flight gate for transcription calls.
func (s *Session) TranscribeGate() *Gate {
	return &s.transcribeGate
}

// TranslateGate returns the single-flight gate for translation calls. It is
// independent of the transcribe gate: a translation does not block a
// transcription, they write to different slots.
func (s *Session) TranslateGate() *Gate {
	return &s.translateGate
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	debug := make(map[string]any, len(s.debug))
	for k, v := range s.debug {
		debug[k] = v
	}

	state := State{
		ID:             s.ID,
		SourceLanguage: s.sourceLanguage,
		Transcript:     s.transcript,
		Translation:    s.translation,
		Transcribing:   s.transcribeGate.Busy(),
		Translating:    s.translateGate.Busy(),
		Debug:          debug,
	}
	if s.audio != nil {
		state.FileName = s.audio.Filename
		state.FileSize = s.audio.Size
	}
	return state
}

// Store keeps sessions in memory, keyed by the uuid carried in a cookie.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	return sess, ok
}

// Create makes a new session with a fresh id.
func (st *Store) Create() *Session {
	sess := newSession(uuid.New().String())
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[sess.ID] = sess
	return sess
}

// GetOrCreate returns the session for id, creating one when the id is unknown
// or empty (e.g. an expired or forged cookie).
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, ok := st.Get(id); ok {
			return sess
		}
	}
	return st.Create()
}
