package services

import (
	"go.uber.org/zap"

	apierrors "groq-scribe/internal/api/errors"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/app/clipboard"
	"groq-scribe/internal/app/session"
)

// ClipboardServiceImpl implements ClipboardService
type ClipboardServiceImpl struct {
	copier clipboard.Copier
	logger *zap.Logger
}

// NewClipboardService creates a new clipboard service
func NewClipboardService(copier clipboard.Copier, logger *zap.Logger) ClipboardService {
	return &ClipboardServiceImpl{
		copier: copier,
		logger: logger,
	}
}

// Copy writes the requested session slot to the host clipboard. A clipboard
// failure never touches transcript or translation state.
func (s *ClipboardServiceImpl) Copy(sess *session.Session, source string) (*dto.ClipboardResponse, error) {
	var text string
	switch source {
	case dto.ClipboardSourceTranscript:
		text = sess.Transcript()
	case dto.ClipboardSourceTranslation:
		text = sess.Translation()
	default:
		return nil, apierrors.NewBadRequestError("unknown clipboard source: " + source)
	}

	if err := s.copier.Copy(text); err != nil {
		s.logger.Warn("clipboard copy failed",
			zap.String("session_id", sess.ID),
			zap.String("source", source),
			zap.Error(err),
		)
		return nil, err
	}

	return &dto.ClipboardResponse{
		Copied: len(text),
		Source: source,
	}, nil
}
