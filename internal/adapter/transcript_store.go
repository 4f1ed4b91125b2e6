// Package adapter provides filesystem access for recorded transcripts.
package adapter

import (
	"fmt"
	"log/slog"
	"os"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// TranscriptStore persists recorded transcripts for later comparison.
type TranscriptStore interface {
	Save(path m.Path, text string) error
	Load(path m.Path) (string, error)
}

type localTranscriptStore struct{}

// NewTranscriptStore creates a TranscriptStore backed by the local filesystem.
func NewTranscriptStore() TranscriptStore {
	return &localTranscriptStore{}
}

func (s *localTranscriptStore) Save(path m.Path, text string) error {
	if err := os.WriteFile(string(path), []byte(text), 0o644); err != nil {
		slog.Error("failed to save transcript", "path", path, "error", err)
		return fmt.Errorf("failed to save transcript to %s: %w", path, err)
	}

	slog.Debug("saved transcript", "path", path, "bytes", len(text))

	return nil
}

func (s *localTranscriptStore) Load(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to load transcript from %s: %w", path, err)
	}

	return string(data), nil
}
