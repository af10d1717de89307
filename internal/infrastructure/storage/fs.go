package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"svw.info/reversemath/internal/ports"
)

// ScoreFile is the file name the FS store keeps the score in.
const ScoreFile = "score.json"

// FS keeps the score as a small JSON document under dir.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var _ ports.ScoreStore = (*FS)(nil)

type scoreDoc struct {
	Score     int   `json:"score"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

func (s *FS) path() string { return filepath.Join(s.dir, ScoreFile) }

func (s *FS) Load(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var doc scoreDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.path(), err)
	}
	return doc.Score, nil
}

func (s *FS) Add(ctx context.Context, points int) (int, error) {
	cur, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	total := cur + points
	if err := s.write(scoreDoc{Score: total, UpdatedAt: time.Now().UnixNano()}); err != nil {
		return cur, err
	}
	return total, nil
}

func (s *FS) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.write(scoreDoc{UpdatedAt: time.Now().UnixNano()})
}

// write replaces the file atomically so a crash never leaves half a document.
func (s *FS) write(doc scoreDoc) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ScoreFile+".*")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path())
}
