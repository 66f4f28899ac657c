package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sokoban/internal/domain"
)

// ErrNotFound is returned by Load when no record has the key.
var ErrNotFound = errors.New("record not found")

// FS stores one JSON file per record under a folder per difficulty band.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var bands = []string{"easy", "medium", "hard", "expert"}

func bandDir(d domain.Difficulty) string {
	switch {
	case d <= 3:
		return "easy"
	case d <= 6:
		return "medium"
	case d <= 8:
		return "hard"
	default:
		return "expert"
	}
}

func (s *FS) pathFor(key string, d domain.Difficulty) string {
	return filepath.Join(s.dir, bandDir(d), strings.TrimSpace(key)+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.Record) error {
	if r == nil || r.Key == "" {
		return errors.New("invalid record: missing key")
	}
	target := s.pathFor(r.Key, r.Layout.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, key string) (*domain.Record, error) {
	for _, b := range bands {
		data, err := os.ReadFile(filepath.Join(s.dir, b, key+".json"))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var out domain.Record
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		return &out, nil
	}
	return nil, ErrNotFound
}

func (s *FS) List(ctx context.Context) ([]domain.RecordMeta, error) {
	var out []domain.RecordMeta
	for _, b := range bands {
		ents, err := os.ReadDir(filepath.Join(s.dir, b))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, b, e.Name()))
			if err != nil {
				continue
			}
			var r domain.Record
			if err := json.Unmarshal(data, &r); err != nil || r.Key == "" {
				continue
			}
			out = append(out, r.Meta())
		}
	}
	return out, nil
}
