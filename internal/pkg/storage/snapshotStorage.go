package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/saeed-Underline/fidibo/internal/entity"
)

// SnapshotStorage persists the ranked show snapshot of a run. Each run
// overwrites the previous file; there is no history.
type SnapshotStorage interface {
	Save(name string, shows []*entity.Show) error
	Load(name string) ([]*entity.Show, error)
	Exists(name string) bool
}

type snapshotStorage struct {
	basePath string
}

func NewSnapshotStorage(basePath string) SnapshotStorage {
	return &snapshotStorage{basePath: basePath}
}

func (s *snapshotStorage) Save(name string, shows []*entity.Show) error {
	fullPath := filepath.Join(s.basePath, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(shows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func (s *snapshotStorage) Load(name string) ([]*entity.Show, error) {
	data, err := os.ReadFile(filepath.Join(s.basePath, name))
	if err != nil {
		return nil, err
	}

	var shows []*entity.Show
	if err := json.Unmarshal(data, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

func (s *snapshotStorage) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.basePath, name))
	return !os.IsNotExist(err)
}
