package repo

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"inventory-api/internal/domain"
)

// ItemFileRepo keeps the whole item collection in one JSON file.
//
// Every call goes back to disk, so lookups are O(n) and two processes doing
// load-mutate-save at the same time can lose an update. Both are accepted for
// a single-admin store.
type ItemFileRepo struct {
	path string
	log  *zap.Logger
}

var _ domain.ItemRepository = (*ItemFileRepo)(nil)

func NewItemFileRepo(path string, l *zap.Logger) *ItemFileRepo {
	if l == nil {
		l = zap.NewNop()
	}
	return &ItemFileRepo{path: path, log: l}
}

func (r *ItemFileRepo) Path() string { return r.path }

// LoadAll never fails: a missing file is an empty store, and unreadable or
// malformed content is logged and treated as empty.
func (r *ItemFileRepo) LoadAll() []domain.Item {
	items := []domain.Item{}
	if err := r.ensureDir(); err != nil {
		r.log.Error("create data dir", zap.String("path", r.path), zap.Error(err))
		return items
	}
	b, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return items
	}
	if err != nil {
		r.log.Error("read items", zap.String("path", r.path), zap.Error(err))
		return items
	}
	if err := json.Unmarshal(b, &items); err != nil {
		r.log.Error("parse items", zap.String("path", r.path), zap.Error(err))
		return []domain.Item{}
	}
	if items == nil {
		// file contained "null"
		items = []domain.Item{}
	}
	return items
}

// SaveAll replaces the file through a temp file and rename, so readers see
// either the old or the new collection.
func (r *ItemFileRepo) SaveAll(items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	if err := r.ensureDir(); err != nil {
		return domain.NewStorageError(err, "create data dir")
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return domain.NewStorageError(err, "encode items")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return domain.NewStorageError(err, "create temp file")
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		cleanup()
		return domain.NewStorageError(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return domain.NewStorageError(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return domain.NewStorageError(err, "close temp file")
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return domain.NewStorageError(err, "replace items file")
	}
	r.log.Debug("items saved", zap.String("path", r.path), zap.Int("count", len(items)))
	return nil
}

func (r *ItemFileRepo) FindByID(id string) *domain.Item {
	for _, it := range r.LoadAll() {
		if it.ID == id {
			return &it
		}
	}
	return nil
}

func (r *ItemFileRepo) FindByCode(code string) *domain.Item {
	for _, it := range r.LoadAll() {
		if it.Code == code {
			return &it
		}
	}
	return nil
}

func (r *ItemFileRepo) ensureDir() error {
	return os.MkdirAll(filepath.Dir(r.path), 0o755)
}
