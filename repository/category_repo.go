package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cvscanner/models"
)

// CategoryRepo persists the category set as a single JSON file,
// replaced wholesale on every save. The read/replace pair is not atomic
// against concurrent writers in other processes.
type CategoryRepo struct {
	Path string
}

func NewCategoryRepo(path string) *CategoryRepo {
	return &CategoryRepo{Path: path}
}

// Load reads the full category set. The caller sees os.ErrNotExist
// unchanged when the file was never created.
func (r *CategoryRepo) Load() (models.CategorySet, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, err
	}

	var categories models.CategorySet
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Save overwrites the backing file via a temp file in the same
// directory so readers never observe a partial write.
func (r *CategoryRepo) Save(categories models.CategorySet) error {
	data, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.Path)
	tmp, err := os.CreateTemp(dir, "categories-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.Path)
}
