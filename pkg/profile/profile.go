// Package profile turns raw credential documents into normalized user lists
// and persists them back in the current configuration format.
package profile

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/installkit/userprep/pkg/logging"
	"github.com/installkit/userprep/pkg/users"
)

// Normalize loads a profile through source and returns its canonical user
// records: current or legacy users section first, superuser record appended.
func Normalize(source users.Source) ([]users.User, error) {
	usersRaw, superusersRaw, err := source.Load()
	if err != nil {
		return nil, err
	}
	return users.ParseUsers(usersRaw, superusersRaw)
}

// outputDocument is the normalized on-disk profile layout. Only the current
// shape is ever written; the legacy shape exists for reading alone.
type outputDocument struct {
	Users []users.Serialized `json:"!users"`
}

// Writer persists normalized user lists to a filesystem.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a Writer on fs
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write serializes the user list into the current profile format at path.
// The write is atomic: content goes to a temp file first and is renamed into
// place so readers never observe a partial document.
func (w *Writer) Write(path string, list []users.User) error {
	doc := outputDocument{Users: make([]users.Serialized, 0, len(list))}
	for _, u := range list {
		doc.Users = append(doc.Users, u.Serialize())
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	data = append(data, '\n')

	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}

	if err := w.atomicWrite(path, data); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	logging.App.Info("Wrote normalized profile", "path", path, "users", len(list))
	return nil
}

func (w *Writer) atomicWrite(path string, content []byte) error {
	tmpPath := path + ".tmp"

	if err := afero.WriteFile(w.fs, tmpPath, content, 0644); err != nil {
		return err
	}

	if err := w.fs.Rename(tmpPath, path); err != nil {
		w.fs.Remove(tmpPath)
		return err
	}

	return nil
}
