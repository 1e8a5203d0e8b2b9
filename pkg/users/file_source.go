package users

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/installkit/userprep/pkg/logging"
)

const (
	// UsersKey is the profile document key holding the users section
	UsersKey = "!users"
	// SuperusersKey is the profile document key holding the superusers section
	SuperusersKey = "!superusers"
)

// FileSource implements Source using a credentials profile on a filesystem.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a new FileSource reading from path on fs.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{
		fs:   fs,
		path: path,
	}
}

// document is the top-level profile file layout. The sections stay raw so the
// parser can discriminate their shape itself.
type document struct {
	Users      json.RawMessage `json:"!users"`
	Superusers json.RawMessage `json:"!superusers"`
}

// Load implements Source
func (s *FileSource) Load() (json.RawMessage, json.RawMessage, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.App.Debug("Profile file not found", "path", s.path)
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, fmt.Errorf("reading profile: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.App.Debug("Error parsing profile file", "path", s.path, "error", err)
		return nil, nil, fmt.Errorf("parsing profile: %w", err)
	}

	logging.App.Debug("Loaded profile", "path", s.path)
	return doc.Users, doc.Superusers, nil
}
