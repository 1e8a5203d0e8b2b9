package profile

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/installkit/userprep/pkg/users"
)

func TestNormalize(t *testing.T) {
	source := users.NewMemorySource()
	source.SetUsers(json.RawMessage(`[{"username": "ada", "!password": "x"}]`))
	source.SetSuperusers(json.RawMessage(`{"root": {"!password": "pw"}}`))

	list, err := Normalize(source)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, users.User{Username: "ada", Password: "x"}, list[0])
	assert.Equal(t, users.User{Username: "root", Password: "pw", Sudo: true}, list[1])
}

func TestNormalize_SourceError(t *testing.T) {
	source := users.NewFileSource(afero.NewMemMapFs(), "/missing.json")
	_, err := Normalize(source)
	assert.ErrorIs(t, err, users.ErrProfileNotFound)
}

func TestWriter_Write(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewWriter(fs)

	list := []users.User{
		{Username: "ada", Password: "x", Sudo: true},
		{Username: "bob", Password: "y"},
	}
	require.NoError(t, writer.Write("/etc/installer/normalized.json", list))

	data, err := afero.ReadFile(fs, "/etc/installer/normalized.json")
	require.NoError(t, err)

	// no temp file left behind
	exists, err := afero.Exists(fs, "/etc/installer/normalized.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)

	var doc struct {
		Users json.RawMessage `json:"!users"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	parsed, err := users.ParseUsers(doc.Users, nil)
	require.NoError(t, err)
	assert.Equal(t, list, parsed)
}

func TestWriter_WriteEmptyList(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewWriter(fs)

	require.NoError(t, writer.Write("/normalized.json", nil))

	data, err := afero.ReadFile(fs, "/normalized.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"!users": []}`, string(data))
}

func TestWriteNormalizeRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewWriter(fs)

	list := []users.User{
		{Username: "ada", Password: "x", Sudo: true},
		{Username: "admin", Password: "pw", Sudo: true},
	}
	require.NoError(t, writer.Write("/profile.json", list))

	got, err := Normalize(users.NewFileSource(fs, "/profile.json"))
	require.NoError(t, err)
	assert.Equal(t, list, got)
}
