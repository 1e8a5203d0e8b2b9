package users

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/installkit/userprep/pkg/logging"
)

// shape discriminates the two accepted encodings of a user configuration
// section. Detection happens once at the boundary; parsing branches once.
type shape int

const (
	shapeAbsent shape = iota // nil, empty, or JSON null
	shapeList                // current shape: array of entries
	shapeMap                 // legacy shape: map keyed by username
)

// entry mirrors a current-shape profile entry during decoding. Username is a
// pointer so an absent or null username can be told apart from an empty one.
type entry struct {
	Username *string `json:"username"`
	Password string  `json:"!password"`
	Sudo     bool    `json:"sudo"`
}

// ParseUsers normalizes the raw "!users" and "!superusers" sections of a
// profile into an ordered list of user records.
//
// The users section accepts either the current shape (an array of entries,
// each with optional username, !password and sudo fields) or the legacy shape
// (a map from username to credentials, of which only the first key counts).
// The superusers section only ever has the legacy shape; a record extracted
// from it always has Sudo set. Records from the users section come first,
// the superuser record is appended after.
func ParseUsers(usersRaw, superusersRaw json.RawMessage) ([]User, error) {
	var out []User

	usersShape, err := detectShape(usersRaw)
	if err != nil {
		return nil, fmt.Errorf("users section: %w", err)
	}
	switch usersShape {
	case shapeList:
		parsed, err := parseCurrent(usersRaw)
		if err != nil {
			return nil, fmt.Errorf("users section: %w", err)
		}
		out = append(out, parsed...)
	case shapeMap:
		// backwards compatibility with the old single-user map format
		parsed, err := parseLegacy(usersRaw, false)
		if err != nil {
			return nil, fmt.Errorf("users section: %w", err)
		}
		out = append(out, parsed...)
	}

	superShape, err := detectShape(superusersRaw)
	if err != nil {
		return nil, fmt.Errorf("superusers section: %w", err)
	}
	if superShape == shapeMap {
		// backwards compatibility; superusers never had a current shape
		parsed, err := parseLegacy(superusersRaw, true)
		if err != nil {
			return nil, fmt.Errorf("superusers section: %w", err)
		}
		out = append(out, parsed...)
	}

	return out, nil
}

// detectShape inspects the first significant byte of a raw section.
func detectShape(raw json.RawMessage) (shape, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return shapeAbsent, nil
	}
	switch trimmed[0] {
	case '[':
		return shapeList, nil
	case '{':
		return shapeMap, nil
	}
	return 0, fmt.Errorf("%w: expected array or object, got %q", ErrInvalidShape, trimmed[0])
}

// parseCurrent decodes a current-shape entry list. Entries without a username
// are dropped silently; missing passwords default to empty and missing sudo
// flags to false.
func parseCurrent(raw json.RawMessage) ([]User, error) {
	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	var out []User
	for i, e := range entries {
		if e.Username == nil {
			logging.App.Debug("Skipping user entry without username", "index", i)
			continue
		}
		out = append(out, User{
			Username: *e.Username,
			Password: e.Password,
			Sudo:     e.Sudo,
		})
	}
	return out, nil
}

// parseLegacy extracts at most one record from a legacy-shape map. Only the
// first key in document order is consulted; Go maps do not preserve that
// order, so the section is walked with a token decoder instead. An empty or
// missing password suppresses the record.
func parseLegacy(raw json.RawMessage, sudo bool) ([]User, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected object", ErrInvalidShape)
	}

	if !dec.More() {
		// empty map, nothing to extract
		return nil, nil
	}

	tok, err = dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	username, ok := tok.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected username key", ErrInvalidShape)
	}

	var creds struct {
		Password string `json:"!password"`
	}
	if err := dec.Decode(&creds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	if creds.Password == "" {
		logging.App.Debug("Skipping legacy user with empty password", "username", username)
		return nil, nil
	}

	return []User{{
		Username: username,
		Password: creds.Password,
		Sudo:     sudo,
	}}, nil
}
