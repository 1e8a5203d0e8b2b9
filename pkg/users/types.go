package users

import "encoding/json"

// User represents a single account entry from an installer profile. Password
// is carried as opaque plaintext; hashing and OS-level validation happen
// downstream. Records are values: any change produces a new record.
type User struct {
	Username string
	Password string
	Sudo     bool
}

// Serialized is the current on-disk shape of a user entry.
type Serialized struct {
	Username string `json:"username"`
	Password string `json:"!password"`
	Sudo     bool   `json:"sudo"`
}

// Serialize converts the user back into the current profile entry shape.
// Feeding the result through ParseUsers reproduces the record exactly.
func (u User) Serialize() Serialized {
	return Serialized{
		Username: u.Username,
		Password: u.Password,
		Sudo:     u.Sudo,
	}
}

// Source represents a source of raw user configuration sections. The returned
// messages keep the document's original encoding so that legacy-shape key
// order survives until parse time.
type Source interface {
	// Load returns the raw users and superusers sections of a profile
	Load() (users, superusers json.RawMessage, err error)
}
