package users

import (
	"encoding/json"
	"testing"
)

func TestMemorySource(t *testing.T) {
	source := NewMemorySource()

	usersRaw, superusersRaw, err := source.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if usersRaw != nil || superusersRaw != nil {
		t.Error("expected empty sections from fresh source")
	}

	source.SetUsers(json.RawMessage(`[{"username": "ada", "!password": "x"}]`))
	source.SetSuperusers(json.RawMessage(`{"root": {"!password": "pw"}}`))

	usersRaw, superusersRaw, err = source.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	parsed, err := ParseUsers(usersRaw, superusersRaw)
	if err != nil {
		t.Fatalf("ParseUsers failed: %v", err)
	}
	if len(parsed) != 2 {
		t.Errorf("expected 2 users, got %+v", parsed)
	}
}
