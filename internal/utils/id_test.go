package utils

import "testing"

func TestNewConnIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := NewConnID()
		if id == "" {
			t.Fatal("empty connection id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate connection id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestValidRoomCode(t *testing.T) {
	valid := []string{"ABC123", "abcdef", "000000", "Zz9Aa0"}
	for _, code := range valid {
		if !ValidRoomCode(code) {
			t.Errorf("%q should be valid", code)
		}
	}

	invalid := []string{"", "ABC12", "ABC1234", "ABC12!", "ABC 12", "ABC12é"}
	for _, code := range invalid {
		if ValidRoomCode(code) {
			t.Errorf("%q should be invalid", code)
		}
	}
}
