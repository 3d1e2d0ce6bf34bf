package utils

import "github.com/google/uuid"

// NewConnID returns a unique identifier for one connection's lifetime.
func NewConnID() string {
	return uuid.NewString()
}

// ValidRoomCode reports whether s is a well-formed 6-character room code
// (letters and digits, the space the client generates codes from).
func ValidRoomCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
