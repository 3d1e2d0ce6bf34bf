package core

import "errors"

// Refusal reasons surfaced to clients. The UI shows these verbatim, so they
// are part of the wire contract.
const (
	ReasonRoomNotFound = "room does not exist"
	ReasonRoomFull     = "room is full"
	ReasonRoomExists   = "room already exists"
)

var (
	ErrRoomNotFound = errors.New("room not found")
)
