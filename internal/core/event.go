package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomCreated answers a create request (success or collision).
	EventRoomCreated EventKind = iota
	// EventRoomJoined answers a join request (success or refusal).
	EventRoomJoined
	// EventPlayerJoined notifies a whole room about its new member.
	EventPlayerJoined
	// EventGameStarted notifies a whole room that the owner started the game.
	EventGameStarted
)

// Event is sent to clients to describe what happened in the system.
// Players carries the room roster in seat order for join notifications.
type Event struct {
	Kind    EventKind
	Room    string
	Success bool
	Reason  string
	Players []SeatInfo
}

// SeatInfo is the externally visible slice of a seat.
type SeatInfo struct {
	PlayerID string
	IsOwner  bool
}
