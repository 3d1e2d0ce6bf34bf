package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandCreateRoom opens a new room with the sender as owner.
	CommandCreateRoom CommandKind = iota
	// CommandJoinRoom seats the sender in an existing room.
	CommandJoinRoom
	// CommandStartGame flips the sender's room from waiting to playing.
	CommandStartGame
)

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Room     string
	PlayerID string
}
