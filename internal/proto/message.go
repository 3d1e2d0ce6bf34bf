package proto

// Inbound is the flat envelope for messages coming from the client. The
// type field discriminates; unused fields stay empty.
type Inbound struct {
	Type     string `json:"type"`
	RoomID   string `json:"roomId,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
}

const (
	InboundTypeCreateRoom = "create_room"
	InboundTypeJoinRoom   = "join_room"
	InboundTypeStartGame  = "start_game"

	OutboundTypeRoomCreated  = "room_created"
	OutboundTypeRoomJoined   = "room_joined"
	OutboundTypePlayerJoined = "player_joined"
	OutboundTypeGameStarted  = "game_started"
)

// PlayerInfo is one entry of a room's player list.
type PlayerInfo struct {
	ID      string `json:"id"`
	IsOwner bool   `json:"isOwner"`
}

// RoomCreated answers a create_room request. Success is false on a room
// code collision, with Reason set.
type RoomCreated struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	RoomID  string `json:"roomId,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// RoomJoined answers a join_room request. Players is present only on
// success, Reason only on refusal.
type RoomJoined struct {
	Type    string       `json:"type"`
	Success bool         `json:"success"`
	RoomID  string       `json:"roomId,omitempty"`
	Players []PlayerInfo `json:"players,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

// PlayerJoined is broadcast to every room member after a join.
type PlayerJoined struct {
	Type    string       `json:"type"`
	RoomID  string       `json:"roomId"`
	Players []PlayerInfo `json:"players"`
}

// GameStarted is broadcast to every room member when the owner starts.
type GameStarted struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}
