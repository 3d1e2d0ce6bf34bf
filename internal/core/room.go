package core

import "time"

// Status is a room's lifecycle phase.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
)

// MaxPlayers is the seat capacity of a room.
const MaxPlayers = 2

// palette is the fixed color set handed to seats in join order. The owner
// always gets the first entry. Colors are never reassigned or released.
var palette = []string{"red", "blue"}

// Seat binds a player identity to its connection within one room.
type Seat struct {
	PlayerID string
	Client   *Client
	IsOwner  bool
	Color    string
}

// Room is one matchmaking session keyed by its 6-character code. OwnerID is
// the creator's playerId and is the sole start-game authority for the room's
// whole lifetime.
type Room struct {
	ID         string
	Seats      []*Seat
	Status     Status
	OwnerID    string
	LastActive time.Time
}

// NewRoom constructs a waiting room with the creator seated as owner.
func NewRoom(id, ownerID string, owner *Client, now time.Time) *Room {
	return &Room{
		ID:     id,
		Status: StatusWaiting,
		Seats: []*Seat{{
			PlayerID: ownerID,
			Client:   owner,
			IsOwner:  true,
			Color:    palette[0],
		}},
		OwnerID:    ownerID,
		LastActive: now,
	}
}

// Full reports whether the room has no free seats.
func (r *Room) Full() bool {
	return len(r.Seats) >= MaxPlayers
}

// AddSeat appends a non-owner seat with the next palette color.
// The caller must have checked Full first.
func (r *Room) AddSeat(playerID string, c *Client) *Seat {
	seat := &Seat{
		PlayerID: playerID,
		Client:   c,
		IsOwner:  false,
		Color:    palette[len(r.Seats)%len(palette)],
	}
	r.Seats = append(r.Seats, seat)
	return seat
}

// SeatFor returns the seat held by the given connection, or nil when the
// connection has no seat in this room.
func (r *Room) SeatFor(c *Client) *Seat {
	for _, s := range r.Seats {
		if s.Client == c {
			return s
		}
	}
	return nil
}

// Roster returns the player list in seat order.
func (r *Room) Roster() []SeatInfo {
	infos := make([]SeatInfo, 0, len(r.Seats))
	for _, s := range r.Seats {
		infos = append(infos, SeatInfo{PlayerID: s.PlayerID, IsOwner: s.IsOwner})
	}
	return infos
}
