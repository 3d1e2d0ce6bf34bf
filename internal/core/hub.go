package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type envelopeKind int

const (
	envRegister envelopeKind = iota
	envUnregister
	envCommand
)

// envelope funnels registrations and commands through one channel so a
// client's first command can never outrun its registration.
type envelope struct {
	kind   envelopeKind
	client *Client
	cmd    *Command
}

type roomQuery struct {
	id    string
	reply chan *RoomSnapshot
}

// RoomSnapshot is a read-only copy of one room's state for the REST surface.
type RoomSnapshot struct {
	ID         string
	Status     Status
	Players    []SeatInfo
	MaxPlayers int
}

// Hub owns the connection registry and the room table. All mutation happens
// on the Run goroutine; the rest of the process talks to it over channels,
// so per-room request order is arrival order and no locking is needed.
type Hub struct {
	log     zerolog.Logger
	roomTTL time.Duration

	inbox   chan envelope
	queries chan roomQuery
	done    chan struct{}

	clients map[*Client]struct{}
	rooms   map[string]*Room

	now func() time.Time
}

// NewHub constructs a hub. roomTTL of zero keeps rooms for the process
// lifetime; a positive value evicts rooms idle longer than the TTL.
func NewHub(logger *zerolog.Logger, roomTTL time.Duration) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		log:     logger.With().Str("component", "hub").Logger(),
		roomTTL: roomTTL,
		inbox:   make(chan envelope, 64),
		queries: make(chan roomQuery, 8),
		done:    make(chan struct{}),
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]*Room),
		now:     time.Now,
	}
}

// RegisterClient adds a connection to the registry and starts pumping its
// commands into the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.submit(envelope{kind: envRegister, client: c})
	go h.pump(c)
}

// UnregisterClient removes a connection from the registry. The caller must
// not send further commands on the client. Seats the client held stay in
// their rooms; only event delivery to them stops.
func (h *Hub) UnregisterClient(c *Client) {
	close(c.Commands)
	h.submit(envelope{kind: envUnregister, client: c})
}

func (h *Hub) pump(c *Client) {
	for cmd := range c.Commands {
		h.submit(envelope{kind: envCommand, client: c, cmd: cmd})
	}
}

// submit hands an envelope to the run loop, dropping it once the loop has
// exited so teardown never wedges a connection goroutine at shutdown.
func (h *Hub) submit(env envelope) {
	select {
	case h.inbox <- env:
	case <-h.done:
	}
}

// Run processes registrations, commands, snapshot queries, and TTL sweeps
// until the context is cancelled. It is the only goroutine that touches
// clients and rooms.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	var sweep <-chan time.Time
	if h.roomTTL > 0 {
		period := h.roomTTL / 2
		if period > time.Minute {
			period = time.Minute
		}
		if period < 10*time.Millisecond {
			period = 10 * time.Millisecond
		}
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		sweep = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case env := <-h.inbox:
			switch env.kind {
			case envRegister:
				h.clients[env.client] = struct{}{}
			case envUnregister:
				delete(h.clients, env.client)
			case envCommand:
				h.dispatch(env.client, env.cmd)
			}
		case q := <-h.queries:
			q.reply <- h.snapshot(q.id)
		case now := <-sweep:
			h.evictIdle(now)
		}
	}
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandCreateRoom:
		h.createRoom(c, cmd)
	case CommandJoinRoom:
		h.joinRoom(c, cmd)
	case CommandStartGame:
		h.startGame(c, cmd)
	}
}

func (h *Hub) createRoom(c *Client, cmd *Command) {
	if _, exists := h.rooms[cmd.Room]; exists {
		h.log.Warn().Str("room", cmd.Room).Str("player", cmd.PlayerID).Msg("room code collision")
		h.send(c, &Event{Kind: EventRoomCreated, Room: cmd.Room, Reason: ReasonRoomExists})
		return
	}

	room := NewRoom(cmd.Room, cmd.PlayerID, c, h.now())
	h.rooms[room.ID] = room

	h.send(c, &Event{Kind: EventRoomCreated, Room: room.ID, Success: true})
	h.log.Info().Str("room", room.ID).Str("owner", cmd.PlayerID).Msg("room created")
}

func (h *Hub) joinRoom(c *Client, cmd *Command) {
	room, ok := h.rooms[cmd.Room]
	if !ok {
		h.send(c, &Event{Kind: EventRoomJoined, Room: cmd.Room, Reason: ReasonRoomNotFound})
		return
	}
	if room.Full() {
		h.send(c, &Event{Kind: EventRoomJoined, Room: cmd.Room, Reason: ReasonRoomFull})
		return
	}

	room.AddSeat(cmd.PlayerID, c)
	room.LastActive = h.now()

	roster := room.Roster()
	h.send(c, &Event{Kind: EventRoomJoined, Room: room.ID, Success: true, Players: roster})
	h.broadcast(room, &Event{Kind: EventPlayerJoined, Room: room.ID, Players: roster})
	h.log.Info().Str("room", room.ID).Str("player", cmd.PlayerID).Msg("player joined")
}

func (h *Hub) startGame(c *Client, cmd *Command) {
	room, ok := h.rooms[cmd.Room]
	if !ok {
		h.log.Debug().Str("room", cmd.Room).Msg("start for unknown room ignored")
		return
	}
	// Only the owner seat of this room may start it. A connection seated
	// elsewhere under the same playerId has no authority here.
	seat := room.SeatFor(c)
	if seat == nil || !seat.IsOwner {
		h.log.Debug().Str("room", room.ID).Str("conn", c.ID).Msg("start by non-owner ignored")
		return
	}
	if room.Status != StatusWaiting {
		h.log.Debug().Str("room", room.ID).Msg("room already playing, start ignored")
		return
	}

	room.Status = StatusPlaying
	room.LastActive = h.now()
	h.broadcast(room, &Event{Kind: EventGameStarted, Room: room.ID})
	h.log.Info().Str("room", room.ID).Msg("game started")
}

// send delivers an event to one connection, dropping it when the connection
// has closed or its write queue is full. It never blocks the hub.
func (h *Hub) send(c *Client, ev *Event) {
	if _, open := h.clients[c]; !open {
		h.log.Debug().Str("conn", c.ID).Msg("drop event for closed connection")
		return
	}
	select {
	case c.Events <- ev:
	default:
		h.log.Warn().Str("conn", c.ID).Msg("drop event for slow consumer")
	}
}

// broadcast fans an event out to every seat in join order. Delivery is
// independent per recipient.
func (h *Hub) broadcast(room *Room, ev *Event) {
	for _, seat := range room.Seats {
		h.send(seat.Client, ev)
	}
}

func (h *Hub) snapshot(id string) *RoomSnapshot {
	room, ok := h.rooms[id]
	if !ok {
		return nil
	}
	return &RoomSnapshot{
		ID:         room.ID,
		Status:     room.Status,
		Players:    room.Roster(),
		MaxPlayers: MaxPlayers,
	}
}

func (h *Hub) evictIdle(now time.Time) {
	for id, room := range h.rooms {
		if now.Sub(room.LastActive) > h.roomTTL {
			delete(h.rooms, id)
			h.log.Info().Str("room", id).Time("last_active", room.LastActive).Msg("idle room evicted")
		}
	}
}

// RoomSnapshot returns a copy of the room's state, answered by the hub
// goroutine. Returns ErrRoomNotFound for unknown codes.
func (h *Hub) RoomSnapshot(ctx context.Context, id string) (*RoomSnapshot, error) {
	q := roomQuery{id: id, reply: make(chan *RoomSnapshot, 1)}
	select {
	case h.queries <- q:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case snap := <-q.reply:
		if snap == nil {
			return nil, ErrRoomNotFound
		}
		return snap, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
