package http

import (
	"errors"
	"fmt"

	"github.com/flychess/flychess-server/internal/core"
	"github.com/flychess/flychess-server/internal/proto"
	"github.com/flychess/flychess-server/internal/utils"
)

// inboundToCommand validates a wire message and maps it to a core command.
// A non-nil error means the message is dropped (logged by the caller).
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		if !utils.ValidRoomCode(inbound.RoomID) {
			return nil, fmt.Errorf("create_room: bad room code %q", inbound.RoomID)
		}
		if inbound.PlayerID == "" {
			return nil, errors.New("create_room: playerId is required")
		}
		return &core.Command{
			Kind:     core.CommandCreateRoom,
			Room:     inbound.RoomID,
			PlayerID: inbound.PlayerID,
		}, nil
	case proto.InboundTypeJoinRoom:
		if !utils.ValidRoomCode(inbound.RoomID) {
			return nil, fmt.Errorf("join_room: bad room code %q", inbound.RoomID)
		}
		if inbound.PlayerID == "" {
			return nil, errors.New("join_room: playerId is required")
		}
		return &core.Command{
			Kind:     core.CommandJoinRoom,
			Room:     inbound.RoomID,
			PlayerID: inbound.PlayerID,
		}, nil
	case proto.InboundTypeStartGame:
		if !utils.ValidRoomCode(inbound.RoomID) {
			return nil, fmt.Errorf("start_game: bad room code %q", inbound.RoomID)
		}
		return &core.Command{
			Kind: core.CommandStartGame,
			Room: inbound.RoomID,
		}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", inbound.Type)
	}
}

func outboundFromEvent(event *core.Event) any {
	switch event.Kind {
	case core.EventRoomCreated:
		out := proto.RoomCreated{
			Type:    proto.OutboundTypeRoomCreated,
			Success: event.Success,
			Reason:  event.Reason,
		}
		if event.Success {
			out.RoomID = event.Room
		}
		return out
	case core.EventRoomJoined:
		out := proto.RoomJoined{
			Type:    proto.OutboundTypeRoomJoined,
			Success: event.Success,
			Reason:  event.Reason,
		}
		if event.Success {
			out.RoomID = event.Room
			out.Players = playerInfos(event.Players)
		}
		return out
	case core.EventPlayerJoined:
		return proto.PlayerJoined{
			Type:    proto.OutboundTypePlayerJoined,
			RoomID:  event.Room,
			Players: playerInfos(event.Players),
		}
	case core.EventGameStarted:
		return proto.GameStarted{
			Type:   proto.OutboundTypeGameStarted,
			RoomID: event.Room,
		}
	default:
		return nil
	}
}

func playerInfos(seats []core.SeatInfo) []proto.PlayerInfo {
	infos := make([]proto.PlayerInfo, 0, len(seats))
	for _, s := range seats {
		infos = append(infos, proto.PlayerInfo{ID: s.PlayerID, IsOwner: s.IsOwner})
	}
	return infos
}
