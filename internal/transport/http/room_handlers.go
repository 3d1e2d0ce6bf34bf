package http

import (
	"errors"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/flychess/flychess-server/internal/core"
)

// RoomHandlers provides the read-only REST surface over the hub.
type RoomHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(hub *core.Hub, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		hub: hub,
		log: logger,
	}
}

// RoomResponse represents a room in API responses.
type RoomResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetRoom answers a room status probe.
// GET /api/rooms/:id
func (h *RoomHandlers) GetRoom(c *gin.Context) {
	id := c.Param("id")

	snap, err := h.hub.RoomSnapshot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrRoomNotFound) {
			c.JSON(stdhttp.StatusNotFound, ErrorResponse{Error: core.ReasonRoomNotFound})
			return
		}
		h.log.Error().Err(err).Str("room", id).Msg("room snapshot failed")
		c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(stdhttp.StatusOK, RoomResponse{
		ID:         snap.ID,
		Status:     string(snap.Status),
		Players:    len(snap.Players),
		MaxPlayers: snap.MaxPlayers,
	})
}
