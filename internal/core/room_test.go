package core

import (
	"testing"
	"time"
)

func TestNewRoomSeatsOwnerFirst(t *testing.T) {
	owner := NewClient("conn-a")
	room := NewRoom("ABC123", "p1", owner, time.Now())

	if room.Status != StatusWaiting {
		t.Fatalf("new room should be waiting, got %s", room.Status)
	}
	if room.OwnerID != "p1" {
		t.Fatalf("unexpected owner id %q", room.OwnerID)
	}
	if len(room.Seats) != 1 {
		t.Fatalf("expected one seat, got %d", len(room.Seats))
	}

	seat := room.Seats[0]
	if !seat.IsOwner || seat.PlayerID != "p1" || seat.Color != "red" {
		t.Fatalf("unexpected owner seat: %+v", seat)
	}
}

func TestAddSeatAssignsNextColor(t *testing.T) {
	room := NewRoom("ABC123", "p1", NewClient("conn-a"), time.Now())

	seat := room.AddSeat("p2", NewClient("conn-b"))
	if seat.IsOwner {
		t.Fatal("joiner must not be owner")
	}
	if seat.Color != "blue" {
		t.Fatalf("joiner should get blue, got %q", seat.Color)
	}
	if !room.Full() {
		t.Fatal("room with two seats should be full")
	}
}

func TestRosterPreservesJoinOrder(t *testing.T) {
	room := NewRoom("ABC123", "p1", NewClient("conn-a"), time.Now())
	room.AddSeat("p2", NewClient("conn-b"))

	roster := room.Roster()
	if len(roster) != 2 {
		t.Fatalf("expected roster of 2, got %d", len(roster))
	}
	if roster[0].PlayerID != "p1" || !roster[0].IsOwner {
		t.Fatalf("owner must come first: %+v", roster)
	}
	if roster[1].PlayerID != "p2" || roster[1].IsOwner {
		t.Fatalf("joiner must come second: %+v", roster)
	}
}
