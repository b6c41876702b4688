package server

import (
	"testing"
	"time"

	. "ClimbArena/internal/game"
)

func TestSimIntervalMatchesTickRate(t *testing.T) {
	if simInterval < 16*time.Millisecond || simInterval > 17*time.Millisecond {
		t.Fatalf("expected a 60 Hz step, got %v", simInterval)
	}
}

func TestSaveRoomsPersistsRemovedRooms(t *testing.T) {
	hub := NewHub()
	store := newMemoryProfileStore()
	room := hub.GetRoom("leaver", nil, ClimbOptions{})
	room.Profile.Wallet.Gold = 321
	hub.Release(room)

	saveRooms(store, hub.CleanupEmptyRooms())

	got, err := store.Load("leaver")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Wallet.Gold != 321 {
		t.Fatalf("expected saved gold 321, got %d", got.Wallet.Gold)
	}
}
