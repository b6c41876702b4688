package game

import (
	"sync"
)

// Room is one player's climb session. Every access to Climb goes through Mu.
type Room struct {
	ID      string
	Now     float64
	Profile *Profile
	Climb   *Climb
	Conns   int
	Mu      sync.Mutex
}

func newRoom(id string, profile *Profile, opts ClimbOptions) *Room {
	if profile == nil {
		profile = DefaultProfile(id)
	}
	opts.Profile = profile
	return &Room{
		ID:      id,
		Profile: profile,
		Climb:   NewClimb(opts),
	}
}

// Hub keys rooms by profile id so a reconnect resumes the same climb.
type Hub struct {
	Rooms map[string]*Room
	Mu    sync.Mutex
}

func NewHub() *Hub { return &Hub{Rooms: map[string]*Room{}} }

// GetRoom returns the room for id, creating it from profile and opts when
// absent. The returned room has its connection count incremented.
func (h *Hub) GetRoom(id string, profile *Profile, opts ClimbOptions) *Room {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	r, ok := h.Rooms[id]
	if !ok {
		r = newRoom(id, profile, opts)
		h.Rooms[id] = r
	}
	r.Mu.Lock()
	r.Conns++
	r.Mu.Unlock()
	return r
}

// Release drops one connection from the room.
func (h *Hub) Release(r *Room) {
	r.Mu.Lock()
	if r.Conns > 0 {
		r.Conns--
	}
	r.Mu.Unlock()
}

// CleanupEmptyRooms removes rooms without connections and returns them so
// the caller can persist their profiles.
func (h *Hub) CleanupEmptyRooms() []*Room {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	var removed []*Room
	for id, r := range h.Rooms {
		r.Mu.Lock()
		empty := r.Conns == 0
		r.Mu.Unlock()
		if empty {
			removed = append(removed, r)
			delete(h.Rooms, id)
		}
	}
	return removed
}

// Tick advances the room by one fixed step.
func (r *Room) Tick() {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	r.Now += Dt
	r.Climb.Tick()
}

// TickRooms advances every room by one fixed step.
func (h *Hub) TickRooms() {
	h.Mu.Lock()
	rooms := make([]*Room, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, r)
	}
	h.Mu.Unlock()
	for _, r := range rooms {
		r.Tick()
	}
}
