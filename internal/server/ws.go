package server

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	. "ClimbArena/internal/game"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type walkPayload struct {
	Distance float64 `json:"distance"`
	Row      int     `json:"row"`
	Col      int     `json:"col"`
}

type idPayload struct {
	ID string `json:"id"`
}

type loadoutPayload struct {
	IDs []string `json:"ids"`
}

type outboundFrame struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type liveConn struct {
	conn     *websocket.Conn
	sendTick *time.Ticker
	out      chan outboundFrame
}

func (lc *liveConn) queue(kind string, payload interface{}) {
	select {
	case lc.out <- outboundFrame{Type: kind, Payload: payload}:
	default:
		log.Printf("dropping %s frame: send queue full", kind)
	}
}

func roomRng(raw string) *rand.Rand {
	if raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return rand.New(rand.NewSource(seed))
		}
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func serveWS(h *Hub, store ProfileStore, tuning Tuning, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	profileID := query.Get("profile")
	if profileID == "" {
		profileID = NewProfileID()
	}
	profile, err := store.Load(profileID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	lc := &liveConn{
		conn:     conn,
		sendTick: time.NewTicker(time.Duration(1000.0/UpdateRateHz) * time.Millisecond),
		out:      make(chan outboundFrame, 32),
	}

	combat := tuning.Combat
	room := h.GetRoom(profileID, profile, ClimbOptions{
		Tension: tuning.Tension,
		Combat:  &combat,
		Rng:     roomRng(query.Get("seed")),
		NewID:   NewProfileID,
	})

	room.Mu.Lock()
	hello := profileToDTO(room.Profile)
	room.Mu.Unlock()
	if err := conn.WriteJSON(outboundFrame{Type: "hello", Payload: hello}); err != nil {
		log.Printf("send hello error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reader
	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var inbound inboundMessage
			if err := json.Unmarshal(data, &inbound); err != nil {
				lc.queue("error", errorMsg{Message: "malformed message"})
				continue
			}
			switch inbound.Type {
			case "walk":
				var m walkPayload
				if err := json.Unmarshal(inbound.Payload, &m); err != nil {
					lc.queue("error", errorMsg{Message: "bad walk payload"})
					continue
				}
				lc.queue("walk", handleWalk(room, m))
			case "bonus":
				var m idPayload
				if err := json.Unmarshal(inbound.Payload, &m); err != nil {
					continue
				}
				if !handleBonus(room, m.ID) {
					lc.queue("error", errorMsg{Message: "bonus not offered"})
				}
			case "consume":
				var m idPayload
				if err := json.Unmarshal(inbound.Payload, &m); err != nil {
					continue
				}
				if !handleConsume(room, m.ID) {
					lc.queue("error", errorMsg{Message: "consumable unavailable"})
				}
			case "loadout":
				var m loadoutPayload
				if err := json.Unmarshal(inbound.Payload, &m); err != nil {
					continue
				}
				room.Mu.Lock()
				picked := room.Climb.SelectLoadout(m.IDs)
				room.Mu.Unlock()
				lc.queue("loadout", consumablesToDTO(picked))
			case "close":
				res, ok := handleClose(room, store)
				if !ok {
					lc.queue("error", errorMsg{Message: "no open battle"})
					continue
				}
				lc.queue("result", resultToDTO(res))
			default:
				log.Printf("unknown message type: %s", inbound.Type)
			}
		}
	}()

	// Writer
	go func() {
		var lastBattle *Battle
		lastSeq := 0
		for {
			select {
			case <-ctx.Done():
				return
			case frame := <-lc.out:
				if err := conn.WriteJSON(frame); err != nil {
					log.Printf("send %s error: %v", frame.Type, err)
					cancel()
					return
				}
			case <-lc.sendTick.C:
				room.Mu.Lock()
				msg := stateMsg{
					Now:      room.Now,
					Tension:  room.Climb.Tension(),
					Progress: room.Climb.Progress(),
					Level:    room.Climb.Tile().Level,
					Profile:  profileToDTO(room.Profile),
				}
				if b := room.Climb.Battle(); b != nil {
					if b != lastBattle {
						lastBattle = b
						lastSeq = 0
					}
					msg.Battle = battleToDTO(b.Snapshot())
					for _, ev := range b.EventsAfter(lastSeq) {
						if ev.Kind == EventCue {
							msg.Cues = append(msg.Cues, string(ev.Cue))
						}
						lastSeq = ev.Seq
					}
				}
				room.Mu.Unlock()
				if err := conn.WriteJSON(outboundFrame{Type: "state", Payload: msg}); err != nil {
					log.Printf("send state error: %v", err)
					cancel()
					return
				}
			}
		}
	}()

	<-ctx.Done()
	lc.sendTick.Stop()
	conn.Close()

	h.Release(room)
	room.Mu.Lock()
	err = store.Save(room.Profile)
	room.Mu.Unlock()
	if err != nil {
		log.Printf("save profile %s: %v", profileID, err)
	}
}

func handleWalk(room *Room, m walkPayload) walkMsg {
	room.Mu.Lock()
	defer room.Mu.Unlock()
	return walkToDTO(room.Climb.Walk(m.Distance, TileAt(m.Row, m.Col)))
}

func handleBonus(room *Room, id string) bool {
	room.Mu.Lock()
	defer room.Mu.Unlock()
	b := room.Climb.Battle()
	if b == nil {
		return false
	}
	return b.SelectBonusID(id)
}

func handleConsume(room *Room, id string) bool {
	room.Mu.Lock()
	defer room.Mu.Unlock()
	b := room.Climb.Battle()
	if b == nil {
		return false
	}
	return b.UseConsumable(id)
}

// handleClose tears down the open battle and persists the profile.
func handleClose(room *Room, store ProfileStore) (BattleResult, bool) {
	room.Mu.Lock()
	defer room.Mu.Unlock()
	res, ok := room.Climb.CloseBattle()
	if !ok {
		return res, false
	}
	if err := store.Save(room.Profile); err != nil {
		log.Printf("save profile %s: %v", room.Profile.ID, err)
	}
	return res, true
}
