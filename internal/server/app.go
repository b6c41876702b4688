package server

import (
	"log"
	"time"

	. "ClimbArena/internal/game"
)

// simInterval is one fixed simulation step.
var simInterval = time.Second / time.Duration(SimHz)

type AppConfig struct {
	TuningConfigPath string
	ProfileDir       string
	TuningOverrides  TuningOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		TuningConfigPath: "configs/tuning.yaml",
		ProfileDir:       "data/profiles",
	}
}

func resolveTuning(cfg AppConfig) Tuning {
	tuning := DefaultTuning()
	loaded, err := loadTuningFromFile(cfg.TuningConfigPath, tuning)
	if err != nil {
		log.Printf("tuning config: %v (using defaults)", err)
	} else {
		tuning = loaded
	}
	tuning = cfg.TuningOverrides.apply(tuning)
	return sanitizeTuning(tuning)
}

func saveRooms(store ProfileStore, rooms []*Room) {
	for _, r := range rooms {
		r.Mu.Lock()
		err := store.Save(r.Profile)
		r.Mu.Unlock()
		if err != nil {
			log.Printf("save profile %s: %v", r.ID, err)
		}
	}
}

func StartApp(addr string, cfg AppConfig) {
	tuning := resolveTuning(cfg)
	store := NewFileProfileStore(cfg.ProfileDir)
	hub := NewHub()

	// Fixed-step simulation for every open climb
	go func() {
		ticker := time.NewTicker(simInterval)
		defer ticker.Stop()
		for range ticker.C {
			hub.TickRooms()
		}
	}()

	// Periodic cleanup of empty rooms (every 60 seconds)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			saveRooms(store, hub.CleanupEmptyRooms())
		}
	}()

	log.Printf("starting web server on %s (map height %.0f, ambush floor %d, profiles in %s)\n",
		addr, tuning.Tension.MapHeight, tuning.Tension.AmbushFloor, cfg.ProfileDir)
	if err := startServer(hub, store, tuning, addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
