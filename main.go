package main

import (
	"flag"
	"math"

	"ClimbArena/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	tuningConfigPath := flag.String("tuning-config", "configs/tuning.yaml", "path to tension/combat tuning (YAML or JSON)")
	profileDir := flag.String("profile-dir", "data/profiles", "directory holding saved player profiles")
	mapHeight := flag.Float64("map-height", math.NaN(), "override map height used for trigger distances")
	ambushChance := flag.Float64("ambush-chance", math.NaN(), "override per-step ambush probability (0-1)")
	ambushFloor := flag.Int("ambush-floor", -1, "override minimum tension before ambushes roll (0-10)")
	barWindow := flag.Float64("bar-window", math.NaN(), "override fraction of the trigger where tension peaks")
	dodge := flag.Float64("dodge", math.NaN(), "override warrior dodge chance (0-1)")
	assassinCrit := flag.Float64("assassin-crit", math.NaN(), "override assassin double-damage chance (0-1)")
	gemChance := flag.Float64("gem-chance", math.NaN(), "override gem drop chance per defeated enemy (0-1)")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.TuningConfigPath = *tuningConfigPath
	cfg.ProfileDir = *profileDir

	var overrides server.TuningOverrides

	if !math.IsNaN(*mapHeight) {
		val := *mapHeight
		overrides.MapHeight = &val
	}
	if !math.IsNaN(*ambushChance) {
		val := *ambushChance
		overrides.AmbushChance = &val
	}
	if *ambushFloor >= 0 {
		val := *ambushFloor
		overrides.AmbushFloor = &val
	}
	if !math.IsNaN(*barWindow) {
		val := *barWindow
		overrides.BarWindow = &val
	}
	if !math.IsNaN(*dodge) {
		val := *dodge
		overrides.WarriorDodgeChance = &val
	}
	if !math.IsNaN(*assassinCrit) {
		val := *assassinCrit
		overrides.AssassinCritChance = &val
	}
	if !math.IsNaN(*gemChance) {
		val := *gemChance
		overrides.GemDropChance = &val
	}

	cfg.TuningOverrides = overrides

	server.StartApp(*addr, cfg)
}
