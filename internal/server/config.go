package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "ClimbArena/internal/game"

	"gopkg.in/yaml.v3"
)

type tensionConfig struct {
	MapHeight      *float64 `json:"mapHeight" yaml:"mapHeight"`
	MinTriggerFrac *float64 `json:"minTriggerFrac" yaml:"minTriggerFrac"`
	MaxTriggerFrac *float64 `json:"maxTriggerFrac" yaml:"maxTriggerFrac"`
	BarWindow      *float64 `json:"barWindow" yaml:"barWindow"`
	MoveEpsilon    *float64 `json:"moveEpsilon" yaml:"moveEpsilon"`
	AmbushFloor    *int     `json:"ambushFloor" yaml:"ambushFloor"`
	AmbushChance   *float64 `json:"ambushChance" yaml:"ambushChance"`
}

type combatConfig struct {
	WarriorDodgeChance *float64 `json:"warriorDodgeChance" yaml:"warriorDodgeChance"`
	AssassinCritChance *float64 `json:"assassinCritChance" yaml:"assassinCritChance"`
	HealerEvery        *int     `json:"healerEvery" yaml:"healerEvery"`
	HealerHealFrac     *float64 `json:"healerHealFrac" yaml:"healerHealFrac"`
	GemDropChance      *float64 `json:"gemDropChance" yaml:"gemDropChance"`
	EnemyMeterRate     *float64 `json:"enemyMeterRate" yaml:"enemyMeterRate"`
	ApproachSpeed      *float64 `json:"approachSpeed" yaml:"approachSpeed"`
}

type worldConfig struct {
	Tension *tensionConfig `json:"tension" yaml:"tension"`
	Combat  *combatConfig  `json:"combat" yaml:"combat"`
}

// Tuning is the resolved simulation tuning shared by every session.
type Tuning struct {
	Tension TensionParams
	Combat  CombatParams
}

// DefaultTuning returns the shipped tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Tension: DefaultTensionParams(MapRows * TileHeight),
		Combat:  DefaultCombatParams(),
	}
}

func sanitizeTuning(t Tuning) Tuning {
	t.Tension = SanitizeTensionParams(t.Tension)
	t.Combat = SanitizeCombatParams(t.Combat)
	return t
}

// TuningOverrides represents optional command-line overrides for tuning.
type TuningOverrides struct {
	MapHeight          *float64
	AmbushChance       *float64
	AmbushFloor        *int
	BarWindow          *float64
	WarriorDodgeChance *float64
	AssassinCritChance *float64
	GemDropChance      *float64
}

func (o TuningOverrides) apply(base Tuning) Tuning {
	if o.MapHeight != nil {
		base.Tension.MapHeight = *o.MapHeight
	}
	if o.AmbushChance != nil {
		base.Tension.AmbushChance = *o.AmbushChance
	}
	if o.AmbushFloor != nil {
		base.Tension.AmbushFloor = *o.AmbushFloor
	}
	if o.BarWindow != nil {
		base.Tension.BarWindow = *o.BarWindow
	}
	if o.WarriorDodgeChance != nil {
		base.Combat.WarriorDodgeChance = *o.WarriorDodgeChance
	}
	if o.AssassinCritChance != nil {
		base.Combat.AssassinCritChance = *o.AssassinCritChance
	}
	if o.GemDropChance != nil {
		base.Combat.GemDropChance = *o.GemDropChance
	}
	return sanitizeTuning(base)
}

func mergeTensionConfig(base TensionParams, cfg *tensionConfig) TensionParams {
	if cfg == nil {
		return base
	}
	if cfg.MapHeight != nil {
		base.MapHeight = *cfg.MapHeight
	}
	if cfg.MinTriggerFrac != nil {
		base.MinTriggerFrac = *cfg.MinTriggerFrac
	}
	if cfg.MaxTriggerFrac != nil {
		base.MaxTriggerFrac = *cfg.MaxTriggerFrac
	}
	if cfg.BarWindow != nil {
		base.BarWindow = *cfg.BarWindow
	}
	if cfg.MoveEpsilon != nil {
		base.MoveEpsilon = *cfg.MoveEpsilon
	}
	if cfg.AmbushFloor != nil {
		base.AmbushFloor = *cfg.AmbushFloor
	}
	if cfg.AmbushChance != nil {
		base.AmbushChance = *cfg.AmbushChance
	}
	return SanitizeTensionParams(base)
}

func mergeCombatConfig(base CombatParams, cfg *combatConfig) CombatParams {
	if cfg == nil {
		return base
	}
	if cfg.WarriorDodgeChance != nil {
		base.WarriorDodgeChance = *cfg.WarriorDodgeChance
	}
	if cfg.AssassinCritChance != nil {
		base.AssassinCritChance = *cfg.AssassinCritChance
	}
	if cfg.HealerEvery != nil {
		base.HealerEvery = *cfg.HealerEvery
	}
	if cfg.HealerHealFrac != nil {
		base.HealerHealFrac = *cfg.HealerHealFrac
	}
	if cfg.GemDropChance != nil {
		base.GemDropChance = *cfg.GemDropChance
	}
	if cfg.EnemyMeterRate != nil {
		base.EnemyMeterRate = *cfg.EnemyMeterRate
	}
	if cfg.ApproachSpeed != nil {
		base.ApproachSpeed = *cfg.ApproachSpeed
	}
	return SanitizeCombatParams(base)
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func loadTuningFromFile(path string, base Tuning) (Tuning, error) {
	if path == "" {
		return sanitizeTuning(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return sanitizeTuning(base), nil
		}
		return sanitizeTuning(base), fmt.Errorf("read tuning config %q: %w", cleanPath, err)
	}
	var cfg worldConfig
	if isYAMLPath(cleanPath) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return sanitizeTuning(base), fmt.Errorf("parse tuning config %q: %w", cleanPath, err)
	}
	base.Tension = mergeTensionConfig(base.Tension, cfg.Tension)
	base.Combat = mergeCombatConfig(base.Combat, cfg.Combat)
	return sanitizeTuning(base), nil
}
