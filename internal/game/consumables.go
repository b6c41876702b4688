package game

import (
	"fmt"
	"math"
	"math/rand"
)

// ConsumableKind is the single effect a consumable applies.
type ConsumableKind string

const (
	ConsumableHeal   ConsumableKind = "heal"
	ConsumableShield ConsumableKind = "shield"
	ConsumableCrit   ConsumableKind = "crit"
	ConsumableSpeed  ConsumableKind = "speed"
	ConsumableDamage ConsumableKind = "damage"
)

// Consumable is an inventory item that can be spent during a battle.
type Consumable struct {
	ID     string         `json:"id"`
	BaseID string         `json:"baseId"`
	Name   string         `json:"name"`
	Kind   ConsumableKind `json:"kind"`
	Value  float64        `json:"value"`
	Rarity RarityTier     `json:"rarity"`
}

// ConsumableBase is a catalog entry before rarity scaling.
type ConsumableBase struct {
	ID    string
	Name  string
	Kind  ConsumableKind
	Value float64
}

// BaseConsumables is the catalog drops are rolled from.
var BaseConsumables = []ConsumableBase{
	{ID: "potion_heal", Name: "Poção de Vida", Kind: ConsumableHeal, Value: 50},
	{ID: "potion_shield", Name: "Poção de Escudo", Kind: ConsumableShield, Value: 50},
	{ID: "potion_crit", Name: "Poção de Crítico", Kind: ConsumableCrit, Value: 15},
	{ID: "potion_speed", Name: "Poção de Velocidade", Kind: ConsumableSpeed, Value: 5},
	{ID: "potion_damage", Name: "Poção de Dano", Kind: ConsumableDamage, Value: 10},
}

// NewConsumable scales base to the given rarity: ceil(value * multiplier).
func NewConsumable(id string, base ConsumableBase, tier RarityTier) Consumable {
	return Consumable{
		ID:     id,
		BaseID: base.ID,
		Name:   base.Name,
		Kind:   base.Kind,
		Value:  math.Ceil(base.Value * tier.Multiplier()),
		Rarity: tier,
	}
}

// RollConsumable picks a catalog entry uniformly.
func RollConsumable(rng *rand.Rand, id string, tier RarityTier) Consumable {
	return NewConsumable(id, BaseConsumables[rng.Intn(len(BaseConsumables))], tier)
}

// applyConsumable spends c on the player. It reports false for unknown kinds.
func applyConsumable(p *PlayerCombatant, c Consumable) (FloatingText, bool) {
	ft := FloatingText{Target: TargetPlayer, X: p.X, Value: c.Value}
	switch c.Kind {
	case ConsumableHeal:
		ft.Value = p.heal(c.Value)
		ft.Text = fmt.Sprintf("+%.0f", ft.Value)
		ft.Color = ColorHeal
	case ConsumableShield:
		p.Shield += c.Value
		ft.Text = fmt.Sprintf("+%.0f 🛡", c.Value)
		ft.Color = ColorShield
	case ConsumableCrit:
		p.TempCritBonus += c.Value
		ft.Text = fmt.Sprintf("+%.0f%% CRIT", c.Value)
		ft.Color = ColorCrit
	case ConsumableSpeed:
		p.TempSpeedBonus += c.Value
		ft.Text = fmt.Sprintf("+%.0f SPD", c.Value)
		ft.Color = ColorLevel
	case ConsumableDamage:
		p.TempAttackBonus += c.Value
		ft.Text = fmt.Sprintf("+%.0f ATK", c.Value)
		ft.Color = ColorDamage
	default:
		return FloatingText{}, false
	}
	return ft, true
}

// SelectLoadout picks up to MaxLoadout consumables from items by id, in the
// order given. Unknown and duplicate ids are skipped.
func SelectLoadout(items []Consumable, ids []string) []Consumable {
	out := make([]Consumable, 0, MaxLoadout)
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if len(out) == MaxLoadout {
			break
		}
		if seen[id] {
			continue
		}
		for _, it := range items {
			if it.ID == id {
				out = append(out, it)
				seen[id] = true
				break
			}
		}
	}
	return out
}
