package game

import (
	"fmt"
	"math"
	"math/rand"
)

// BonusKind is the effect family of a bonus option.
type BonusKind string

const (
	BonusHeal       BonusKind = "heal"
	BonusShield     BonusKind = "shield"
	BonusDamageBuff BonusKind = "damage"
	BonusCritBuff   BonusKind = "crit"
)

// BonusOption is one of the choices offered at a bonus slot. Slot is the
// queue index the option was offered for; it is set when the option is
// sampled and makes a stale selection harmless.
type BonusOption struct {
	ID          string
	Name        string
	Description string
	Kind        BonusKind
	Magnitude   float64
	Color       string
	Slot        int
}

// BonusPool is the fixed set options are sampled from. Heal magnitudes are
// fractions of max hp; everything else is flat.
var BonusPool = []BonusOption{
	{ID: "heal_30", Name: "Poção Menor", Description: "Recupera 30% de Vida", Kind: BonusHeal, Magnitude: 0.3, Color: "#2ecc71"},
	{ID: "heal_100", Name: "Poção Completa", Description: "Recupera 100% de Vida", Kind: BonusHeal, Magnitude: 1, Color: "#27ae60"},
	{ID: "shield_25", Name: "Escudo Básico", Description: "+25 de Escudo", Kind: BonusShield, Magnitude: 25, Color: "#3498db"},
	{ID: "shield_50", Name: "Escudo Reforçado", Description: "+50 de Escudo", Kind: BonusShield, Magnitude: 50, Color: "#2980b9"},
	{ID: "dmg_5", Name: "Afiador", Description: "+5 de Dano (Batalha)", Kind: BonusDamageBuff, Magnitude: 5, Color: "#e74c3c"},
	{ID: "dmg_15", Name: "Lâmina Sombria", Description: "+15 de Dano (Batalha)", Kind: BonusDamageBuff, Magnitude: 15, Color: "#c0392b"},
	{ID: "crit_10", Name: "Concentração", Description: "+10% Crítico (Batalha)", Kind: BonusCritBuff, Magnitude: 10, Color: "#f1c40f"},
	{ID: "crit_25", Name: "Instinto Assassino", Description: "+25% Crítico (Batalha)", Kind: BonusCritBuff, Magnitude: 25, Color: "#f39c12"},
}

// SampleBonusOptions draws n distinct options from the pool for the given
// queue slot.
func SampleBonusOptions(rng *rand.Rand, n, slot int) []BonusOption {
	if n > len(BonusPool) {
		n = len(BonusPool)
	}
	if n <= 0 {
		return nil
	}
	out := make([]BonusOption, 0, n)
	for _, idx := range rng.Perm(len(BonusPool))[:n] {
		opt := BonusPool[idx]
		opt.Slot = slot
		out = append(out, opt)
	}
	return out
}

// applyBonus adds the option's effect to the player and returns the text to
// float over them.
func applyBonus(p *PlayerCombatant, opt BonusOption) FloatingText {
	ft := FloatingText{Target: TargetPlayer, X: p.X, Color: opt.Color}
	switch opt.Kind {
	case BonusHeal:
		amount := math.Floor(p.MaxHP * opt.Magnitude)
		healed := p.heal(amount)
		ft.Value = healed
		ft.Text = fmt.Sprintf("+%.0f", healed)
		ft.Color = ColorHeal
	case BonusShield:
		p.Shield += opt.Magnitude
		ft.Value = opt.Magnitude
		ft.Text = fmt.Sprintf("+%.0f 🛡", opt.Magnitude)
		ft.Color = ColorShield
	case BonusDamageBuff:
		p.TempAttackBonus += opt.Magnitude
		ft.Value = opt.Magnitude
		ft.Text = fmt.Sprintf("+%.0f ATK", opt.Magnitude)
	case BonusCritBuff:
		p.TempCritBonus += opt.Magnitude
		ft.Value = opt.Magnitude
		ft.Text = fmt.Sprintf("+%.0f%% CRIT", opt.Magnitude)
	}
	return ft
}

func findOffered(offered []BonusOption, opt BonusOption) (BonusOption, bool) {
	for _, o := range offered {
		if o.ID == opt.ID && o.Slot == opt.Slot {
			return o, true
		}
	}
	return BonusOption{}, false
}
