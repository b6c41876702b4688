package game

import (
	"math/rand"
)

// RarityTier is one of seven ordered power bands.
type RarityTier int

const (
	RarityCommon RarityTier = iota
	RarityUncommon
	RarityRare
	RarityHeroic
	RarityLegendary
	RarityMythic
	RarityImmortal
)

// RarityInfo holds the spawn weight and stat multiplier of a tier.
type RarityInfo struct {
	ID         string
	Name       string
	Color      string
	Weight     float64
	Multiplier float64
}

// RarityTable is indexed by RarityTier.
var RarityTable = [...]RarityInfo{
	RarityCommon:    {ID: "common", Name: "Comum", Color: "#95a5a6", Weight: 60, Multiplier: 1},
	RarityUncommon:  {ID: "uncommon", Name: "Incomum", Color: "#2ecc71", Weight: 20, Multiplier: 1.5},
	RarityRare:      {ID: "rare", Name: "Raro", Color: "#3498db", Weight: 10, Multiplier: 2},
	RarityHeroic:    {ID: "heroic", Name: "Heroico", Color: "#9b59b6", Weight: 5, Multiplier: 3},
	RarityLegendary: {ID: "legendary", Name: "Lendário", Color: "#f1c40f", Weight: 3, Multiplier: 5},
	RarityMythic:    {ID: "mythic", Name: "Mítico", Color: "#e67e22", Weight: 1.5, Multiplier: 8},
	RarityImmortal:  {ID: "immortal", Name: "Imortal", Color: "#e74c3c", Weight: 0.5, Multiplier: 12},
}

// Info returns the table row for r, falling back to Common for unknown tiers.
func (r RarityTier) Info() RarityInfo {
	if r < 0 || int(r) >= len(RarityTable) {
		return RarityTable[RarityCommon]
	}
	return RarityTable[r]
}

func (r RarityTier) String() string      { return r.Info().ID }
func (r RarityTier) Multiplier() float64 { return r.Info().Multiplier }

// RarityWeights returns the spawn weights in tier order.
func RarityWeights() []float64 {
	weights := make([]float64, len(RarityTable))
	for i, info := range RarityTable {
		weights[i] = info.Weight
	}
	return weights
}

// RollRarity draws a tier proportionally to its weight.
func RollRarity(rng *rand.Rand) RarityTier {
	return RarityTier(weightedIndex(rng, RarityWeights()))
}

// weightedIndex returns an index in weights chosen with probability
// weight/total. Non-positive weights are never chosen.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 || len(weights) == 0 {
		return 0
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		last = i
		if roll < cumulative {
			return i
		}
	}
	// Float rounding can leave roll == total.
	return last
}

// RarityByID looks up a tier by its identifier.
func RarityByID(id string) (RarityTier, bool) {
	for i, info := range RarityTable {
		if info.ID == id {
			return RarityTier(i), true
		}
	}
	return RarityCommon, false
}
