package game

import (
	"fmt"
	"math/rand"
	"sync/atomic"
)

var dropSeq atomic.Uint64

// DropKind is what a non-combat encounter yields.
type DropKind string

const (
	DropGold DropKind = "gold"
	DropGems DropKind = "gems"
	DropItem DropKind = "item"
)

// Drop is the loot of an encounter that rolled no fight.
type Drop struct {
	Kind   DropKind
	Amount int
	Item   Consumable
}

// RollDrop rolls loot for a tile of the given level: gold worth ten per
// level, one or two gems, or a common consumable.
func RollDrop(rng *rand.Rand, level int, newID func() string) Drop {
	if level <= 0 {
		level = 1
	}
	roll := rng.Float64()
	switch {
	case roll < DropGoldShare:
		return Drop{Kind: DropGold, Amount: DropGoldPerLvl * level}
	case roll < DropGoldShare+DropGemsShare:
		return Drop{Kind: DropGems, Amount: 1 + rng.Intn(2)}
	default:
		item := RollConsumable(rng, "", RarityCommon)
		if newID != nil {
			item.ID = fmt.Sprintf("%s_%s", item.BaseID, newID())
		} else {
			item.ID = fmt.Sprintf("%s_%d", item.BaseID, dropSeq.Add(1))
		}
		return Drop{Kind: DropItem, Amount: 1, Item: item}
	}
}
