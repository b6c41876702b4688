package game

import "math/rand"

// MobClass is the combat class of an enemy. Only Warrior, Tank, Assassin and
// Healer carry mechanics; Mage and Archer are cosmetic.
type MobClass int

const (
	ClassWarrior MobClass = iota
	ClassTank
	ClassMage
	ClassArcher
	ClassAssassin
	ClassHealer
)

var mobClassNames = [...]struct{ ID, Name string }{
	ClassWarrior:  {"warrior", "Guerreiro"},
	ClassTank:     {"tank", "Tanque"},
	ClassMage:     {"mage", "Mago"},
	ClassArcher:   {"archer", "Arqueiro"},
	ClassAssassin: {"assassin", "Assassino"},
	ClassHealer:   {"healer", "Curandeiro"},
}

// MobClassCount is the number of classes a roll picks from.
const MobClassCount = len(mobClassNames)

func (c MobClass) String() string {
	if c < 0 || int(c) >= MobClassCount {
		return "unknown"
	}
	return mobClassNames[c].ID
}

// DisplayName is the label shown under an enemy.
func (c MobClass) DisplayName() string {
	if c < 0 || int(c) >= MobClassCount {
		return ""
	}
	return mobClassNames[c].Name
}

// RollClass picks a class uniformly.
func RollClass(rng *rand.Rand) MobClass {
	return MobClass(rng.Intn(MobClassCount))
}

// Role escalates an enemy's stats and rewards independently of rarity.
type Role int

const (
	RoleCommon Role = iota
	RoleElite
	RoleLeader
	RoleMapBoss
)

func (r Role) String() string {
	switch r {
	case RoleElite:
		return "elite"
	case RoleLeader:
		return "leader"
	case RoleMapBoss:
		return "map_boss"
	default:
		return "common"
	}
}

// Role colors override the rarity color on promoted enemies.
const (
	EliteColor   = "#9b59b6"
	LeaderColor  = "#c0392b"
	MapBossColor = "#8e44ad"
	BonusColor   = "gold"
)
