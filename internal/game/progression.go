package game

import "math"

// Attributes are the persistent player stats.
type Attributes struct {
	Level      int `json:"level"`
	XP         int `json:"xp"`
	MaxXP      int `json:"maxXp"`
	HP         int `json:"hp"`
	MaxHP      int `json:"maxHp"`
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Speed      int `json:"speed"`
	CritChance int `json:"critChance"`
	Shield     int `json:"shield"`
}

// DefaultAttributes are the stats of a fresh character.
func DefaultAttributes() Attributes {
	return Attributes{
		Level:      1,
		XP:         0,
		MaxXP:      100,
		HP:         100,
		MaxHP:      100,
		Attack:     10,
		Defense:    2,
		Speed:      3,
		CritChance: 10,
		Shield:     2,
	}
}

// LevelUp reports the outcome of an XP grant.
type LevelUp struct {
	Levels     int
	Attributes Attributes
}

// ApplyXP adds xp and runs the level-up loop. Each level converts MaxXP
// worth of xp, grows MaxXP by 20% and grants +20 max hp with a full heal,
// +2 attack and +1 defense.
func ApplyXP(a Attributes, xp int) LevelUp {
	if xp > 0 {
		a.XP += xp
	}
	if a.MaxXP <= 0 {
		a.MaxXP = DefaultAttributes().MaxXP
	}
	levels := 0
	for a.XP >= a.MaxXP {
		a.XP -= a.MaxXP
		a.Level++
		a.MaxXP = int(math.Floor(float64(a.MaxXP) * 1.2))
		a.MaxHP += 20
		a.HP = a.MaxHP
		a.Attack += 2
		a.Defense++
		levels++
	}
	return LevelUp{Levels: levels, Attributes: a}
}

// Wallet holds currency.
type Wallet struct {
	Gold int `json:"gold"`
	Gems int `json:"gems"`
}

// Profile is the persistent state of one player. It satisfies Progression,
// Economy and Inventory so a session can run directly against it.
type Profile struct {
	ID         string       `json:"id"`
	Attributes Attributes   `json:"attributes"`
	Wallet     Wallet       `json:"wallet"`
	Items      []Consumable `json:"items"`
	Keys       int          `json:"keys"`
}

// DefaultProfile returns a fresh character with the starting purse.
func DefaultProfile(id string) *Profile {
	return &Profile{
		ID:         id,
		Attributes: DefaultAttributes(),
		Wallet:     Wallet{Gold: 100},
	}
}

// Stats returns a copy of the current attributes.
func (p *Profile) Stats() Attributes { return p.Attributes }

func (p *Profile) GrantXP(xp int) LevelUp {
	lu := ApplyXP(p.Attributes, xp)
	p.Attributes = lu.Attributes
	return lu
}

// SetHP stores hp clamped to [0, MaxHP].
func (p *Profile) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > p.Attributes.MaxHP {
		hp = p.Attributes.MaxHP
	}
	p.Attributes.HP = hp
}

func (p *Profile) RestoreHP() { p.Attributes.HP = p.Attributes.MaxHP }

func (p *Profile) Credit(gold, gems int) {
	if gold > 0 {
		p.Wallet.Gold += gold
	}
	if gems > 0 {
		p.Wallet.Gems += gems
	}
}

func (p *Profile) Consumables() []Consumable {
	return append([]Consumable(nil), p.Items...)
}

func (p *Profile) RemoveConsumable(id string) bool {
	for i := range p.Items {
		if p.Items[i].ID == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Profile) AddConsumable(c Consumable) {
	p.Items = append(p.Items, c)
}

func (p *Profile) AddKey() { p.Keys++ }
