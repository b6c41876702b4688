package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator builds encounter queues. It draws every random value from one
// stream so a seeded generator is fully reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator wraps rng; a nil rng is seeded from the clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// RollMobCount picks the enemy count of a normal encounter, uniform in
// [MinMobCount, MaxMobCount].
func (g *Generator) RollMobCount() int {
	return MinMobCount + g.rng.Intn(MaxMobCount-MinMobCount+1)
}

// Generate lays out mobCount enemies left to right with a bonus slot after
// every third one, promotes the last enemy and, on map-boss tiles, appends
// the map boss. The returned queue never ends on a bonus slot.
func (g *Generator) Generate(mobCount int, ctx DifficultyContext, isMapBoss bool) *EncounterQueue {
	ctx = ctx.Sanitize()
	if mobCount < 1 {
		mobCount = 1
	}

	q := &EncounterQueue{
		Entries: make([]Combatant, 0, mobCount+mobCount/BonusEvery+2),
	}
	x := FirstMobX
	sinceBonus := 0
	for i := 0; i < mobCount; i++ {
		q.Entries = append(q.Entries, g.rollEnemy(fmt.Sprintf("mob-%d", i), fmt.Sprintf("M%d", i+1), ctx, x))
		x += MobSpacing
		sinceBonus++
		if sinceBonus == BonusEvery {
			q.Entries = append(q.Entries, newBonusSlot(fmt.Sprintf("bonus-%d", i), x))
			x += BonusSpacing
			sinceBonus = 0
		}
	}

	if q.Entries[len(q.Entries)-1].Kind == EntryBonus {
		q.Entries = append(q.Entries, g.rollEnemy("mob-boss", "BOSS", ctx, x))
		x += MobSpacing
	}
	g.promote(&q.Entries[len(q.Entries)-1], ctx)

	if isMapBoss {
		q.Entries = append(q.Entries, newMapBoss(ctx, x))
	}
	return q
}

func (g *Generator) rollEnemy(id, label string, ctx DifficultyContext, x float64) Combatant {
	tier := RollRarity(g.rng)
	class := RollClass(g.rng)
	mult := tier.Multiplier()
	hp := ctx.MobHP * mult
	c := Combatant{
		Vitals: Vitals{HP: hp, MaxHP: hp, X: x},
		ID:     id,
		Kind:   EntryEnemy,
		Label:  label,
		Color:  tier.Info().Color,
		Size:   MobSize,
		Rarity: tier,
		Class:  class,
		Role:   RoleCommon,
		Damage: ctx.MobAtk * mult,
	}
	applyClassShield(&c)
	return c
}

// promote escalates the last enemy of the queue according to tile level.
func (g *Generator) promote(c *Combatant, ctx DifficultyContext) {
	c.Size = BossSize
	if ctx.Level >= 3 && ctx.Level <= MapRows {
		c.Role = RoleElite
		c.Label = "ELITE"
		c.Color = EliteColor
		setStats(c, ctx.MobHP*2.5, ctx.MobAtk*1.5)
	} else {
		c.Label = "CHEFE"
		setStats(c, c.MaxHP*2, c.Damage*2)
	}

	if ctx.Level == MapRows && g.rng.Float64() < LeaderChance {
		c.Role = RoleLeader
		c.Label = "LÍDER"
		c.Color = LeaderColor
		c.DropsKey = true
		setStats(c, ctx.MobHP*4, ctx.MobAtk*2)
	}
	applyClassShield(c)
}

func newMapBoss(ctx DifficultyContext, x float64) Combatant {
	hp := ctx.MobHP * 5
	return Combatant{
		Vitals:   Vitals{HP: hp, MaxHP: hp, X: x},
		ID:       "map-boss",
		Kind:     EntryEnemy,
		Label:    "CHEFÃO",
		Color:    MapBossColor,
		Size:     BossSize,
		Rarity:   RarityCommon,
		Class:    ClassMage,
		Role:     RoleMapBoss,
		Damage:   ctx.MobAtk * 2.5,
		DropsKey: true,
	}
}

func newBonusSlot(id string, x float64) Combatant {
	return Combatant{
		Vitals: Vitals{HP: 1, MaxHP: 1, X: x},
		ID:     id,
		Kind:   EntryBonus,
		Label:  "?",
		Color:  BonusColor,
		Size:   BonusSize,
	}
}

func setStats(c *Combatant, hp, dmg float64) {
	c.HP = hp
	c.MaxHP = hp
	c.Damage = dmg
}

func applyClassShield(c *Combatant) {
	c.Shield = 0
	if c.Class == ClassTank {
		c.Shield = TankShieldFrac * c.MaxHP
	}
}
