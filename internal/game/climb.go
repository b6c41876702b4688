package game

import (
	"math/rand"
	"time"
)

// Tile is the map cell the player stands on. Row 0 is the top of the map.
type Tile struct {
	Row     int
	Col     int
	Level   int
	MapBoss bool
}

// TileAt derives level and boss flag from the row: the bottom row is level
// 1 and the top row holds the map boss.
func TileAt(row, col int) Tile {
	if row < 0 {
		row = 0
	}
	if row >= MapRows {
		row = MapRows - 1
	}
	return Tile{Row: row, Col: col, Level: MapRows - row, MapBoss: row == 0}
}

// WalkKind classifies a Walk outcome.
type WalkKind int

const (
	WalkNothing WalkKind = iota
	WalkDrop
	WalkBattle
	WalkBlocked
)

func (k WalkKind) String() string {
	switch k {
	case WalkDrop:
		return "drop"
	case WalkBattle:
		return "battle"
	case WalkBlocked:
		return "blocked"
	default:
		return "nothing"
	}
}

// WalkOutcome reports what one Walk call produced.
type WalkOutcome struct {
	Kind    WalkKind
	Tension int
	Drop    Drop
	Battle  *Battle
}

// ClimbOptions wires a Climb. Profile, when set, backs every port left nil.
type ClimbOptions struct {
	Profile     *Profile
	Progression Progression
	Economy     Economy
	Inventory   Inventory
	Effects     SideEffects

	Tension TensionParams
	Combat  *CombatParams
	Rng     *rand.Rand
	NewID   func() string
}

// Climb joins the encounter trigger, the generator and the battle scheduler
// for one walking player.
type Climb struct {
	trigger *EncounterTrigger
	gen     *Generator
	rng     *rand.Rand
	combat  *CombatParams
	newID   func() string

	progression Progression
	economy     Economy
	inventory   Inventory
	effects     SideEffects

	loadout []string
	battle  *Battle
	tile    Tile

	battleListeners []func(*Battle)
}

func NewClimb(opts ClimbOptions) *Climb {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	profile := opts.Profile
	if profile == nil {
		profile = DefaultProfile("")
	}
	c := &Climb{
		gen:         NewGenerator(rng),
		rng:         rng,
		combat:      opts.Combat,
		newID:       opts.NewID,
		progression: opts.Progression,
		economy:     opts.Economy,
		inventory:   opts.Inventory,
		effects:     opts.Effects,
	}
	if c.progression == nil {
		c.progression = profile
	}
	if c.economy == nil {
		c.economy = profile
	}
	if c.inventory == nil {
		c.inventory = profile
	}
	if c.effects == nil {
		c.effects = nopSideEffects{}
	}
	tp := opts.Tension
	if tp == (TensionParams{}) {
		tp = DefaultTensionParams(MapRows * TileHeight)
	}
	c.trigger = NewEncounterTrigger(tp, rng.Float64)
	return c
}

// OnTensionChanged forwards to the trigger.
func (c *Climb) OnTensionChanged(fn func(int)) { c.trigger.OnTensionChanged(fn) }

// OnBattle registers fn to be called for every battle the climb opens.
func (c *Climb) OnBattle(fn func(*Battle)) {
	if fn != nil {
		c.battleListeners = append(c.battleListeners, fn)
	}
}

func (c *Climb) Tension() int { return c.trigger.Tension() }

// Progress is the fraction of the trigger distance walked so far.
func (c *Climb) Progress() float64 { return c.trigger.Progress() }

// Battle returns the open battle, or nil.
func (c *Climb) Battle() *Battle { return c.battle }

// Tile returns the tile of the last Walk.
func (c *Climb) Tile() Tile { return c.tile }

// SelectLoadout chooses the consumables taken into the next battles. At most
// MaxLoadout known items are kept.
func (c *Climb) SelectLoadout(ids []string) []Consumable {
	picked := SelectLoadout(c.inventory.Consumables(), ids)
	c.loadout = c.loadout[:0]
	for _, it := range picked {
		c.loadout = append(c.loadout, it.ID)
	}
	return picked
}

// Walk feeds distance walked on tile into the trigger. When an encounter
// fires it either drops loot or opens a battle. Walking does nothing while a
// battle is open.
func (c *Climb) Walk(distance float64, tile Tile) WalkOutcome {
	if c.battle != nil {
		return WalkOutcome{Kind: WalkBlocked, Tension: c.trigger.Tension()}
	}
	c.tile = tile
	res := c.trigger.Update(distance)
	out := WalkOutcome{Kind: WalkNothing, Tension: res.Tension}
	if !res.Fired {
		return out
	}

	if c.rng.Float64() < DropChance {
		drop := RollDrop(c.rng, tile.Level, c.newID)
		c.credit(drop)
		out.Kind = WalkDrop
		out.Drop = drop
		return out
	}

	ctx := DeriveDifficulty(tile.Level, res.Tension)
	q := c.gen.Generate(c.gen.RollMobCount(), ctx, tile.MapBoss)
	c.battle = NewBattle(BattleOptions{
		Level:       ctx.Level,
		Queue:       q,
		Loadout:     SelectLoadout(c.inventory.Consumables(), c.loadout),
		Params:      c.combat,
		Rng:         c.rng,
		Progression: c.progression,
		Economy:     c.economy,
		Inventory:   c.inventory,
		Effects:     c.effects,
	})
	for _, fn := range c.battleListeners {
		fn(c.battle)
	}
	out.Kind = WalkBattle
	out.Battle = c.battle
	return out
}

func (c *Climb) credit(d Drop) {
	switch d.Kind {
	case DropGold:
		c.economy.Credit(d.Amount, 0)
		c.effects.Play(CueCoin)
	case DropGems:
		c.economy.Credit(0, d.Amount)
		c.effects.Play(CueJewel)
	case DropItem:
		c.inventory.AddConsumable(d.Item)
	}
}

// Tick advances the open battle, if any.
func (c *Climb) Tick() {
	if c.battle != nil {
		c.battle.Tick()
	}
}

// CloseBattle tears down the open battle and reports its result. The second
// return value is false when no battle was open.
func (c *Climb) CloseBattle() (BattleResult, bool) {
	if c.battle == nil {
		return BattleResult{}, false
	}
	res := c.battle.Close()
	c.battle = nil
	return res, true
}
