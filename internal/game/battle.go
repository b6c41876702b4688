package game

import (
	"math"
	"math/rand"
	"time"
)

// BattleOptions wires a Battle to its encounter and collaborators. A nil
// Economy or Inventory is served by Progression when it implements them;
// anything still missing falls back to a throwaway default profile.
type BattleOptions struct {
	Level   int
	Queue   *EncounterQueue
	Loadout []Consumable
	Params  *CombatParams
	Rng     *rand.Rand

	Progression Progression
	Economy     Economy
	Inventory   Inventory
	Effects     SideEffects
}

// BattleResult is the terminal report of an encounter.
type BattleResult struct {
	Result Result
	XP     int
	Gold   int
	Gems   int
	Keys   int
}

// Battle owns the state of one encounter and advances it one Step per
// input. It is not safe for concurrent use; hosts serialize access.
type Battle struct {
	state  BattleState
	params CombatParams
	rng    *rand.Rand

	progression Progression
	economy     Economy
	inventory   Inventory
	effects     SideEffects

	log            *EventLog
	textListeners  []func(FloatingText)
	levelListeners []func(LevelUp)
	closed         bool
}

func NewBattle(opts BattleOptions) *Battle {
	params := DefaultCombatParams()
	if opts.Params != nil {
		params = SanitizeCombatParams(*opts.Params)
	}
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var fallback *Profile
	fallbackProfile := func() *Profile {
		if fallback == nil {
			fallback = DefaultProfile("")
		}
		return fallback
	}
	b := &Battle{
		params:      params,
		rng:         rng,
		progression: opts.Progression,
		economy:     opts.Economy,
		inventory:   opts.Inventory,
		effects:     opts.Effects,
		log:         NewEventLog(EventLogKeepS, SimHz),
	}
	if b.progression == nil {
		b.progression = fallbackProfile()
	}
	if b.economy == nil {
		if e, ok := b.progression.(Economy); ok {
			b.economy = e
		} else {
			b.economy = fallbackProfile()
		}
	}
	if b.inventory == nil {
		if inv, ok := b.progression.(Inventory); ok {
			b.inventory = inv
		} else if inv, ok := b.economy.(Inventory); ok {
			b.inventory = inv
		} else {
			b.inventory = fallbackProfile()
		}
	}
	if b.effects == nil {
		b.effects = nopSideEffects{}
	}

	player := NewPlayerCombatant(b.progression.Stats())
	b.state = NewBattleState(opts.Level, player, opts.Queue, opts.Loadout)
	return b
}

// OnFloatingText registers fn to receive every floating text.
func (b *Battle) OnFloatingText(fn func(FloatingText)) {
	if fn != nil {
		b.textListeners = append(b.textListeners, fn)
	}
}

// OnLevelUp registers fn to be called after each level-up flush.
func (b *Battle) OnLevelUp(fn func(LevelUp)) {
	if fn != nil {
		b.levelListeners = append(b.levelListeners, fn)
	}
}

// Tick advances the battle by one frame. Ticks after the result are no-ops.
func (b *Battle) Tick() {
	b.apply(Input{Kind: InputTick})
}

// SelectBonus applies one of the currently offered options. Stale or
// repeated selections do nothing and report false.
func (b *Battle) SelectBonus(opt BonusOption) bool {
	return b.apply(Input{Kind: InputSelectBonus, Bonus: opt})
}

// SelectBonusID is SelectBonus by option id for hosts that only carry ids.
func (b *Battle) SelectBonusID(id string) bool {
	for _, o := range b.state.Offered {
		if o.ID == id {
			return b.SelectBonus(o)
		}
	}
	return false
}

// UseConsumable spends a loadout item and removes it from the inventory.
// It reports false when nothing was spent.
func (b *Battle) UseConsumable(id string) bool {
	return b.apply(Input{Kind: InputConsume, ConsumableID: id})
}

func (b *Battle) apply(in Input) bool {
	if b.closed {
		return false
	}
	next, events := Step(b.state, in, b.params, b.rng)
	b.state = next
	b.dispatch(events)
	return len(events) > 0
}

func (b *Battle) dispatch(events []Event) {
	for _, ev := range events {
		b.log.push(ev)
		switch ev.Kind {
		case EventFloatingText:
			for _, fn := range b.textListeners {
				fn(ev.Text)
			}
		case EventCue:
			b.effects.Play(ev.Cue)
		case EventConsumableUsed:
			b.inventory.RemoveConsumable(ev.EntryID)
		case EventEnemyDefeated:
			b.flush(ev.Reward)
		}
	}
}

// flush writes one enemy's reward through to the collaborators. Current hp
// goes first so the xp grant cannot resurrect spent hp.
func (b *Battle) flush(r Reward) {
	b.progression.SetHP(int(math.Ceil(math.Max(0, b.state.Player.HP))))
	lu := b.progression.GrantXP(r.XP)
	b.economy.Credit(r.Gold, r.Gems)
	if r.Gold > 0 {
		b.effects.Play(CueCoin)
	}
	if r.Gems > 0 {
		b.effects.Play(CueJewel)
	}
	if r.DropsKey {
		b.inventory.AddKey()
	}
	if lu.Levels == 0 {
		return
	}
	b.apply(Input{Kind: InputLevelUp, Attributes: lu.Attributes})
	for _, fn := range b.levelListeners {
		fn(lu)
	}
}

// Close ends the session. A resolved battle reports hp fully restored on
// both outcomes. Closing mid-fight writes nothing further; every reward was
// already flushed when it was earned.
func (b *Battle) Close() BattleResult {
	if !b.closed {
		b.closed = true
		if b.state.Terminal() {
			b.progression.RestoreHP()
		}
	}
	return b.Result()
}

// Result returns the running totals and outcome.
func (b *Battle) Result() BattleResult {
	return BattleResult{
		Result: b.state.Result,
		XP:     b.state.Ledger.XP,
		Gold:   b.state.Ledger.Gold,
		Gems:   b.state.Ledger.Gems,
		Keys:   b.state.Ledger.Keys,
	}
}

// State returns a copy of the current state.
func (b *Battle) State() BattleState { return b.state.Clone() }

func (b *Battle) Phase() Phase { return b.state.Phase }

func (b *Battle) Resolved() bool { return b.state.Terminal() }

func (b *Battle) Offered() []BonusOption {
	return append([]BonusOption(nil), b.state.Offered...)
}

// Events returns retained events newer than tick.
func (b *Battle) Events(since int) []Event { return b.log.Since(since) }

// EventsAfter returns retained events with a sequence number above seq.
func (b *Battle) EventsAfter(seq int) []Event { return b.log.After(seq) }

// EntryView is the render state of one pending queue entry.
type EntryView struct {
	ID        string
	Kind      string
	Label     string
	Color     string
	Class     string
	ClassName string
	Rarity    string
	Role      string
	X         float64
	Size      float64
	HP        float64
	MaxHP     float64
	Shield    float64
	MeterPct  float64
	Hit       bool
	Active    bool
	DropsKey  bool
}

// PlayerView is the render state of the player.
type PlayerView struct {
	HP         float64
	MaxHP      float64
	Shield     float64
	X          float64
	MeterPct   float64
	Attack     float64
	CritChance float64
	Hit        bool
}

// RenderState is everything a presentation layer needs to draw a frame.
type RenderState struct {
	Tick         int
	Phase        string
	Result       string
	InCombat     bool
	Paused       bool
	Resolved     bool
	Player       PlayerView
	Entries      []EntryView
	Texts        []FloatingText
	Bonus        []BonusOption
	Loadout      []Consumable
	Ledger       RewardLedger
	LevelUpPulse int
}

// Snapshot renders the current state.
func (b *Battle) Snapshot() RenderState {
	s := b.state
	rs := RenderState{
		Tick:     s.Tick,
		Phase:    s.Phase.String(),
		Result:   s.Result.String(),
		InCombat: s.Phase == PhaseInCombat,
		Paused:   s.Phase == PhaseBonusPaused,
		Resolved: s.Terminal(),
		Player: PlayerView{
			HP:         s.Player.DisplayHP(),
			MaxHP:      s.Player.MaxHP,
			Shield:     s.Player.Shield,
			X:          s.Player.X,
			MeterPct:   math.Min(MeterFull, s.Player.Meter),
			Attack:     s.Player.EffectiveAttack(),
			CritChance: s.Player.EffectiveCrit(),
			Hit:        s.Player.HitFlash > 0,
		},
		Texts:        append([]FloatingText(nil), s.Texts...),
		Bonus:        append([]BonusOption(nil), s.Offered...),
		Loadout:      append([]Consumable(nil), s.Loadout...),
		Ledger:       s.Ledger,
		LevelUpPulse: s.LevelUpPulse,
	}
	for _, i := range s.Queue.Pending() {
		e := s.Queue.Entries[i]
		v := EntryView{
			ID:       e.ID,
			Kind:     e.Kind.String(),
			Label:    e.Label,
			Color:    e.Color,
			X:        e.X,
			Size:     e.Size,
			HP:       e.DisplayHP(),
			MaxHP:    e.MaxHP,
			Shield:   e.Shield,
			MeterPct: math.Min(MeterFull, e.Meter),
			Hit:      e.HitFlash > 0,
			Active:   i == s.Queue.Active,
			DropsKey: e.DropsKey,
		}
		if e.IsEnemy() {
			v.Class = e.Class.String()
			v.ClassName = e.Class.DisplayName()
			v.Rarity = e.Rarity.String()
			v.Role = e.Role.String()
		}
		rs.Entries = append(rs.Entries, v)
	}
	return rs
}
