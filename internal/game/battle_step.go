package game

import (
	"fmt"
	"math"
	"math/rand"
)

// CombatParams tunes the per-class mechanics and reward rolls.
type CombatParams struct {
	WarriorDodgeChance float64 // chance a Warrior ignores a player hit (0..1)
	AssassinCritChance float64 // chance an Assassin doubles its hit (0..1)
	HealerEvery        int     // a Healer heals instead of attacking on every Nth turn
	HealerHealFrac     float64 // fraction of max hp a Healer restores
	GemDropChance      float64 // chance an enemy drops one gem (0..1)
	EnemyMeterRate     float64 // enemy meter fill per tick
	ApproachSpeed      float64 // distance an entry moves per tick
}

// DefaultCombatParams returns the shipped tuning.
func DefaultCombatParams() CombatParams {
	return CombatParams{
		WarriorDodgeChance: WarriorDodgeChance,
		AssassinCritChance: AssassinCritChance,
		HealerEvery:        HealerEvery,
		HealerHealFrac:     HealerHealFrac,
		GemDropChance:      GemDropChance,
		EnemyMeterRate:     EnemyMeterRate,
		ApproachSpeed:      ApproachSpeed,
	}
}

// SanitizeCombatParams replaces invalid values with defaults. Chances may be
// zero, which disables the mechanic.
func SanitizeCombatParams(p CombatParams) CombatParams {
	if !(p.WarriorDodgeChance >= 0) {
		p.WarriorDodgeChance = WarriorDodgeChance
	}
	if !(p.AssassinCritChance >= 0) {
		p.AssassinCritChance = AssassinCritChance
	}
	if !(p.GemDropChance >= 0) {
		p.GemDropChance = GemDropChance
	}
	p.WarriorDodgeChance = Clamp(p.WarriorDodgeChance, 0, 1)
	p.AssassinCritChance = Clamp(p.AssassinCritChance, 0, 1)
	p.GemDropChance = Clamp(p.GemDropChance, 0, 1)
	if p.HealerEvery <= 0 {
		p.HealerEvery = HealerEvery
	}
	if !(p.HealerHealFrac > 0) {
		p.HealerHealFrac = HealerHealFrac
	}
	if !(p.EnemyMeterRate > 0) {
		p.EnemyMeterRate = EnemyMeterRate
	}
	if !(p.ApproachSpeed > 0) {
		p.ApproachSpeed = ApproachSpeed
	}
	return p
}

// Phase is the battle state machine position.
type Phase int

const (
	PhaseApproaching Phase = iota
	PhaseInCombat
	PhaseBonusPaused
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseApproaching:
		return "approaching"
	case PhaseInCombat:
		return "in_combat"
	case PhaseBonusPaused:
		return "bonus_paused"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of a battle.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	default:
		return "none"
	}
}

// BattleState is the complete state of one encounter. Step never mutates
// the state it is given.
type BattleState struct {
	Tick         int
	Phase        Phase
	Result       Result
	Level        int
	Player       PlayerCombatant
	Queue        *EncounterQueue
	Offered      []BonusOption
	Texts        []FloatingText
	Loadout      []Consumable
	Ledger       RewardLedger
	LevelUpPulse int
}

// Clone returns a deep copy of s.
func (s BattleState) Clone() BattleState {
	out := s
	out.Queue = s.Queue.Clone()
	out.Offered = append([]BonusOption(nil), s.Offered...)
	out.Texts = append([]FloatingText(nil), s.Texts...)
	out.Loadout = append([]Consumable(nil), s.Loadout...)
	return out
}

// NewBattleState prepares a battle on a tile of the given level.
func NewBattleState(level int, player PlayerCombatant, q *EncounterQueue, loadout []Consumable) BattleState {
	if level <= 0 {
		level = 1
	}
	if q == nil {
		q = &EncounterQueue{}
	}
	s := BattleState{
		Phase:   PhaseApproaching,
		Level:   level,
		Player:  player,
		Queue:   q.Clone(),
		Loadout: append([]Consumable(nil), loadout...),
	}
	if s.Queue.Exhausted() {
		s.Phase = PhaseResolved
		s.Result = ResultWin
	}
	return s
}

// Terminal reports whether the battle has a result.
func (s BattleState) Terminal() bool { return s.Phase == PhaseResolved }

// InputKind enumerates the inputs Step accepts.
type InputKind int

const (
	InputTick InputKind = iota
	InputSelectBonus
	InputConsume
	InputLevelUp
)

// Input drives one Step.
type Input struct {
	Kind         InputKind
	Bonus        BonusOption
	ConsumableID string
	Attributes   Attributes
}

// Step computes the state that follows s under in. Random draws come from
// rng in a fixed order so a seeded stream replays the same battle.
func Step(s BattleState, in Input, p CombatParams, rng *rand.Rand) (BattleState, []Event) {
	next := s.Clone()
	var events []Event
	switch in.Kind {
	case InputTick:
		events = next.tick(p, rng)
	case InputSelectBonus:
		events = next.selectBonus(in.Bonus)
	case InputConsume:
		events = next.consume(in.ConsumableID)
	case InputLevelUp:
		events = next.levelUp(in.Attributes)
	}
	return next, events
}

func (s *BattleState) tick(p CombatParams, rng *rand.Rand) []Event {
	if s.Terminal() {
		return nil
	}
	if s.Queue == nil {
		s.Queue = &EncounterQueue{}
	}
	s.Tick++
	s.ageVisuals()
	if s.Phase == PhaseBonusPaused {
		return nil
	}

	cur := s.Queue.Current()
	if cur == nil {
		return s.resolve(ResultWin)
	}

	events := s.advanceQueue(p, rng)
	if s.Phase == PhaseInCombat && cur.IsEnemy() && cur.HP > 0 {
		events = append(events, s.exchange(cur, p, rng)...)
	}

	if cur.IsEnemy() && cur.HP <= 0 {
		events = append(events, s.defeat(cur, p, rng)...)
	} else if s.Player.HP <= 0 {
		s.Player.HP = 0
		events = append(events, s.resolve(ResultLoss)...)
	}
	return events
}

func (s *BattleState) ageVisuals() {
	if s.Player.HitFlash > 0 {
		s.Player.HitFlash--
	}
	for i := s.Queue.Active; i < len(s.Queue.Entries); i++ {
		if s.Queue.Entries[i].HitFlash > 0 {
			s.Queue.Entries[i].HitFlash--
		}
	}
	if s.LevelUpPulse > 0 {
		s.LevelUpPulse--
	}
	kept := s.Texts[:0]
	for _, ft := range s.Texts {
		ft.TTL--
		if ft.TTL > 0 {
			kept = append(kept, ft)
		}
	}
	s.Texts = kept
}

// advanceQueue moves the active entry toward the melee anchor and the rest
// into a chain behind it. Arrival of the active entry switches the phase.
func (s *BattleState) advanceQueue(p CombatParams, rng *rand.Rand) []Event {
	var events []Event
	entries := s.Queue.Entries
	for i := s.Queue.Active; i < len(entries); i++ {
		e := &entries[i]
		target := MeleeAnchorX
		if i > s.Queue.Active {
			prev := &entries[i-1]
			target = prev.X + prev.Size + FollowGap
		}
		if e.X > target {
			e.X = math.Max(target, e.X-p.ApproachSpeed)
		}
		if i != s.Queue.Active || s.Phase != PhaseApproaching || e.X > target {
			continue
		}
		if e.Kind == EntryBonus {
			s.Phase = PhaseBonusPaused
			s.Offered = SampleBonusOptions(rng, BonusChoices, i)
			events = append(events, Event{Kind: EventBonusOffered, Tick: s.Tick, EntryID: e.ID})
		} else {
			s.Phase = PhaseInCombat
		}
	}
	return events
}

// exchange fills both meters and resolves whichever attacks are due. The
// player is evaluated first.
func (s *BattleState) exchange(e *Combatant, p CombatParams, rng *rand.Rand) []Event {
	var events []Event
	s.Player.Meter += s.Player.EffectiveSpeed()
	if s.Player.Meter >= MeterFull {
		s.Player.Meter = 0
		events = append(events, s.playerAttack(e, p, rng)...)
	}
	if e.HP <= 0 {
		return events
	}
	e.Meter += p.EnemyMeterRate
	if e.Meter >= MeterFull {
		e.Meter = 0
		events = append(events, s.enemyAttack(e, p, rng)...)
	}
	return events
}

func (s *BattleState) playerAttack(e *Combatant, p CombatParams, rng *rand.Rand) []Event {
	crit := rng.Float64()*100 < s.Player.EffectiveCrit()
	dmg := s.Player.EffectiveAttack()
	if crit {
		dmg *= 2
	}

	if e.Class == ClassWarrior && p.WarriorDodgeChance > 0 && rng.Float64() < p.WarriorDodgeChance {
		return s.emit(
			FloatingText{Text: "Esquiva!", Color: ColorDodge, Target: TargetEnemy, X: e.X},
			CueDodge,
		)
	}

	absorbed := e.absorb(dmg)
	e.HitFlash = HitFlashFrames

	var events []Event
	if absorbed > 0 {
		events = append(events, s.addText(FloatingText{
			Text: fmt.Sprintf("-%.0f 🛡", absorbed), Value: absorbed, Color: ColorShield, Target: TargetEnemy, X: e.X,
		}))
	}
	if taken := dmg - absorbed; taken > 0 || absorbed == 0 {
		ft := FloatingText{Text: fmt.Sprintf("-%.0f", taken), Value: taken, Color: ColorDamage, Target: TargetEnemy, X: e.X}
		if crit {
			ft.Text = fmt.Sprintf("CRIT -%.0f", taken)
			ft.Color = ColorCrit
			ft.Crit = true
		}
		events = append(events, s.addText(ft))
	}
	if crit {
		events = append(events, cueEvent(s.Tick, CueCrit))
	} else {
		events = append(events, cueEvent(s.Tick, CueHit))
	}
	return events
}

func (s *BattleState) enemyAttack(e *Combatant, p CombatParams, rng *rand.Rand) []Event {
	e.TurnCount++
	if e.Class == ClassHealer && e.TurnCount%p.HealerEvery == 0 {
		healed := e.heal(e.MaxHP * p.HealerHealFrac)
		return s.emit(
			FloatingText{Text: fmt.Sprintf("+%.0f", healed), Value: healed, Color: ColorHeal, Target: TargetEnemy, X: e.X},
			CueHeal,
		)
	}

	dmg := math.Max(1, e.Damage-s.Player.Defense)
	crit := false
	if e.Class == ClassAssassin && rng.Float64() < p.AssassinCritChance {
		dmg *= 2
		crit = true
	}
	absorbed := s.Player.absorb(dmg)
	s.Player.HitFlash = HitFlashFrames

	var events []Event
	if absorbed > 0 {
		events = append(events, s.addText(FloatingText{
			Text: fmt.Sprintf("-%.0f 🛡", absorbed), Value: absorbed, Color: ColorShield, Target: TargetPlayer, X: s.Player.X,
		}))
	}
	if taken := dmg - absorbed; taken > 0 {
		ft := FloatingText{Text: fmt.Sprintf("-%.0f", taken), Value: taken, Color: ColorDamage, Target: TargetPlayer, X: s.Player.X, Crit: crit}
		if crit {
			ft.Text = fmt.Sprintf("CRIT -%.0f", taken)
		}
		events = append(events, s.addText(ft))
	}
	events = append(events, cueEvent(s.Tick, CueHit))
	if crit {
		events = append(events, cueEvent(s.Tick, CueScreenShake))
	}
	return events
}

// defeat pays out e, moves the cursor past it and resolves the battle when
// nothing is left.
func (s *BattleState) defeat(e *Combatant, p CombatParams, rng *rand.Rand) []Event {
	e.HP = 0
	e.HitFlash = 0
	reward := rollReward(s.Level, e, p, rng)
	s.Ledger.Add(reward)
	events := []Event{{Kind: EventEnemyDefeated, Tick: s.Tick, EntryID: e.ID, Reward: reward}}

	s.Phase = PhaseApproaching
	if s.Queue.Advance() {
		events = append(events, s.resolve(ResultWin)...)
	}
	return events
}

func (s *BattleState) resolve(r Result) []Event {
	s.Phase = PhaseResolved
	s.Result = r
	s.Offered = nil
	cue := CueVictory
	if r == ResultLoss {
		cue = CueDefeat
	}
	return []Event{
		{Kind: EventResolved, Tick: s.Tick, Result: r},
		cueEvent(s.Tick, cue),
	}
}

func (s *BattleState) selectBonus(opt BonusOption) []Event {
	if s.Phase != PhaseBonusPaused || opt.Slot != s.Queue.Active {
		return nil
	}
	offered, ok := findOffered(s.Offered, opt)
	if !ok {
		return nil
	}
	slot := s.Queue.Current()
	if slot == nil || slot.Kind != EntryBonus {
		return nil
	}

	ft := applyBonus(&s.Player, offered)
	slot.HP = 0
	s.Offered = nil
	s.Phase = PhaseApproaching
	events := []Event{
		{Kind: EventBonusApplied, Tick: s.Tick, EntryID: offered.ID},
		s.addText(ft),
	}
	if s.Queue.Advance() {
		events = append(events, s.resolve(ResultWin)...)
	}
	return events
}

func (s *BattleState) consume(id string) []Event {
	if s.Terminal() || s.Phase == PhaseBonusPaused {
		return nil
	}
	for i, c := range s.Loadout {
		if c.ID != id {
			continue
		}
		ft, ok := applyConsumable(&s.Player, c)
		if !ok {
			return nil
		}
		s.Loadout = append(s.Loadout[:i], s.Loadout[i+1:]...)
		events := []Event{
			{Kind: EventConsumableUsed, Tick: s.Tick, EntryID: id},
			s.addText(ft),
		}
		if c.Kind == ConsumableHeal {
			events = append(events, cueEvent(s.Tick, CueHeal))
		}
		return events
	}
	return nil
}

// levelUp copies leveled attributes into the live player. Leveling heals
// fully; encounter bonuses are kept.
func (s *BattleState) levelUp(a Attributes) []Event {
	s.Player.MaxHP = float64(a.MaxHP)
	s.Player.HP = float64(a.HP)
	s.Player.Attack = float64(a.Attack)
	s.Player.Defense = float64(a.Defense)
	s.Player.Speed = float64(a.Speed)
	s.Player.CritChance = float64(a.CritChance)
	s.LevelUpPulse = LevelUpPulseFrames
	return []Event{
		{Kind: EventLevelUp, Tick: s.Tick, Level: a.Level},
		s.addText(FloatingText{Text: "LEVEL UP!", Value: float64(a.Level), Color: ColorLevel, Target: TargetPlayer, X: s.Player.X}),
		cueEvent(s.Tick, CueLevelUp),
	}
}

func (s *BattleState) addText(ft FloatingText) Event {
	ev := textEvent(s.Tick, ft)
	s.Texts = append(s.Texts, ev.Text)
	return ev
}

func (s *BattleState) emit(ft FloatingText, cue Cue) []Event {
	return []Event{s.addText(ft), cueEvent(s.Tick, cue)}
}
