package game

import (
	"math/rand"
	"reflect"
	"testing"
)

func testEnemy(id string, hp, dmg float64, class MobClass, x float64) Combatant {
	return Combatant{
		Vitals: Vitals{HP: hp, MaxHP: hp, X: x},
		ID:     id,
		Kind:   EntryEnemy,
		Label:  id,
		Size:   MobSize,
		Class:  class,
		Damage: dmg,
	}
}

func testProfile() *Profile {
	p := DefaultProfile("tester")
	p.Attributes.CritChance = 0
	return p
}

func tickUntil(t *testing.T, b *Battle, limit int, done func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if done() {
			return
		}
		b.Tick()
	}
	if !done() {
		t.Fatalf("condition not reached within %d ticks", limit)
	}
}

func TestBattleFourHitsKillFortyHPEnemy(t *testing.T) {
	profile := testProfile()
	var cues []Cue
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("m1", 40, 5, ClassMage, MeleeAnchorX)}},
		Rng:         rand.New(rand.NewSource(1)),
		Progression: profile,
		Effects:     SideEffectsFunc(func(c Cue) { cues = append(cues, c) }),
	})

	var hits []FloatingText
	b.OnFloatingText(func(ft FloatingText) {
		if ft.Target == TargetEnemy {
			hits = append(hits, ft)
		}
	})

	tickUntil(t, b, 1000, b.Resolved)

	if len(hits) != 4 {
		t.Fatalf("expected 4 hits, got %d", len(hits))
	}
	for i, h := range hits {
		if h.Value != 10 || h.Crit {
			t.Fatalf("hit %d: expected plain 10 damage, got %+v", i, h)
		}
	}
	st := b.State()
	if st.Queue.Active != 1 {
		t.Fatalf("expected cursor past the enemy, got %d", st.Queue.Active)
	}
	if st.Queue.Entries[0].HP != 0 {
		t.Fatalf("dead enemy hp should read 0, got %.1f", st.Queue.Entries[0].HP)
	}
	if st.Result != ResultWin {
		t.Fatalf("expected win, got %s", st.Result)
	}

	// Two enemy turns of max(1, 5-2) land before the fourth hit.
	if profile.Attributes.HP != 94 {
		t.Fatalf("expected hp 94 flushed on kill, got %d", profile.Attributes.HP)
	}
	if profile.Attributes.XP != 10 || profile.Wallet.Gold != 105 {
		t.Fatalf("expected xp 10 gold 105, got xp %d gold %d", profile.Attributes.XP, profile.Wallet.Gold)
	}
	res := b.Close()
	if res.Result != ResultWin || res.XP != 10 || res.Gold != 5 || res.Gems != profile.Wallet.Gems {
		t.Fatalf("unexpected result %+v", res)
	}
	if profile.Attributes.HP != profile.Attributes.MaxHP {
		t.Fatalf("close should restore hp, got %d", profile.Attributes.HP)
	}
	if !containsCue(cues, CueVictory) || !containsCue(cues, CueCoin) {
		t.Fatalf("expected victory and coin cues, got %v", cues)
	}
}

func containsCue(cues []Cue, want Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}

func TestBattleApproachThenCombat(t *testing.T) {
	b := NewBattle(BattleOptions{
		Level: 1,
		Queue: &EncounterQueue{Entries: []Combatant{
			testEnemy("a", 40, 5, ClassMage, MeleeAnchorX+10),
			testEnemy("b", 40, 5, ClassMage, MeleeAnchorX+400),
		}},
		Rng:         rand.New(rand.NewSource(2)),
		Progression: testProfile(),
	})

	b.Tick()
	st := b.State()
	if st.Phase != PhaseApproaching || st.Queue.Entries[0].X != MeleeAnchorX+8 {
		t.Fatalf("expected approach by %.0f, got phase %s x %.1f", ApproachSpeed, st.Phase, st.Queue.Entries[0].X)
	}
	tickUntil(t, b, 10, func() bool { return b.Phase() == PhaseInCombat })
	st = b.State()
	if st.Queue.Entries[0].X != MeleeAnchorX {
		t.Fatalf("active entry should stop at the anchor, got %.1f", st.Queue.Entries[0].X)
	}

	tickUntil(t, b, 400, func() bool { return b.State().Queue.Entries[1].X == MeleeAnchorX+MobSize+FollowGap })
}

func TestBattleLossRestoresHPOnClose(t *testing.T) {
	profile := testProfile()
	profile.Attributes.HP = 10
	b := NewBattle(BattleOptions{
		Level:       3,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("brute", 10000, 50, ClassMage, MeleeAnchorX)}},
		Rng:         rand.New(rand.NewSource(4)),
		Progression: profile,
	})

	tickUntil(t, b, 200, b.Resolved)
	st := b.State()
	if st.Result != ResultLoss {
		t.Fatalf("expected loss, got %s", st.Result)
	}
	if st.Player.HP != 0 {
		t.Fatalf("player hp should clamp to 0, got %.1f", st.Player.HP)
	}

	tick := st.Tick
	b.Tick()
	if b.State().Tick != tick {
		t.Fatalf("ticks after resolution must be no-ops")
	}

	res := b.Close()
	if res.XP != 0 || res.Gold != 0 {
		t.Fatalf("loss without kills should carry no reward: %+v", res)
	}
	if profile.Attributes.HP != profile.Attributes.MaxHP {
		t.Fatalf("loss should still restore hp on close, got %d", profile.Attributes.HP)
	}
}

func TestBattleTeardownMidFightKeepsHP(t *testing.T) {
	profile := testProfile()
	profile.Attributes.HP = 60
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("m", 500, 5, ClassMage, MeleeAnchorX)}},
		Rng:         rand.New(rand.NewSource(1)),
		Progression: profile,
	})
	for i := 0; i < 60; i++ {
		b.Tick()
	}
	b.Close()
	if profile.Attributes.HP != 60 {
		t.Fatalf("teardown must not write hp, got %d", profile.Attributes.HP)
	}
	b.Tick()
	if b.State().Tick != 60 {
		t.Fatalf("closed battle must ignore ticks")
	}
}

func TestBattleLevelUpFlush(t *testing.T) {
	profile := testProfile()
	profile.Attributes.XP = 95
	var levels []LevelUp
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("m", 10, 5, ClassMage, MeleeAnchorX)}},
		Rng:         rand.New(rand.NewSource(1)),
		Progression: profile,
	})
	b.OnLevelUp(func(lu LevelUp) { levels = append(levels, lu) })

	tickUntil(t, b, 200, b.Resolved)

	a := profile.Attributes
	if a.Level != 2 || a.XP != 5 || a.MaxXP != 120 || a.MaxHP != 120 || a.Attack != 12 || a.Defense != 3 {
		t.Fatalf("unexpected leveled attributes %+v", a)
	}
	if len(levels) != 1 || levels[0].Levels != 1 {
		t.Fatalf("expected one level-up notification, got %+v", levels)
	}
	st := b.State()
	if st.Player.MaxHP != 120 || st.Player.HP != 120 || st.Player.Attack != 12 {
		t.Fatalf("live player should pick up the new attributes: %+v", st.Player)
	}
	if st.LevelUpPulse == 0 {
		t.Fatalf("expected level-up pulse")
	}
}

func TestApplyXPLevelLoop(t *testing.T) {
	a := DefaultAttributes()
	a.XP = 95
	a.HP = 40
	lu := ApplyXP(a, 10)
	got := lu.Attributes
	if lu.Levels != 1 || got.XP != 5 || got.Level != 2 || got.MaxXP != 120 {
		t.Fatalf("unexpected level-up: %+v", lu)
	}
	if got.MaxHP != 120 || got.HP != 120 || got.Attack != 12 || got.Defense != 3 {
		t.Fatalf("unexpected stat gains: %+v", got)
	}

	lu = ApplyXP(DefaultAttributes(), 250)
	if lu.Levels != 2 || lu.Attributes.XP != 30 || lu.Attributes.MaxXP != 144 {
		t.Fatalf("expected two levels with 30 xp left, got %+v", lu)
	}
}

func TestVitalsAbsorb(t *testing.T) {
	cases := []struct {
		shield, dmg        float64
		wantShield, wantHP float64
		wantAbsorbed       float64
	}{
		{5, 3, 2, 100, 3},
		{5, 8, 0, 97, 5},
		{0, 0, 0, 100, 0},
		{0, 12, 0, 88, 0},
		{4, -3, 4, 100, 0},
	}
	for _, c := range cases {
		v := Vitals{HP: 100, MaxHP: 100, Shield: c.shield}
		absorbed := v.absorb(c.dmg)
		if v.Shield != c.wantShield || v.HP != c.wantHP || absorbed != c.wantAbsorbed {
			t.Errorf("absorb(%.0f) with shield %.0f: got shield %.0f hp %.0f absorbed %.0f", c.dmg, c.shield, v.Shield, v.HP, absorbed)
		}
	}
}

func TestTankShieldAbsorbsPlayerHits(t *testing.T) {
	tank := testEnemy("tank", 40, 5, ClassTank, MeleeAnchorX)
	tank.Shield = 12
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{tank}},
		Rng:         rand.New(rand.NewSource(1)),
		Progression: testProfile(),
	})

	tickUntil(t, b, 100, func() bool { return b.State().Queue.Entries[0].Shield < 12 })
	e := b.State().Queue.Entries[0]
	if e.Shield != 2 || e.HP != 40 {
		t.Fatalf("first hit should be fully absorbed: shield %.0f hp %.0f", e.Shield, e.HP)
	}
	tickUntil(t, b, 100, func() bool { return b.State().Queue.Entries[0].HP < 40 })
	e = b.State().Queue.Entries[0]
	if e.Shield != 0 || e.HP != 32 {
		t.Fatalf("second hit should break the shield: shield %.0f hp %.0f", e.Shield, e.HP)
	}
}

func TestWarriorDodgeAndAssassinCrit(t *testing.T) {
	params := DefaultCombatParams()
	params.WarriorDodgeChance = 1
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("w", 40, 1, ClassWarrior, MeleeAnchorX)}},
		Params:      &params,
		Rng:         rand.New(rand.NewSource(1)),
		Progression: testProfile(),
	})
	for i := 0; i < 200; i++ {
		b.Tick()
	}
	if hp := b.State().Queue.Entries[0].HP; hp != 40 {
		t.Fatalf("warrior with certain dodge took damage: %.1f", hp)
	}

	params = DefaultCombatParams()
	params.AssassinCritChance = 1
	profile := testProfile()
	b = NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("a", 1000, 10, ClassAssassin, MeleeAnchorX)}},
		Params:      &params,
		Rng:         rand.New(rand.NewSource(1)),
		Progression: profile,
	})
	for i := 0; i < 50; i++ {
		b.Tick()
	}
	// max(1, 10-2) doubled.
	if hp := b.State().Player.HP; hp != 84 {
		t.Fatalf("expected assassin crit for 16, player hp %.1f", hp)
	}
}

func TestHealerHealsEveryThirdTurn(t *testing.T) {
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("h", 100, 5, ClassHealer, MeleeAnchorX)}},
		Rng:         rand.New(rand.NewSource(1)),
		Progression: testProfile(),
	})
	for i := 0; i < 149; i++ {
		b.Tick()
	}
	before := b.State().Queue.Entries[0]
	if before.TurnCount != 2 || before.HP != 60 {
		t.Fatalf("expected 2 turns and hp 60 before the heal, got %d/%.0f", before.TurnCount, before.HP)
	}
	b.Tick()
	st := b.State()
	e := st.Queue.Entries[0]
	if e.TurnCount != 3 || e.HP != 80 {
		t.Fatalf("expected heal of 20 on turn 3, got turn %d hp %.0f", e.TurnCount, e.HP)
	}
	if st.Player.HP != 94 {
		t.Fatalf("healer should skip its attack on heal turns, player hp %.0f", st.Player.HP)
	}
}

func bonusQueue() *EncounterQueue {
	return &EncounterQueue{Entries: []Combatant{
		newBonusSlot("bonus-0", MeleeAnchorX),
		testEnemy("m", 40, 5, ClassMage, MeleeAnchorX+200),
	}}
}

func TestBonusSelectionIsIdempotent(t *testing.T) {
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       bonusQueue(),
		Rng:         rand.New(rand.NewSource(7)),
		Progression: testProfile(),
	})
	b.Tick()
	if b.Phase() != PhaseBonusPaused {
		t.Fatalf("expected pause at bonus slot, got %s", b.Phase())
	}
	offered := b.Offered()
	if len(offered) != BonusChoices {
		t.Fatalf("expected %d options, got %d", BonusChoices, len(offered))
	}
	seen := map[string]bool{}
	for _, o := range offered {
		if seen[o.ID] {
			t.Fatalf("options must be distinct: %v", offered)
		}
		seen[o.ID] = true
	}

	enemyX := b.State().Queue.Entries[1].X
	for i := 0; i < 30; i++ {
		b.Tick()
	}
	if b.State().Queue.Entries[1].X != enemyX {
		t.Fatalf("paused battle must not move entries")
	}

	opt := offered[0]
	if !b.SelectBonus(opt) {
		t.Fatalf("first selection should apply")
	}
	after := b.State()
	if b.SelectBonus(opt) {
		t.Fatalf("second selection must be a no-op")
	}
	again := b.State()
	if !reflect.DeepEqual(after.Player, again.Player) || again.Queue.Active != 1 {
		t.Fatalf("second selection changed state: %+v vs %+v", after.Player, again.Player)
	}
	if after.Phase != PhaseApproaching {
		t.Fatalf("expected approach after selection, got %s", after.Phase)
	}
}

func TestBonusSelectionRejectsStaleOption(t *testing.T) {
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       bonusQueue(),
		Rng:         rand.New(rand.NewSource(7)),
		Progression: testProfile(),
	})
	b.Tick()
	opt := b.Offered()[0]
	opt.Slot = 5
	if b.SelectBonus(opt) {
		t.Fatalf("option for another slot must be ignored")
	}
	if b.SelectBonus(BonusOption{ID: "nope"}) {
		t.Fatalf("unknown option must be ignored")
	}
	if b.Phase() != PhaseBonusPaused {
		t.Fatalf("battle should still wait for a choice")
	}
}

func TestApplyBonusEffects(t *testing.T) {
	p := PlayerCombatant{Vitals: Vitals{HP: 10, MaxHP: 100}}
	applyBonus(&p, BonusOption{Kind: BonusHeal, Magnitude: 0.3})
	if p.HP != 40 {
		t.Fatalf("heal 30%% of 100 from 10 should give 40, got %.0f", p.HP)
	}
	applyBonus(&p, BonusOption{Kind: BonusHeal, Magnitude: 1})
	if p.HP != 100 {
		t.Fatalf("full heal should clamp to max, got %.0f", p.HP)
	}
	applyBonus(&p, BonusOption{Kind: BonusShield, Magnitude: 25})
	applyBonus(&p, BonusOption{Kind: BonusDamageBuff, Magnitude: 5})
	applyBonus(&p, BonusOption{Kind: BonusCritBuff, Magnitude: 10})
	if p.Shield != 25 || p.TempAttackBonus != 5 || p.TempCritBonus != 10 {
		t.Fatalf("unexpected buffs %+v", p)
	}
}

func TestConsumablesSpendFromLoadoutAndInventory(t *testing.T) {
	profile := testProfile()
	profile.Attributes.HP = 30
	profile.Items = []Consumable{
		NewConsumable("h1", BaseConsumables[0], RarityCommon),
		NewConsumable("d1", BaseConsumables[4], RarityRare),
		NewConsumable("c1", BaseConsumables[2], RarityCommon),
	}
	loadout := SelectLoadout(profile.Items, []string{"h1", "d1", "c1"})
	if len(loadout) != MaxLoadout {
		t.Fatalf("loadout should cap at %d, got %d", MaxLoadout, len(loadout))
	}

	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       bonusQueue(),
		Loadout:     loadout,
		Rng:         rand.New(rand.NewSource(3)),
		Progression: profile,
	})

	if !b.UseConsumable("h1") {
		t.Fatalf("heal should apply while approaching")
	}
	if hp := b.State().Player.HP; hp != 80 {
		t.Fatalf("expected hp 80 after heal, got %.0f", hp)
	}
	if b.UseConsumable("h1") {
		t.Fatalf("spent consumable must not apply twice")
	}
	if b.UseConsumable("c1") {
		t.Fatalf("item outside the loadout must not apply")
	}
	if len(profile.Items) != 2 {
		t.Fatalf("expected heal removed from inventory, have %d items", len(profile.Items))
	}

	b.Tick()
	if b.Phase() != PhaseBonusPaused {
		t.Fatalf("expected bonus pause")
	}
	if b.UseConsumable("d1") {
		t.Fatalf("consumables are locked while paused")
	}
	b.SelectBonus(b.Offered()[0])
	if !b.UseConsumable("d1") {
		t.Fatalf("damage potion should apply after the pause")
	}
	if bonus := b.State().Player.TempAttackBonus; bonus < 20 {
		t.Fatalf("rare damage potion should add 20 attack, bonus %.0f", bonus)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(11)))
	q := gen.Generate(6, DeriveDifficulty(4, 6), false)
	s := NewBattleState(4, NewPlayerCombatant(DefaultAttributes()), q, nil)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		before := s.Clone()
		next, _ := Step(s, Input{Kind: InputTick}, DefaultCombatParams(), rng)
		if !reflect.DeepEqual(before, s.Clone()) {
			t.Fatalf("tick %d mutated its input state", i)
		}
		if next.Phase == PhaseBonusPaused {
			next, _ = Step(next, Input{Kind: InputSelectBonus, Bonus: next.Offered[0]}, DefaultCombatParams(), rng)
		}
		s = next
	}
}

func TestQueueCursorIsMonotonic(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gen := NewGenerator(rng)
		q := gen.Generate(gen.RollMobCount(), DeriveDifficulty(1+rng.Intn(MapRows), rng.Intn(TensionMax+1)), rng.Intn(2) == 0)
		attrs := DefaultAttributes()
		attrs.HP, attrs.MaxHP, attrs.Attack = 5000, 5000, 40
		s := NewBattleState(3, NewPlayerCombatant(attrs), q, nil)
		params := DefaultCombatParams()

		for i := 0; i < 50000 && !s.Terminal(); i++ {
			next, _ := Step(s, Input{Kind: InputTick}, params, rng)
			if next.Phase == PhaseBonusPaused {
				next, _ = Step(next, Input{Kind: InputSelectBonus, Bonus: next.Offered[rng.Intn(len(next.Offered))]}, params, rng)
			}
			if next.Queue.Active < s.Queue.Active {
				t.Fatalf("seed %d: cursor moved back %d -> %d", seed, s.Queue.Active, next.Queue.Active)
			}
			for j := 0; j < s.Queue.Active; j++ {
				if next.Queue.Entries[j] != s.Queue.Entries[j] {
					t.Fatalf("seed %d: resolved entry %d was mutated", seed, j)
				}
			}
			if next.Player.Shield < 0 {
				t.Fatalf("seed %d: negative player shield", seed)
			}
			for j := range next.Queue.Entries {
				if next.Queue.Entries[j].Shield < 0 {
					t.Fatalf("seed %d: negative enemy shield", seed)
				}
			}
			s = next
		}
		if !s.Terminal() {
			t.Fatalf("seed %d: battle did not finish", seed)
		}
	}
}

func TestSnapshotReportsPendingEntries(t *testing.T) {
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       bonusQueue(),
		Rng:         rand.New(rand.NewSource(3)),
		Progression: testProfile(),
	})
	b.Tick()
	rs := b.Snapshot()
	if !rs.Paused || len(rs.Bonus) != BonusChoices {
		t.Fatalf("expected paused snapshot with options: %+v", rs)
	}
	if len(rs.Entries) != 2 || !rs.Entries[0].Active || rs.Entries[0].Kind != "bonus" {
		t.Fatalf("unexpected entries %+v", rs.Entries)
	}
	b.SelectBonus(b.Offered()[0])
	rs = b.Snapshot()
	if len(rs.Entries) != 1 || rs.Entries[0].ID != "m" {
		t.Fatalf("resolved slot should leave the snapshot: %+v", rs.Entries)
	}
}

func TestEventLogKeepsRecentEvents(t *testing.T) {
	log := NewEventLog(0, 0)
	for i := 1; i <= 10; i++ {
		log.push(Event{Kind: EventCue, Tick: i})
	}
	if log.Len() != 4 {
		t.Fatalf("expected ring of 4, got %d", log.Len())
	}
	got := log.Since(8)
	if len(got) != 2 || got[0].Tick != 9 || got[1].Tick != 10 {
		t.Fatalf("unexpected events since 8: %+v", got)
	}
	if ev, ok := log.Last(EventCue); !ok || ev.Tick != 10 {
		t.Fatalf("expected newest cue at tick 10, got %+v", ev)
	}
}

func TestProgressionBacksMissingPorts(t *testing.T) {
	profile := testProfile()
	profile.Items = []Consumable{NewConsumable("h1", BaseConsumables[0], RarityCommon)}
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("m1", 40, 5, ClassMage, MeleeAnchorX)}},
		Loadout:     profile.Consumables(),
		Rng:         rand.New(rand.NewSource(1)),
		Progression: profile,
	})
	if !b.UseConsumable("h1") {
		t.Fatalf("heal should apply")
	}
	tickUntil(t, b, 1000, b.Resolved)

	if len(profile.Items) != 0 {
		t.Fatalf("spent item should leave the progression's inventory, have %v", profile.Items)
	}
	if profile.Wallet.Gold != 105 {
		t.Fatalf("gold should be credited to the progression's wallet, got %d", profile.Wallet.Gold)
	}
}

func TestEventsAfterSeesInputsWithinReadTick(t *testing.T) {
	profile := testProfile()
	profile.Attributes.HP = 50
	profile.Items = []Consumable{NewConsumable("h1", BaseConsumables[0], RarityCommon)}
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("m", 40, 5, ClassMage, MeleeAnchorX+200)}},
		Loadout:     profile.Consumables(),
		Rng:         rand.New(rand.NewSource(1)),
		Progression: profile,
	})
	b.Tick()
	lastSeq := 0
	for _, ev := range b.EventsAfter(0) {
		lastSeq = ev.Seq
	}
	if !b.UseConsumable("h1") {
		t.Fatalf("heal should apply while approaching")
	}
	var cues []Cue
	for _, ev := range b.EventsAfter(lastSeq) {
		if ev.Kind == EventCue {
			cues = append(cues, ev.Cue)
		}
	}
	if !containsCue(cues, CueHeal) {
		t.Fatalf("heal cue logged in an already read tick should be visible, got %v", cues)
	}
}

func TestEventLogAssignsSequence(t *testing.T) {
	log := NewEventLog(0, 0)
	log.push(Event{Kind: EventCue, Tick: 3})
	log.push(Event{Kind: EventCue, Tick: 3})
	log.push(Event{Kind: EventCue, Tick: 3})
	got := log.After(1)
	if len(got) != 2 || got[0].Seq != 2 || got[1].Seq != 3 {
		t.Fatalf("expected events 2 and 3 of one tick, got %+v", got)
	}
	if len(log.Since(3)) != 0 {
		t.Fatalf("tick filter should not see same-tick events")
	}
}

func TestSnapshotCarriesClassName(t *testing.T) {
	b := NewBattle(BattleOptions{
		Level:       1,
		Queue:       &EncounterQueue{Entries: []Combatant{testEnemy("m", 40, 5, ClassHealer, MeleeAnchorX+200)}},
		Rng:         rand.New(rand.NewSource(1)),
		Progression: testProfile(),
	})
	rs := b.Snapshot()
	if len(rs.Entries) != 1 || rs.Entries[0].Class != "healer" || rs.Entries[0].ClassName != "Curandeiro" {
		t.Fatalf("unexpected class fields %+v", rs.Entries)
	}
}
