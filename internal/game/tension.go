package game

import "math"

// TensionParams tunes how walking converts into encounters.
type TensionParams struct {
	MapHeight      float64 // trigger distances are fractions of this
	MinTriggerFrac float64 // lower bound of the trigger roll (e.g., 0.25)
	MaxTriggerFrac float64 // upper bound of the trigger roll (e.g., 1.0)
	BarWindow      float64 // fraction of the trigger where tension reaches 10 (e.g., 0.9)
	MoveEpsilon    float64 // deltas at or below this are jitter
	AmbushFloor    int     // minimum tension before ambush rolls start
	AmbushChance   float64 // per-tick ambush probability (0..1)
}

// TensionState is the walk segment since the last encounter.
type TensionState struct {
	WalkedDistance  float64
	TriggerDistance float64 // 0 until the first real movement
	Tension         int
}

// TriggerResult is returned by EncounterTrigger.Update.
type TriggerResult struct {
	Tension int
	Fired   bool
}

// EncounterTrigger turns continuous walking into discrete encounter events.
type EncounterTrigger struct {
	P TensionParams
	S TensionState

	rng       func() float64
	listeners []func(int)
}

// DefaultTensionParams returns the shipped tuning for a map of the given height.
func DefaultTensionParams(mapHeight float64) TensionParams {
	return SanitizeTensionParams(TensionParams{
		MapHeight:      mapHeight,
		MinTriggerFrac: TensionMinTriggerFrac,
		MaxTriggerFrac: TensionMaxTriggerFrac,
		BarWindow:      TensionBarWindow,
		MoveEpsilon:    TensionMoveEpsilon,
		AmbushFloor:    TensionAmbushFloor,
		AmbushChance:   TensionAmbushChance,
	})
}

// SanitizeTensionParams clamps and normalizes tension parameters to safe defaults.
func SanitizeTensionParams(p TensionParams) TensionParams {
	if !(p.MapHeight > 0) {
		p.MapHeight = MapRows * TileHeight
	}
	if !(p.MinTriggerFrac > 0) {
		p.MinTriggerFrac = TensionMinTriggerFrac
	}
	if !(p.MaxTriggerFrac >= p.MinTriggerFrac) {
		p.MaxTriggerFrac = math.Max(p.MinTriggerFrac, TensionMaxTriggerFrac)
	}
	if !(p.BarWindow > 0 && p.BarWindow <= 1) {
		p.BarWindow = TensionBarWindow
	}
	if !(p.MoveEpsilon >= 0) {
		p.MoveEpsilon = TensionMoveEpsilon
	}
	if p.AmbushFloor < 0 {
		p.AmbushFloor = 0
	}
	if p.AmbushFloor > TensionMax {
		p.AmbushFloor = TensionMax
	}
	if !(p.AmbushChance >= 0) {
		p.AmbushChance = 0
	}
	if p.AmbushChance > 1 {
		p.AmbushChance = 1
	}
	return p
}

// NewEncounterTrigger builds a trigger drawing from rng. A nil rng never ambushes
// and always rolls the longest trigger distance.
func NewEncounterTrigger(p TensionParams, rng func() float64) *EncounterTrigger {
	if rng == nil {
		rng = func() float64 { return 1 }
	}
	return &EncounterTrigger{P: SanitizeTensionParams(p), rng: rng}
}

// OnTensionChanged registers fn to be called whenever the integer tension changes.
func (t *EncounterTrigger) OnTensionChanged(fn func(int)) {
	if fn != nil {
		t.listeners = append(t.listeners, fn)
	}
}

// Tension returns the current tension level.
func (t *EncounterTrigger) Tension() int { return t.S.Tension }

// Progress returns walked/bar-window in [0,1] for HUD bars.
func (t *EncounterTrigger) Progress() float64 {
	if t.S.TriggerDistance <= 0 {
		return 0
	}
	return Clamp(t.S.WalkedDistance/(t.S.TriggerDistance*t.P.BarWindow), 0, 1)
}

// Update feeds one tick of player displacement.
func (t *EncounterTrigger) Update(distanceMoved float64) TriggerResult {
	if !(distanceMoved > t.P.MoveEpsilon) {
		return TriggerResult{Tension: t.S.Tension}
	}
	if t.S.TriggerDistance <= 0 {
		t.S.TriggerDistance = t.rollTriggerDistance()
	}

	// Ambush rolls use the tension reached before this tick's step.
	if t.S.Tension >= t.P.AmbushFloor && t.P.AmbushChance > 0 && t.rng() < t.P.AmbushChance {
		return t.fire()
	}

	t.S.WalkedDistance += distanceMoved
	t.setTension(TensionFor(t.S.WalkedDistance, t.S.TriggerDistance, t.P.BarWindow))
	if t.S.WalkedDistance >= t.S.TriggerDistance {
		return t.fire()
	}
	return TriggerResult{Tension: t.S.Tension}
}

// Reset clears the current walk segment without firing.
func (t *EncounterTrigger) Reset() {
	t.S.WalkedDistance = 0
	t.S.TriggerDistance = t.rollTriggerDistance()
	t.setTension(0)
}

func (t *EncounterTrigger) fire() TriggerResult {
	captured := t.S.Tension
	t.Reset()
	return TriggerResult{Tension: captured, Fired: true}
}

func (t *EncounterTrigger) rollTriggerDistance() float64 {
	span := t.P.MaxTriggerFrac - t.P.MinTriggerFrac
	frac := t.P.MinTriggerFrac + t.rng()*span
	return t.P.MapHeight * frac
}

func (t *EncounterTrigger) setTension(v int) {
	if v == t.S.Tension {
		return
	}
	t.S.Tension = v
	for _, fn := range t.listeners {
		fn(v)
	}
}

// TensionFor maps walked distance to the 0..10 tension scale.
//
//	tension = min(10, ceil(10 * walked / (trigger * window)))
func TensionFor(walked, trigger, window float64) int {
	if walked <= 0 || trigger <= 0 || window <= 0 {
		return 0
	}
	v := math.Ceil(10 * walked / (trigger * window))
	if v > TensionMax {
		return TensionMax
	}
	return int(v)
}
