package game

// Cue names a fire-and-forget audio or visual effect.
type Cue string

const (
	CueHit         Cue = "hit"
	CueCrit        Cue = "crit"
	CueDodge       Cue = "dodge"
	CueHeal        Cue = "heal"
	CueLevelUp     Cue = "level_up"
	CueVictory     Cue = "victory"
	CueDefeat      Cue = "defeat"
	CueCoin        Cue = "coin"
	CueJewel       Cue = "jewel"
	CueScreenShake Cue = "screen_shake"
)

// TextTarget says whose head a floating text hovers over.
type TextTarget string

const (
	TargetPlayer TextTarget = "player"
	TargetEnemy  TextTarget = "enemy"
)

// FloatingText is a short-lived UI label. It carries no gameplay state.
type FloatingText struct {
	Text   string
	Value  float64
	Color  string
	Crit   bool
	Target TextTarget
	X      float64
	TTL    int
}

// Floating text colors.
const (
	ColorDamage = "#e74c3c"
	ColorCrit   = "#f1c40f"
	ColorShield = "#4da6ff"
	ColorHeal   = "#2ecc71"
	ColorDodge  = "#bdc3c7"
	ColorLevel  = "#f39c12"
)

// EventKind enumerates what a Step can report.
type EventKind int

const (
	EventFloatingText EventKind = iota
	EventCue
	EventBonusOffered
	EventBonusApplied
	EventConsumableUsed
	EventEnemyDefeated
	EventLevelUp
	EventResolved
)

func (k EventKind) String() string {
	switch k {
	case EventFloatingText:
		return "floating_text"
	case EventCue:
		return "cue"
	case EventBonusOffered:
		return "bonus_offered"
	case EventBonusApplied:
		return "bonus_applied"
	case EventConsumableUsed:
		return "consumable_used"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventLevelUp:
		return "level_up"
	case EventResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Event is one observable outcome of a Step. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind    EventKind
	Seq     int // assigned by EventLog, 1-based
	Tick    int
	Text    FloatingText
	Cue     Cue
	EntryID string
	Reward  Reward
	Result  Result
	Level   int
}

func textEvent(tick int, ft FloatingText) Event {
	if ft.TTL == 0 {
		ft.TTL = FloatingTextTTL
	}
	return Event{Kind: EventFloatingText, Tick: tick, Text: ft}
}

func cueEvent(tick int, cue Cue) Event {
	return Event{Kind: EventCue, Tick: tick, Cue: cue}
}
