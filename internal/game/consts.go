package game

const (
	SimHz        = 60.0 // battle ticks per second
	Dt           = 1.0 / SimHz
	UpdateRateHz = 20.0 // per-client WS state pushes

	MapRows    = 12
	TileHeight = 80.0

	PlayerX        = 30.0
	PlayerSize     = 50.0
	MobSize        = 50.0
	BossSize       = 80.0
	BonusSize      = 30.0
	MeleeAnchorX   = PlayerX + PlayerSize
	FollowGap      = 50.0
	ApproachSpeed  = 2.0 // units per tick
	EnemyMeterRate = 2.0 // meter units per tick
	MeterFull      = 100.0

	FirstMobX    = 280.0
	MobSpacing   = 100.0
	BonusSpacing = 80.0
	BonusEvery   = 3

	MinMobCount = 2
	MaxMobCount = 7

	HitFlashFrames     = 5
	FloatingTextTTL    = 45
	LevelUpPulseFrames = 60

	BonusChoices = 3
	MaxLoadout   = 2
)

// Tension defaults.
const (
	TensionMax            = 10
	TensionMinTriggerFrac = 0.25
	TensionMaxTriggerFrac = 1.0
	TensionBarWindow      = 0.9
	TensionMoveEpsilon    = 0.5
	TensionAmbushFloor    = 2
	TensionAmbushChance   = 0.007
)

// Combat defaults.
const (
	WarriorDodgeChance = 0.15
	AssassinCritChance = 0.30
	HealerEvery        = 3
	HealerHealFrac     = 0.2
	TankShieldFrac     = 0.3
	GemDropChance      = 0.5
	LeaderChance       = 0.5
)

// Walk event defaults.
const (
	DropChance     = 0.2
	DropGoldShare  = 0.35
	DropGemsShare  = 0.25
	DropGoldPerLvl = 10
)

// EventLogKeepS is how many seconds of battle events a Battle retains.
const EventLogKeepS = 5.0
